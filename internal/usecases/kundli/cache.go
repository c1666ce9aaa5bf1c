package kundli

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/admin/astro-services/kundli-api/internal/domain"
)

const (
	chartCacheKeyPrefix = "kundli:chart:"
	chartCacheTTL       = 25 * time.Hour
)

func chartCacheKey(id uuid.UUID) string {
	return fmt.Sprintf("%s%s", chartCacheKeyPrefix, id)
}

// cacheChart кладёт карту в кеш; ошибки кеша не прерывают основной поток
func (s *Service) cacheChart(ctx context.Context, kundli *domain.KundliData) {
	if s.Cache == nil {
		return
	}

	payload, err := json.Marshal(kundli)
	if err != nil {
		s.Log.Warn("failed to marshal chart for cache", "chart_id", kundli.ID, "error", err)
		return
	}

	if err := s.Cache.Set(ctx, chartCacheKey(kundli.ID), string(payload), chartCacheTTL); err != nil {
		s.Log.Warn("failed to cache chart", "chart_id", kundli.ID, "error", err)
	}
}

// getCachedChart возвращает карту из кеша или nil при промахе
func (s *Service) getCachedChart(ctx context.Context, id uuid.UUID) *domain.KundliData {
	if s.Cache == nil {
		return nil
	}

	payload, err := s.Cache.Get(ctx, chartCacheKey(id))
	if err != nil {
		return nil
	}

	var kundli domain.KundliData
	if err := json.Unmarshal([]byte(payload), &kundli); err != nil {
		s.Log.Warn("failed to unmarshal cached chart", "chart_id", id, "error", err)
		return nil
	}

	return &kundli
}
