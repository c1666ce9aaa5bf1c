package jobs

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/admin/astro-services/kundli-api/internal/domain"
	"github.com/admin/astro-services/kundli-api/internal/ports/cache"
	kundliUsecase "github.com/admin/astro-services/kundli-api/internal/usecases/kundli"
)

const (
	transitRefreshName     = "transit-refresh"
	transitPositionsKey    = "transit:positions:current"
	transitPositionsTTL    = 2 * time.Hour
	transitRefreshInterval = time.Hour
)

// TransitRefresh джоба для обновления текущих сидерических позиций в кеше, раз в час
type TransitRefresh struct {
	kundliService *kundliUsecase.Service
	cache         cache.Cache
	log           *slog.Logger
}

// NewTransitRefresh создаёт джобу обновления текущих позиций
func NewTransitRefresh(kundliService *kundliUsecase.Service, cacheClient cache.Cache, log *slog.Logger) *TransitRefresh {
	return &TransitRefresh{
		kundliService: kundliService,
		cache:         cacheClient,
		log:           log,
	}
}

func (j *TransitRefresh) Name() string {
	return transitRefreshName
}

// NextRun вычисляет следующее время запуска: начало следующего часа
func (j *TransitRefresh) NextRun(now time.Time) time.Time {
	return now.Truncate(transitRefreshInterval).Add(transitRefreshInterval)
}

// Run пересчитывает текущие позиции и кладёт их в кеш
func (j *TransitRefresh) Run(ctx context.Context) error {
	now := time.Now().UTC()

	positions, err := j.kundliService.SiderealPositions(now, domain.DefaultSettings())
	if err != nil {
		return fmt.Errorf("compute current positions: %w", err)
	}

	payload, err := json.Marshal(positions)
	if err != nil {
		return fmt.Errorf("marshal current positions: %w", err)
	}

	if err := j.cache.Set(ctx, transitPositionsKey, string(payload), transitPositionsTTL); err != nil {
		return fmt.Errorf("cache current positions: %w", err)
	}

	j.log.Info("current positions refreshed", "at", now.Format(time.RFC3339))
	return nil
}
