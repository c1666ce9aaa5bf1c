package repository

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/admin/astro-services/kundli-api/internal/domain"
)

// IChartRepo интерфейс для работы с сохранёнными картами
type IChartRepo interface {
	Create(ctx context.Context, chart *domain.KundliData) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.KundliData, error)
	ListRecent(ctx context.Context, limit int) ([]domain.KundliData, error)
	DeleteOlderThan(ctx context.Context, cutoff time.Time) (int64, error)
}
