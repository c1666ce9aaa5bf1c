package jobs

import (
	"context"
	"log/slog"
	"time"

	"github.com/admin/astro-services/kundli-api/internal/ports/repository"
)

const chartCleanupName = "chart-cleanup"

// defaultChartRetention карты пересчитываемы из BirthDetails, долго хранить их незачем
const defaultChartRetention = 90 * 24 * time.Hour

// ChartCleanup джоба для удаления старых карт, каждый день в 03:00 UTC
type ChartCleanup struct {
	chartRepo repository.IChartRepo
	log       *slog.Logger
	retention time.Duration
}

// NewChartCleanup создаёт джобу очистки старых карт
func NewChartCleanup(chartRepo repository.IChartRepo, log *slog.Logger, retention time.Duration) *ChartCleanup {
	if retention <= 0 {
		retention = defaultChartRetention
	}

	return &ChartCleanup{
		chartRepo: chartRepo,
		log:       log,
		retention: retention,
	}
}

func (j *ChartCleanup) Name() string {
	return chartCleanupName
}

// NextRun вычисляет следующее время запуска
func (j *ChartCleanup) NextRun(now time.Time) time.Time {
	utc := now.UTC()

	next := time.Date(utc.Year(), utc.Month(), utc.Day(), 3, 0, 0, 0, time.UTC)
	if next.Before(utc) || next.Equal(utc) {
		next = next.Add(24 * time.Hour)
	}
	return next
}

// Run удаляет карты старше порога хранения
func (j *ChartCleanup) Run(ctx context.Context) error {
	cutoff := time.Now().UTC().Add(-j.retention)

	deleted, err := j.chartRepo.DeleteOlderThan(ctx, cutoff)
	if err != nil {
		return err
	}

	j.log.Info("old charts removed", "deleted", deleted, "cutoff", cutoff.Format(time.RFC3339))
	return nil
}
