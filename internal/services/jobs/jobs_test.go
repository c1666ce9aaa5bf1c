package jobs

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/admin/astro-services/kundli-api/internal/domain"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

type countingChartRepo struct {
	deleted int64
	cutoff  time.Time
}

func (c *countingChartRepo) Create(context.Context, *domain.KundliData) error { return nil }
func (c *countingChartRepo) GetByID(context.Context, uuid.UUID) (*domain.KundliData, error) {
	return nil, domain.ErrChartNotFound
}
func (c *countingChartRepo) ListRecent(context.Context, int) ([]domain.KundliData, error) {
	return nil, nil
}
func (c *countingChartRepo) DeleteOlderThan(_ context.Context, cutoff time.Time) (int64, error) {
	c.cutoff = cutoff
	return c.deleted, nil
}

func TestChartCleanup_NextRun(t *testing.T) {
	job := NewChartCleanup(&countingChartRepo{}, testLogger(), 0)

	before := time.Date(2024, 3, 1, 1, 30, 0, 0, time.UTC)
	next := job.NextRun(before)
	assert.Equal(t, time.Date(2024, 3, 1, 3, 0, 0, 0, time.UTC), next)

	after := time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC)
	next = job.NextRun(after)
	assert.Equal(t, time.Date(2024, 3, 2, 3, 0, 0, 0, time.UTC), next)

	exactly := time.Date(2024, 3, 1, 3, 0, 0, 0, time.UTC)
	next = job.NextRun(exactly)
	assert.Equal(t, time.Date(2024, 3, 2, 3, 0, 0, 0, time.UTC), next)
}

func TestChartCleanup_RunUsesRetention(t *testing.T) {
	repo := &countingChartRepo{deleted: 3}
	job := NewChartCleanup(repo, testLogger(), 30*24*time.Hour)

	err := job.Run(context.Background())
	require.NoError(t, err)

	expected := time.Now().UTC().Add(-30 * 24 * time.Hour)
	assert.WithinDuration(t, expected, repo.cutoff, time.Minute)
}

func TestPanchangPrecompute_NextRunDailyAtFour(t *testing.T) {
	job := NewPanchangPrecompute(nil, testLogger(), "Asia/Kolkata", 28.6139, 77.2090)

	loc, err := time.LoadLocation("Asia/Kolkata")
	require.NoError(t, err)

	morning := time.Date(2024, 3, 1, 2, 0, 0, 0, loc)
	assert.Equal(t, time.Date(2024, 3, 1, 4, 0, 0, 0, loc), job.NextRun(morning))

	evening := time.Date(2024, 3, 1, 22, 0, 0, 0, loc)
	assert.Equal(t, time.Date(2024, 3, 2, 4, 0, 0, 0, loc), job.NextRun(evening))
}

func TestPanchangPrecompute_FallsBackToUTC(t *testing.T) {
	job := NewPanchangPrecompute(nil, testLogger(), "Not/AZone", 0, 0)
	assert.Equal(t, "UTC", job.timezone)
}

func TestTransitRefresh_NextRunOnTheHour(t *testing.T) {
	job := NewTransitRefresh(nil, nil, testLogger())

	now := time.Date(2024, 3, 1, 10, 17, 42, 0, time.UTC)
	assert.Equal(t, time.Date(2024, 3, 1, 11, 0, 0, 0, time.UTC), job.NextRun(now))

	onTheHour := time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC)
	assert.Equal(t, time.Date(2024, 3, 1, 11, 0, 0, 0, time.UTC), job.NextRun(onTheHour))
}
