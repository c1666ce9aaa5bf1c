package kundli

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
	"github.com/admin/astro-services/kundli-api/internal/services/astro/ayanamsa"
	"github.com/admin/astro-services/kundli-api/internal/services/astro/chart"
	"github.com/admin/astro-services/kundli-api/internal/services/astro/dasha"
	"github.com/admin/astro-services/kundli-api/internal/services/astro/ephemeris"
	"github.com/admin/astro-services/kundli-api/internal/services/astro/strength"
	"github.com/admin/astro-services/kundli-api/internal/services/astro/transit"
	"github.com/admin/astro-services/kundli-api/internal/services/astro/varga"
	"github.com/admin/astro-services/kundli-api/internal/services/astro/yoga"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestService(repo *fakeChartRepo) *Service {
	log := testLogger()
	svc := New(
		nil, nil, nil, nil,
		ephemeris.New(),
		ayanamsa.New(),
		chart.New(),
		varga.New(),
		dasha.New(),
		yoga.New(log),
		strength.New(),
		transit.New(),
		log,
	)
	if repo != nil {
		svc.ChartRepo = repo
	}
	return svc
}

// fakeChartRepo хранит карты в памяти
type fakeChartRepo struct {
	charts map[uuid.UUID]*domain.KundliData
}

func newFakeChartRepo() *fakeChartRepo {
	return &fakeChartRepo{charts: make(map[uuid.UUID]*domain.KundliData)}
}

func (f *fakeChartRepo) Create(_ context.Context, chart *domain.KundliData) error {
	f.charts[chart.ID] = chart
	return nil
}

func (f *fakeChartRepo) GetByID(_ context.Context, id uuid.UUID) (*domain.KundliData, error) {
	chart, ok := f.charts[id]
	if !ok {
		return nil, domain.ErrChartNotFound
	}
	return chart, nil
}

func (f *fakeChartRepo) ListRecent(_ context.Context, limit int) ([]domain.KundliData, error) {
	result := make([]domain.KundliData, 0, limit)
	for _, chart := range f.charts {
		if len(result) == limit {
			break
		}
		result = append(result, *chart)
	}
	return result, nil
}

func (f *fakeChartRepo) DeleteOlderThan(_ context.Context, cutoff time.Time) (int64, error) {
	var deleted int64
	for id, chart := range f.charts {
		if chart.GeneratedAt.Before(cutoff) {
			delete(f.charts, id)
			deleted++
		}
	}
	return deleted, nil
}

func referenceBirth() domain.BirthDetails {
	// Нью-Дели, 2000-01-01 12:00 по местному времени (06:30 UTC)
	return domain.BirthDetails{
		Name:      "Reference",
		BirthDate: time.Date(2000, 1, 1, 12, 0, 0, 0, time.UTC),
		Latitude:  28.6139,
		Longitude: 77.2090,
		Timezone:  "Asia/Kolkata",
	}
}

func TestCompute_ReferenceChart(t *testing.T) {
	svc := newTestService(nil)

	kundli, err := svc.Compute(referenceBirth(), domain.DefaultSettings())
	require.NoError(t, err)

	sun := kundli.Position(domain.Sun)
	require.NotNil(t, sun)
	assert.Equal(t, domain.Sagittarius, sun.Sign)
	assert.InDelta(t, 256.5, sun.Longitude, 1.0)

	assert.Equal(t, domain.Pisces, kundli.Ascendant.Sign)
	assert.InDelta(t, 13.2, kundli.Ascendant.Degree, 0.3)

	assert.Len(t, kundli.Positions, 9)
	assert.Len(t, kundli.Vargas, 16)
	assert.NotEmpty(t, kundli.Dashas.Vimshottari)
	assert.Len(t, kundli.Shadbala, 7)

	total := 0
	for _, n := range kundli.Ashtakavarga.Sarva {
		total += n
	}
	assert.Equal(t, 337, total)

	// Раху и Кету всегда в оппозиции
	rahu := kundli.Position(domain.Rahu)
	ketu := kundli.Position(domain.Ketu)
	require.NotNil(t, rahu)
	require.NotNil(t, ketu)
	diff := rahu.Longitude - ketu.Longitude
	if diff < 0 {
		diff += 360
	}
	assert.InDelta(t, 180, diff, 1e-6)
}

func TestCompute_Deterministic(t *testing.T) {
	svc := newTestService(nil)
	birth := referenceBirth()
	settings := domain.DefaultSettings()

	first, err := svc.Compute(birth, settings)
	require.NoError(t, err)
	second, err := svc.Compute(birth, settings)
	require.NoError(t, err)

	// ID и GeneratedAt различаются, расчёт идентичен
	assert.Equal(t, first.Positions, second.Positions)
	assert.Equal(t, first.Ascendant, second.Ascendant)
	assert.Equal(t, first.Vargas, second.Vargas)
	assert.Equal(t, first.Yogas, second.Yogas)
	assert.Equal(t, first.Shadbala, second.Shadbala)
	assert.NotEqual(t, first.ID, second.ID)
}

func TestCompute_Validation(t *testing.T) {
	svc := newTestService(nil)

	bad := referenceBirth()
	bad.Name = ""
	_, err := svc.Compute(bad, domain.DefaultSettings())
	assert.ErrorIs(t, err, domain.ErrInvalidBirthDetails)

	badSettings := domain.DefaultSettings()
	badSettings.Ayanamsa = "fagan"
	_, err = svc.Compute(referenceBirth(), badSettings)
	assert.ErrorIs(t, err, domain.ErrUnsupportedConfiguration)

	ancient := referenceBirth()
	ancient.BirthDate = time.Date(1215, 6, 15, 12, 0, 0, 0, time.UTC)
	_, err = svc.Compute(ancient, domain.DefaultSettings())
	assert.ErrorIs(t, err, domain.ErrDateOutOfRange)
}

func TestGenerate_PersistsAndLoads(t *testing.T) {
	repo := newFakeChartRepo()
	svc := newTestService(repo)
	ctx := context.Background()

	kundli, err := svc.Generate(ctx, referenceBirth(), domain.DefaultSettings())
	require.NoError(t, err)
	require.NotEqual(t, uuid.Nil, kundli.ID)

	loaded, err := svc.GetByID(ctx, kundli.ID)
	require.NoError(t, err)
	assert.Equal(t, kundli.ID, loaded.ID)
	assert.Equal(t, kundli.Ascendant, loaded.Ascendant)

	_, err = svc.GetByID(ctx, uuid.New())
	assert.ErrorIs(t, err, domain.ErrChartNotFound)
}

func TestRequestReport_NotConfigured(t *testing.T) {
	repo := newFakeChartRepo()
	svc := newTestService(repo)
	ctx := context.Background()

	kundli, err := svc.Generate(ctx, referenceBirth(), domain.DefaultSettings())
	require.NoError(t, err)

	_, err = svc.RequestReport(ctx, kundli.ID, "general reading")
	assert.True(t, domain.IsBusinessError(err))
}

func TestTransits_OnReferenceChart(t *testing.T) {
	repo := newFakeChartRepo()
	svc := newTestService(repo)
	ctx := context.Background()

	kundli, err := svc.Generate(ctx, referenceBirth(), domain.DefaultSettings())
	require.NoError(t, err)

	data, err := svc.Transits(ctx, kundli.ID, time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC))
	require.NoError(t, err)

	assert.Len(t, data.Positions, 9)
	for _, p := range data.Positions {
		assert.GreaterOrEqual(t, p.House, 1)
		assert.LessOrEqual(t, p.House, 12)
	}
}

func TestSiderealPositions_Order(t *testing.T) {
	svc := newTestService(nil)

	positions, err := svc.SiderealPositions(time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC), domain.DefaultSettings())
	require.NoError(t, err)
	require.Len(t, positions, 9)

	for i, p := range domain.AllPlanets {
		assert.Equal(t, p, positions[i].Planet)
	}
}
