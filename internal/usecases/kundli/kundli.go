package kundli

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/admin/astro-services/kundli-api/internal/domain"
	"github.com/admin/astro-services/kundli-api/internal/services/astro/chart"
	"github.com/admin/astro-services/kundli-api/internal/services/astro/yoga"
)

// dashaDepth количество уровней периодов: маха, антар, пратьянтар, сукшма, прана
const dashaDepth = 5

// Generate рассчитывает полную натальную карту, сохраняет её и кладёт в кеш
func (s *Service) Generate(ctx context.Context, birth domain.BirthDetails, settings domain.CalculationSettings) (*domain.KundliData, error) {
	kundli, err := s.Compute(birth, settings)
	if err != nil {
		return nil, err
	}

	if s.ChartRepo != nil {
		if err := s.ChartRepo.Create(ctx, kundli); err != nil {
			return nil, fmt.Errorf("save chart: %w", err)
		}
	}

	s.cacheChart(ctx, kundli)

	s.Log.Info("kundli generated",
		"chart_id", kundli.ID,
		"name", birth.Name,
		"ayanamsa", settings.Ayanamsa,
		"yogas", len(kundli.Yogas),
		"doshas", len(kundli.Doshas),
	)
	return kundli, nil
}

// Compute выполняет только расчёт, без побочных эффектов.
// Расчётное содержимое детерминировано для пары (birth, settings);
// ID и GeneratedAt - поля конверта, присваиваются заново на каждый вызов.
func (s *Service) Compute(birth domain.BirthDetails, settings domain.CalculationSettings) (*domain.KundliData, error) {
	if err := birth.Validate(); err != nil {
		return nil, err
	}
	if err := settings.Validate(); err != nil {
		return nil, err
	}

	instant, err := birth.UTC()
	if err != nil {
		return nil, err
	}

	tropical, err := s.Ephemeris.Positions(instant, settings.NodeMode)
	if err != nil {
		return nil, err
	}

	ayanamsaValue, err := s.Ayanamsa.Value(instant, settings.Ayanamsa)
	if err != nil {
		return nil, err
	}

	bodies := make([]chart.Body, 0, len(tropical))
	for _, t := range tropical {
		bodies = append(bodies, chart.Body{
			Planet:      t.Planet,
			Longitude:   t.Longitude - ayanamsaValue,
			DailyMotion: t.DailyMotion,
		})
	}

	result, err := s.Chart.Build(instant, birth.Latitude, birth.Longitude, ayanamsaValue, bodies, settings.HouseSystem)
	if err != nil {
		return nil, err
	}

	moon := positionOf(result.Positions, domain.Moon)
	if moon == nil {
		return nil, fmt.Errorf("moon position is missing in chart")
	}

	yogaChart := &yoga.Chart{
		Ascendant: result.Ascendant,
		Positions: result.Positions,
	}

	kundli := &domain.KundliData{
		ID:           uuid.New(),
		Birth:        birth,
		Settings:     settings,
		Ascendant:    result.Ascendant,
		Positions:    result.Positions,
		HouseCusps:   result.HouseCusps,
		Vargas:       s.Varga.BuildAll(result.Ascendant, result.Positions),
		Dashas:       s.Dasha.BuildAll(instant, moon.Longitude, result.Ascendant.Sign, result.Positions, dashaDepth),
		Yogas:        s.Yoga.DetectYogas(yogaChart),
		Doshas:       s.Yoga.DetectDoshas(yogaChart),
		Ashtakavarga: s.Strength.Ashtakavarga(result.Ascendant.Sign, result.Positions),
		Shadbala:     s.Strength.Shadbala(result.Ascendant.Longitude, result.Positions),
		GeneratedAt:  time.Now().UTC(),
	}

	return kundli, nil
}

// GetByID возвращает карту из кеша или из базы
func (s *Service) GetByID(ctx context.Context, id uuid.UUID) (*domain.KundliData, error) {
	if cached := s.getCachedChart(ctx, id); cached != nil {
		return cached, nil
	}

	if s.ChartRepo == nil {
		return nil, domain.ErrChartNotFound
	}

	kundli, err := s.ChartRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	s.cacheChart(ctx, kundli)
	return kundli, nil
}

// ListRecent возвращает последние рассчитанные карты
func (s *Service) ListRecent(ctx context.Context, limit int) ([]domain.KundliData, error) {
	if s.ChartRepo == nil {
		return nil, nil
	}
	if limit <= 0 || limit > 100 {
		limit = 20
	}
	return s.ChartRepo.ListRecent(ctx, limit)
}

func positionOf(positions []domain.PlanetPosition, p domain.Planet) *domain.PlanetPosition {
	for i := range positions {
		if positions[i].Planet == p {
			return &positions[i]
		}
	}
	return nil
}
