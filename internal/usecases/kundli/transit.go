package kundli

import (
	"context"
	"math"
	"time"

	"github.com/google/uuid"

	"github.com/admin/astro-services/kundli-api/internal/domain"
	"github.com/admin/astro-services/kundli-api/internal/services/astro/chart"
	"github.com/admin/astro-services/kundli-api/internal/services/astro/transit"
)

// Transits проецирует позиции на момент at на натальную карту.
// Транзитные позиции считаются в тех же настройках, что и сама карта.
func (s *Service) Transits(ctx context.Context, chartID uuid.UUID, at time.Time) (*domain.TransitData, error) {
	kundli, err := s.GetByID(ctx, chartID)
	if err != nil {
		return nil, err
	}

	positions, err := s.SiderealPositions(at, kundli.Settings)
	if err != nil {
		return nil, err
	}

	natal := &transit.Natal{
		Ascendant:  kundli.Ascendant,
		HouseCusps: kundli.HouseCusps,
		Positions:  kundli.Positions,
	}

	data := s.Transit.Build(at.UTC(), positions, natal)
	return &data, nil
}

// SiderealPositions возвращает сидерические позиции грах на момент времени.
// Дом не заполняется: без натальной сетки он не имеет смысла.
func (s *Service) SiderealPositions(at time.Time, settings domain.CalculationSettings) ([]domain.PlanetPosition, error) {
	if err := settings.Validate(); err != nil {
		return nil, err
	}

	tropical, err := s.Ephemeris.Positions(at, settings.NodeMode)
	if err != nil {
		return nil, err
	}

	ayanamsaValue, err := s.Ayanamsa.Value(at, settings.Ayanamsa)
	if err != nil {
		return nil, err
	}

	positions := make([]domain.PlanetPosition, 0, len(tropical))
	for _, t := range tropical {
		lon := math.Mod(math.Mod(t.Longitude-ayanamsaValue, 360)+360, 360)
		sign := domain.Sign(int(lon / 30))
		nak, pada := chart.NakshatraPada(lon)

		positions = append(positions, domain.PlanetPosition{
			Planet:      t.Planet,
			Longitude:   lon,
			Sign:        sign,
			Degree:      math.Mod(lon, 30),
			Nakshatra:   nak,
			Pada:        pada,
			Retrograde:  t.DailyMotion < 0,
			DailyMotion: t.DailyMotion,
			Dignity:     chart.DignityOf(t.Planet, sign, math.Mod(lon, 30)),
		})
	}

	return positions, nil
}
