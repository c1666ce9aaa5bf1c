package panchang

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/admin/astro-services/kundli-api/internal/domain"
	"github.com/admin/astro-services/kundli-api/internal/services/astro/panchang"
)

const (
	panchangCacheTTL = 25 * time.Hour
)

func panchangCacheKey(date time.Time, latitude, longitude float64, tz string) string {
	return fmt.Sprintf("panchang:%s:%.4f:%.4f:%s", date.Format("2006-01-02"), latitude, longitude, tz)
}

// ForDate рассчитывает панчанг на календарную дату в указанном месте.
// Элементы дня фиксируются на момент восхода Солнца, сидерические долготы по Лахири.
func (s *Service) ForDate(ctx context.Context, date time.Time, latitude, longitude float64, timezone string) (*domain.Panchang, error) {
	loc, err := time.LoadLocation(timezone)
	if err != nil {
		return nil, fmt.Errorf("%w: unknown timezone %q", domain.ErrInvalidBirthDetails, timezone)
	}

	local := date.In(loc)
	day := time.Date(local.Year(), local.Month(), local.Day(), 0, 0, 0, 0, loc)

	if cached := s.getCached(ctx, day, latitude, longitude, timezone); cached != nil {
		return cached, nil
	}

	sunrise, _, err := panchang.SunriseSunset(day, latitude, longitude)
	if err != nil {
		return nil, err
	}

	sunLon, moonLon, err := s.siderealLuminaries(sunrise)
	if err != nil {
		return nil, err
	}

	result, err := s.Panchang.Build(day, latitude, longitude, loc, sunLon, moonLon)
	if err != nil {
		return nil, err
	}

	s.setCached(ctx, result, latitude, longitude, timezone)
	return result, nil
}

// siderealLuminaries сидерические долготы Солнца и Луны на момент времени
func (s *Service) siderealLuminaries(at time.Time) (sunLon, moonLon float64, err error) {
	positions, err := s.Ephemeris.Positions(at, domain.NodeMean)
	if err != nil {
		return 0, 0, err
	}

	ayanamsaValue, err := s.Ayanamsa.Value(at, domain.AyanamsaLahiri)
	if err != nil {
		return 0, 0, err
	}

	for _, p := range positions {
		switch p.Planet {
		case domain.Sun:
			sunLon = normalize(p.Longitude - ayanamsaValue)
		case domain.Moon:
			moonLon = normalize(p.Longitude - ayanamsaValue)
		}
	}

	return sunLon, moonLon, nil
}

func (s *Service) getCached(ctx context.Context, date time.Time, latitude, longitude float64, tz string) *domain.Panchang {
	if s.Cache == nil {
		return nil
	}

	payload, err := s.Cache.Get(ctx, panchangCacheKey(date, latitude, longitude, tz))
	if err != nil {
		return nil
	}

	var result domain.Panchang
	if err := json.Unmarshal([]byte(payload), &result); err != nil {
		s.Log.Warn("failed to unmarshal cached panchang", "error", err)
		return nil
	}

	return &result
}

func (s *Service) setCached(ctx context.Context, result *domain.Panchang, latitude, longitude float64, tz string) {
	if s.Cache == nil {
		return
	}

	payload, err := json.Marshal(result)
	if err != nil {
		s.Log.Warn("failed to marshal panchang for cache", "error", err)
		return
	}

	key := panchangCacheKey(result.Date, latitude, longitude, tz)
	if err := s.Cache.Set(ctx, key, string(payload), panchangCacheTTL); err != nil {
		s.Log.Warn("failed to cache panchang", "error", err)
	}
}

func normalize(deg float64) float64 {
	deg = deg - 360*float64(int(deg/360))
	if deg < 0 {
		deg += 360
	}
	return deg
}
