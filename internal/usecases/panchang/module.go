package panchang

import (
	"log/slog"

	"github.com/admin/astro-services/kundli-api/internal/ports/cache"
	"github.com/admin/astro-services/kundli-api/internal/services/astro/ayanamsa"
	"github.com/admin/astro-services/kundli-api/internal/services/astro/ephemeris"
	"github.com/admin/astro-services/kundli-api/internal/services/astro/panchang"
)

// Service бизнес-логика расчёта панчанга на день
type Service struct {
	Cache cache.Cache

	Ephemeris *ephemeris.Service
	Ayanamsa  *ayanamsa.Service
	Panchang  *panchang.Service

	Log *slog.Logger
}

func New(
	cacheClient cache.Cache,
	ephemerisService *ephemeris.Service,
	ayanamsaService *ayanamsa.Service,
	panchangService *panchang.Service,
	log *slog.Logger,
) *Service {
	return &Service{
		Cache:     cacheClient,
		Ephemeris: ephemerisService,
		Ayanamsa:  ayanamsaService,
		Panchang:  panchangService,
		Log:       log,
	}
}
