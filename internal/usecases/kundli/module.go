package kundli

import (
	"log/slog"

	"github.com/admin/astro-services/kundli-api/internal/ports/cache"
	"github.com/admin/astro-services/kundli-api/internal/ports/kafka"
	"github.com/admin/astro-services/kundli-api/internal/ports/repository"
	"github.com/admin/astro-services/kundli-api/internal/ports/storage"
	"github.com/admin/astro-services/kundli-api/internal/services/astro/ayanamsa"
	"github.com/admin/astro-services/kundli-api/internal/services/astro/chart"
	"github.com/admin/astro-services/kundli-api/internal/services/astro/dasha"
	"github.com/admin/astro-services/kundli-api/internal/services/astro/ephemeris"
	"github.com/admin/astro-services/kundli-api/internal/services/astro/strength"
	"github.com/admin/astro-services/kundli-api/internal/services/astro/transit"
	"github.com/admin/astro-services/kundli-api/internal/services/astro/varga"
	"github.com/admin/astro-services/kundli-api/internal/services/astro/yoga"
)

// Service бизнес-логика расчёта и хранения натальных карт.
// Cache, Producer и S3 опциональны: при nil соответствующие шаги пропускаются.
type Service struct {
	ChartRepo repository.IChartRepo
	Cache     cache.Cache
	Producer  kafka.IKafkaProducer
	S3        storage.IS3Client

	Ephemeris *ephemeris.Service
	Ayanamsa  *ayanamsa.Service
	Chart     *chart.Service
	Varga     *varga.Service
	Dasha     *dasha.Service
	Yoga      *yoga.Service
	Strength  *strength.Service
	Transit   *transit.Service

	Log *slog.Logger
}

func New(
	chartRepo repository.IChartRepo,
	cacheClient cache.Cache,
	producer kafka.IKafkaProducer,
	s3Client storage.IS3Client,
	ephemerisService *ephemeris.Service,
	ayanamsaService *ayanamsa.Service,
	chartService *chart.Service,
	vargaService *varga.Service,
	dashaService *dasha.Service,
	yogaService *yoga.Service,
	strengthService *strength.Service,
	transitService *transit.Service,
	log *slog.Logger,
) *Service {
	return &Service{
		ChartRepo: chartRepo,
		Cache:     cacheClient,
		Producer:  producer,
		S3:        s3Client,
		Ephemeris: ephemerisService,
		Ayanamsa:  ayanamsaService,
		Chart:     chartService,
		Varga:     vargaService,
		Dasha:     dashaService,
		Yoga:      yogaService,
		Strength:  strengthService,
		Transit:   transitService,
		Log:       log,
	}
}
