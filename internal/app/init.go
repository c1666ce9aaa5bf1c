package app

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/jmoiron/sqlx"

	server "github.com/admin/astro-services/kundli-api/internal/adapters/primary/http"
	healthcheckController "github.com/admin/astro-services/kundli-api/internal/adapters/primary/http/controllers/healthcheck"
	kundliController "github.com/admin/astro-services/kundli-api/internal/adapters/primary/http/controllers/kundli"
	panchangController "github.com/admin/astro-services/kundli-api/internal/adapters/primary/http/controllers/panchang"
	alerterAdapter "github.com/admin/astro-services/kundli-api/internal/adapters/secondary/alerter"
	kafkaAdapter "github.com/admin/astro-services/kundli-api/internal/adapters/secondary/kafka"
	"github.com/admin/astro-services/kundli-api/internal/adapters/secondary/storage/pg"
	redisAdapter "github.com/admin/astro-services/kundli-api/internal/adapters/secondary/storage/redis"
	s3Adapter "github.com/admin/astro-services/kundli-api/internal/adapters/secondary/storage/s3"
	"github.com/admin/astro-services/kundli-api/internal/ports/cache"
	kafkaPorts "github.com/admin/astro-services/kundli-api/internal/ports/kafka"
	"github.com/admin/astro-services/kundli-api/internal/ports/repository"
	"github.com/admin/astro-services/kundli-api/internal/ports/service"
	"github.com/admin/astro-services/kundli-api/internal/ports/storage"
	chartRepo "github.com/admin/astro-services/kundli-api/internal/repository/chart"
	"github.com/admin/astro-services/kundli-api/internal/services/astro/ayanamsa"
	"github.com/admin/astro-services/kundli-api/internal/services/astro/chart"
	"github.com/admin/astro-services/kundli-api/internal/services/astro/dasha"
	"github.com/admin/astro-services/kundli-api/internal/services/astro/ephemeris"
	panchangEngine "github.com/admin/astro-services/kundli-api/internal/services/astro/panchang"
	"github.com/admin/astro-services/kundli-api/internal/services/astro/strength"
	"github.com/admin/astro-services/kundli-api/internal/services/astro/transit"
	"github.com/admin/astro-services/kundli-api/internal/services/astro/varga"
	"github.com/admin/astro-services/kundli-api/internal/services/astro/yoga"
	jobScheduler "github.com/admin/astro-services/kundli-api/internal/services/jobs"
	kundliUsecase "github.com/admin/astro-services/kundli-api/internal/usecases/kundli"
	panchangUsecase "github.com/admin/astro-services/kundli-api/internal/usecases/panchang"
)

type Dependencies struct {
	DB             *sqlx.DB
	HTTPServer     *http.Server
	KafkaProducers map[string]*kafkaAdapter.Producer
	Cache          cache.Cache
	JobScheduler   *jobScheduler.Scheduler
}

// initDependencies инициализирует все зависимости приложения
func (a *App) initDependencies(ctx context.Context) (*Dependencies, error) {
	db, err := a.initPostgres()
	if err != nil {
		return nil, fmt.Errorf("failed to init postgres: %w", err)
	}

	persistenceLayer := pg.NewDB(db)
	charts := chartRepo.New(persistenceLayer, a.Log)

	externalServices := a.initExternalServices()
	kafkaProducers := a.initKafka()

	// Producer запросов на интерпретацию может отсутствовать в локальной конфигурации
	var reportProducer *kafkaAdapter.Producer
	if prod, ok := kafkaProducers["report_requests"]; ok {
		reportProducer = prod
	}

	kundliService, panchangService := a.initUseCases(charts, externalServices, reportProducer)

	httpServer := a.initHTTP(db, kundliService, panchangService)
	scheduler := a.initJobScheduler(externalServices.Alerter, charts, kundliService, panchangService, externalServices.Cache)

	return &Dependencies{
		DB:             db,
		HTTPServer:     httpServer,
		KafkaProducers: kafkaProducers,
		Cache:          externalServices.Cache,
		JobScheduler:   scheduler,
	}, nil
}

// externalServices содержит внешние сервисы (опциональные)
type externalServices struct {
	Alerter service.IAlerterService
	Cache   cache.Cache
	S3      storage.IS3Client
}

// initExternalServices инициализирует внешние сервисы (Alerter, Cache, S3)
func (a *App) initExternalServices() *externalServices {
	services := &externalServices{}

	// Alerter - опциональный
	if a.Cfg.Alerter != nil && a.Cfg.Alerter.WebhookURL != "" {
		services.Alerter = alerterAdapter.NewClient(a.Cfg.Alerter, a.Log)
	}

	// Redis Cache - опциональный
	if a.Cfg.Redis != nil {
		redisClient, err := a.Cfg.Redis.NewConnection()
		if err != nil {
			a.Log.Warn("failed to init redis cache, continuing without cache", "error", err)
		} else {
			services.Cache = redisAdapter.NewClient(redisClient, a.Log)
			a.Log.Info("redis cache connected successfully")
		}
	}

	// S3 - опциональный, без него не сохраняются снимки карт
	if a.Cfg.S3 != nil && a.Cfg.S3.Host != "" {
		s3Client, err := a.Cfg.S3.NewClient()
		if err != nil {
			a.Log.Warn("failed to init s3 storage, continuing without snapshots", "error", err)
		} else {
			services.S3 = s3Adapter.NewClient(s3Client, a.Cfg.S3.Bucket, a.Log)
			a.Log.Info("s3 storage connected successfully")
		}
	}

	return services
}

// initKafka инициализирует Kafka producers
func (a *App) initKafka() map[string]*kafkaAdapter.Producer {
	producers := make(map[string]*kafkaAdapter.Producer)

	for _, kafkaCfg := range a.Cfg.Kafka.List {
		// Producer: есть topic, но нет consumer group
		if kafkaCfg.Config != nil && kafkaCfg.Config.Topic != "" && kafkaCfg.Config.ConsumerGroup == "" {
			prod, err := kafkaAdapter.NewProducer(kafkaCfg.Config, a.Log)
			if err != nil {
				a.Log.Warn("failed to create kafka producer", "error", err, "name", kafkaCfg.Name)
				continue
			}
			producers[kafkaCfg.Name] = prod
		}
	}

	return producers
}

// initUseCases инициализирует use cases вместе с расчётными движками
func (a *App) initUseCases(
	charts repository.IChartRepo,
	externalServices *externalServices,
	reportProducer *kafkaAdapter.Producer,
) (*kundliUsecase.Service, *panchangUsecase.Service) {
	ephemerisService := ephemeris.New()
	ayanamsaService := ayanamsa.New()
	chartService := chart.New()
	vargaService := varga.New()
	dashaService := dasha.New()
	yogaService := yoga.New(a.Log)
	strengthService := strength.New()
	transitService := transit.New()
	panchangService := panchangEngine.New()

	// typed nil в интерфейсе перестаёт быть nil, поэтому присваиваем только живой producer
	var producerPort kafkaPorts.IKafkaProducer
	if reportProducer != nil {
		producerPort = reportProducer
	}

	kundliService := kundliUsecase.New(
		charts,
		externalServices.Cache, // может быть nil
		producerPort,           // может быть nil
		externalServices.S3,    // может быть nil
		ephemerisService,
		ayanamsaService,
		chartService,
		vargaService,
		dashaService,
		yogaService,
		strengthService,
		transitService,
		a.Log,
	)

	panchangUsecaseService := panchangUsecase.New(
		externalServices.Cache,
		ephemerisService,
		ayanamsaService,
		panchangService,
		a.Log,
	)

	return kundliService, panchangUsecaseService
}

// initHTTP инициализирует HTTP сервер и контроллеры
func (a *App) initHTTP(
	db *sqlx.DB,
	kundliService *kundliUsecase.Service,
	panchangService *panchangUsecase.Service,
) *http.Server {
	controllers := []server.Controller{
		healthcheckController.New(db, a.Log),
		kundliController.New(kundliService, a.Log),
		panchangController.New(panchangService, a.Log),
	}

	return server.NewHTTPServer(a.Cfg.Server, a.Log, controllers...)
}

// initJobScheduler инициализирует планировщик джоб
func (a *App) initJobScheduler(
	alerterSvc service.IAlerterService,
	charts repository.IChartRepo,
	kundliService *kundliUsecase.Service,
	panchangService *panchangUsecase.Service,
	cacheClient cache.Cache,
) *jobScheduler.Scheduler {
	scheduler := jobScheduler.NewScheduler(a.Log, alerterSvc)

	// Прогрев кеша имеет смысл только при включённом кеше
	if cacheClient != nil {
		if a.Cfg.Panchang != nil {
			panchangJob := jobScheduler.NewPanchangPrecompute(
				panchangService,
				a.Log,
				a.Cfg.Panchang.Timezone,
				a.Cfg.Panchang.Latitude,
				a.Cfg.Panchang.Longitude,
			)
			scheduler.Register(panchangJob)
			a.Log.Info("panchang precompute job registered")
		}

		transitRefresh := jobScheduler.NewTransitRefresh(kundliService, cacheClient, a.Log)
		scheduler.Register(transitRefresh)
		a.Log.Info("transit refresh job registered")
	}

	retention := time.Duration(a.Cfg.ChartRetentionDays) * 24 * time.Hour
	chartCleanup := jobScheduler.NewChartCleanup(charts, a.Log, retention)
	scheduler.Register(chartCleanup)
	a.Log.Info("chart cleanup job registered")

	return scheduler
}
