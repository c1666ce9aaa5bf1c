package app

import (
	"fmt"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"

	server "github.com/admin/astro-services/kundli-api/internal/adapters/primary/http"
	alerterAdapter "github.com/admin/astro-services/kundli-api/internal/adapters/secondary/alerter"
	kafkaAdapter "github.com/admin/astro-services/kundli-api/internal/adapters/secondary/kafka"
	"github.com/admin/astro-services/kundli-api/internal/adapters/secondary/storage/pg"
	redisAdapter "github.com/admin/astro-services/kundli-api/internal/adapters/secondary/storage/redis"
	s3Adapter "github.com/admin/astro-services/kundli-api/internal/adapters/secondary/storage/s3"
	"github.com/admin/astro-services/kundli-api/internal/pkg/logger"
)

type Config struct {
	Postgres *pg.Config                `envconfig:"POSTGRES"`
	Log      *logger.Config            `envconfig:"LOG"`
	Server   *server.Config            `envconfig:"APISERVER"`
	Redis    *redisAdapter.Config      `envconfig:"REDIS"`
	S3       *s3Adapter.Config         `envconfig:"S3"`
	Kafka    kafkaAdapter.KafkaConfigs `envconfig:"KAFKA"`
	Alerter  *alerterAdapter.Config    `envconfig:"ALERTER"`
	Panchang *PanchangLocation         `envconfig:"PANCHANG"`

	ChartRetentionDays int `envconfig:"CHART_RETENTION_DAYS" default:"90"`
}

// PanchangLocation локация для ежедневного прогрева панчанга
type PanchangLocation struct {
	Timezone  string  `envconfig:"TIMEZONE" default:"Asia/Kolkata"`
	Latitude  float64 `envconfig:"LATITUDE" default:"28.6139"`
	Longitude float64 `envconfig:"LONGITUDE" default:"77.2090"`
}

func NewEnvConfig(envPrefix string) (*Config, error) {
	cfg := &Config{}

	_ = godotenv.Load("deployments/local/.env")

	if err := envconfig.Process(envPrefix, cfg); err != nil {
		return nil, err
	}

	// Загружаем Kafka конфигурацию вручную
	if err := cfg.Kafka.Load(envPrefix); err != nil {
		return nil, fmt.Errorf("failed to load kafka config: %w", err)
	}

	return cfg, nil
}
