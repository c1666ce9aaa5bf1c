package jobs

import (
	"context"
	"log/slog"
	"time"

	panchangUsecase "github.com/admin/astro-services/kundli-api/internal/usecases/panchang"
)

const panchangPrecomputeName = "panchang-precompute"

// PanchangPrecompute джоба для прогрева дневного панчанга в кеше,
// каждый день в 04:00 по локальному времени настроенной локации
type PanchangPrecompute struct {
	panchangService *panchangUsecase.Service
	log             *slog.Logger
	location        *time.Location
	timezone        string
	latitude        float64
	longitude       float64
}

// NewPanchangPrecompute создаёт джобу прогрева панчанга для заданной локации
func NewPanchangPrecompute(panchangService *panchangUsecase.Service, log *slog.Logger, timezone string, latitude, longitude float64) *PanchangPrecompute {
	location, _ := time.LoadLocation(timezone)
	if location == nil {
		location = time.UTC
		timezone = "UTC"
	}

	return &PanchangPrecompute{
		panchangService: panchangService,
		log:             log,
		location:        location,
		timezone:        timezone,
		latitude:        latitude,
		longitude:       longitude,
	}
}

func (j *PanchangPrecompute) Name() string {
	return panchangPrecomputeName
}

// NextRun вычисляет следующее время запуска
func (j *PanchangPrecompute) NextRun(now time.Time) time.Time {
	local := now.In(j.location)

	next := time.Date(local.Year(), local.Month(), local.Day(), 4, 0, 0, 0, j.location)
	if next.Before(local) || next.Equal(local) {
		next = next.Add(24 * time.Hour)
	}
	return next
}

// Run рассчитывает панчанг на сегодня, результат оседает в кеше
func (j *PanchangPrecompute) Run(ctx context.Context) error {
	today := time.Now().In(j.location)

	result, err := j.panchangService.ForDate(ctx, today, j.latitude, j.longitude, j.timezone)
	if err != nil {
		return err
	}

	j.log.Info("panchang precomputed",
		"date", result.Date.Format("2006-01-02"),
		"tithi", result.Tithi.Number,
		"nakshatra", result.Nakshatra.Number,
	)
	return nil
}
