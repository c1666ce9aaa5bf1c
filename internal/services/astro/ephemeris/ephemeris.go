package ephemeris

import (
	"fmt"
	"math"
	"time"

	"github.com/admin/astro-services/kundli-api/internal/domain"
)

// Допустимый диапазон дат: за его пределами усечённые ряды быстро теряют точность
const (
	minYear = 1600
	maxYear = 2400
)

// J2000 юлианская дата эпохи J2000.0
const J2000 = 2451545.0

// TropicalPosition тропическая (несидерическая) позиция тела
type TropicalPosition struct {
	Planet      domain.Planet
	Longitude   float64 // тропическая эклиптическая долгота, [0, 360)
	DailyMotion float64 // градусов в сутки, отрицательное при ретроградном движении
}

// Service вычисляет геоцентрические тропические долготы Солнца, Луны, пяти планет
// и лунных узлов по усечённым аналитическим рядам. Чистая функция момента времени,
// безопасна для конкурентного использования.
type Service struct{}

func New() *Service {
	return &Service{}
}

// Positions возвращает позиции всех девяти грах на момент UTC в фиксированном
// порядке Sun..Ketu. Раху и Кету всегда отстоят друг от друга ровно на 180°.
func (s *Service) Positions(instant time.Time, nodeMode domain.NodeMode) ([]TropicalPosition, error) {
	utc := instant.UTC()
	if utc.Year() < minYear || utc.Year() > maxYear {
		return nil, fmt.Errorf("%w: year %d is outside [%d, %d]", domain.ErrDateOutOfRange, utc.Year(), minYear, maxYear)
	}

	jd := JulianDay(utc)

	// Суточное движение считается численно симметричной разностью за половину суток
	// в обе стороны: единый подход для всех тел, корректно отражает ретроградность.
	const halfDay = 0.5

	positions := make([]TropicalPosition, 0, len(domain.AllPlanets))
	for _, planet := range domain.AllPlanets {
		lon := bodyLongitude(planet, jd, nodeMode)
		before := bodyLongitude(planet, jd-halfDay, nodeMode)
		after := bodyLongitude(planet, jd+halfDay, nodeMode)
		motion := normalizeArc(after - before)

		positions = append(positions, TropicalPosition{
			Planet:      planet,
			Longitude:   lon,
			DailyMotion: motion,
		})
	}

	return positions, nil
}

// bodyLongitude тропическая долгота одного тела на юлианскую дату
func bodyLongitude(p domain.Planet, jd float64, nodeMode domain.NodeMode) float64 {
	switch p {
	case domain.Sun:
		return sunLongitude(jd)
	case domain.Moon:
		return moonLongitude(jd)
	case domain.Rahu:
		return nodeLongitude(jd, nodeMode)
	case domain.Ketu:
		return normalize(nodeLongitude(jd, nodeMode) + 180)
	default:
		return planetLongitude(p, jd)
	}
}

// JulianDay юлианская дата момента UTC
func JulianDay(t time.Time) float64 {
	return float64(t.UnixNano())/(86400.0*1e9) + 2440587.5
}

// centuries юлианские столетия от J2000.0
func centuries(jd float64) float64 {
	return (jd - J2000) / 36525.0
}

// normalize приводит угол в [0, 360)
func normalize(deg float64) float64 {
	deg = math.Mod(deg, 360)
	if deg < 0 {
		deg += 360
	}
	return deg
}

// normalizeArc приводит разность углов в (-180, 180]
func normalizeArc(deg float64) float64 {
	deg = math.Mod(deg, 360)
	if deg > 180 {
		deg -= 360
	}
	if deg <= -180 {
		deg += 360
	}
	return deg
}

func sind(deg float64) float64 { return math.Sin(deg * math.Pi / 180) }
func cosd(deg float64) float64 { return math.Cos(deg * math.Pi / 180) }
