package panchang

import (
	"math"
	"time"

	"github.com/admin/astro-services/kundli-api/internal/domain"
)

// Восход и закат по алгоритму NOAA: дробный год, уравнение времени, склонение
// Солнца и часовой угол для зенитного расстояния 90.833° (рефракция плюс
// полудиаметр диска).

const solarZenith = 90.833

// SunriseSunset моменты восхода и заката (UTC) для локальной календарной даты.
// За полярным кругом в дни без восхода или заката возвращает
// ErrUnsupportedConfiguration: гражданский панчанг там не определён.
func SunriseSunset(day time.Time, latitude, longitude float64) (sunrise, sunset time.Time, err error) {
	yearStart := time.Date(day.Year(), 1, 1, 0, 0, 0, 0, day.Location())
	dayOfYear := int(day.Sub(yearStart).Hours()/24) + 1

	// дробный год на местный полдень
	gamma := 2 * math.Pi / 365 * (float64(dayOfYear) - 1)

	eqTime := 229.18 * (0.000075 +
		0.001868*math.Cos(gamma) - 0.032077*math.Sin(gamma) -
		0.014615*math.Cos(2*gamma) - 0.040849*math.Sin(2*gamma))

	decl := 0.006918 -
		0.399912*math.Cos(gamma) + 0.070257*math.Sin(gamma) -
		0.006758*math.Cos(2*gamma) + 0.000907*math.Sin(2*gamma) -
		0.002697*math.Cos(3*gamma) + 0.00148*math.Sin(3*gamma)

	latRad := latitude * math.Pi / 180

	cosHA := math.Cos(solarZenith*math.Pi/180)/(math.Cos(latRad)*math.Cos(decl)) -
		math.Tan(latRad)*math.Tan(decl)
	if cosHA < -1 || cosHA > 1 {
		return time.Time{}, time.Time{}, domain.ErrUnsupportedConfiguration
	}
	haDeg := math.Acos(cosHA) * 180 / math.Pi

	// минуты UTC от полуночи
	riseMinutes := 720 - 4*(longitude+haDeg) - eqTime
	setMinutes := 720 - 4*(longitude-haDeg) - eqTime

	midnightUTC := time.Date(day.Year(), day.Month(), day.Day(), 0, 0, 0, 0, time.UTC)
	sunrise = midnightUTC.Add(time.Duration(riseMinutes * float64(time.Minute)))
	sunset = midnightUTC.Add(time.Duration(setMinutes * float64(time.Minute)))
	return sunrise, sunset, nil
}
