package chart

import (
	"fmt"
	"math"
	"time"

	"github.com/admin/astro-services/kundli-api/internal/domain"
	"github.com/admin/astro-services/kundli-api/internal/services/astro/ephemeris"
)

// Body сидерическое положение тела на входе построителя карты.
// Долготы уже скорректированы аянамшей: построитель не пересчитывает их сам,
// чтобы все движки наблюдали одни и те же разрешённые позиции.
type Body struct {
	Planet      domain.Planet
	Longitude   float64
	DailyMotion float64
}

// Result результат построения карты
type Result struct {
	Ascendant  domain.AscendantPosition
	HouseCusps [12]float64
	Positions  []domain.PlanetPosition
}

// Service строит асцендент, куспиды домов и позиции грах по уже разрешённым
// сидерическим долготам
type Service struct{}

func New() *Service {
	return &Service{}
}

// Build вычисляет асцендент по местному звёздному времени, куспиды выбранной
// системы домов и раскладывает тела по домам. Граница дома трактуется как
// [нижняя, верхняя): тело ровно на куспиде относится к начинающемуся дому.
func (s *Service) Build(instant time.Time, latitude, longitude, ayanamsaValue float64, bodies []Body, system domain.HouseSystem) (*Result, error) {
	jd := ephemeris.JulianDay(instant.UTC())

	ramc := localSiderealTime(jd, longitude)
	eps := ephemeris.MeanObliquity(jd)

	ascTropical := ascendantLongitude(ramc, latitude, eps)
	ascSidereal := normalize(ascTropical - ayanamsaValue)

	cusps, err := houseCusps(system, ascSidereal, ramc, latitude, eps, ayanamsaValue)
	if err != nil {
		return nil, err
	}

	nak, pada := NakshatraPada(ascSidereal)
	result := &Result{
		Ascendant: domain.AscendantPosition{
			Longitude: ascSidereal,
			Sign:      domain.Sign(int(ascSidereal / 30)),
			Degree:    math.Mod(ascSidereal, 30),
			Nakshatra: nak,
			Pada:      pada,
		},
		HouseCusps: cusps,
	}

	for _, b := range bodies {
		lon := normalize(b.Longitude)
		nak, pada := NakshatraPada(lon)
		sign := domain.Sign(int(lon / 30))

		result.Positions = append(result.Positions, domain.PlanetPosition{
			Planet:      b.Planet,
			Longitude:   lon,
			Sign:        sign,
			Degree:      math.Mod(lon, 30),
			House:       houseOf(system, lon, result.Ascendant.Sign, cusps),
			Nakshatra:   nak,
			Pada:        pada,
			Retrograde:  b.DailyMotion < 0,
			DailyMotion: b.DailyMotion,
			Dignity:     DignityOf(b.Planet, sign, math.Mod(lon, 30)),
		})
	}

	return result, nil
}

// NakshatraPada номер накшатры (1..27) и пады (1..4) для сидерической долготы
func NakshatraPada(longitude float64) (int, int) {
	lon := normalize(longitude)
	nak := int(lon / domain.NakshatraSpan)
	if nak > domain.NakshatraCount-1 {
		nak = domain.NakshatraCount - 1
	}
	within := lon - float64(nak)*domain.NakshatraSpan
	pada := 1 + int(within/(domain.NakshatraSpan/4))
	if pada > 4 {
		pada = 4
	}
	return nak + 1, pada
}

// localSiderealTime местное звёздное время в градусах (RAMC)
func localSiderealTime(jd, longitude float64) float64 {
	t := (jd - ephemeris.J2000) / 36525.0
	gmst := 280.46061837 + 360.98564736629*(jd-ephemeris.J2000) + 0.000387933*t*t - t*t*t/38710000
	return normalize(gmst + longitude)
}

// ascendantLongitude тропическая долгота асцендента
func ascendantLongitude(ramc, latitude, eps float64) float64 {
	y := cosd(ramc)
	x := -(sind(ramc)*cosd(eps) + tand(latitude)*sind(eps))
	return normalize(math.Atan2(y, x) * 180 / math.Pi)
}

// mcLongitude тропическая долгота MC, квадрант согласован с RAMC
func mcLongitude(ramc, eps float64) float64 {
	mc := math.Atan2(sind(ramc), cosd(ramc)*cosd(eps)) * 180 / math.Pi
	return normalize(mc)
}

// houseCusps сидерические куспиды 12 домов
func houseCusps(system domain.HouseSystem, ascSidereal, ramc, latitude, eps, ayanamsa float64) ([12]float64, error) {
	var cusps [12]float64

	switch system {
	case domain.HouseWholeSign:
		// Куспид дома - начало знака, первый дом от знака асцендента
		first := float64(int(ascSidereal/30)) * 30
		for i := 0; i < 12; i++ {
			cusps[i] = normalize(first + float64(i)*30)
		}

	case domain.HouseEqual:
		for i := 0; i < 12; i++ {
			cusps[i] = normalize(ascSidereal + float64(i)*30)
		}

	case domain.HousePlacidus:
		tropical, ok := placidusCusps(ramc, latitude, eps)
		if !ok {
			// В приполярных широтах полудуги вырождаются; откатываемся на равнодомную систему
			for i := 0; i < 12; i++ {
				cusps[i] = normalize(ascSidereal + float64(i)*30)
			}
			return cusps, nil
		}
		for i := 0; i < 12; i++ {
			cusps[i] = normalize(tropical[i] - ayanamsa)
		}

	default:
		return cusps, fmt.Errorf("%w: house system %q", domain.ErrUnsupportedConfiguration, system)
	}

	return cusps, nil
}

// placidusCusps тропические куспиды Плацидуса; false при вырождении на высоких широтах
func placidusCusps(ramc, latitude, eps float64) ([12]float64, bool) {
	asc := ascendantLongitude(ramc, latitude, eps)
	mc := mcLongitude(ramc, eps)

	// |φ| выше полярного круга эклиптики: куспиды не определены
	if math.Abs(latitude) > 90-eps-0.01 {
		return [12]float64{}, false
	}

	c11, ok1 := placidusIntermediate(ramc, latitude, eps, 30, 1.0/3.0, true)
	c12, ok2 := placidusIntermediate(ramc, latitude, eps, 60, 2.0/3.0, true)
	c2, ok3 := placidusIntermediate(ramc, latitude, eps, 120, 2.0/3.0, false)
	c3, ok4 := placidusIntermediate(ramc, latitude, eps, 150, 1.0/3.0, false)
	if !ok1 || !ok2 || !ok3 || !ok4 {
		return [12]float64{}, false
	}

	var cusps [12]float64
	cusps[0] = asc
	cusps[1] = c2
	cusps[2] = c3
	cusps[3] = normalize(mc + 180)
	cusps[4] = normalize(c11 + 180)
	cusps[5] = normalize(c12 + 180)
	cusps[6] = normalize(asc + 180)
	cusps[7] = normalize(c2 + 180)
	cusps[8] = normalize(c3 + 180)
	cusps[9] = mc
	cusps[10] = c11
	cusps[11] = c12
	return cusps, true
}

// placidusIntermediate промежуточный куспид методом неподвижной точки: точка эклиптики,
// чьё расстояние от меридиана составляет заданную долю её полудуги.
// day=true для дневных куспидов (11, 12), false для ночных (2, 3).
func placidusIntermediate(ramc, latitude, eps, offset, fraction float64, day bool) (float64, bool) {
	lon := raToEcliptic(ramc+offset, eps)

	for i := 0; i < 50; i++ {
		dec := math.Asin(sind(eps)*sind(lon)) * 180 / math.Pi

		x := tand(latitude) * tand(dec)
		if x < -1 || x > 1 {
			return 0, false
		}
		ad := math.Asin(x) * 180 / math.Pi

		// Дневные куспиды лежат на RAMC + f·SA_d (дневная полудуга 90+AD),
		// ночные отсчитываются назад от RAIC по ночной полудуге 90-AD
		var targetRA float64
		if day {
			targetRA = ramc + fraction*(90+ad)
		} else {
			targetRA = ramc + 180 - fraction*(90-ad)
		}

		next := raToEcliptic(targetRA, eps)
		if math.Abs(angleDiff(next, lon)) < 1e-7 {
			lon = next
			break
		}
		lon = next
	}

	return normalize(lon), true
}

// raToEcliptic эклиптическая долгота точки эклиптики с данным прямым восхождением
func raToEcliptic(ra, eps float64) float64 {
	return normalize(math.Atan2(sind(ra), cosd(ra)*cosd(eps)) * 180 / math.Pi)
}

// houseOf номер дома тела, границы [нижняя, верхняя)
func houseOf(system domain.HouseSystem, longitude float64, ascSign domain.Sign, cusps [12]float64) int {
	if system == domain.HouseWholeSign {
		bodySign := int(longitude / 30)
		return 1 + ((bodySign-int(ascSign))%12+12)%12
	}

	for i := 0; i < 12; i++ {
		lo := cusps[i]
		hi := cusps[(i+1)%12]
		if inArc(longitude, lo, hi) {
			return i + 1
		}
	}
	// недостижимо: куспиды покрывают полный круг
	return 1
}

// inArc true, если долгота лежит в дуге [lo, hi) по ходу зодиака
func inArc(lon, lo, hi float64) bool {
	lon = normalize(lon - lo)
	hi = normalize(hi - lo)
	if hi == 0 {
		hi = 360
	}
	return lon < hi
}

func normalize(deg float64) float64 {
	deg = math.Mod(deg, 360)
	if deg < 0 {
		deg += 360
	}
	return deg
}

func angleDiff(a, b float64) float64 {
	d := math.Mod(a-b, 360)
	if d > 180 {
		d -= 360
	}
	if d < -180 {
		d += 360
	}
	return d
}

func sind(deg float64) float64 { return math.Sin(deg * math.Pi / 180) }
func cosd(deg float64) float64 { return math.Cos(deg * math.Pi / 180) }
func tand(deg float64) float64 { return math.Tan(deg * math.Pi / 180) }
