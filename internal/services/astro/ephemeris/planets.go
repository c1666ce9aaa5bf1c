package ephemeris

import (
	"math"

	"github.com/admin/astro-services/kundli-api/internal/domain"
)

// Планеты по кеплеровским элементам с вековыми скоростями (аппроксимация JPL,
// таблица Standish для 1800–2050, пригодна с деградацией точности и шире).
// Гелиоцентрические координаты планеты и Земли переводятся в геоцентрическую
// эклиптическую долготу; затем долгота приводится от J2000 к эклиптике даты.

type keplerElements struct {
	a, aDot   float64 // большая полуось, а.е.
	e, eDot   float64 // эксцентриситет
	i, iDot   float64 // наклонение, °
	l, lDot   float64 // средняя долгота, °
	w, wDot   float64 // долгота перигелия, °
	om, omDot float64 // долгота восходящего узла, °
}

var planetElements = map[domain.Planet]keplerElements{
	domain.Mercury: {0.38709927, 0.00000037, 0.20563593, 0.00001906, 7.00497902, -0.00594749, 252.25032350, 149472.67411175, 77.45779628, 0.16047689, 48.33076593, -0.12534081},
	domain.Venus:   {0.72333566, 0.00000390, 0.00677672, -0.00004107, 3.39467605, -0.00078890, 181.97909950, 58517.81538729, 131.60246718, 0.00268329, 76.67984255, -0.27769418},
	domain.Mars:    {1.52371034, 0.00001847, 0.09339410, 0.00007882, 1.84969142, -0.00813131, -4.55343205, 19140.30268499, -23.94362959, 0.44441088, 49.55953891, -0.29257343},
	domain.Jupiter: {5.20288700, -0.00011607, 0.04838624, -0.00013253, 1.30439695, -0.00183714, 34.39644051, 3034.74612775, 14.72847983, 0.21252668, 100.47390909, 0.20469106},
	domain.Saturn:  {9.53667594, -0.00125060, 0.05386179, -0.00050991, 2.48599187, 0.00193609, 49.95424423, 1222.49362201, 92.59887831, -0.41897216, 113.66242448, -0.28867794},
}

// элементы барицентра Земля-Луна
var earthElements = keplerElements{1.00000261, 0.00000562, 0.01671123, -0.00004392, -0.00001531, -0.01294668, 100.46457166, 35999.37244981, 102.93768193, 0.32327364, 0, 0}

// heliocentric прямоугольные гелиоцентрические координаты в плоскости эклиптики J2000
func heliocentric(el keplerElements, t float64) (x, y float64) {
	a := el.a + el.aDot*t
	e := el.e + el.eDot*t
	i := el.i + el.iDot*t
	l := el.l + el.lDot*t
	w := el.w + el.wDot*t
	om := el.om + el.omDot*t

	// Аргумент перигелия и средняя аномалия
	argPeri := w - om
	m := normalizeArc(l - w)

	ec := solveKepler(m, e)

	// Координаты в плоскости орбиты
	xp := a * (cosd(ec) - e)
	yp := a * math.Sqrt(1-e*e) * sind(ec)

	// Поворот в эклиптику J2000
	cw, sw := cosd(argPeri), sind(argPeri)
	co, so := cosd(om), sind(om)
	ci := cosd(i)

	x = (cw*co-sw*so*ci)*xp + (-sw*co-cw*so*ci)*yp
	y = (cw*so+sw*co*ci)*xp + (-sw*so+cw*co*ci)*yp
	return x, y
}

// solveKepler решает уравнение Кеплера M = E - e·sinE итерацией Ньютона, аргументы в градусах
func solveKepler(m, e float64) float64 {
	eDeg := e * 180 / math.Pi
	ec := m + eDeg*sind(m)
	for iter := 0; iter < 12; iter++ {
		dm := m - (ec - eDeg*sind(ec))
		de := dm / (1 - e*cosd(ec))
		ec += de
		if math.Abs(de) < 1e-8 {
			break
		}
	}
	return ec
}

// planetLongitude геоцентрическая тропическая долгота планеты на дату
func planetLongitude(p domain.Planet, jd float64) float64 {
	el, ok := planetElements[p]
	if !ok {
		// неизвестное тело сюда не попадает: маршрутизация в bodyLongitude фиксирована
		return 0
	}

	t := centuries(jd)

	px, py := heliocentric(el, t)
	ex, ey := heliocentric(earthElements, t)

	// Геоцентрический вектор и долгота в системе J2000
	lon := math.Atan2(py-ey, px-ex) * 180 / math.Pi

	// Прецессия от J2000 к эклиптике даты
	lon += 1.396971*t + 0.0003086*t*t

	return normalize(lon)
}
