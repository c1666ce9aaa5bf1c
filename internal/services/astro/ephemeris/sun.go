package ephemeris

// Солнце по усечённой теории из "Astronomical Algorithms" (Meeus, гл. 25).
// Точность порядка долей угловой минуты в пределах рабочего диапазона дат.

// sunLongitude геометрическая тропическая долгота Солнца
func sunLongitude(jd float64) float64 {
	t := centuries(jd)

	// Средняя долгота и средняя аномалия
	l0 := 280.46646 + 36000.76983*t + 0.0003032*t*t
	m := 357.52911 + 35999.05029*t - 0.0001537*t*t

	// Уравнение центра
	c := (1.914602-0.004817*t-0.000014*t*t)*sind(m) +
		(0.019993-0.000101*t)*sind(2*m) +
		0.000289*sind(3*m)

	trueLon := l0 + c

	// Нутация и аберрация дают видимую долготу
	omega := 125.04 - 1934.136*t
	apparent := trueLon - 0.00569 - 0.00478*sind(omega)

	return normalize(apparent)
}

// sunMeanAnomaly средняя аномалия Солнца, нужна лунной теории
func sunMeanAnomaly(jd float64) float64 {
	t := centuries(jd)
	return normalize(357.5291092 + 35999.0502909*t - 0.0001536*t*t)
}

// meanObliquity средний наклон эклиптики
func MeanObliquity(jd float64) float64 {
	t := centuries(jd)
	return 23.43929111 - 0.0130041667*t - 1.6389e-7*t*t
}
