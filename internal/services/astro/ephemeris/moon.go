package ephemeris

import "github.com/admin/astro-services/kundli-api/internal/domain"

// Луна по усечённому ряду ELP из "Astronomical Algorithms" (Meeus, гл. 47).
// Оставлены главные члены ряда долготы; точность порядка 0.01°.

// лунные аргументы
type lunarArgs struct {
	lp float64 // средняя долгота Луны
	d  float64 // средняя элонгация
	m  float64 // средняя аномалия Солнца
	mp float64 // средняя аномалия Луны
	f  float64 // аргумент широты
}

func lunarArguments(jd float64) lunarArgs {
	t := centuries(jd)
	return lunarArgs{
		lp: 218.3164477 + 481267.88123421*t - 0.0015786*t*t + t*t*t/538841,
		d:  297.8501921 + 445267.1114034*t - 0.0018819*t*t + t*t*t/545868,
		m:  357.5291092 + 35999.0502909*t - 0.0001536*t*t,
		mp: 134.9633964 + 477198.8675055*t + 0.0087414*t*t + t*t*t/69699,
		f:  93.2720950 + 483202.0175233*t - 0.0036539*t*t - t*t*t/3526000,
	}
}

// члены ряда долготы: коэффициент при sin(d*D + m*M + mp*M' + f*F), в градусах
var moonLongitudeTerms = []struct {
	d, m, mp, f int
	coeff       float64
}{
	{0, 0, 1, 0, 6.288774},
	{2, 0, -1, 0, 1.274027},
	{2, 0, 0, 0, 0.658314},
	{0, 0, 2, 0, 0.213618},
	{0, 1, 0, 0, -0.185116},
	{0, 0, 0, 2, -0.114332},
	{2, 0, -2, 0, 0.058793},
	{2, -1, -1, 0, 0.057066},
	{2, 0, 1, 0, 0.053322},
	{2, -1, 0, 0, 0.045758},
	{0, 1, -1, 0, -0.040923},
	{1, 0, 0, 0, -0.034720},
	{0, 1, 1, 0, -0.030383},
	{2, 0, 0, -2, 0.015327},
	{0, 0, 1, 2, -0.012528},
	{0, 0, 1, -2, 0.010980},
	{4, 0, -1, 0, 0.010675},
	{0, 0, 3, 0, 0.010034},
	{4, 0, -2, 0, 0.008548},
	{2, 1, -1, 0, -0.007888},
	{2, 1, 0, 0, -0.006766},
	{1, 0, -1, 0, -0.005163},
	{1, 1, 0, 0, 0.004987},
	{2, -1, 1, 0, 0.004036},
	{2, 0, 2, 0, 0.003994},
	{4, 0, 0, 0, 0.003861},
	{2, 0, -3, 0, 0.003665},
	{0, 1, -2, 0, -0.002689},
	{2, 0, -1, 2, -0.002602},
	{2, -1, -2, 0, 0.002390},
	{1, 0, 1, 0, -0.002348},
	{2, -2, 0, 0, 0.002236},
}

// moonLongitude геоцентрическая тропическая долгота Луны
func moonLongitude(jd float64) float64 {
	a := lunarArguments(jd)

	lon := a.lp
	for _, term := range moonLongitudeTerms {
		arg := float64(term.d)*a.d + float64(term.m)*a.m + float64(term.mp)*a.mp + float64(term.f)*a.f
		lon += term.coeff * sind(arg)
	}

	// Главные планетные возмущения (Венера и Юпитер)
	t := centuries(jd)
	a1 := 119.75 + 131.849*t
	a2 := 53.09 + 479264.290*t
	lon += 0.003958*sind(a1) + 0.001962*sind(a.lp-a.f) + 0.000318*sind(a2)

	return normalize(lon)
}

// nodeLongitude долгота восходящего узла (Раху)
func nodeLongitude(jd float64, mode domain.NodeMode) float64 {
	t := centuries(jd)

	// Средний узел
	omega := 125.0445479 - 1934.1362891*t + 0.0020754*t*t + t*t*t/467441

	if mode == domain.NodeMean {
		return normalize(omega)
	}

	// Истинный узел: главные периодические поправки к среднему (Meeus, гл. 47)
	a := lunarArguments(jd)
	omega += -1.4979*sind(2*(a.d-a.f)) -
		0.1500*sind(a.m) -
		0.1226*sind(2*a.d) +
		0.1176*sind(2*a.f) -
		0.0801*sind(2*(a.mp-a.f))

	return normalize(omega)
}
