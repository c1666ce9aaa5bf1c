package strength

import "github.com/admin/astro-services/kundli-api/internal/domain"

// Шадбала в вирупах. Компоненты:
//   стхана  - уччха-бала, линейно 0..60 от точки глубокой дебилитации;
//   диг     - по дуге до точки бессилия (надир сильного направления);
//   кала    - натонната (день/ночь) плюс пакша-бала;
//   чешта   - по суточному движению относительно среднего, ретроградность даёт максимум;
//   найсаргика - фиксированная естественная сила;
//   дрик    - четверть чистой спхута-дришти, может быть отрицательной.
// Rupas = Total/60, Ratio = Total к минимально требуемой силе.

// naisargikaBala естественная сила, вирупы
var naisargikaBala = map[domain.Planet]float64{
	domain.Sun:     60,
	domain.Moon:    51.43,
	domain.Venus:   42.85,
	domain.Jupiter: 34.28,
	domain.Mercury: 25.70,
	domain.Mars:    17.14,
	domain.Saturn:  8.57,
}

// requiredVirupas минимально требуемая сила
var requiredVirupas = map[domain.Planet]float64{
	domain.Sun:     390,
	domain.Moon:    360,
	domain.Mars:    300,
	domain.Mercury: 420,
	domain.Jupiter: 390,
	domain.Venus:   330,
	domain.Saturn:  300,
}

// exaltationPoint абсолютная долгота точки глубокой экзальтации
var exaltationPoint = map[domain.Planet]float64{
	domain.Sun:     10,  // Овен 10°
	domain.Moon:    33,  // Телец 3°
	domain.Mars:    298, // Козерог 28°
	domain.Mercury: 165, // Дева 15°
	domain.Jupiter: 95,  // Рак 5°
	domain.Venus:   357, // Рыбы 27°
	domain.Saturn:  200, // Весы 20°
}

// digPowerOffset смещение точки силы от асцендента: Юпитер и Меркурий сильны
// на восходе, Солнце и Марс в зените, Сатурн на закате, Луна и Венера в надире
var digPowerOffset = map[domain.Planet]float64{
	domain.Jupiter: 0,
	domain.Mercury: 0,
	domain.Sun:     270,
	domain.Mars:    270,
	domain.Saturn:  180,
	domain.Moon:    90,
	domain.Venus:   90,
}

// meanDailyMotion среднее геоцентрическое суточное движение, °/сут
var meanDailyMotion = map[domain.Planet]float64{
	domain.Mercury: 1.0,
	domain.Venus:   1.0,
	domain.Mars:    0.524,
	domain.Jupiter: 0.083,
	domain.Saturn:  0.033,
}

var diurnalPlanets = map[domain.Planet]bool{
	domain.Sun: true, domain.Jupiter: true, domain.Venus: true,
}

// Shadbala вычисляет шесть компонент силы для семи классических грах
func (s *Service) Shadbala(ascendantLongitude float64, positions []domain.PlanetPosition) []domain.ShadbalaScore {
	find := func(p domain.Planet) *domain.PlanetPosition {
		for i := range positions {
			if positions[i].Planet == p {
				return &positions[i]
			}
		}
		return nil
	}

	sun := find(domain.Sun)
	moon := find(domain.Moon)

	// день, если Солнце над горизонтом (дома 7..12 по дуге от асцендента)
	isDay := sun != nil && normalize(sun.Longitude-ascendantLongitude) >= 180

	// угол фазы Луны, 0..180
	phase := 0.0
	if sun != nil && moon != nil {
		phase = arcDistance(moon.Longitude, sun.Longitude)
	}

	scores := make([]domain.ShadbalaScore, 0, len(domain.ClassicalPlanets))
	for _, planet := range domain.ClassicalPlanets {
		pos := find(planet)
		if pos == nil {
			continue
		}

		score := domain.ShadbalaScore{
			Planet:     planet,
			Sthana:     ucchaBala(planet, pos.Longitude),
			Dig:        digBala(planet, pos.Longitude, ascendantLongitude),
			Kala:       kalaBala(planet, isDay, phase),
			Cheshta:    cheshtaBala(planet, pos, phase),
			Naisargika: naisargikaBala[planet],
			Drik:       drikBala(planet, pos.Longitude, positions),
		}
		score.Total = score.Sthana + score.Dig + score.Kala + score.Cheshta + score.Naisargika + score.Drik
		score.Rupas = score.Total / 60
		score.Ratio = score.Total / requiredVirupas[planet]

		scores = append(scores, score)
	}
	return scores
}

// ucchaBala расстояние от точки глубокой дебилитации, делённое на три
func ucchaBala(p domain.Planet, longitude float64) float64 {
	debilitation := normalize(exaltationPoint[p] + 180)
	return arcDistance(longitude, debilitation) / 3
}

// digBala дуга от надира точки силы, делённая на три
func digBala(p domain.Planet, longitude, ascLongitude float64) float64 {
	power := normalize(ascLongitude + digPowerOffset[p])
	weakest := normalize(power + 180)
	return arcDistance(longitude, weakest) / 3
}

// kalaBala натонната-бала плюс пакша-бала
func kalaBala(p domain.Planet, isDay bool, phase float64) float64 {
	var natonnata float64
	switch {
	case p == domain.Mercury:
		natonnata = 60
	case diurnalPlanets[p] == isDay:
		natonnata = 60
	}

	// пакша: благодетельные грахи сильны на растущей Луне
	paksha := phase / 3
	if !p.IsNaturalBenefic() {
		paksha = 60 - paksha
	}

	return natonnata + paksha
}

// cheshtaBala двигательная сила: максимум при ретроградности, убывает с ростом
// скорости относительно средней. Солнцу назначается среднее значение, Луне -
// пакша-эквивалент.
func cheshtaBala(p domain.Planet, pos *domain.PlanetPosition, phase float64) float64 {
	switch p {
	case domain.Sun:
		return 30
	case domain.Moon:
		return phase / 3
	}

	if pos.Retrograde {
		return 60
	}

	mean := meanDailyMotion[p]
	if mean == 0 {
		return 30
	}
	bala := 60 * (2*mean - pos.DailyMotion) / (2 * mean)
	if bala < 0 {
		return 0
	}
	if bala > 60 {
		return 60
	}
	return bala
}

// drikBala четверть разности дришти благодетелей и вредителей
func drikBala(target domain.Planet, longitude float64, positions []domain.PlanetPosition) float64 {
	net := 0.0
	for i := range positions {
		aspector := positions[i].Planet
		if aspector == target || aspector.IsNode() {
			continue
		}

		// разделение по зодиаку от аспектующего к цели
		sep := normalize(longitude - positions[i].Longitude)
		drishti := sputaDrishti(sep)
		if drishti == 0 {
			continue
		}

		if aspector.IsNaturalBenefic() {
			net += drishti
		} else {
			net -= drishti
		}
	}
	return net / 4
}

// sputaDrishti классическая кусочно-линейная шкала силы аспекта, 0..60
func sputaDrishti(sep float64) float64 {
	switch {
	case sep < 30:
		return 0
	case sep < 60:
		return (sep - 30) / 2
	case sep < 90:
		return (sep - 60) + 15
	case sep < 120:
		return (120-sep)/2 + 30
	case sep < 150:
		return 150 - sep
	case sep < 180:
		return (sep - 150) * 2
	case sep <= 300:
		return (300 - sep) / 2
	}
	return 0
}
