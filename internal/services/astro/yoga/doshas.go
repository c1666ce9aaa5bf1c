package yoga

import "github.com/admin/astro-services/kundli-api/internal/domain"

// Каталог дош. Отмена (cancellation) никогда не скрывает дошу: обнаруженная
// конфигурация возвращается с флагом Cancelled и причиной, решение об
// интерпретации остаётся за потребителем.

var doshaCatalog = []doshaRule{
	{Name: "manglik", Evaluate: manglik},
	{Name: "kaal_sarp", Evaluate: kaalSarp},
	{Name: "kemadruma", Evaluate: kemadruma},
	{Name: "guru_chandal", Evaluate: guruChandal},
	{Name: "grahan", Evaluate: grahan},
	{Name: "pitra", Evaluate: pitra},
}

var manglikHouses = map[int]bool{1: true, 4: true, 7: true, 8: true, 12: true}

// manglik Марс в 1, 4, 7, 8 или 12 доме от асцендента. Отмена: Марс в своём
// или экзальтированном знаке либо под аспектом Юпитера (5, 7, 9 от Юпитера).
func manglik(c *Chart) *domain.Dosha {
	mars := c.Position(domain.Mars)
	if mars == nil {
		return nil
	}

	house := c.HouseFromAscendant(mars.Sign)
	if !manglikHouses[house] {
		return nil
	}

	dosha := &domain.Dosha{
		Name:        "Manglik Dosha",
		Sanskrit:    "Mangal",
		Severity:    domain.StrengthStrong,
		Description: "Mars placed in a sensitive house from the ascendant affects marital harmony.",
	}
	if house == 4 || house == 12 {
		dosha.Severity = domain.StrengthModerate
	}

	if mars.Dignity == domain.DignityOwnSign || mars.Dignity == domain.DignityMoolatrikona {
		dosha.Cancelled = true
		dosha.CancelReason = "Mars occupies its own sign"
		return dosha
	}
	if mars.Dignity == domain.DignityExalted {
		dosha.Cancelled = true
		dosha.CancelReason = "Mars is exalted"
		return dosha
	}

	if jupiter := c.Position(domain.Jupiter); jupiter != nil {
		switch SignDistance(jupiter.Sign, mars.Sign) {
		case 5, 7, 9:
			dosha.Cancelled = true
			dosha.CancelReason = "Mars receives the aspect of Jupiter"
			return dosha
		}
	}

	return dosha
}

// kaalSarp все семь классических грах по одну сторону оси Раху-Кету.
// Одна граха вне дуги даёт частичную форму с пониженной выраженностью.
func kaalSarp(c *Chart) *domain.Dosha {
	rahu := c.Position(domain.Rahu)
	ketu := c.Position(domain.Ketu)
	if rahu == nil || ketu == nil {
		return nil
	}

	// дуга от Раху к Кету в прямом направлении
	inArc := func(lon float64) bool {
		span := normalizeArc(ketu.Longitude - rahu.Longitude)
		offset := normalizeArc(lon - rahu.Longitude)
		return offset < span
	}

	outsideForward := 0
	outsideBackward := 0
	for _, p := range domain.ClassicalPlanets {
		pos := c.Position(p)
		if pos == nil {
			return nil
		}
		if !inArc(pos.Longitude) {
			outsideForward++
		} else {
			outsideBackward++
		}
	}

	outside := outsideForward
	if outsideBackward < outside {
		outside = outsideBackward
	}

	switch outside {
	case 0:
		return &domain.Dosha{
			Name:        "Kaal Sarp Dosha",
			Sanskrit:    "Kala Sarpa",
			Severity:    domain.StrengthStrong,
			Description: "All seven classical planets are hemmed within the Rahu-Ketu axis.",
		}
	case 1:
		return &domain.Dosha{
			Name:        "Partial Kaal Sarp Dosha",
			Sanskrit:    "Kala Sarpa",
			Severity:    domain.StrengthWeak,
			Description: "All classical planets but one lie within the Rahu-Ketu axis.",
		}
	}
	return nil
}

// kemadruma нет грах во 2-м и 12-м знаке от Луны (Солнце и узлы не считаются).
// Отмена: граха в кендре от Луны либо Луна в кендре от асцендента.
func kemadruma(c *Chart) *domain.Dosha {
	moon := c.Position(domain.Moon)
	if moon == nil {
		return nil
	}

	flanked := false
	kendraFromMoon := false
	for _, p := range domain.ClassicalPlanets {
		if p == domain.Sun || p == domain.Moon {
			continue
		}
		pos := c.Position(p)
		if pos == nil {
			continue
		}
		switch SignDistance(moon.Sign, pos.Sign) {
		case 2, 12:
			flanked = true
		}
		if isKendra(SignDistance(moon.Sign, pos.Sign)) {
			kendraFromMoon = true
		}
	}
	if flanked {
		return nil
	}

	dosha := &domain.Dosha{
		Name:        "Kemadruma Dosha",
		Sanskrit:    "Kemadruma",
		Severity:    domain.StrengthModerate,
		Description: "No planets flank the Moon, leaving it unsupported.",
	}

	if kendraFromMoon {
		dosha.Cancelled = true
		dosha.CancelReason = "a planet occupies a kendra from the Moon"
		return dosha
	}
	if isKendra(c.HouseFromAscendant(moon.Sign)) {
		dosha.Cancelled = true
		dosha.CancelReason = "the Moon occupies a kendra from the ascendant"
		return dosha
	}

	return dosha
}

// guruChandal Юпитер в соединении с Раху или Кету
func guruChandal(c *Chart) *domain.Dosha {
	jupiter := c.Position(domain.Jupiter)
	if jupiter == nil {
		return nil
	}

	for _, node := range []domain.Planet{domain.Rahu, domain.Ketu} {
		pos := c.Position(node)
		if pos == nil || pos.Sign != jupiter.Sign {
			continue
		}
		return &domain.Dosha{
			Name:        "Guru Chandal Dosha",
			Sanskrit:    "Guru Chandala",
			Severity:    domain.StrengthModerate,
			Description: "Jupiter conjunct " + node.String() + " distorts judgement and ethics.",
		}
	}
	return nil
}

// grahan светило в соединении с узлом
func grahan(c *Chart) *domain.Dosha {
	for _, luminary := range []domain.Planet{domain.Sun, domain.Moon} {
		lum := c.Position(luminary)
		if lum == nil {
			continue
		}
		for _, node := range []domain.Planet{domain.Rahu, domain.Ketu} {
			pos := c.Position(node)
			if pos == nil || pos.Sign != lum.Sign {
				continue
			}
			return &domain.Dosha{
				Name:        "Grahan Dosha",
				Sanskrit:    "Grahana",
				Severity:    domain.StrengthModerate,
				Description: luminary.String() + " conjunct " + node.String() + " forms an eclipse combination.",
			}
		}
	}
	return nil
}

// pitra Раху в 9-м доме либо в соединении с Солнцем
func pitra(c *Chart) *domain.Dosha {
	rahu := c.Position(domain.Rahu)
	if rahu == nil {
		return nil
	}

	sun := c.Position(domain.Sun)
	withSun := sun != nil && sun.Sign == rahu.Sign
	inNinth := c.HouseFromAscendant(rahu.Sign) == 9

	if !withSun && !inNinth {
		return nil
	}

	return &domain.Dosha{
		Name:        "Pitra Dosha",
		Sanskrit:    "Pitru",
		Severity:    domain.StrengthModerate,
		Description: "Rahu afflicting the Sun or the ninth house points to ancestral karma.",
	}
}

// normalizeArc приводит угол к [0, 360)
func normalizeArc(deg float64) float64 {
	deg -= 360 * float64(int(deg/360))
	if deg < 0 {
		deg += 360
	}
	return deg
}
