package yoga

import "github.com/admin/astro-services/kundli-api/internal/domain"

// Каталог йог. Правила записаны по классическим определениям; сила оценивается
// по достоинству участвующих грах.

var kendras = []int{1, 4, 7, 10}
var trikonas = []int{1, 5, 9}

func isKendra(house int) bool {
	for _, k := range kendras {
		if house == k {
			return true
		}
	}
	return false
}

func isTrikona(house int) bool {
	for _, t := range trikonas {
		if house == t {
			return true
		}
	}
	return false
}

// strengthByDignity сила йоги по достоинству ключевой грахи
func strengthByDignity(d domain.Dignity) domain.YogaStrength {
	switch d {
	case domain.DignityExalted, domain.DignityMoolatrikona, domain.DignityOwnSign:
		return domain.StrengthStrong
	case domain.DignityDebilitated, domain.DignityEnemy:
		return domain.StrengthWeak
	}
	return domain.StrengthModerate
}

var yogaCatalog = []yogaRule{
	{Name: "gajakesari", Evaluate: gajakesari},
	{Name: "budhaditya", Evaluate: budhaditya},
	{Name: "chandra_mangal", Evaluate: chandraMangal},
	{Name: "raja", Evaluate: raja},
	{Name: "dhana", Evaluate: dhana},
	{Name: "vipareeta_raja", Evaluate: vipareetaRaja},
	{Name: "ruchaka", Evaluate: mahapurusha(domain.Mars, "Ruchaka Yoga", "Ruchaka")},
	{Name: "bhadra", Evaluate: mahapurusha(domain.Mercury, "Bhadra Yoga", "Bhadra")},
	{Name: "hamsa", Evaluate: mahapurusha(domain.Jupiter, "Hamsa Yoga", "Hamsa")},
	{Name: "malavya", Evaluate: mahapurusha(domain.Venus, "Malavya Yoga", "Malavya")},
	{Name: "sasa", Evaluate: mahapurusha(domain.Saturn, "Sasa Yoga", "Shasha")},
	{Name: "neecha_bhanga", Evaluate: neechaBhanga},
}

// gajakesari Юпитер в кендре от Луны
func gajakesari(c *Chart) *domain.Yoga {
	moon := c.Position(domain.Moon)
	jupiter := c.Position(domain.Jupiter)
	if moon == nil || jupiter == nil {
		return nil
	}

	if !isKendra(SignDistance(moon.Sign, jupiter.Sign)) {
		return nil
	}

	return &domain.Yoga{
		Name:        "Gajakesari Yoga",
		Sanskrit:    "Gajakesari",
		Nature:      domain.NatureBenefic,
		Strength:    strengthByDignity(jupiter.Dignity),
		Description: "Jupiter in a kendra from the Moon grants wisdom, reputation and lasting prosperity.",
	}
}

// budhaditya соединение Солнца и Меркурия в одном знаке
func budhaditya(c *Chart) *domain.Yoga {
	sun := c.Position(domain.Sun)
	mercury := c.Position(domain.Mercury)
	if sun == nil || mercury == nil || sun.Sign != mercury.Sign {
		return nil
	}

	return &domain.Yoga{
		Name:        "Budhaditya Yoga",
		Sanskrit:    "Budha-Aditya",
		Nature:      domain.NatureBenefic,
		Strength:    strengthByDignity(mercury.Dignity),
		Description: "Sun and Mercury conjunct bestow intellect, analytical skill and administrative ability.",
	}
}

// chandraMangal Луна и Марс в соединении
func chandraMangal(c *Chart) *domain.Yoga {
	moon := c.Position(domain.Moon)
	mars := c.Position(domain.Mars)
	if moon == nil || mars == nil || moon.Sign != mars.Sign {
		return nil
	}

	return &domain.Yoga{
		Name:        "Chandra-Mangal Yoga",
		Sanskrit:    "Chandra-Mangala",
		Nature:      domain.NatureBenefic,
		Strength:    strengthByDignity(mars.Dignity),
		Description: "Moon and Mars together indicate earning power and entrepreneurial drive.",
	}
}

// raja владыка кендры и владыка тригона в одном знаке
func raja(c *Chart) *domain.Yoga {
	asc := c.Ascendant.Sign

	lordHouses := map[domain.Planet][]int{}
	for house := 1; house <= 12; house++ {
		sign := domain.NormalizeSign(int(asc) + house - 1)
		lord := sign.Lord()
		lordHouses[lord] = append(lordHouses[lord], house)
	}

	owns := func(p domain.Planet, pred func(int) bool) bool {
		for _, h := range lordHouses[p] {
			if pred(h) {
				return true
			}
		}
		return false
	}

	for _, a := range domain.ClassicalPlanets {
		for _, b := range domain.ClassicalPlanets {
			if a == b {
				continue
			}
			if !owns(a, isKendra) || !owns(b, isTrikona) {
				continue
			}
			pa, pb := c.Position(a), c.Position(b)
			if pa == nil || pb == nil || pa.Sign != pb.Sign {
				continue
			}

			return &domain.Yoga{
				Name:        "Raja Yoga",
				Sanskrit:    "Raja",
				Nature:      domain.NatureBenefic,
				Strength:    strengthByDignity(pa.Dignity),
				Description: "A kendra lord joined with a trikona lord forms a combination for authority and rise in life.",
			}
		}
	}
	return nil
}

// dhana обмен или соединение владык 2-го и 11-го домов
func dhana(c *Chart) *domain.Yoga {
	asc := c.Ascendant.Sign
	secondLord := domain.NormalizeSign(int(asc) + 1).Lord()
	eleventhLord := domain.NormalizeSign(int(asc) + 10).Lord()

	p2 := c.Position(secondLord)
	p11 := c.Position(eleventhLord)
	if p2 == nil || p11 == nil {
		return nil
	}

	in2 := c.HouseFromAscendant(p11.Sign) == 2
	in11 := c.HouseFromAscendant(p2.Sign) == 11
	conjunct := p2.Sign == p11.Sign

	if !in2 && !in11 && !conjunct {
		return nil
	}

	return &domain.Yoga{
		Name:        "Dhana Yoga",
		Sanskrit:    "Dhana",
		Nature:      domain.NatureBenefic,
		Strength:    domain.StrengthModerate,
		Description: "Lords of the 2nd and 11th houses linked together indicate accumulation of wealth.",
	}
}

// vipareetaRaja владыка дустханы (6, 8, 12) в другой дустхане
func vipareetaRaja(c *Chart) *domain.Yoga {
	asc := c.Ascendant.Sign
	dusthanas := []int{6, 8, 12}

	for _, house := range dusthanas {
		lord := domain.NormalizeSign(int(asc) + house - 1).Lord()
		pos := c.Position(lord)
		if pos == nil {
			continue
		}
		occupied := c.HouseFromAscendant(pos.Sign)
		for _, d := range dusthanas {
			if occupied == d && d != house {
				return &domain.Yoga{
					Name:        "Vipareeta Raja Yoga",
					Sanskrit:    "Vipareeta Raja",
					Nature:      domain.NatureBenefic,
					Strength:    domain.StrengthModerate,
					Description: "A dusthana lord placed in another dusthana turns adversity into unexpected gains.",
				}
			}
		}
	}
	return nil
}

// mahapurusha фабрика правил Панча Махапуруша: граха в своём или экзальтированном
// знаке и при этом в кендре от асцендента
func mahapurusha(planet domain.Planet, name, sanskrit string) func(c *Chart) *domain.Yoga {
	return func(c *Chart) *domain.Yoga {
		pos := c.Position(planet)
		if pos == nil {
			return nil
		}

		strongSign := pos.Dignity == domain.DignityExalted ||
			pos.Dignity == domain.DignityMoolatrikona ||
			pos.Dignity == domain.DignityOwnSign
		if !strongSign || !isKendra(c.HouseFromAscendant(pos.Sign)) {
			return nil
		}

		return &domain.Yoga{
			Name:        name,
			Sanskrit:    sanskrit,
			Nature:      domain.NatureBenefic,
			Strength:    domain.StrengthStrong,
			Description: "A Pancha Mahapurusha combination: " + planet.String() + " dignified in a kendra from the ascendant.",
		}
	}
}

// neechaBhanga дебилитация с отменой: владыка знака дебилитации в кендре от Луны или асцендента
func neechaBhanga(c *Chart) *domain.Yoga {
	moon := c.Position(domain.Moon)

	for _, p := range domain.ClassicalPlanets {
		pos := c.Position(p)
		if pos == nil || pos.Dignity != domain.DignityDebilitated {
			continue
		}

		lord := pos.Sign.Lord()
		lordPos := c.Position(lord)
		if lordPos == nil {
			continue
		}

		fromAsc := isKendra(c.HouseFromAscendant(lordPos.Sign))
		fromMoon := moon != nil && isKendra(SignDistance(moon.Sign, lordPos.Sign))
		if !fromAsc && !fromMoon {
			continue
		}

		return &domain.Yoga{
			Name:        "Neecha Bhanga Raja Yoga",
			Sanskrit:    "Neecha Bhanga Raja",
			Nature:      domain.NatureBenefic,
			Strength:    domain.StrengthModerate,
			Description: "Debilitation of " + p.String() + " is cancelled, turning weakness into strength.",
		}
	}
	return nil
}
