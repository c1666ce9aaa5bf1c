package strength

import "github.com/admin/astro-services/kundli-api/internal/domain"

// Аштакаварга по Парашаре: для каждой из семи грах восемь контрибьюторов
// (семь грах и асцендент) отдают бинду в фиксированные дома, считая от знака
// контрибьютора. Сумма таблиц инвариантна: 337 бинду на карту.

// asContributor индекс асцендента в таблицах контрибьюторов
const ascContributor = domain.Planet(-1)

// beneficPlaces дома (1..12 от знака контрибьютора), в которые контрибьютор
// отдаёт бинду для данной грахи
var beneficPlaces = map[domain.Planet]map[domain.Planet][]int{
	domain.Sun: {
		domain.Sun:     {1, 2, 4, 7, 8, 9, 10, 11},
		domain.Moon:    {3, 6, 10, 11},
		domain.Mars:    {1, 2, 4, 7, 8, 9, 10, 11},
		domain.Mercury: {3, 5, 6, 9, 10, 11, 12},
		domain.Jupiter: {5, 6, 9, 11},
		domain.Venus:   {6, 7, 12},
		domain.Saturn:  {1, 2, 4, 7, 8, 9, 10, 11},
		ascContributor: {3, 4, 6, 10, 11, 12},
	},
	domain.Moon: {
		domain.Sun:     {3, 6, 7, 8, 10, 11},
		domain.Moon:    {1, 3, 6, 7, 10, 11},
		domain.Mars:    {2, 3, 5, 6, 9, 10, 11},
		domain.Mercury: {1, 3, 4, 5, 7, 8, 10, 11},
		domain.Jupiter: {1, 4, 7, 8, 10, 11, 12},
		domain.Venus:   {3, 4, 5, 7, 9, 10, 11},
		domain.Saturn:  {3, 5, 6, 11},
		ascContributor: {3, 6, 10, 11},
	},
	domain.Mars: {
		domain.Sun:     {3, 5, 6, 10, 11},
		domain.Moon:    {3, 6, 11},
		domain.Mars:    {1, 2, 4, 7, 8, 10, 11},
		domain.Mercury: {3, 5, 6, 11},
		domain.Jupiter: {6, 10, 11, 12},
		domain.Venus:   {6, 8, 11, 12},
		domain.Saturn:  {1, 4, 7, 8, 9, 10, 11},
		ascContributor: {1, 3, 6, 10, 11},
	},
	domain.Mercury: {
		domain.Sun:     {5, 6, 9, 11, 12},
		domain.Moon:    {2, 4, 6, 8, 10, 11},
		domain.Mars:    {1, 2, 4, 7, 8, 9, 10, 11},
		domain.Mercury: {1, 3, 5, 6, 9, 10, 11, 12},
		domain.Jupiter: {6, 8, 11, 12},
		domain.Venus:   {1, 2, 3, 4, 5, 8, 9, 11},
		domain.Saturn:  {1, 2, 4, 7, 8, 9, 10, 11},
		ascContributor: {1, 2, 4, 6, 8, 10, 11},
	},
	domain.Jupiter: {
		domain.Sun:     {1, 2, 3, 4, 7, 8, 9, 10, 11},
		domain.Moon:    {2, 5, 7, 9, 11},
		domain.Mars:    {1, 2, 4, 7, 8, 10, 11},
		domain.Mercury: {1, 2, 4, 5, 6, 9, 10, 11},
		domain.Jupiter: {1, 2, 3, 4, 7, 8, 10, 11},
		domain.Venus:   {2, 5, 6, 9, 10, 11},
		domain.Saturn:  {3, 5, 6, 12},
		ascContributor: {1, 2, 4, 5, 6, 7, 9, 10, 11},
	},
	domain.Venus: {
		domain.Sun:     {8, 11, 12},
		domain.Moon:    {1, 2, 3, 4, 5, 8, 9, 11, 12},
		domain.Mars:    {3, 5, 6, 9, 11, 12},
		domain.Mercury: {3, 5, 6, 9, 11},
		domain.Jupiter: {5, 8, 9, 10, 11},
		domain.Venus:   {1, 2, 3, 4, 5, 8, 9, 10, 11},
		domain.Saturn:  {3, 4, 5, 8, 9, 10, 11},
		ascContributor: {1, 2, 3, 4, 5, 8, 9, 11},
	},
	domain.Saturn: {
		domain.Sun:     {1, 2, 4, 7, 8, 10, 11},
		domain.Moon:    {3, 6, 11},
		domain.Mars:    {3, 5, 6, 10, 11, 12},
		domain.Mercury: {6, 8, 9, 10, 11, 12},
		domain.Jupiter: {5, 6, 11, 12},
		domain.Venus:   {6, 11, 12},
		domain.Saturn:  {3, 5, 6, 11},
		ascContributor: {1, 3, 4, 6, 10, 11},
	},
}

// Ashtakavarga строит бхинна-аштакаварги семи грах, сарва-аштакаваргу и
// классификацию знаков по суммарным бинду
func (s *Service) Ashtakavarga(ascendant domain.Sign, positions []domain.PlanetPosition) domain.AshtakavargaData {
	contributorSign := func(p domain.Planet) (domain.Sign, bool) {
		if p == ascContributor {
			return ascendant, true
		}
		for _, pos := range positions {
			if pos.Planet == p {
				return pos.Sign, true
			}
		}
		return 0, false
	}

	data := domain.AshtakavargaData{
		Bhinna: make([]domain.BhinnaRow, 0, len(domain.ClassicalPlanets)),
	}

	for _, planet := range domain.ClassicalPlanets {
		row := domain.BhinnaRow{Planet: planet}
		for contributor, houses := range beneficPlaces[planet] {
			sign, ok := contributorSign(contributor)
			if !ok {
				continue
			}
			for _, house := range houses {
				target := domain.NormalizeSign(int(sign) + house - 1)
				row.Bindus[int(target)]++
			}
		}
		data.Bhinna = append(data.Bhinna, row)

		for i := 0; i < 12; i++ {
			data.Sarva[i] += row.Bindus[i]
		}
	}

	for i := 0; i < 12; i++ {
		data.SignStrengths[i] = classifySign(data.Sarva[i])
	}

	return data
}

// classifySign порог силы знака по сарва-бинду
func classifySign(bindus int) domain.SignStrength {
	switch {
	case bindus < 25:
		return domain.SignWeak
	case bindus > 30:
		return domain.SignStrong
	}
	return domain.SignAverage
}
