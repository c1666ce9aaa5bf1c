package chart

import "github.com/admin/astro-services/kundli-api/internal/domain"

// Классические таблицы достоинств: экзальтация, мулатрикона, собственные знаки
// и естественная дружба грах (найсаргика майтри).

type exaltation struct {
	sign   domain.Sign
	degree float64
}

var exaltations = map[domain.Planet]exaltation{
	domain.Sun:     {domain.Aries, 10},
	domain.Moon:    {domain.Taurus, 3},
	domain.Mars:    {domain.Capricorn, 28},
	domain.Mercury: {domain.Virgo, 15},
	domain.Jupiter: {domain.Cancer, 5},
	domain.Venus:   {domain.Pisces, 27},
	domain.Saturn:  {domain.Libra, 20},
	domain.Rahu:    {domain.Taurus, 20},
	domain.Ketu:    {domain.Scorpio, 20},
}

type moolatrikona struct {
	sign     domain.Sign
	from, to float64 // градусы внутри знака, [from, to)
}

var moolatrikonas = map[domain.Planet]moolatrikona{
	domain.Sun:     {domain.Leo, 0, 20},
	domain.Moon:    {domain.Taurus, 3, 30},
	domain.Mars:    {domain.Aries, 0, 12},
	domain.Mercury: {domain.Virgo, 15, 20},
	domain.Jupiter: {domain.Sagittarius, 0, 10},
	domain.Venus:   {domain.Libra, 0, 15},
	domain.Saturn:  {domain.Aquarius, 0, 20},
}

var ownSigns = map[domain.Planet][]domain.Sign{
	domain.Sun:     {domain.Leo},
	domain.Moon:    {domain.Cancer},
	domain.Mars:    {domain.Aries, domain.Scorpio},
	domain.Mercury: {domain.Gemini, domain.Virgo},
	domain.Jupiter: {domain.Sagittarius, domain.Pisces},
	domain.Venus:   {domain.Taurus, domain.Libra},
	domain.Saturn:  {domain.Capricorn, domain.Aquarius},
}

// естественные друзья по БПХШ
var naturalFriends = map[domain.Planet][]domain.Planet{
	domain.Sun:     {domain.Moon, domain.Mars, domain.Jupiter},
	domain.Moon:    {domain.Sun, domain.Mercury},
	domain.Mars:    {domain.Sun, domain.Moon, domain.Jupiter},
	domain.Mercury: {domain.Sun, domain.Venus},
	domain.Jupiter: {domain.Sun, domain.Moon, domain.Mars},
	domain.Venus:   {domain.Mercury, domain.Saturn},
	domain.Saturn:  {domain.Mercury, domain.Venus},
}

// естественные враги по БПХШ
var naturalEnemies = map[domain.Planet][]domain.Planet{
	domain.Sun:     {domain.Venus, domain.Saturn},
	domain.Moon:    {},
	domain.Mars:    {domain.Mercury},
	domain.Mercury: {domain.Moon},
	domain.Jupiter: {domain.Mercury, domain.Venus},
	domain.Venus:   {domain.Sun, domain.Moon},
	domain.Saturn:  {domain.Sun, domain.Moon, domain.Mars},
}

// DignityOf достоинство грахи в знаке. Мулатрикона проверяется первой:
// у Луны и Меркурия её градусная полоса лежит в знаке экзальтации и внутри
// полосы сильнее целознаковой экзальтации. Дальше экзальтация → дебилитация →
// свой знак → дружба с управителем.
func DignityOf(p domain.Planet, sign domain.Sign, degree float64) domain.Dignity {
	if mt, ok := moolatrikonas[p]; ok && sign == mt.sign && degree >= mt.from && degree < mt.to {
		return domain.DignityMoolatrikona
	}

	if ex, ok := exaltations[p]; ok {
		if sign == ex.sign {
			return domain.DignityExalted
		}
		if sign == domain.NormalizeSign(int(ex.sign)+6) {
			return domain.DignityDebilitated
		}
	}

	for _, own := range ownSigns[p] {
		if sign == own {
			return domain.DignityOwnSign
		}
	}

	// Узлы без собственных знаков: вне экзальтации/дебилитации нейтральны
	if p.IsNode() {
		return domain.DignityNeutral
	}

	lord := sign.Lord()
	for _, friend := range naturalFriends[p] {
		if lord == friend {
			return domain.DignityFriendly
		}
	}
	for _, enemy := range naturalEnemies[p] {
		if lord == enemy {
			return domain.DignityEnemy
		}
	}

	return domain.DignityNeutral
}

// ExaltationSign знак экзальтации грахи
func ExaltationSign(p domain.Planet) (domain.Sign, bool) {
	ex, ok := exaltations[p]
	return ex.sign, ok
}

// DebilitationSign знак дебилитации - седьмой от знака экзальтации
func DebilitationSign(p domain.Planet) (domain.Sign, bool) {
	ex, ok := exaltations[p]
	if !ok {
		return 0, false
	}
	return domain.NormalizeSign(int(ex.sign) + 6), true
}

// IsOwnSign true, если знак принадлежит грахе
func IsOwnSign(p domain.Planet, sign domain.Sign) bool {
	for _, own := range ownSigns[p] {
		if sign == own {
			return true
		}
	}
	return false
}
