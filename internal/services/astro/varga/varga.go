package varga

import (
	"math"

	"github.com/admin/astro-services/kundli-api/internal/domain"
)

// Дробные карты: каждый знак делится на n равных частей по (30/n)°, индекс части
// выбирает знак назначения по классическому правилу конкретной варги. Правила
// заданы фиксированным каталогом дескрипторов и применяются единым циклом.
// Исключение - Тримшамша (D30) с неравными долями, у неё отдельная таблица.

// descriptor правило одной варги: число частей и функция выбора знака
type descriptor struct {
	Type     domain.VargaType
	Parts    int
	SignFor  func(sign domain.Sign, part int) domain.Sign
}

var catalog = []descriptor{
	{domain.VargaD1, 1, func(s domain.Sign, _ int) domain.Sign { return s }},

	// Хора: первая половина нечётного знака - Лев, вторая - Рак; в чётных наоборот
	{domain.VargaD2, 2, func(s domain.Sign, p int) domain.Sign {
		if s.IsOdd() == (p == 0) {
			return domain.Leo
		}
		return domain.Cancer
	}},

	// Дреккана: части идут в тринах от самого знака (1-й, 5-й, 9-й)
	{domain.VargaD3, 3, func(s domain.Sign, p int) domain.Sign {
		return domain.NormalizeSign(int(s) + 4*p)
	}},

	// Чатуртхамша: от знака через кендры (1-й, 4-й, 7-й, 10-й)
	{domain.VargaD4, 4, func(s domain.Sign, p int) domain.Sign {
		return domain.NormalizeSign(int(s) + 3*p)
	}},

	// Саптамша: нечётный знак считает от себя, чётный - от седьмого
	{domain.VargaD7, 7, func(s domain.Sign, p int) domain.Sign {
		start := int(s)
		if !s.IsOdd() {
			start += 6
		}
		return domain.NormalizeSign(start + p)
	}},

	// Навамша: подвижный знак от себя, фиксированный от девятого, двойственный от пятого
	{domain.VargaD9, 9, func(s domain.Sign, p int) domain.Sign {
		start := int(s)
		switch s.Modality() {
		case domain.Fixed:
			start += 8
		case domain.Dual:
			start += 4
		}
		return domain.NormalizeSign(start + p)
	}},

	// Дашамша: нечётный от себя, чётный от девятого
	{domain.VargaD10, 10, func(s domain.Sign, p int) domain.Sign {
		start := int(s)
		if !s.IsOdd() {
			start += 8
		}
		return domain.NormalizeSign(start + p)
	}},

	// Двадашамша: всегда от самого знака
	{domain.VargaD12, 12, func(s domain.Sign, p int) domain.Sign {
		return domain.NormalizeSign(int(s) + p)
	}},

	// Шодашамша: подвижные от Овна, фиксированные от Льва, двойственные от Стрельца
	{domain.VargaD16, 16, modalityStart(domain.Aries, domain.Leo, domain.Sagittarius)},

	// Вимшамша: подвижные от Овна, фиксированные от Стрельца, двойственные от Льва
	{domain.VargaD20, 20, modalityStart(domain.Aries, domain.Sagittarius, domain.Leo)},

	// Чатурвимшамша: нечётные от Льва, чётные от Рака
	{domain.VargaD24, 24, func(s domain.Sign, p int) domain.Sign {
		start := int(domain.Leo)
		if !s.IsOdd() {
			start = int(domain.Cancer)
		}
		return domain.NormalizeSign(start + p)
	}},

	// Бхамша (D27): по стихии знака - огонь от Овна, земля от Рака, воздух от Весов, вода от Козерога
	{domain.VargaD27, 27, func(s domain.Sign, p int) domain.Sign {
		return domain.NormalizeSign(3*(int(s)%4) + p)
	}},

	// Тримшамша: неравные доли, отдельная обработка в signForD30
	{domain.VargaD30, 0, nil},

	// Кхаведамша: нечётные от Овна, чётные от Весов
	{domain.VargaD40, 40, func(s domain.Sign, p int) domain.Sign {
		start := int(domain.Aries)
		if !s.IsOdd() {
			start = int(domain.Libra)
		}
		return domain.NormalizeSign(start + p)
	}},

	// Акшаведамша: подвижные от Овна, фиксированные от Льва, двойственные от Стрельца
	{domain.VargaD45, 45, modalityStart(domain.Aries, domain.Leo, domain.Sagittarius)},

	// Шаштиамша: всегда от самого знака
	{domain.VargaD60, 60, func(s domain.Sign, p int) domain.Sign {
		return domain.NormalizeSign(int(s) + p)
	}},
}

func modalityStart(movable, fixed, dual domain.Sign) func(domain.Sign, int) domain.Sign {
	return func(s domain.Sign, p int) domain.Sign {
		var start domain.Sign
		switch s.Modality() {
		case domain.Movable:
			start = movable
		case domain.Fixed:
			start = fixed
		default:
			start = dual
		}
		return domain.NormalizeSign(int(start) + p)
	}
}

// доли Тримшамши: границы в градусах и знаки назначения
type trimsamsaBand struct {
	upTo float64
	sign domain.Sign
}

var trimsamsaOdd = []trimsamsaBand{
	{5, domain.Aries}, {10, domain.Aquarius}, {18, domain.Sagittarius}, {25, domain.Gemini}, {30, domain.Libra},
}

var trimsamsaEven = []trimsamsaBand{
	{5, domain.Taurus}, {12, domain.Virgo}, {20, domain.Pisces}, {25, domain.Capricorn}, {30, domain.Scorpio},
}

func signForD30(sign domain.Sign, degree float64) domain.Sign {
	bands := trimsamsaEven
	if sign.IsOdd() {
		bands = trimsamsaOdd
	}
	for _, b := range bands {
		if degree < b.upTo {
			return b.sign
		}
	}
	return bands[len(bands)-1].sign
}

// Service движок дробных карт: чистая функция сидерической долготы
type Service struct{}

func New() *Service {
	return &Service{}
}

// SignIn знак тела в указанной варге для сидерической долготы
func (s *Service) SignIn(vargaType domain.VargaType, longitude float64) domain.Sign {
	lon := math.Mod(longitude, 360)
	if lon < 0 {
		lon += 360
	}

	sign := domain.Sign(int(lon / 30))
	degree := lon - float64(sign)*30

	if vargaType == domain.VargaD30 {
		return signForD30(sign, degree)
	}

	for _, d := range catalog {
		if d.Type != vargaType {
			continue
		}
		span := 30.0 / float64(d.Parts)
		part := int(degree / span)
		if part > d.Parts-1 {
			part = d.Parts - 1
		}
		return d.SignFor(sign, part)
	}

	// неизвестная варга сюда не попадает: вызовы идут по domain.AllVargas
	return sign
}

// BuildAll все шестнадцать дробных карт для набора позиций
func (s *Service) BuildAll(ascendant domain.AscendantPosition, positions []domain.PlanetPosition) []domain.DivisionalChartData {
	charts := make([]domain.DivisionalChartData, 0, len(domain.AllVargas))

	for _, vt := range domain.AllVargas {
		chart := domain.DivisionalChartData{
			Type:          vt,
			AscendantSign: s.SignIn(vt, ascendant.Longitude),
		}
		for _, p := range positions {
			chart.Placements = append(chart.Placements, domain.VargaPlacement{
				Planet: p.Planet,
				Sign:   s.SignIn(vt, p.Longitude),
			})
		}
		charts = append(charts, chart)
	}

	return charts
}
