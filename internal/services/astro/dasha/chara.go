package dasha

import (
	"time"

	"github.com/admin/astro-services/kundli-api/internal/domain"
)

// Чара-даша (Джаймини): знаковая система с переменными длительностями.
// Длительность знака - счёт от знака до знака его управителя минус один;
// управитель в собственном знаке даёт 12 лет, экзальтация добавляет год,
// дебилитация отнимает. Направление счёта: для знаков первой половины
// зодиака (Овен..Дева) прямое, для второй - обратное; последовательность
// периодов идёт в том же направлении от знака асцендента.

// jaiminiLord управитель знака для Чара-даши: Скорпионом правит Марс,
// Водолеем Сатурн (решение зафиксировано в DESIGN.md)
func jaiminiLord(sign domain.Sign) domain.Planet {
	return sign.Lord()
}

// charaDirection true - прямое направление счёта
func charaDirection(sign domain.Sign) bool {
	return sign <= domain.Virgo
}

// charaSignYears длительность периода знака в годах
func charaSignYears(sign domain.Sign, positions []domain.PlanetPosition) float64 {
	lord := jaiminiLord(sign)

	var lordSign domain.Sign
	var dignity domain.Dignity
	found := false
	for _, p := range positions {
		if p.Planet == lord {
			lordSign = p.Sign
			dignity = p.Dignity
			found = true
			break
		}
	}
	if !found {
		// неполный набор позиций - вырожденный случай, знак получает минимальный период
		return 1
	}

	if lordSign == sign {
		return 12
	}

	var count int
	if charaDirection(sign) {
		count = ((int(lordSign)-int(sign))+12)%12 + 1
	} else {
		count = ((int(sign)-int(lordSign))+12)%12 + 1
	}

	years := float64(count - 1)
	switch dignity {
	case domain.DignityExalted:
		years++
	case domain.DignityDebilitated:
		years--
	}
	if years < 1 {
		years = 1
	}
	return years
}

// Chara генерирует цикл из 12 знаковых периодов от знака асцендента.
// Общая длительность цикла переменная; непрерывность периодов конструктивная.
func (s *Service) Chara(birth time.Time, ascSign domain.Sign, positions []domain.PlanetPosition, depth int) []domain.DashaPeriod {
	depth = clampDepth(depth)

	step := 1
	if !charaDirection(ascSign) {
		step = -1
	}

	// длительности всех 12 знаков в порядке следования
	signs := make([]domain.Sign, 12)
	years := make([]float64, 12)
	for i := 0; i < 12; i++ {
		sign := domain.NormalizeSign(int(ascSign) + step*i)
		signs[i] = sign
		years[i] = charaSignYears(sign, positions)
	}

	periods := make([]domain.DashaPeriod, 0, 12)
	cum := 0.0
	for i := 0; i < 12; i++ {
		start := birth.Add(durationYears(cum))
		cum += years[i]
		end := birth.Add(durationYears(cum))

		sign := signs[i]
		period := domain.DashaPeriod{
			Lord:  jaiminiLord(sign),
			Sign:  &sign,
			Level: domain.LevelMaha,
			Start: start,
			End:   end,
		}
		if depth > 1 {
			period.SubPeriods = charaSubdivide(sign, step, start, end, domain.LevelAntar, depth)
		}
		periods = append(periods, period)
	}

	return periods
}

// charaSubdivide антардаши Чара: двенадцать равных частей, начиная со следующего
// знака от знака периода, в том же направлении
func charaSubdivide(parentSign domain.Sign, step int, start, end time.Time, level domain.DashaLevel, depth int) []domain.DashaPeriod {
	span := end.Sub(start)

	subs := make([]domain.DashaPeriod, 0, 12)
	for i := 0; i < 12; i++ {
		sign := domain.NormalizeSign(int(parentSign) + step*(i+1))

		subStart := start.Add(fraction(span, float64(i)/12))
		var subEnd time.Time
		if i == 11 {
			subEnd = end
		} else {
			subEnd = start.Add(fraction(span, float64(i+1)/12))
		}

		sub := domain.DashaPeriod{
			Lord:  jaiminiLord(sign),
			Sign:  &sign,
			Level: level,
			Start: subStart,
			End:   subEnd,
		}
		if int(level) < depth {
			sub.SubPeriods = charaSubdivide(sign, step, subStart, subEnd, level+1, depth)
		}
		subs = append(subs, sub)
	}

	return subs
}
