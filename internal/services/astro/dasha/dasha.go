package dasha

import (
	"math"
	"time"

	"github.com/admin/astro-services/kundli-api/internal/domain"
)

// Генерация планетных периодов. Все системы строятся одинаково: от вычисленной
// точки старта откладываются накопленные доли полного цикла, и граница k-го
// периода вычисляется одним и тем же выражением и для конца k, и для начала k+1 -
// непрерывность без зазоров обеспечена конструктивно, а не округлением.

// сидерический год в наносекундах
const nanosPerYear = 365.25 * 24 * 3600 * 1e9

// DefaultDepth уровень вложенности по умолчанию: Маха → Антар → Пратьянтар
const DefaultDepth = 3

// MaxDepth максимальный уровень (Прана)
const MaxDepth = 5

// Service генератор периодов всех четырёх систем
type Service struct{}

func New() *Service {
	return &Service{}
}

// BuildAll все четыре системы для одной карты
func (s *Service) BuildAll(birth time.Time, moonLongitude float64, ascSign domain.Sign, positions []domain.PlanetPosition, depth int) domain.DashaSet {
	return domain.DashaSet{
		Vimshottari: s.Vimshottari(birth, moonLongitude, depth),
		Yogini:      s.Yogini(birth, moonLongitude, depth),
		Ashtottari:  s.Ashtottari(birth, moonLongitude, depth),
		Chara:       s.Chara(birth, ascSign, positions, depth),
	}
}

// lordScheme циклическая схема владык с фиксированными длительностями
type lordScheme struct {
	lords []domain.Planet
	years []float64
	total float64
}

// buildCycle строит полный цикл системы: владыки идут по кругу от startIdx,
// первый период укорочен на уже прошедшую долю elapsed (баланс при рождении)
func buildCycle(scheme lordScheme, birth time.Time, startIdx int, elapsed float64, depth int) []domain.DashaPeriod {
	n := len(scheme.lords)

	// Начало цикла смещено назад на прошедшую часть первого периода
	cycleStart := birth.Add(-durationYears(elapsed * scheme.years[startIdx]))

	periods := make([]domain.DashaPeriod, 0, n)
	cum := 0.0
	for k := 0; k < n; k++ {
		idx := (startIdx + k) % n
		start := cycleStart.Add(durationYears(cum))
		cum += scheme.years[idx]
		end := cycleStart.Add(durationYears(cum))

		period := domain.DashaPeriod{
			Lord:  scheme.lords[idx],
			Level: domain.LevelMaha,
			Start: start,
			End:   end,
		}
		if depth > 1 {
			period.SubPeriods = subdivide(scheme, idx, start, end, domain.LevelAntar, depth)
		}
		periods = append(periods, period)
	}

	return periods
}

// subdivide делит период на подпериоды пропорционально годам владык,
// последовательность начинается с владыки родительского периода
func subdivide(scheme lordScheme, parentIdx int, start, end time.Time, level domain.DashaLevel, depth int) []domain.DashaPeriod {
	n := len(scheme.lords)
	span := end.Sub(start)

	subs := make([]domain.DashaPeriod, 0, n)
	cum := 0.0
	for k := 0; k < n; k++ {
		idx := (parentIdx + k) % n

		subStart := start.Add(fraction(span, cum/scheme.total))
		cum += scheme.years[idx]
		subEnd := start.Add(fraction(span, cum/scheme.total))
		if k == n-1 {
			// последняя граница совпадает с родительской точно, без накопленной ошибки деления
			subEnd = end
		}

		sub := domain.DashaPeriod{
			Lord:  scheme.lords[idx],
			Level: level,
			Start: subStart,
			End:   subEnd,
		}
		if int(level) < depth {
			sub.SubPeriods = subdivide(scheme, idx, subStart, subEnd, level+1, depth)
		}
		subs = append(subs, sub)
	}

	return subs
}

func durationYears(years float64) time.Duration {
	return time.Duration(math.Round(years * nanosPerYear))
}

func fraction(span time.Duration, f float64) time.Duration {
	return time.Duration(math.Round(float64(span) * f))
}

// nakshatraIndex индекс накшатры 0..26 и доля её прохождения
func nakshatraIndex(moonLongitude float64) (int, float64) {
	lon := math.Mod(moonLongitude, 360)
	if lon < 0 {
		lon += 360
	}
	idx := int(lon / domain.NakshatraSpan)
	if idx > domain.NakshatraCount-1 {
		idx = domain.NakshatraCount - 1
	}
	frac := (lon - float64(idx)*domain.NakshatraSpan) / domain.NakshatraSpan
	return idx, frac
}
