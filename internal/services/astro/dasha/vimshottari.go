package dasha

import (
	"time"

	"github.com/admin/astro-services/kundli-api/internal/domain"
)

// Вимшоттари: цикл 120 лет, девять владык от Кету, владыка первого периода -
// владыка натальной накшатры Луны, баланс - непройденная часть накшатры.

var vimshottariScheme = lordScheme{
	lords: []domain.Planet{
		domain.Ketu, domain.Venus, domain.Sun, domain.Moon, domain.Mars,
		domain.Rahu, domain.Jupiter, domain.Saturn, domain.Mercury,
	},
	years: []float64{7, 20, 6, 10, 7, 18, 16, 19, 17},
	total: 120,
}

// Vimshottari полный 120-летний цикл от вычисленного старта
func (s *Service) Vimshottari(birth time.Time, moonLongitude float64, depth int) []domain.DashaPeriod {
	nak, frac := nakshatraIndex(moonLongitude)

	// Владыки накшатр повторяются циклом по девять начиная с Ашвини (Кету)
	startIdx := nak % len(vimshottariScheme.lords)

	return buildCycle(vimshottariScheme, birth, startIdx, frac, clampDepth(depth))
}

func clampDepth(depth int) int {
	if depth < 1 {
		return 1
	}
	if depth > MaxDepth {
		return MaxDepth
	}
	return depth
}
