package dasha

import (
	"time"

	"github.com/admin/astro-services/kundli-api/internal/domain"
)

// Аштоттари: цикл 108 лет, восемь владык. Владыка определяется группой накшатр,
// счёт групп идёт от Криттики с чередованием размеров 3 и 4.

var ashtottariScheme = lordScheme{
	lords: []domain.Planet{
		domain.Sun, domain.Moon, domain.Mars, domain.Mercury,
		domain.Saturn, domain.Jupiter, domain.Rahu, domain.Venus,
	},
	years: []float64{6, 15, 8, 17, 10, 19, 12, 21},
	total: 108,
}

// размеры групп накшатр от Криттики: Солнце 3, Луна 4, Марс 3, Меркурий 4, ...
// Сумма 28: классический счёт включает Абхиджит в группе Венеры; при работе
// с 27 накшатрами последняя группа просто не заполняется до конца.
var ashtottariGroupSizes = []int{3, 4, 3, 4, 3, 4, 3, 4}

// индекс Криттики среди накшатр (0-базный)
const krittikaIndex = 2

// Ashtottari полный 108-летний цикл
func (s *Service) Ashtottari(birth time.Time, moonLongitude float64, depth int) []domain.DashaPeriod {
	nak, frac := nakshatraIndex(moonLongitude)

	// позиция накшатры при счёте от Криттики
	fromKrittika := ((nak - krittikaIndex) + domain.NakshatraCount) % domain.NakshatraCount

	startIdx := 0
	offsetInGroup := 0
	pos := fromKrittika
	for i, size := range ashtottariGroupSizes {
		if pos < size {
			startIdx = i
			offsetInGroup = pos
			break
		}
		pos -= size
	}

	// баланс: пройденная доля всей группы, а не одной накшатры
	size := float64(ashtottariGroupSizes[startIdx])
	groupElapsed := (float64(offsetInGroup) + frac) / size

	return buildCycle(ashtottariScheme, birth, startIdx, groupElapsed, clampDepth(depth))
}
