package dasha

import (
	"time"

	"github.com/admin/astro-services/kundli-api/internal/domain"
)

// Йогини: цикл 36 лет, восемь йогини с длительностями 1..8 лет.
// Стартовая йогини определяется номером накшатры Луны: (номер + 3) mod 8.

var yoginiScheme = lordScheme{
	// Мангала(Луна), Пингала(Солнце), Дханья(Юпитер), Бхрамари(Марс),
	// Бхадрика(Меркурий), Улка(Сатурн), Сиддха(Венера), Санката(Раху)
	lords: []domain.Planet{
		domain.Moon, domain.Sun, domain.Jupiter, domain.Mars,
		domain.Mercury, domain.Saturn, domain.Venus, domain.Rahu,
	},
	years: []float64{1, 2, 3, 4, 5, 6, 7, 8},
	total: 36,
}

// YoginiNames имена йогини в порядке следования владык
var YoginiNames = []string{"Mangala", "Pingala", "Dhanya", "Bhramari", "Bhadrika", "Ulka", "Siddha", "Sankata"}

// Yogini полный 36-летний цикл
func (s *Service) Yogini(birth time.Time, moonLongitude float64, depth int) []domain.DashaPeriod {
	nak, frac := nakshatraIndex(moonLongitude)

	// классическая формула: остаток (номер накшатры + 3) mod 8,
	// где 1 = Мангала ... 0 = Санката
	rem := (nak + 1 + 3) % 8
	startIdx := (rem + 7) % 8

	return buildCycle(yoginiScheme, birth, startIdx, frac, clampDepth(depth))
}
