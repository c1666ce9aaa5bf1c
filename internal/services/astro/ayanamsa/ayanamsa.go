package ayanamsa

import (
	"fmt"
	"math"
	"time"

	"github.com/admin/astro-services/kundli-api/internal/domain"
	"github.com/admin/astro-services/kundli-api/internal/services/astro/ephemeris"
)

// Линейная модель аянамши, привязанная к эпохе J2000: значение на эпоху плюс
// скорость прецессии. Для рабочего диапазона дат расхождение с точными
// полиномами остаётся в пределах долей угловой минуты.

// скорость прецессии, градусов в юлианское столетие
const precessionRate = 1.3969713

// значения аянамши на эпоху J2000.0, градусы
var epochValues = map[domain.AyanamsaSystem]float64{
	domain.AyanamsaLahiri:       23.85306, // 23°51′11″
	domain.AyanamsaRaman:        22.41233, // 22°24′44″
	domain.AyanamsaKrishnamurti: 23.75944, // 23°45′34″
}

// Service вычисляет аянамшу и переводит тропические долготы в сидерические
type Service struct{}

func New() *Service {
	return &Service{}
}

// Value аянамша выбранной системы на момент времени, в градусах
func (s *Service) Value(instant time.Time, system domain.AyanamsaSystem) (float64, error) {
	epoch, ok := epochValues[system]
	if !ok {
		return 0, fmt.Errorf("%w: ayanamsa %q", domain.ErrUnsupportedConfiguration, system)
	}

	t := (ephemeris.JulianDay(instant.UTC()) - ephemeris.J2000) / 36525.0
	return epoch + precessionRate*t, nil
}

// Sidereal переводит тропическую долготу в сидерическую с нормализацией в [0, 360)
func (s *Service) Sidereal(tropical float64, instant time.Time, system domain.AyanamsaSystem) (float64, error) {
	ayan, err := s.Value(instant, system)
	if err != nil {
		return 0, err
	}

	sidereal := math.Mod(tropical-ayan, 360)
	if sidereal < 0 {
		sidereal += 360
	}
	return sidereal, nil
}
