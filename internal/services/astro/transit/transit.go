package transit

import (
	"time"

	"github.com/admin/astro-services/kundli-api/internal/domain"
)

// Транзитный анализ: текущие сидерические позиции проецируются на натальную
// карту, аспекты ищутся по угловым орбисам, Саде Сати определяется положением
// транзитного Сатурна относительно натальной Луны.

// aspectDef угол и орбис стандартного аспекта
type aspectDef struct {
	kind  domain.AspectType
	angle float64
	orb   float64
}

var standardAspects = []aspectDef{
	{domain.AspectConjunction, 0, 8},
	{domain.AspectOpposition, 180, 8},
	{domain.AspectTrine, 120, 6},
	{domain.AspectSquare, 90, 6},
	{domain.AspectSextile, 60, 4},
}

// особые аспекты: Марс на 4-й и 8-й дом, Юпитер на 5-й и 9-й, Сатурн на 3-й и
// 10-й; считаются от транзитной грахи вперёд по зодиаку, орбис 3°
var specialAspects = map[domain.Planet][]float64{
	domain.Mars:    {90, 210},
	domain.Jupiter: {120, 240},
	domain.Saturn:  {60, 270},
}

type Service struct{}

func New() *Service {
	return &Service{}
}

// Natal минимально необходимая часть натальной карты
type Natal struct {
	Ascendant  domain.AscendantPosition
	HouseCusps [12]float64
	Positions  []domain.PlanetPosition
}

// Build проецирует транзитные позиции на натальную карту
func (s *Service) Build(at time.Time, transits []domain.PlanetPosition, natal *Natal) domain.TransitData {
	positions := make([]domain.PlanetPosition, len(transits))
	copy(positions, transits)
	for i := range positions {
		positions[i].House = houseOf(positions[i].Longitude, natal.HouseCusps)
	}

	data := domain.TransitData{
		Timestamp: at,
		Positions: positions,
		Aspects:   s.Aspects(transits, natal.Positions),
	}

	if phase := sadeSatiPhase(transits, natal.Positions); phase != nil {
		data.SadeSati = phase
	}

	return data
}

// Aspects перебирает пары транзитная × натальная граха и собирает активные аспекты
func (s *Service) Aspects(transits, natal []domain.PlanetPosition) []domain.TransitAspect {
	aspects := make([]domain.TransitAspect, 0)

	for _, tr := range transits {
		for _, nt := range natal {
			if a := matchAspect(tr, nt); a != nil {
				aspects = append(aspects, *a)
			}
		}
	}

	return aspects
}

// matchAspect ближайший подходящий аспект пары или nil
func matchAspect(tr, nt domain.PlanetPosition) *domain.TransitAspect {
	shortest := func(trLon, ntLon float64) float64 { return arcDistance(trLon, ntLon) }
	// особые аспекты направленные: угол меряется вперёд от транзитной грахи
	forward := func(trLon, ntLon float64) float64 { return normalize(ntLon - trLon) }

	var best *domain.TransitAspect
	consider := func(kind domain.AspectType, angle, orb float64, metric func(a, b float64) float64) {
		deviation := metric(tr.Longitude, nt.Longitude) - angle
		if deviation < 0 {
			deviation = -deviation
		}
		if deviation > orb {
			return
		}
		if best != nil && deviation >= best.Orb {
			return
		}
		best = &domain.TransitAspect{
			Transiting: tr.Planet,
			Natal:      nt.Planet,
			Type:       kind,
			Angle:      angle,
			Orb:        deviation,
			Applying:   isApplying(tr, nt, angle, metric),
			Strength:   aspectStrength(deviation, orb),
		}
	}

	// особый аспект при равном отклонении имеет приоритет над стандартным
	for _, angle := range specialAspects[tr.Planet] {
		consider(domain.AspectSpecial, angle, 3, forward)
	}

	for _, def := range standardAspects {
		consider(def.kind, def.angle, def.orb, shortest)
	}

	return best
}

// isApplying аспект сходящийся, если движение пары сокращает отклонение
// на горизонте в один час
func isApplying(tr, nt domain.PlanetPosition, angle float64, metric func(a, b float64) float64) bool {
	devNow := metric(tr.Longitude, nt.Longitude) - angle
	if devNow < 0 {
		devNow = -devNow
	}

	// натальная точка неподвижна, движется только транзитная граха
	devNext := metric(tr.Longitude+tr.DailyMotion/24, nt.Longitude) - angle
	if devNext < 0 {
		devNext = -devNext
	}
	return devNext < devNow
}

// aspectStrength сила по доле орбиса
func aspectStrength(deviation, orb float64) domain.YogaStrength {
	switch {
	case deviation <= orb/3:
		return domain.StrengthStrong
	case deviation <= 2*orb/3:
		return domain.StrengthModerate
	}
	return domain.StrengthWeak
}

// sadeSatiPhase фаза Саде Сати: транзитный Сатурн в 12-м, 1-м или 2-м знаке
// от натальной Луны
func sadeSatiPhase(transits, natal []domain.PlanetPosition) *domain.SadeSatiPhase {
	var saturn, moon *domain.PlanetPosition
	for i := range transits {
		if transits[i].Planet == domain.Saturn {
			saturn = &transits[i]
		}
	}
	for i := range natal {
		if natal[i].Planet == domain.Moon {
			moon = &natal[i]
		}
	}
	if saturn == nil || moon == nil {
		return nil
	}

	offset := (int(saturn.Sign) - int(moon.Sign) + 12) % 12

	var phase domain.SadeSatiPhase
	switch offset {
	case 11:
		phase = domain.SadeSatiRising
	case 0:
		phase = domain.SadeSatiPeak
	case 1:
		phase = domain.SadeSatiSetting
	default:
		return nil
	}
	return &phase
}

// houseOf дом по кусповым границам, нижняя граница включительно
func houseOf(longitude float64, cusps [12]float64) int {
	for i := 0; i < 12; i++ {
		lo := cusps[i]
		hi := cusps[(i+1)%12]
		if inArc(longitude, lo, hi) {
			return i + 1
		}
	}
	return 12
}

// inArc принадлежность дуге [lo, hi) с учётом перехода через 0°
func inArc(lon, lo, hi float64) bool {
	lon = normalize(lon)
	lo = normalize(lo)
	hi = normalize(hi)
	if lo <= hi {
		return lon >= lo && lon < hi
	}
	return lon >= lo || lon < hi
}

func normalize(deg float64) float64 {
	deg -= 360 * float64(int(deg/360))
	if deg < 0 {
		deg += 360
	}
	return deg
}

// arcDistance кратчайшая дуга, 0..180
func arcDistance(a, b float64) float64 {
	d := normalize(a - b)
	if d > 180 {
		d = 360 - d
	}
	return d
}
