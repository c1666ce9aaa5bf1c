package transit

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/admin/astro-services/kundli-api/internal/domain"
)

func planetAt(p domain.Planet, lon, motion float64) domain.PlanetPosition {
	return domain.PlanetPosition{
		Planet:      p,
		Longitude:   lon,
		Sign:        domain.NormalizeSign(int(lon / 30)),
		DailyMotion: motion,
	}
}

func TestAspects_Conjunction(t *testing.T) {
	svc := New()

	aspects := svc.Aspects(
		[]domain.PlanetPosition{planetAt(domain.Jupiter, 102.0, 0.08)},
		[]domain.PlanetPosition{planetAt(domain.Moon, 100.0, 13.2)},
	)
	require.Len(t, aspects, 1)

	a := aspects[0]
	assert.Equal(t, domain.AspectConjunction, a.Type)
	assert.Equal(t, domain.Jupiter, a.Transiting)
	assert.Equal(t, domain.Moon, a.Natal)
	assert.InDelta(t, 2.0, a.Orb, 1e-9)
	assert.Equal(t, domain.StrengthStrong, a.Strength)
}

func TestAspects_OrbBoundary(t *testing.T) {
	svc := New()

	// 8.5° от точного соединения: вне орбиса соединения и любого другого аспекта
	aspects := svc.Aspects(
		[]domain.PlanetPosition{planetAt(domain.Venus, 108.5, 1.2)},
		[]domain.PlanetPosition{planetAt(domain.Sun, 100.0, 0.98)},
	)
	assert.Empty(t, aspects)

	// секстиль с орбисом 4°: отклонение 3.9 проходит
	aspects = svc.Aspects(
		[]domain.PlanetPosition{planetAt(domain.Venus, 163.9, 1.2)},
		[]domain.PlanetPosition{planetAt(domain.Sun, 100.0, 0.98)},
	)
	require.Len(t, aspects, 1)
	assert.Equal(t, domain.AspectSextile, aspects[0].Type)
	assert.Equal(t, domain.StrengthWeak, aspects[0].Strength)
}

func TestAspects_SpecialSaturn(t *testing.T) {
	svc := New()

	// Сатурн аспектирует 10-й знак от себя: вперёд 270°, орбис 3°
	aspects := svc.Aspects(
		[]domain.PlanetPosition{planetAt(domain.Saturn, 10.0, 0.03)},
		[]domain.PlanetPosition{planetAt(domain.Mars, 281.0, 0)},
	)
	require.Len(t, aspects, 1)
	assert.Equal(t, domain.AspectSpecial, aspects[0].Type)
	assert.InDelta(t, 270, aspects[0].Angle, 1e-9)
	assert.InDelta(t, 1.0, aspects[0].Orb, 1e-9)

	// у Венеры особых аспектов нет: та же конфигурация распознаётся как квадрат
	aspects = svc.Aspects(
		[]domain.PlanetPosition{planetAt(domain.Venus, 10.0, 1.2)},
		[]domain.PlanetPosition{planetAt(domain.Mars, 281.0, 0)},
	)
	require.Len(t, aspects, 1)
	assert.Equal(t, domain.AspectSquare, aspects[0].Type)
}

func TestAspects_Applying(t *testing.T) {
	svc := New()

	// транзитная граха позади точного соединения и движется вперёд: сходится
	aspects := svc.Aspects(
		[]domain.PlanetPosition{planetAt(domain.Mars, 97.0, 0.6)},
		[]domain.PlanetPosition{planetAt(domain.Sun, 100.0, 0)},
	)
	require.Len(t, aspects, 1)
	assert.True(t, aspects[0].Applying)

	// уже прошла точку: расходится
	aspects = svc.Aspects(
		[]domain.PlanetPosition{planetAt(domain.Mars, 103.0, 0.6)},
		[]domain.PlanetPosition{planetAt(domain.Sun, 100.0, 0)},
	)
	require.Len(t, aspects, 1)
	assert.False(t, aspects[0].Applying)
}

func TestSadeSati(t *testing.T) {
	natalMoon := []domain.PlanetPosition{planetAt(domain.Moon, 315.0, 0)} // Водолей

	cases := []struct {
		saturnLon float64
		phase     *domain.SadeSatiPhase
	}{
		{290.0, phasePtr(domain.SadeSatiRising)},  // Козерог, 12-й от Луны
		{310.0, phasePtr(domain.SadeSatiPeak)},    // Водолей
		{340.0, phasePtr(domain.SadeSatiSetting)}, // Рыбы
		{100.0, nil},
	}

	for _, tc := range cases {
		got := sadeSatiPhase(
			[]domain.PlanetPosition{planetAt(domain.Saturn, tc.saturnLon, 0.03)},
			natalMoon,
		)
		if tc.phase == nil {
			assert.Nil(t, got, "saturn at %.0f", tc.saturnLon)
		} else {
			require.NotNil(t, got, "saturn at %.0f", tc.saturnLon)
			assert.Equal(t, *tc.phase, *got)
		}
	}
}

func phasePtr(p domain.SadeSatiPhase) *domain.SadeSatiPhase { return &p }

func TestBuild_HouseMapping(t *testing.T) {
	svc := New()

	natal := &Natal{
		Ascendant: domain.AscendantPosition{Sign: domain.Aries, Longitude: 0},
	}
	for i := 0; i < 12; i++ {
		natal.HouseCusps[i] = float64(i * 30)
	}

	at := time.Date(2026, 8, 23, 12, 0, 0, 0, time.UTC)
	data := svc.Build(at, []domain.PlanetPosition{
		planetAt(domain.Jupiter, 95.0, 0.08),
		planetAt(domain.Saturn, 359.9, 0.03),
	}, natal)

	assert.True(t, data.Timestamp.Equal(at))
	require.Len(t, data.Positions, 2)
	assert.Equal(t, 4, data.Positions[0].House)
	assert.Equal(t, 12, data.Positions[1].House)
}

func TestHouseOf_WrapAround(t *testing.T) {
	var cusps [12]float64
	for i := 0; i < 12; i++ {
		cusps[i] = normalize(350 + float64(i*30))
	}

	assert.Equal(t, 1, houseOf(355, cusps))
	assert.Equal(t, 1, houseOf(5, cusps))
	assert.Equal(t, 2, houseOf(20, cusps))
	assert.Equal(t, 12, houseOf(349.9, cusps))
}
