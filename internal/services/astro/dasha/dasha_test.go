package dasha

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/admin/astro-services/kundli-api/internal/domain"
)

var birth = time.Date(2000, 1, 1, 6, 30, 0, 0, time.UTC)

// проверяет строгую непрерывность: конец k точно равен началу k+1 на всех уровнях
func assertContiguous(t *testing.T, periods []domain.DashaPeriod) {
	t.Helper()
	for i := 0; i < len(periods); i++ {
		p := periods[i]
		assert.True(t, p.End.After(p.Start), "period %d has non-positive span", i)
		if i > 0 {
			assert.True(t, periods[i-1].End.Equal(p.Start),
				"gap between period %d and %d: %v != %v", i-1, i, periods[i-1].End, p.Start)
		}
		if len(p.SubPeriods) > 0 {
			assert.True(t, p.SubPeriods[0].Start.Equal(p.Start))
			assert.True(t, p.SubPeriods[len(p.SubPeriods)-1].End.Equal(p.End))
			assertContiguous(t, p.SubPeriods)
		}
	}
}

func TestVimshottari_CycleLength(t *testing.T) {
	svc := New()
	periods := svc.Vimshottari(birth, 311.6, 3)
	require.Len(t, periods, 9)

	total := periods[len(periods)-1].End.Sub(periods[0].Start)
	expected := time.Duration(120 * nanosPerYear)
	assert.InDelta(t, float64(expected), float64(total), float64(time.Second))

	assertContiguous(t, periods)
}

func TestVimshottari_StartingLord(t *testing.T) {
	svc := New()

	// Луна в 0° Овна - Ашвини, владыка Кету
	periods := svc.Vimshottari(birth, 0, 1)
	assert.Equal(t, domain.Ketu, periods[0].Lord)

	// Луна в Бхарани (13°20′..26°40′) - Венера
	periods = svc.Vimshottari(birth, 20, 1)
	assert.Equal(t, domain.Venus, periods[0].Lord)

	// Луна в Рохини (40°..53°20′) - Луна
	periods = svc.Vimshottari(birth, 45, 1)
	assert.Equal(t, domain.Moon, periods[0].Lord)
}

func TestVimshottari_Balance(t *testing.T) {
	svc := New()

	// Луна ровно в начале Ашвини: первый период Кету полные 7 лет от рождения
	periods := svc.Vimshottari(birth, 0, 1)
	assert.True(t, periods[0].Start.Equal(birth))
	assert.InDelta(t, 7*365.25*24, periods[0].End.Sub(birth).Hours(), 1)

	// Луна в середине Ашвини: от рождения остаётся половина периода Кету
	periods = svc.Vimshottari(birth, domain.NakshatraSpan/2, 1)
	remaining := periods[0].End.Sub(birth)
	assert.InDelta(t, 3.5*365.25*24, remaining.Hours(), 1)
}

func TestVimshottari_ExactlyOneActiveMahadasha(t *testing.T) {
	svc := New()
	periods := svc.Vimshottari(birth, 311.6, 1)

	// для набора моментов внутри цикла активен ровно один период
	for _, offset := range []time.Duration{
		time.Hour, 24 * time.Hour * 365, 24 * time.Hour * 365 * 40, 24 * time.Hour * 365 * 119,
	} {
		at := periods[0].Start.Add(offset)
		active := 0
		for i := range periods {
			if periods[i].ActiveAt(at) {
				active++
			}
		}
		assert.Equal(t, 1, active, "offset %v", offset)
	}
}

func TestVimshottari_SubPeriodLords(t *testing.T) {
	svc := New()
	periods := svc.Vimshottari(birth, 0, 2)

	// антардаши начинаются с владыки родительского периода
	for _, p := range periods {
		require.Len(t, p.SubPeriods, 9)
		assert.Equal(t, p.Lord, p.SubPeriods[0].Lord)
	}

	// первая антардаша Кету-Кету длится 7×7/120 лет
	ketu := periods[0]
	sub := ketu.SubPeriods[0]
	expected := 7.0 * 7.0 / 120.0 * 365.25 * 24
	assert.InDelta(t, expected, sub.End.Sub(sub.Start).Hours(), 1)
}

func TestVimshottari_FullDepth(t *testing.T) {
	svc := New()
	periods := svc.Vimshottari(birth, 100, MaxDepth)
	assertContiguous(t, periods)

	// пять уровней вложенности
	p := periods[0]
	for level := domain.LevelAntar; level <= domain.LevelPrana; level++ {
		require.NotEmpty(t, p.SubPeriods)
		assert.Equal(t, level, p.SubPeriods[0].Level)
		p = p.SubPeriods[0]
	}
	assert.Empty(t, p.SubPeriods)
}

func TestYogini_CycleLength(t *testing.T) {
	svc := New()
	periods := svc.Yogini(birth, 123.4, 2)
	require.Len(t, periods, 8)

	total := periods[len(periods)-1].End.Sub(periods[0].Start)
	assert.InDelta(t, 36*365.25*24, total.Hours(), 1)

	assertContiguous(t, periods)
}

func TestYogini_StartingLord(t *testing.T) {
	svc := New()

	// Ашвини (номер 1): (1+3) mod 8 = 4 - Бхрамари (Марс)
	periods := svc.Yogini(birth, 0, 1)
	assert.Equal(t, domain.Mars, periods[0].Lord)

	// Криттика (номер 3): (3+3) mod 8 = 6 - Улка (Сатурн)
	periods = svc.Yogini(birth, 28, 1)
	assert.Equal(t, domain.Saturn, periods[0].Lord)
}

func TestAshtottari_CycleLength(t *testing.T) {
	svc := New()
	periods := svc.Ashtottari(birth, 200.0, 2)
	require.Len(t, periods, 8)

	total := periods[len(periods)-1].End.Sub(periods[0].Start)
	assert.InDelta(t, 108*365.25*24, total.Hours(), 1)

	assertContiguous(t, periods)
}

func TestAshtottari_StartingLord(t *testing.T) {
	svc := New()

	// Криттика - первая накшатра группы Солнца
	periods := svc.Ashtottari(birth, 27.0, 1)
	assert.Equal(t, domain.Sun, periods[0].Lord)

	// Ардра (индекс 5) - первая группа Луны
	periods = svc.Ashtottari(birth, 5.5*domain.NakshatraSpan, 1)
	assert.Equal(t, domain.Moon, periods[0].Lord)
}

func TestChara_TwelveSignPeriods(t *testing.T) {
	svc := New()

	positions := []domain.PlanetPosition{
		{Planet: domain.Sun, Sign: domain.Sagittarius},
		{Planet: domain.Moon, Sign: domain.Aquarius},
		{Planet: domain.Mars, Sign: domain.Aquarius},
		{Planet: domain.Mercury, Sign: domain.Sagittarius},
		{Planet: domain.Jupiter, Sign: domain.Aries},
		{Planet: domain.Venus, Sign: domain.Scorpio},
		{Planet: domain.Saturn, Sign: domain.Aries},
	}

	periods := svc.Chara(birth, domain.Pisces, positions, 2)
	require.Len(t, periods, 12)
	assert.True(t, periods[0].Start.Equal(birth))

	assertContiguous(t, periods)

	// каждый период несёт знак, каждый знак встречается ровно один раз
	seen := map[domain.Sign]bool{}
	for _, p := range periods {
		require.NotNil(t, p.Sign)
		assert.False(t, seen[*p.Sign], "sign %s repeated", *p.Sign)
		seen[*p.Sign] = true
		require.Len(t, p.SubPeriods, 12)
	}
}

func TestChara_OwnSignTwelveYears(t *testing.T) {
	svc := New()

	// Управитель Овна (Марс) в Овне: период Овна 12 лет
	positions := []domain.PlanetPosition{
		{Planet: domain.Mars, Sign: domain.Aries},
	}

	periods := svc.Chara(birth, domain.Aries, positions, 1)
	require.NotNil(t, periods[0].Sign)
	assert.Equal(t, domain.Aries, *periods[0].Sign)
	assert.InDelta(t, 12*365.25*24, periods[0].End.Sub(periods[0].Start).Hours(), 1)
}

func TestBuildAll(t *testing.T) {
	svc := New()
	set := svc.BuildAll(birth, 311.6, domain.Pisces, []domain.PlanetPosition{
		{Planet: domain.Sun, Sign: domain.Sagittarius},
		{Planet: domain.Moon, Sign: domain.Aquarius},
		{Planet: domain.Mars, Sign: domain.Aquarius},
		{Planet: domain.Mercury, Sign: domain.Sagittarius},
		{Planet: domain.Jupiter, Sign: domain.Aries},
		{Planet: domain.Venus, Sign: domain.Scorpio},
		{Planet: domain.Saturn, Sign: domain.Aries},
	}, DefaultDepth)

	assert.Len(t, set.Vimshottari, 9)
	assert.Len(t, set.Yogini, 8)
	assert.Len(t, set.Ashtottari, 8)
	assert.Len(t, set.Chara, 12)
}
