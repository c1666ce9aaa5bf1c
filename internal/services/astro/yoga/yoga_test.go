package yoga

import (
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/admin/astro-services/kundli-api/internal/domain"
)

func newService() *Service {
	return New(slog.Default())
}

func chartWith(asc domain.Sign, positions ...domain.PlanetPosition) *Chart {
	return &Chart{
		Ascendant: domain.AscendantPosition{Sign: asc, Longitude: float64(asc) * 30},
		Positions: positions,
	}
}

func pos(p domain.Planet, sign domain.Sign) domain.PlanetPosition {
	return domain.PlanetPosition{
		Planet:    p,
		Sign:      sign,
		Longitude: float64(sign)*30 + 15,
		Dignity:   domain.DignityNeutral,
	}
}

func findYoga(yogas []domain.Yoga, name string) *domain.Yoga {
	for i := range yogas {
		if yogas[i].Name == name {
			return &yogas[i]
		}
	}
	return nil
}

func findDosha(doshas []domain.Dosha, name string) *domain.Dosha {
	for i := range doshas {
		if doshas[i].Name == name {
			return &doshas[i]
		}
	}
	return nil
}

func TestSignDistance(t *testing.T) {
	assert.Equal(t, 1, SignDistance(domain.Aries, domain.Aries))
	assert.Equal(t, 7, SignDistance(domain.Aries, domain.Libra))
	assert.Equal(t, 12, SignDistance(domain.Taurus, domain.Aries))
	assert.Equal(t, 4, SignDistance(domain.Capricorn, domain.Aries))
}

func TestGajakesari(t *testing.T) {
	svc := newService()

	// Юпитер в 7-м от Луны - кендра
	c := chartWith(domain.Aries,
		pos(domain.Moon, domain.Gemini),
		pos(domain.Jupiter, domain.Sagittarius),
	)
	assert.NotNil(t, findYoga(svc.DetectYogas(c), "Gajakesari Yoga"))

	// Юпитер в 3-м от Луны - нет йоги
	c = chartWith(domain.Aries,
		pos(domain.Moon, domain.Gemini),
		pos(domain.Jupiter, domain.Leo),
	)
	assert.Nil(t, findYoga(svc.DetectYogas(c), "Gajakesari Yoga"))
}

func TestBudhaditya(t *testing.T) {
	svc := newService()

	c := chartWith(domain.Aries,
		pos(domain.Sun, domain.Sagittarius),
		pos(domain.Mercury, domain.Sagittarius),
	)
	assert.NotNil(t, findYoga(svc.DetectYogas(c), "Budhaditya Yoga"))

	c = chartWith(domain.Aries,
		pos(domain.Sun, domain.Sagittarius),
		pos(domain.Mercury, domain.Capricorn),
	)
	assert.Nil(t, findYoga(svc.DetectYogas(c), "Budhaditya Yoga"))
}

func TestMahapurusha_Ruchaka(t *testing.T) {
	svc := newService()

	// Марс экзальтирован в Козероге, 10-й дом от асцендента Овна
	mars := pos(domain.Mars, domain.Capricorn)
	mars.Dignity = domain.DignityExalted
	c := chartWith(domain.Aries, mars)

	yoga := findYoga(svc.DetectYogas(c), "Ruchaka Yoga")
	require.NotNil(t, yoga)
	assert.Equal(t, domain.StrengthStrong, yoga.Strength)

	// тот же Марс вне кендры - йоги нет
	c = chartWith(domain.Taurus, mars)
	assert.Nil(t, findYoga(svc.DetectYogas(c), "Ruchaka Yoga"))
}

func TestNeechaBhanga(t *testing.T) {
	svc := newService()

	// Сатурн дебилитирован в Овне, владыка Овна (Марс) в кендре от асцендента
	saturn := pos(domain.Saturn, domain.Aries)
	saturn.Dignity = domain.DignityDebilitated
	c := chartWith(domain.Aries, saturn, pos(domain.Mars, domain.Cancer))

	assert.NotNil(t, findYoga(svc.DetectYogas(c), "Neecha Bhanga Raja Yoga"))
}

func TestManglik_HouseProperty(t *testing.T) {
	svc := newService()

	for house := 1; house <= 12; house++ {
		sign := domain.NormalizeSign(int(domain.Aries) + house - 1)
		mars := pos(domain.Mars, sign)
		c := chartWith(domain.Aries, mars)

		dosha := findDosha(svc.DetectDoshas(c), "Manglik Dosha")
		switch house {
		case 1, 4, 7, 8, 12:
			require.NotNil(t, dosha, "house %d must flag manglik", house)
			assert.False(t, dosha.Cancelled, "house %d", house)
		default:
			assert.Nil(t, dosha, "house %d must not flag manglik", house)
		}
	}
}

func TestManglik_Cancellation(t *testing.T) {
	svc := newService()

	// Марс в своём знаке
	mars := pos(domain.Mars, domain.Aries)
	mars.Dignity = domain.DignityOwnSign
	c := chartWith(domain.Aries, mars)
	dosha := findDosha(svc.DetectDoshas(c), "Manglik Dosha")
	require.NotNil(t, dosha)
	assert.True(t, dosha.Cancelled)
	assert.NotEmpty(t, dosha.CancelReason)

	// Марс экзальтирован
	mars = pos(domain.Mars, domain.Capricorn)
	mars.Dignity = domain.DignityExalted
	c = chartWith(domain.Capricorn, mars)
	dosha = findDosha(svc.DetectDoshas(c), "Manglik Dosha")
	require.NotNil(t, dosha)
	assert.True(t, dosha.Cancelled)

	// аспект Юпитера: Марс в 7-м от Юпитера
	mars = pos(domain.Mars, domain.Libra)
	c = chartWith(domain.Libra, mars, pos(domain.Jupiter, domain.Aries))
	dosha = findDosha(svc.DetectDoshas(c), "Manglik Dosha")
	require.NotNil(t, dosha)
	assert.True(t, dosha.Cancelled)
	assert.Contains(t, dosha.CancelReason, "Jupiter")
}

func TestKaalSarp(t *testing.T) {
	svc := newService()

	axis := []domain.PlanetPosition{
		pos(domain.Rahu, domain.Aries),
		pos(domain.Ketu, domain.Libra),
	}

	// все грахи между Раху (Овен) и Кету (Весы) - полная доша
	full := append([]domain.PlanetPosition{
		pos(domain.Sun, domain.Taurus),
		pos(domain.Moon, domain.Gemini),
		pos(domain.Mars, domain.Cancer),
		pos(domain.Mercury, domain.Taurus),
		pos(domain.Jupiter, domain.Leo),
		pos(domain.Venus, domain.Gemini),
		pos(domain.Saturn, domain.Virgo),
	}, axis...)
	doshas := svc.DetectDoshas(chartWith(domain.Aries, full...))
	assert.NotNil(t, findDosha(doshas, "Kaal Sarp Dosha"))

	// одна граха вне оси - частичная форма
	partial := make([]domain.PlanetPosition, len(full))
	copy(partial, full)
	partial[1] = pos(domain.Moon, domain.Aquarius)
	doshas = svc.DetectDoshas(chartWith(domain.Aries, partial...))
	assert.Nil(t, findDosha(doshas, "Kaal Sarp Dosha"))
	assert.NotNil(t, findDosha(doshas, "Partial Kaal Sarp Dosha"))

	// две грахи вне оси - доши нет
	spread := make([]domain.PlanetPosition, len(full))
	copy(spread, full)
	spread[1] = pos(domain.Moon, domain.Aquarius)
	spread[2] = pos(domain.Mars, domain.Capricorn)
	doshas = svc.DetectDoshas(chartWith(domain.Aries, spread...))
	assert.Nil(t, findDosha(doshas, "Kaal Sarp Dosha"))
	assert.Nil(t, findDosha(doshas, "Partial Kaal Sarp Dosha"))
}

func TestKemadruma(t *testing.T) {
	svc := newService()

	// Луна без соседей и вне кендр - активная доша
	c := chartWith(domain.Aries,
		pos(domain.Moon, domain.Taurus),
		pos(domain.Mars, domain.Virgo),
	)
	dosha := findDosha(svc.DetectDoshas(c), "Kemadruma Dosha")
	require.NotNil(t, dosha)
	assert.False(t, dosha.Cancelled)

	// Марс в кендре от Луны - доша остаётся, но отменена
	c = chartWith(domain.Aries,
		pos(domain.Moon, domain.Taurus),
		pos(domain.Mars, domain.Leo),
	)
	dosha = findDosha(svc.DetectDoshas(c), "Kemadruma Dosha")
	require.NotNil(t, dosha)
	assert.True(t, dosha.Cancelled)

	// Венера во 2-м от Луны - доши нет вовсе
	c = chartWith(domain.Aries,
		pos(domain.Moon, domain.Taurus),
		pos(domain.Venus, domain.Gemini),
	)
	assert.Nil(t, findDosha(svc.DetectDoshas(c), "Kemadruma Dosha"))
}

func TestGuruChandalAndGrahan(t *testing.T) {
	svc := newService()

	c := chartWith(domain.Aries,
		pos(domain.Jupiter, domain.Leo),
		pos(domain.Rahu, domain.Leo),
		pos(domain.Ketu, domain.Aquarius),
		pos(domain.Sun, domain.Aquarius),
	)
	doshas := svc.DetectDoshas(c)
	assert.NotNil(t, findDosha(doshas, "Guru Chandal Dosha"))
	assert.NotNil(t, findDosha(doshas, "Grahan Dosha"))
}

func TestPitra(t *testing.T) {
	svc := newService()

	// Раху в 9-м доме от асцендента
	c := chartWith(domain.Aries, pos(domain.Rahu, domain.Sagittarius))
	assert.NotNil(t, findDosha(svc.DetectDoshas(c), "Pitra Dosha"))

	c = chartWith(domain.Aries, pos(domain.Rahu, domain.Taurus))
	assert.Nil(t, findDosha(svc.DetectDoshas(c), "Pitra Dosha"))
}

func TestRuleIsolation(t *testing.T) {
	svc := newService()

	// паникующее правило не мешает остальным
	original := yogaCatalog
	defer func() { yogaCatalog = original }()
	yogaCatalog = append([]yogaRule{{
		Name:     "broken",
		Evaluate: func(c *Chart) *domain.Yoga { panic("boom") },
	}}, original...)

	c := chartWith(domain.Aries,
		pos(domain.Sun, domain.Sagittarius),
		pos(domain.Mercury, domain.Sagittarius),
	)
	yogas := svc.DetectYogas(c)
	assert.NotNil(t, findYoga(yogas, "Budhaditya Yoga"))
}

func TestDetect_EmptyChart(t *testing.T) {
	svc := newService()
	c := chartWith(domain.Aries)
	assert.Empty(t, svc.DetectYogas(c))
	assert.Empty(t, svc.DetectDoshas(c))
}
