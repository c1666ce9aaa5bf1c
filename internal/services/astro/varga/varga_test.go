package varga

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/admin/astro-services/kundli-api/internal/domain"
)

func TestSignIn_AlwaysValidSign(t *testing.T) {
	svc := New()
	for _, vt := range domain.AllVargas {
		for lon := 0.0; lon < 360; lon += 0.13 {
			sign := svc.SignIn(vt, lon)
			assert.GreaterOrEqual(t, int(sign), 0, "%s at %.2f", vt, lon)
			assert.LessOrEqual(t, int(sign), 11, "%s at %.2f", vt, lon)
		}
	}
}

func TestSignIn_D1Identity(t *testing.T) {
	svc := New()
	assert.Equal(t, domain.Aries, svc.SignIn(domain.VargaD1, 15))
	assert.Equal(t, domain.Virgo, svc.SignIn(domain.VargaD1, 155))
	assert.Equal(t, domain.Pisces, svc.SignIn(domain.VargaD1, 359.99))
}

func TestSignIn_Navamsa(t *testing.T) {
	svc := New()

	// 3°20′ Овна - вторая навамша подвижного знака, Телец
	assert.Equal(t, domain.Taurus, svc.SignIn(domain.VargaD9, 10.0/3.0))

	// 0° Весов - первая навамша подвижного знака, сами Весы
	assert.Equal(t, domain.Libra, svc.SignIn(domain.VargaD9, 180.0))

	// 0° Тельца (фиксированный) - счёт от девятого знака, Козерог
	assert.Equal(t, domain.Capricorn, svc.SignIn(domain.VargaD9, 30.0))

	// 0° Близнецов (двойственный) - счёт от пятого знака, Весы
	assert.Equal(t, domain.Libra, svc.SignIn(domain.VargaD9, 60.0))

	// последняя навамша Рыб замыкает круг в Рыбах (варготтама на краю)
	assert.Equal(t, domain.Pisces, svc.SignIn(domain.VargaD9, 359.9))
}

func TestSignIn_Hora(t *testing.T) {
	svc := New()

	// Овен (нечётный): первая половина Лев, вторая Рак
	assert.Equal(t, domain.Leo, svc.SignIn(domain.VargaD2, 10))
	assert.Equal(t, domain.Cancer, svc.SignIn(domain.VargaD2, 20))

	// Телец (чётный): наоборот
	assert.Equal(t, domain.Cancer, svc.SignIn(domain.VargaD2, 40))
	assert.Equal(t, domain.Leo, svc.SignIn(domain.VargaD2, 50))
}

func TestSignIn_Drekkana(t *testing.T) {
	svc := New()
	// Лев: дрекканы в Лев, Стрелец, Овен
	assert.Equal(t, domain.Leo, svc.SignIn(domain.VargaD3, 125))
	assert.Equal(t, domain.Sagittarius, svc.SignIn(domain.VargaD3, 135))
	assert.Equal(t, domain.Aries, svc.SignIn(domain.VargaD3, 145))
}

func TestSignIn_Trimsamsa(t *testing.T) {
	svc := New()

	// Овен (нечётный): 0-5 Овен, 5-10 Водолей, 10-18 Стрелец, 18-25 Близнецы, 25-30 Весы
	assert.Equal(t, domain.Aries, svc.SignIn(domain.VargaD30, 2))
	assert.Equal(t, domain.Aquarius, svc.SignIn(domain.VargaD30, 7))
	assert.Equal(t, domain.Sagittarius, svc.SignIn(domain.VargaD30, 15))
	assert.Equal(t, domain.Gemini, svc.SignIn(domain.VargaD30, 20))
	assert.Equal(t, domain.Libra, svc.SignIn(domain.VargaD30, 28))

	// Телец (чётный): 0-5 Телец, 5-12 Дева, 12-20 Рыбы, 20-25 Козерог, 25-30 Скорпион
	assert.Equal(t, domain.Taurus, svc.SignIn(domain.VargaD30, 33))
	assert.Equal(t, domain.Virgo, svc.SignIn(domain.VargaD30, 38))
	assert.Equal(t, domain.Pisces, svc.SignIn(domain.VargaD30, 45))
	assert.Equal(t, domain.Capricorn, svc.SignIn(domain.VargaD30, 52))
	assert.Equal(t, domain.Scorpio, svc.SignIn(domain.VargaD30, 58))
}

func TestSignIn_BoundaryInclusiveLower(t *testing.T) {
	svc := New()

	// Точная граница части относится к следующей части
	assert.Equal(t, domain.Taurus, svc.SignIn(domain.VargaD12, 2.5))
	assert.Equal(t, domain.Aries, svc.SignIn(domain.VargaD12, 2.4999))
}

func TestBuildAll(t *testing.T) {
	svc := New()

	asc := domain.AscendantPosition{Longitude: 343.2, Sign: domain.Pisces}
	positions := []domain.PlanetPosition{
		{Planet: domain.Sun, Longitude: 256.3},
		{Planet: domain.Moon, Longitude: 311.6},
	}

	charts := svc.BuildAll(asc, positions)
	assert.Len(t, charts, 16)

	for _, c := range charts {
		assert.Len(t, c.Placements, 2)
		assert.Equal(t, domain.Sun, c.Placements[0].Planet)
		assert.Equal(t, domain.Moon, c.Placements[1].Planet)
	}

	// D1 совпадает с расовой картой
	assert.Equal(t, domain.VargaD1, charts[0].Type)
	assert.Equal(t, domain.Pisces, charts[0].AscendantSign)
	assert.Equal(t, domain.Sagittarius, charts[0].Placements[0].Sign)
}
