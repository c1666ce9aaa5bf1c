package panchang

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/admin/astro-services/kundli-api/internal/domain"
)

func TestTithi(t *testing.T) {
	// элонгация 0°..12° - Шукла Пратипада
	info := Tithi(100, 105)
	assert.Equal(t, 1, info.Number)
	assert.Equal(t, "Pratipada", info.Name)
	assert.Equal(t, "Shukla", info.Paksha)
	assert.InDelta(t, 5.0/12, info.Completion, 1e-9)

	// элонгация 168°..180° - Пурнима
	info = Tithi(10, 184)
	assert.Equal(t, 15, info.Number)
	assert.Equal(t, "Purnima", info.Name)
	assert.Equal(t, "Shukla", info.Paksha)

	// элонгация 348°..360° - Амавасья
	info = Tithi(10, 5)
	assert.Equal(t, 30, info.Number)
	assert.Equal(t, "Amavasya", info.Name)
	assert.Equal(t, "Krishna", info.Paksha)

	// 16-я титхи - Кришна Пратипада
	info = Tithi(0, 185)
	assert.Equal(t, 16, info.Number)
	assert.Equal(t, "Pratipada", info.Name)
	assert.Equal(t, "Krishna", info.Paksha)
}

func TestNakshatra(t *testing.T) {
	info := Nakshatra(0)
	assert.Equal(t, 1, info.Number)
	assert.Equal(t, "Ashwini", info.Name)
	assert.Equal(t, 1, info.Pada)

	// последняя пада Ревати
	info = Nakshatra(359.9)
	assert.Equal(t, 27, info.Number)
	assert.Equal(t, "Revati", info.Name)
	assert.Equal(t, 4, info.Pada)
}

func TestNityaYoga(t *testing.T) {
	info := NityaYoga(0, 5)
	assert.Equal(t, 1, info.Number)
	assert.Equal(t, "Vishkambha", info.Name)

	// сумма долгот нормализуется
	info = NityaYoga(350, 20)
	assert.Equal(t, 1, info.Number)

	info = NityaYoga(180, 175)
	assert.Equal(t, 27, info.Number)
	assert.Equal(t, "Vaidhriti", info.Name)
}

func TestKarana(t *testing.T) {
	// первая половина первой титхи - Кимстугхна
	assert.Equal(t, "Kimstughna", Karana(0, 3).Name)

	// вторая карана - первая подвижная
	k := Karana(0, 8)
	assert.Equal(t, 2, k.Number)
	assert.Equal(t, "Bava", k.Name)

	// подвижные идут циклом из семи
	assert.Equal(t, "Bava", Karana(0, 8+42).Name)

	// фиксированные караны конца цикла
	assert.Equal(t, "Shakuni", Karana(0, 345).Name)
	assert.Equal(t, "Chatushpada", Karana(0, 351).Name)
	assert.Equal(t, "Naga", Karana(0, 357).Name)
}

func TestSunriseSunset_Delhi(t *testing.T) {
	loc := time.FixedZone("IST", int(5.5*3600))
	day := time.Date(2000, 1, 1, 0, 0, 0, 0, loc)

	sunrise, sunset, err := SunriseSunset(day, 28.6139, 77.2090)
	require.NoError(t, err)

	// Дели 1 января: восход около 07:14, закат около 17:35 IST
	assert.InDelta(t, 7.0+14.0/60, hourOfDay(sunrise.In(loc)), 0.2)
	assert.InDelta(t, 17.0+35.0/60, hourOfDay(sunset.In(loc)), 0.2)
	assert.True(t, sunset.After(sunrise))
}

func TestSunriseSunset_PolarNight(t *testing.T) {
	day := time.Date(2000, 12, 21, 0, 0, 0, 0, time.UTC)
	_, _, err := SunriseSunset(day, 78.0, 15.0)
	assert.ErrorIs(t, err, domain.ErrUnsupportedConfiguration)
}

func hourOfDay(t time.Time) float64 {
	return float64(t.Hour()) + float64(t.Minute())/60 + float64(t.Second())/3600
}

func TestKaalSegment(t *testing.T) {
	sunrise := time.Date(2026, 8, 23, 6, 0, 0, 0, time.UTC)
	sunset := time.Date(2026, 8, 23, 18, 0, 0, 0, time.UTC)

	// восьмая часть 12-часового дня - 90 минут
	seg := kaalSegment(sunrise, sunset, 1)
	assert.True(t, seg.Start.Equal(sunrise))
	assert.Equal(t, 90*time.Minute, seg.End.Sub(seg.Start))

	seg = kaalSegment(sunrise, sunset, 8)
	assert.True(t, seg.End.Equal(sunset))
}

func TestBuild_RahuKaalOrdinals(t *testing.T) {
	svc := New()
	loc := time.FixedZone("IST", int(5.5*3600))

	// 2026-08-23 - воскресенье: Раху Каал в восьмом сегменте
	p, err := svc.Build(time.Date(2026, 8, 23, 12, 0, 0, 0, loc), 28.6139, 77.2090, loc, 120.0, 250.0)
	require.NoError(t, err)

	dayLen := p.Sunset.Sub(p.Sunrise)
	expectedStart := p.Sunrise.Add(7 * dayLen / 8)
	assert.InDelta(t, 0, p.RahuKaal.Start.Sub(expectedStart).Seconds(), 1)
	assert.InDelta(t, 0, p.RahuKaal.End.Sub(p.Sunset).Seconds(), 1)

	assert.Equal(t, domain.Sun, p.WeekdayLord)

	// элонгация 130° - одиннадцатая титхи растущей Луны
	assert.Equal(t, "waxing", p.MoonPhase)
	assert.Equal(t, 11, p.Tithi.Number)
}

func TestBuild_Horas(t *testing.T) {
	svc := New()
	loc := time.FixedZone("IST", int(5.5*3600))

	// понедельник: первая хора Луны
	p, err := svc.Build(time.Date(2026, 8, 24, 12, 0, 0, 0, loc), 28.6139, 77.2090, loc, 120.0, 140.0)
	require.NoError(t, err)
	require.Len(t, p.Horas, 24)

	assert.Equal(t, domain.Moon, p.Horas[0].Lord)
	assert.True(t, p.Horas[0].Start.Equal(p.Sunrise))

	// шов день/ночь: двенадцатая хора кончается ровно на закате
	assert.True(t, p.Horas[11].End.Equal(p.Sunset), "hora 12 must end at sunset")
	assert.True(t, p.Horas[12].Start.Equal(p.Sunset))

	// хоры смежные и следуют циклу из семи владык
	for i := 1; i < 24; i++ {
		assert.True(t, p.Horas[i].Start.Equal(p.Horas[i-1].End), "hora %d", i)
		assert.NotEqual(t, p.Horas[i].Lord, p.Horas[i-1].Lord)
	}

	// последняя ночная хора понедельника принадлежит Юпитеру, а 25-я,
	// на следующем восходе, досталась бы Марсу - владыке вторника
	assert.Equal(t, domain.Jupiter, p.Horas[23].Lord)
}

func TestBuild_SunriseInLocalZone(t *testing.T) {
	svc := New()
	loc := time.FixedZone("IST", int(5.5*3600))

	p, err := svc.Build(time.Date(2026, 8, 23, 0, 30, 0, 0, loc), 28.6139, 77.2090, loc, 0, 0)
	require.NoError(t, err)

	assert.Equal(t, loc.String(), p.Timezone)
	assert.Equal(t, 23, p.Sunrise.Day())
	assert.True(t, p.Sunset.After(p.Sunrise))
	assert.True(t, p.RahuKaal.Start.After(p.Sunrise) || p.RahuKaal.Start.Equal(p.Sunrise))
	assert.True(t, p.RahuKaal.End.Before(p.Sunset) || p.RahuKaal.End.Equal(p.Sunset))
}
