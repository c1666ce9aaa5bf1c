package panchang

import (
	"time"

	"github.com/admin/astro-services/kundli-api/internal/domain"
)

// Интервалы дня: световой день делится на восемь равных сегментов, номер
// сегмента для каждого вида каала фиксирован днём недели. Планетные часы (хоры)
// идут от восхода: двенадцать дневных и двенадцать ночных.

// порядковый номер сегмента (1..8) по дню недели
var rahuKaalOrdinal = map[time.Weekday]int{
	time.Sunday: 8, time.Monday: 2, time.Tuesday: 7, time.Wednesday: 5,
	time.Thursday: 6, time.Friday: 4, time.Saturday: 3,
}

var yamagandaOrdinal = map[time.Weekday]int{
	time.Sunday: 5, time.Monday: 4, time.Tuesday: 3, time.Wednesday: 2,
	time.Thursday: 1, time.Friday: 7, time.Saturday: 6,
}

var gulikaOrdinal = map[time.Weekday]int{
	time.Sunday: 7, time.Monday: 6, time.Tuesday: 5, time.Wednesday: 4,
	time.Thursday: 3, time.Friday: 2, time.Saturday: 1,
}

// последовательность владык хор в порядке убывания скорости небесных сфер
var horaSequence = []domain.Planet{
	domain.Sun, domain.Venus, domain.Mercury, domain.Moon,
	domain.Saturn, domain.Jupiter, domain.Mars,
}

// kaalSegment границы сегмента ordinal (1..8) светового дня
func kaalSegment(sunrise, sunset time.Time, ordinal int) domain.KaalInterval {
	segment := sunset.Sub(sunrise) / 8
	start := sunrise.Add(time.Duration(ordinal-1) * segment)
	return domain.KaalInterval{
		Start: start,
		End:   start.Add(segment),
	}
}

// Horas 24 планетных часа: дневные от восхода до заката, ночные до следующего
// восхода. Первая хора принадлежит владыке дня недели.
func Horas(sunrise, sunset, nextSunrise time.Time, weekdayLord domain.Planet) []domain.HoraInterval {
	start := 0
	for i, p := range horaSequence {
		if p == weekdayLord {
			start = i
			break
		}
	}

	daySpan := sunset.Sub(sunrise) / 12
	nightSpan := nextSunrise.Sub(sunset) / 12

	horas := make([]domain.HoraInterval, 0, 24)
	for i := 0; i < 24; i++ {
		var from, to time.Time
		if i < 12 {
			from = sunrise.Add(time.Duration(i) * daySpan)
			to = sunrise.Add(time.Duration(i+1) * daySpan)
			// деление длительности округляет, последняя дневная хора смыкается с закатом
			if i == 11 {
				to = sunset
			}
		} else {
			from = sunset.Add(time.Duration(i-12) * nightSpan)
			to = sunset.Add(time.Duration(i-11) * nightSpan)
			// последняя ночная хора смыкается со следующим восходом
			if i == 23 {
				to = nextSunrise
			}
		}

		horas = append(horas, domain.HoraInterval{
			Lord:  horaSequence[(start+i)%len(horaSequence)],
			Start: from,
			End:   to,
		})
	}
	return horas
}
