package panchang

import (
	"fmt"
	"time"

	"github.com/admin/astro-services/kundli-api/internal/domain"
)

// Панчанг: пять элементов альманаха из сидерических долгот Солнца и Луны,
// восход и закат по солнечной высоте, неблагоприятные интервалы дня и
// планетные часы от восхода.

const (
	tithiSpan  = 12.0       // дуга элонгации на одну титхи
	karanaSpan = 6.0        // половина титхи
	yogaSpan   = 360.0 / 27 // дуга нитья-йоги
)

var tithiNames = []string{
	"Pratipada", "Dwitiya", "Tritiya", "Chaturthi", "Panchami",
	"Shashthi", "Saptami", "Ashtami", "Navami", "Dashami",
	"Ekadashi", "Dwadashi", "Trayodashi", "Chaturdashi",
}

var yogaNames = []string{
	"Vishkambha", "Priti", "Ayushman", "Saubhagya", "Shobhana",
	"Atiganda", "Sukarma", "Dhriti", "Shula", "Ganda",
	"Vriddhi", "Dhruva", "Vyaghata", "Harshana", "Vajra",
	"Siddhi", "Vyatipata", "Variyan", "Parigha", "Shiva",
	"Siddha", "Sadhya", "Shubha", "Shukla", "Brahma",
	"Indra", "Vaidhriti",
}

// подвижные караны циклом восемь раз занимают номера 2..57
var movableKaranas = []string{
	"Bava", "Balava", "Kaulava", "Taitila", "Gara", "Vanija", "Vishti",
}

var weekdayLords = map[time.Weekday]domain.Planet{
	time.Sunday:    domain.Sun,
	time.Monday:    domain.Moon,
	time.Tuesday:   domain.Mars,
	time.Wednesday: domain.Mercury,
	time.Thursday:  domain.Jupiter,
	time.Friday:    domain.Venus,
	time.Saturday:  domain.Saturn,
}

type Service struct{}

func New() *Service {
	return &Service{}
}

// Build собирает панчанг на локальную дату. Долготы Солнца и Луны сидерические,
// на момент восхода либо иной выбранный вызывающим момент дня.
func (s *Service) Build(date time.Time, latitude, longitude float64, loc *time.Location, sunLon, moonLon float64) (*domain.Panchang, error) {
	local := date.In(loc)
	day := time.Date(local.Year(), local.Month(), local.Day(), 0, 0, 0, 0, loc)

	sunrise, sunset, err := SunriseSunset(day, latitude, longitude)
	if err != nil {
		return nil, fmt.Errorf("solar events for %s: %w", day.Format("2006-01-02"), err)
	}
	nextSunrise, _, err := SunriseSunset(day.AddDate(0, 0, 1), latitude, longitude)
	if err != nil {
		return nil, fmt.Errorf("next day solar events: %w", err)
	}

	lord := weekdayLords[day.Weekday()]

	p := &domain.Panchang{
		Date:        day,
		Latitude:    latitude,
		Longitude:   longitude,
		Timezone:    loc.String(),
		Tithi:       Tithi(sunLon, moonLon),
		Nakshatra:   Nakshatra(moonLon),
		Yoga:        NityaYoga(sunLon, moonLon),
		Karana:      Karana(sunLon, moonLon),
		Sunrise:     sunrise.In(loc),
		Sunset:      sunset.In(loc),
		RahuKaal:    kaalSegment(sunrise, sunset, rahuKaalOrdinal[day.Weekday()]),
		Yamaganda:   kaalSegment(sunrise, sunset, yamagandaOrdinal[day.Weekday()]),
		GulikaKaal:  kaalSegment(sunrise, sunset, gulikaOrdinal[day.Weekday()]),
		Horas:       Horas(sunrise, sunset, nextSunrise, lord),
		MoonPhase:   moonPhase(sunLon, moonLon),
		WeekdayLord: lord,
	}
	return p, nil
}

// Tithi номер, пакша и завершённость титхи по элонгации Луны
func Tithi(sunLon, moonLon float64) domain.TithiInfo {
	elongation := normalize(moonLon - sunLon)
	number := int(elongation/tithiSpan) + 1 // 1..30

	info := domain.TithiInfo{
		Number:     number,
		Completion: elongation/tithiSpan - float64(number-1),
	}

	if number <= 15 {
		info.Paksha = "Shukla"
	} else {
		info.Paksha = "Krishna"
	}

	switch {
	case number == 15:
		info.Name = "Purnima"
	case number == 30:
		info.Name = "Amavasya"
	case number <= 15:
		info.Name = tithiNames[number-1]
	default:
		info.Name = tithiNames[number-16]
	}
	return info
}

// Nakshatra лунная накшатра с падой
func Nakshatra(moonLon float64) domain.NakshatraInfo {
	lon := normalize(moonLon)
	idx := int(lon / domain.NakshatraSpan)
	if idx >= domain.NakshatraCount {
		idx = domain.NakshatraCount - 1
	}
	within := lon - float64(idx)*domain.NakshatraSpan

	return domain.NakshatraInfo{
		Number:     idx + 1,
		Name:       domain.NakshatraNames[idx],
		Pada:       int(within/(domain.NakshatraSpan/4)) + 1,
		Completion: within / domain.NakshatraSpan,
	}
}

// NityaYoga деление суммы долгот светил
func NityaYoga(sunLon, moonLon float64) domain.YogaInfo {
	sum := normalize(sunLon + moonLon)
	idx := int(sum / yogaSpan)
	if idx >= len(yogaNames) {
		idx = len(yogaNames) - 1
	}

	return domain.YogaInfo{
		Number:     idx + 1,
		Name:       yogaNames[idx],
		Completion: sum/yogaSpan - float64(idx),
	}
}

// Karana половина титхи: номер 1 и 58..60 фиксированные, остальные идут
// циклом из семи подвижных
func Karana(sunLon, moonLon float64) domain.KaranaInfo {
	elongation := normalize(moonLon - sunLon)
	number := int(elongation/karanaSpan) + 1 // 1..60

	info := domain.KaranaInfo{Number: number}
	switch number {
	case 1:
		info.Name = "Kimstughna"
	case 58:
		info.Name = "Shakuni"
	case 59:
		info.Name = "Chatushpada"
	case 60:
		info.Name = "Naga"
	default:
		info.Name = movableKaranas[(number-2)%7]
	}
	return info
}

// moonPhase фаза по номеру титхи: Пурнима и Амавасья выделены отдельно
func moonPhase(sunLon, moonLon float64) string {
	switch number := Tithi(sunLon, moonLon).Number; {
	case number == 15:
		return "full_moon"
	case number == 30:
		return "new_moon"
	case number < 15:
		return "waxing"
	}
	return "waning"
}

func normalize(deg float64) float64 {
	deg -= 360 * float64(int(deg/360))
	if deg < 0 {
		deg += 360
	}
	return deg
}
