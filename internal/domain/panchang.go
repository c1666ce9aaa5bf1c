package domain

import "time"

// TithiInfo титхи: номер 1..30, имя и доля завершённости
type TithiInfo struct {
	Number     int     `json:"number"`
	Name       string  `json:"name"`
	Paksha     string  `json:"paksha"` // Shukla (растущая) или Krishna (убывающая)
	Completion float64 `json:"completion"` // [0, 1)
}

// NakshatraInfo накшатра Луны на момент расчёта
type NakshatraInfo struct {
	Number     int     `json:"number"` // 1..27
	Name       string  `json:"name"`
	Pada       int     `json:"pada"` // 1..4
	Completion float64 `json:"completion"`
}

// YogaInfo нитья-йога (деление суммы долгот Солнца и Луны)
type YogaInfo struct {
	Number     int     `json:"number"` // 1..27
	Name       string  `json:"name"`
	Completion float64 `json:"completion"`
}

// KaranaInfo карана (половина титхи)
type KaranaInfo struct {
	Number int    `json:"number"` // 1..60
	Name   string `json:"name"`
}

// KaalInterval неблагоприятный интервал дня (Раху Каал и подобные)
type KaalInterval struct {
	Start time.Time `json:"start"`
	End   time.Time `json:"end"`
}

// HoraInterval планетный час
type HoraInterval struct {
	Lord  Planet    `json:"lord"`
	Start time.Time `json:"start"`
	End   time.Time `json:"end"`
}

// Panchang ведический альманах на дату и место
type Panchang struct {
	Date         time.Time      `json:"date"` // локальная календарная дата
	Latitude     float64        `json:"latitude"`
	Longitude    float64        `json:"longitude"`
	Timezone     string         `json:"timezone"`
	Tithi        TithiInfo      `json:"tithi"`
	Nakshatra    NakshatraInfo  `json:"nakshatra"`
	Yoga         YogaInfo       `json:"yoga"`
	Karana       KaranaInfo     `json:"karana"`
	Sunrise      time.Time      `json:"sunrise"`
	Sunset       time.Time      `json:"sunset"`
	RahuKaal     KaalInterval   `json:"rahu_kaal"`
	Yamaganda    KaalInterval   `json:"yamaganda"`
	GulikaKaal   KaalInterval   `json:"gulika_kaal"`
	Horas        []HoraInterval `json:"horas"` // 24 планетных часа от восхода
	MoonPhase    string         `json:"moon_phase"`
	WeekdayLord  Planet         `json:"weekday_lord"`
}
