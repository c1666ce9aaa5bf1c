package domain

import (
	"time"

	"github.com/google/uuid"
)

// Dignity достоинство грахи в знаке
type Dignity string

const (
	DignityExalted      Dignity = "exalted"
	DignityMoolatrikona Dignity = "moolatrikona"
	DignityOwnSign      Dignity = "own_sign"
	DignityFriendly     Dignity = "friendly"
	DignityNeutral      Dignity = "neutral"
	DignityEnemy        Dignity = "enemy"
	DignityDebilitated  Dignity = "debilitated"
)

// PlanetPosition сидерическое положение грахи в натальной карте.
// Вычисляется один раз для пары (BirthDetails, CalculationSettings) и не изменяется.
type PlanetPosition struct {
	Planet      Planet  `json:"planet"`
	Longitude   float64 `json:"longitude"` // сидерическая долгота, [0, 360)
	Sign        Sign    `json:"sign"`
	Degree      float64 `json:"degree"` // градус внутри знака, [0, 30)
	House       int     `json:"house"`  // 1..12
	Nakshatra   int     `json:"nakshatra"` // 1..27
	Pada        int     `json:"pada"`      // 1..4
	Retrograde  bool    `json:"retrograde"`
	DailyMotion float64 `json:"daily_motion"` // градусов в сутки, отрицательное при ретроградности
	Dignity     Dignity `json:"dignity"`
}

// AscendantPosition положение асцендента: та же форма, что и у грахи,
// но без номера дома - асцендент сам определяет первый дом
type AscendantPosition struct {
	Longitude float64 `json:"longitude"`
	Sign      Sign    `json:"sign"`
	Degree    float64 `json:"degree"`
	Nakshatra int     `json:"nakshatra"`
	Pada      int     `json:"pada"`
}

// KundliData полный результат расчёта натальной карты.
// Все поля производные и пересчитываемые; источником истины являются только BirthDetails и Settings.
type KundliData struct {
	ID           uuid.UUID             `json:"id"`
	Birth        BirthDetails          `json:"birth"`
	Settings     CalculationSettings   `json:"settings"`
	Ascendant    AscendantPosition     `json:"ascendant"`
	Positions    []PlanetPosition      `json:"positions"`   // порядок фиксирован: Sun..Ketu
	HouseCusps   [12]float64           `json:"house_cusps"` // сидерические долготы куспидов, индекс 0 = первый дом
	Vargas       []DivisionalChartData `json:"vargas"`
	Dashas       DashaSet              `json:"dashas"`
	Yogas        []Yoga                `json:"yogas"`
	Doshas       []Dosha               `json:"doshas"`
	Ashtakavarga AshtakavargaData      `json:"ashtakavarga"`
	Shadbala     []ShadbalaScore       `json:"shadbala"`
	GeneratedAt  time.Time             `json:"generated_at"`
}

// Position возвращает позицию грахи из фиксированного набора
func (k *KundliData) Position(p Planet) *PlanetPosition {
	for i := range k.Positions {
		if k.Positions[i].Planet == p {
			return &k.Positions[i]
		}
	}
	return nil
}
