package domain

// Planet идентификатор небесного тела в ведической системе
type Planet int

const (
	Sun Planet = iota
	Moon
	Mars
	Mercury
	Jupiter
	Venus
	Saturn
	Rahu
	Ketu
)

// ClassicalPlanets семь классических грах (без узлов), используются в Аштакаварге и Шадбале
var ClassicalPlanets = []Planet{Sun, Moon, Mars, Mercury, Jupiter, Venus, Saturn}

// AllPlanets все девять грах натальной карты
var AllPlanets = []Planet{Sun, Moon, Mars, Mercury, Jupiter, Venus, Saturn, Rahu, Ketu}

var planetNames = [...]string{"Sun", "Moon", "Mars", "Mercury", "Jupiter", "Venus", "Saturn", "Rahu", "Ketu"}

var planetSanskritNames = [...]string{"Surya", "Chandra", "Mangal", "Budha", "Guru", "Shukra", "Shani", "Rahu", "Ketu"}

func (p Planet) String() string {
	if p < Sun || p > Ketu {
		return "Unknown"
	}
	return planetNames[p]
}

// Sanskrit возвращает санскритское имя грахи
func (p Planet) Sanskrit() string {
	if p < Sun || p > Ketu {
		return "Unknown"
	}
	return planetSanskritNames[p]
}

// IsNode true для лунных узлов (Раху/Кету)
func (p Planet) IsNode() bool {
	return p == Rahu || p == Ketu
}

// IsNaturalBenefic естественный благодетель (Луна и Меркурий считаются благодетелями безусловно,
// уточнение по фазе Луны и соседству Меркурия здесь не применяется)
func (p Planet) IsNaturalBenefic() bool {
	switch p {
	case Moon, Mercury, Jupiter, Venus:
		return true
	}
	return false
}

// Sign индекс знака зодиака, 0 = Овен ... 11 = Рыбы
type Sign int

const (
	Aries Sign = iota
	Taurus
	Gemini
	Cancer
	Leo
	Virgo
	Libra
	Scorpio
	Sagittarius
	Capricorn
	Aquarius
	Pisces
)

var signNames = [...]string{
	"Aries", "Taurus", "Gemini", "Cancer", "Leo", "Virgo",
	"Libra", "Scorpio", "Sagittarius", "Capricorn", "Aquarius", "Pisces",
}

func (s Sign) String() string {
	if s < Aries || s > Pisces {
		return "Unknown"
	}
	return signNames[s]
}

// Modality характер знака: подвижный/фиксированный/двойственный
type Modality int

const (
	Movable Modality = iota
	Fixed
	Dual
)

// Modality возвращает характер знака (Овен подвижный, Телец фиксированный, Близнецы двойственные и далее по циклу)
func (s Sign) Modality() Modality {
	return Modality(int(s) % 3)
}

// IsOdd нечётный (мужской) знак: Овен, Близнецы, Лев...
func (s Sign) IsOdd() bool {
	return int(s)%2 == 0
}

// Lord управитель знака
func (s Sign) Lord() Planet {
	return signLords[s]
}

var signLords = [...]Planet{
	Mars, Venus, Mercury, Moon, Sun, Mercury,
	Venus, Mars, Jupiter, Saturn, Saturn, Jupiter,
}

// NormalizeSign приводит произвольный индекс знака в диапазон [0, 11]
func NormalizeSign(i int) Sign {
	return Sign(((i % 12) + 12) % 12)
}

// NakshatraCount число накшатр, NakshatraSpan ширина одной накшатры в градусах
const (
	NakshatraCount = 27
	NakshatraSpan  = 360.0 / NakshatraCount
)

// NakshatraNames имена 27 накшатр, индекс 0 = Ашвини
var NakshatraNames = [...]string{
	"Ashwini", "Bharani", "Krittika", "Rohini", "Mrigashira", "Ardra",
	"Punarvasu", "Pushya", "Ashlesha", "Magha", "Purva Phalguni", "Uttara Phalguni",
	"Hasta", "Chitra", "Swati", "Vishakha", "Anuradha", "Jyeshtha",
	"Mula", "Purva Ashadha", "Uttara Ashadha", "Shravana", "Dhanishta", "Shatabhisha",
	"Purva Bhadrapada", "Uttara Bhadrapada", "Revati",
}
