package domain

import "time"

// DashaSystem система планетных периодов
type DashaSystem string

const (
	DashaVimshottari DashaSystem = "vimshottari"
	DashaYogini      DashaSystem = "yogini"
	DashaAshtottari  DashaSystem = "ashtottari"
	DashaChara       DashaSystem = "chara"
)

// DashaLevel уровень вложенности периода
type DashaLevel int

const (
	LevelMaha DashaLevel = iota + 1
	LevelAntar
	LevelPratyantar
	LevelSookshma
	LevelPrana
)

var dashaLevelNames = [...]string{"", "Maha", "Antar", "Pratyantar", "Sookshma", "Prana"}

func (l DashaLevel) String() string {
	if l < LevelMaha || l > LevelPrana {
		return "Unknown"
	}
	return dashaLevelNames[l]
}

// DashaPeriod период правления. Инвариант системы: периоды одного уровня строго
// упорядочены, конец периода k точно равен началу периода k+1, суммарная длительность
// верхнего уровня равна полному циклу системы.
type DashaPeriod struct {
	Lord       Planet        `json:"lord"`
	Sign       *Sign         `json:"sign,omitempty"` // только для знаковых систем (Чара)
	Level      DashaLevel    `json:"level"`
	Start      time.Time     `json:"start"`
	End        time.Time     `json:"end"`
	SubPeriods []DashaPeriod `json:"sub_periods,omitempty"`
}

// ActiveAt true, если момент попадает в период: [Start, End)
func (p *DashaPeriod) ActiveAt(t time.Time) bool {
	return !t.Before(p.Start) && t.Before(p.End)
}

// DashaSet все четыре системы периодов одной карты
type DashaSet struct {
	Vimshottari []DashaPeriod `json:"vimshottari"`
	Yogini      []DashaPeriod `json:"yogini"`
	Ashtottari  []DashaPeriod `json:"ashtottari"`
	Chara       []DashaPeriod `json:"chara"`
}
