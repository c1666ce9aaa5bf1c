package domain

// SignStrength классификация силы знака по Сарваштакаварге
type SignStrength string

const (
	SignWeak    SignStrength = "weak"    // < 25 бинду
	SignAverage SignStrength = "average" // 25..30 бинду
	SignStrong  SignStrength = "strong"  // > 30 бинду
)

// BhinnaRow строка Бхиннаштакаварги: бинду одной грахи по 12 знакам, значения 0..8
type BhinnaRow struct {
	Planet Planet  `json:"planet"`
	Bindus [12]int `json:"bindus"`
}

// AshtakavargaData матрица бинду 7 грах × 12 знаков и агрегированные суммы
type AshtakavargaData struct {
	Bhinna        []BhinnaRow      `json:"bhinna"` // порядок фиксирован: Sun..Saturn
	Sarva         [12]int          `json:"sarva"`  // сумма по грахам в каждом знаке
	SignStrengths [12]SignStrength `json:"sign_strengths"`
}

// BhinnaFor возвращает строку бинду указанной грахи
func (a *AshtakavargaData) BhinnaFor(p Planet) *BhinnaRow {
	for i := range a.Bhinna {
		if a.Bhinna[i].Planet == p {
			return &a.Bhinna[i]
		}
	}
	return nil
}

// ShadbalaScore шестикомпонентная сила грахи в вирупах
type ShadbalaScore struct {
	Planet     Planet  `json:"planet"`
	Sthana     float64 `json:"sthana"`     // позиционная
	Dig        float64 `json:"dig"`        // направленная
	Kala       float64 `json:"kala"`       // временная
	Cheshta    float64 `json:"cheshta"`    // двигательная
	Naisargika float64 `json:"naisargika"` // естественная
	Drik       float64 `json:"drik"`       // аспектная, может быть отрицательной
	Total      float64 `json:"total"`
	Rupas      float64 `json:"rupas"` // Total / 60
	Ratio      float64 `json:"ratio"` // отношение к минимально требуемой силе
}
