package domain

// VargaType тип дробной (варга) карты
type VargaType string

const (
	VargaD1  VargaType = "D1"
	VargaD2  VargaType = "D2"
	VargaD3  VargaType = "D3"
	VargaD4  VargaType = "D4"
	VargaD7  VargaType = "D7"
	VargaD9  VargaType = "D9"
	VargaD10 VargaType = "D10"
	VargaD12 VargaType = "D12"
	VargaD16 VargaType = "D16"
	VargaD20 VargaType = "D20"
	VargaD24 VargaType = "D24"
	VargaD27 VargaType = "D27"
	VargaD30 VargaType = "D30"
	VargaD40 VargaType = "D40"
	VargaD45 VargaType = "D45"
	VargaD60 VargaType = "D60"
)

// AllVargas шестнадцать классических варг в каноническом порядке
var AllVargas = []VargaType{
	VargaD1, VargaD2, VargaD3, VargaD4, VargaD7, VargaD9, VargaD10, VargaD12,
	VargaD16, VargaD20, VargaD24, VargaD27, VargaD30, VargaD40, VargaD45, VargaD60,
}

// VargaPlacement положение одного тела в дробной карте
type VargaPlacement struct {
	Planet Planet `json:"planet"`
	Sign   Sign   `json:"sign"`
}

// DivisionalChartData дробная карта: упорядоченный список (граха → знак).
// Асцендент включается отдельным полем, а не в список грах.
type DivisionalChartData struct {
	Type          VargaType        `json:"type"`
	AscendantSign Sign             `json:"ascendant_sign"`
	Placements    []VargaPlacement `json:"placements"` // порядок фиксирован: Sun..Ketu
}
