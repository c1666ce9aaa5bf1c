package domain

// YogaNature природа конфигурации
type YogaNature string

const (
	NatureBenefic YogaNature = "benefic"
	NatureMalefic YogaNature = "malefic"
	NatureNeutral YogaNature = "neutral"
)

// YogaStrength сила/выраженность конфигурации
type YogaStrength string

const (
	StrengthWeak     YogaStrength = "weak"
	StrengthModerate YogaStrength = "moderate"
	StrengthStrong   YogaStrength = "strong"
)

// Yoga обнаруженная благоприятная конфигурация. Производный список, никогда не
// хранится как источник истины.
type Yoga struct {
	Name        string       `json:"name"`
	Sanskrit    string       `json:"sanskrit"`
	Nature      YogaNature   `json:"nature"`
	Strength    YogaStrength `json:"strength"`
	Description string       `json:"description"`
}

// Dosha обнаруженная неблагоприятная конфигурация с учётом правил отмены
type Dosha struct {
	Name         string       `json:"name"`
	Sanskrit     string       `json:"sanskrit"`
	Severity     YogaStrength `json:"severity"`
	Cancelled    bool         `json:"cancelled"`
	CancelReason string       `json:"cancel_reason,omitempty"`
	Description  string       `json:"description"`
}
