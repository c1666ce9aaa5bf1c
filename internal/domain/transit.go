package domain

import "time"

// AspectType тип аспекта между транзитной и натальной грахой
type AspectType string

const (
	AspectConjunction AspectType = "conjunction" // 0°
	AspectSextile     AspectType = "sextile"     // 60°
	AspectSquare      AspectType = "square"      // 90°
	AspectTrine       AspectType = "trine"       // 120°
	AspectOpposition  AspectType = "opposition"  // 180°
	AspectSpecial     AspectType = "special"     // особые аспекты Марса/Юпитера/Сатурна
)

// TransitAspect активный аспект транзитной грахи к натальной
type TransitAspect struct {
	Transiting Planet       `json:"transiting"`
	Natal      Planet       `json:"natal"`
	Type       AspectType   `json:"type"`
	Angle      float64      `json:"angle"` // точный угол аспекта
	Orb        float64      `json:"orb"`   // отклонение от точного угла
	Applying   bool         `json:"applying"`
	Strength   YogaStrength `json:"strength"`
}

// SadeSatiPhase фаза Саде Сати по положению транзитного Сатурна от натальной Луны
type SadeSatiPhase string

const (
	SadeSatiRising  SadeSatiPhase = "rising"  // Сатурн в 12-м знаке от Луны
	SadeSatiPeak    SadeSatiPhase = "peak"    // Сатурн в знаке Луны
	SadeSatiSetting SadeSatiPhase = "setting" // Сатурн во 2-м знаке от Луны
)

// TransitData текущие позиции на натальной сетке домов и активные аспекты
type TransitData struct {
	Timestamp time.Time        `json:"timestamp"`
	Positions []PlanetPosition `json:"positions"` // дома считаются от натального асцендента
	Aspects   []TransitAspect  `json:"aspects"`
	SadeSati  *SadeSatiPhase   `json:"sade_sati,omitempty"` // nil, если фаза не активна
}
