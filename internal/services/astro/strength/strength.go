package strength

// Оценка силы грах: Аштакаварга (бинду по знакам) и Шадбала (шесть компонент
// в вирупах). Обе метрики чистые функции от готовой карты.

type Service struct{}

func New() *Service {
	return &Service{}
}

// normalize приводит угол к [0, 360)
func normalize(deg float64) float64 {
	deg -= 360 * float64(int(deg/360))
	if deg < 0 {
		deg += 360
	}
	return deg
}

// arcDistance кратчайшая дуга между двумя долготами, 0..180
func arcDistance(a, b float64) float64 {
	d := normalize(a - b)
	if d > 180 {
		d = 360 - d
	}
	return d
}
