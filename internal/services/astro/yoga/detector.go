package yoga

import (
	"log/slog"

	"github.com/admin/astro-services/kundli-api/internal/domain"
)

// Детектор йог и дош: фиксированный каталог декларативных правил, каждое -
// чистая функция над готовой картой. Правила независимы и нечувствительны к
// порядку; паника или ошибка одного правила изолируется, логируется и
// трактуется как отсутствие обнаружения, не прерывая остальные.

// Chart входные данные детектора: разрешённые позиции и асцендент одной карты
type Chart struct {
	Ascendant domain.AscendantPosition
	Positions []domain.PlanetPosition
}

// Position позиция грахи или nil, если её нет в наборе
func (c *Chart) Position(p domain.Planet) *domain.PlanetPosition {
	for i := range c.Positions {
		if c.Positions[i].Planet == p {
			return &c.Positions[i]
		}
	}
	return nil
}

// HouseFromAscendant дом знака при счёте целыми знаками от асцендента, 1..12
func (c *Chart) HouseFromAscendant(sign domain.Sign) int {
	return 1 + ((int(sign)-int(c.Ascendant.Sign))%12+12)%12
}

// SignDistance счёт домов от знака a до знака b включительно, 1..12
func SignDistance(a, b domain.Sign) int {
	return 1 + ((int(b)-int(a))%12+12)%12
}

// yogaRule дескриптор правила йоги
type yogaRule struct {
	Name     string
	Evaluate func(c *Chart) *domain.Yoga
}

// doshaRule дескриптор правила доши
type doshaRule struct {
	Name     string
	Evaluate func(c *Chart) *domain.Dosha
}

// Service выполняет каталог правил над картой
type Service struct {
	log *slog.Logger
}

func New(log *slog.Logger) *Service {
	return &Service{log: log}
}

// DetectYogas прогоняет каталог йог; порядок результата следует порядку каталога
func (s *Service) DetectYogas(chart *Chart) []domain.Yoga {
	yogas := make([]domain.Yoga, 0)
	for _, rule := range yogaCatalog {
		if detected := s.safeYoga(rule, chart); detected != nil {
			yogas = append(yogas, *detected)
		}
	}
	return yogas
}

// DetectDoshas прогоняет каталог дош
func (s *Service) DetectDoshas(chart *Chart) []domain.Dosha {
	doshas := make([]domain.Dosha, 0)
	for _, rule := range doshaCatalog {
		if detected := s.safeDosha(rule, chart); detected != nil {
			doshas = append(doshas, *detected)
		}
	}
	return doshas
}

// safeYoga изолирует панику правила: ошибка одного детектора не валит генерацию карты
func (s *Service) safeYoga(rule yogaRule, chart *Chart) (result *domain.Yoga) {
	defer func() {
		if r := recover(); r != nil {
			s.log.Error("yoga rule panicked, treated as no detection",
				"rule", rule.Name,
				"panic", r,
			)
			result = nil
		}
	}()
	return rule.Evaluate(chart)
}

func (s *Service) safeDosha(rule doshaRule, chart *Chart) (result *domain.Dosha) {
	defer func() {
		if r := recover(); r != nil {
			s.log.Error("dosha rule panicked, treated as no detection",
				"rule", rule.Name,
				"panic", r,
			)
			result = nil
		}
	}()
	return rule.Evaluate(chart)
}
