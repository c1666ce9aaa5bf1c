package kundli

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/admin/astro-services/kundli-api/internal/domain"
)

// reportPayload сообщение для воркера интерпретации
type reportPayload struct {
	RequestID uuid.UUID          `json:"request_id"`
	Prompt    string             `json:"prompt"`
	Context   string             `json:"context"` // карта, развёрнутая в текст для LLM
	Chart     *domain.KundliData `json:"chart"`
}

// RequestReport отправляет карту в воркер интерпретации и сохраняет снимок в S3.
// Возвращает идентификатор запроса, по которому воркер пометит готовый отчёт.
func (s *Service) RequestReport(ctx context.Context, chartID uuid.UUID, prompt string) (uuid.UUID, error) {
	if s.Producer == nil {
		return uuid.Nil, domain.WrapBusinessError(fmt.Errorf("report pipeline is not configured"))
	}

	kundli, err := s.GetByID(ctx, chartID)
	if err != nil {
		return uuid.Nil, err
	}

	requestID := uuid.New()
	payload, err := json.Marshal(reportPayload{
		RequestID: requestID,
		Prompt:    prompt,
		Context:   flattenChartContext(kundli),
		Chart:     kundli,
	})
	if err != nil {
		return uuid.Nil, fmt.Errorf("marshal report payload for chart %s: %w", chartID, err)
	}

	if err := s.Producer.SendReportRequest(ctx, requestID, prompt, payload); err != nil {
		return uuid.Nil, err
	}

	// Снимок в S3 нужен воркеру и для разбора инцидентов, его отсутствие не фатально
	if s.S3 != nil {
		path := fmt.Sprintf("charts/%s.json", chartID)
		if err := s.S3.PutFile(ctx, path, payload, "application/json"); err != nil {
			s.Log.Warn("failed to store chart snapshot", "chart_id", chartID, "error", err)
		}
	}

	s.Log.Info("report requested", "chart_id", chartID, "request_id", requestID)
	return requestID, nil
}

// flattenChartContext разворачивает карту в плоский текст для промпта воркера
func flattenChartContext(k *domain.KundliData) string {
	var b strings.Builder

	fmt.Fprintf(&b, "Birth: %s, %s, lat %.4f lon %.4f (%s)\n",
		k.Birth.Name, k.Birth.BirthDate.Format("2006-01-02 15:04"),
		k.Birth.Latitude, k.Birth.Longitude, k.Birth.Timezone)
	fmt.Fprintf(&b, "Ascendant: %s %.2f deg, nakshatra %d pada %d\n",
		k.Ascendant.Sign, k.Ascendant.Degree, k.Ascendant.Nakshatra, k.Ascendant.Pada)

	b.WriteString("Positions:\n")
	for _, p := range k.Positions {
		retro := ""
		if p.Retrograde {
			retro = " retrograde"
		}
		fmt.Fprintf(&b, "  %s: %s %.2f deg, house %d, nakshatra %d pada %d, %s%s\n",
			p.Planet, p.Sign, p.Degree, p.House, p.Nakshatra, p.Pada, p.Dignity, retro)
	}

	if len(k.Dashas.Vimshottari) > 0 {
		b.WriteString("Vimshottari maha dashas:\n")
		for _, d := range k.Dashas.Vimshottari {
			fmt.Fprintf(&b, "  %s: %s to %s\n",
				d.Lord, d.Start.Format("2006-01-02"), d.End.Format("2006-01-02"))
		}
	}

	if len(k.Yogas) > 0 {
		b.WriteString("Yogas:\n")
		for _, y := range k.Yogas {
			fmt.Fprintf(&b, "  %s (%s)\n", y.Name, y.Strength)
		}
	}
	for _, d := range k.Doshas {
		status := "active"
		if d.Cancelled {
			status = "cancelled"
		}
		fmt.Fprintf(&b, "Dosha: %s (%s, %s)\n", d.Name, d.Severity, status)
	}

	return b.String()
}
