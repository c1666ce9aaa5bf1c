package alerter

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"
)

// Client отправляет алерты в webhook (Slack/Mattermost-совместимый формат)
type Client struct {
	webhookURL string
	httpClient *http.Client
	log        *slog.Logger
}

func NewClient(cfg *Config, log *slog.Logger) *Client {
	return &Client{
		webhookURL: cfg.WebhookURL,
		httpClient: &http.Client{
			Timeout: time.Duration(cfg.TimeoutSeconds) * time.Second,
		},
		log: log,
	}
}

// SendAlert отправляет текстовое сообщение дежурным
func (c *Client) SendAlert(ctx context.Context, message string) error {
	payload, err := json.Marshal(map[string]string{"text": message})
	if err != nil {
		return fmt.Errorf("marshal alert payload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.webhookURL, bytes.NewReader(payload))
	if err != nil {
		return fmt.Errorf("create alert request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("send alert: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= http.StatusBadRequest {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return fmt.Errorf("alert webhook returned %d: %s", resp.StatusCode, string(body))
	}

	c.log.Debug("alert sent", "status", resp.StatusCode)
	return nil
}
