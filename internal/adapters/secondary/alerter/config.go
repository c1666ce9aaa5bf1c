package alerter

type Config struct {
	WebhookURL     string `envconfig:"WEBHOOK_URL"`
	TimeoutSeconds int    `envconfig:"TIMEOUT" default:"10"`
}
