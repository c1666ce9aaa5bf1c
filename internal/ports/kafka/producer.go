package kafka

import (
	"context"

	"github.com/google/uuid"
)

// IKafkaProducer интерфейс для отправки сообщений в Kafka
type IKafkaProducer interface {
	// SendReportRequest отправляет карту в воркер интерпретации (LLM/RAG)
	SendReportRequest(ctx context.Context, requestID uuid.UUID, prompt string, chart []byte) error
	// Send отправляет произвольное сообщение
	Send(ctx context.Context, key string, value []byte) error
	// Close закрывает producer
	Close() error
}
