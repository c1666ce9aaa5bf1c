package kafka

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/IBM/sarama"
	"github.com/google/uuid"
)

const actionKundliReport = "kundli_report"

// Producer отправляет сообщения в один topic
type Producer struct {
	producer sarama.SyncProducer
	topic    string
	log      *slog.Logger
}

// NewProducer создает синхронный kafka producer с подтверждением от всех реплик
func NewProducer(cfg *Config, log *slog.Logger) (*Producer, error) {
	saramaConfig := sarama.NewConfig()
	saramaConfig.Producer.Return.Successes = true
	saramaConfig.Producer.RequiredAcks = sarama.WaitForAll
	saramaConfig.Producer.Retry.Max = 5

	if cfg.SecurityProtocol == "SASL_SSL" || cfg.SecurityProtocol == "SASL_PLAINTEXT" {
		saramaConfig.Net.SASL.Enable = true
		saramaConfig.Net.SASL.Mechanism = sarama.SASLTypePlaintext
		if cfg.SASLMechanism == "SCRAM-SHA-256" {
			saramaConfig.Net.SASL.Mechanism = sarama.SASLTypeSCRAMSHA256
		}
		saramaConfig.Net.SASL.User = cfg.SASLUsername
		saramaConfig.Net.SASL.Password = cfg.SASLPassword
		if cfg.SecurityProtocol == "SASL_SSL" {
			saramaConfig.Net.TLS.Enable = true
		}
	}

	producer, err := sarama.NewSyncProducer(cfg.GetBrokers(), saramaConfig)
	if err != nil {
		return nil, fmt.Errorf("create kafka producer [topic=%s]: %w", cfg.Topic, err)
	}

	log.Info("kafka producer created",
		"brokers", cfg.Brokers,
		"topic", cfg.Topic,
	)

	return &Producer{
		producer: producer,
		topic:    cfg.Topic,
		log:      log,
	}, nil
}

// SendReportRequest отправляет рассчитанную карту в воркер интерпретации
func (p *Producer) SendReportRequest(ctx context.Context, requestID uuid.UUID, prompt string, chart []byte) error {
	if !json.Valid(chart) {
		return fmt.Errorf("chart payload is not valid json [request_id=%s]", requestID)
	}

	message := &sarama.ProducerMessage{
		Topic: p.topic,
		Key:   sarama.StringEncoder(requestID.String()),
		Value: sarama.ByteEncoder(chart),
		Headers: []sarama.RecordHeader{
			{Key: []byte("request_id"), Value: []byte(requestID.String())},
			{Key: []byte("action"), Value: []byte(actionKundliReport)},
			{Key: []byte("prompt"), Value: []byte(prompt)},
		},
	}

	partition, offset, err := p.producer.SendMessage(message)
	if err != nil {
		return fmt.Errorf("kafka send failed [topic=%s, key=%s]: %w", p.topic, requestID, err)
	}

	p.log.Debug("report request sent",
		"topic", p.topic,
		"request_id", requestID,
		"partition", partition,
		"offset", offset,
	)
	return nil
}

// Send отправляет произвольное сообщение в topic
func (p *Producer) Send(ctx context.Context, key string, value []byte) error {
	message := &sarama.ProducerMessage{
		Topic: p.topic,
		Key:   sarama.StringEncoder(key),
		Value: sarama.ByteEncoder(value),
	}

	partition, offset, err := p.producer.SendMessage(message)
	if err != nil {
		return fmt.Errorf("kafka send failed [topic=%s, key=%s]: %w", p.topic, key, err)
	}

	p.log.Debug("message sent", "topic", p.topic, "key", key, "partition", partition, "offset", offset)
	return nil
}

func (p *Producer) Close() error {
	if err := p.producer.Close(); err != nil {
		return fmt.Errorf("close kafka producer [topic=%s]: %w", p.topic, err)
	}
	p.log.Info("kafka producer closed", "topic", p.topic)
	return nil
}
