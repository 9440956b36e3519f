package kafka

import (
	"context"
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"github.com/segmentio/kafka-go"
	"go.uber.org/zap"

	"github.com/shestoi/payment-gateway/internal/service"
)

// PaymentEventPublisher реализует service.PaymentEventPublisher используя Kafka
type PaymentEventPublisher struct {
	logger *zap.Logger
	writer *kafka.Writer
	topic  string
}

// NewPaymentEventPublisher создаёт новый Kafka publisher для событий платежей
func NewPaymentEventPublisher(logger *zap.Logger, brokers []string, topic string) *PaymentEventPublisher {
	writer := &kafka.Writer{
		Addr:     kafka.TCP(brokers...),
		Topic:    topic,
		Balancer: &kafka.LeastBytes{},
	}

	return &PaymentEventPublisher{
		logger: logger,
		writer: writer,
		topic:  topic,
	}
}

// Close закрывает Kafka writer
func (p *PaymentEventPublisher) Close() error {
	return p.writer.Close()
}

// PublishPaymentProcessed публикует событие завершённого платежа в Kafka
// В payload попадают только маскированные данные карты
func (p *PaymentEventPublisher) PublishPaymentProcessed(ctx context.Context, event service.PaymentProcessedEvent) error {
	// Формируем JSON payload события
	payload := map[string]interface{}{
		"event_id":              uuid.New().String(), //уникальный ID события
		"event_type":            "payment.processed",
		"event_version":         1,
		"occurred_at":           time.Now().UTC().Format(time.RFC3339),
		"payment_id":            event.PaymentID,
		"status":                event.Status,
		"card_number_last_four": event.CardNumberLastFour,
		"amount":                event.Amount,
		"currency":              event.Currency,
	}

	valueBytes, err := json.Marshal(payload)
	if err != nil {
		p.logger.Error("failed to marshal payment processed event",
			zap.Error(err),
			zap.String("payment_id", event.PaymentID),
		)
		return err
	}

	// Отправляем сообщение в Kafka, ключ - ID платежа
	message := kafka.Message{
		Key:   []byte(event.PaymentID),
		Value: valueBytes,
	}

	if err := p.writer.WriteMessages(ctx, message); err != nil {
		p.logger.Error("failed to publish payment processed event",
			zap.Error(err),
			zap.String("topic", p.topic),
			zap.String("payment_id", event.PaymentID),
		)
		return err
	}

	p.logger.Info("payment processed event published",
		zap.String("topic", p.topic),
		zap.String("payment_id", event.PaymentID),
		zap.String("status", event.Status),
	)

	return nil
}

// NoOpPublisher - no-op реализация PaymentEventPublisher (для тестов или когда Kafka отключена)
type NoOpPublisher struct {
	logger *zap.Logger
}

// NewNoOpPublisher создаёт no-op publisher
func NewNoOpPublisher(logger *zap.Logger) *NoOpPublisher {
	return &NoOpPublisher{
		logger: logger,
	}
}

// PublishPaymentProcessed ничего не делает, только логирует
func (p *NoOpPublisher) PublishPaymentProcessed(ctx context.Context, event service.PaymentProcessedEvent) error {
	p.logger.Debug("no-op publisher: event not sent",
		zap.String("payment_id", event.PaymentID),
		zap.String("status", event.Status),
	)
	return nil
}
