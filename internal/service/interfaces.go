package service

import (
	"context"

	"github.com/shestoi/payment-gateway/internal/bank"
)

//go:generate go run github.com/vektra/mockery/v2@v2.53.5 --name=BankClient --dir=. --output=./mocks --outpkg=mocks

// BankClient определяет интерфейс для работы с банком-эквайером
// Использует доменные типы пакета bank - это делает service независимым от HTTP-транспорта
type BankClient interface {
	// ProcessPayment отправляет платёж в банк и возвращает решение по авторизации
	// Отказы приходят как sentinel errors пакета bank (ErrUnavailable/ErrInvalidResponse/ErrTimeout)
	ProcessPayment(ctx context.Context, request bank.PaymentRequest) (*bank.Authorization, error)
}

//go:generate go run github.com/vektra/mockery/v2@v2.53.5 --name=PaymentEventPublisher --dir=. --output=./mocks --outpkg=mocks

// PaymentEventPublisher определяет интерфейс для публикации событий об обработанных платежах
type PaymentEventPublisher interface {
	// PublishPaymentProcessed публикует событие завершённого платежа
	PublishPaymentProcessed(ctx context.Context, event PaymentProcessedEvent) error
}

// PaymentProcessedEvent содержит данные события завершённого платежа
// Переносит только маскированные данные карты
type PaymentProcessedEvent struct {
	PaymentID          string
	Status             string
	CardNumberLastFour string
	Amount             int64
	Currency           string
}
