package repository

import (
	"context"
	"errors"
)

// Status представляет итоговый статус платежа
type Status string

const (
	// StatusAuthorized - банк авторизовал платёж
	StatusAuthorized Status = "Authorized"
	// StatusDeclined - банк отклонил платёж
	StatusDeclined Status = "Declined"
	// StatusRejected - запрос не прошёл валидацию (в хранилище не попадает)
	StatusRejected Status = "Rejected"
)

// Payment представляет доменную модель завершённого платежа
// Это бизнес-сущность, не привязанная к HTTP или банковскому API
// Никогда не содержит полный номер карты, CVV или код авторизации банка
type Payment struct {
	ID                 string
	Status             Status
	CardNumberLastFour string
	ExpiryMonth        int
	ExpiryYear         int
	Currency           string
	Amount             int64
}

//go:generate go run github.com/vektra/mockery/v2@v2.53.5 --name=PaymentRepository --dir=. --output=./mocks --outpkg=mocks

// PaymentRepository определяет интерфейс для работы с хранилищем платежей
// Service слой зависит от этого интерфейса, а не от конкретной реализации
type PaymentRepository interface {
	// Add сохраняет завершённый платёж в хранилище
	Add(ctx context.Context, payment Payment) error

	// GetByID получает платёж по ID
	// Возвращает ErrNotFound, если платёж не найден
	GetByID(ctx context.Context, id string) (Payment, error)
}

// ErrNotFound возвращается, когда платёж не найден в хранилище
var ErrNotFound = errors.New("payment not found")
