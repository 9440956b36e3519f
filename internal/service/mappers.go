package service

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/shestoi/payment-gateway/internal/bank"
	"github.com/shestoi/payment-gateway/internal/repository"
)

// toBankPaymentRequest преобразует проверенный запрос в wire-формат банка
// Чистая функция без собственной валидации - вход уже прошёл ValidateRequest
func toBankPaymentRequest(in ProcessPaymentInput) bank.PaymentRequest {
	return bank.PaymentRequest{
		CardNumber: in.CardNumber,
		ExpiryDate: fmt.Sprintf("%02d/%d", in.ExpiryMonth, in.ExpiryYear),
		Currency:   in.Currency,
		Amount:     in.Amount,
		Cvv:        in.Cvv,
	}
}

// toPayment строит доменную модель платежа из исходного запроса и решения банка
// Генерирует новый уникальный ID; в запись попадают только последние 4 цифры карты
func toPayment(in ProcessPaymentInput, authorization *bank.Authorization) (repository.Payment, error) {
	last4, err := lastFour(in.CardNumber)
	if err != nil {
		return repository.Payment{}, err
	}

	status := repository.StatusDeclined
	if authorization.Authorized {
		status = repository.StatusAuthorized
	}

	return repository.Payment{
		ID:                 uuid.New().String(),
		Status:             status,
		CardNumberLastFour: last4,
		ExpiryMonth:        in.ExpiryMonth,
		ExpiryYear:         in.ExpiryYear,
		Currency:           in.Currency,
		Amount:             in.Amount,
	}, nil
}

// lastFour возвращает последние 4 символа номера карты
// Валидатор гарантирует длину >= 14, но здесь стоит явная проверка:
// будущее изменение правил валидации не должно обернуться выходом за границы строки
func lastFour(cardNumber string) (string, error) {
	if len(cardNumber) < 4 {
		return "", fmt.Errorf("card number is too short to mask: %d characters", len(cardNumber))
	}
	return cardNumber[len(cardNumber)-4:], nil
}
