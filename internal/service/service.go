package service

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/shestoi/payment-gateway/internal/bank"
	"github.com/shestoi/payment-gateway/internal/repository"
)

// Безопасные для пользователя сообщения об отказах обработки
// Наружу уходит только одно из них; исходная причина остаётся в логах
const (
	MsgBankUnavailable     = "Failed to communicate with the bank service."
	MsgBankInvalidResponse = "Invalid response format from the bank service."
	MsgBankTimeout         = "Bank service request timed out."
	MsgBankEmptyOutcome    = "Bank service returned an invalid response."
	MsgProcessingFailed    = "An error occurred while processing the payment."
)

// ProcessingError - единственный вид ошибки, видимый снаружи после валидации
// Message безопасен для пользователя; Err хранит исходную причину для диагностики
type ProcessingError struct {
	Message string
	Err     error
}

func (e *ProcessingError) Error() string {
	return e.Message
}

func (e *ProcessingError) Unwrap() error {
	return e.Err
}

// PaymentService содержит бизнес-логику обработки платежей
// Зависит от интерфейсов BankClient, PaymentRepository и PaymentEventPublisher,
// а не от конкретных реализаций - это позволяет легко подменять их в тестах
type PaymentService struct {
	logger     *zap.Logger
	bankClient BankClient
	repo       repository.PaymentRepository
	publisher  PaymentEventPublisher
}

// NewPaymentService создаёт новый экземпляр PaymentService
func NewPaymentService(
	logger *zap.Logger,
	bankClient BankClient,
	repo repository.PaymentRepository,
	publisher PaymentEventPublisher,
) *PaymentService {
	return &PaymentService{
		logger:     logger,
		bankClient: bankClient,
		repo:       repo,
		publisher:  publisher,
	}
}

// ProcessPaymentInput содержит входные данные для обработки платежа
// Предусловие: вход уже прошёл ValidateRequest
type ProcessPaymentInput struct {
	CardNumber  string
	ExpiryMonth int
	ExpiryYear  int
	Currency    string
	Amount      int64
	Cvv         string
}

// ProcessPayment обрабатывает платёж: маппинг -> вызов банка -> запись -> ответ
// Любой отказ после валидации возвращается как *ProcessingError с фиксированным сообщением
// Retry не выполняется: каждый отказ терминален для своего запроса
func (s *PaymentService) ProcessPayment(ctx context.Context, in ProcessPaymentInput) (repository.Payment, error) {
	// Correlation ID связывает строки лога одного запроса; вызывающему коду не возвращается
	correlationID := uuid.New().String()

	// Последние 4 цифры - единственный фрагмент номера карты, попадающий в логи
	last4, err := lastFour(in.CardNumber)
	if err != nil {
		s.logger.Error("failed to mask card number",
			zap.String("correlation_id", correlationID),
			zap.Error(err),
		)
		return repository.Payment{}, &ProcessingError{Message: MsgProcessingFailed, Err: err}
	}

	logger := s.logger.With(
		zap.String("correlation_id", correlationID),
		zap.String("card_number_last_four", last4),
		zap.Int64("amount", in.Amount),
		zap.String("currency", in.Currency),
	)

	// Вызываем банк-эквайер; это единственная блокирующая операция в пайплайне
	authorization, err := s.bankClient.ProcessPayment(ctx, toBankPaymentRequest(in))
	if err != nil {
		logger.Error("bank request failed", zap.Error(err))
		return repository.Payment{}, &ProcessingError{Message: bankFailureMessage(err), Err: err}
	}

	// Банк ответил успешно, но не вернул пригодный результат
	if authorization == nil {
		logger.Error("bank returned empty outcome")
		return repository.Payment{}, &ProcessingError{Message: MsgBankEmptyOutcome}
	}

	payment, err := toPayment(in, authorization)
	if err != nil {
		logger.Error("failed to map payment", zap.Error(err))
		return repository.Payment{}, &ProcessingError{Message: MsgProcessingFailed, Err: err}
	}

	if err := s.repo.Add(ctx, payment); err != nil {
		logger.Error("failed to store payment", zap.Error(err))
		return repository.Payment{}, &ProcessingError{Message: MsgProcessingFailed, Err: err}
	}

	logger.Info("payment processed successfully",
		zap.String("payment_id", payment.ID),
		zap.String("status", string(payment.Status)),
	)

	// Публикуем событие после записи; отказ публикации не влияет на результат запроса
	event := PaymentProcessedEvent{
		PaymentID:          payment.ID,
		Status:             string(payment.Status),
		CardNumberLastFour: payment.CardNumberLastFour,
		Amount:             payment.Amount,
		Currency:           payment.Currency,
	}
	if err := s.publisher.PublishPaymentProcessed(ctx, event); err != nil {
		logger.Error("failed to publish payment processed event",
			zap.String("payment_id", payment.ID),
			zap.Error(err),
		)
	}

	return payment, nil
}

// GetPayment получает платёж по ID
// Отсутствие записи - нормальный отрицательный результат: возвращается repository.ErrNotFound без обёртки
func (s *PaymentService) GetPayment(ctx context.Context, id string) (repository.Payment, error) {
	payment, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			s.logger.Warn("payment not found", zap.String("payment_id", id))
		}
		return repository.Payment{}, err
	}

	return payment, nil
}

// bankFailureMessage переводит ошибку банковского клиента в фиксированное пользовательское сообщение
// Набор видов отказа закрыт (sentinel errors пакета bank), разбор исчерпывающий
func bankFailureMessage(err error) string {
	switch {
	case errors.Is(err, bank.ErrUnavailable):
		return MsgBankUnavailable
	case errors.Is(err, bank.ErrInvalidResponse):
		return MsgBankInvalidResponse
	case errors.Is(err, bank.ErrTimeout):
		return MsgBankTimeout
	default:
		return MsgProcessingFailed
	}
}
