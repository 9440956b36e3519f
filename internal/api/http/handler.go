package httpapi

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"go.uber.org/zap"

	"github.com/shestoi/payment-gateway/internal/observability"
	"github.com/shestoi/payment-gateway/internal/repository"
	"github.com/shestoi/payment-gateway/internal/service"
)

// Handler содержит HTTP-обработчики платёжного шлюза
// Зависит от service слоя, но не знает о деталях реализации (банковский клиент, хранилище)
type Handler struct {
	paymentService *service.PaymentService
	logger         *zap.Logger
}

// NewHandler создаёт новый HTTP handler
func NewHandler(paymentService *service.PaymentService, logger *zap.Logger) *Handler {
	return &Handler{
		paymentService: paymentService,
		logger:         logger,
	}
}

// PostPaymentRequest представляет HTTP запрос на обработку платежа
type PostPaymentRequest struct {
	CardNumber  string `json:"cardNumber"`
	ExpiryMonth int    `json:"expiryMonth"`
	ExpiryYear  int    `json:"expiryYear"`
	Currency    string `json:"currency"`
	Amount      int64  `json:"amount"`
	Cvv         string `json:"cvv"`
}

// PaymentResponse представляет HTTP ответ с информацией о платеже
// Из данных карты наружу уходят только последние 4 цифры
type PaymentResponse struct {
	ID                 string `json:"id"`
	Status             string `json:"status"`
	CardNumberLastFour string `json:"cardNumberLastFour"`
	ExpiryMonth        int    `json:"expiryMonth"`
	ExpiryYear         int    `json:"expiryYear"`
	Currency           string `json:"currency"`
	Amount             int64  `json:"amount"`
}

// ValidationErrorItem представляет одно нарушение валидации в HTTP ответе
type ValidationErrorItem struct {
	PropertyName string `json:"propertyName"`
	ErrorMessage string `json:"errorMessage"`
}

// FailedValidationResponse представляет 400 ответ при отказе валидации
type FailedValidationResponse struct {
	Status string                `json:"status"`
	Errors []ValidationErrorItem `json:"errors"`
}

// PostPayment обрабатывает POST /api/payments - приём платежа
func (h *Handler) PostPayment(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := observability.L(ctx, h.logger)

	// Декодируем JSON тело запроса
	var reqBody PostPaymentRequest
	if err := json.NewDecoder(r.Body).Decode(&reqBody); err != nil {
		logger.Warn("JSON decode error", zap.Error(err))
		http.Error(w, "Invalid JSON body", http.StatusBadRequest)
		return
	}

	input := service.ProcessPaymentInput{
		CardNumber:  reqBody.CardNumber,
		ExpiryMonth: reqBody.ExpiryMonth,
		ExpiryYear:  reqBody.ExpiryYear,
		Currency:    reqBody.Currency,
		Amount:      reqBody.Amount,
		Cvv:         reqBody.Cvv,
	}

	// Валидация: при нарушениях возвращаем 400 со всеми ошибками сразу, банк не вызывается
	if validationErrors := service.ValidateRequest(input, time.Now()); len(validationErrors) > 0 {
		logger.Info("payment request rejected",
			zap.Int("violations", len(validationErrors)),
		)
		writeJSON(w, http.StatusBadRequest, toFailedValidationResponse(validationErrors))
		return
	}

	// Вызываем service слой для обработки платежа
	payment, err := h.paymentService.ProcessPayment(ctx, input)
	if err != nil {
		// Наружу уходит только безопасное сообщение ProcessingError
		var procErr *service.ProcessingError
		if errors.As(err, &procErr) {
			http.Error(w, procErr.Message, http.StatusInternalServerError)
			return
		}
		logger.Error("unexpected processing error", zap.Error(err))
		http.Error(w, service.MsgProcessingFailed, http.StatusInternalServerError)
		return
	}

	// Authorized и Declined - оба успешный HTTP ответ
	writeJSON(w, http.StatusOK, toPaymentResponse(payment))
}

// GetPayment обрабатывает GET /api/payments/{id} - получение платежа по ID
func (h *Handler) GetPayment(w http.ResponseWriter, r *http.Request, id string) {
	ctx := r.Context()

	payment, err := h.paymentService.GetPayment(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			// Не найдено - нормальный отрицательный результат: 404 с пустым телом
			w.WriteHeader(http.StatusNotFound)
			return
		}
		observability.L(ctx, h.logger).Error("get payment error", zap.Error(err))
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}

	writeJSON(w, http.StatusOK, toPaymentResponse(payment))
}

// toPaymentResponse преобразует доменную модель в HTTP DTO
func toPaymentResponse(payment repository.Payment) PaymentResponse {
	return PaymentResponse{
		ID:                 payment.ID,
		Status:             string(payment.Status),
		CardNumberLastFour: payment.CardNumberLastFour,
		ExpiryMonth:        payment.ExpiryMonth,
		ExpiryYear:         payment.ExpiryYear,
		Currency:           payment.Currency,
		Amount:             payment.Amount,
	}
}

// toFailedValidationResponse преобразует ошибки валидации в HTTP DTO со статусом Rejected
func toFailedValidationResponse(validationErrors []service.ValidationError) FailedValidationResponse {
	items := make([]ValidationErrorItem, 0, len(validationErrors))
	for _, ve := range validationErrors {
		items = append(items, ValidationErrorItem{
			PropertyName: ve.PropertyName,
			ErrorMessage: ve.ErrorMessage,
		})
	}
	return FailedValidationResponse{
		Status: string(repository.StatusRejected),
		Errors: items,
	}
}

func writeJSON(w http.ResponseWriter, status int, body interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(body)
}
