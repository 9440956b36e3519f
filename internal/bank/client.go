package bank

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"strings"
	"time"

	"go.uber.org/zap"
)

// Ошибки банковского клиента - закрытый набор видов отказа
// Service слой различает их через errors.Is и переводит в безопасные для пользователя сообщения
var (
	// ErrUnavailable - банк недоступен: ошибка соединения или не-2xx статус
	ErrUnavailable = errors.New("bank service unavailable")
	// ErrInvalidResponse - ответ банка не удалось декодировать
	ErrInvalidResponse = errors.New("invalid bank service response")
	// ErrTimeout - банк не ответил в срок (таймаут клиента или дедлайн контекста)
	ErrTimeout = errors.New("bank service request timed out")
)

// PaymentRequest представляет запрос к банку-эквайеру в wire-формате
// Содержит полный номер карты и CVV, поэтому никогда не логируется и не сохраняется
type PaymentRequest struct {
	CardNumber string `json:"card_number"`
	ExpiryDate string `json:"expiry_date"` // формат "MM/YYYY", например "04/2030"
	Currency   string `json:"currency"`
	Amount     int64  `json:"amount"`
	Cvv        string `json:"cvv"`
}

// Authorization представляет решение банка по платежу
type Authorization struct {
	Authorized        bool   `json:"authorized"`
	AuthorizationCode string `json:"authorization_code"`
}

// Client реализует отправку платежей в банк-эквайер по HTTP
type Client struct {
	logger  *zap.Logger
	baseURL string
	client  *http.Client
}

// NewClient создаёт новый банковский клиент
// baseURL - базовый адрес API банка, timeout - максимальное время ожидания ответа
func NewClient(logger *zap.Logger, baseURL string, timeout time.Duration) *Client {
	return &Client{
		logger:  logger,
		baseURL: strings.TrimRight(baseURL, "/"),
		client: &http.Client{
			Timeout: timeout,
		},
	}
}

// ProcessPayment отправляет платёж в банк и возвращает решение по авторизации
// Любой отказ обёрнут в один из sentinel errors пакета (ErrUnavailable/ErrInvalidResponse/ErrTimeout),
// исходная причина сохраняется в тексте ошибки для диагностики
func (c *Client) ProcessPayment(ctx context.Context, request PaymentRequest) (*Authorization, error) {
	url := c.baseURL + "/payments"

	//Превращаем запрос в JSON
	jsonData, err := json.Marshal(request)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal bank request: %w", err)
	}

	//Создаём HTTP-запрос с контекстом - дедлайн вызывающего кода прерывает ожидание
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewBuffer(jsonData))
	if err != nil {
		return nil, fmt.Errorf("failed to create bank request: %w", err)
	}

	req.Header.Set("Content-Type", "application/json")

	//Отправляем запрос и получаем ответ
	resp, err := c.client.Do(req)
	if err != nil {
		if isTimeout(err) {
			return nil, fmt.Errorf("%w: %v", ErrTimeout, err)
		}
		return nil, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	defer resp.Body.Close()

	// При не-2xx читаем тело ответа для диагностики и не декодируем JSON
	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		body, _ := io.ReadAll(resp.Body)
		c.logger.Warn("bank API returned unsuccessful status",
			zap.Int("status", resp.StatusCode),
			zap.String("body", strings.TrimSpace(string(body))),
		)
		return nil, fmt.Errorf("%w: status %d", ErrUnavailable, resp.StatusCode)
	}

	// Декодируем решение банка
	var authorization Authorization
	if err := json.NewDecoder(resp.Body).Decode(&authorization); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidResponse, err)
	}

	c.logger.Debug("bank authorization received",
		zap.Bool("authorized", authorization.Authorized),
	)

	return &authorization, nil
}

// isTimeout определяет, является ли ошибка транспорта таймаутом
// http.Client оборачивает и таймаут клиента, и истёкший дедлайн контекста в net.Error с Timeout() == true
func isTimeout(err error) bool {
	if errors.Is(err, context.DeadlineExceeded) {
		return true
	}
	var netErr net.Error
	return errors.As(err, &netErr) && netErr.Timeout()
}
