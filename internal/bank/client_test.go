package bank

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func testRequest() PaymentRequest {
	return PaymentRequest{
		CardNumber: "2222405343248877",
		ExpiryDate: "04/2027",
		Currency:   "GBP",
		Amount:     1500,
		Cvv:        "123",
	}
}

func TestClient_ProcessPayment_Authorized(t *testing.T) {
	// Arrange: банк отвечает успешной авторизацией
	var received PaymentRequest
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "/payments", r.URL.Path)
		require.Equal(t, "application/json", r.Header.Get("Content-Type"))
		require.NoError(t, json.NewDecoder(r.Body).Decode(&received))

		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(Authorization{
			Authorized:        true,
			AuthorizationCode: "auth-001",
		})
	}))
	defer server.Close()

	client := NewClient(zap.NewNop(), server.URL, 5*time.Second)

	// Act
	authorization, err := client.ProcessPayment(context.Background(), testRequest())

	// Assert
	require.NoError(t, err)
	require.NotNil(t, authorization)
	require.True(t, authorization.Authorized)
	require.Equal(t, "auth-001", authorization.AuthorizationCode)

	// Wire-формат запроса к банку
	require.Equal(t, "2222405343248877", received.CardNumber)
	require.Equal(t, "04/2027", received.ExpiryDate)
	require.Equal(t, "GBP", received.Currency)
	require.Equal(t, int64(1500), received.Amount)
	require.Equal(t, "123", received.Cvv)
}

func TestClient_ProcessPayment_Declined(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(Authorization{Authorized: false})
	}))
	defer server.Close()

	client := NewClient(zap.NewNop(), server.URL, 5*time.Second)

	authorization, err := client.ProcessPayment(context.Background(), testRequest())

	require.NoError(t, err)
	require.NotNil(t, authorization)
	require.False(t, authorization.Authorized)
	require.Empty(t, authorization.AuthorizationCode)
}

func TestClient_ProcessPayment_NonSuccessStatus(t *testing.T) {
	// Не-2xx статус означает недоступность банка, тело не декодируется
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "service unavailable", http.StatusServiceUnavailable)
	}))
	defer server.Close()

	client := NewClient(zap.NewNop(), server.URL, 5*time.Second)

	authorization, err := client.ProcessPayment(context.Background(), testRequest())

	require.Nil(t, authorization)
	require.ErrorIs(t, err, ErrUnavailable)
}

func TestClient_ProcessPayment_MalformedBody(t *testing.T) {
	// 200 OK с недекодируемым телом - отдельный вид отказа
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte("not json at all"))
	}))
	defer server.Close()

	client := NewClient(zap.NewNop(), server.URL, 5*time.Second)

	authorization, err := client.ProcessPayment(context.Background(), testRequest())

	require.Nil(t, authorization)
	require.ErrorIs(t, err, ErrInvalidResponse)
}

func TestClient_ProcessPayment_Timeout(t *testing.T) {
	// Банк отвечает дольше таймаута клиента
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-time.After(2 * time.Second):
		case <-r.Context().Done():
		}
	}))
	defer server.Close()

	client := NewClient(zap.NewNop(), server.URL, 50*time.Millisecond)

	authorization, err := client.ProcessPayment(context.Background(), testRequest())

	require.Nil(t, authorization)
	require.ErrorIs(t, err, ErrTimeout)
}

func TestClient_ProcessPayment_ContextDeadline(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-time.After(2 * time.Second):
		case <-r.Context().Done():
		}
	}))
	defer server.Close()

	client := NewClient(zap.NewNop(), server.URL, 5*time.Second)

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	authorization, err := client.ProcessPayment(ctx, testRequest())

	require.Nil(t, authorization)
	require.ErrorIs(t, err, ErrTimeout)
}

func TestClient_ProcessPayment_ConnectionRefused(t *testing.T) {
	// Закрытый сервер моделирует отказ соединения
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	server.Close()

	client := NewClient(zap.NewNop(), server.URL, 5*time.Second)

	authorization, err := client.ProcessPayment(context.Background(), testRequest())

	require.Nil(t, authorization)
	require.ErrorIs(t, err, ErrUnavailable)
}
