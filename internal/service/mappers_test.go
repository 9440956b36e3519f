package service

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/shestoi/payment-gateway/internal/bank"
	"github.com/shestoi/payment-gateway/internal/repository"
)

func TestToBankPaymentRequest(t *testing.T) {
	tests := []struct {
		name           string
		month, year    int
		expectedExpiry string
	}{
		{name: "single digit month is zero padded", month: 4, year: 2030, expectedExpiry: "04/2030"},
		{name: "double digit month", month: 12, year: 2027, expectedExpiry: "12/2027"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in := validInput()
			in.ExpiryMonth = tt.month
			in.ExpiryYear = tt.year

			bankReq := toBankPaymentRequest(in)

			require.Equal(t, tt.expectedExpiry, bankReq.ExpiryDate)
			require.Equal(t, in.CardNumber, bankReq.CardNumber)
			require.Equal(t, in.Currency, bankReq.Currency)
			require.Equal(t, in.Amount, bankReq.Amount)
			require.Equal(t, in.Cvv, bankReq.Cvv)
		})
	}
}

func TestToPayment(t *testing.T) {
	t.Run("authorized outcome", func(t *testing.T) {
		in := validInput()

		payment, err := toPayment(in, &bank.Authorization{Authorized: true, AuthorizationCode: "auth-123"})

		require.NoError(t, err)
		require.NotEmpty(t, payment.ID)
		require.Equal(t, repository.StatusAuthorized, payment.Status)
		require.Equal(t, "8877", payment.CardNumberLastFour)
		require.Equal(t, in.ExpiryMonth, payment.ExpiryMonth)
		require.Equal(t, in.ExpiryYear, payment.ExpiryYear)
		require.Equal(t, in.Currency, payment.Currency)
		require.Equal(t, in.Amount, payment.Amount)
	})

	t.Run("declined outcome", func(t *testing.T) {
		payment, err := toPayment(validInput(), &bank.Authorization{Authorized: false})

		require.NoError(t, err)
		require.Equal(t, repository.StatusDeclined, payment.Status)
	})

	t.Run("generated ids are unique", func(t *testing.T) {
		first, err := toPayment(validInput(), &bank.Authorization{Authorized: true})
		require.NoError(t, err)
		second, err := toPayment(validInput(), &bank.Authorization{Authorized: true})
		require.NoError(t, err)

		require.NotEqual(t, first.ID, second.ID)
	})
}

func TestLastFour(t *testing.T) {
	t.Run("returns trailing four characters", func(t *testing.T) {
		last4, err := lastFour("2222405343248877")

		require.NoError(t, err)
		require.Equal(t, "8877", last4)
	})

	t.Run("guards against short input", func(t *testing.T) {
		// Валидатор гарантирует длину >= 14, но маппер не полагается на это молча
		for _, cardNumber := range []string{"", "123"} {
			_, err := lastFour(cardNumber)
			require.Error(t, err)
		}
	})
}
