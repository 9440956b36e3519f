package service

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

// фиксированная "текущая" дата для детерминированных проверок срока действия
var testNow = time.Date(2025, time.April, 15, 12, 0, 0, 0, time.UTC)

func validInput() ProcessPaymentInput {
	return ProcessPaymentInput{
		CardNumber:  "2222405343248877",
		ExpiryMonth: 4,
		ExpiryYear:  2027,
		Currency:    "GBP",
		Amount:      1500,
		Cvv:         "123",
	}
}

func TestValidateRequest_Valid(t *testing.T) {
	errs := ValidateRequest(validInput(), testNow)
	require.Empty(t, errs)
}

func TestValidateRequest_CardNumber(t *testing.T) {
	tests := []struct {
		name            string
		cardNumber      string
		expectedMessage string
	}{
		{
			name:            "empty",
			cardNumber:      "",
			expectedMessage: notEmptyMessage,
		},
		{
			name:            "too short",
			cardNumber:      "5445",
			expectedMessage: cardNumberLengthMessage,
		},
		{
			name:            "13 digits is below minimum",
			cardNumber:      "1234567890123",
			expectedMessage: cardNumberLengthMessage,
		},
		{
			name:            "20 digits is above maximum",
			cardNumber:      "12345678901234567890",
			expectedMessage: cardNumberLengthMessage,
		},
		{
			name:            "non numeric characters",
			cardNumber:      "22224053432488aa",
			expectedMessage: onlyNumericMessage,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in := validInput()
			in.CardNumber = tt.cardNumber

			errs := ValidateRequest(in, testNow)

			require.NotEmpty(t, errs)
			require.Contains(t, errs, ValidationError{PropertyName: "CardNumber", ErrorMessage: tt.expectedMessage})
		})
	}
}

func TestValidateRequest_CardNumberBoundaryLengths(t *testing.T) {
	// 14 и 19 символов - границы допустимого диапазона
	for _, cardNumber := range []string{"12345678901234", "1234567890123456789"} {
		in := validInput()
		in.CardNumber = cardNumber

		errs := ValidateRequest(in, testNow)

		require.Empty(t, errs, "card number of length %d must be accepted", len(cardNumber))
	}
}

func TestValidateRequest_Expiry(t *testing.T) {
	tests := []struct {
		name          string
		month, year   int
		expectedField string
	}{
		{
			name:          "month below range",
			month:         0,
			year:          2027,
			expectedField: "ExpiryMonth",
		},
		{
			name:          "month above range",
			month:         13,
			year:          2027,
			expectedField: "ExpiryMonth",
		},
		{
			name:          "year in the past",
			month:         4,
			year:          2024,
			expectedField: "ExpiryYear",
		},
		{
			name:          "current month is not in the future",
			month:         4,
			year:          2025,
			expectedField: "ExpiryMonth/ExpiryYear",
		},
		{
			name:          "previous month of current year",
			month:         3,
			year:          2025,
			expectedField: "ExpiryMonth/ExpiryYear",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in := validInput()
			in.ExpiryMonth = tt.month
			in.ExpiryYear = tt.year

			errs := ValidateRequest(in, testNow)

			require.NotEmpty(t, errs)
			found := false
			for _, e := range errs {
				if e.PropertyName == tt.expectedField {
					found = true
				}
			}
			require.True(t, found, "expected violation on %s, got %v", tt.expectedField, errs)
		})
	}
}

func TestValidateRequest_ExpiryNextMonthOfCurrentYear(t *testing.T) {
	// Следующий месяц текущего года - строго в будущем, нарушений нет
	in := validInput()
	in.ExpiryMonth = 5
	in.ExpiryYear = 2025

	errs := ValidateRequest(in, testNow)

	require.Empty(t, errs)
}

func TestValidateRequest_Currency(t *testing.T) {
	t.Run("unsupported currency is rejected", func(t *testing.T) {
		for _, currency := range []string{"", "JPY", "GB", "POUNDS"} {
			in := validInput()
			in.Currency = currency

			errs := ValidateRequest(in, testNow)

			require.Contains(t, errs, ValidationError{PropertyName: "Currency", ErrorMessage: validCurrencyMessage})
		}
	})

	t.Run("currency match is case-insensitive", func(t *testing.T) {
		for _, currency := range []string{"gbp", "Eur", "usd"} {
			in := validInput()
			in.Currency = currency

			errs := ValidateRequest(in, testNow)

			require.Empty(t, errs)
		}
	})
}

func TestValidateRequest_Amount(t *testing.T) {
	t.Run("negative amount is rejected", func(t *testing.T) {
		in := validInput()
		in.Amount = -1

		errs := ValidateRequest(in, testNow)

		require.Contains(t, errs, ValidationError{PropertyName: "Amount", ErrorMessage: amountNegativeMessage})
	})

	t.Run("zero amount is accepted", func(t *testing.T) {
		in := validInput()
		in.Amount = 0

		errs := ValidateRequest(in, testNow)

		require.Empty(t, errs)
	})
}

func TestValidateRequest_Cvv(t *testing.T) {
	tests := []struct {
		name            string
		cvv             string
		expectedMessage string
	}{
		{name: "empty", cvv: "", expectedMessage: notEmptyMessage},
		{name: "too short", cvv: "12", expectedMessage: cvvLengthMessage},
		{name: "too long", cvv: "12345", expectedMessage: cvvLengthMessage},
		{name: "non numeric", cvv: "12a", expectedMessage: onlyNumericMessage},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in := validInput()
			in.Cvv = tt.cvv

			errs := ValidateRequest(in, testNow)

			require.Contains(t, errs, ValidationError{PropertyName: "Cvv", ErrorMessage: tt.expectedMessage})
		})
	}

	t.Run("4-digit cvv is accepted", func(t *testing.T) {
		in := validInput()
		in.Cvv = "1234"

		errs := ValidateRequest(in, testNow)

		require.Empty(t, errs)
	})
}

func TestValidateRequest_CollectsAllViolations(t *testing.T) {
	// Все правила независимы: нарушения по разным полям отдаются вместе
	in := ProcessPaymentInput{
		CardNumber:  "abc",
		ExpiryMonth: 0,
		ExpiryYear:  2020,
		Currency:    "XXX",
		Amount:      -5,
		Cvv:         "x",
	}

	errs := ValidateRequest(in, testNow)

	fields := make(map[string]bool)
	for _, e := range errs {
		fields[e.PropertyName] = true
	}
	for _, field := range []string{"CardNumber", "ExpiryMonth", "ExpiryYear", "ExpiryMonth/ExpiryYear", "Currency", "Amount", "Cvv"} {
		require.True(t, fields[field], "expected violation on %s, got %v", field, errs)
	}
}

func TestValidateRequest_NoSideEffects(t *testing.T) {
	in := validInput()
	original := in

	_ = ValidateRequest(in, testNow)

	require.Equal(t, original, in)
}
