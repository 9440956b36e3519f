package service

import (
	"strings"
	"time"
)

// Сообщения об ошибках валидации
const (
	notEmptyMessage         = "Must not be empty."
	onlyNumericMessage      = "Must only contain numeric characters."
	validCurrencyMessage    = "Must be a valid ISO currency code."
	futureExpiryDateMessage = "The expiry date must be in the future."
	cardNumberLengthMessage = "Must be between 14 and 19 characters long."
	expiryMonthRangeMessage = "Must be between 1 and 12."
	expiryYearPastMessage   = "Must be greater than or equal to the current year."
	amountNegativeMessage   = "Must be greater than or equal to 0."
	cvvLengthMessage        = "Must be 3 or 4 characters long."
)

// currencyCodes - фиксированный список поддерживаемых валют
var currencyCodes = map[string]struct{}{
	"GBP": {},
	"EUR": {},
	"USD": {},
}

// ValidationError представляет одно нарушение правила валидации
type ValidationError struct {
	PropertyName string
	ErrorMessage string
}

// ValidateRequest проверяет запрос на платёж по всем правилам и возвращает список нарушений
// Правила независимы: все нарушения собираются вместе, без short-circuit между полями
// Текущая дата передаётся параметром now - это делает функцию чистой и тестируемой
func ValidateRequest(in ProcessPaymentInput, now time.Time) []ValidationError {
	var errs []ValidationError

	// Номер карты: не пустой, длина 14-19, только цифры
	if in.CardNumber == "" {
		errs = append(errs, ValidationError{PropertyName: "CardNumber", ErrorMessage: notEmptyMessage})
	} else if len(in.CardNumber) < 14 || len(in.CardNumber) > 19 {
		errs = append(errs, ValidationError{PropertyName: "CardNumber", ErrorMessage: cardNumberLengthMessage})
	}
	if in.CardNumber != "" && !allDigits(in.CardNumber) {
		errs = append(errs, ValidationError{PropertyName: "CardNumber", ErrorMessage: onlyNumericMessage})
	}

	// Месяц и год истечения срока действия по отдельности
	if in.ExpiryMonth < 1 || in.ExpiryMonth > 12 {
		errs = append(errs, ValidationError{PropertyName: "ExpiryMonth", ErrorMessage: expiryMonthRangeMessage})
	}
	if in.ExpiryYear < now.Year() {
		errs = append(errs, ValidationError{PropertyName: "ExpiryYear", ErrorMessage: expiryYearPastMessage})
	}

	// Комбинированное правило: пара (месяц, год) должна быть строго в будущем
	if !isFutureExpiryDate(in.ExpiryMonth, in.ExpiryYear, now) {
		errs = append(errs, ValidationError{PropertyName: "ExpiryMonth/ExpiryYear", ErrorMessage: futureExpiryDateMessage})
	}

	// Валюта: без учёта регистра из фиксированного списка
	if !isValidCurrencyCode(in.Currency) {
		errs = append(errs, ValidationError{PropertyName: "Currency", ErrorMessage: validCurrencyMessage})
	}

	// Сумма в минорных единицах, не может быть отрицательной
	if in.Amount < 0 {
		errs = append(errs, ValidationError{PropertyName: "Amount", ErrorMessage: amountNegativeMessage})
	}

	// CVV: не пустой, длина 3-4, только цифры
	if in.Cvv == "" {
		errs = append(errs, ValidationError{PropertyName: "Cvv", ErrorMessage: notEmptyMessage})
	} else if len(in.Cvv) < 3 || len(in.Cvv) > 4 {
		errs = append(errs, ValidationError{PropertyName: "Cvv", ErrorMessage: cvvLengthMessage})
	}
	if in.Cvv != "" && !allDigits(in.Cvv) {
		errs = append(errs, ValidationError{PropertyName: "Cvv", ErrorMessage: onlyNumericMessage})
	}

	return errs
}

// isFutureExpiryDate проверяет, что пара (месяц, год) строго после текущего месяца
func isFutureExpiryDate(month, year int, now time.Time) bool {
	if year > now.Year() {
		return true
	}
	return year == now.Year() && month > int(now.Month())
}

// isValidCurrencyCode проверяет валюту по списку без учёта регистра
func isValidCurrencyCode(currency string) bool {
	if currency == "" {
		return false
	}
	_, ok := currencyCodes[strings.ToUpper(currency)]
	return ok
}

// allDigits проверяет, что строка состоит только из ASCII-цифр
func allDigits(s string) bool {
	for _, c := range s {
		if c < '0' || c > '9' {
			return false
		}
	}
	return true
}
