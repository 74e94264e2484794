package apperror

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAppError_Error(t *testing.T) {
	tests := []struct {
		name     string
		appErr   *AppError
		expected string
	}{
		{
			name:     "without wrapped error",
			appErr:   New("PAY_001", "Insufficient funds", http.StatusPaymentRequired),
			expected: "[PAY_001] Insufficient funds",
		},
		{
			name:     "with wrapped error",
			appErr:   Wrap("SYS_001", "DB error", http.StatusInternalServerError, fmt.Errorf("connection refused")),
			expected: "[SYS_001] DB error: connection refused",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.appErr.Error())
		})
	}
}

func TestAppError_Unwrap(t *testing.T) {
	inner := fmt.Errorf("inner error")
	appErr := Wrap("SYS_001", "wrapped", http.StatusInternalServerError, inner)

	assert.True(t, errors.Is(appErr, inner))
}

func TestAppError_IsNilUnwrap(t *testing.T) {
	appErr := New("PAY_001", "test", http.StatusBadRequest)
	assert.Nil(t, appErr.Unwrap())
}

func TestAppError_IsMatchesCode(t *testing.T) {
	err := fmt.Errorf("transfer: %w", ErrAccountNotFound("alice"))

	assert.True(t, errors.Is(err, AccountNotFound))
	assert.False(t, errors.Is(err, WalletNotFound))
	assert.False(t, errors.Is(err, errors.New("ACC_001")))
}

func TestCodeOf(t *testing.T) {
	assert.Equal(t, "INV_003", CodeOf(fmt.Errorf("open: %w", ErrAccountAlreadyHasWallet("bob"))))
	assert.Equal(t, "", CodeOf(errors.New("plain")))
	assert.Equal(t, "", CodeOf(nil))
}

func TestAccountErrors(t *testing.T) {
	tests := []struct {
		name       string
		err        *AppError
		code       string
		httpStatus int
	}{
		{"AccountNotFound", ErrAccountNotFound("alice"), "ACC_001", 404},
		{"DuplicatePixKey", ErrDuplicatePixKey("alice"), "ACC_002", 409},
		{"InvalidPixKey", ErrInvalidPixKey("at least one pix key is required"), "ACC_003", 400},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.code, tt.err.Code)
			assert.Equal(t, tt.httpStatus, tt.err.HTTPStatus)
		})
	}
}

func TestInvestmentErrors(t *testing.T) {
	tests := []struct {
		name       string
		err        *AppError
		code       string
		httpStatus int
	}{
		{"InvestmentNotFound", ErrInvestmentNotFound(7), "INV_001", 404},
		{"WalletNotFound", ErrWalletNotFound("alice"), "INV_002", 404},
		{"AccountAlreadyHasWallet", ErrAccountAlreadyHasWallet("alice"), "INV_003", 409},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.code, tt.err.Code)
			assert.Equal(t, tt.httpStatus, tt.err.HTTPStatus)
		})
	}
}

func TestPaymentErrors(t *testing.T) {
	tests := []struct {
		name       string
		err        *AppError
		code       string
		httpStatus int
	}{
		{"InsufficientFunds", ErrInsufficientFunds(), "PAY_001", 402},
		{"InvalidAmount", ErrInvalidAmount(), "PAY_002", 400},
		{"BalanceOverflow", ErrBalanceOverflow(), "PAY_003", 422},
		{"Validation", Validation("amount is required"), "PAY_002", 400},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.code, tt.err.Code)
			assert.Equal(t, tt.httpStatus, tt.err.HTTPStatus)
		})
	}
}

func TestSystemErrors(t *testing.T) {
	inner := fmt.Errorf("pg: connection closed")
	dbErr := ErrDatabaseError(inner)
	assert.Equal(t, "SYS_001", dbErr.Code)
	assert.Equal(t, 500, dbErr.HTTPStatus)
	assert.True(t, errors.Is(dbErr, inner))

	journal := ErrJournalUnavailable()
	assert.Equal(t, "SYS_002", journal.Code)
	assert.Equal(t, 503, journal.HTTPStatus)

	internal := InternalError(inner)
	assert.Equal(t, "SYS_001", internal.Code)
	assert.Equal(t, 500, internal.HTTPStatus)
}

func TestRateLimitError(t *testing.T) {
	err := ErrRateLimitExceeded()
	assert.Equal(t, "RATE_001", err.Code)
	assert.Equal(t, 429, err.HTTPStatus)
}

func TestNotFoundMessages(t *testing.T) {
	assert.Contains(t, ErrAccountNotFound("carol").Message, "carol")
	assert.Contains(t, ErrInvestmentNotFound(42).Message, "42")
}

func TestIdempotencyInFlightError(t *testing.T) {
	err := ErrIdempotencyInFlight()
	assert.Equal(t, "IDEM_001", err.Code)
	assert.Equal(t, 409, err.HTTPStatus)
}
