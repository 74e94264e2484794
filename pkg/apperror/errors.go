package apperror

import (
	"errors"
	"fmt"
	"net/http"
)

// AppError is a structured error that maps to HTTP responses.
type AppError struct {
	Code       string `json:"error_code"`
	Message    string `json:"message"`
	HTTPStatus int    `json:"-"`
	Err        error  `json:"-"` // Wrapped internal error (not exposed to client)
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// Is reports whether target is an AppError carrying the same code, so callers
// can match on the failure kind with errors.Is regardless of the message.
func (e *AppError) Is(target error) bool {
	t, ok := target.(*AppError)
	if !ok {
		return false
	}
	return e.Code == t.Code
}

// New creates a new AppError.
func New(code string, message string, httpStatus int) *AppError {
	return &AppError{
		Code:       code,
		Message:    message,
		HTTPStatus: httpStatus,
	}
}

// Wrap wraps an internal error with an AppError.
func Wrap(code string, message string, httpStatus int, err error) *AppError {
	return &AppError{
		Code:       code,
		Message:    message,
		HTTPStatus: httpStatus,
		Err:        err,
	}
}

// CodeOf returns the code of the first AppError in err's chain, or "".
func CodeOf(err error) string {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr.Code
	}
	return ""
}

// ---- Accounts (ACC) ----

func ErrAccountNotFound(pix string) *AppError {
	return New("ACC_001", fmt.Sprintf("No account found for pix key %q", pix), http.StatusNotFound)
}

func ErrDuplicatePixKey(pix string) *AppError {
	return New("ACC_002", fmt.Sprintf("Pix key %q is already in use", pix), http.StatusConflict)
}

func ErrInvalidPixKey(message string) *AppError {
	return New("ACC_003", message, http.StatusBadRequest)
}

// ---- Investments (INV) ----

func ErrInvestmentNotFound(id int64) *AppError {
	return New("INV_001", fmt.Sprintf("Investment %d not found", id), http.StatusNotFound)
}

func ErrWalletNotFound(pix string) *AppError {
	return New("INV_002", fmt.Sprintf("No investment wallet backed by pix key %q", pix), http.StatusNotFound)
}

func ErrAccountAlreadyHasWallet(pix string) *AppError {
	return New("INV_003", fmt.Sprintf("Account %q already backs an investment wallet", pix), http.StatusConflict)
}

// ---- Money movements (PAY) ----

func ErrInsufficientFunds() *AppError {
	return New("PAY_001", "Insufficient balance in wallet", http.StatusPaymentRequired)
}

func ErrInvalidAmount() *AppError {
	return New("PAY_002", "Invalid amount", http.StatusBadRequest)
}

func ErrBalanceOverflow() *AppError {
	return New("PAY_003", "Amount would exceed the maximum wallet balance", http.StatusUnprocessableEntity)
}

// ---- Rate Limiting (RATE) ----

func ErrRateLimitExceeded() *AppError {
	return New("RATE_001", "Rate limit exceeded", http.StatusTooManyRequests)
}

// ---- Idempotency (IDEM) ----

func ErrIdempotencyInFlight() *AppError {
	return New("IDEM_001", "A request with this Idempotency-Key is still being processed", http.StatusConflict)
}

// ---- System & Infrastructure (SYS) ----

func ErrDatabaseError(err error) *AppError {
	return Wrap("SYS_001", "Internal database error", http.StatusInternalServerError, err)
}

func ErrJournalUnavailable() *AppError {
	return New("SYS_002", "Audit journal store is not configured", http.StatusServiceUnavailable)
}

// InternalError wraps an internal error as a SYS_001 error.
func InternalError(err error) *AppError {
	return Wrap("SYS_001", "Internal server error", http.StatusInternalServerError, err)
}

// Validation returns a PAY_002-style validation error.
func Validation(message string) *AppError {
	return New("PAY_002", message, http.StatusBadRequest)
}

// Sentinels for errors.Is matching. Only the code is compared.
var (
	AccountNotFound         = &AppError{Code: "ACC_001"}
	DuplicatePixKey         = &AppError{Code: "ACC_002"}
	InvalidPixKey           = &AppError{Code: "ACC_003"}
	InvestmentNotFound      = &AppError{Code: "INV_001"}
	WalletNotFound          = &AppError{Code: "INV_002"}
	AccountAlreadyHasWallet = &AppError{Code: "INV_003"}
	InsufficientFunds       = &AppError{Code: "PAY_001"}
	InvalidAmount           = &AppError{Code: "PAY_002"}
	BalanceOverflow         = &AppError{Code: "PAY_003"}
)
