package apperror

import (
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

// ---- Input Validation (VAL) ----
// All validation errors are detected before any node RPC is issued.

func ErrInvalidWalletName(name string) *AppError {
	return New("VAL_001", fmt.Sprintf("Invalid wallet name %q", name), http.StatusBadRequest)
}

func ErrInvalidAddress() *AppError {
	return New("VAL_002", "Invalid Bitcoin address", http.StatusBadRequest)
}

func ErrInvalidAddressNetwork(network string) *AppError {
	return New("VAL_003", fmt.Sprintf("Address is not valid for the %s network", network), http.StatusBadRequest)
}

func ErrInvalidAmount() *AppError {
	return New("VAL_004", "Invalid amount", http.StatusBadRequest)
}

// ---- Node Gateway (GW) ----

func ErrGatewayUnavailable(err error) *AppError {
	return Wrap("GW_001", "Bitcoin node unreachable", http.StatusBadGateway, err)
}

func ErrWalletCreationFailed(err error) *AppError {
	return Wrap("GW_002", "Failed to create wallet", http.StatusInternalServerError, err)
}

func ErrWalletLoadFailed(err error) *AppError {
	return Wrap("GW_003", "Failed to load wallet", http.StatusInternalServerError, err)
}

func ErrAddressGenerationFailed(err error) *AppError {
	return Wrap("GW_004", "Failed to generate new address", http.StatusInternalServerError, err)
}

func ErrWalletNotFound(name string) *AppError {
	return New("GW_005", fmt.Sprintf("Wallet %q not found", name), http.StatusNotFound)
}

func ErrTransferFailed(err error) *AppError {
	return Wrap("GW_006", "Transaction failed", http.StatusInternalServerError, err)
}

// ---- Rate Limiting (RATE) ----

func ErrRateLimitExceeded() *AppError {
	return New("RATE_001", "Rate limit exceeded", http.StatusTooManyRequests)
}

// ---- System (SYS) ----

// InternalError wraps an unexpected failure as a SYS_001 error.
func InternalError(err error) *AppError {
	return Wrap("SYS_001", "Internal server error", http.StatusInternalServerError, err)
}

// Validation returns a generic bad-request error for malformed bodies.
func Validation(message string) *AppError {
	return New("VAL_000", message, http.StatusBadRequest)
}
