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

// ---- Asset Catalog (REG) ----

func ErrUnregisteredAsset(assetID int64) *AppError {
	return New("REG_001", fmt.Sprintf("asset %d is not registered", assetID), http.StatusNotFound)
}

func ErrDuplicateAsset(assetID int64) *AppError {
	return New("REG_002", fmt.Sprintf("asset %d is already registered", assetID), http.StatusConflict)
}

func ErrZeroPrice() *AppError {
	return New("REG_003", "price per share must be positive; zero is reserved", http.StatusBadRequest)
}

// ---- Marketplace & Ledger (MKT) ----

func ErrInsufficientSupply(assetID int64) *AppError {
	return New("MKT_001", fmt.Sprintf("issuer holds too few shares of asset %d", assetID), http.StatusUnprocessableEntity)
}

func ErrInsufficientPayment(required, sent int64) *AppError {
	return New("MKT_002", fmt.Sprintf("payment %d below total cost %d", sent, required), http.StatusPaymentRequired)
}

func ErrInsufficientShares(assetID int64) *AppError {
	return New("MKT_003", fmt.Sprintf("sender balance too low for asset %d", assetID), http.StatusUnprocessableEntity)
}

// ErrNotWhitelisted names the side of a peer transfer that is not cleared.
func ErrNotWhitelisted(side string) *AppError {
	return New("MKT_004", fmt.Sprintf("%s account is not whitelisted", side), http.StatusForbidden)
}

func ErrNothingToWithdraw() *AppError {
	return New("MKT_005", "no funds available to withdraw", http.StatusConflict)
}

// ErrPaymentRejected covers any failure of the external payment channel:
// a rejected debit, refund, or withdrawal transfer aborts the whole call.
func ErrPaymentRejected(err error) *AppError {
	return Wrap("MKT_006", "payment channel rejected transfer", http.StatusPaymentRequired, err)
}

func ErrBatchShape(message string) *AppError {
	return New("MKT_007", message, http.StatusBadRequest)
}

// ---- Authentication & Authorization (AUTH) ----

func ErrInvalidCredentials() *AppError {
	return New("AUTH_001", "Invalid credentials", http.StatusUnauthorized)
}

func ErrUsernameExists() *AppError {
	return New("AUTH_002", "Username already exists", http.StatusConflict)
}

func ErrInvalidToken() *AppError {
	return New("AUTH_003", "Invalid or expired token", http.StatusUnauthorized)
}

func ErrNotOperator() *AppError {
	return New("AUTH_004", "operation restricted to the operator account", http.StatusForbidden)
}

func ErrNotFound(entity string) *AppError {
	return New("AUTH_005", fmt.Sprintf("%s not found", entity), http.StatusNotFound)
}

// ---- Rate Limiting (RATE) ----

func ErrRateLimitExceeded() *AppError {
	return New("RATE_001", "Rate limit exceeded", http.StatusTooManyRequests)
}

// ---- System & Infrastructure (SYS) ----

// InternalError wraps an internal error as a SYS_001 error.
func InternalError(err error) *AppError {
	return Wrap("SYS_001", "Internal server error", http.StatusInternalServerError, err)
}

// Validation returns a generic bad-request error for malformed input.
func Validation(message string) *AppError {
	return New("VAL_001", message, http.StatusBadRequest)
}
