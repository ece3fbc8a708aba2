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
			appErr:   New("MKT_002", "payment below cost", http.StatusPaymentRequired),
			expected: "[MKT_002] payment below cost",
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
	appErr := New("MKT_007", "test", http.StatusBadRequest)
	assert.Nil(t, appErr.Unwrap())
}

func TestCatalogErrors(t *testing.T) {
	tests := []struct {
		name       string
		err        *AppError
		code       string
		httpStatus int
	}{
		{"UnregisteredAsset", ErrUnregisteredAsset(7), "REG_001", 404},
		{"DuplicateAsset", ErrDuplicateAsset(7), "REG_002", 409},
		{"ZeroPrice", ErrZeroPrice(), "REG_003", 400},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.code, tt.err.Code)
			assert.Equal(t, tt.httpStatus, tt.err.HTTPStatus)
		})
	}
}

func TestMarketplaceErrors(t *testing.T) {
	tests := []struct {
		name       string
		err        *AppError
		code       string
		httpStatus int
	}{
		{"InsufficientSupply", ErrInsufficientSupply(1), "MKT_001", 422},
		{"InsufficientPayment", ErrInsufficientPayment(100, 50), "MKT_002", 402},
		{"InsufficientShares", ErrInsufficientShares(1), "MKT_003", 422},
		{"NotWhitelisted", ErrNotWhitelisted("receiver"), "MKT_004", 403},
		{"NothingToWithdraw", ErrNothingToWithdraw(), "MKT_005", 409},
		{"PaymentRejected", ErrPaymentRejected(fmt.Errorf("wallet empty")), "MKT_006", 402},
		{"BatchShape", ErrBatchShape("mismatched arrays"), "MKT_007", 400},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.code, tt.err.Code)
			assert.Equal(t, tt.httpStatus, tt.err.HTTPStatus)
		})
	}
}

func TestNotWhitelistedNamesTheSide(t *testing.T) {
	assert.Contains(t, ErrNotWhitelisted("sender").Message, "sender")
	assert.Contains(t, ErrNotWhitelisted("receiver").Message, "receiver")
}

func TestInsufficientPaymentReportsAmounts(t *testing.T) {
	err := ErrInsufficientPayment(30_000, 29_500)
	assert.Contains(t, err.Message, "30000")
	assert.Contains(t, err.Message, "29500")
}
