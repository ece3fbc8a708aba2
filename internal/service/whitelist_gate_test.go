package service

import (
	"context"
	"testing"

	"fractional-share-registry/internal/core/domain"
	"fractional-share-registry/internal/core/ports/mocks"
	"fractional-share-registry/pkg/apperror"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestWhitelistGate_Authorize_BothWhitelisted(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	accountRepo := mocks.NewMockAccountRepository(ctrl)
	gate := NewWhitelistGate(accountRepo)

	from := uuid.New()
	to := uuid.New()
	accountRepo.EXPECT().GetByID(gomock.Any(), from).
		Return(&domain.Account{ID: from, Whitelisted: true}, nil)
	accountRepo.EXPECT().GetByID(gomock.Any(), to).
		Return(&domain.Account{ID: to, Whitelisted: true}, nil)

	require.NoError(t, gate.Authorize(context.Background(), from, to))
}

func TestWhitelistGate_Authorize_SenderNotWhitelisted(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	accountRepo := mocks.NewMockAccountRepository(ctrl)
	gate := NewWhitelistGate(accountRepo)

	from := uuid.New()
	accountRepo.EXPECT().GetByID(gomock.Any(), from).
		Return(&domain.Account{ID: from, Whitelisted: false}, nil)

	err := gate.Authorize(context.Background(), from, uuid.New())

	var appErr *apperror.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "MKT_004", appErr.Code)
	assert.Contains(t, appErr.Message, "sender")
}

func TestWhitelistGate_Authorize_ReceiverNotWhitelisted(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	accountRepo := mocks.NewMockAccountRepository(ctrl)
	gate := NewWhitelistGate(accountRepo)

	from := uuid.New()
	to := uuid.New()
	accountRepo.EXPECT().GetByID(gomock.Any(), from).
		Return(&domain.Account{ID: from, Whitelisted: true}, nil)
	accountRepo.EXPECT().GetByID(gomock.Any(), to).
		Return(&domain.Account{ID: to, Whitelisted: false}, nil)

	err := gate.Authorize(context.Background(), from, to)

	var appErr *apperror.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "MKT_004", appErr.Code)
	assert.Contains(t, appErr.Message, "receiver")
}

func TestWhitelistGate_Authorize_UnknownReceiver(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	accountRepo := mocks.NewMockAccountRepository(ctrl)
	gate := NewWhitelistGate(accountRepo)

	from := uuid.New()
	to := uuid.New()
	accountRepo.EXPECT().GetByID(gomock.Any(), from).
		Return(&domain.Account{ID: from, Whitelisted: true}, nil)
	accountRepo.EXPECT().GetByID(gomock.Any(), to).Return(nil, nil)

	err := gate.Authorize(context.Background(), from, to)

	var appErr *apperror.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "MKT_004", appErr.Code)
	assert.Contains(t, appErr.Message, "receiver")
}
