package service

import (
	"context"
	"testing"

	"fractional-share-registry/internal/core/domain"
	"fractional-share-registry/internal/core/ports"
	"fractional-share-registry/internal/core/ports/mocks"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestHolderIndexHook_ReceiverJoinsIndex(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	holderRepo := mocks.NewMockHolderRepository(ctrl)
	hook := NewHolderIndexHook(holderRepo)

	sender := uuid.New()
	receiver := uuid.New()
	holderRepo.EXPECT().Add(gomock.Any(), gomock.Any(), int64(5), receiver).Return(nil)

	err := hook.AfterTransfer(context.Background(), &mockTx{}, ports.ShareTransfer{
		From: sender, To: receiver, AssetID: 5, Amount: 10,
	}, 90)

	require.NoError(t, err)
}

func TestHolderIndexHook_EmptiedSenderLeavesIndex(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	holderRepo := mocks.NewMockHolderRepository(ctrl)
	hook := NewHolderIndexHook(holderRepo)

	sender := uuid.New()
	receiver := uuid.New()
	holderRepo.EXPECT().Add(gomock.Any(), gomock.Any(), int64(5), receiver).Return(nil)
	holderRepo.EXPECT().Remove(gomock.Any(), gomock.Any(), int64(5), sender).Return(nil)

	err := hook.AfterTransfer(context.Background(), &mockTx{}, ports.ShareTransfer{
		From: sender, To: receiver, AssetID: 5, Amount: 10,
	}, 0)

	require.NoError(t, err)
}

func TestHolderIndexHook_BurnAccountNeverIndexed(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	holderRepo := mocks.NewMockHolderRepository(ctrl)
	hook := NewHolderIndexHook(holderRepo)

	sender := uuid.New()
	// Only the emptied sender leaves; the burn account never joins.
	holderRepo.EXPECT().Remove(gomock.Any(), gomock.Any(), int64(5), sender).Return(nil)

	err := hook.AfterTransfer(context.Background(), &mockTx{}, ports.ShareTransfer{
		From: sender, To: domain.BurnAccount, AssetID: 5, Amount: 10,
	}, 0)

	require.NoError(t, err)
}

func TestHolderIndexHook_IssuanceNeverDropsMintOrigin(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	holderRepo := mocks.NewMockHolderRepository(ctrl)
	hook := NewHolderIndexHook(holderRepo)

	operator := uuid.New()
	holderRepo.EXPECT().Add(gomock.Any(), gomock.Any(), int64(5), operator).Return(nil)

	err := hook.AfterTransfer(context.Background(), &mockTx{}, ports.ShareTransfer{
		From: domain.MintOrigin, To: operator, AssetID: 5, Amount: domain.TotalShares,
	}, 0)

	require.NoError(t, err)
}
