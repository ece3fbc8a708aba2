package service

import (
	"context"
	"fmt"

	"fractional-share-registry/internal/core/ports"
	"fractional-share-registry/pkg/apperror"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// WalletServiceImpl implements ports.WalletService.
type WalletServiceImpl struct {
	accountRepo ports.AccountRepository
	transactor  ports.DBTransactor
	log         zerolog.Logger
}

// NewWalletService creates a new WalletServiceImpl.
func NewWalletService(accountRepo ports.AccountRepository, transactor ports.DBTransactor, log zerolog.Logger) *WalletServiceImpl {
	return &WalletServiceImpl{
		accountRepo: accountRepo,
		transactor:  transactor,
		log:         log,
	}
}

// Topup credits the account wallet and returns the new balance.
func (s *WalletServiceImpl) Topup(ctx context.Context, accountID uuid.UUID, amount int64) (int64, error) {
	if amount <= 0 {
		return 0, apperror.Validation("topup amount must be positive")
	}

	dbTx, err := s.transactor.Begin(ctx)
	if err != nil {
		return 0, apperror.InternalError(fmt.Errorf("begin tx: %w", err))
	}
	defer dbTx.Rollback(ctx) //nolint:errcheck

	balance, err := s.accountRepo.GetWalletBalanceForUpdate(ctx, dbTx, accountID)
	if err != nil {
		return 0, apperror.ErrNotFound("account")
	}

	if err := s.accountRepo.CreditWallet(ctx, dbTx, accountID, amount); err != nil {
		return 0, apperror.InternalError(fmt.Errorf("credit wallet: %w", err))
	}

	if err := dbTx.Commit(ctx); err != nil {
		return 0, apperror.InternalError(fmt.Errorf("commit tx: %w", err))
	}

	newBalance := balance + amount
	s.log.Info().
		Str("account_id", accountID.String()).
		Int64("amount", amount).
		Int64("new_balance", newBalance).
		Msg("wallet topup processed")

	return newBalance, nil
}
