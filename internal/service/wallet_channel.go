package service

import (
	"context"
	"fmt"

	"fractional-share-registry/internal/core/ports"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

// WalletChannel implements ports.PaymentChannel over account wallets and
// the treasury. Both legs of a move run in the caller's transaction.
type WalletChannel struct {
	accountRepo  ports.AccountRepository
	treasuryRepo ports.TreasuryRepository
}

// NewWalletChannel creates a new WalletChannel.
func NewWalletChannel(accountRepo ports.AccountRepository, treasuryRepo ports.TreasuryRepository) *WalletChannel {
	return &WalletChannel{
		accountRepo:  accountRepo,
		treasuryRepo: treasuryRepo,
	}
}

// Collect debits an account wallet into the treasury.
func (c *WalletChannel) Collect(ctx context.Context, tx pgx.Tx, from uuid.UUID, amount int64) error {
	if err := c.accountRepo.DebitWallet(ctx, tx, from, amount); err != nil {
		return fmt.Errorf("collect from wallet: %w", err)
	}
	if err := c.treasuryRepo.Add(ctx, tx, amount); err != nil {
		return fmt.Errorf("credit treasury: %w", err)
	}
	return nil
}

// Disburse pays out of the treasury into an account wallet.
func (c *WalletChannel) Disburse(ctx context.Context, tx pgx.Tx, to uuid.UUID, amount int64) error {
	if err := c.treasuryRepo.Add(ctx, tx, -amount); err != nil {
		return fmt.Errorf("debit treasury: %w", err)
	}
	if err := c.accountRepo.CreditWallet(ctx, tx, to, amount); err != nil {
		return fmt.Errorf("disburse to wallet: %w", err)
	}
	return nil
}
