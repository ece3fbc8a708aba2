package service

import (
	"context"
	"fmt"

	"fractional-share-registry/internal/core/ports"
	"fractional-share-registry/pkg/apperror"

	"github.com/google/uuid"
)

// WhitelistGate implements ports.TransferGate. A peer transfer settles
// only when both endpoints are whitelisted accounts; the ledger never
// routes issuance or burn legs through the gate.
type WhitelistGate struct {
	accountRepo ports.AccountRepository
}

// NewWhitelistGate creates a new WhitelistGate.
func NewWhitelistGate(accountRepo ports.AccountRepository) *WhitelistGate {
	return &WhitelistGate{accountRepo: accountRepo}
}

// Authorize checks both sides of a peer transfer against the whitelist.
// The rejection names the side that failed.
func (g *WhitelistGate) Authorize(ctx context.Context, from, to uuid.UUID) error {
	if err := g.check(ctx, from, "sender"); err != nil {
		return err
	}
	return g.check(ctx, to, "receiver")
}

func (g *WhitelistGate) check(ctx context.Context, id uuid.UUID, side string) error {
	account, err := g.accountRepo.GetByID(ctx, id)
	if err != nil {
		return apperror.InternalError(fmt.Errorf("load %s account: %w", side, err))
	}
	if account == nil || !account.Whitelisted {
		return apperror.ErrNotWhitelisted(side)
	}
	return nil
}
