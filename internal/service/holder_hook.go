package service

import (
	"context"
	"fmt"

	"fractional-share-registry/internal/core/domain"
	"fractional-share-registry/internal/core/ports"

	"github.com/jackc/pgx/v5"
)

// HolderIndexHook implements ports.TransferHook. It keeps the holders
// index in step with every transfer: the receiver joins the index, and a
// sender whose balance reaches zero leaves it. Burned shares never make
// the burn account a holder.
type HolderIndexHook struct {
	holderRepo ports.HolderRepository
}

// NewHolderIndexHook creates a new HolderIndexHook.
func NewHolderIndexHook(holderRepo ports.HolderRepository) *HolderIndexHook {
	return &HolderIndexHook{holderRepo: holderRepo}
}

// AfterTransfer updates the holders index for one settled transfer.
func (h *HolderIndexHook) AfterTransfer(ctx context.Context, tx pgx.Tx, t ports.ShareTransfer, newFromBalance int64) error {
	if t.To != domain.BurnAccount {
		if err := h.holderRepo.Add(ctx, tx, t.AssetID, t.To); err != nil {
			return fmt.Errorf("index receiver as holder: %w", err)
		}
	}

	if t.From != domain.MintOrigin && newFromBalance == 0 {
		if err := h.holderRepo.Remove(ctx, tx, t.AssetID, t.From); err != nil {
			return fmt.Errorf("drop emptied holder: %w", err)
		}
	}

	return nil
}
