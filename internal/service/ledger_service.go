package service

import (
	"context"
	"fmt"

	"fractional-share-registry/internal/core/domain"
	"fractional-share-registry/internal/core/ports"
	"fractional-share-registry/pkg/apperror"

	"github.com/jackc/pgx/v5"
	"github.com/rs/zerolog"
)

// LedgerServiceImpl implements ports.ShareLedger. It owns the balance
// moves themselves; the caller owns the surrounding transaction, so a
// failed batch rolls back with everything else in the call.
type LedgerServiceImpl struct {
	balanceRepo ports.BalanceRepository
	gate        ports.TransferGate
	hooks       []ports.TransferHook
	log         zerolog.Logger
}

// NewLedgerService creates a new LedgerServiceImpl.
func NewLedgerService(
	balanceRepo ports.BalanceRepository,
	gate ports.TransferGate,
	hooks []ports.TransferHook,
	log zerolog.Logger,
) *LedgerServiceImpl {
	return &LedgerServiceImpl{
		balanceRepo: balanceRepo,
		gate:        gate,
		hooks:       hooks,
		log:         log,
	}
}

// Transfer settles a single share movement and runs the hooks.
func (s *LedgerServiceImpl) Transfer(ctx context.Context, tx pgx.Tx, t ports.ShareTransfer) error {
	newFromBalance, err := s.move(ctx, tx, t)
	if err != nil {
		return err
	}
	return s.runHooks(ctx, tx, t, newFromBalance)
}

// BatchTransfer settles every movement before any hook runs, so hooks
// observe the batch in its final state.
func (s *LedgerServiceImpl) BatchTransfer(ctx context.Context, tx pgx.Tx, transfers []ports.ShareTransfer) error {
	fromBalances := make([]int64, len(transfers))
	for i, t := range transfers {
		newFromBalance, err := s.move(ctx, tx, t)
		if err != nil {
			return err
		}
		fromBalances[i] = newFromBalance
	}

	for i, t := range transfers {
		if err := s.runHooks(ctx, tx, t, fromBalances[i]); err != nil {
			return err
		}
	}
	return nil
}

// move applies one balance change pair and returns the sender's
// resulting balance. Issuance legs have no sender row to debit.
func (s *LedgerServiceImpl) move(ctx context.Context, tx pgx.Tx, t ports.ShareTransfer) (int64, error) {
	if t.Amount <= 0 {
		return 0, apperror.Validation("transfer amount must be positive")
	}
	if t.From == t.To {
		return 0, apperror.Validation("transfer endpoints must differ")
	}

	peer := !domain.IsSentinel(t.From) && !domain.IsSentinel(t.To)
	if peer {
		if err := s.gate.Authorize(ctx, t.From, t.To); err != nil {
			return 0, err
		}
	}

	var newFromBalance int64
	if t.From != domain.MintOrigin {
		balance, err := s.balanceRepo.GetForUpdate(ctx, tx, t.AssetID, t.From)
		if err != nil {
			return 0, apperror.InternalError(fmt.Errorf("lock sender balance: %w", err))
		}
		if balance < t.Amount {
			return 0, apperror.ErrInsufficientShares(t.AssetID)
		}

		newFromBalance, err = s.balanceRepo.Add(ctx, tx, t.AssetID, t.From, -t.Amount)
		if err != nil {
			return 0, apperror.InternalError(fmt.Errorf("debit sender balance: %w", err))
		}
	}

	if _, err := s.balanceRepo.Add(ctx, tx, t.AssetID, t.To, t.Amount); err != nil {
		return 0, apperror.InternalError(fmt.Errorf("credit receiver balance: %w", err))
	}

	s.log.Debug().
		Str("from", t.From.String()).
		Str("to", t.To.String()).
		Int64("asset_id", t.AssetID).
		Int64("amount", t.Amount).
		Msg("shares moved")

	return newFromBalance, nil
}

func (s *LedgerServiceImpl) runHooks(ctx context.Context, tx pgx.Tx, t ports.ShareTransfer, newFromBalance int64) error {
	for _, hook := range s.hooks {
		if err := hook.AfterTransfer(ctx, tx, t, newFromBalance); err != nil {
			return apperror.InternalError(fmt.Errorf("transfer hook: %w", err))
		}
	}
	return nil
}
