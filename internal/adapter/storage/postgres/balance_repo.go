package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

// BalanceRepo implements ports.BalanceRepository over the share_balances
// table. A missing row reads as a zero balance.
type BalanceRepo struct {
	pool Pool
}

// NewBalanceRepo creates a new BalanceRepo.
func NewBalanceRepo(pool Pool) *BalanceRepo {
	return &BalanceRepo{pool: pool}
}

// Get reads a share balance without locking. Missing rows read as zero.
func (r *BalanceRepo) Get(ctx context.Context, assetID int64, accountID uuid.UUID) (int64, error) {
	query := `SELECT balance FROM share_balances WHERE asset_id = $1 AND account_id = $2`

	var balance int64
	err := r.pool.QueryRow(ctx, query, assetID, accountID).Scan(&balance)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return 0, nil
		}
		return 0, fmt.Errorf("get share balance: %w", err)
	}
	return balance, nil
}

// GetForUpdate reads a share balance with pessimistic locking.
// This MUST be called within a transaction. Missing rows read as zero.
func (r *BalanceRepo) GetForUpdate(ctx context.Context, tx pgx.Tx, assetID int64, accountID uuid.UUID) (int64, error) {
	query := `SELECT balance FROM share_balances WHERE asset_id = $1 AND account_id = $2 FOR UPDATE`

	var balance int64
	err := tx.QueryRow(ctx, query, assetID, accountID).Scan(&balance)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return 0, nil
		}
		return 0, fmt.Errorf("get share balance for update: %w", err)
	}
	return balance, nil
}

// Add applies a signed delta to a balance, creating the row when absent,
// and returns the resulting balance. The check constraint on the table
// rejects negative results.
func (r *BalanceRepo) Add(ctx context.Context, tx pgx.Tx, assetID int64, accountID uuid.UUID, delta int64) (int64, error) {
	query := `INSERT INTO share_balances (asset_id, account_id, balance)
		VALUES ($1, $2, $3)
		ON CONFLICT (asset_id, account_id)
		DO UPDATE SET balance = share_balances.balance + $3
		RETURNING balance`

	var balance int64
	err := tx.QueryRow(ctx, query, assetID, accountID, delta).Scan(&balance)
	if err != nil {
		return 0, fmt.Errorf("apply balance delta: %w", err)
	}
	return balance, nil
}

// SumByAsset totals all balances of one asset, sentinel rows included.
func (r *BalanceRepo) SumByAsset(ctx context.Context, assetID int64) (int64, error) {
	query := `SELECT COALESCE(SUM(balance), 0) FROM share_balances WHERE asset_id = $1`

	var total int64
	err := r.pool.QueryRow(ctx, query, assetID).Scan(&total)
	if err != nil {
		return 0, fmt.Errorf("sum balances by asset: %w", err)
	}
	return total, nil
}
