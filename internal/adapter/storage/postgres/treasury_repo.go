package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
)

// TreasuryRepo implements ports.TreasuryRepository over the single-row
// treasury table that accumulates sale proceeds.
type TreasuryRepo struct {
	pool Pool
}

// NewTreasuryRepo creates a new TreasuryRepo.
func NewTreasuryRepo(pool Pool) *TreasuryRepo {
	return &TreasuryRepo{pool: pool}
}

// Balance reads the treasury balance without locking.
func (r *TreasuryRepo) Balance(ctx context.Context) (int64, error) {
	var balance int64
	err := r.pool.QueryRow(ctx, `SELECT balance FROM treasury WHERE id = 1`).Scan(&balance)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return 0, nil
		}
		return 0, fmt.Errorf("get treasury balance: %w", err)
	}
	return balance, nil
}

// BalanceForUpdate reads the treasury balance with pessimistic locking.
// This MUST be called within a transaction.
func (r *TreasuryRepo) BalanceForUpdate(ctx context.Context, tx pgx.Tx) (int64, error) {
	var balance int64
	err := tx.QueryRow(ctx, `SELECT balance FROM treasury WHERE id = 1 FOR UPDATE`).Scan(&balance)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return 0, nil
		}
		return 0, fmt.Errorf("get treasury balance for update: %w", err)
	}
	return balance, nil
}

// Add applies a signed delta to the treasury within a transaction.
func (r *TreasuryRepo) Add(ctx context.Context, tx pgx.Tx, delta int64) error {
	query := `UPDATE treasury SET balance = balance + $1, updated_at = NOW() WHERE id = 1`

	tag, err := tx.Exec(ctx, query, delta)
	if err != nil {
		return fmt.Errorf("apply treasury delta: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("treasury row missing")
	}
	return nil
}
