package postgres

import (
	"context"
	"fmt"

	"fractional-share-registry/internal/core/domain"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

// PortfolioRepo implements ports.PortfolioRepository. Entries are
// append-only: a sold-out position stays in the portfolio with a zero
// live balance.
type PortfolioRepo struct {
	pool Pool
}

// NewPortfolioRepo creates a new PortfolioRepo.
func NewPortfolioRepo(pool Pool) *PortfolioRepo {
	return &PortfolioRepo{pool: pool}
}

// RecordPurchase appends an asset to the account's portfolio. Buying the
// same asset again does not create a second entry.
func (r *PortfolioRepo) RecordPurchase(ctx context.Context, tx pgx.Tx, accountID uuid.UUID, assetID int64) error {
	query := `INSERT INTO portfolio_entries (account_id, asset_id)
		VALUES ($1, $2)
		ON CONFLICT (account_id, asset_id) DO NOTHING`

	_, err := tx.Exec(ctx, query, accountID, assetID)
	if err != nil {
		return fmt.Errorf("record portfolio purchase: %w", err)
	}
	return nil
}

// ListByAccount returns the account's portfolio in purchase order, with
// balances resolved at read time.
func (r *PortfolioRepo) ListByAccount(ctx context.Context, accountID uuid.UUID) ([]domain.PortfolioEntry, error) {
	query := `SELECT p.asset_id, p.position, COALESCE(b.balance, 0)
		FROM portfolio_entries p
		LEFT JOIN share_balances b ON b.asset_id = p.asset_id AND b.account_id = p.account_id
		WHERE p.account_id = $1
		ORDER BY p.position`

	rows, err := r.pool.Query(ctx, query, accountID)
	if err != nil {
		return nil, fmt.Errorf("list portfolio by account: %w", err)
	}
	defer rows.Close()

	var entries []domain.PortfolioEntry
	for rows.Next() {
		var e domain.PortfolioEntry
		if err := rows.Scan(&e.AssetID, &e.Position, &e.Balance); err != nil {
			return nil, fmt.Errorf("scan portfolio row: %w", err)
		}
		entries = append(entries, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate portfolio rows: %w", err)
	}
	return entries, nil
}
