package postgres

import (
	"context"
	"fmt"

	"fractional-share-registry/internal/core/domain"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

// HolderRepo implements ports.HolderRepository.
type HolderRepo struct {
	pool Pool
}

// NewHolderRepo creates a new HolderRepo.
func NewHolderRepo(pool Pool) *HolderRepo {
	return &HolderRepo{pool: pool}
}

// Add records an account as holder of an asset. Adding an existing holder
// is a no-op.
func (r *HolderRepo) Add(ctx context.Context, tx pgx.Tx, assetID int64, accountID uuid.UUID) error {
	query := `INSERT INTO asset_holders (asset_id, account_id)
		VALUES ($1, $2)
		ON CONFLICT (asset_id, account_id) DO NOTHING`

	_, err := tx.Exec(ctx, query, assetID, accountID)
	if err != nil {
		return fmt.Errorf("add asset holder: %w", err)
	}
	return nil
}

// Remove drops an account from the holders of an asset. Removing an
// absent holder is a no-op.
func (r *HolderRepo) Remove(ctx context.Context, tx pgx.Tx, assetID int64, accountID uuid.UUID) error {
	query := `DELETE FROM asset_holders WHERE asset_id = $1 AND account_id = $2`

	_, err := tx.Exec(ctx, query, assetID, accountID)
	if err != nil {
		return fmt.Errorf("remove asset holder: %w", err)
	}
	return nil
}

// ListByAsset returns the holders of an asset with their live balances,
// skipping the excluded accounts.
func (r *HolderRepo) ListByAsset(ctx context.Context, assetID int64, exclude []uuid.UUID) ([]domain.Holder, error) {
	query := `SELECT h.account_id, COALESCE(b.balance, 0)
		FROM asset_holders h
		LEFT JOIN share_balances b ON b.asset_id = h.asset_id AND b.account_id = h.account_id
		WHERE h.asset_id = $1 AND h.account_id != ALL($2)
		ORDER BY h.account_id`

	rows, err := r.pool.Query(ctx, query, assetID, exclude)
	if err != nil {
		return nil, fmt.Errorf("list holders by asset: %w", err)
	}
	defer rows.Close()

	var holders []domain.Holder
	for rows.Next() {
		var h domain.Holder
		if err := rows.Scan(&h.AccountID, &h.Balance); err != nil {
			return nil, fmt.Errorf("scan holder row: %w", err)
		}
		holders = append(holders, h)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate holder rows: %w", err)
	}
	return holders, nil
}
