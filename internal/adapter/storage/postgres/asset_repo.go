package postgres

import (
	"context"
	"errors"
	"fmt"

	"fractional-share-registry/internal/core/domain"

	"github.com/jackc/pgx/v5"
)

// AssetRepo implements ports.AssetRepository.
type AssetRepo struct {
	pool Pool
}

// NewAssetRepo creates a new AssetRepo.
func NewAssetRepo(pool Pool) *AssetRepo {
	return &AssetRepo{pool: pool}
}

// Create inserts a new asset and assigns its sequential id from the
// database sequence. Must run inside the registration transaction.
func (r *AssetRepo) Create(ctx context.Context, tx pgx.Tx, a *domain.Asset) error {
	query := `INSERT INTO assets (price_per_share, metadata, uri, royalty_receiver, royalty_rate_bps, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id`

	err := tx.QueryRow(ctx, query,
		a.PricePerShare, a.Metadata, a.URI,
		a.RoyaltyReceiver, a.RoyaltyRateBps, a.CreatedAt, a.UpdatedAt,
	).Scan(&a.ID)
	if err != nil {
		return fmt.Errorf("insert asset: %w", err)
	}
	return nil
}

// GetByID fetches an asset by its id (without locking).
func (r *AssetRepo) GetByID(ctx context.Context, id int64) (*domain.Asset, error) {
	query := `SELECT id, price_per_share, metadata, uri, royalty_receiver, royalty_rate_bps, created_at, updated_at
		FROM assets WHERE id = $1`

	a := &domain.Asset{}
	err := r.pool.QueryRow(ctx, query, id).Scan(
		&a.ID, &a.PricePerShare, &a.Metadata, &a.URI,
		&a.RoyaltyReceiver, &a.RoyaltyRateBps, &a.CreatedAt, &a.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get asset by id: %w", err)
	}
	return a, nil
}

// GetByIDForUpdate fetches an asset with pessimistic locking.
// This MUST be called within a transaction.
func (r *AssetRepo) GetByIDForUpdate(ctx context.Context, tx pgx.Tx, id int64) (*domain.Asset, error) {
	query := `SELECT id, price_per_share, metadata, uri, royalty_receiver, royalty_rate_bps, created_at, updated_at
		FROM assets WHERE id = $1 FOR UPDATE`

	a := &domain.Asset{}
	err := tx.QueryRow(ctx, query, id).Scan(
		&a.ID, &a.PricePerShare, &a.Metadata, &a.URI,
		&a.RoyaltyReceiver, &a.RoyaltyRateBps, &a.CreatedAt, &a.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get asset for update: %w", err)
	}
	return a, nil
}

// UpdatePrice sets a new per-share price within a transaction.
func (r *AssetRepo) UpdatePrice(ctx context.Context, tx pgx.Tx, id int64, pricePerShare int64) error {
	query := `UPDATE assets SET price_per_share = $1, updated_at = NOW() WHERE id = $2`

	tag, err := tx.Exec(ctx, query, pricePerShare, id)
	if err != nil {
		return fmt.Errorf("update asset price: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("asset not found: %d", id)
	}
	return nil
}

// Count returns the number of registered assets.
func (r *AssetRepo) Count(ctx context.Context) (int64, error) {
	var n int64
	err := r.pool.QueryRow(ctx, `SELECT COUNT(*) FROM assets`).Scan(&n)
	if err != nil {
		return 0, fmt.Errorf("count assets: %w", err)
	}
	return n, nil
}
