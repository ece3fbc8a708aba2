package postgres

import (
	"context"
	"fmt"

	"fractional-share-registry/internal/core/domain"

	"github.com/jackc/pgx/v5"
)

// EventRepo implements ports.EventRepository over the append-only
// ledger_events table.
type EventRepo struct {
	pool Pool
}

// NewEventRepo creates a new EventRepo.
func NewEventRepo(pool Pool) *EventRepo {
	return &EventRepo{pool: pool}
}

// Append writes an event inside the transaction that produced it, so the
// log and the state change commit or roll back together.
func (r *EventRepo) Append(ctx context.Context, tx pgx.Tx, e *domain.LedgerEvent) error {
	query := `INSERT INTO ledger_events (id, event_type, asset_id, account_id, amount, payload, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`

	_, err := tx.Exec(ctx, query,
		e.ID, e.Type, e.AssetID, e.AccountID, e.Amount, e.Payload, e.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("append ledger event: %w", err)
	}
	return nil
}

// ListByAsset returns the newest events of one asset.
func (r *EventRepo) ListByAsset(ctx context.Context, assetID int64, limit int) ([]domain.LedgerEvent, error) {
	query := `SELECT id, event_type, asset_id, account_id, amount, payload, created_at
		FROM ledger_events WHERE asset_id = $1
		ORDER BY created_at DESC LIMIT $2`

	rows, err := r.pool.Query(ctx, query, assetID, limit)
	if err != nil {
		return nil, fmt.Errorf("list events by asset: %w", err)
	}
	defer rows.Close()

	return scanEvents(rows)
}

// ListRecent returns the newest events across all assets.
func (r *EventRepo) ListRecent(ctx context.Context, limit int) ([]domain.LedgerEvent, error) {
	query := `SELECT id, event_type, asset_id, account_id, amount, payload, created_at
		FROM ledger_events
		ORDER BY created_at DESC LIMIT $1`

	rows, err := r.pool.Query(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("list recent events: %w", err)
	}
	defer rows.Close()

	return scanEvents(rows)
}

func scanEvents(rows pgx.Rows) ([]domain.LedgerEvent, error) {
	var events []domain.LedgerEvent
	for rows.Next() {
		var e domain.LedgerEvent
		if err := rows.Scan(&e.ID, &e.Type, &e.AssetID, &e.AccountID, &e.Amount, &e.Payload, &e.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan event row: %w", err)
		}
		events = append(events, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate event rows: %w", err)
	}
	return events, nil
}
