package ports

import (
	"context"

	"fractional-share-registry/internal/core/domain"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

// AccountRepository defines persistence operations for accounts.
// Methods accepting pgx.Tx are used inside transaction blocks for pessimistic locking.
type AccountRepository interface {
	Create(ctx context.Context, account *domain.Account) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Account, error)
	GetByUsername(ctx context.Context, username string) (*domain.Account, error)
	GetOperator(ctx context.Context) (*domain.Account, error)
	SetWhitelisted(ctx context.Context, id uuid.UUID, whitelisted bool) error
	GetWalletBalance(ctx context.Context, id uuid.UUID) (int64, error)
	GetWalletBalanceForUpdate(ctx context.Context, tx pgx.Tx, id uuid.UUID) (int64, error)
	DebitWallet(ctx context.Context, tx pgx.Tx, id uuid.UUID, amount int64) error
	CreditWallet(ctx context.Context, tx pgx.Tx, id uuid.UUID, amount int64) error
}

// AssetRepository defines persistence operations for registered assets.
// Create assigns the sequential asset id via the database.
type AssetRepository interface {
	Create(ctx context.Context, tx pgx.Tx, asset *domain.Asset) error
	GetByID(ctx context.Context, id int64) (*domain.Asset, error)
	GetByIDForUpdate(ctx context.Context, tx pgx.Tx, id int64) (*domain.Asset, error)
	UpdatePrice(ctx context.Context, tx pgx.Tx, id int64, pricePerShare int64) error
	Count(ctx context.Context) (int64, error)
}

// BalanceRepository tracks per-asset, per-account share balances.
// Add applies a signed delta (upsert) and returns the resulting balance.
type BalanceRepository interface {
	Get(ctx context.Context, assetID int64, accountID uuid.UUID) (int64, error)
	GetForUpdate(ctx context.Context, tx pgx.Tx, assetID int64, accountID uuid.UUID) (int64, error)
	Add(ctx context.Context, tx pgx.Tx, assetID int64, accountID uuid.UUID, delta int64) (int64, error)
	SumByAsset(ctx context.Context, assetID int64) (int64, error)
}

// HolderRepository maintains the holders index per asset.
// Add is idempotent: adding an existing holder is a no-op.
type HolderRepository interface {
	Add(ctx context.Context, tx pgx.Tx, assetID int64, accountID uuid.UUID) error
	Remove(ctx context.Context, tx pgx.Tx, assetID int64, accountID uuid.UUID) error
	ListByAsset(ctx context.Context, assetID int64, exclude []uuid.UUID) ([]domain.Holder, error)
}

// PortfolioRepository records which assets an account has ever purchased.
// Entries are never removed, even when the balance later drops to zero.
type PortfolioRepository interface {
	RecordPurchase(ctx context.Context, tx pgx.Tx, accountID uuid.UUID, assetID int64) error
	ListByAccount(ctx context.Context, accountID uuid.UUID) ([]domain.PortfolioEntry, error)
}

// TreasuryRepository manages the single accumulated-proceeds row.
type TreasuryRepository interface {
	Balance(ctx context.Context) (int64, error)
	BalanceForUpdate(ctx context.Context, tx pgx.Tx) (int64, error)
	Add(ctx context.Context, tx pgx.Tx, delta int64) error
}

// EventRepository appends and reads the ledger event log.
type EventRepository interface {
	Append(ctx context.Context, tx pgx.Tx, event *domain.LedgerEvent) error
	ListByAsset(ctx context.Context, assetID int64, limit int) ([]domain.LedgerEvent, error)
	ListRecent(ctx context.Context, limit int) ([]domain.LedgerEvent, error)
}

// DBTransactor provides database transaction management.
type DBTransactor interface {
	Begin(ctx context.Context) (pgx.Tx, error)
}
