package ports

import (
	"context"
	"time"

	"fractional-share-registry/internal/core/domain"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

// SignatureService handles HMAC-SHA256 signing and verification for
// outbound webhook payloads.
type SignatureService interface {
	Sign(secretKey string, payload string) string
	Verify(secretKey string, payload string, signature string) bool
}

// HashService handles password hashing (Argon2id).
type HashService interface {
	Hash(password string) (string, error)
	Verify(password string, hash string) (bool, error)
}

// TokenService handles JWT token operations.
type TokenService interface {
	Generate(accountID uuid.UUID, username string) (string, time.Time, error)
	Validate(tokenString string) (*TokenClaims, error)
}

// TokenClaims holds the parsed JWT claims.
type TokenClaims struct {
	AccountID uuid.UUID
	Username  string
}

// PriceCache is the Redis read-through cache for per-share prices.
type PriceCache interface {
	// Get returns the cached price and whether it was present.
	Get(ctx context.Context, assetID int64) (int64, bool, error)
	Set(ctx context.Context, assetID int64, price int64, ttl time.Duration) error
	Invalidate(ctx context.Context, assetID int64) error
}

// DeliveryMarker deduplicates webhook deliveries across restarts.
type DeliveryMarker interface {
	// FirstDelivery atomically records the event id, returning true if this
	// is the first attempt and false if the event was already delivered.
	FirstDelivery(ctx context.Context, eventID string, ttl time.Duration) (bool, error)
}

// --- Ledger Ports ---

// ShareTransfer describes a single share movement between accounts.
// From may be domain.MintOrigin (issuance) and To may be domain.BurnAccount.
type ShareTransfer struct {
	From    uuid.UUID
	To      uuid.UUID
	AssetID int64
	Amount  int64
}

// ShareLedger moves shares inside an open database transaction.
// BatchTransfer applies every balance change before any hook runs, so a
// batch is observed by hooks in its final state.
type ShareLedger interface {
	Transfer(ctx context.Context, tx pgx.Tx, transfer ShareTransfer) error
	BatchTransfer(ctx context.Context, tx pgx.Tx, transfers []ShareTransfer) error
}

// TransferGate authorizes peer transfers. Issuance and burn legs are not
// gated; both real endpoints of a peer transfer must pass.
type TransferGate interface {
	Authorize(ctx context.Context, from, to uuid.UUID) error
}

// TransferHook runs after each individual transfer inside the same
// transaction. newFromBalance is the sender's balance after the move.
type TransferHook interface {
	AfterTransfer(ctx context.Context, tx pgx.Tx, transfer ShareTransfer, newFromBalance int64) error
}

// --- Service Ports (Business Logic) ---

// AssetSpec describes one asset to register.
type AssetSpec struct {
	PricePerShare   int64
	URI             string
	Metadata        []byte
	RoyaltyReceiver uuid.UUID
	RoyaltyRateBps  int32
}

// PurchaseItem is one (asset, amount) pair of a batch purchase.
type PurchaseItem struct {
	AssetID int64
	Amount  int64
}

// PurchaseRequest holds validated input for a batch purchase.
type PurchaseRequest struct {
	Items       []PurchaseItem
	PaymentSent int64
}

// PurchaseResult reports the settled amounts of a batch purchase.
type PurchaseResult struct {
	TotalCost int64
	Refunded  int64
	Items     []PurchaseItem
}

// TransferRequest holds validated input for a peer share transfer.
type TransferRequest struct {
	To      uuid.UUID
	AssetID int64
	Amount  int64
}

// PriceUpdate is one (asset, new price) pair of a batch reprice.
type PriceUpdate struct {
	AssetID int64
	Price   int64
}

// MarketplaceService defines the marketplace business logic. Every method
// runs atomically: any failure rolls back the entire call.
type MarketplaceService interface {
	RegisterAssets(ctx context.Context, actor uuid.UUID, specs []AssetSpec) ([]domain.Asset, error)
	PurchaseShares(ctx context.Context, buyer uuid.UUID, req PurchaseRequest) (*PurchaseResult, error)
	TransferShares(ctx context.Context, sender uuid.UUID, req TransferRequest) error
	SetPrices(ctx context.Context, actor uuid.UUID, updates []PriceUpdate) error
	SetWhitelisted(ctx context.Context, actor uuid.UUID, accountID uuid.UUID, whitelisted bool) error
	Withdraw(ctx context.Context, actor uuid.UUID) (int64, error)
}

// CollectionInfo summarizes the registry.
type CollectionInfo struct {
	Name            string
	URI             string
	TotalAssets     int64
	SharesPerAsset  int64
	TreasuryBalance int64
}

// Capabilities reports the fixed behaviors of this registry.
type Capabilities struct {
	SharesPerAsset   int64
	FixedSupply      bool
	PeerTransfers    bool
	WhitelistGated   bool
	Burnable         bool
	BatchedPurchase  bool
	RoyaltySemantics bool
}

// RegistryQueryService defines the read-side API.
type RegistryQueryService interface {
	AssetInfo(ctx context.Context, assetID int64) (*domain.Asset, error)
	PriceOf(ctx context.Context, assetID int64) (int64, error)
	BalanceOf(ctx context.Context, assetID int64, accountID uuid.UUID) (int64, error)
	HoldersOf(ctx context.Context, assetID int64) ([]domain.Holder, error)
	PortfolioOf(ctx context.Context, accountID uuid.UUID) ([]domain.PortfolioEntry, error)
	CollectionInfo(ctx context.Context) (*CollectionInfo, error)
	Capabilities() Capabilities
	WalletBalance(ctx context.Context, accountID uuid.UUID) (int64, error)
	RecentEvents(ctx context.Context, limit int) ([]domain.LedgerEvent, error)
	AssetEvents(ctx context.Context, assetID int64, limit int) ([]domain.LedgerEvent, error)
}

// PaymentChannel moves wallet funds as part of an open transaction.
// Collect debits an account into the treasury; Disburse pays out of it.
type PaymentChannel interface {
	Collect(ctx context.Context, tx pgx.Tx, from uuid.UUID, amount int64) error
	Disburse(ctx context.Context, tx pgx.Tx, to uuid.UUID, amount int64) error
}

// AuthService defines authentication business logic.
type AuthService interface {
	Register(ctx context.Context, username, password string) (*domain.Account, error)
	Login(ctx context.Context, username, password string) (string, time.Time, error) // token, expiry, error
}

// WalletService manages account wallet funding.
type WalletService interface {
	// Topup credits the account wallet and returns the new balance.
	Topup(ctx context.Context, accountID uuid.UUID, amount int64) (int64, error)
}

// EventNotifier delivers committed ledger events to the configured
// webhook endpoint asynchronously.
type EventNotifier interface {
	Enqueue(event *domain.LedgerEvent)
}
