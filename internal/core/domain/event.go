package domain

import (
	"time"

	"github.com/google/uuid"
)

// EventType identifies the kind of ledger event.
type EventType string

const (
	EventAssetsRegistered  EventType = "ASSETS_REGISTERED"  // One per registration batch
	EventSharesPurchased   EventType = "SHARES_PURCHASED"   // One per (asset, amount) pair
	EventSharesTransferred EventType = "SHARES_TRANSFERRED" // Peer transfer or burn
	EventPriceChanged      EventType = "PRICE_CHANGED"      // One per changed asset
	EventFundsWithdrawn    EventType = "FUNDS_WITHDRAWN"
)

// LedgerEvent is an immutable record of a state-changing operation, appended
// inside the same transaction as the mutation it describes.
type LedgerEvent struct {
	ID        uuid.UUID  `json:"id"`
	Type      EventType  `json:"type"`
	AssetID   *int64     `json:"asset_id,omitempty"`
	AccountID *uuid.UUID `json:"account_id,omitempty"`
	Amount    *int64     `json:"amount,omitempty"`
	Payload   []byte     `json:"payload,omitempty"` // JSON detail blob
	CreatedAt time.Time  `json:"created_at"`
}
