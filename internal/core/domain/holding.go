package domain

import (
	"github.com/google/uuid"
)

// Holder pairs an account with its current share balance of one asset.
// Produced by holder-set queries; carries no ordering guarantee.
type Holder struct {
	AccountID uuid.UUID `json:"account_id"`
	Balance   int64     `json:"balance"`
}

// PortfolioEntry is one row of an account's purchase history: an asset the
// account bought at least once, in first-purchase order. Entries are never
// removed, so Balance can legitimately be zero for a divested asset.
type PortfolioEntry struct {
	AssetID  int64 `json:"asset_id"`
	Position int32 `json:"-"`
	Balance  int64 `json:"balance"` // Live balance, read at query time
}
