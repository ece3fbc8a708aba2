package domain

import (
	"time"

	"github.com/google/uuid"
)

// TotalShares is the fixed share supply of every asset: 10,000 shares, each
// representing 0.01% ownership. Supply is minted once at registration and is
// never reissued, so per asset the share balances always sum to this value.
const TotalShares int64 = 10_000

// Asset is a registered asset in the catalog. IDs are assigned sequentially
// and never reused; an asset is never removed once registered.
//
// PricePerShare is always positive for a registered asset. A price of zero is
// reserved as the "does not exist" sentinel in price queries, which is why
// registering or repricing an asset at zero is rejected outright.
type Asset struct {
	ID              int64     `json:"id"`
	PricePerShare   int64     `json:"price_per_share"` // Smallest currency unit
	Metadata        []byte    `json:"-"`               // Opaque payload, stored as-is
	URI             string    `json:"uri"`
	RoyaltyReceiver uuid.UUID `json:"royalty_receiver"`
	RoyaltyRateBps  int32     `json:"royalty_rate_bps"` // Basis points, pass-through attribute
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

// PriceSentinel is the price value reported for an unregistered asset id.
const PriceSentinel int64 = 0
