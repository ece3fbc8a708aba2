package domain

import (
	"time"

	"github.com/google/uuid"
)

// MintOrigin is the sentinel "from" account for issuance transfers.
// Shares transferred from it are newly minted supply and bypass both the
// balance check and the whitelist gate.
var MintOrigin = uuid.Nil

// BurnAccount is the sentinel destination for permanent share removal.
// Transfers to it bypass the whitelist gate and never register a holder.
var BurnAccount = uuid.MustParse("ffffffff-ffff-ffff-ffff-ffffffffffff")

// IsSentinel reports whether id is one of the distinguished non-user accounts.
func IsSentinel(id uuid.UUID) bool {
	return id == MintOrigin || id == BurnAccount
}

// Account represents a registered user of the registry. The operator account
// is the privileged identity: it issues assets, holds minted supply, and is
// the only account allowed to change prices, toggle the whitelist, or
// withdraw accumulated revenue.
type Account struct {
	ID            uuid.UUID `json:"id"`
	Username      string    `json:"username"`
	PasswordHash  string    `json:"-"` // Never expose
	WalletBalance int64     `json:"wallet_balance"` // Native currency, smallest unit
	Whitelisted   bool      `json:"whitelisted"`
	IsOperator    bool      `json:"is_operator"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}
