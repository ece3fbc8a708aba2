package dto

// RegisterRequest is the request body for account registration.
type RegisterRequest struct {
	Username string `json:"username" binding:"required,min=3,max=50,safe_id"`
	Password string `json:"password" binding:"required,min=8,max=128"`
}

// LoginRequest is the request body for account login.
type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// RegisterResponse is the response body for successful registration.
type RegisterResponse struct {
	AccountID   string `json:"account_id"`
	Username    string `json:"username"`
	Whitelisted bool   `json:"whitelisted"`
}

// LoginResponse is the response body for successful login.
type LoginResponse struct {
	Token  string `json:"token"`
	Expiry int64  `json:"expiry"` // Unix timestamp
}

// TopupRequest is the request body for wallet topup.
type TopupRequest struct {
	Amount int64 `json:"amount" binding:"required,gt=0"`
}

// WalletBalanceResponse is the response for a wallet balance query.
type WalletBalanceResponse struct {
	Balance int64 `json:"balance"`
}

// AssetSpecRequest describes one asset in a registration batch.
type AssetSpecRequest struct {
	PricePerShare   int64   `json:"price_per_share" binding:"required,gt=0"`
	URI             string  `json:"uri" binding:"omitempty,max=512,safe_url"`
	Metadata        string  `json:"metadata,omitempty"`
	RoyaltyReceiver *string `json:"royalty_receiver,omitempty" binding:"omitempty,uuid"`
	RoyaltyRateBps  int32   `json:"royalty_rate_bps" binding:"gte=0,lte=10000"`
}

// RegisterAssetsRequest is the request body for batch asset registration.
type RegisterAssetsRequest struct {
	Assets []AssetSpecRequest `json:"assets" binding:"required,min=1,max=100,dive"`
}

// AssetResponse is the response body for a registered asset.
type AssetResponse struct {
	ID              int64  `json:"id"`
	PricePerShare   int64  `json:"price_per_share"`
	URI             string `json:"uri,omitempty"`
	RoyaltyReceiver string `json:"royalty_receiver,omitempty"`
	RoyaltyRateBps  int32  `json:"royalty_rate_bps"`
	CreatedAt       string `json:"created_at"`
}

// PurchaseItemRequest is one (asset, amount) pair of a batch purchase.
type PurchaseItemRequest struct {
	AssetID int64 `json:"asset_id" binding:"required,gt=0"`
	Amount  int64 `json:"amount" binding:"required,gt=0"`
}

// PurchaseRequest is the request body for a batch purchase.
type PurchaseRequest struct {
	Items       []PurchaseItemRequest `json:"items" binding:"required,min=1,max=100,dive"`
	PaymentSent int64                 `json:"payment_sent" binding:"gte=0"`
}

// PurchaseItemResponse echoes one settled pair.
type PurchaseItemResponse struct {
	AssetID int64 `json:"asset_id"`
	Amount  int64 `json:"amount"`
}

// PurchaseResponse reports the settled amounts of a batch purchase.
type PurchaseResponse struct {
	TotalCost int64                  `json:"total_cost"`
	Refunded  int64                  `json:"refunded"`
	Items     []PurchaseItemResponse `json:"items"`
}

// TransferRequest is the request body for a peer transfer or burn.
type TransferRequest struct {
	To      string `json:"to" binding:"required,uuid"`
	AssetID int64  `json:"asset_id" binding:"required,gt=0"`
	Amount  int64  `json:"amount" binding:"required,gt=0"`
}

// PriceUpdateRequest is one (asset, new price) pair of a batch reprice.
type PriceUpdateRequest struct {
	AssetID int64 `json:"asset_id" binding:"required,gt=0"`
	Price   int64 `json:"price" binding:"required,gt=0"`
}

// SetPricesRequest is the request body for a batch price update.
type SetPricesRequest struct {
	Updates []PriceUpdateRequest `json:"updates" binding:"required,min=1,max=100,dive"`
}

// WhitelistRequest is the request body for toggling an account's
// whitelist flag.
type WhitelistRequest struct {
	Whitelisted *bool `json:"whitelisted" binding:"required"`
}

// WithdrawResponse reports a treasury withdrawal.
type WithdrawResponse struct {
	Amount int64 `json:"amount"`
}

// PriceResponse is the response for a price query.
type PriceResponse struct {
	AssetID int64 `json:"asset_id"`
	Price   int64 `json:"price"`
}

// ShareBalanceResponse is the response for a share balance query.
type ShareBalanceResponse struct {
	AssetID   int64  `json:"asset_id"`
	AccountID string `json:"account_id"`
	Balance   int64  `json:"balance"`
}

// HolderResponse is one holder of an asset.
type HolderResponse struct {
	AccountID string `json:"account_id"`
	Balance   int64  `json:"balance"`
}

// PortfolioEntryResponse is one row of an account's purchase history.
type PortfolioEntryResponse struct {
	AssetID int64 `json:"asset_id"`
	Balance int64 `json:"balance"`
}

// CollectionInfoResponse summarizes the registry.
type CollectionInfoResponse struct {
	Name            string `json:"name"`
	URI             string `json:"uri,omitempty"`
	TotalAssets     int64  `json:"total_assets"`
	SharesPerAsset  int64  `json:"shares_per_asset"`
	TreasuryBalance int64  `json:"treasury_balance"`
}

// CapabilitiesResponse reports the fixed behaviors of this registry.
type CapabilitiesResponse struct {
	SharesPerAsset   int64 `json:"shares_per_asset"`
	FixedSupply      bool  `json:"fixed_supply"`
	PeerTransfers    bool  `json:"peer_transfers"`
	WhitelistGated   bool  `json:"whitelist_gated"`
	Burnable         bool  `json:"burnable"`
	BatchedPurchase  bool  `json:"batched_purchase"`
	RoyaltySemantics bool  `json:"royalty_semantics"`
}

// EventResponse is one ledger event.
type EventResponse struct {
	ID        string `json:"id"`
	Type      string `json:"type"`
	AssetID   *int64 `json:"asset_id,omitempty"`
	AccountID string `json:"account_id,omitempty"`
	Amount    *int64 `json:"amount,omitempty"`
	Payload   string `json:"payload,omitempty"`
	CreatedAt string `json:"created_at"`
}
