package handler

import (
	"strconv"

	"fractional-share-registry/internal/adapter/http/dto"
	"fractional-share-registry/internal/core/domain"
	"fractional-share-registry/internal/core/ports"
	"fractional-share-registry/pkg/apperror"
	"fractional-share-registry/pkg/response"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// QueryHandler handles the read-side endpoints.
type QueryHandler struct {
	querySvc ports.RegistryQueryService
}

// NewQueryHandler creates a new QueryHandler.
func NewQueryHandler(querySvc ports.RegistryQueryService) *QueryHandler {
	return &QueryHandler{querySvc: querySvc}
}

// GetAsset handles GET /api/v1/assets/:id.
func (h *QueryHandler) GetAsset(c *gin.Context) {
	assetID, ok := assetIDParam(c)
	if !ok {
		return
	}

	asset, err := h.querySvc.AssetInfo(c.Request.Context(), assetID)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, toAssetResponse(asset))
}

// GetPrice handles GET /api/v1/assets/:id/price.
func (h *QueryHandler) GetPrice(c *gin.Context) {
	assetID, ok := assetIDParam(c)
	if !ok {
		return
	}

	price, err := h.querySvc.PriceOf(c.Request.Context(), assetID)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, dto.PriceResponse{AssetID: assetID, Price: price})
}

// GetBalance handles GET /api/v1/assets/:id/balance/:account.
func (h *QueryHandler) GetBalance(c *gin.Context) {
	assetID, ok := assetIDParam(c)
	if !ok {
		return
	}
	accountID, err := uuid.Parse(c.Param("account"))
	if err != nil {
		response.Error(c, apperror.Validation("invalid account id"))
		return
	}

	balance, err := h.querySvc.BalanceOf(c.Request.Context(), assetID, accountID)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, dto.ShareBalanceResponse{
		AssetID:   assetID,
		AccountID: accountID.String(),
		Balance:   balance,
	})
}

// GetHolders handles GET /api/v1/assets/:id/holders.
func (h *QueryHandler) GetHolders(c *gin.Context) {
	assetID, ok := assetIDParam(c)
	if !ok {
		return
	}

	holders, err := h.querySvc.HoldersOf(c.Request.Context(), assetID)
	if err != nil {
		response.Error(c, err)
		return
	}

	out := make([]dto.HolderResponse, len(holders))
	for i, holder := range holders {
		out[i] = dto.HolderResponse{
			AccountID: holder.AccountID.String(),
			Balance:   holder.Balance,
		}
	}
	response.OK(c, out)
}

// GetAssetEvents handles GET /api/v1/assets/:id/events.
func (h *QueryHandler) GetAssetEvents(c *gin.Context) {
	assetID, ok := assetIDParam(c)
	if !ok {
		return
	}

	events, err := h.querySvc.AssetEvents(c.Request.Context(), assetID, limitQuery(c))
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, toEventResponses(events))
}

// GetPortfolio handles GET /api/v1/portfolio. The portfolio lists every
// asset the account ever bought, including fully divested ones.
func (h *QueryHandler) GetPortfolio(c *gin.Context) {
	accountID, ok := accountIDFromCtx(c)
	if !ok {
		response.Error(c, apperror.ErrInvalidToken())
		return
	}

	entries, err := h.querySvc.PortfolioOf(c.Request.Context(), accountID)
	if err != nil {
		response.Error(c, err)
		return
	}

	out := make([]dto.PortfolioEntryResponse, len(entries))
	for i, entry := range entries {
		out[i] = dto.PortfolioEntryResponse{
			AssetID: entry.AssetID,
			Balance: entry.Balance,
		}
	}
	response.OK(c, out)
}

// GetCollection handles GET /api/v1/collection.
func (h *QueryHandler) GetCollection(c *gin.Context) {
	info, err := h.querySvc.CollectionInfo(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, dto.CollectionInfoResponse{
		Name:            info.Name,
		URI:             info.URI,
		TotalAssets:     info.TotalAssets,
		SharesPerAsset:  info.SharesPerAsset,
		TreasuryBalance: info.TreasuryBalance,
	})
}

// GetCapabilities handles GET /api/v1/capabilities.
func (h *QueryHandler) GetCapabilities(c *gin.Context) {
	caps := h.querySvc.Capabilities()
	response.OK(c, dto.CapabilitiesResponse{
		SharesPerAsset:   caps.SharesPerAsset,
		FixedSupply:      caps.FixedSupply,
		PeerTransfers:    caps.PeerTransfers,
		WhitelistGated:   caps.WhitelistGated,
		Burnable:         caps.Burnable,
		BatchedPurchase:  caps.BatchedPurchase,
		RoyaltySemantics: caps.RoyaltySemantics,
	})
}

// GetEvents handles GET /api/v1/events.
func (h *QueryHandler) GetEvents(c *gin.Context) {
	events, err := h.querySvc.RecentEvents(c.Request.Context(), limitQuery(c))
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, toEventResponses(events))
}

func assetIDParam(c *gin.Context) (int64, bool) {
	assetID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || assetID <= 0 {
		response.Error(c, apperror.Validation("invalid asset id"))
		return 0, false
	}
	return assetID, true
}

func limitQuery(c *gin.Context) int {
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "0"))
	return limit
}

func toEventResponses(events []domain.LedgerEvent) []dto.EventResponse {
	out := make([]dto.EventResponse, len(events))
	for i, event := range events {
		resp := dto.EventResponse{
			ID:        event.ID.String(),
			Type:      string(event.Type),
			AssetID:   event.AssetID,
			Amount:    event.Amount,
			Payload:   string(event.Payload),
			CreatedAt: event.CreatedAt.Format("2006-01-02T15:04:05Z07:00"),
		}
		if event.AccountID != nil {
			resp.AccountID = event.AccountID.String()
		}
		out[i] = resp
	}
	return out
}
