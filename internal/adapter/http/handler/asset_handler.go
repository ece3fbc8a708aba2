package handler

import (
	"fractional-share-registry/internal/adapter/http/dto"
	"fractional-share-registry/internal/core/domain"
	"fractional-share-registry/internal/core/ports"
	"fractional-share-registry/pkg/apperror"
	"fractional-share-registry/pkg/response"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// AssetHandler handles operator-only catalog and treasury endpoints.
type AssetHandler struct {
	marketSvc ports.MarketplaceService
}

// NewAssetHandler creates a new AssetHandler.
func NewAssetHandler(marketSvc ports.MarketplaceService) *AssetHandler {
	return &AssetHandler{marketSvc: marketSvc}
}

// RegisterAssets handles POST /api/v1/assets.
func (h *AssetHandler) RegisterAssets(c *gin.Context) {
	actor, ok := accountIDFromCtx(c)
	if !ok {
		response.Error(c, apperror.ErrInvalidToken())
		return
	}

	var req dto.RegisterAssetsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}

	specs := make([]ports.AssetSpec, len(req.Assets))
	for i, a := range req.Assets {
		spec := ports.AssetSpec{
			PricePerShare:  a.PricePerShare,
			URI:            a.URI,
			RoyaltyRateBps: a.RoyaltyRateBps,
		}
		if a.Metadata != "" {
			spec.Metadata = []byte(a.Metadata)
		}
		if a.RoyaltyReceiver != nil {
			receiver, err := uuid.Parse(*a.RoyaltyReceiver)
			if err != nil {
				response.Error(c, apperror.Validation("invalid royalty receiver id"))
				return
			}
			spec.RoyaltyReceiver = receiver
		}
		specs[i] = spec
	}

	assets, err := h.marketSvc.RegisterAssets(c.Request.Context(), actor, specs)
	if err != nil {
		response.Error(c, err)
		return
	}

	out := make([]dto.AssetResponse, len(assets))
	for i := range assets {
		out[i] = toAssetResponse(&assets[i])
	}
	response.Created(c, out)
}

// SetPrices handles PUT /api/v1/assets/prices.
func (h *AssetHandler) SetPrices(c *gin.Context) {
	actor, ok := accountIDFromCtx(c)
	if !ok {
		response.Error(c, apperror.ErrInvalidToken())
		return
	}

	var req dto.SetPricesRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}

	updates := make([]ports.PriceUpdate, len(req.Updates))
	for i, u := range req.Updates {
		updates[i] = ports.PriceUpdate{AssetID: u.AssetID, Price: u.Price}
	}

	if err := h.marketSvc.SetPrices(c.Request.Context(), actor, updates); err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, gin.H{"updated": len(updates)})
}

// SetWhitelisted handles PUT /api/v1/accounts/:id/whitelist.
func (h *AssetHandler) SetWhitelisted(c *gin.Context) {
	actor, ok := accountIDFromCtx(c)
	if !ok {
		response.Error(c, apperror.ErrInvalidToken())
		return
	}

	accountID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.Error(c, apperror.Validation("invalid account id"))
		return
	}

	var req dto.WhitelistRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}

	if err := h.marketSvc.SetWhitelisted(c.Request.Context(), actor, accountID, *req.Whitelisted); err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, gin.H{
		"account_id":  accountID.String(),
		"whitelisted": *req.Whitelisted,
	})
}

// Withdraw handles POST /api/v1/treasury/withdraw.
func (h *AssetHandler) Withdraw(c *gin.Context) {
	actor, ok := accountIDFromCtx(c)
	if !ok {
		response.Error(c, apperror.ErrInvalidToken())
		return
	}

	amount, err := h.marketSvc.Withdraw(c.Request.Context(), actor)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, dto.WithdrawResponse{Amount: amount})
}

// toAssetResponse converts domain.Asset to DTO.
func toAssetResponse(a *domain.Asset) dto.AssetResponse {
	resp := dto.AssetResponse{
		ID:             a.ID,
		PricePerShare:  a.PricePerShare,
		URI:            a.URI,
		RoyaltyRateBps: a.RoyaltyRateBps,
		CreatedAt:      a.CreatedAt.Format("2006-01-02T15:04:05Z07:00"),
	}
	if a.RoyaltyReceiver != uuid.Nil {
		resp.RoyaltyReceiver = a.RoyaltyReceiver.String()
	}
	return resp
}
