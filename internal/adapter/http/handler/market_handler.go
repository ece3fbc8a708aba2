package handler

import (
	"fractional-share-registry/internal/adapter/http/dto"
	"fractional-share-registry/internal/core/ports"
	"fractional-share-registry/pkg/apperror"
	"fractional-share-registry/pkg/response"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// MarketHandler handles purchase and transfer endpoints.
type MarketHandler struct {
	marketSvc ports.MarketplaceService
}

// NewMarketHandler creates a new MarketHandler.
func NewMarketHandler(marketSvc ports.MarketplaceService) *MarketHandler {
	return &MarketHandler{marketSvc: marketSvc}
}

// Purchase handles POST /api/v1/market/purchase.
func (h *MarketHandler) Purchase(c *gin.Context) {
	buyer, ok := accountIDFromCtx(c)
	if !ok {
		response.Error(c, apperror.ErrInvalidToken())
		return
	}

	var req dto.PurchaseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}

	items := make([]ports.PurchaseItem, len(req.Items))
	for i, item := range req.Items {
		items[i] = ports.PurchaseItem{AssetID: item.AssetID, Amount: item.Amount}
	}

	result, err := h.marketSvc.PurchaseShares(c.Request.Context(), buyer, ports.PurchaseRequest{
		Items:       items,
		PaymentSent: req.PaymentSent,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	settled := make([]dto.PurchaseItemResponse, len(result.Items))
	for i, item := range result.Items {
		settled[i] = dto.PurchaseItemResponse{AssetID: item.AssetID, Amount: item.Amount}
	}

	response.Created(c, dto.PurchaseResponse{
		TotalCost: result.TotalCost,
		Refunded:  result.Refunded,
		Items:     settled,
	})
}

// Transfer handles POST /api/v1/market/transfer. The destination may be
// the burn account, which permanently removes the shares.
func (h *MarketHandler) Transfer(c *gin.Context) {
	sender, ok := accountIDFromCtx(c)
	if !ok {
		response.Error(c, apperror.ErrInvalidToken())
		return
	}

	var req dto.TransferRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}

	to, err := uuid.Parse(req.To)
	if err != nil {
		response.Error(c, apperror.Validation("invalid destination account id"))
		return
	}

	if err := h.marketSvc.TransferShares(c.Request.Context(), sender, ports.TransferRequest{
		To:      to,
		AssetID: req.AssetID,
		Amount:  req.Amount,
	}); err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, gin.H{"transferred": req.Amount})
}
