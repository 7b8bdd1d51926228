package handlers

import (
	"net/http"

	portssvc "github.com/SscSPs/bullion_ledger/internal/core/ports/services"
	"github.com/SscSPs/bullion_ledger/internal/dto"
	"github.com/gin-gonic/gin"
)

type tradeHandler struct {
	tradeService portssvc.TradeSvcFacade
}

// registerTradeRoutes registers routes related to trades.
func registerTradeRoutes(rg *gin.RouterGroup, ts portssvc.TradeSvcFacade) {
	h := &tradeHandler{tradeService: ts}

	trades := rg.Group("/trades")
	{
		trades.POST("", h.recordTrade)
		trades.PUT("/:id", h.updateTrade)
		trades.DELETE("/:id", h.deleteTrade)
	}
}

// recordTrade godoc
// @Summary Record a trade
// @Description Records a buy, sell, transfer or settlement. A goldMovement also books the raw gold that changed hands.
// @Tags trades
// @Accept json
// @Produce json
// @Param trade body dto.TradeRequest true "Trade details"
// @Success 201 {object} dto.TradeResponse
// @Failure 400 {object} map[string]string "Invalid input format or validation error"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Merchant not found"
// @Failure 500 {object} map[string]string "Failed to record trade"
// @Security BearerAuth
// @Router /trades [post]
func (h *tradeHandler) recordTrade(c *gin.Context) {
	var req dto.TradeRequest
	if !bindJSON(c, &req) {
		return
	}
	userID, ok := userIDOrAbort(c)
	if !ok {
		return
	}
	trade, err := h.tradeService.RecordTrade(c.Request.Context(), req, userID)
	if err != nil {
		respondError(c, err, "Failed to record trade")
		return
	}
	c.JSON(http.StatusCreated, dto.ToTradeResponse(*trade))
}

// updateTrade godoc
// @Summary Replace a trade
// @Tags trades
// @Accept json
// @Produce json
// @Param id path string true "Trade ID"
// @Param trade body dto.TradeRequest true "Trade details"
// @Success 200 {object} dto.TradeResponse
// @Failure 400 {object} map[string]string "Invalid input format or validation error"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Trade or merchant not found"
// @Failure 500 {object} map[string]string "Failed to update trade"
// @Security BearerAuth
// @Router /trades/{id} [put]
func (h *tradeHandler) updateTrade(c *gin.Context) {
	var req dto.TradeRequest
	if !bindJSON(c, &req) {
		return
	}
	userID, ok := userIDOrAbort(c)
	if !ok {
		return
	}
	trade, err := h.tradeService.UpdateTrade(c.Request.Context(), c.Param("id"), req, userID)
	if err != nil {
		respondError(c, err, "Failed to update trade")
		return
	}
	c.JSON(http.StatusOK, dto.ToTradeResponse(*trade))
}

// deleteTrade godoc
// @Summary Delete a trade
// @Description Deletes the trade together with the raw gold entries derived from it
// @Tags trades
// @Param id path string true "Trade ID"
// @Success 204 "No Content"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Trade not found"
// @Failure 500 {object} map[string]string "Failed to delete trade"
// @Security BearerAuth
// @Router /trades/{id} [delete]
func (h *tradeHandler) deleteTrade(c *gin.Context) {
	userID, ok := userIDOrAbort(c)
	if !ok {
		return
	}
	if err := h.tradeService.DeleteTrade(c.Request.Context(), c.Param("id"), userID); err != nil {
		respondError(c, err, "Failed to delete trade")
		return
	}
	c.Status(http.StatusNoContent)
}
