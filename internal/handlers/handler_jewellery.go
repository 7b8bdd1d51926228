package handlers

import (
	"net/http"

	portssvc "github.com/SscSPs/bullion_ledger/internal/core/ports/services"
	"github.com/SscSPs/bullion_ledger/internal/dto"
	"github.com/gin-gonic/gin"
)

type jewelleryHandler struct {
	jewelleryService portssvc.JewellerySvcFacade
}

// registerJewelleryRoutes registers routes related to jewellery stock and transactions.
func registerJewelleryRoutes(rg *gin.RouterGroup, js portssvc.JewellerySvcFacade) {
	h := &jewelleryHandler{jewelleryService: js}

	j := rg.Group("/jewellery")
	{
		j.GET("/stock", h.getStock)
		j.GET("/pnl", h.getPnL)
		j.POST("/transactions", h.recordTransaction)
		j.DELETE("/transactions/:id", h.deleteTransaction)
	}
}

// getStock godoc
// @Summary Jewellery stock
// @Description Net units and fine gold per category and weight bracket
// @Tags jewellery
// @Produce json
// @Success 200 {object} dto.StockResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Failed to compute stock"
// @Security BearerAuth
// @Router /jewellery/stock [get]
func (h *jewelleryHandler) getStock(c *gin.Context) {
	userID, ok := userIDOrAbort(c)
	if !ok {
		return
	}
	stock, err := h.jewelleryService.GetStock(c.Request.Context(), userID)
	if err != nil {
		respondError(c, err, "Failed to compute stock")
		return
	}
	c.JSON(http.StatusOK, dto.StockResponse{Categories: stock})
}

// getPnL godoc
// @Summary Jewellery profit in fine gold
// @Tags jewellery
// @Produce json
// @Success 200 {object} dto.JewelleryPnLResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Failed to compute profit"
// @Security BearerAuth
// @Router /jewellery/pnl [get]
func (h *jewelleryHandler) getPnL(c *gin.Context) {
	userID, ok := userIDOrAbort(c)
	if !ok {
		return
	}
	pnl, err := h.jewelleryService.GetPnL(c.Request.Context(), userID)
	if err != nil {
		respondError(c, err, "Failed to compute profit")
		return
	}
	c.JSON(http.StatusOK, dto.JewelleryPnLResponse{JewelleryPnL: *pnl})
}

// recordTransaction godoc
// @Summary Record a jewellery purchase or direct sale
// @Description goldGivenFine on a purchase books the fine gold handed to the karigar as a raw gold outflow
// @Tags jewellery
// @Accept json
// @Produce json
// @Param transaction body dto.GhaatTransactionRequest true "Transaction details"
// @Success 201 {object} dto.GhaatTransactionResponse
// @Failure 400 {object} map[string]string "Invalid input format or validation error"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Merchant not found"
// @Failure 500 {object} map[string]string "Failed to record transaction"
// @Security BearerAuth
// @Router /jewellery/transactions [post]
func (h *jewelleryHandler) recordTransaction(c *gin.Context) {
	var req dto.GhaatTransactionRequest
	if !bindJSON(c, &req) {
		return
	}
	userID, ok := userIDOrAbort(c)
	if !ok {
		return
	}
	g, err := h.jewelleryService.RecordGhaatTransaction(c.Request.Context(), req, userID)
	if err != nil {
		respondError(c, err, "Failed to record transaction")
		return
	}
	c.JSON(http.StatusCreated, dto.ToGhaatTransactionResponse(*g))
}

// deleteTransaction godoc
// @Summary Delete a jewellery transaction
// @Description Cascades to derived raw gold entries. Members of a pending sale are refused with 409.
// @Tags jewellery
// @Param id path string true "Transaction ID"
// @Success 204 "No Content"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Transaction not found"
// @Failure 409 {object} map[string]string "Transaction belongs to a pending sale"
// @Failure 500 {object} map[string]string "Failed to delete transaction"
// @Security BearerAuth
// @Router /jewellery/transactions/{id} [delete]
func (h *jewelleryHandler) deleteTransaction(c *gin.Context) {
	userID, ok := userIDOrAbort(c)
	if !ok {
		return
	}
	if err := h.jewelleryService.DeleteGhaatTransaction(c.Request.Context(), c.Param("id"), userID); err != nil {
		respondError(c, err, "Failed to delete transaction")
		return
	}
	c.Status(http.StatusNoContent)
}
