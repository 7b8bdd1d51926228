package handlers

import (
	"net/http"

	portssvc "github.com/SscSPs/bullion_ledger/internal/core/ports/services"
	"github.com/SscSPs/bullion_ledger/internal/dto"
	"github.com/gin-gonic/gin"
)

// merchantHandler handles HTTP requests related to merchants and their balances.
type merchantHandler struct {
	merchantService portssvc.MerchantSvcFacade
}

func newMerchantHandler(ms portssvc.MerchantSvcFacade) *merchantHandler {
	return &merchantHandler{merchantService: ms}
}

// registerMerchantRoutes registers routes related to merchants.
func registerMerchantRoutes(rg *gin.RouterGroup, ms portssvc.MerchantSvcFacade) {
	h := newMerchantHandler(ms)

	merchants := rg.Group("/merchants")
	{
		merchants.GET("", h.listMerchants)
		merchants.POST("", h.createMerchant)
		merchants.GET("/:id", h.getMerchant)
		merchants.DELETE("/:id", h.deleteMerchant)
		merchants.GET("/:id/ledger", h.getLedger)
		merchants.GET("/:id/jewellery-dues", h.getJewelleryDues)
	}
}

// createMerchant godoc
// @Summary Create a merchant
// @Description Opens a merchant or karigar account with an optional opening balance
// @Tags merchants
// @Accept json
// @Produce json
// @Param merchant body dto.CreateMerchantRequest true "Merchant details"
// @Success 201 {object} dto.MerchantResponse
// @Failure 400 {object} map[string]string "Invalid input format or validation error"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Failed to create merchant"
// @Security BearerAuth
// @Router /merchants [post]
func (h *merchantHandler) createMerchant(c *gin.Context) {
	var req dto.CreateMerchantRequest
	if !bindJSON(c, &req) {
		return
	}
	userID, ok := userIDOrAbort(c)
	if !ok {
		return
	}
	m, err := h.merchantService.CreateMerchant(c.Request.Context(), req, userID)
	if err != nil {
		respondError(c, err, "Failed to create merchant")
		return
	}
	c.JSON(http.StatusCreated, dto.ToMerchantResponse(*m))
}

// listMerchants godoc
// @Summary List merchants
// @Tags merchants
// @Produce json
// @Success 200 {array} dto.MerchantResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Failed to list merchants"
// @Security BearerAuth
// @Router /merchants [get]
func (h *merchantHandler) listMerchants(c *gin.Context) {
	userID, ok := userIDOrAbort(c)
	if !ok {
		return
	}
	ms, err := h.merchantService.ListMerchants(c.Request.Context(), userID)
	if err != nil {
		respondError(c, err, "Failed to list merchants")
		return
	}
	c.JSON(http.StatusOK, dto.ToListMerchantResponse(ms))
}

// getMerchant godoc
// @Summary Get a merchant by ID
// @Tags merchants
// @Produce json
// @Param id path string true "Merchant ID"
// @Success 200 {object} dto.MerchantResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Merchant not found"
// @Failure 500 {object} map[string]string "Failed to retrieve merchant"
// @Security BearerAuth
// @Router /merchants/{id} [get]
func (h *merchantHandler) getMerchant(c *gin.Context) {
	userID, ok := userIDOrAbort(c)
	if !ok {
		return
	}
	m, err := h.merchantService.GetMerchantByID(c.Request.Context(), c.Param("id"), userID)
	if err != nil {
		respondError(c, err, "Failed to retrieve merchant")
		return
	}
	c.JSON(http.StatusOK, dto.ToMerchantResponse(*m))
}

// deleteMerchant godoc
// @Summary Delete a merchant
// @Description Fails with 409 while trades or jewellery transactions still reference the merchant
// @Tags merchants
// @Param id path string true "Merchant ID"
// @Success 204 "No Content"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Merchant not found"
// @Failure 409 {object} map[string]string "Merchant still has history"
// @Failure 500 {object} map[string]string "Failed to delete merchant"
// @Security BearerAuth
// @Router /merchants/{id} [delete]
func (h *merchantHandler) deleteMerchant(c *gin.Context) {
	userID, ok := userIDOrAbort(c)
	if !ok {
		return
	}
	if err := h.merchantService.DeleteMerchant(c.Request.Context(), c.Param("id"), userID); err != nil {
		respondError(c, err, "Failed to delete merchant")
		return
	}
	c.Status(http.StatusNoContent)
}

// getLedger godoc
// @Summary Merchant ledger
// @Description Replays every trade of the merchant and returns rows with running dues and advances, newest first
// @Tags merchants
// @Produce json
// @Param id path string true "Merchant ID"
// @Param from query string false "Window start (YYYY-MM-DD)"
// @Param to query string false "Window end (YYYY-MM-DD)"
// @Param limit query int false "Page size"
// @Param nextToken query string false "Token from the previous page"
// @Success 200 {object} dto.PartyLedgerResponse
// @Failure 400 {object} map[string]string "Invalid window or token"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Merchant not found"
// @Failure 500 {object} map[string]string "Failed to build ledger"
// @Security BearerAuth
// @Router /merchants/{id}/ledger [get]
func (h *merchantHandler) getLedger(c *gin.Context) {
	var params dto.PartyLedgerParams
	if !bindQuery(c, &params) {
		return
	}
	userID, ok := userIDOrAbort(c)
	if !ok {
		return
	}
	ledger, next, err := h.merchantService.GetPartyLedger(c.Request.Context(), c.Param("id"), params, userID)
	if err != nil {
		respondError(c, err, "Failed to build ledger")
		return
	}
	c.JSON(http.StatusOK, dto.ToPartyLedgerResponse(*ledger, next))
}

// getJewelleryDues godoc
// @Summary Merchant jewellery dues
// @Description Fine gold handed over and not yet settled, plus cash still owed on confirmed sales
// @Tags merchants
// @Produce json
// @Param id path string true "Merchant ID"
// @Success 200 {object} dto.JewelleryDuesResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Merchant not found"
// @Failure 500 {object} map[string]string "Failed to compute dues"
// @Security BearerAuth
// @Router /merchants/{id}/jewellery-dues [get]
func (h *merchantHandler) getJewelleryDues(c *gin.Context) {
	userID, ok := userIDOrAbort(c)
	if !ok {
		return
	}
	dues, err := h.merchantService.GetJewelleryDues(c.Request.Context(), c.Param("id"), userID)
	if err != nil {
		respondError(c, err, "Failed to compute dues")
		return
	}
	c.JSON(http.StatusOK, dto.JewelleryDuesResponse{MerchantJewelleryDues: *dues})
}
