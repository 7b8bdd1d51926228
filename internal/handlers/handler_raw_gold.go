package handlers

import (
	"net/http"

	portssvc "github.com/SscSPs/bullion_ledger/internal/core/ports/services"
	"github.com/SscSPs/bullion_ledger/internal/dto"
	"github.com/gin-gonic/gin"
)

type rawGoldHandler struct {
	rawGoldService portssvc.RawGoldSvcFacade
}

// registerRawGoldRoutes registers routes related to the raw gold ledger.
func registerRawGoldRoutes(rg *gin.RouterGroup, rs portssvc.RawGoldSvcFacade) {
	h := &rawGoldHandler{rawGoldService: rs}

	raw := rg.Group("/raw-gold")
	{
		raw.GET("/ledger", h.getLedger)
		raw.POST("/entries", h.createEntry)
		raw.DELETE("/entries/:id", h.deleteEntry)
	}
}

// getLedger godoc
// @Summary Raw gold ledger
// @Description Fine gold movements newest first with running balances. Stats always cover the full history.
// @Tags raw-gold
// @Produce json
// @Param from query string false "Window start (YYYY-MM-DD)"
// @Param to query string false "Window end (YYYY-MM-DD)"
// @Success 200 {object} dto.RawGoldLedgerResponse
// @Failure 400 {object} map[string]string "Invalid window"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Failed to build ledger"
// @Security BearerAuth
// @Router /raw-gold/ledger [get]
func (h *rawGoldHandler) getLedger(c *gin.Context) {
	var params dto.RawGoldLedgerParams
	if !bindQuery(c, &params) {
		return
	}
	userID, ok := userIDOrAbort(c)
	if !ok {
		return
	}
	view, err := h.rawGoldService.GetRawGoldLedger(c.Request.Context(), params, userID)
	if err != nil {
		respondError(c, err, "Failed to build ledger")
		return
	}
	c.JSON(http.StatusOK, dto.ToRawGoldLedgerResponse(*view))
}

// createEntry godoc
// @Summary Record a manual raw gold movement
// @Tags raw-gold
// @Accept json
// @Produce json
// @Param entry body dto.RawGoldEntryRequest true "Entry details"
// @Success 201 {object} dto.RawGoldEntryResponse
// @Failure 400 {object} map[string]string "Invalid input format or validation error"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Failed to create entry"
// @Security BearerAuth
// @Router /raw-gold/entries [post]
func (h *rawGoldHandler) createEntry(c *gin.Context) {
	var req dto.RawGoldEntryRequest
	if !bindJSON(c, &req) {
		return
	}
	userID, ok := userIDOrAbort(c)
	if !ok {
		return
	}
	entry, err := h.rawGoldService.CreateRawGoldEntry(c.Request.Context(), req, userID)
	if err != nil {
		respondError(c, err, "Failed to create entry")
		return
	}
	c.JSON(http.StatusCreated, dto.ToRawGoldEntryResponse(*entry))
}

// deleteEntry godoc
// @Summary Delete a manual raw gold movement
// @Description Entries created by a trade or jewellery transaction are refused with 409
// @Tags raw-gold
// @Param id path string true "Entry ID"
// @Success 204 "No Content"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Entry not found"
// @Failure 409 {object} map[string]string "Entry is derived"
// @Failure 500 {object} map[string]string "Failed to delete entry"
// @Security BearerAuth
// @Router /raw-gold/entries/{id} [delete]
func (h *rawGoldHandler) deleteEntry(c *gin.Context) {
	userID, ok := userIDOrAbort(c)
	if !ok {
		return
	}
	if err := h.rawGoldService.DeleteRawGoldEntry(c.Request.Context(), c.Param("id"), userID); err != nil {
		respondError(c, err, "Failed to delete entry")
		return
	}
	c.Status(http.StatusNoContent)
}
