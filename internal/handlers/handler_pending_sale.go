package handlers

import (
	"net/http"

	portssvc "github.com/SscSPs/bullion_ledger/internal/core/ports/services"
	"github.com/SscSPs/bullion_ledger/internal/dto"
	"github.com/gin-gonic/gin"
)

type pendingSaleHandler struct {
	pendingSaleService portssvc.PendingSaleSvcFacade
}

// registerPendingSaleRoutes registers routes of the give → confirm jewellery workflow.
func registerPendingSaleRoutes(rg *gin.RouterGroup, ps portssvc.PendingSaleSvcFacade) {
	h := &pendingSaleHandler{pendingSaleService: ps}

	sales := rg.Group("/pending-sales")
	{
		sales.GET("", h.listPendingSales)
		sales.POST("", h.createPendingSale)
		sales.POST("/:groupId/confirm", h.confirmPendingSale)
		sales.DELETE("/:groupId", h.deletePendingSale)
	}
}

// createPendingSale godoc
// @Summary Hand jewellery to a merchant
// @Description Every item becomes a pending sale line sharing one group ID
// @Tags pending-sales
// @Accept json
// @Produce json
// @Param sale body dto.CreatePendingSaleRequest true "Batch details"
// @Success 201 {object} dto.PendingSaleGroupResponse
// @Failure 400 {object} map[string]string "Invalid input format or validation error"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Merchant not found"
// @Failure 500 {object} map[string]string "Failed to create pending sale"
// @Security BearerAuth
// @Router /pending-sales [post]
func (h *pendingSaleHandler) createPendingSale(c *gin.Context) {
	var req dto.CreatePendingSaleRequest
	if !bindJSON(c, &req) {
		return
	}
	userID, ok := userIDOrAbort(c)
	if !ok {
		return
	}
	group, err := h.pendingSaleService.CreatePendingSale(c.Request.Context(), req, userID)
	if err != nil {
		respondError(c, err, "Failed to create pending sale")
		return
	}
	c.JSON(http.StatusCreated, dto.ToPendingSaleGroupResponse(*group))
}

// listPendingSales godoc
// @Summary List pending sales
// @Description Complete pending groups, newest first. Incomplete groups are reported as warnings.
// @Tags pending-sales
// @Produce json
// @Success 200 {object} dto.ListPendingSalesResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Failed to list pending sales"
// @Security BearerAuth
// @Router /pending-sales [get]
func (h *pendingSaleHandler) listPendingSales(c *gin.Context) {
	userID, ok := userIDOrAbort(c)
	if !ok {
		return
	}
	groups, warnings, err := h.pendingSaleService.ListPendingSales(c.Request.Context(), userID)
	if err != nil {
		respondError(c, err, "Failed to list pending sales")
		return
	}
	c.JSON(http.StatusOK, dto.ToListPendingSalesResponse(groups, warnings))
}

// confirmPendingSale godoc
// @Summary Confirm a pending sale
// @Description Records the settlement; returned gold is booked into the raw gold ledger
// @Tags pending-sales
// @Accept json
// @Produce json
// @Param groupId path string true "Group ID"
// @Param settlement body dto.ConfirmPendingSaleRequest true "Settlement"
// @Success 200 {object} dto.ConfirmPendingSaleResponse
// @Failure 400 {object} map[string]string "Invalid input format or validation error"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Pending sale not found"
// @Failure 409 {object} map[string]string "Group is no longer pending"
// @Failure 500 {object} map[string]string "Failed to confirm pending sale"
// @Security BearerAuth
// @Router /pending-sales/{groupId}/confirm [post]
func (h *pendingSaleHandler) confirmPendingSale(c *gin.Context) {
	var req dto.ConfirmPendingSaleRequest
	if !bindJSON(c, &req) {
		return
	}
	userID, ok := userIDOrAbort(c)
	if !ok {
		return
	}
	confirmation, err := h.pendingSaleService.ConfirmPendingSale(c.Request.Context(), c.Param("groupId"), req, userID)
	if err != nil {
		respondError(c, err, "Failed to confirm pending sale")
		return
	}
	c.JSON(http.StatusOK, dto.ToConfirmPendingSaleResponse(*confirmation))
}

// deletePendingSale godoc
// @Summary Delete a pending sale
// @Tags pending-sales
// @Param groupId path string true "Group ID"
// @Success 204 "No Content"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Pending sale not found"
// @Failure 409 {object} map[string]string "Group has confirmed items"
// @Failure 500 {object} map[string]string "Failed to delete pending sale"
// @Security BearerAuth
// @Router /pending-sales/{groupId} [delete]
func (h *pendingSaleHandler) deletePendingSale(c *gin.Context) {
	userID, ok := userIDOrAbort(c)
	if !ok {
		return
	}
	if err := h.pendingSaleService.DeletePendingSale(c.Request.Context(), c.Param("groupId"), userID); err != nil {
		respondError(c, err, "Failed to delete pending sale")
		return
	}
	c.Status(http.StatusNoContent)
}
