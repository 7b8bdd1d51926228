package handlers

import (
	"log/slog"
	"net/http"

	"github.com/SscSPs/bullion_ledger/internal/core/domain"
	portssvc "github.com/SscSPs/bullion_ledger/internal/core/ports/services"
	"github.com/SscSPs/bullion_ledger/internal/dto"
	"github.com/SscSPs/bullion_ledger/internal/middleware"
	"github.com/SscSPs/bullion_ledger/internal/platform/config"
	"github.com/gin-gonic/gin"
)

// financialRecordHandler handles HTTP requests for expense and income records.
type financialRecordHandler struct {
	recordService portssvc.FinancialRecordSvcFacade
	catalog       config.Catalog
}

func newFinancialRecordHandler(rs portssvc.FinancialRecordSvcFacade, catalog config.Catalog) *financialRecordHandler {
	return &financialRecordHandler{recordService: rs, catalog: catalog}
}

// registerFinancialRecordRoutes registers routes related to financial records and analytics.
func registerFinancialRecordRoutes(rg *gin.RouterGroup, rs portssvc.FinancialRecordSvcFacade, catalog config.Catalog) {
	h := newFinancialRecordHandler(rs, catalog)

	rg.GET("/analytics/:kind", h.getAnalytics)
	records := rg.Group("/financial-records/:kind")
	{
		records.GET("", h.listRecords)
		records.POST("", h.createRecord)
		records.PUT("/:id", h.updateRecord)
		records.DELETE("/:id", h.deleteRecord)
	}
}

// listRecords godoc
// @Summary List financial records
// @Description Lists every expense or income record of the logged-in user
// @Tags financial-records
// @Produce json
// @Param kind path string true "Record kind" Enums(expense, income)
// @Success 200 {object} dto.ListFinancialRecordsResponse
// @Failure 400 {object} map[string]string "Unknown kind"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Failed to list records"
// @Security BearerAuth
// @Router /financial-records/{kind} [get]
func (h *financialRecordHandler) listRecords(c *gin.Context) {
	userID, ok := userIDOrAbort(c)
	if !ok {
		return
	}
	records, err := h.recordService.ListFinancialRecords(c.Request.Context(), domain.RecordKind(c.Param("kind")), userID)
	if err != nil {
		respondError(c, err, "Failed to list records")
		return
	}
	c.JSON(http.StatusOK, dto.ListFinancialRecordsResponse{Records: dto.ToFinancialRecordResponses(records)})
}

// createRecord godoc
// @Summary Create a financial record
// @Tags financial-records
// @Accept json
// @Produce json
// @Param kind path string true "Record kind" Enums(expense, income)
// @Param record body dto.FinancialRecordRequest true "Record details"
// @Success 201 {object} dto.FinancialRecordResponse
// @Failure 400 {object} map[string]string "Invalid input format or validation error"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Failed to create record"
// @Security BearerAuth
// @Router /financial-records/{kind} [post]
func (h *financialRecordHandler) createRecord(c *gin.Context) {
	var req dto.FinancialRecordRequest
	if !bindJSON(c, &req) {
		return
	}
	userID, ok := userIDOrAbort(c)
	if !ok {
		return
	}
	record, err := h.recordService.CreateFinancialRecord(c.Request.Context(), domain.RecordKind(c.Param("kind")), req, userID)
	if err != nil {
		respondError(c, err, "Failed to create record")
		return
	}
	middleware.GetLoggerFromCtx(c.Request.Context()).Info("Financial record created", slog.String("record_id", record.ID))
	c.JSON(http.StatusCreated, dto.ToFinancialRecordResponse(*record))
}

// updateRecord godoc
// @Summary Update a financial record
// @Tags financial-records
// @Accept json
// @Produce json
// @Param kind path string true "Record kind" Enums(expense, income)
// @Param id path string true "Record ID"
// @Param record body dto.FinancialRecordRequest true "Record details"
// @Success 200 {object} dto.FinancialRecordResponse
// @Failure 400 {object} map[string]string "Invalid input format or validation error"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Record not found"
// @Failure 500 {object} map[string]string "Failed to update record"
// @Security BearerAuth
// @Router /financial-records/{kind}/{id} [put]
func (h *financialRecordHandler) updateRecord(c *gin.Context) {
	var req dto.FinancialRecordRequest
	if !bindJSON(c, &req) {
		return
	}
	userID, ok := userIDOrAbort(c)
	if !ok {
		return
	}
	record, err := h.recordService.UpdateFinancialRecord(c.Request.Context(), domain.RecordKind(c.Param("kind")), c.Param("id"), req, userID)
	if err != nil {
		respondError(c, err, "Failed to update record")
		return
	}
	c.JSON(http.StatusOK, dto.ToFinancialRecordResponse(*record))
}

// deleteRecord godoc
// @Summary Delete a financial record
// @Tags financial-records
// @Param kind path string true "Record kind" Enums(expense, income)
// @Param id path string true "Record ID"
// @Success 204 "No Content"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Record not found"
// @Failure 500 {object} map[string]string "Failed to delete record"
// @Security BearerAuth
// @Router /financial-records/{kind}/{id} [delete]
func (h *financialRecordHandler) deleteRecord(c *gin.Context) {
	userID, ok := userIDOrAbort(c)
	if !ok {
		return
	}
	if err := h.recordService.DeleteFinancialRecord(c.Request.Context(), domain.RecordKind(c.Param("kind")), c.Param("id"), userID); err != nil {
		respondError(c, err, "Failed to delete record")
		return
	}
	c.Status(http.StatusNoContent)
}

// getAnalytics godoc
// @Summary Period analytics
// @Description Totals, per-day average, category breakdown, monthly trend and the change against the previous period of equal length
// @Tags analytics
// @Produce json
// @Param kind path string true "Record kind" Enums(expense, income)
// @Param startMonth query string true "First month (YYYY-MM)"
// @Param endMonth query string true "Last month (YYYY-MM)"
// @Param categories query string false "Comma separated categories"
// @Param search query string false "Case-insensitive text over description and category"
// @Param sortBy query string false "Sort key" Enums(date_desc, date_asc, amount_desc, amount_asc, category)
// @Success 200 {object} dto.PeriodAnalyticsResponse
// @Failure 400 {object} map[string]string "Invalid query or range"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Failed to compute analytics"
// @Security BearerAuth
// @Router /analytics/{kind} [get]
func (h *financialRecordHandler) getAnalytics(c *gin.Context) {
	var params dto.AnalyticsParams
	if !bindQuery(c, &params) {
		return
	}
	userID, ok := userIDOrAbort(c)
	if !ok {
		return
	}
	out, err := h.recordService.ComputePeriodAnalytics(c.Request.Context(), domain.RecordKind(c.Param("kind")), params, userID)
	if err != nil {
		respondError(c, err, "Failed to compute analytics")
		return
	}
	c.JSON(http.StatusOK, dto.ToPeriodAnalyticsResponse(*out, h.catalog.CategoryColors))
}
