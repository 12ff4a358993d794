package handler

import (
	"net/http"
	"time"

	settlementapp "github.com/broilerlink/backend/internal/application/settlement"
	"github.com/broilerlink/backend/internal/interfaces/http/dto"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// ReconciliationHandler handles daily summary calculation and lifecycle
type ReconciliationHandler struct {
	BaseHandler
	reconciliationService *settlementapp.ReconciliationService
}

// NewReconciliationHandler creates a new ReconciliationHandler
func NewReconciliationHandler(reconciliationService *settlementapp.ReconciliationService) *ReconciliationHandler {
	return &ReconciliationHandler{reconciliationService: reconciliationService}
}

// CalculateSummaryRequest asks for a daily summary to be calculated and saved
type CalculateSummaryRequest struct {
	VendorID string `json:"vendor_id" binding:"required,uuid"`
	Date     string `json:"date" binding:"required"`
}

// SummaryExistsResponse reports whether a summary already exists
type SummaryExistsResponse struct {
	Exists bool `json:"exists"`
}

// CalculateSummary calculates a vendor's settlement for one date and persists
// it as a draft daily summary
func (h *ReconciliationHandler) CalculateSummary(c *gin.Context) {
	var req CalculateSummaryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.Error(c, http.StatusBadRequest, dto.ErrCodeInvalidJSON, "Invalid request body: "+err.Error())
		return
	}

	vendorID, err := uuid.Parse(req.VendorID)
	if err != nil {
		h.ValidationError(c, []dto.ValidationDetail{
			{Field: "vendor_id", Message: "must be a valid UUID"},
		})
		return
	}
	date, err := time.Parse(dateLayout, req.Date)
	if err != nil {
		h.ValidationError(c, []dto.ValidationDetail{
			{Field: "date", Message: "must be in YYYY-MM-DD format"},
		})
		return
	}

	summary, err := h.reconciliationService.CalculateAndSaveDailySummary(c.Request.Context(), vendorID, date)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Created(c, summary)
}

// SummaryExists reports whether a summary already exists for a vendor and date
func (h *ReconciliationHandler) SummaryExists(c *gin.Context) {
	vendorID, err := parseUUIDQuery(c, "vendor_id")
	if err != nil {
		h.ValidationError(c, []dto.ValidationDetail{
			{Field: "vendor_id", Message: "must be a valid UUID"},
		})
		return
	}
	date, err := parseDateQuery(c, "date")
	if err != nil {
		h.ValidationError(c, []dto.ValidationDetail{
			{Field: "date", Message: "must be in YYYY-MM-DD format"},
		})
		return
	}

	exists, err := h.reconciliationService.SummaryExists(c.Request.Context(), vendorID, date)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, SummaryExistsResponse{Exists: exists})
}

// FinalizeSummary marks a draft summary as final. Finalizing twice is a
// conflict.
func (h *ReconciliationHandler) FinalizeSummary(c *gin.Context) {
	summaryID, err := parseUUIDParam(c, "id")
	if err != nil {
		h.ValidationError(c, []dto.ValidationDetail{
			{Field: "id", Message: "must be a valid UUID"},
		})
		return
	}

	summary, err := h.reconciliationService.FinalizeSummary(c.Request.Context(), summaryID)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, summary)
}

// RegisterRoutes registers reconciliation endpoints
func (h *ReconciliationHandler) RegisterRoutes(rg *gin.RouterGroup) {
	reconciliation := rg.Group("/reconciliation")
	reconciliation.POST("/summaries", h.CalculateSummary)
	reconciliation.GET("/summaries/exists", h.SummaryExists)
	reconciliation.POST("/summaries/:id/finalize", h.FinalizeSummary)
}
