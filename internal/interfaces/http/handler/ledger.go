package handler

import (
	"net/http"
	"time"

	settlementapp "github.com/broilerlink/backend/internal/application/settlement"
	"github.com/broilerlink/backend/internal/interfaces/http/dto"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// LedgerHandler handles vendor ledger, payment and overview endpoints
type LedgerHandler struct {
	BaseHandler
	ledgerService  *settlementapp.LedgerService
	financeService *settlementapp.VendorFinanceService
}

// NewLedgerHandler creates a new LedgerHandler
func NewLedgerHandler(
	ledgerService *settlementapp.LedgerService,
	financeService *settlementapp.VendorFinanceService,
) *LedgerHandler {
	return &LedgerHandler{
		ledgerService:  ledgerService,
		financeService: financeService,
	}
}

// RecordPaymentRequest records a standalone payment against a vendor
type RecordPaymentRequest struct {
	VendorID      string          `json:"vendor_id" binding:"required,uuid"`
	Amount        decimal.Decimal `json:"amount" binding:"required"`
	PaymentDate   string          `json:"payment_date" binding:"required"`
	PaymentMethod string          `json:"payment_method" binding:"required"`
	Notes         string          `json:"notes"`
}

// OutstandingBalanceResponse is a vendor's billed-minus-paid position
type OutstandingBalanceResponse struct {
	VendorID           string          `json:"vendor_id"`
	OutstandingBalance decimal.Decimal `json:"outstanding_balance"`
}

// GetVendorLedger returns a vendor's merged chronological ledger with
// vendor-level totals
func (h *LedgerHandler) GetVendorLedger(c *gin.Context) {
	vendorID, err := parseUUIDParam(c, "vendorId")
	if err != nil {
		h.ValidationError(c, []dto.ValidationDetail{
			{Field: "vendorId", Message: "must be a valid UUID"},
		})
		return
	}

	ledger, err := h.ledgerService.GetVendorLedger(c.Request.Context(), vendorID)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, ledger)
}

// RecordPayment records a standalone vendor payment
func (h *LedgerHandler) RecordPayment(c *gin.Context) {
	var req RecordPaymentRequest
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
	paymentDate, err := time.Parse(dateLayout, req.PaymentDate)
	if err != nil {
		h.ValidationError(c, []dto.ValidationDetail{
			{Field: "payment_date", Message: "must be in YYYY-MM-DD format"},
		})
		return
	}
	if !req.Amount.IsPositive() {
		h.ValidationError(c, []dto.ValidationDetail{
			{Field: "amount", Message: "must be greater than zero"},
		})
		return
	}

	payment, err := h.ledgerService.RecordPayment(c.Request.Context(), settlementapp.RecordPaymentRequest{
		VendorID:      vendorID,
		Amount:        req.Amount,
		PaymentDate:   paymentDate,
		PaymentMethod: req.PaymentMethod,
		Notes:         req.Notes,
	})
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Created(c, payment)
}

// GetDailyOverview returns the cross-vendor settlement picture for one date
func (h *LedgerHandler) GetDailyOverview(c *gin.Context) {
	date, err := parseDateQuery(c, "date")
	if err != nil {
		h.ValidationError(c, []dto.ValidationDetail{
			{Field: "date", Message: "must be in YYYY-MM-DD format"},
		})
		return
	}

	overview, err := h.ledgerService.GetDailyOverview(c.Request.Context(), date)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, overview)
}

// ListVendorFinancials returns every vendor's billed, paid and outstanding
// totals
func (h *LedgerHandler) ListVendorFinancials(c *gin.Context) {
	summaries, err := h.financeService.GetVendorFinancialSummaries(c.Request.Context())
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, summaries)
}

// GetOutstandingBalance returns one vendor's outstanding balance, served from
// the balance cache when warm
func (h *LedgerHandler) GetOutstandingBalance(c *gin.Context) {
	vendorID, err := parseUUIDParam(c, "vendorId")
	if err != nil {
		h.ValidationError(c, []dto.ValidationDetail{
			{Field: "vendorId", Message: "must be a valid UUID"},
		})
		return
	}

	balance, err := h.financeService.OutstandingBalance(c.Request.Context(), vendorID)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, OutstandingBalanceResponse{
		VendorID:           vendorID.String(),
		OutstandingBalance: balance,
	})
}

// RegisterRoutes registers ledger endpoints
func (h *LedgerHandler) RegisterRoutes(rg *gin.RouterGroup) {
	ledger := rg.Group("/ledger")
	ledger.GET("/vendors", h.ListVendorFinancials)
	ledger.GET("/vendors/:vendorId", h.GetVendorLedger)
	ledger.GET("/vendors/:vendorId/balance", h.GetOutstandingBalance)
	ledger.POST("/payments", h.RecordPayment)
	ledger.GET("/daily-overview", h.GetDailyOverview)
}
