package handler

import (
	"net/http"

	settlementapp "github.com/broilerlink/backend/internal/application/settlement"
	"github.com/broilerlink/backend/internal/interfaces/http/dto"
	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

// RateHandler handles rate card and effective rate endpoints
type RateHandler struct {
	BaseHandler
	rateService *settlementapp.RateService
}

// NewRateHandler creates a new RateHandler
func NewRateHandler(rateService *settlementapp.RateService) *RateHandler {
	return &RateHandler{rateService: rateService}
}

// EffectiveRateResponse is the resolved per-vendor rate for a date
type EffectiveRateResponse struct {
	VendorID string          `json:"vendor_id"`
	Date     string          `json:"date"`
	Rate     decimal.Decimal `json:"rate"`
}

// GetRateCard returns today's base rate together with every vendor's offset
func (h *RateHandler) GetRateCard(c *gin.Context) {
	card, err := h.rateService.GetRateCard(c.Request.Context())
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, card)
}

// SaveRateCard sets the base rate for the current date and applies vendor
// offset changes in one request
func (h *RateHandler) SaveRateCard(c *gin.Context) {
	var req settlementapp.SaveRateCardRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.Error(c, http.StatusBadRequest, dto.ErrCodeInvalidJSON, "Invalid request body: "+err.Error())
		return
	}
	if req.BaseRate.IsNegative() {
		h.ValidationError(c, []dto.ValidationDetail{
			{Field: "base_rate", Message: "must not be negative"},
		})
		return
	}

	if err := h.rateService.SaveRateCard(c.Request.Context(), req); err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, gin.H{"saved": true})
}

// GetEffectiveRate resolves the rate a vendor pays on a date: the base rate
// for that exact date plus the vendor's offset
func (h *RateHandler) GetEffectiveRate(c *gin.Context) {
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

	rate, err := h.rateService.EffectiveRate(c.Request.Context(), vendorID, date)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, EffectiveRateResponse{
		VendorID: vendorID.String(),
		Date:     date.Format(dateLayout),
		Rate:     rate,
	})
}

// RegisterRoutes registers rate endpoints
func (h *RateHandler) RegisterRoutes(rg *gin.RouterGroup) {
	rates := rg.Group("/rates")
	rates.GET("/card", h.GetRateCard)
	rates.POST("/card", h.SaveRateCard)
	rates.GET("/effective", h.GetEffectiveRate)
}
