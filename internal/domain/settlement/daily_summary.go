package settlement

import (
	"time"

	"github.com/broilerlink/backend/internal/domain/shared"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// DailySummary is the settlement unit: one record per (vendor, date) holding
// the vendor's delivered weight for the day, the rate applied, the amount
// billed and the payments captured against that day's orders. It is immutable
// after creation except for the finalized flag, which only ever goes
// false -> true.
//
// DueAmount is a snapshot taken at creation time; standalone payments recorded
// later do not update it.
type DailySummary struct {
	shared.BaseEntity
	VendorID         uuid.UUID       `gorm:"type:uuid;not null;uniqueIndex:idx_daily_summaries_vendor_date,priority:1" json:"vendor_id"`
	SummaryDate      time.Time       `gorm:"type:date;not null;uniqueIndex:idx_daily_summaries_vendor_date,priority:2" json:"summary_date"`
	TotalWeight      decimal.Decimal `gorm:"type:decimal(12,2);not null" json:"total_weight"`
	AppliedRate      decimal.Decimal `gorm:"type:decimal(10,2);not null" json:"applied_rate"`
	CalculatedAmount decimal.Decimal `gorm:"type:decimal(12,2);not null" json:"calculated_amount"`
	TotalPaid        decimal.Decimal `gorm:"type:decimal(12,2);not null" json:"total_paid"`
	DueAmount        decimal.Decimal `gorm:"type:decimal(12,2);not null" json:"due_amount"`
	IsFinalized      bool            `gorm:"not null;default:false" json:"is_finalized"`
}

// TableName returns the table name for GORM
func (DailySummary) TableName() string {
	return "daily_summaries"
}

// NewDailySummary builds a summary from the day's aggregated order data.
// CalculatedAmount = totalWeight * appliedRate and DueAmount =
// CalculatedAmount - totalPaid hold exactly, with no rounding beyond the
// decimal precision of the inputs.
func NewDailySummary(vendorID uuid.UUID, date time.Time, totalWeight, appliedRate, totalPaid decimal.Decimal) *DailySummary {
	calculated := totalWeight.Mul(appliedRate)
	return &DailySummary{
		BaseEntity:       shared.NewBaseEntity(),
		VendorID:         vendorID,
		SummaryDate:      shared.DateOnly(date),
		TotalWeight:      totalWeight,
		AppliedRate:      appliedRate,
		CalculatedAmount: calculated,
		TotalPaid:        totalPaid,
		DueAmount:        calculated.Sub(totalPaid),
	}
}

// Finalize locks the summary against further edits. The transition is one-way;
// finalizing twice is a conflict.
func (s *DailySummary) Finalize() error {
	if s.IsFinalized {
		return ErrSummaryFinalized
	}
	s.IsFinalized = true
	return nil
}
