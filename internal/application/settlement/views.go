package settlement

import (
	"time"

	"github.com/broilerlink/backend/internal/domain/settlement"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// VendorOffsetView is one vendor's row on the rate card
type VendorOffsetView struct {
	VendorID   uuid.UUID       `json:"vendor_id"`
	VendorName string          `json:"vendor_name"`
	Offset     decimal.Decimal `json:"offset"`
}

// RateCardView is the current rate card: today's base rate plus every
// vendor's offset
type RateCardView struct {
	BaseRate      decimal.Decimal    `json:"base_rate"`
	VendorOffsets []VendorOffsetView `json:"vendor_offsets"`
}

// VendorOffsetUpdate is one (vendor, offset) pair in a rate-card save
type VendorOffsetUpdate struct {
	VendorID uuid.UUID       `json:"vendor_id"`
	Offset   decimal.Decimal `json:"offset"`
}

// SaveRateCardRequest is a rate-card save: the base rate for the current date
// plus the vendor offsets to apply
type SaveRateCardRequest struct {
	BaseRate decimal.Decimal      `json:"base_rate"`
	Offsets  []VendorOffsetUpdate `json:"vendor_offsets"`
}

// RecordPaymentRequest is a request to record a standalone vendor payment
type RecordPaymentRequest struct {
	VendorID      uuid.UUID       `json:"vendor_id"`
	Amount        decimal.Decimal `json:"amount"`
	PaymentDate   time.Time       `json:"payment_date"`
	PaymentMethod string          `json:"payment_method"`
	Notes         string          `json:"notes"`
}

// VendorLedgerView is a vendor's merged chronological ledger together with
// vendor-level totals. The totals are computed over all summaries and
// payments; they are independent of each summary's own DueAmount snapshot
// and deliberately not reconciled against it.
type VendorLedgerView struct {
	VendorName            string                   `json:"vendor_name"`
	TotalCalculatedAmount decimal.Decimal          `json:"total_calculated_amount"`
	TotalPaidAmount       decimal.Decimal          `json:"total_paid_amount"`
	TotalDueAmount        decimal.Decimal          `json:"total_due_amount"`
	Entries               []settlement.LedgerEntry `json:"entries"`
}

// DailyOverviewView is the cross-vendor settlement picture for one date.
//
// TotalPaidAmount sums the summaries' own TotalPaid fields AND the standalone
// payments dated that day. Money recorded both against an order and as a
// standalone payment is therefore counted twice; callers must be aware of
// this when reading the figure.
type DailyOverviewView struct {
	Date                  time.Time                  `json:"date"`
	Summaries             []settlement.DailySummary  `json:"summaries"`
	Payments              []settlement.VendorPayment `json:"payments"`
	TotalCalculatedAmount decimal.Decimal            `json:"total_calculated_amount"`
	TotalPaidAmount       decimal.Decimal            `json:"total_paid_amount"`
	TotalDueAmount        decimal.Decimal            `json:"total_due_amount"`
}

// VendorFinancialSummaryView is one vendor's portfolio roll-up
type VendorFinancialSummaryView struct {
	VendorID           uuid.UUID       `json:"vendor_id"`
	VendorName         string          `json:"vendor_name"`
	TotalBilled        decimal.Decimal `json:"total_billed"`
	TotalPaid          decimal.Decimal `json:"total_paid"`
	OutstandingBalance decimal.Decimal `json:"outstanding_balance"`
}
