package settlement

import (
	"fmt"
	"sort"
	"time"

	"github.com/broilerlink/backend/internal/domain/delivery"
	"github.com/broilerlink/backend/internal/domain/shared"
	"github.com/shopspring/decimal"
)

// LedgerEntryType distinguishes the two kinds of derived ledger rows
type LedgerEntryType string

const (
	// LedgerEntryTypeInvoice is derived from a daily summary and contributes to debit
	LedgerEntryTypeInvoice LedgerEntryType = "INVOICE"
	// LedgerEntryTypePayment is derived from a standalone payment and contributes to credit
	LedgerEntryTypePayment LedgerEntryType = "PAYMENT"
)

// LedgerEntry is one row of a vendor's derived ledger. Entries are a view:
// they are rebuilt from summaries and payments on every read and never
// persisted.
type LedgerEntry struct {
	Date        time.Time             `json:"date"`
	Description string                `json:"description"`
	Debit       decimal.Decimal       `json:"debit"`
	Credit      decimal.Decimal       `json:"credit"`
	Balance     decimal.Decimal       `json:"balance"`
	Type        LedgerEntryType       `json:"type"`
	ReferenceID string                `json:"reference_id"`
	TripDetails []delivery.TripDetail `json:"trip_details,omitempty"`
}

// NewInvoiceEntry builds the debit entry for a daily summary
func NewInvoiceEntry(summary *DailySummary, details []delivery.TripDetail) LedgerEntry {
	return LedgerEntry{
		Date: summary.SummaryDate,
		Description: fmt.Sprintf("Daily Summary - %s (Rate: %s)",
			summary.SummaryDate.Format("2006-01-02"), summary.AppliedRate.String()),
		Debit:       summary.CalculatedAmount,
		Credit:      decimal.Zero,
		Type:        LedgerEntryTypeInvoice,
		ReferenceID: summary.ID.String(),
		TripDetails: details,
	}
}

// NewPaymentEntry builds the credit entry for a standalone payment
func NewPaymentEntry(payment *VendorPayment) LedgerEntry {
	return LedgerEntry{
		Date:        payment.PaymentDate,
		Description: fmt.Sprintf("Payment - %s", payment.PaymentMethod),
		Debit:       decimal.Zero,
		Credit:      payment.Amount,
		Type:        LedgerEntryTypePayment,
		ReferenceID: payment.ID.String(),
	}
}

// ComputeRunningBalance sorts entries ascending by date and walks them
// accumulating balance += debit - credit into each entry. The sort is stable,
// so same-date entries keep their discovery order (invoices before payments)
// and recomputation is deterministic. The slice is modified in place.
func ComputeRunningBalance(entries []LedgerEntry) {
	sort.SliceStable(entries, func(i, j int) bool {
		return shared.DateOnly(entries[i].Date).Before(shared.DateOnly(entries[j].Date))
	})
	balance := decimal.Zero
	for i := range entries {
		balance = balance.Add(entries[i].Debit).Sub(entries[i].Credit)
		entries[i].Balance = balance
	}
}

// SortForDisplay reorders entries latest-first for presentation. Balances
// already computed stay attached to their entries.
func SortForDisplay(entries []LedgerEntry) {
	sort.SliceStable(entries, func(i, j int) bool {
		return shared.DateOnly(entries[i].Date).After(shared.DateOnly(entries[j].Date))
	})
}
