package settlement

import (
	"context"
	"fmt"
	"time"

	"github.com/broilerlink/backend/internal/domain/delivery"
	"github.com/broilerlink/backend/internal/domain/partner"
	"github.com/broilerlink/backend/internal/domain/settlement"
	"github.com/broilerlink/backend/internal/domain/shared"
	"github.com/broilerlink/backend/internal/infrastructure/telemetry"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// LedgerService merges daily summaries and standalone payments into a
// vendor's chronological, balance-carrying ledger, and records new payments.
// Ledger entries are derived on every read; nothing here persists view state.
type LedgerService struct {
	vendorRepo  partner.VendorRepository
	summaryRepo settlement.DailySummaryRepository
	paymentRepo settlement.VendorPaymentRepository
	orderRepo   delivery.OrderRepository
	cache       BalanceCache
}

// NewLedgerService creates a new LedgerService.
// cache may be nil; balances are then recomputed on every read.
func NewLedgerService(
	vendorRepo partner.VendorRepository,
	summaryRepo settlement.DailySummaryRepository,
	paymentRepo settlement.VendorPaymentRepository,
	orderRepo delivery.OrderRepository,
	cache BalanceCache,
) *LedgerService {
	return &LedgerService{
		vendorRepo:  vendorRepo,
		summaryRepo: summaryRepo,
		paymentRepo: paymentRepo,
		orderRepo:   orderRepo,
		cache:       cache,
	}
}

// GetVendorLedger builds the vendor's merged ledger view: one INVOICE entry
// per daily summary and one PAYMENT entry per standalone payment, sorted
// ascending by date (same-date ties keep discovery order: summaries before
// payments) for the running-balance walk, then presented latest-first.
func (s *LedgerService) GetVendorLedger(ctx context.Context, vendorID uuid.UUID) (*VendorLedgerView, error) {
	vendor, err := s.vendorRepo.FindByID(ctx, vendorID)
	if err != nil {
		return nil, err
	}

	summaries, err := s.summaryRepo.FindByVendor(ctx, vendor.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to load summaries: %w", err)
	}
	payments, err := s.paymentRepo.FindByVendor(ctx, vendor.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to load payments: %w", err)
	}

	totalCalculated := decimal.Zero
	for _, summary := range summaries {
		totalCalculated = totalCalculated.Add(summary.CalculatedAmount)
	}
	totalPaid := decimal.Zero
	for _, payment := range payments {
		totalPaid = totalPaid.Add(payment.Amount)
	}

	entries := make([]settlement.LedgerEntry, 0, len(summaries)+len(payments))
	for i := range summaries {
		// read-time join for the display breakdown; not part of balance math
		details, err := s.orderRepo.FindTripDetails(ctx, vendor.ID, summaries[i].SummaryDate)
		if err != nil {
			return nil, fmt.Errorf("failed to load trip details: %w", err)
		}
		entries = append(entries, settlement.NewInvoiceEntry(&summaries[i], details))
	}
	for i := range payments {
		entries = append(entries, settlement.NewPaymentEntry(&payments[i]))
	}

	settlement.ComputeRunningBalance(entries)
	settlement.SortForDisplay(entries)

	return &VendorLedgerView{
		VendorName:            vendor.Name,
		TotalCalculatedAmount: totalCalculated,
		TotalPaidAmount:       totalPaid,
		TotalDueAmount:        totalCalculated.Sub(totalPaid),
		Entries:               entries,
	}, nil
}

// RecordPayment appends a standalone payment for a vendor. Amount validation
// happens upstream; this layer only requires that the vendor exists.
func (s *LedgerService) RecordPayment(ctx context.Context, req RecordPaymentRequest) (*settlement.VendorPayment, error) {
	ctx, span := telemetry.StartServiceSpan(ctx, "ledger", "record_payment")
	defer span.End()
	telemetry.SetAttributes(span,
		"vendor_id", req.VendorID.String(),
		"amount", req.Amount.String(),
	)

	vendor, err := s.vendorRepo.FindByID(ctx, req.VendorID)
	if err != nil {
		telemetry.RecordError(span, err)
		return nil, err
	}

	payment := settlement.NewVendorPayment(vendor.ID, req.PaymentDate, req.Amount, req.PaymentMethod, req.Notes)
	if err := s.paymentRepo.Create(ctx, payment); err != nil {
		telemetry.RecordError(span, err)
		return nil, fmt.Errorf("failed to record payment: %w", err)
	}

	if s.cache != nil {
		_ = s.cache.Invalidate(ctx, vendor.ID)
	}
	return payment, nil
}

// GetDailyOverview returns every summary and standalone payment dated exactly
// date, with three aggregates. TotalPaidAmount adds the summaries' captured
// order payments to the standalone payments for the day, so money recorded
// through both paths is counted twice; see DailyOverviewView.
func (s *LedgerService) GetDailyOverview(ctx context.Context, date time.Time) (*DailyOverviewView, error) {
	date = shared.DateOnly(date)

	summaries, err := s.summaryRepo.FindByDate(ctx, date)
	if err != nil {
		return nil, fmt.Errorf("failed to load summaries: %w", err)
	}
	payments, err := s.paymentRepo.FindByDate(ctx, date)
	if err != nil {
		return nil, fmt.Errorf("failed to load payments: %w", err)
	}

	totalCalculated := decimal.Zero
	totalPaid := decimal.Zero
	totalDue := decimal.Zero
	for _, summary := range summaries {
		totalCalculated = totalCalculated.Add(summary.CalculatedAmount)
		totalPaid = totalPaid.Add(summary.TotalPaid)
		totalDue = totalDue.Add(summary.DueAmount)
	}
	for _, payment := range payments {
		totalPaid = totalPaid.Add(payment.Amount)
	}

	return &DailyOverviewView{
		Date:                  date,
		Summaries:             summaries,
		Payments:              payments,
		TotalCalculatedAmount: totalCalculated,
		TotalPaidAmount:       totalPaid,
		TotalDueAmount:        totalDue,
	}, nil
}
