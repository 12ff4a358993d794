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

// RateResolver resolves the effective rate for a vendor on a date.
// RateService is the production implementation.
type RateResolver interface {
	EffectiveRate(ctx context.Context, vendorID uuid.UUID, date time.Time) (decimal.Decimal, error)
}

// ReconciliationService turns a vendor's delivered orders for one date into a
// daily settlement summary. Creation is not idempotent: a second summary for
// the same (vendor, date) is a conflict, so callers either probe with
// SummaryExists first or handle settlement.ErrSummaryExists.
type ReconciliationService struct {
	vendorRepo  partner.VendorRepository
	orderRepo   delivery.OrderRepository
	summaryRepo settlement.DailySummaryRepository
	rates       RateResolver
	cache       BalanceCache
}

// NewReconciliationService creates a new ReconciliationService.
// cache may be nil; balances are then recomputed on every read.
func NewReconciliationService(
	vendorRepo partner.VendorRepository,
	orderRepo delivery.OrderRepository,
	summaryRepo settlement.DailySummaryRepository,
	rates RateResolver,
	cache BalanceCache,
) *ReconciliationService {
	return &ReconciliationService{
		vendorRepo:  vendorRepo,
		orderRepo:   orderRepo,
		summaryRepo: summaryRepo,
		rates:       rates,
		cache:       cache,
	}
}

// CalculateAndSaveDailySummary aggregates a vendor's orders for a date into a
// new, unfinalized daily summary.
//
// Orders with no recorded weight are excluded from the weight sum, and orders
// with no recorded payment are excluded from the payment sum; neither is
// treated as a zero-value failure. The store's unique (vendor, date)
// constraint backs the existence probe, so a concurrent duplicate insert also
// surfaces as settlement.ErrSummaryExists.
func (s *ReconciliationService) CalculateAndSaveDailySummary(ctx context.Context, vendorID uuid.UUID, date time.Time) (*settlement.DailySummary, error) {
	ctx, span := telemetry.StartServiceSpan(ctx, "reconciliation", "calculate_daily_summary")
	defer span.End()
	telemetry.SetAttributes(span,
		"vendor_id", vendorID.String(),
		"summary_date", shared.DateOnly(date).Format("2006-01-02"),
	)

	vendor, err := s.vendorRepo.FindByID(ctx, vendorID)
	if err != nil {
		telemetry.RecordError(span, err)
		return nil, err
	}

	date = shared.DateOnly(date)
	exists, err := s.summaryRepo.ExistsByVendorAndDate(ctx, vendor.ID, date)
	if err != nil {
		telemetry.RecordError(span, err)
		return nil, fmt.Errorf("failed to check for existing summary: %w", err)
	}
	if exists {
		telemetry.RecordError(span, settlement.ErrSummaryExists)
		return nil, settlement.ErrSummaryExists
	}

	orders, err := s.orderRepo.FindByVendorAndDate(ctx, vendor.ID, date)
	if err != nil {
		telemetry.RecordError(span, err)
		return nil, fmt.Errorf("failed to load orders: %w", err)
	}
	if len(orders) == 0 {
		telemetry.RecordError(span, settlement.ErrNoOrdersForDate)
		return nil, settlement.ErrNoOrdersForDate
	}

	totalWeight := decimal.Zero
	totalPayments := decimal.Zero
	for _, order := range orders {
		if order.HasWeight() {
			totalWeight = totalWeight.Add(order.Weight.Decimal)
		}
		if order.HasPayment() {
			totalPayments = totalPayments.Add(order.PaymentAmount.Decimal)
		}
	}

	appliedRate, err := s.rates.EffectiveRate(ctx, vendor.ID, date)
	if err != nil {
		// rate resolution failures surface unchanged
		telemetry.RecordError(span, err)
		return nil, err
	}

	summary := settlement.NewDailySummary(vendor.ID, date, totalWeight, appliedRate, totalPayments)
	if err := s.summaryRepo.Create(ctx, summary); err != nil {
		telemetry.RecordError(span, err)
		return nil, err
	}

	s.invalidateBalance(ctx, vendor.ID)
	return summary, nil
}

// SummaryExists reports whether a (vendor, date) summary already exists.
// Fails with shared.ErrNotFound only when the vendor is unknown.
func (s *ReconciliationService) SummaryExists(ctx context.Context, vendorID uuid.UUID, date time.Time) (bool, error) {
	vendor, err := s.vendorRepo.FindByID(ctx, vendorID)
	if err != nil {
		return false, err
	}
	return s.summaryRepo.ExistsByVendorAndDate(ctx, vendor.ID, shared.DateOnly(date))
}

// FinalizeSummary flips a summary's finalized flag. The transition is one-way;
// finalizing an already-finalized summary fails with
// settlement.ErrSummaryFinalized and leaves the flag set.
func (s *ReconciliationService) FinalizeSummary(ctx context.Context, summaryID uuid.UUID) (*settlement.DailySummary, error) {
	ctx, span := telemetry.StartServiceSpan(ctx, "reconciliation", "finalize_summary")
	defer span.End()
	telemetry.SetAttributes(span, "summary_id", summaryID.String())

	summary, err := s.summaryRepo.FindByID(ctx, summaryID)
	if err != nil {
		telemetry.RecordError(span, err)
		return nil, err
	}
	if err := summary.Finalize(); err != nil {
		telemetry.RecordError(span, err)
		return nil, err
	}
	if err := s.summaryRepo.Save(ctx, summary); err != nil {
		telemetry.RecordError(span, err)
		return nil, fmt.Errorf("failed to save summary: %w", err)
	}
	return summary, nil
}

// invalidateBalance drops the vendor's cached outstanding balance. Best
// effort: cache failures never fail the write that triggered them.
func (s *ReconciliationService) invalidateBalance(ctx context.Context, vendorID uuid.UUID) {
	if s.cache == nil {
		return
	}
	_ = s.cache.Invalidate(ctx, vendorID)
}
