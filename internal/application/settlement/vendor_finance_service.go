package settlement

import (
	"context"
	"fmt"

	"github.com/broilerlink/backend/internal/domain/partner"
	"github.com/broilerlink/backend/internal/domain/settlement"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// VendorFinanceService rolls up billed/paid/outstanding totals across the
// vendor portfolio. Outstanding balances are derived views; when a cache is
// configured it is read-through and invalidated by the settlement writes.
type VendorFinanceService struct {
	vendorRepo  partner.VendorRepository
	summaryRepo settlement.DailySummaryRepository
	paymentRepo settlement.VendorPaymentRepository
	cache       BalanceCache
}

// NewVendorFinanceService creates a new VendorFinanceService.
// cache may be nil; balances are then recomputed on every read.
func NewVendorFinanceService(
	vendorRepo partner.VendorRepository,
	summaryRepo settlement.DailySummaryRepository,
	paymentRepo settlement.VendorPaymentRepository,
	cache BalanceCache,
) *VendorFinanceService {
	return &VendorFinanceService{
		vendorRepo:  vendorRepo,
		summaryRepo: summaryRepo,
		paymentRepo: paymentRepo,
		cache:       cache,
	}
}

// GetVendorFinancialSummaries computes every vendor's totals. Vendors with no
// summaries and no payments report zeros; there are no failure modes beyond
// storage errors.
func (s *VendorFinanceService) GetVendorFinancialSummaries(ctx context.Context) ([]VendorFinancialSummaryView, error) {
	vendors, err := s.vendorRepo.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load vendors: %w", err)
	}

	views := make([]VendorFinancialSummaryView, 0, len(vendors))
	for _, vendor := range vendors {
		totalBilled, totalPaid, err := s.computeTotals(ctx, vendor.ID)
		if err != nil {
			return nil, err
		}
		outstanding := totalBilled.Sub(totalPaid)
		s.cacheBalance(ctx, vendor.ID, outstanding)

		views = append(views, VendorFinancialSummaryView{
			VendorID:           vendor.ID,
			VendorName:         vendor.Name,
			TotalBilled:        totalBilled,
			TotalPaid:          totalPaid,
			OutstandingBalance: outstanding,
		})
	}
	return views, nil
}

// OutstandingBalance returns one vendor's outstanding balance, serving from
// the cache when possible.
func (s *VendorFinanceService) OutstandingBalance(ctx context.Context, vendorID uuid.UUID) (decimal.Decimal, error) {
	vendor, err := s.vendorRepo.FindByID(ctx, vendorID)
	if err != nil {
		return decimal.Zero, err
	}

	if s.cache != nil {
		if balance, ok, err := s.cache.Get(ctx, vendor.ID); err == nil && ok {
			return balance, nil
		}
	}

	totalBilled, totalPaid, err := s.computeTotals(ctx, vendor.ID)
	if err != nil {
		return decimal.Zero, err
	}
	outstanding := totalBilled.Sub(totalPaid)
	s.cacheBalance(ctx, vendor.ID, outstanding)
	return outstanding, nil
}

func (s *VendorFinanceService) computeTotals(ctx context.Context, vendorID uuid.UUID) (billed, paid decimal.Decimal, err error) {
	summaries, err := s.summaryRepo.FindByVendor(ctx, vendorID)
	if err != nil {
		return decimal.Zero, decimal.Zero, fmt.Errorf("failed to load summaries: %w", err)
	}
	payments, err := s.paymentRepo.FindByVendor(ctx, vendorID)
	if err != nil {
		return decimal.Zero, decimal.Zero, fmt.Errorf("failed to load payments: %w", err)
	}

	billed = decimal.Zero
	for _, summary := range summaries {
		billed = billed.Add(summary.CalculatedAmount)
	}
	paid = decimal.Zero
	for _, payment := range payments {
		paid = paid.Add(payment.Amount)
	}
	return billed, paid, nil
}

func (s *VendorFinanceService) cacheBalance(ctx context.Context, vendorID uuid.UUID, balance decimal.Decimal) {
	if s.cache == nil {
		return
	}
	_ = s.cache.Set(ctx, vendorID, balance)
}
