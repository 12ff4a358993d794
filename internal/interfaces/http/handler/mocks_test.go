package handler

import (
	"context"
	"sort"
	"time"

	"github.com/broilerlink/backend/internal/domain/delivery"
	"github.com/broilerlink/backend/internal/domain/partner"
	"github.com/broilerlink/backend/internal/domain/settlement"
	"github.com/broilerlink/backend/internal/domain/shared"
	"github.com/google/uuid"
)

// In-memory repository fakes backing real application services in handler
// tests.

type mockVendorRepository struct {
	vendors   map[uuid.UUID]*partner.Vendor
	returnErr error
}

func newMockVendorRepository() *mockVendorRepository {
	return &mockVendorRepository{vendors: make(map[uuid.UUID]*partner.Vendor)}
}

func (m *mockVendorRepository) FindByID(ctx context.Context, id uuid.UUID) (*partner.Vendor, error) {
	if m.returnErr != nil {
		return nil, m.returnErr
	}
	if vendor, ok := m.vendors[id]; ok {
		return vendor, nil
	}
	return nil, shared.ErrNotFound
}

func (m *mockVendorRepository) FindAll(ctx context.Context) ([]partner.Vendor, error) {
	if m.returnErr != nil {
		return nil, m.returnErr
	}
	result := make([]partner.Vendor, 0, len(m.vendors))
	for _, vendor := range m.vendors {
		result = append(result, *vendor)
	}
	sort.Slice(result, func(i, j int) bool {
		return result[i].Name < result[j].Name
	})
	return result, nil
}

func (m *mockVendorRepository) Save(ctx context.Context, vendor *partner.Vendor) error {
	if m.returnErr != nil {
		return m.returnErr
	}
	m.vendors[vendor.ID] = vendor
	return nil
}

type mockDailyRateRepository struct {
	rates map[time.Time]*settlement.DailyRate
}

func newMockDailyRateRepository() *mockDailyRateRepository {
	return &mockDailyRateRepository{rates: make(map[time.Time]*settlement.DailyRate)}
}

func (m *mockDailyRateRepository) FindByDate(ctx context.Context, date time.Time) (*settlement.DailyRate, error) {
	if rate, ok := m.rates[shared.DateOnly(date)]; ok {
		return rate, nil
	}
	return nil, shared.ErrNotFound
}

func (m *mockDailyRateRepository) Save(ctx context.Context, rate *settlement.DailyRate) error {
	m.rates[shared.DateOnly(rate.RateDate)] = rate
	return nil
}

type mockDailySummaryRepository struct {
	summaries map[uuid.UUID]*settlement.DailySummary
}

func newMockDailySummaryRepository() *mockDailySummaryRepository {
	return &mockDailySummaryRepository{summaries: make(map[uuid.UUID]*settlement.DailySummary)}
}

func (m *mockDailySummaryRepository) FindByID(ctx context.Context, id uuid.UUID) (*settlement.DailySummary, error) {
	if summary, ok := m.summaries[id]; ok {
		return summary, nil
	}
	return nil, shared.ErrNotFound
}

func (m *mockDailySummaryRepository) FindByVendor(ctx context.Context, vendorID uuid.UUID) ([]settlement.DailySummary, error) {
	var result []settlement.DailySummary
	for _, summary := range m.summaries {
		if summary.VendorID == vendorID {
			result = append(result, *summary)
		}
	}
	sort.Slice(result, func(i, j int) bool {
		return result[i].SummaryDate.After(result[j].SummaryDate)
	})
	return result, nil
}

func (m *mockDailySummaryRepository) FindByDate(ctx context.Context, date time.Time) ([]settlement.DailySummary, error) {
	var result []settlement.DailySummary
	for _, summary := range m.summaries {
		if summary.SummaryDate.Equal(shared.DateOnly(date)) {
			result = append(result, *summary)
		}
	}
	return result, nil
}

func (m *mockDailySummaryRepository) ExistsByVendorAndDate(ctx context.Context, vendorID uuid.UUID, date time.Time) (bool, error) {
	for _, summary := range m.summaries {
		if summary.VendorID == vendorID && summary.SummaryDate.Equal(shared.DateOnly(date)) {
			return true, nil
		}
	}
	return false, nil
}

func (m *mockDailySummaryRepository) Create(ctx context.Context, summary *settlement.DailySummary) error {
	exists, _ := m.ExistsByVendorAndDate(ctx, summary.VendorID, summary.SummaryDate)
	if exists {
		return settlement.ErrSummaryExists
	}
	m.summaries[summary.ID] = summary
	return nil
}

func (m *mockDailySummaryRepository) Save(ctx context.Context, summary *settlement.DailySummary) error {
	m.summaries[summary.ID] = summary
	return nil
}

type mockVendorPaymentRepository struct {
	payments []settlement.VendorPayment
}

func newMockVendorPaymentRepository() *mockVendorPaymentRepository {
	return &mockVendorPaymentRepository{}
}

func (m *mockVendorPaymentRepository) FindByVendor(ctx context.Context, vendorID uuid.UUID) ([]settlement.VendorPayment, error) {
	var result []settlement.VendorPayment
	for _, payment := range m.payments {
		if payment.VendorID == vendorID {
			result = append(result, payment)
		}
	}
	return result, nil
}

func (m *mockVendorPaymentRepository) FindByDate(ctx context.Context, date time.Time) ([]settlement.VendorPayment, error) {
	var result []settlement.VendorPayment
	for _, payment := range m.payments {
		if payment.PaymentDate.Equal(shared.DateOnly(date)) {
			result = append(result, payment)
		}
	}
	return result, nil
}

func (m *mockVendorPaymentRepository) Create(ctx context.Context, payment *settlement.VendorPayment) error {
	m.payments = append(m.payments, *payment)
	return nil
}

type mockOrderRepository struct {
	orders      []delivery.Order
	tripDetails []delivery.TripDetail
}

func newMockOrderRepository() *mockOrderRepository {
	return &mockOrderRepository{}
}

func (m *mockOrderRepository) FindByVendorAndDate(ctx context.Context, vendorID uuid.UUID, date time.Time) ([]delivery.Order, error) {
	var result []delivery.Order
	for _, order := range m.orders {
		if order.VendorID == vendorID && shared.DateOnly(order.OrderDate).Equal(shared.DateOnly(date)) {
			result = append(result, order)
		}
	}
	return result, nil
}

func (m *mockOrderRepository) FindTripDetails(ctx context.Context, vendorID uuid.UUID, date time.Time) ([]delivery.TripDetail, error) {
	return m.tripDetails, nil
}
