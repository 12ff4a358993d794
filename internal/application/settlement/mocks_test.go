package settlement

import (
	"context"
	"time"

	"github.com/broilerlink/backend/internal/domain/delivery"
	"github.com/broilerlink/backend/internal/domain/partner"
	"github.com/broilerlink/backend/internal/domain/settlement"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
)

// MockVendorRepository is a mock implementation of partner.VendorRepository
type MockVendorRepository struct {
	mock.Mock
}

func (m *MockVendorRepository) FindByID(ctx context.Context, id uuid.UUID) (*partner.Vendor, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*partner.Vendor), args.Error(1)
}

func (m *MockVendorRepository) FindAll(ctx context.Context) ([]partner.Vendor, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]partner.Vendor), args.Error(1)
}

func (m *MockVendorRepository) Save(ctx context.Context, vendor *partner.Vendor) error {
	args := m.Called(ctx, vendor)
	return args.Error(0)
}

// MockOrderRepository is a mock implementation of delivery.OrderRepository
type MockOrderRepository struct {
	mock.Mock
}

func (m *MockOrderRepository) FindByVendorAndDate(ctx context.Context, vendorID uuid.UUID, date time.Time) ([]delivery.Order, error) {
	args := m.Called(ctx, vendorID, date)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]delivery.Order), args.Error(1)
}

func (m *MockOrderRepository) FindTripDetails(ctx context.Context, vendorID uuid.UUID, date time.Time) ([]delivery.TripDetail, error) {
	args := m.Called(ctx, vendorID, date)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]delivery.TripDetail), args.Error(1)
}

// MockDailyRateRepository is a mock implementation of settlement.DailyRateRepository
type MockDailyRateRepository struct {
	mock.Mock
}

func (m *MockDailyRateRepository) FindByDate(ctx context.Context, date time.Time) (*settlement.DailyRate, error) {
	args := m.Called(ctx, date)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*settlement.DailyRate), args.Error(1)
}

func (m *MockDailyRateRepository) Save(ctx context.Context, rate *settlement.DailyRate) error {
	args := m.Called(ctx, rate)
	return args.Error(0)
}

// MockDailySummaryRepository is a mock implementation of settlement.DailySummaryRepository
type MockDailySummaryRepository struct {
	mock.Mock
}

func (m *MockDailySummaryRepository) FindByID(ctx context.Context, id uuid.UUID) (*settlement.DailySummary, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*settlement.DailySummary), args.Error(1)
}

func (m *MockDailySummaryRepository) FindByVendor(ctx context.Context, vendorID uuid.UUID) ([]settlement.DailySummary, error) {
	args := m.Called(ctx, vendorID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]settlement.DailySummary), args.Error(1)
}

func (m *MockDailySummaryRepository) FindByDate(ctx context.Context, date time.Time) ([]settlement.DailySummary, error) {
	args := m.Called(ctx, date)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]settlement.DailySummary), args.Error(1)
}

func (m *MockDailySummaryRepository) ExistsByVendorAndDate(ctx context.Context, vendorID uuid.UUID, date time.Time) (bool, error) {
	args := m.Called(ctx, vendorID, date)
	return args.Bool(0), args.Error(1)
}

func (m *MockDailySummaryRepository) Create(ctx context.Context, summary *settlement.DailySummary) error {
	args := m.Called(ctx, summary)
	return args.Error(0)
}

func (m *MockDailySummaryRepository) Save(ctx context.Context, summary *settlement.DailySummary) error {
	args := m.Called(ctx, summary)
	return args.Error(0)
}

// MockVendorPaymentRepository is a mock implementation of settlement.VendorPaymentRepository
type MockVendorPaymentRepository struct {
	mock.Mock
}

func (m *MockVendorPaymentRepository) FindByVendor(ctx context.Context, vendorID uuid.UUID) ([]settlement.VendorPayment, error) {
	args := m.Called(ctx, vendorID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]settlement.VendorPayment), args.Error(1)
}

func (m *MockVendorPaymentRepository) FindByDate(ctx context.Context, date time.Time) ([]settlement.VendorPayment, error) {
	args := m.Called(ctx, date)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]settlement.VendorPayment), args.Error(1)
}

func (m *MockVendorPaymentRepository) Create(ctx context.Context, payment *settlement.VendorPayment) error {
	args := m.Called(ctx, payment)
	return args.Error(0)
}

// MockRateResolver is a mock implementation of RateResolver
type MockRateResolver struct {
	mock.Mock
}

func (m *MockRateResolver) EffectiveRate(ctx context.Context, vendorID uuid.UUID, date time.Time) (decimal.Decimal, error) {
	args := m.Called(ctx, vendorID, date)
	return args.Get(0).(decimal.Decimal), args.Error(1)
}

// MockBalanceCache is a mock implementation of BalanceCache
type MockBalanceCache struct {
	mock.Mock
}

func (m *MockBalanceCache) Get(ctx context.Context, vendorID uuid.UUID) (decimal.Decimal, bool, error) {
	args := m.Called(ctx, vendorID)
	return args.Get(0).(decimal.Decimal), args.Bool(1), args.Error(2)
}

func (m *MockBalanceCache) Set(ctx context.Context, vendorID uuid.UUID, balance decimal.Decimal) error {
	args := m.Called(ctx, vendorID, balance)
	return args.Error(0)
}

func (m *MockBalanceCache) Invalidate(ctx context.Context, vendorID uuid.UUID) error {
	args := m.Called(ctx, vendorID)
	return args.Error(0)
}
