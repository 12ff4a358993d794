package persistence

import (
	"context"
	"time"

	"github.com/broilerlink/backend/internal/domain/settlement"
	"github.com/broilerlink/backend/internal/domain/shared"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GormVendorPaymentRepository implements VendorPaymentRepository using GORM
type GormVendorPaymentRepository struct {
	db *gorm.DB
}

// NewGormVendorPaymentRepository creates a new GormVendorPaymentRepository
func NewGormVendorPaymentRepository(db *gorm.DB) *GormVendorPaymentRepository {
	return &GormVendorPaymentRepository{db: db}
}

// FindByVendor returns all payments for a vendor in insertion order
func (r *GormVendorPaymentRepository) FindByVendor(ctx context.Context, vendorID uuid.UUID) ([]settlement.VendorPayment, error) {
	var payments []settlement.VendorPayment
	if err := r.db.WithContext(ctx).
		Where("vendor_id = ?", vendorID).
		Order("created_at ASC").
		Find(&payments).Error; err != nil {
		return nil, err
	}
	return payments, nil
}

// FindByDate returns all payments dated exactly date, in insertion order
func (r *GormVendorPaymentRepository) FindByDate(ctx context.Context, date time.Time) ([]settlement.VendorPayment, error) {
	var payments []settlement.VendorPayment
	if err := r.db.WithContext(ctx).
		Where("payment_date = ?", shared.DateOnly(date)).
		Order("created_at ASC").
		Find(&payments).Error; err != nil {
		return nil, err
	}
	return payments, nil
}

// Create appends a new payment record
func (r *GormVendorPaymentRepository) Create(ctx context.Context, payment *settlement.VendorPayment) error {
	return r.db.WithContext(ctx).Create(payment).Error
}

// Ensure GormVendorPaymentRepository implements VendorPaymentRepository
var _ settlement.VendorPaymentRepository = (*GormVendorPaymentRepository)(nil)
