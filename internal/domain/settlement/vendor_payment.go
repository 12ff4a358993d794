package settlement

import (
	"time"

	"github.com/broilerlink/backend/internal/domain/shared"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// VendorPayment is a standalone payment event to a vendor, not tied to any
// particular daily summary. Payment rows are append-only: they are never
// mutated after creation.
type VendorPayment struct {
	shared.BaseEntity
	VendorID      uuid.UUID       `gorm:"type:uuid;not null;index" json:"vendor_id"`
	PaymentDate   time.Time       `gorm:"type:date;not null;index" json:"payment_date"`
	Amount        decimal.Decimal `gorm:"type:decimal(12,2);not null" json:"amount"`
	PaymentMethod string          `gorm:"type:varchar(50)" json:"payment_method"`
	Notes         string          `gorm:"type:text" json:"notes"`
}

// TableName returns the table name for GORM
func (VendorPayment) TableName() string {
	return "vendor_payments"
}

// NewVendorPayment creates a payment record. Amount sign and magnitude are
// validated upstream, not here.
func NewVendorPayment(vendorID uuid.UUID, date time.Time, amount decimal.Decimal, method, notes string) *VendorPayment {
	return &VendorPayment{
		BaseEntity:    shared.NewBaseEntity(),
		VendorID:      vendorID,
		PaymentDate:   shared.DateOnly(date),
		Amount:        amount,
		PaymentMethod: method,
		Notes:         notes,
	}
}
