package partner

import (
	"strings"

	"github.com/broilerlink/backend/internal/domain/shared"
	"github.com/shopspring/decimal"
)

// Vendor represents a supplying vendor in the partner context.
// It is the aggregate root for vendor-related operations. The vendor's
// outstanding balance is a derived view computed from the settlement ledger,
// never stored on the vendor row.
type Vendor struct {
	shared.BaseEntity
	Name          string          `gorm:"type:varchar(200);not null" json:"name"`
	ContactPerson string          `gorm:"type:varchar(100)" json:"contact_person"`
	PhoneNumber   string          `gorm:"type:varchar(50);index" json:"phone_number"`
	Address       string          `gorm:"type:text" json:"address"`
	RateOffset    decimal.Decimal `gorm:"type:decimal(10,2);not null;default:0" json:"rate_offset"`
}

// TableName returns the table name for GORM
func (Vendor) TableName() string {
	return "vendors"
}

// NewVendor creates a new vendor with required fields
func NewVendor(name, contactPerson, phoneNumber, address string) (*Vendor, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, shared.NewDomainError("INVALID_VENDOR_NAME", "Vendor name cannot be empty")
	}
	if len(name) > 200 {
		return nil, shared.NewDomainError("INVALID_VENDOR_NAME", "Vendor name cannot exceed 200 characters")
	}
	return &Vendor{
		BaseEntity:    shared.NewBaseEntity(),
		Name:          name,
		ContactPerson: contactPerson,
		PhoneNumber:   phoneNumber,
		Address:       address,
		RateOffset:    decimal.Zero,
	}, nil
}

// SetRateOffset replaces the vendor's rate-card offset. The offset is a signed
// adjustment added to the day's base rate, so negative values are allowed.
func (v *Vendor) SetRateOffset(offset decimal.Decimal) {
	v.RateOffset = offset
}

// UpdateContact updates the vendor's contact details
func (v *Vendor) UpdateContact(contactPerson, phoneNumber, address string) {
	v.ContactPerson = contactPerson
	v.PhoneNumber = phoneNumber
	v.Address = address
}
