package delivery

import (
	"time"

	"github.com/broilerlink/backend/internal/domain/shared"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// OrderStatus represents the lifecycle state of a delivery order
type OrderStatus string

const (
	OrderStatusPending   OrderStatus = "PENDING"   // Created but not yet assigned to a trip
	OrderStatusAssigned  OrderStatus = "ASSIGNED"  // Assigned to a trip
	OrderStatusDelivered OrderStatus = "DELIVERED" // Successfully delivered
)

// IsValid checks if the status is a valid OrderStatus
func (s OrderStatus) IsValid() bool {
	switch s {
	case OrderStatusPending, OrderStatusAssigned, OrderStatusDelivered:
		return true
	}
	return false
}

// String returns the string representation of OrderStatus
func (s OrderStatus) String() string {
	return string(s)
}

// Order represents a vendor delivery order. The settlement engine consumes
// orders read-only: weight and payment amount are captured at delivery time and
// stay NULL until then, which is why both are nullable decimals. Orders without
// a weight or payment are excluded from the respective settlement sums rather
// than counted as zero.
type Order struct {
	shared.BaseEntity
	VendorID       uuid.UUID           `gorm:"type:uuid;not null;index:idx_orders_vendor_date,priority:1" json:"vendor_id"`
	OrderDate      time.Time           `gorm:"type:date;not null;index:idx_orders_vendor_date,priority:2" json:"order_date"`
	AssignedUnits  int                 `gorm:"not null" json:"assigned_units"`
	DeliveredUnits *int                `json:"delivered_units"`
	Weight         decimal.NullDecimal `gorm:"type:decimal(10,2)" json:"weight"`
	PaymentAmount  decimal.NullDecimal `gorm:"type:decimal(10,2)" json:"payment_amount"`
	Status         OrderStatus         `gorm:"type:varchar(20);not null" json:"status"`
	TripID         *uuid.UUID          `gorm:"type:uuid;index" json:"trip_id"`
}

// TableName returns the table name for GORM
func (Order) TableName() string {
	return "orders"
}

// HasWeight reports whether a delivered weight has been recorded
func (o *Order) HasWeight() bool {
	return o.Weight.Valid
}

// HasPayment reports whether a payment amount has been recorded
func (o *Order) HasPayment() bool {
	return o.PaymentAmount.Valid
}
