package delivery

import (
	"time"

	"github.com/broilerlink/backend/internal/domain/shared"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Driver represents a delivery driver
type Driver struct {
	shared.BaseEntity
	Name        string `gorm:"type:varchar(100);not null" json:"name"`
	PhoneNumber string `gorm:"type:varchar(50)" json:"phone_number"`
}

// TableName returns the table name for GORM
func (Driver) TableName() string {
	return "drivers"
}

// Trip represents a delivery run. The settlement engine only reads trips to
// render the per-summary order breakdown; dispatch workflow lives elsewhere.
type Trip struct {
	shared.BaseEntity
	TripDate     time.Time           `gorm:"type:date" json:"trip_date"`
	Status       string              `gorm:"type:varchar(20);not null" json:"status"`
	DriverID     uuid.UUID           `gorm:"type:uuid;not null;index" json:"driver_id"`
	RouteName    string              `gorm:"type:varchar(200)" json:"route_name"`
	LoadedWeight decimal.NullDecimal `gorm:"type:decimal(10,2)" json:"loaded_weight"`
	StockWeight  decimal.NullDecimal `gorm:"type:decimal(10,2)" json:"stock_weight"`
}

// TableName returns the table name for GORM
func (Trip) TableName() string {
	return "trips"
}

// TripDetail is the read model backing a ledger entry's order breakdown:
// one row per order on a summarized date, joined against the order's trip
// and driver. Purely for display, never part of balance math.
type TripDetail struct {
	TripID     *uuid.UUID          `json:"trip_id"`
	RouteName  string              `json:"route_name"`
	DriverName string              `json:"driver_name"`
	Units      int                 `json:"units"`
	Weight     decimal.NullDecimal `json:"weight"`
}
