package persistence

import (
	"context"
	"time"

	"github.com/broilerlink/backend/internal/domain/delivery"
	"github.com/broilerlink/backend/internal/domain/shared"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GormOrderRepository implements the settlement-facing read side of
// OrderRepository using GORM. Order lifecycle writes live in the dispatch
// system and are not exposed here.
type GormOrderRepository struct {
	db *gorm.DB
}

// NewGormOrderRepository creates a new GormOrderRepository
func NewGormOrderRepository(db *gorm.DB) *GormOrderRepository {
	return &GormOrderRepository{db: db}
}

// FindByVendorAndDate returns all orders for a vendor on a calendar date,
// in creation order
func (r *GormOrderRepository) FindByVendorAndDate(ctx context.Context, vendorID uuid.UUID, date time.Time) ([]delivery.Order, error) {
	var orders []delivery.Order
	if err := r.db.WithContext(ctx).
		Where("vendor_id = ? AND order_date = ?", vendorID, shared.DateOnly(date)).
		Order("created_at ASC").
		Find(&orders).Error; err != nil {
		return nil, err
	}
	return orders, nil
}

// FindTripDetails returns the display breakdown for a vendor's orders on a
// calendar date: one row per order, joined against its trip and driver.
// Orders not yet assigned to a trip still appear, with empty route and
// driver fields.
func (r *GormOrderRepository) FindTripDetails(ctx context.Context, vendorID uuid.UUID, date time.Time) ([]delivery.TripDetail, error) {
	var details []delivery.TripDetail
	if err := r.db.WithContext(ctx).
		Table("orders").
		Select(`orders.trip_id,
			COALESCE(trips.route_name, '') AS route_name,
			COALESCE(drivers.name, '') AS driver_name,
			COALESCE(orders.delivered_units, orders.assigned_units) AS units,
			orders.weight`).
		Joins("LEFT JOIN trips ON trips.id = orders.trip_id").
		Joins("LEFT JOIN drivers ON drivers.id = trips.driver_id").
		Where("orders.vendor_id = ? AND orders.order_date = ?", vendorID, shared.DateOnly(date)).
		Order("orders.created_at ASC").
		Scan(&details).Error; err != nil {
		return nil, err
	}
	return details, nil
}

// Ensure GormOrderRepository implements OrderRepository
var _ delivery.OrderRepository = (*GormOrderRepository)(nil)
