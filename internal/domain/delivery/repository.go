package delivery

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// OrderRepository defines the read-side interface the settlement engine uses
// to consume delivery orders. Order lifecycle writes belong to the dispatch
// layer and are deliberately absent here.
type OrderRepository interface {
	// FindByVendorAndDate returns all orders for a vendor on a calendar date,
	// in creation order
	FindByVendorAndDate(ctx context.Context, vendorID uuid.UUID, date time.Time) ([]Order, error)

	// FindTripDetails returns the display breakdown (trip, route, driver,
	// units, weight) for a vendor's orders on a calendar date
	FindTripDetails(ctx context.Context, vendorID uuid.UUID, date time.Time) ([]TripDetail, error)
}
