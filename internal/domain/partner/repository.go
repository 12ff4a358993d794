package partner

import (
	"context"

	"github.com/google/uuid"
)

// VendorRepository defines the interface for vendor persistence
type VendorRepository interface {
	// FindByID finds a vendor by ID
	FindByID(ctx context.Context, id uuid.UUID) (*Vendor, error)

	// FindAll returns all vendors ordered by name
	FindAll(ctx context.Context) ([]Vendor, error)

	// Save creates or updates a vendor
	Save(ctx context.Context, vendor *Vendor) error
}
