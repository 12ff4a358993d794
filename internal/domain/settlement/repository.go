package settlement

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// DailyRateRepository defines the interface for base rate persistence
type DailyRateRepository interface {
	// FindByDate finds the base rate for an exact calendar date.
	// Returns shared.ErrNotFound when no row exists for that date.
	FindByDate(ctx context.Context, date time.Time) (*DailyRate, error)

	// Save creates or updates a base rate row
	Save(ctx context.Context, rate *DailyRate) error
}

// DailySummaryRepository defines the interface for daily summary persistence
type DailySummaryRepository interface {
	// FindByID finds a summary by ID
	FindByID(ctx context.Context, id uuid.UUID) (*DailySummary, error)

	// FindByVendor returns all summaries for a vendor, newest date first
	FindByVendor(ctx context.Context, vendorID uuid.UUID) ([]DailySummary, error)

	// FindByDate returns all summaries dated exactly date
	FindByDate(ctx context.Context, date time.Time) ([]DailySummary, error)

	// ExistsByVendorAndDate checks whether a (vendor, date) summary exists
	ExistsByVendorAndDate(ctx context.Context, vendorID uuid.UUID, date time.Time) (bool, error)

	// Create inserts a new summary. The store's unique constraint on
	// (vendor_id, summary_date) is the last line of defense against
	// concurrent duplicate creation; a duplicate-key rejection is
	// translated to ErrSummaryExists.
	Create(ctx context.Context, summary *DailySummary) error

	// Save persists changes to an existing summary (finalize flag only)
	Save(ctx context.Context, summary *DailySummary) error
}

// VendorPaymentRepository defines the interface for standalone payment persistence
type VendorPaymentRepository interface {
	// FindByVendor returns all payments for a vendor in insertion order
	FindByVendor(ctx context.Context, vendorID uuid.UUID) ([]VendorPayment, error)

	// FindByDate returns all payments dated exactly date, in insertion order
	FindByDate(ctx context.Context, date time.Time) ([]VendorPayment, error)

	// Create appends a new payment record
	Create(ctx context.Context, payment *VendorPayment) error
}
