package settlement

import (
	"context"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// BalanceCache caches per-vendor outstanding balances. It is an explicit,
// invalidated-on-write cache: summary creation and payment recording
// invalidate the vendor's entry, and reads recompute on a miss. Services
// accept a nil cache and fall back to recomputing every call.
//
// The cache is best effort: a failing cache never fails the operation.
type BalanceCache interface {
	// Get returns the cached balance and whether it was present
	Get(ctx context.Context, vendorID uuid.UUID) (decimal.Decimal, bool, error)

	// Set stores a vendor's outstanding balance
	Set(ctx context.Context, vendorID uuid.UUID, balance decimal.Decimal) error

	// Invalidate drops a vendor's cached balance
	Invalidate(ctx context.Context, vendorID uuid.UUID) error
}
