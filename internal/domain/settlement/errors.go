package settlement

import "github.com/broilerlink/backend/internal/domain/shared"

// Settlement domain errors. These are business-rule rejections surfaced
// synchronously to the caller; none of them are retryable.
var (
	// ErrSummaryExists is returned when a daily summary already exists for a
	// (vendor, date) pair. Summary creation is a conflict, not an update.
	ErrSummaryExists = shared.NewDomainError("SUMMARY_EXISTS", "A summary for this vendor and date already exists")

	// ErrSummaryFinalized is returned when finalizing an already-finalized summary
	ErrSummaryFinalized = shared.NewDomainError("ALREADY_FINALIZED", "This summary has already been finalized")

	// ErrNoOrdersForDate is returned when a vendor has nothing to summarize on a date
	ErrNoOrdersForDate = shared.NewDomainError("NO_ORDERS_FOR_DATE", "No orders found for this vendor on the specified date")

	// ErrNoBaseRate is returned when no base rate row exists for the exact
	// queried date. There is no fallback to the nearest prior date.
	ErrNoBaseRate = shared.NewDomainError("NO_BASE_RATE", "No base rate set for the specified date")
)
