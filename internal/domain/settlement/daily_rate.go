package settlement

import (
	"time"

	"github.com/broilerlink/backend/internal/domain/shared"
	"github.com/shopspring/decimal"
)

// DailyRate is the process-wide base price per weight unit for one calendar
// date. At most one row exists per date; rate-card saves upsert it.
type DailyRate struct {
	shared.BaseEntity
	RateDate time.Time       `gorm:"type:date;not null;uniqueIndex" json:"rate_date"`
	Rate     decimal.Decimal `gorm:"type:decimal(10,2);not null" json:"rate"`
}

// TableName returns the table name for GORM
func (DailyRate) TableName() string {
	return "daily_rates"
}

// NewDailyRate creates a base rate for a date
func NewDailyRate(date time.Time, rate decimal.Decimal) *DailyRate {
	return &DailyRate{
		BaseEntity: shared.NewBaseEntity(),
		RateDate:   shared.DateOnly(date),
		Rate:       rate,
	}
}

// SetRate replaces the rate value for this date
func (r *DailyRate) SetRate(rate decimal.Decimal) {
	r.Rate = rate
}
