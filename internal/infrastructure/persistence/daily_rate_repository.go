package persistence

import (
	"context"
	"errors"
	"time"

	"github.com/broilerlink/backend/internal/domain/settlement"
	"github.com/broilerlink/backend/internal/domain/shared"
	"gorm.io/gorm"
)

// GormDailyRateRepository implements DailyRateRepository using GORM
type GormDailyRateRepository struct {
	db *gorm.DB
}

// NewGormDailyRateRepository creates a new GormDailyRateRepository
func NewGormDailyRateRepository(db *gorm.DB) *GormDailyRateRepository {
	return &GormDailyRateRepository{db: db}
}

// FindByDate finds the base rate for an exact calendar date. There is no
// fallback to earlier dates; a missing row is shared.ErrNotFound.
func (r *GormDailyRateRepository) FindByDate(ctx context.Context, date time.Time) (*settlement.DailyRate, error) {
	var rate settlement.DailyRate
	if err := r.db.WithContext(ctx).
		Where("rate_date = ?", shared.DateOnly(date)).
		First(&rate).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &rate, nil
}

// Save creates or updates a base rate row
func (r *GormDailyRateRepository) Save(ctx context.Context, rate *settlement.DailyRate) error {
	return r.db.WithContext(ctx).Save(rate).Error
}

// Ensure GormDailyRateRepository implements DailyRateRepository
var _ settlement.DailyRateRepository = (*GormDailyRateRepository)(nil)
