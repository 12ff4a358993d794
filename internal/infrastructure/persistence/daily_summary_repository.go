package persistence

import (
	"context"
	"errors"
	"time"

	"github.com/broilerlink/backend/internal/domain/settlement"
	"github.com/broilerlink/backend/internal/domain/shared"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GormDailySummaryRepository implements DailySummaryRepository using GORM
type GormDailySummaryRepository struct {
	db *gorm.DB
}

// NewGormDailySummaryRepository creates a new GormDailySummaryRepository
func NewGormDailySummaryRepository(db *gorm.DB) *GormDailySummaryRepository {
	return &GormDailySummaryRepository{db: db}
}

// FindByID finds a summary by ID
func (r *GormDailySummaryRepository) FindByID(ctx context.Context, id uuid.UUID) (*settlement.DailySummary, error) {
	var summary settlement.DailySummary
	if err := r.db.WithContext(ctx).First(&summary, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &summary, nil
}

// FindByVendor returns all summaries for a vendor, newest date first
func (r *GormDailySummaryRepository) FindByVendor(ctx context.Context, vendorID uuid.UUID) ([]settlement.DailySummary, error) {
	var summaries []settlement.DailySummary
	if err := r.db.WithContext(ctx).
		Where("vendor_id = ?", vendorID).
		Order("summary_date DESC").
		Find(&summaries).Error; err != nil {
		return nil, err
	}
	return summaries, nil
}

// FindByDate returns all summaries dated exactly date
func (r *GormDailySummaryRepository) FindByDate(ctx context.Context, date time.Time) ([]settlement.DailySummary, error) {
	var summaries []settlement.DailySummary
	if err := r.db.WithContext(ctx).
		Where("summary_date = ?", shared.DateOnly(date)).
		Find(&summaries).Error; err != nil {
		return nil, err
	}
	return summaries, nil
}

// ExistsByVendorAndDate checks whether a (vendor, date) summary exists
func (r *GormDailySummaryRepository) ExistsByVendorAndDate(ctx context.Context, vendorID uuid.UUID, date time.Time) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&settlement.DailySummary{}).
		Where("vendor_id = ? AND summary_date = ?", vendorID, shared.DateOnly(date)).
		Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

// Create inserts a new summary. A duplicate-key rejection from the unique
// constraint on (vendor_id, summary_date) is translated to ErrSummaryExists,
// which closes the check-then-insert race under concurrency.
func (r *GormDailySummaryRepository) Create(ctx context.Context, summary *settlement.DailySummary) error {
	if err := r.db.WithContext(ctx).Create(summary).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return settlement.ErrSummaryExists
		}
		return err
	}
	return nil
}

// Save persists changes to an existing summary
func (r *GormDailySummaryRepository) Save(ctx context.Context, summary *settlement.DailySummary) error {
	return r.db.WithContext(ctx).Save(summary).Error
}

// Ensure GormDailySummaryRepository implements DailySummaryRepository
var _ settlement.DailySummaryRepository = (*GormDailySummaryRepository)(nil)
