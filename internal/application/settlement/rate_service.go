package settlement

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/broilerlink/backend/internal/domain/partner"
	"github.com/broilerlink/backend/internal/domain/settlement"
	"github.com/broilerlink/backend/internal/domain/shared"
	"github.com/broilerlink/backend/internal/infrastructure/telemetry"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// RateService resolves effective per-weight-unit rates and manages the rate
// card. The effective rate for a vendor on a date is the date's base rate plus
// the vendor's signed offset. Resolution is recomputed on every call; the math
// is cheap and correctness beats caching here.
type RateService struct {
	rateRepo   settlement.DailyRateRepository
	vendorRepo partner.VendorRepository
	now        func() time.Time
}

// NewRateService creates a new RateService
func NewRateService(rateRepo settlement.DailyRateRepository, vendorRepo partner.VendorRepository) *RateService {
	return &RateService{
		rateRepo:   rateRepo,
		vendorRepo: vendorRepo,
		now:        time.Now,
	}
}

// EffectiveRate resolves the rate a vendor is billed at on a date.
// Fails with settlement.ErrNoBaseRate when no base rate row exists for that
// exact date; there is no fallback to the nearest prior date. Fails with
// shared.ErrNotFound when the vendor is unknown.
func (s *RateService) EffectiveRate(ctx context.Context, vendorID uuid.UUID, date time.Time) (decimal.Decimal, error) {
	rate, err := s.rateRepo.FindByDate(ctx, shared.DateOnly(date))
	if err != nil {
		if errors.Is(err, shared.ErrNotFound) {
			return decimal.Zero, settlement.ErrNoBaseRate
		}
		return decimal.Zero, fmt.Errorf("failed to load base rate: %w", err)
	}

	vendor, err := s.vendorRepo.FindByID(ctx, vendorID)
	if err != nil {
		return decimal.Zero, err
	}

	return rate.Rate.Add(vendor.RateOffset), nil
}

// GetRateCard returns today's base rate (zero when none is set yet) and every
// vendor's current offset.
func (s *RateService) GetRateCard(ctx context.Context) (*RateCardView, error) {
	card := &RateCardView{
		BaseRate:      decimal.Zero,
		VendorOffsets: make([]VendorOffsetView, 0),
	}

	rate, err := s.rateRepo.FindByDate(ctx, shared.DateOnly(s.now()))
	if err != nil && !errors.Is(err, shared.ErrNotFound) {
		return nil, fmt.Errorf("failed to load base rate: %w", err)
	}
	if err == nil {
		card.BaseRate = rate.Rate
	}

	vendors, err := s.vendorRepo.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load vendors: %w", err)
	}
	for _, vendor := range vendors {
		card.VendorOffsets = append(card.VendorOffsets, VendorOffsetView{
			VendorID:   vendor.ID,
			VendorName: vendor.Name,
			Offset:     vendor.RateOffset,
		})
	}

	return card, nil
}

// SaveRateCard upserts the current date's base rate, then replaces each listed
// vendor's offset. Each individual write is a plain replace; a vendor lookup
// failing partway aborts the remainder without rolling back earlier writes.
func (s *RateService) SaveRateCard(ctx context.Context, req SaveRateCardRequest) error {
	ctx, span := telemetry.StartServiceSpan(ctx, "rate", "save_rate_card")
	defer span.End()
	telemetry.SetAttributes(span,
		"base_rate", req.BaseRate.String(),
		"vendor_count", len(req.Offsets),
	)

	if err := s.setDailyRate(ctx, s.now(), req.BaseRate); err != nil {
		telemetry.RecordError(span, err)
		return err
	}

	for _, update := range req.Offsets {
		if err := s.setVendorOffset(ctx, update.VendorID, update.Offset); err != nil {
			telemetry.RecordError(span, err)
			return err
		}
	}
	return nil
}

// setDailyRate upserts the base rate row for a date
func (s *RateService) setDailyRate(ctx context.Context, date time.Time, rate decimal.Decimal) error {
	existing, err := s.rateRepo.FindByDate(ctx, shared.DateOnly(date))
	switch {
	case err == nil:
		existing.SetRate(rate)
		return s.rateRepo.Save(ctx, existing)
	case errors.Is(err, shared.ErrNotFound):
		return s.rateRepo.Save(ctx, settlement.NewDailyRate(date, rate))
	default:
		return fmt.Errorf("failed to load base rate: %w", err)
	}
}

// setVendorOffset replaces a vendor's rate offset
func (s *RateService) setVendorOffset(ctx context.Context, vendorID uuid.UUID, offset decimal.Decimal) error {
	vendor, err := s.vendorRepo.FindByID(ctx, vendorID)
	if err != nil {
		return err
	}
	vendor.SetRateOffset(offset)
	return s.vendorRepo.Save(ctx, vendor)
}
