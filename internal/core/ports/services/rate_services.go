package services

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/stayfolio/hotel_pms_app/internal/core/domain"
	"github.com/stayfolio/hotel_pms_app/internal/dto"
)

// RateSvcFacade resolves nightly room rates and manages rate periods.
type RateSvcFacade interface {
	// CalculateRatesForPeriod materializes daily rates for each room type (or one if
	// roomTypeID is set) and each day in [start, end]. Manually overridden daily
	// rates are never replaced. Returns the number of rates written.
	CalculateRatesForPeriod(ctx context.Context, tc domain.TenantContext, roomTypeID *string, start, end time.Time) (int, error)

	// ResolveRate returns the effective nightly rate for one room type and date,
	// preferring a materialized daily rate and falling back to the base rate.
	ResolveRate(ctx context.Context, tc domain.TenantContext, roomTypeID string, date time.Time) (decimal.Decimal, error)

	// SetManualRate writes a manual per-day override that recalculation won't touch.
	SetManualRate(ctx context.Context, tc domain.TenantContext, req dto.SetManualRateRequest) error

	// CreateRatePeriod adds a pricing rule to the property.
	CreateRatePeriod(ctx context.Context, tc domain.TenantContext, req dto.CreateRatePeriodRequest) (*domain.RatePeriod, error)

	// ListDailyRates reads materialized rates for display.
	ListDailyRates(ctx context.Context, tc domain.TenantContext, params dto.ListDailyRatesParams) ([]domain.DailyRate, error)
}
