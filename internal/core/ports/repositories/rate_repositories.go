package repositories

import (
	"context"
	"time"

	"github.com/stayfolio/hotel_pms_app/internal/core/domain"
)

// RateReader defines read operations for pricing data.
type RateReader interface {
	// FindRoomTypeByID retrieves a single room type.
	FindRoomTypeByID(ctx context.Context, roomTypeID string) (*domain.RoomType, error)

	// ListRoomTypes retrieves the active room types of a property.
	ListRoomTypes(ctx context.Context, propertyID string) ([]domain.RoomType, error)

	// ListActiveRatePeriods retrieves the active rate periods of a property.
	ListActiveRatePeriods(ctx context.Context, propertyID string) ([]domain.RatePeriod, error)

	// ListDailyRates retrieves materialized daily rates for a room type within a date
	// range, ordered by date.
	ListDailyRates(ctx context.Context, propertyID, roomTypeID string, start, end time.Time) ([]domain.DailyRate, error)
}

// RateWriter defines write operations for pricing data.
type RateWriter interface {
	// SaveRatePeriod inserts a new rate period.
	SaveRatePeriod(ctx context.Context, period domain.RatePeriod) error

	// UpsertDailyRates writes resolved daily rates keyed by (property, room_type, date).
	// Rows flagged as manual overrides are left untouched. Returns the number of rows
	// actually written.
	UpsertDailyRates(ctx context.Context, rates []domain.DailyRate) (int, error)

	// SetManualRate writes a manually overridden daily rate, replacing any calculated
	// value for that date.
	SetManualRate(ctx context.Context, rate domain.DailyRate) error
}

// RateRepositoryFacade combines all pricing-related repository interfaces.
type RateRepositoryFacade interface {
	RateReader
	RateWriter
}
