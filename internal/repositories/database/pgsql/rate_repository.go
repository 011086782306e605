package pgsql

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/stayfolio/hotel_pms_app/internal/apperrors"
	"github.com/stayfolio/hotel_pms_app/internal/core/domain"
	portsrepo "github.com/stayfolio/hotel_pms_app/internal/core/ports/repositories"
	"github.com/stayfolio/hotel_pms_app/internal/models"
	"github.com/stayfolio/hotel_pms_app/internal/utils/mapping"
)

// PgxRateRepository implements pricing persistence on PostgreSQL.
type PgxRateRepository struct {
	BaseRepository
}

// NewRateRepository creates the rate repository.
func NewRateRepository(pool *pgxpool.Pool) portsrepo.RateRepositoryFacade {
	return &PgxRateRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.RateRepositoryFacade = (*PgxRateRepository)(nil)

const ratePeriodColumns = `
	rate_period_id, property_id, room_type_id, name, rate_type, amount, adjustment_type,
	start_date, end_date, days_of_week, priority, is_active,
	created_at, created_by, last_updated_at, last_updated_by`

const dailyRateColumns = `
	daily_rate_id, property_id, room_type_id, date, calculated_rate, rate_period_id,
	is_manual_override, created_at, created_by, last_updated_at, last_updated_by`

// FindRoomTypeByID retrieves a single room type.
func (r *PgxRateRepository) FindRoomTypeByID(ctx context.Context, roomTypeID string) (*domain.RoomType, error) {
	var m models.RoomType
	err := r.Pool.QueryRow(ctx, `
		SELECT room_type_id, property_id, name, base_rate, max_occupancy, is_active,
		       created_at, created_by, last_updated_at, last_updated_by
		FROM room_types WHERE room_type_id = $1`, roomTypeID,
	).Scan(
		&m.RoomTypeID, &m.PropertyID, &m.Name, &m.BaseRate, &m.MaxOccupancy, &m.IsActive,
		&m.CreatedAt, &m.CreatedBy, &m.LastUpdatedAt, &m.LastUpdatedBy,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, apperrors.NewAppError(500, "failed to find room type", err)
	}
	rt := mapping.ToDomainRoomType(m)
	return &rt, nil
}

// ListRoomTypes retrieves the active room types of a property.
func (r *PgxRateRepository) ListRoomTypes(ctx context.Context, propertyID string) ([]domain.RoomType, error) {
	rows, err := r.Pool.Query(ctx, `
		SELECT room_type_id, property_id, name, base_rate, max_occupancy, is_active,
		       created_at, created_by, last_updated_at, last_updated_by
		FROM room_types WHERE property_id = $1 AND is_active = TRUE ORDER BY name`, propertyID)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to list room types", err)
	}
	defer rows.Close()

	var roomTypes []domain.RoomType
	for rows.Next() {
		var m models.RoomType
		err := rows.Scan(
			&m.RoomTypeID, &m.PropertyID, &m.Name, &m.BaseRate, &m.MaxOccupancy, &m.IsActive,
			&m.CreatedAt, &m.CreatedBy, &m.LastUpdatedAt, &m.LastUpdatedBy,
		)
		if err != nil {
			return nil, apperrors.NewAppError(500, "failed to scan room type", err)
		}
		roomTypes = append(roomTypes, mapping.ToDomainRoomType(m))
	}
	return roomTypes, rows.Err()
}

// ListActiveRatePeriods retrieves the active rate periods of a property.
func (r *PgxRateRepository) ListActiveRatePeriods(ctx context.Context, propertyID string) ([]domain.RatePeriod, error) {
	rows, err := r.Pool.Query(ctx, `
		SELECT `+ratePeriodColumns+`
		FROM rate_periods WHERE property_id = $1 AND is_active = TRUE
		ORDER BY priority DESC, rate_period_id`, propertyID)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to list rate periods", err)
	}
	defer rows.Close()

	var periods []domain.RatePeriod
	for rows.Next() {
		var m models.RatePeriod
		err := rows.Scan(
			&m.RatePeriodID, &m.PropertyID, &m.RoomTypeID, &m.Name, &m.RateType, &m.Amount, &m.AdjustmentType,
			&m.StartDate, &m.EndDate, &m.DaysOfWeek, &m.Priority, &m.IsActive,
			&m.CreatedAt, &m.CreatedBy, &m.LastUpdatedAt, &m.LastUpdatedBy,
		)
		if err != nil {
			return nil, apperrors.NewAppError(500, "failed to scan rate period", err)
		}
		periods = append(periods, mapping.ToDomainRatePeriod(m))
	}
	return periods, rows.Err()
}

// ListDailyRates retrieves materialized daily rates for a room type within a date
// range, ordered by date.
func (r *PgxRateRepository) ListDailyRates(ctx context.Context, propertyID, roomTypeID string, start, end time.Time) ([]domain.DailyRate, error) {
	rows, err := r.Pool.Query(ctx, `
		SELECT `+dailyRateColumns+`
		FROM daily_rates
		WHERE property_id = $1 AND room_type_id = $2 AND date >= $3 AND date <= $4
		ORDER BY date`, propertyID, roomTypeID, start, end)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to list daily rates", err)
	}
	defer rows.Close()

	var rates []domain.DailyRate
	for rows.Next() {
		var m models.DailyRate
		err := rows.Scan(
			&m.DailyRateID, &m.PropertyID, &m.RoomTypeID, &m.Date, &m.CalculatedRate, &m.RatePeriodID,
			&m.IsManualOverride, &m.CreatedAt, &m.CreatedBy, &m.LastUpdatedAt, &m.LastUpdatedBy,
		)
		if err != nil {
			return nil, apperrors.NewAppError(500, "failed to scan daily rate", err)
		}
		rates = append(rates, mapping.ToDomainDailyRate(m))
	}
	return rates, rows.Err()
}

// SaveRatePeriod inserts a new rate period.
func (r *PgxRateRepository) SaveRatePeriod(ctx context.Context, period domain.RatePeriod) error {
	m := mapping.ToModelRatePeriod(period)
	_, err := r.Pool.Exec(ctx, `
		INSERT INTO rate_periods (`+ratePeriodColumns+`)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16)`,
		m.RatePeriodID, m.PropertyID, m.RoomTypeID, m.Name, m.RateType, m.Amount, m.AdjustmentType,
		m.StartDate, m.EndDate, m.DaysOfWeek, m.Priority, m.IsActive,
		m.CreatedAt, m.CreatedBy, m.LastUpdatedAt, m.LastUpdatedBy,
	)
	if err != nil {
		return apperrors.NewAppError(500, "failed to insert rate period "+m.RatePeriodID, err)
	}
	return nil
}

// UpsertDailyRates writes resolved daily rates in one transaction. The DO UPDATE
// predicate skips rows flagged as manual overrides so recalculation never
// clobbers a rate a person set by hand. Returns the number of rows written.
func (r *PgxRateRepository) UpsertDailyRates(ctx context.Context, rates []domain.DailyRate) (int, error) {
	tx, err := r.Begin(ctx)
	if err != nil {
		return 0, err
	}
	defer r.Rollback(ctx, tx)

	written := 0
	for _, rate := range rates {
		m := mapping.ToModelDailyRate(rate)
		tag, err := tx.Exec(ctx, `
			INSERT INTO daily_rates (`+dailyRateColumns+`)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
			ON CONFLICT (property_id, room_type_id, date) DO UPDATE
			SET calculated_rate = EXCLUDED.calculated_rate,
			    rate_period_id = EXCLUDED.rate_period_id,
			    last_updated_at = EXCLUDED.last_updated_at,
			    last_updated_by = EXCLUDED.last_updated_by
			WHERE daily_rates.is_manual_override = FALSE`,
			m.DailyRateID, m.PropertyID, m.RoomTypeID, m.Date, m.CalculatedRate, m.RatePeriodID,
			m.IsManualOverride, m.CreatedAt, m.CreatedBy, m.LastUpdatedAt, m.LastUpdatedBy,
		)
		if err != nil {
			return 0, apperrors.NewAppError(500, "failed to upsert daily rate", err)
		}
		written += int(tag.RowsAffected())
	}
	if err := r.Commit(ctx, tx); err != nil {
		return 0, err
	}
	return written, nil
}

// SetManualRate writes a manually overridden daily rate, replacing any
// calculated value for that date.
func (r *PgxRateRepository) SetManualRate(ctx context.Context, rate domain.DailyRate) error {
	m := mapping.ToModelDailyRate(rate)
	_, err := r.Pool.Exec(ctx, `
		INSERT INTO daily_rates (`+dailyRateColumns+`)
		VALUES ($1, $2, $3, $4, $5, $6, TRUE, $7, $8, $9, $10)
		ON CONFLICT (property_id, room_type_id, date) DO UPDATE
		SET calculated_rate = EXCLUDED.calculated_rate,
		    rate_period_id = EXCLUDED.rate_period_id,
		    is_manual_override = TRUE,
		    last_updated_at = EXCLUDED.last_updated_at,
		    last_updated_by = EXCLUDED.last_updated_by`,
		m.DailyRateID, m.PropertyID, m.RoomTypeID, m.Date, m.CalculatedRate, m.RatePeriodID,
		m.CreatedAt, m.CreatedBy, m.LastUpdatedAt, m.LastUpdatedBy,
	)
	if err != nil {
		return apperrors.NewAppError(500, "failed to set manual daily rate", err)
	}
	return nil
}
