package services

import (
	"context"
	"fmt"
	"log/slog"
	"sort"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/stayfolio/hotel_pms_app/internal/apperrors"
	"github.com/stayfolio/hotel_pms_app/internal/core/domain"
	portsrepo "github.com/stayfolio/hotel_pms_app/internal/core/ports/repositories"
	portssvc "github.com/stayfolio/hotel_pms_app/internal/core/ports/services"
	"github.com/stayfolio/hotel_pms_app/internal/dto"
	"github.com/stayfolio/hotel_pms_app/internal/middleware"
	"github.com/stayfolio/hotel_pms_app/internal/utils/billing"
)

// rateService materializes nightly room rates from rate periods.
type rateService struct {
	rateRepo portsrepo.RateRepositoryFacade
}

// NewRateService creates a new rate service.
func NewRateService(rateRepo portsrepo.RateRepositoryFacade) portssvc.RateSvcFacade {
	return &rateService{rateRepo: rateRepo}
}

var _ portssvc.RateSvcFacade = (*rateService)(nil)

// truncateToDay normalizes a timestamp to midnight UTC so daily rates key cleanly.
func truncateToDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// resolveForDay picks the winning rate period for one room type and date and applies
// it to the base rate. Returns the rate and the period that produced it, if any.
func resolveForDay(roomType domain.RoomType, periods []domain.RatePeriod, date time.Time) (decimal.Decimal, *string) {
	var matches []domain.RatePeriod
	for _, p := range periods {
		if !p.IsActive {
			continue
		}
		if p.RoomTypeID != nil && *p.RoomTypeID != roomType.RoomTypeID {
			continue
		}
		if !p.AppliesOn(date) {
			continue
		}
		matches = append(matches, p)
	}
	if len(matches) == 0 {
		return billing.Round2(roomType.BaseRate), nil
	}

	sort.SliceStable(matches, func(i, j int) bool { return matches[i].Priority > matches[j].Priority })
	winner := matches[0]
	return billing.Round2(winner.Apply(roomType.BaseRate)), &winner.RatePeriodID
}

// CalculateRatesForPeriod materializes daily rates for each room type and day in
// the range. Rows the staff have manually overridden are never replaced; the upsert
// skips them and they do not count toward the returned total.
func (s *rateService) CalculateRatesForPeriod(ctx context.Context, tc domain.TenantContext, roomTypeID *string, start, end time.Time) (int, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	start, end = truncateToDay(start), truncateToDay(end)
	if end.Before(start) {
		return 0, fmt.Errorf("%w: end date precedes start date", apperrors.ErrValidation)
	}

	var roomTypes []domain.RoomType
	if roomTypeID != nil {
		rt, err := s.rateRepo.FindRoomTypeByID(ctx, *roomTypeID)
		if err != nil {
			return 0, fmt.Errorf("failed to find room type %s: %w", *roomTypeID, err)
		}
		if rt.PropertyID != tc.PropertyID {
			return 0, apperrors.ErrNotFound
		}
		roomTypes = []domain.RoomType{*rt}
	} else {
		var err error
		roomTypes, err = s.rateRepo.ListRoomTypes(ctx, tc.PropertyID)
		if err != nil {
			return 0, fmt.Errorf("failed to list room types: %w", err)
		}
	}

	periods, err := s.rateRepo.ListActiveRatePeriods(ctx, tc.PropertyID)
	if err != nil {
		return 0, fmt.Errorf("failed to list rate periods: %w", err)
	}

	now := time.Now().UTC()
	var rates []domain.DailyRate
	for _, rt := range roomTypes {
		for day := start; !day.After(end); day = day.AddDate(0, 0, 1) {
			rate, periodID := resolveForDay(rt, periods, day)
			rates = append(rates, domain.DailyRate{
				DailyRateID:    uuid.NewString(),
				PropertyID:     tc.PropertyID,
				RoomTypeID:     rt.RoomTypeID,
				Date:           day,
				CalculatedRate: rate,
				RatePeriodID:   periodID,
				AuditFields: domain.AuditFields{
					CreatedAt:     now,
					CreatedBy:     tc.ActorID,
					LastUpdatedAt: now,
					LastUpdatedBy: tc.ActorID,
				},
			})
		}
	}

	written, err := s.rateRepo.UpsertDailyRates(ctx, rates)
	if err != nil {
		logger.Error("Failed to upsert daily rates", slog.String("error", err.Error()), slog.String("property_id", tc.PropertyID))
		return 0, fmt.Errorf("failed to upsert daily rates: %w", err)
	}

	logger.Info("Daily rates calculated", slog.Int("written", written), slog.Int("room_types", len(roomTypes)))
	return written, nil
}

// ResolveRate returns the effective nightly rate for one room type and date.
// A materialized daily rate wins; otherwise the rate is resolved on the fly from
// the active rate periods and the base rate.
func (s *rateService) ResolveRate(ctx context.Context, tc domain.TenantContext, roomTypeID string, date time.Time) (decimal.Decimal, error) {
	date = truncateToDay(date)

	rt, err := s.rateRepo.FindRoomTypeByID(ctx, roomTypeID)
	if err != nil {
		return decimal.Zero, fmt.Errorf("failed to find room type %s: %w", roomTypeID, err)
	}
	if rt.PropertyID != tc.PropertyID {
		return decimal.Zero, apperrors.ErrNotFound
	}

	daily, err := s.rateRepo.ListDailyRates(ctx, tc.PropertyID, roomTypeID, date, date)
	if err != nil {
		return decimal.Zero, fmt.Errorf("failed to read daily rates: %w", err)
	}
	if len(daily) > 0 {
		return daily[0].CalculatedRate, nil
	}

	periods, err := s.rateRepo.ListActiveRatePeriods(ctx, tc.PropertyID)
	if err != nil {
		return decimal.Zero, fmt.Errorf("failed to list rate periods: %w", err)
	}
	rate, _ := resolveForDay(*rt, periods, date)
	return rate, nil
}

// SetManualRate writes a manual per-day override. Recalculation leaves it alone.
func (s *rateService) SetManualRate(ctx context.Context, tc domain.TenantContext, req dto.SetManualRateRequest) error {
	logger := middleware.GetLoggerFromCtx(ctx)

	if req.Rate.IsNegative() {
		return fmt.Errorf("%w: rate must not be negative", apperrors.ErrValidation)
	}
	rt, err := s.rateRepo.FindRoomTypeByID(ctx, req.RoomTypeID)
	if err != nil {
		return fmt.Errorf("failed to find room type %s: %w", req.RoomTypeID, err)
	}
	if rt.PropertyID != tc.PropertyID {
		return apperrors.ErrNotFound
	}

	now := time.Now().UTC()
	rate := domain.DailyRate{
		DailyRateID:      uuid.NewString(),
		PropertyID:       tc.PropertyID,
		RoomTypeID:       req.RoomTypeID,
		Date:             truncateToDay(req.Date),
		CalculatedRate:   billing.Round2(req.Rate),
		IsManualOverride: true,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     tc.ActorID,
			LastUpdatedAt: now,
			LastUpdatedBy: tc.ActorID,
		},
	}
	if err := s.rateRepo.SetManualRate(ctx, rate); err != nil {
		logger.Error("Failed to set manual rate", slog.String("error", err.Error()), slog.String("room_type_id", req.RoomTypeID))
		return fmt.Errorf("failed to set manual rate: %w", err)
	}

	logger.Info("Manual rate set", slog.String("room_type_id", req.RoomTypeID), slog.Time("date", rate.Date))
	return nil
}

// CreateRatePeriod adds a pricing rule to the property.
func (s *rateService) CreateRatePeriod(ctx context.Context, tc domain.TenantContext, req dto.CreateRatePeriodRequest) (*domain.RatePeriod, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	if req.StartDate != nil && req.EndDate != nil && req.EndDate.Before(*req.StartDate) {
		return nil, fmt.Errorf("%w: end date precedes start date", apperrors.ErrValidation)
	}
	if req.RoomTypeID != nil {
		rt, err := s.rateRepo.FindRoomTypeByID(ctx, *req.RoomTypeID)
		if err != nil {
			return nil, fmt.Errorf("failed to find room type %s: %w", *req.RoomTypeID, err)
		}
		if rt.PropertyID != tc.PropertyID {
			return nil, apperrors.ErrNotFound
		}
	}

	days := make([]time.Weekday, len(req.DaysOfWeek))
	for i, d := range req.DaysOfWeek {
		days[i] = time.Weekday(d)
	}

	now := time.Now().UTC()
	period := domain.RatePeriod{
		RatePeriodID:   uuid.NewString(),
		PropertyID:     tc.PropertyID,
		RoomTypeID:     req.RoomTypeID,
		Name:           req.Name,
		RateType:       domain.RateType(req.RateType),
		Amount:         req.Amount,
		AdjustmentType: domain.AdjustmentType(req.AdjustmentType),
		StartDate:      req.StartDate,
		EndDate:        req.EndDate,
		DaysOfWeek:     days,
		Priority:       req.Priority,
		IsActive:       true,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     tc.ActorID,
			LastUpdatedAt: now,
			LastUpdatedBy: tc.ActorID,
		},
	}

	if err := s.rateRepo.SaveRatePeriod(ctx, period); err != nil {
		logger.Error("Failed to save rate period", slog.String("error", err.Error()), slog.String("property_id", tc.PropertyID))
		return nil, fmt.Errorf("failed to save rate period: %w", err)
	}

	logger.Info("Rate period created", slog.String("rate_period_id", period.RatePeriodID), slog.String("name", period.Name))
	return &period, nil
}

// ListDailyRates reads materialized rates for display.
func (s *rateService) ListDailyRates(ctx context.Context, tc domain.TenantContext, params dto.ListDailyRatesParams) ([]domain.DailyRate, error) {
	rates, err := s.rateRepo.ListDailyRates(ctx, tc.PropertyID, params.RoomTypeID, truncateToDay(params.StartDate), truncateToDay(params.EndDate))
	if err != nil {
		return nil, fmt.Errorf("failed to list daily rates: %w", err)
	}
	return rates, nil
}
