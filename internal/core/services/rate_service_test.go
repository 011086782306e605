package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/stayfolio/hotel_pms_app/internal/apperrors"
	"github.com/stayfolio/hotel_pms_app/internal/core/domain"
	portssvc "github.com/stayfolio/hotel_pms_app/internal/core/ports/services"
	"github.com/stayfolio/hotel_pms_app/internal/core/services"
	"github.com/stayfolio/hotel_pms_app/internal/dto"
)

// MockRateRepository is a mock type for the RateRepositoryFacade interface
type MockRateRepository struct {
	mock.Mock
}

func (m *MockRateRepository) FindRoomTypeByID(ctx context.Context, roomTypeID string) (*domain.RoomType, error) {
	args := m.Called(ctx, roomTypeID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.RoomType), args.Error(1)
}

func (m *MockRateRepository) ListRoomTypes(ctx context.Context, propertyID string) ([]domain.RoomType, error) {
	args := m.Called(ctx, propertyID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.RoomType), args.Error(1)
}

func (m *MockRateRepository) ListActiveRatePeriods(ctx context.Context, propertyID string) ([]domain.RatePeriod, error) {
	args := m.Called(ctx, propertyID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.RatePeriod), args.Error(1)
}

func (m *MockRateRepository) ListDailyRates(ctx context.Context, propertyID, roomTypeID string, start, end time.Time) ([]domain.DailyRate, error) {
	args := m.Called(ctx, propertyID, roomTypeID, start, end)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.DailyRate), args.Error(1)
}

func (m *MockRateRepository) SaveRatePeriod(ctx context.Context, period domain.RatePeriod) error {
	args := m.Called(ctx, period)
	return args.Error(0)
}

func (m *MockRateRepository) UpsertDailyRates(ctx context.Context, rates []domain.DailyRate) (int, error) {
	args := m.Called(ctx, rates)
	return args.Int(0), args.Error(1)
}

func (m *MockRateRepository) SetManualRate(ctx context.Context, rate domain.DailyRate) error {
	args := m.Called(ctx, rate)
	return args.Error(0)
}

// --- Test Suite Setup ---

type RateServiceTestSuite struct {
	suite.Suite
	mockRepo *MockRateRepository
	service  portssvc.RateSvcFacade
	tc       domain.TenantContext
	roomType domain.RoomType
}

func (suite *RateServiceTestSuite) SetupTest() {
	suite.mockRepo = new(MockRateRepository)
	suite.service = services.NewRateService(suite.mockRepo)
	suite.tc = domain.TenantContext{PropertyID: "prop-1", ActorID: uuid.NewString()}
	suite.roomType = domain.RoomType{
		RoomTypeID: "rt-deluxe",
		PropertyID: "prop-1",
		Name:       "Deluxe",
		BaseRate:   decimal.NewFromInt(2000),
		IsActive:   true,
	}
}

func weekendSurcharge() domain.RatePeriod {
	return domain.RatePeriod{
		RatePeriodID:   "rp-weekend",
		PropertyID:     "prop-1",
		Name:           "Weekend +20%",
		RateType:       domain.RateWeekend,
		Amount:         decimal.NewFromInt(20),
		AdjustmentType: domain.AdjustPercentage,
		DaysOfWeek:     []time.Weekday{time.Saturday, time.Sunday},
		Priority:       10,
		IsActive:       true,
	}
}

// --- Test Cases ---

func (suite *RateServiceTestSuite) TestCalculateRatesForPeriod_WeekendSurcharge() {
	ctx := context.Background()
	// 2026-01-03 is a Saturday
	saturday := time.Date(2026, 1, 3, 0, 0, 0, 0, time.UTC)

	suite.mockRepo.On("FindRoomTypeByID", ctx, "rt-deluxe").Return(&suite.roomType, nil).Once()
	suite.mockRepo.On("ListActiveRatePeriods", ctx, "prop-1").Return([]domain.RatePeriod{weekendSurcharge()}, nil).Once()

	var captured []domain.DailyRate
	suite.mockRepo.On("UpsertDailyRates", ctx, mock.AnythingOfType("[]domain.DailyRate")).Run(func(args mock.Arguments) {
		captured = args.Get(1).([]domain.DailyRate)
	}).Return(3, nil).Once()

	written, err := suite.service.CalculateRatesForPeriod(ctx, suite.tc, &suite.roomType.RoomTypeID, saturday, saturday.AddDate(0, 0, 2))

	suite.Require().NoError(err)
	suite.Equal(3, written)
	suite.Require().Len(captured, 3)
	// Saturday and Sunday get the 20% surcharge, Monday falls back to base
	suite.True(captured[0].CalculatedRate.Equal(decimal.RequireFromString("2400.00")), "sat was %s", captured[0].CalculatedRate)
	suite.True(captured[1].CalculatedRate.Equal(decimal.RequireFromString("2400.00")), "sun was %s", captured[1].CalculatedRate)
	suite.True(captured[2].CalculatedRate.Equal(decimal.RequireFromString("2000.00")), "mon was %s", captured[2].CalculatedRate)
	suite.Require().NotNil(captured[0].RatePeriodID)
	suite.Equal("rp-weekend", *captured[0].RatePeriodID)
	suite.Nil(captured[2].RatePeriodID)
}

func (suite *RateServiceTestSuite) TestCalculateRatesForPeriod_HighestPriorityWins() {
	ctx := context.Background()
	saturday := time.Date(2026, 1, 3, 0, 0, 0, 0, time.UTC)

	eventOverride := domain.RatePeriod{
		RatePeriodID:   "rp-event",
		PropertyID:     "prop-1",
		Name:           "Gala override",
		RateType:       domain.RateEvent,
		Amount:         decimal.NewFromInt(5000),
		AdjustmentType: domain.AdjustOverride,
		StartDate:      &saturday,
		EndDate:        &saturday,
		Priority:       100,
		IsActive:       true,
	}

	suite.mockRepo.On("FindRoomTypeByID", ctx, "rt-deluxe").Return(&suite.roomType, nil).Once()
	suite.mockRepo.On("ListActiveRatePeriods", ctx, "prop-1").Return([]domain.RatePeriod{weekendSurcharge(), eventOverride}, nil).Once()

	var captured []domain.DailyRate
	suite.mockRepo.On("UpsertDailyRates", ctx, mock.Anything).Run(func(args mock.Arguments) {
		captured = args.Get(1).([]domain.DailyRate)
	}).Return(1, nil).Once()

	_, err := suite.service.CalculateRatesForPeriod(ctx, suite.tc, &suite.roomType.RoomTypeID, saturday, saturday)

	suite.Require().NoError(err)
	suite.Require().Len(captured, 1)
	suite.True(captured[0].CalculatedRate.Equal(decimal.RequireFromString("5000.00")), "rate was %s", captured[0].CalculatedRate)
	suite.Equal("rp-event", *captured[0].RatePeriodID)
}

func (suite *RateServiceTestSuite) TestCalculateRatesForPeriod_EndBeforeStart() {
	ctx := context.Background()
	start := time.Date(2026, 1, 10, 0, 0, 0, 0, time.UTC)

	_, err := suite.service.CalculateRatesForPeriod(ctx, suite.tc, nil, start, start.AddDate(0, 0, -1))

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockRepo.AssertNotCalled(suite.T(), "UpsertDailyRates")
}

func (suite *RateServiceTestSuite) TestCalculateRatesForPeriod_OtherPropertyRoomTypeHidden() {
	ctx := context.Background()
	other := suite.roomType
	other.PropertyID = "prop-2"
	suite.mockRepo.On("FindRoomTypeByID", ctx, "rt-deluxe").Return(&other, nil).Once()

	day := time.Date(2026, 1, 3, 0, 0, 0, 0, time.UTC)
	_, err := suite.service.CalculateRatesForPeriod(ctx, suite.tc, &suite.roomType.RoomTypeID, day, day)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrNotFound)
}

func (suite *RateServiceTestSuite) TestResolveRate_MaterializedRateWins() {
	ctx := context.Background()
	day := time.Date(2026, 1, 3, 0, 0, 0, 0, time.UTC)

	suite.mockRepo.On("FindRoomTypeByID", ctx, "rt-deluxe").Return(&suite.roomType, nil).Once()
	suite.mockRepo.On("ListDailyRates", ctx, "prop-1", "rt-deluxe", day, day).Return([]domain.DailyRate{{
		RoomTypeID:       "rt-deluxe",
		Date:             day,
		CalculatedRate:   decimal.RequireFromString("1750.00"),
		IsManualOverride: true,
	}}, nil).Once()

	rate, err := suite.service.ResolveRate(ctx, suite.tc, "rt-deluxe", day)

	suite.Require().NoError(err)
	suite.True(rate.Equal(decimal.RequireFromString("1750.00")), "rate was %s", rate)
	suite.mockRepo.AssertNotCalled(suite.T(), "ListActiveRatePeriods")
}

func (suite *RateServiceTestSuite) TestResolveRate_FallsBackToPeriods() {
	ctx := context.Background()
	// a Wednesday: weekend surcharge should not apply
	day := time.Date(2026, 1, 7, 0, 0, 0, 0, time.UTC)

	suite.mockRepo.On("FindRoomTypeByID", ctx, "rt-deluxe").Return(&suite.roomType, nil).Once()
	suite.mockRepo.On("ListDailyRates", ctx, "prop-1", "rt-deluxe", day, day).Return([]domain.DailyRate{}, nil).Once()
	suite.mockRepo.On("ListActiveRatePeriods", ctx, "prop-1").Return([]domain.RatePeriod{weekendSurcharge()}, nil).Once()

	rate, err := suite.service.ResolveRate(ctx, suite.tc, "rt-deluxe", day)

	suite.Require().NoError(err)
	suite.True(rate.Equal(decimal.RequireFromString("2000.00")), "rate was %s", rate)
}

func (suite *RateServiceTestSuite) TestSetManualRate_Success() {
	ctx := context.Background()
	day := time.Date(2026, 2, 14, 0, 0, 0, 0, time.UTC)

	suite.mockRepo.On("FindRoomTypeByID", ctx, "rt-deluxe").Return(&suite.roomType, nil).Once()

	var captured domain.DailyRate
	suite.mockRepo.On("SetManualRate", ctx, mock.AnythingOfType("domain.DailyRate")).Run(func(args mock.Arguments) {
		captured = args.Get(1).(domain.DailyRate)
	}).Return(nil).Once()

	err := suite.service.SetManualRate(ctx, suite.tc, dto.SetManualRateRequest{
		RoomTypeID: "rt-deluxe",
		Date:       day,
		Rate:       decimal.RequireFromString("3333.333"),
	})

	suite.Require().NoError(err)
	suite.True(captured.IsManualOverride)
	suite.True(captured.CalculatedRate.Equal(decimal.RequireFromString("3333.33")), "rate was %s", captured.CalculatedRate)
	suite.Equal(day, captured.Date)
}

func (suite *RateServiceTestSuite) TestSetManualRate_NegativeRate() {
	ctx := context.Background()

	err := suite.service.SetManualRate(ctx, suite.tc, dto.SetManualRateRequest{
		RoomTypeID: "rt-deluxe",
		Date:       time.Now(),
		Rate:       decimal.NewFromInt(-5),
	})

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockRepo.AssertNotCalled(suite.T(), "SetManualRate")
}

func (suite *RateServiceTestSuite) TestCreateRatePeriod_Success() {
	ctx := context.Background()
	suite.mockRepo.On("SaveRatePeriod", ctx, mock.AnythingOfType("domain.RatePeriod")).Return(nil).Once()

	period, err := suite.service.CreateRatePeriod(ctx, suite.tc, dto.CreateRatePeriodRequest{
		Name:           "Weekend +20%",
		RateType:       "weekend",
		Amount:         decimal.NewFromInt(20),
		AdjustmentType: "percentage",
		DaysOfWeek:     []int{6, 0},
		Priority:       10,
	})

	suite.Require().NoError(err)
	suite.NotEmpty(period.RatePeriodID)
	suite.Equal("prop-1", period.PropertyID)
	suite.True(period.IsActive)
	suite.Equal([]time.Weekday{time.Saturday, time.Sunday}, period.DaysOfWeek)
}

func TestRateServiceTestSuite(t *testing.T) {
	suite.Run(t, new(RateServiceTestSuite))
}
