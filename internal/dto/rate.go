package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/stayfolio/hotel_pms_app/internal/core/domain"
)

// CalculateRatesRequest defines the payload for materializing daily rates.
// A nil RoomTypeID recalculates every room type of the property.
type CalculateRatesRequest struct {
	RoomTypeID *string   `json:"roomTypeID"`
	StartDate  time.Time `json:"startDate" binding:"required"`
	EndDate    time.Time `json:"endDate" binding:"required"`
}

// CalculateRatesResponse reports how many daily rates were written.
type CalculateRatesResponse struct {
	RatesWritten int `json:"ratesWritten"`
}

// SetManualRateRequest defines the payload for a manual per-day rate override.
type SetManualRateRequest struct {
	RoomTypeID string          `json:"roomTypeID" binding:"required"`
	Date       time.Time       `json:"date" binding:"required"`
	Rate       decimal.Decimal `json:"rate" binding:"required"`
}

// CreateRatePeriodRequest defines the payload for creating a rate period.
type CreateRatePeriodRequest struct {
	RoomTypeID     *string         `json:"roomTypeID"` // Nil applies to all room types
	Name           string          `json:"name" binding:"required"`
	RateType       string          `json:"rateType" binding:"required,oneof=weekend seasonal event last_minute holiday"`
	Amount         decimal.Decimal `json:"amount" binding:"required"`
	AdjustmentType string          `json:"adjustmentType" binding:"required,oneof=fixed percentage override"`
	StartDate      *time.Time      `json:"startDate"`
	EndDate        *time.Time      `json:"endDate"`
	DaysOfWeek     []int           `json:"daysOfWeek" binding:"omitempty,dive,min=0,max=6"` // time.Weekday values
	Priority       int             `json:"priority"`
}

// ListDailyRatesParams holds query parameters for reading materialized rates.
type ListDailyRatesParams struct {
	RoomTypeID string    `form:"roomTypeID" binding:"required"`
	StartDate  time.Time `form:"startDate" binding:"required" time_format:"2006-01-02"`
	EndDate    time.Time `form:"endDate" binding:"required" time_format:"2006-01-02"`
}

// DailyRateResponse defines the data returned for one materialized daily rate.
type DailyRateResponse struct {
	RoomTypeID       string          `json:"roomTypeID"`
	Date             time.Time       `json:"date"`
	CalculatedRate   decimal.Decimal `json:"calculatedRate"`
	RatePeriodID     *string         `json:"ratePeriodID,omitempty"`
	IsManualOverride bool            `json:"isManualOverride"`
}

// ToDailyRateResponse converts a domain.DailyRate to its response DTO.
func ToDailyRateResponse(r *domain.DailyRate) DailyRateResponse {
	return DailyRateResponse{
		RoomTypeID:       r.RoomTypeID,
		Date:             r.Date,
		CalculatedRate:   r.CalculatedRate,
		RatePeriodID:     r.RatePeriodID,
		IsManualOverride: r.IsManualOverride,
	}
}
