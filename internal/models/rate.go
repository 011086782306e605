package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// RatePeriod mirrors a row of the rate_periods table. DaysOfWeek is an int[]
// column of time.Weekday values; empty means every day.
type RatePeriod struct {
	RatePeriodID   string          `json:"ratePeriodID"`
	PropertyID     string          `json:"propertyID"`
	RoomTypeID     *string         `json:"roomTypeID"`
	Name           string          `json:"name"`
	RateType       string          `json:"rateType"`
	Amount         decimal.Decimal `json:"amount"`
	AdjustmentType string          `json:"adjustmentType"`
	StartDate      *time.Time      `json:"startDate"`
	EndDate        *time.Time      `json:"endDate"`
	DaysOfWeek     []int           `json:"daysOfWeek"`
	Priority       int             `json:"priority"`
	IsActive       bool            `json:"isActive"`
	AuditFields
}

// DailyRate mirrors a row of the daily_rates table, unique on
// (property_id, room_type_id, date).
type DailyRate struct {
	DailyRateID      string          `json:"dailyRateID"`
	PropertyID       string          `json:"propertyID"`
	RoomTypeID       string          `json:"roomTypeID"`
	Date             time.Time       `json:"date"`
	CalculatedRate   decimal.Decimal `json:"calculatedRate"`
	RatePeriodID     *string         `json:"ratePeriodID"`
	IsManualOverride bool            `json:"isManualOverride"`
	AuditFields
}

// RoomType mirrors a row of the room_types table.
type RoomType struct {
	RoomTypeID   string          `json:"roomTypeID"`
	PropertyID   string          `json:"propertyID"`
	Name         string          `json:"name"`
	BaseRate     decimal.Decimal `json:"baseRate"`
	MaxOccupancy int             `json:"maxOccupancy"`
	IsActive     bool            `json:"isActive"`
	AuditFields
}
