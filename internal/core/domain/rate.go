package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// RateType names why a rate period exists. It is informational; resolution only
// looks at dates, day filters and priority.
type RateType string

const (
	RateWeekend    RateType = "weekend"
	RateSeasonal   RateType = "seasonal"
	RateEvent      RateType = "event"
	RateLastMinute RateType = "last_minute"
	RateHoliday    RateType = "holiday"
)

// AdjustmentType describes how a rate period modifies the base rate.
type AdjustmentType string

const (
	AdjustFixed      AdjustmentType = "fixed"      // Adds Amount to the base rate
	AdjustPercentage AdjustmentType = "percentage" // Multiplies the base rate by (1 + Amount/100)
	AdjustOverride   AdjustmentType = "override"   // Replaces the base rate with Amount
)

// RatePeriod is a property or room-type scoped pricing override. The highest
// priority matching period wins for any given date.
type RatePeriod struct {
	RatePeriodID   string           `json:"ratePeriodID"` // Primary Key (UUID)
	PropertyID     string           `json:"propertyID"`
	RoomTypeID     *string          `json:"roomTypeID"` // Nil applies to all room types
	Name           string           `json:"name"`
	RateType       RateType         `json:"rateType"`
	Amount         decimal.Decimal  `json:"amount"`
	AdjustmentType AdjustmentType   `json:"adjustmentType"`
	StartDate      *time.Time       `json:"startDate"` // Nil means no lower bound
	EndDate        *time.Time       `json:"endDate"`   // Nil means no upper bound
	DaysOfWeek     []time.Weekday   `json:"daysOfWeek"` // Empty means every day
	Priority       int              `json:"priority"`   // Higher wins
	IsActive       bool             `json:"isActive"`
	AuditFields
}

// AppliesOn reports whether the period covers the given date's window and weekday.
func (p RatePeriod) AppliesOn(date time.Time) bool {
	if p.StartDate != nil && date.Before(*p.StartDate) {
		return false
	}
	if p.EndDate != nil && date.After(*p.EndDate) {
		return false
	}
	if len(p.DaysOfWeek) == 0 {
		return true
	}
	for _, d := range p.DaysOfWeek {
		if d == date.Weekday() {
			return true
		}
	}
	return false
}

// Apply computes the adjusted rate from a base rate.
func (p RatePeriod) Apply(baseRate decimal.Decimal) decimal.Decimal {
	switch p.AdjustmentType {
	case AdjustOverride:
		return p.Amount
	case AdjustFixed:
		return baseRate.Add(p.Amount)
	case AdjustPercentage:
		factor := decimal.NewFromInt(1).Add(p.Amount.Div(decimal.NewFromInt(100)))
		return baseRate.Mul(factor)
	}
	return baseRate
}

// DailyRate is the materialized resolved rate for one room type on one date.
// Manually overridden rows are never replaced by recalculation.
type DailyRate struct {
	DailyRateID      string          `json:"dailyRateID"` // Primary Key (UUID)
	PropertyID       string          `json:"propertyID"`
	RoomTypeID       string          `json:"roomTypeID"`
	Date             time.Time       `json:"date"`
	CalculatedRate   decimal.Decimal `json:"calculatedRate"`
	RatePeriodID     *string         `json:"ratePeriodID"` // The period that produced the rate, if any
	IsManualOverride bool            `json:"isManualOverride"`
	AuditFields
}

// RoomType is a property's bookable room category with its base nightly rate.
type RoomType struct {
	RoomTypeID   string          `json:"roomTypeID"` // Primary Key (UUID)
	PropertyID   string          `json:"propertyID"`
	Name         string          `json:"name"`
	BaseRate     decimal.Decimal `json:"baseRate"`
	MaxOccupancy int             `json:"maxOccupancy"`
	IsActive     bool            `json:"isActive"`
	AuditFields
}
