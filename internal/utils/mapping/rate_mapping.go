package mapping

import (
	"time"

	"github.com/stayfolio/hotel_pms_app/internal/core/domain"
	"github.com/stayfolio/hotel_pms_app/internal/models"
)

// ToModelRatePeriod converts a domain RatePeriod to its model form
func ToModelRatePeriod(d domain.RatePeriod) models.RatePeriod {
	days := make([]int, len(d.DaysOfWeek))
	for i, w := range d.DaysOfWeek {
		days[i] = int(w)
	}
	return models.RatePeriod{
		RatePeriodID:   d.RatePeriodID,
		PropertyID:     d.PropertyID,
		RoomTypeID:     d.RoomTypeID,
		Name:           d.Name,
		RateType:       string(d.RateType),
		Amount:         d.Amount,
		AdjustmentType: string(d.AdjustmentType),
		StartDate:      d.StartDate,
		EndDate:        d.EndDate,
		DaysOfWeek:     days,
		Priority:       d.Priority,
		IsActive:       d.IsActive,
		AuditFields:    ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainRatePeriod converts a model RatePeriod to its domain form
func ToDomainRatePeriod(m models.RatePeriod) domain.RatePeriod {
	days := make([]time.Weekday, len(m.DaysOfWeek))
	for i, w := range m.DaysOfWeek {
		days[i] = time.Weekday(w)
	}
	return domain.RatePeriod{
		RatePeriodID:   m.RatePeriodID,
		PropertyID:     m.PropertyID,
		RoomTypeID:     m.RoomTypeID,
		Name:           m.Name,
		RateType:       domain.RateType(m.RateType),
		Amount:         m.Amount,
		AdjustmentType: domain.AdjustmentType(m.AdjustmentType),
		StartDate:      m.StartDate,
		EndDate:        m.EndDate,
		DaysOfWeek:     days,
		Priority:       m.Priority,
		IsActive:       m.IsActive,
		AuditFields:    ToDomainAuditFields(m.AuditFields),
	}
}

// ToModelDailyRate converts a domain DailyRate to its model form
func ToModelDailyRate(d domain.DailyRate) models.DailyRate {
	return models.DailyRate{
		DailyRateID:      d.DailyRateID,
		PropertyID:       d.PropertyID,
		RoomTypeID:       d.RoomTypeID,
		Date:             d.Date,
		CalculatedRate:   d.CalculatedRate,
		RatePeriodID:     d.RatePeriodID,
		IsManualOverride: d.IsManualOverride,
		AuditFields:      ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainDailyRate converts a model DailyRate to its domain form
func ToDomainDailyRate(m models.DailyRate) domain.DailyRate {
	return domain.DailyRate{
		DailyRateID:      m.DailyRateID,
		PropertyID:       m.PropertyID,
		RoomTypeID:       m.RoomTypeID,
		Date:             m.Date,
		CalculatedRate:   m.CalculatedRate,
		RatePeriodID:     m.RatePeriodID,
		IsManualOverride: m.IsManualOverride,
		AuditFields:      ToDomainAuditFields(m.AuditFields),
	}
}

// ToDomainRoomType converts a model RoomType to its domain form
func ToDomainRoomType(m models.RoomType) domain.RoomType {
	return domain.RoomType{
		RoomTypeID:   m.RoomTypeID,
		PropertyID:   m.PropertyID,
		Name:         m.Name,
		BaseRate:     m.BaseRate,
		MaxOccupancy: m.MaxOccupancy,
		IsActive:     m.IsActive,
		AuditFields:  ToDomainAuditFields(m.AuditFields),
	}
}
