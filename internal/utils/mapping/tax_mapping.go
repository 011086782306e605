package mapping

import (
	"github.com/stayfolio/hotel_pms_app/internal/core/domain"
	"github.com/stayfolio/hotel_pms_app/internal/models"
)

// ToModelTaxConfiguration converts a domain TaxConfiguration to its model form
func ToModelTaxConfiguration(d domain.TaxConfiguration) models.TaxConfiguration {
	appliesTo := make([]string, len(d.AppliesTo))
	for i, ct := range d.AppliesTo {
		appliesTo[i] = string(ct)
	}
	return models.TaxConfiguration{
		TaxID:            d.TaxID,
		PropertyID:       d.PropertyID,
		Name:             d.Name,
		Code:             d.Code,
		Rate:             d.Rate,
		IsCompound:       d.IsCompound,
		AppliesTo:        appliesTo,
		IsInclusive:      d.IsInclusive,
		CalculationOrder: d.CalculationOrder,
		IsActive:         d.IsActive,
		AuditFields:      ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainTaxConfiguration converts a model TaxConfiguration to its domain form
func ToDomainTaxConfiguration(m models.TaxConfiguration) domain.TaxConfiguration {
	appliesTo := make([]domain.ChargeType, len(m.AppliesTo))
	for i, a := range m.AppliesTo {
		appliesTo[i] = domain.ChargeType(a)
	}
	return domain.TaxConfiguration{
		TaxID:            m.TaxID,
		PropertyID:       m.PropertyID,
		Name:             m.Name,
		Code:             m.Code,
		Rate:             m.Rate,
		IsCompound:       m.IsCompound,
		AppliesTo:        appliesTo,
		IsInclusive:      m.IsInclusive,
		CalculationOrder: m.CalculationOrder,
		IsActive:         m.IsActive,
		AuditFields:      ToDomainAuditFields(m.AuditFields),
	}
}

// ToModelTaxExemption converts a domain TaxExemption to its model form
func ToModelTaxExemption(d domain.TaxExemption) models.TaxExemption {
	return models.TaxExemption{
		ExemptionID:        d.ExemptionID,
		TaxConfigurationID: d.TaxConfigurationID,
		EntityType:         string(d.EntityType),
		EntityID:           d.EntityID,
		ExemptionType:      string(d.ExemptionType),
		ExemptionRate:      d.ExemptionRate,
		ValidFrom:          d.ValidFrom,
		ValidUntil:         d.ValidUntil,
		AuditFields:        ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainTaxExemption converts a model TaxExemption to its domain form
func ToDomainTaxExemption(m models.TaxExemption) domain.TaxExemption {
	return domain.TaxExemption{
		ExemptionID:        m.ExemptionID,
		TaxConfigurationID: m.TaxConfigurationID,
		EntityType:         domain.ExemptionEntityType(m.EntityType),
		EntityID:           m.EntityID,
		ExemptionType:      domain.ExemptionType(m.ExemptionType),
		ExemptionRate:      m.ExemptionRate,
		ValidFrom:          m.ValidFrom,
		ValidUntil:         m.ValidUntil,
		AuditFields:        ToDomainAuditFields(m.AuditFields),
	}
}
