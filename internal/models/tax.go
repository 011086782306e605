package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// TaxConfiguration mirrors a row of the tax_configurations table. AppliesTo is a
// text[] column.
type TaxConfiguration struct {
	TaxID            string          `json:"taxID"`
	PropertyID       string          `json:"propertyID"`
	Name             string          `json:"name"`
	Code             string          `json:"code"`
	Rate             decimal.Decimal `json:"rate"`
	IsCompound       bool            `json:"isCompound"`
	AppliesTo        []string        `json:"appliesTo"`
	IsInclusive      bool            `json:"isInclusive"`
	CalculationOrder int             `json:"calculationOrder"`
	IsActive         bool            `json:"isActive"`
	AuditFields
}

// TaxExemption mirrors a row of the tax_exemptions table.
type TaxExemption struct {
	ExemptionID        string           `json:"exemptionID"`
	TaxConfigurationID string           `json:"taxConfigurationID"`
	EntityType         string           `json:"entityType"`
	EntityID           string           `json:"entityID"`
	ExemptionType      string           `json:"exemptionType"`
	ExemptionRate      *decimal.Decimal `json:"exemptionRate"`
	ValidFrom          *time.Time       `json:"validFrom"`
	ValidUntil         *time.Time       `json:"validUntil"`
	AuditFields
}
