package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// ChargeType classifies a charge for tax applicability purposes.
type ChargeType string

const (
	ChargeRoom    ChargeType = "room"
	ChargeFood    ChargeType = "food"
	ChargeService ChargeType = "service"
	ChargeOther   ChargeType = "other"
	ChargeAll     ChargeType = "all"
)

// TaxConfiguration is a property-scoped tax rule. Non-compound taxes apply to the
// base amount; compound taxes apply to the base plus all non-compound tax amounts.
type TaxConfiguration struct {
	TaxID            string          `json:"taxID"` // Primary Key (UUID)
	PropertyID       string          `json:"propertyID"`
	Name             string          `json:"name"`
	Code             string          `json:"code"` // Short code used as breakdown key (e.g. "VAT")
	Rate             decimal.Decimal `json:"rate"` // Percentage, e.g. 10 for 10%
	IsCompound       bool            `json:"isCompound"`
	AppliesTo        []ChargeType    `json:"appliesTo"`
	IsInclusive      bool            `json:"isInclusive"`
	CalculationOrder int             `json:"calculationOrder"` // Ascending within each partition
	IsActive         bool            `json:"isActive"`
	AuditFields
}

// AppliesToCharge reports whether this tax applies to the given charge type.
func (t TaxConfiguration) AppliesToCharge(ct ChargeType) bool {
	for _, a := range t.AppliesTo {
		if a == ChargeAll || a == ct {
			return true
		}
	}
	return false
}

// ExemptionEntityType identifies what kind of entity an exemption is granted to.
type ExemptionEntityType string

const (
	ExemptCorporate ExemptionEntityType = "corporate"
	ExemptGuest     ExemptionEntityType = "guest"
)

// ExemptionType distinguishes a full exemption from a partial rate reduction.
type ExemptionType string

const (
	ExemptionFull    ExemptionType = "full"
	ExemptionPartial ExemptionType = "partial"
)

// TaxExemption ties one TaxConfiguration to a corporate account or guest.
// A full exemption zeroes the rate; a partial one reduces it by ExemptionRate percent.
type TaxExemption struct {
	ExemptionID        string              `json:"exemptionID"` // Primary Key (UUID)
	TaxConfigurationID string              `json:"taxConfigurationID"`
	EntityType         ExemptionEntityType `json:"entityType"`
	EntityID           string              `json:"entityID"`
	ExemptionType      ExemptionType       `json:"exemptionType"`
	ExemptionRate      *decimal.Decimal    `json:"exemptionRate"` // Percent reduction; nil on partial means no-op
	ValidFrom          *time.Time          `json:"validFrom"`
	ValidUntil         *time.Time          `json:"validUntil"`
	AuditFields
}

// ValidOn reports whether the exemption is in effect on the given date.
func (e TaxExemption) ValidOn(date time.Time) bool {
	if e.ValidFrom != nil && date.Before(*e.ValidFrom) {
		return false
	}
	if e.ValidUntil != nil && date.After(*e.ValidUntil) {
		return false
	}
	return true
}

// TaxLine is one tax's contribution within a TaxCalculation breakdown.
type TaxLine struct {
	Name       string          `json:"name"`
	Rate       decimal.Decimal `json:"rate"` // Effective rate after exemptions
	Amount     decimal.Decimal `json:"amount"`
	IsCompound bool            `json:"isCompound"`
}

// TaxCalculation is the result of resolving taxes for a single charge amount.
type TaxCalculation struct {
	Breakdown map[string]TaxLine `json:"breakdown"` // Keyed by tax code
	TotalTax  decimal.Decimal    `json:"totalTax"`
	NetAmount decimal.Decimal    `json:"netAmount"` // Amount + TotalTax
}
