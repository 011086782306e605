package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/stayfolio/hotel_pms_app/internal/core/domain"
)

// CalculateTaxesRequest defines the payload for an ad hoc tax calculation.
type CalculateTaxesRequest struct {
	Amount             decimal.Decimal `json:"amount" binding:"required"`
	ChargeType         string          `json:"chargeType" binding:"required,oneof=room food service other"`
	CorporateAccountID *string         `json:"corporateAccountID"`
	GuestID            *string         `json:"guestID"`
}

// TaxLineResponse is one tax's contribution in a calculation breakdown.
type TaxLineResponse struct {
	Name       string          `json:"name"`
	Rate       decimal.Decimal `json:"rate"`
	Amount     decimal.Decimal `json:"amount"`
	IsCompound bool            `json:"isCompound"`
}

// TaxCalculationResponse defines the result of a tax calculation.
type TaxCalculationResponse struct {
	Breakdown map[string]TaxLineResponse `json:"breakdown"`
	TotalTax  decimal.Decimal            `json:"totalTax"`
	NetAmount decimal.Decimal            `json:"netAmount"`
}

// CreateTaxConfigurationRequest defines the payload for creating a tax configuration.
type CreateTaxConfigurationRequest struct {
	Name             string          `json:"name" binding:"required"`
	Code             string          `json:"code" binding:"required"`
	Rate             decimal.Decimal `json:"rate" binding:"required"`
	IsCompound       bool            `json:"isCompound"`
	AppliesTo        []string        `json:"appliesTo" binding:"required,min=1,dive,oneof=room food service other all"`
	IsInclusive      bool            `json:"isInclusive"`
	CalculationOrder int             `json:"calculationOrder"`
}

// UpdateTaxConfigurationRequest defines the payload for updating a tax configuration.
// Only the provided fields are changed.
type UpdateTaxConfigurationRequest struct {
	Name             *string          `json:"name"`
	Rate             *decimal.Decimal `json:"rate"`
	AppliesTo        []string         `json:"appliesTo" binding:"omitempty,min=1,dive,oneof=room food service other all"`
	CalculationOrder *int             `json:"calculationOrder"`
	IsActive         *bool            `json:"isActive"`
}

// CreateTaxExemptionRequest defines the payload for granting a tax exemption.
type CreateTaxExemptionRequest struct {
	TaxConfigurationID string           `json:"taxConfigurationID" binding:"required"`
	EntityType         string           `json:"entityType" binding:"required,oneof=corporate guest"`
	EntityID           string           `json:"entityID" binding:"required"`
	ExemptionType      string           `json:"exemptionType" binding:"required,oneof=full partial"`
	ExemptionRate      *decimal.Decimal `json:"exemptionRate"`
	ValidFrom          *time.Time       `json:"validFrom"`
	ValidUntil         *time.Time       `json:"validUntil"`
}

// TaxConfigurationResponse defines the data returned for a tax configuration.
type TaxConfigurationResponse struct {
	TaxID            string          `json:"taxID"`
	Name             string          `json:"name"`
	Code             string          `json:"code"`
	Rate             decimal.Decimal `json:"rate"`
	IsCompound       bool            `json:"isCompound"`
	AppliesTo        []string        `json:"appliesTo"`
	IsInclusive      bool            `json:"isInclusive"`
	CalculationOrder int             `json:"calculationOrder"`
	IsActive         bool            `json:"isActive"`
}

// ToTaxCalculationResponse converts a domain.TaxCalculation to its response DTO.
func ToTaxCalculationResponse(calc *domain.TaxCalculation) TaxCalculationResponse {
	breakdown := make(map[string]TaxLineResponse, len(calc.Breakdown))
	for code, line := range calc.Breakdown {
		breakdown[code] = TaxLineResponse{
			Name:       line.Name,
			Rate:       line.Rate,
			Amount:     line.Amount,
			IsCompound: line.IsCompound,
		}
	}
	return TaxCalculationResponse{
		Breakdown: breakdown,
		TotalTax:  calc.TotalTax,
		NetAmount: calc.NetAmount,
	}
}

// ToTaxConfigurationResponse converts a domain.TaxConfiguration to its response DTO.
func ToTaxConfigurationResponse(cfg *domain.TaxConfiguration) TaxConfigurationResponse {
	appliesTo := make([]string, len(cfg.AppliesTo))
	for i, ct := range cfg.AppliesTo {
		appliesTo[i] = string(ct)
	}
	return TaxConfigurationResponse{
		TaxID:            cfg.TaxID,
		Name:             cfg.Name,
		Code:             cfg.Code,
		Rate:             cfg.Rate,
		IsCompound:       cfg.IsCompound,
		AppliesTo:        appliesTo,
		IsInclusive:      cfg.IsInclusive,
		CalculationOrder: cfg.CalculationOrder,
		IsActive:         cfg.IsActive,
	}
}
