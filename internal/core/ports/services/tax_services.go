package services

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/stayfolio/hotel_pms_app/internal/core/domain"
	"github.com/stayfolio/hotel_pms_app/internal/dto"
)

// TaxSvcFacade resolves applicable taxes for charges and manages the property's
// tax configuration.
type TaxSvcFacade interface {
	// CalculateTaxes computes the tax breakdown for one charge amount. Exemptions
	// tied to the given corporate account or guest adjust the effective rates; the
	// validity window is checked against serviceDate.
	CalculateTaxes(ctx context.Context, tc domain.TenantContext, amount decimal.Decimal, chargeType domain.ChargeType, corporateAccountID, guestID *string, serviceDate time.Time) (*domain.TaxCalculation, error)

	// CreateTaxConfiguration adds a tax rule to the property.
	CreateTaxConfiguration(ctx context.Context, tc domain.TenantContext, req dto.CreateTaxConfigurationRequest) (*domain.TaxConfiguration, error)

	// UpdateTaxConfiguration changes an existing tax rule; deactivation rather than
	// deletion keeps historic folio tax breakdowns explicable.
	UpdateTaxConfiguration(ctx context.Context, tc domain.TenantContext, taxID string, req dto.UpdateTaxConfigurationRequest) (*domain.TaxConfiguration, error)

	// ListTaxConfigurations returns the property's tax rules.
	ListTaxConfigurations(ctx context.Context, tc domain.TenantContext, activeOnly bool) ([]domain.TaxConfiguration, error)

	// CreateTaxExemption grants an exemption to a corporate account or guest.
	CreateTaxExemption(ctx context.Context, tc domain.TenantContext, req dto.CreateTaxExemptionRequest) (*domain.TaxExemption, error)
}
