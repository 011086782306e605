package repositories

import (
	"context"

	"github.com/stayfolio/hotel_pms_app/internal/core/domain"
)

// TaxReader defines read operations for tax configuration data.
type TaxReader interface {
	// FindTaxConfigurationByID retrieves a single tax configuration.
	FindTaxConfigurationByID(ctx context.Context, taxID string) (*domain.TaxConfiguration, error)

	// ListTaxConfigurations retrieves all tax configurations for a property,
	// optionally restricted to active ones, ordered by calculation_order.
	ListTaxConfigurations(ctx context.Context, propertyID string, activeOnly bool) ([]domain.TaxConfiguration, error)

	// ListExemptionsForEntities retrieves exemptions granted to the given corporate
	// account and/or guest, keyed by tax configuration ID. Nil IDs are skipped.
	ListExemptionsForEntities(ctx context.Context, corporateAccountID, guestID *string) (map[string][]domain.TaxExemption, error)
}

// TaxWriter defines write operations for tax configuration data.
type TaxWriter interface {
	// SaveTaxConfiguration inserts a new tax configuration.
	SaveTaxConfiguration(ctx context.Context, cfg domain.TaxConfiguration) error

	// UpdateTaxConfiguration updates an existing tax configuration.
	UpdateTaxConfiguration(ctx context.Context, cfg domain.TaxConfiguration) error

	// SaveTaxExemption inserts a new exemption.
	SaveTaxExemption(ctx context.Context, ex domain.TaxExemption) error
}

// TaxRepositoryFacade combines all tax-related repository interfaces.
type TaxRepositoryFacade interface {
	TaxReader
	TaxWriter
}
