package services

import (
	"context"
	"fmt"
	"log/slog"
	"sort"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/stayfolio/hotel_pms_app/internal/apperrors"
	"github.com/stayfolio/hotel_pms_app/internal/core/domain"
	portsrepo "github.com/stayfolio/hotel_pms_app/internal/core/ports/repositories"
	portssvc "github.com/stayfolio/hotel_pms_app/internal/core/ports/services"
	"github.com/stayfolio/hotel_pms_app/internal/dto"
	"github.com/stayfolio/hotel_pms_app/internal/middleware"
	"github.com/stayfolio/hotel_pms_app/internal/utils/billing"
)

// taxService resolves applicable taxes for charges.
type taxService struct {
	taxRepo portsrepo.TaxRepositoryFacade
}

// NewTaxService creates a new tax service.
func NewTaxService(taxRepo portsrepo.TaxRepositoryFacade) portssvc.TaxSvcFacade {
	return &taxService{taxRepo: taxRepo}
}

var _ portssvc.TaxSvcFacade = (*taxService)(nil)

var oneHundred = decimal.NewFromInt(100)

// effectiveRate resolves a tax's rate after applying any exemption granted to the
// corporate account or guest. A full exemption zeroes the rate; a partial one
// reduces it by the exemption percentage. A partial exemption with no rate set
// reduces nothing.
func effectiveRate(cfg domain.TaxConfiguration, exemptions []domain.TaxExemption, serviceDate time.Time) decimal.Decimal {
	for _, ex := range exemptions {
		if ex.TaxConfigurationID != cfg.TaxID || !ex.ValidOn(serviceDate) {
			continue
		}
		switch ex.ExemptionType {
		case domain.ExemptionFull:
			return decimal.Zero
		case domain.ExemptionPartial:
			if ex.ExemptionRate == nil {
				return cfg.Rate
			}
			factor := decimal.NewFromInt(1).Sub(ex.ExemptionRate.Div(oneHundred))
			return cfg.Rate.Mul(factor)
		}
	}
	return cfg.Rate
}

// CalculateTaxes computes the tax breakdown for one charge amount. Non-compound
// taxes apply to the base amount in calculation order; compound taxes then apply to
// the base plus the accumulated non-compound tax, also in calculation order.
func (s *taxService) CalculateTaxes(ctx context.Context, tc domain.TenantContext, amount decimal.Decimal, chargeType domain.ChargeType, corporateAccountID, guestID *string, serviceDate time.Time) (*domain.TaxCalculation, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	configs, err := s.taxRepo.ListTaxConfigurations(ctx, tc.PropertyID, true)
	if err != nil {
		logger.Error("Failed to list tax configurations", slog.String("error", err.Error()), slog.String("property_id", tc.PropertyID))
		return nil, fmt.Errorf("failed to list tax configurations: %w", err)
	}

	var applicable []domain.TaxConfiguration
	for _, cfg := range configs {
		if cfg.AppliesToCharge(chargeType) {
			applicable = append(applicable, cfg)
		}
	}

	calc := &domain.TaxCalculation{
		Breakdown: make(map[string]domain.TaxLine),
		TotalTax:  decimal.Zero,
		NetAmount: billing.Round2(amount),
	}
	if len(applicable) == 0 {
		return calc, nil
	}

	var exemptions []domain.TaxExemption
	if corporateAccountID != nil || guestID != nil {
		byTax, err := s.taxRepo.ListExemptionsForEntities(ctx, corporateAccountID, guestID)
		if err != nil {
			logger.Error("Failed to list tax exemptions", slog.String("error", err.Error()))
			return nil, fmt.Errorf("failed to list tax exemptions: %w", err)
		}
		for _, exs := range byTax {
			exemptions = append(exemptions, exs...)
		}
	}

	var simple, compound []domain.TaxConfiguration
	for _, cfg := range applicable {
		if cfg.IsCompound {
			compound = append(compound, cfg)
		} else {
			simple = append(simple, cfg)
		}
	}
	sort.SliceStable(simple, func(i, j int) bool { return simple[i].CalculationOrder < simple[j].CalculationOrder })
	sort.SliceStable(compound, func(i, j int) bool { return compound[i].CalculationOrder < compound[j].CalculationOrder })

	totalTax := decimal.Zero
	for _, cfg := range simple {
		rate := effectiveRate(cfg, exemptions, serviceDate)
		taxAmount := billing.Round2(amount.Mul(rate).Div(oneHundred))
		calc.Breakdown[cfg.Code] = domain.TaxLine{Name: cfg.Name, Rate: rate, Amount: taxAmount, IsCompound: false}
		totalTax = totalTax.Add(taxAmount)
	}

	// Compound taxes apply to the base plus all non-compound tax already accrued.
	baseForCompound := amount.Add(totalTax)
	for _, cfg := range compound {
		rate := effectiveRate(cfg, exemptions, serviceDate)
		taxAmount := billing.Round2(baseForCompound.Mul(rate).Div(oneHundred))
		calc.Breakdown[cfg.Code] = domain.TaxLine{Name: cfg.Name, Rate: rate, Amount: taxAmount, IsCompound: true}
		totalTax = totalTax.Add(taxAmount)
	}

	calc.TotalTax = billing.Round2(totalTax)
	calc.NetAmount = billing.Round2(amount.Add(totalTax))
	return calc, nil
}

// CreateTaxConfiguration adds a tax rule to the property.
func (s *taxService) CreateTaxConfiguration(ctx context.Context, tc domain.TenantContext, req dto.CreateTaxConfigurationRequest) (*domain.TaxConfiguration, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	if req.Rate.IsNegative() {
		return nil, fmt.Errorf("%w: tax rate must not be negative", apperrors.ErrValidation)
	}

	appliesTo := make([]domain.ChargeType, len(req.AppliesTo))
	for i, a := range req.AppliesTo {
		appliesTo[i] = domain.ChargeType(a)
	}

	now := time.Now().UTC()
	cfg := domain.TaxConfiguration{
		TaxID:            uuid.NewString(),
		PropertyID:       tc.PropertyID,
		Name:             req.Name,
		Code:             req.Code,
		Rate:             req.Rate,
		IsCompound:       req.IsCompound,
		AppliesTo:        appliesTo,
		IsInclusive:      req.IsInclusive,
		CalculationOrder: req.CalculationOrder,
		IsActive:         true,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     tc.ActorID,
			LastUpdatedAt: now,
			LastUpdatedBy: tc.ActorID,
		},
	}

	if err := s.taxRepo.SaveTaxConfiguration(ctx, cfg); err != nil {
		logger.Error("Failed to save tax configuration", slog.String("error", err.Error()), slog.String("property_id", tc.PropertyID))
		return nil, fmt.Errorf("failed to save tax configuration: %w", err)
	}

	logger.Info("Tax configuration created", slog.String("tax_id", cfg.TaxID), slog.String("code", cfg.Code))
	return &cfg, nil
}

// UpdateTaxConfiguration changes an existing tax rule of the tenant's property.
func (s *taxService) UpdateTaxConfiguration(ctx context.Context, tc domain.TenantContext, taxID string, req dto.UpdateTaxConfigurationRequest) (*domain.TaxConfiguration, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	cfg, err := s.taxRepo.FindTaxConfigurationByID(ctx, taxID)
	if err != nil {
		return nil, fmt.Errorf("failed to find tax configuration %s: %w", taxID, err)
	}
	if cfg.PropertyID != tc.PropertyID {
		return nil, apperrors.ErrNotFound
	}

	if req.Name != nil {
		cfg.Name = *req.Name
	}
	if req.Rate != nil {
		if req.Rate.IsNegative() {
			return nil, fmt.Errorf("%w: tax rate must not be negative", apperrors.ErrValidation)
		}
		cfg.Rate = *req.Rate
	}
	if len(req.AppliesTo) > 0 {
		appliesTo := make([]domain.ChargeType, len(req.AppliesTo))
		for i, a := range req.AppliesTo {
			appliesTo[i] = domain.ChargeType(a)
		}
		cfg.AppliesTo = appliesTo
	}
	if req.CalculationOrder != nil {
		cfg.CalculationOrder = *req.CalculationOrder
	}
	if req.IsActive != nil {
		cfg.IsActive = *req.IsActive
	}
	cfg.LastUpdatedAt = time.Now().UTC()
	cfg.LastUpdatedBy = tc.ActorID

	if err := s.taxRepo.UpdateTaxConfiguration(ctx, *cfg); err != nil {
		logger.Error("Failed to update tax configuration", slog.String("error", err.Error()), slog.String("tax_id", taxID))
		return nil, fmt.Errorf("failed to update tax configuration: %w", err)
	}

	logger.Info("Tax configuration updated", slog.String("tax_id", taxID), slog.String("code", cfg.Code))
	return cfg, nil
}

// ListTaxConfigurations returns the property's tax rules.
func (s *taxService) ListTaxConfigurations(ctx context.Context, tc domain.TenantContext, activeOnly bool) ([]domain.TaxConfiguration, error) {
	configs, err := s.taxRepo.ListTaxConfigurations(ctx, tc.PropertyID, activeOnly)
	if err != nil {
		return nil, fmt.Errorf("failed to list tax configurations: %w", err)
	}
	return configs, nil
}

// CreateTaxExemption grants an exemption to a corporate account or guest.
func (s *taxService) CreateTaxExemption(ctx context.Context, tc domain.TenantContext, req dto.CreateTaxExemptionRequest) (*domain.TaxExemption, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	cfg, err := s.taxRepo.FindTaxConfigurationByID(ctx, req.TaxConfigurationID)
	if err != nil {
		return nil, fmt.Errorf("failed to find tax configuration %s: %w", req.TaxConfigurationID, err)
	}
	if cfg.PropertyID != tc.PropertyID {
		// Obscure existence of other tenants' configuration.
		return nil, apperrors.ErrNotFound
	}
	if req.ExemptionRate != nil && (req.ExemptionRate.IsNegative() || req.ExemptionRate.GreaterThan(oneHundred)) {
		return nil, fmt.Errorf("%w: exemption rate must be between 0 and 100", apperrors.ErrValidation)
	}

	now := time.Now().UTC()
	ex := domain.TaxExemption{
		ExemptionID:        uuid.NewString(),
		TaxConfigurationID: req.TaxConfigurationID,
		EntityType:         domain.ExemptionEntityType(req.EntityType),
		EntityID:           req.EntityID,
		ExemptionType:      domain.ExemptionType(req.ExemptionType),
		ExemptionRate:      req.ExemptionRate,
		ValidFrom:          req.ValidFrom,
		ValidUntil:         req.ValidUntil,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     tc.ActorID,
			LastUpdatedAt: now,
			LastUpdatedBy: tc.ActorID,
		},
	}

	if err := s.taxRepo.SaveTaxExemption(ctx, ex); err != nil {
		logger.Error("Failed to save tax exemption", slog.String("error", err.Error()), slog.String("tax_id", req.TaxConfigurationID))
		return nil, fmt.Errorf("failed to save tax exemption: %w", err)
	}

	logger.Info("Tax exemption created", slog.String("exemption_id", ex.ExemptionID), slog.String("entity_id", ex.EntityID))
	return &ex, nil
}
