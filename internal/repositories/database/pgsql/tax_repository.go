package pgsql

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/stayfolio/hotel_pms_app/internal/apperrors"
	"github.com/stayfolio/hotel_pms_app/internal/core/domain"
	portsrepo "github.com/stayfolio/hotel_pms_app/internal/core/ports/repositories"
	"github.com/stayfolio/hotel_pms_app/internal/models"
	"github.com/stayfolio/hotel_pms_app/internal/utils/mapping"
)

// PgxTaxRepository implements tax configuration persistence on PostgreSQL.
type PgxTaxRepository struct {
	BaseRepository
}

// NewTaxRepository creates the tax repository.
func NewTaxRepository(pool *pgxpool.Pool) portsrepo.TaxRepositoryFacade {
	return &PgxTaxRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.TaxRepositoryFacade = (*PgxTaxRepository)(nil)

const taxConfigColumns = `
	tax_id, property_id, name, code, rate, is_compound, applies_to, is_inclusive,
	calculation_order, is_active, created_at, created_by, last_updated_at, last_updated_by`

const taxExemptionColumns = `
	exemption_id, tax_configuration_id, entity_type, entity_id, exemption_type,
	exemption_rate, valid_from, valid_until, created_at, created_by, last_updated_at, last_updated_by`

func scanTaxConfiguration(row pgx.Row) (*models.TaxConfiguration, error) {
	var m models.TaxConfiguration
	err := row.Scan(
		&m.TaxID, &m.PropertyID, &m.Name, &m.Code, &m.Rate, &m.IsCompound, &m.AppliesTo, &m.IsInclusive,
		&m.CalculationOrder, &m.IsActive, &m.CreatedAt, &m.CreatedBy, &m.LastUpdatedAt, &m.LastUpdatedBy,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, apperrors.NewAppError(500, "failed to scan tax configuration", err)
	}
	return &m, nil
}

// FindTaxConfigurationByID retrieves a single tax configuration.
func (r *PgxTaxRepository) FindTaxConfigurationByID(ctx context.Context, taxID string) (*domain.TaxConfiguration, error) {
	m, err := scanTaxConfiguration(r.Pool.QueryRow(ctx,
		`SELECT `+taxConfigColumns+` FROM tax_configurations WHERE tax_id = $1`, taxID))
	if err != nil {
		return nil, err
	}
	cfg := mapping.ToDomainTaxConfiguration(*m)
	return &cfg, nil
}

// ListTaxConfigurations retrieves a property's tax configurations ordered by
// calculation_order.
func (r *PgxTaxRepository) ListTaxConfigurations(ctx context.Context, propertyID string, activeOnly bool) ([]domain.TaxConfiguration, error) {
	query := `SELECT ` + taxConfigColumns + ` FROM tax_configurations WHERE property_id = $1`
	if activeOnly {
		query += ` AND is_active = TRUE`
	}
	query += ` ORDER BY calculation_order, tax_id`

	rows, err := r.Pool.Query(ctx, query, propertyID)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to list tax configurations", err)
	}
	defer rows.Close()

	var configs []domain.TaxConfiguration
	for rows.Next() {
		var m models.TaxConfiguration
		err := rows.Scan(
			&m.TaxID, &m.PropertyID, &m.Name, &m.Code, &m.Rate, &m.IsCompound, &m.AppliesTo, &m.IsInclusive,
			&m.CalculationOrder, &m.IsActive, &m.CreatedAt, &m.CreatedBy, &m.LastUpdatedAt, &m.LastUpdatedBy,
		)
		if err != nil {
			return nil, apperrors.NewAppError(500, "failed to scan tax configuration", err)
		}
		configs = append(configs, mapping.ToDomainTaxConfiguration(m))
	}
	return configs, rows.Err()
}

// ListExemptionsForEntities retrieves exemptions granted to the corporate account
// and/or guest, keyed by tax configuration ID.
func (r *PgxTaxRepository) ListExemptionsForEntities(ctx context.Context, corporateAccountID, guestID *string) (map[string][]domain.TaxExemption, error) {
	result := make(map[string][]domain.TaxExemption)
	if corporateAccountID == nil && guestID == nil {
		return result, nil
	}

	rows, err := r.Pool.Query(ctx, `
		SELECT `+taxExemptionColumns+`
		FROM tax_exemptions
		WHERE (entity_type = 'corporate' AND entity_id = $1)
		   OR (entity_type = 'guest' AND entity_id = $2)`,
		corporateAccountID, guestID,
	)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to list tax exemptions", err)
	}
	defer rows.Close()

	for rows.Next() {
		var m models.TaxExemption
		err := rows.Scan(
			&m.ExemptionID, &m.TaxConfigurationID, &m.EntityType, &m.EntityID, &m.ExemptionType,
			&m.ExemptionRate, &m.ValidFrom, &m.ValidUntil, &m.CreatedAt, &m.CreatedBy, &m.LastUpdatedAt, &m.LastUpdatedBy,
		)
		if err != nil {
			return nil, apperrors.NewAppError(500, "failed to scan tax exemption", err)
		}
		ex := mapping.ToDomainTaxExemption(m)
		result[ex.TaxConfigurationID] = append(result[ex.TaxConfigurationID], ex)
	}
	return result, rows.Err()
}

// SaveTaxConfiguration inserts a new tax configuration.
func (r *PgxTaxRepository) SaveTaxConfiguration(ctx context.Context, cfg domain.TaxConfiguration) error {
	m := mapping.ToModelTaxConfiguration(cfg)
	_, err := r.Pool.Exec(ctx, `
		INSERT INTO tax_configurations (`+taxConfigColumns+`)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)`,
		m.TaxID, m.PropertyID, m.Name, m.Code, m.Rate, m.IsCompound, m.AppliesTo, m.IsInclusive,
		m.CalculationOrder, m.IsActive, m.CreatedAt, m.CreatedBy, m.LastUpdatedAt, m.LastUpdatedBy,
	)
	if err != nil {
		return apperrors.NewAppError(500, "failed to insert tax configuration "+m.TaxID, err)
	}
	return nil
}

// UpdateTaxConfiguration updates an existing tax configuration.
func (r *PgxTaxRepository) UpdateTaxConfiguration(ctx context.Context, cfg domain.TaxConfiguration) error {
	m := mapping.ToModelTaxConfiguration(cfg)
	tag, err := r.Pool.Exec(ctx, `
		UPDATE tax_configurations
		SET name = $2, code = $3, rate = $4, is_compound = $5, applies_to = $6,
		    is_inclusive = $7, calculation_order = $8, is_active = $9,
		    last_updated_at = $10, last_updated_by = $11
		WHERE tax_id = $1`,
		m.TaxID, m.Name, m.Code, m.Rate, m.IsCompound, m.AppliesTo,
		m.IsInclusive, m.CalculationOrder, m.IsActive,
		m.LastUpdatedAt, m.LastUpdatedBy,
	)
	if err != nil {
		return apperrors.NewAppError(500, "failed to update tax configuration "+m.TaxID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

// SaveTaxExemption inserts a new exemption.
func (r *PgxTaxRepository) SaveTaxExemption(ctx context.Context, ex domain.TaxExemption) error {
	m := mapping.ToModelTaxExemption(ex)
	_, err := r.Pool.Exec(ctx, `
		INSERT INTO tax_exemptions (`+taxExemptionColumns+`)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)`,
		m.ExemptionID, m.TaxConfigurationID, m.EntityType, m.EntityID, m.ExemptionType,
		m.ExemptionRate, m.ValidFrom, m.ValidUntil, m.CreatedAt, m.CreatedBy, m.LastUpdatedAt, m.LastUpdatedBy,
	)
	if err != nil {
		return apperrors.NewAppError(500, "failed to insert tax exemption "+m.ExemptionID, err)
	}
	return nil
}
