package pgsql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"

	"github.com/stayfolio/hotel_pms_app/internal/apperrors"
	"github.com/stayfolio/hotel_pms_app/internal/core/domain"
	portsrepo "github.com/stayfolio/hotel_pms_app/internal/core/ports/repositories"
	"github.com/stayfolio/hotel_pms_app/internal/models"
	"github.com/stayfolio/hotel_pms_app/internal/utils/billing"
	"github.com/stayfolio/hotel_pms_app/internal/utils/mapping"
	"github.com/stayfolio/hotel_pms_app/internal/utils/pagination"
)

// PgxFolioRepository implements folio persistence on PostgreSQL. Every mutation
// runs in one transaction: lock the folio row, verify the optimistic version,
// apply the write, recompute aggregates from the surviving rows, bump the version.
type PgxFolioRepository struct {
	BaseRepository
}

// NewFolioRepository creates the folio repository.
func NewFolioRepository(pool *pgxpool.Pool) portsrepo.FolioRepositoryWithTx {
	return &PgxFolioRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.FolioRepositoryWithTx = (*PgxFolioRepository)(nil)

const folioColumns = `
	folio_id, folio_number, property_id, guest_id, reservation_id, status,
	subtotal, tax_amount, service_charge, total_amount, paid_amount, balance,
	closed_at, closed_by, version,
	created_at, created_by, last_updated_at, last_updated_by`

const itemColumns = `
	item_id, folio_id, item_type, description, quantity, unit_price, total_price,
	tax_amount, tax_breakdown, service_date, voided, void_reason, voided_by, voided_at,
	is_posted, created_at, created_by, last_updated_at, last_updated_by`

const paymentColumns = `
	payment_id, folio_id, amount, payment_method, reference_number,
	corporate_account_id, notes, voided, void_reason, voided_by, voided_at,
	created_at, created_by, last_updated_at, last_updated_by`

// queryRower abstracts pool vs transaction for read helpers.
type queryRower interface {
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
}

func scanFolio(row pgx.Row) (*models.Folio, error) {
	var m models.Folio
	err := row.Scan(
		&m.FolioID, &m.FolioNumber, &m.PropertyID, &m.GuestID, &m.ReservationID, &m.Status,
		&m.Subtotal, &m.TaxAmount, &m.ServiceCharge, &m.TotalAmount, &m.PaidAmount, &m.Balance,
		&m.ClosedAt, &m.ClosedBy, &m.Version,
		&m.CreatedAt, &m.CreatedBy, &m.LastUpdatedAt, &m.LastUpdatedBy,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, apperrors.NewAppError(500, "failed to scan folio", err)
	}
	return &m, nil
}

func scanItems(rows pgx.Rows) ([]domain.FolioItem, error) {
	defer rows.Close()
	var items []domain.FolioItem
	for rows.Next() {
		var m models.FolioItem
		err := rows.Scan(
			&m.ItemID, &m.FolioID, &m.ItemType, &m.Description, &m.Quantity, &m.UnitPrice, &m.TotalPrice,
			&m.TaxAmount, &m.TaxBreakdown, &m.ServiceDate, &m.Voided, &m.VoidReason, &m.VoidedBy, &m.VoidedAt,
			&m.IsPosted, &m.CreatedAt, &m.CreatedBy, &m.LastUpdatedAt, &m.LastUpdatedBy,
		)
		if err != nil {
			return nil, apperrors.NewAppError(500, "failed to scan folio item", err)
		}
		items = append(items, mapping.ToDomainFolioItem(m))
	}
	return items, rows.Err()
}

func scanPayments(rows pgx.Rows) ([]domain.Payment, error) {
	defer rows.Close()
	var payments []domain.Payment
	for rows.Next() {
		var m models.Payment
		err := rows.Scan(
			&m.PaymentID, &m.FolioID, &m.Amount, &m.Method, &m.ReferenceNumber,
			&m.CorporateAccountID, &m.Notes, &m.Voided, &m.VoidReason, &m.VoidedBy, &m.VoidedAt,
			&m.CreatedAt, &m.CreatedBy, &m.LastUpdatedAt, &m.LastUpdatedBy,
		)
		if err != nil {
			return nil, apperrors.NewAppError(500, "failed to scan payment", err)
		}
		payments = append(payments, mapping.ToDomainPayment(m))
	}
	return payments, rows.Err()
}

func (r *PgxFolioRepository) findFolio(ctx context.Context, q queryRower, folioID string) (*domain.Folio, error) {
	m, err := scanFolio(q.QueryRow(ctx, `SELECT `+folioColumns+` FROM folios WHERE folio_id = $1`, folioID))
	if err != nil {
		return nil, err
	}
	folio := mapping.ToDomainFolio(*m)
	return &folio, nil
}

func (r *PgxFolioRepository) findItems(ctx context.Context, q queryRower, folioID string) ([]domain.FolioItem, error) {
	rows, err := q.Query(ctx, `SELECT `+itemColumns+` FROM folio_items WHERE folio_id = $1 ORDER BY created_at, item_id`, folioID)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query folio items", err)
	}
	return scanItems(rows)
}

func (r *PgxFolioRepository) findPayments(ctx context.Context, q queryRower, folioID string) ([]domain.Payment, error) {
	rows, err := q.Query(ctx, `SELECT `+paymentColumns+` FROM payments WHERE folio_id = $1 ORDER BY created_at, payment_id`, folioID)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query payments", err)
	}
	return scanPayments(rows)
}

// FindFolioByID retrieves a folio header.
func (r *PgxFolioRepository) FindFolioByID(ctx context.Context, folioID string) (*domain.Folio, error) {
	return r.findFolio(ctx, r.Pool, folioID)
}

// FindFolioWithDetails retrieves a folio with its items and payments.
func (r *PgxFolioRepository) FindFolioWithDetails(ctx context.Context, folioID string) (*domain.Folio, error) {
	folio, err := r.findFolio(ctx, r.Pool, folioID)
	if err != nil {
		return nil, err
	}
	if folio.Items, err = r.findItems(ctx, r.Pool, folioID); err != nil {
		return nil, err
	}
	if folio.Payments, err = r.findPayments(ctx, r.Pool, folioID); err != nil {
		return nil, err
	}
	return folio, nil
}

// ListFoliosByProperty lists folios newest first with keyset pagination on
// (created_at, folio_id).
func (r *PgxFolioRepository) ListFoliosByProperty(ctx context.Context, propertyID string, status *domain.FolioStatus, limit int, nextToken *string) ([]domain.Folio, *string, error) {
	query := `SELECT ` + folioColumns + ` FROM folios WHERE property_id = $1`
	args := []any{propertyID}

	if status != nil {
		args = append(args, string(*status))
		query += fmt.Sprintf(" AND status = $%d", len(args))
	}
	if nextToken != nil {
		createdAt, folioID, err := pagination.DecodeToken(*nextToken)
		if err != nil {
			return nil, nil, fmt.Errorf("%w: %s", apperrors.ErrValidation, err.Error())
		}
		args = append(args, createdAt, folioID)
		query += fmt.Sprintf(" AND (created_at, folio_id) < ($%d, $%d)", len(args)-1, len(args))
	}
	args = append(args, limit+1)
	query += fmt.Sprintf(" ORDER BY created_at DESC, folio_id DESC LIMIT $%d", len(args))

	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, nil, apperrors.NewAppError(500, "failed to list folios", err)
	}
	defer rows.Close()

	var folios []domain.Folio
	for rows.Next() {
		var m models.Folio
		err := rows.Scan(
			&m.FolioID, &m.FolioNumber, &m.PropertyID, &m.GuestID, &m.ReservationID, &m.Status,
			&m.Subtotal, &m.TaxAmount, &m.ServiceCharge, &m.TotalAmount, &m.PaidAmount, &m.Balance,
			&m.ClosedAt, &m.ClosedBy, &m.Version,
			&m.CreatedAt, &m.CreatedBy, &m.LastUpdatedAt, &m.LastUpdatedBy,
		)
		if err != nil {
			return nil, nil, apperrors.NewAppError(500, "failed to scan folio", err)
		}
		folios = append(folios, mapping.ToDomainFolio(m))
	}
	if err := rows.Err(); err != nil {
		return nil, nil, apperrors.NewAppError(500, "failed to read folio rows", err)
	}

	var token *string
	if len(folios) > limit {
		folios = folios[:limit]
		last := folios[limit-1]
		t := pagination.EncodeToken(last.CreatedAt, last.FolioID)
		token = &t
	}
	return folios, token, nil
}

// FindCorporateAccountByID retrieves a corporate account.
func (r *PgxFolioRepository) FindCorporateAccountByID(ctx context.Context, corporateAccountID string) (*domain.CorporateAccount, error) {
	var m models.CorporateAccount
	err := r.Pool.QueryRow(ctx, `
		SELECT corporate_account_id, property_id, name, credit_limit, current_balance, is_active,
		       created_at, created_by, last_updated_at, last_updated_by
		FROM corporate_accounts WHERE corporate_account_id = $1`, corporateAccountID,
	).Scan(
		&m.CorporateAccountID, &m.PropertyID, &m.Name, &m.CreditLimit, &m.CurrentBalance, &m.IsActive,
		&m.CreatedAt, &m.CreatedBy, &m.LastUpdatedAt, &m.LastUpdatedBy,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, apperrors.NewAppError(500, "failed to find corporate account", err)
	}
	account := mapping.ToDomainCorporateAccount(m)
	return &account, nil
}

// lockFolio loads the folio row FOR UPDATE and verifies the optimistic version.
func (r *PgxFolioRepository) lockFolio(ctx context.Context, tx pgx.Tx, folioID string, expectedVersion int64) (*domain.Folio, error) {
	m, err := scanFolio(tx.QueryRow(ctx, `SELECT `+folioColumns+` FROM folios WHERE folio_id = $1 FOR UPDATE`, folioID))
	if err != nil {
		return nil, err
	}
	if m.Version != expectedVersion {
		return nil, fmt.Errorf("%w: folio %s is at version %d, expected %d", apperrors.ErrConflict, folioID, m.Version, expectedVersion)
	}
	folio := mapping.ToDomainFolio(*m)
	return &folio, nil
}

// recomputeAggregates recalculates the folio's totals from its surviving items and
// payments, bumps the version, and returns the refreshed folio.
func (r *PgxFolioRepository) recomputeAggregates(ctx context.Context, tx pgx.Tx, folio *domain.Folio, actorID string, at time.Time) (*domain.Folio, error) {
	items, err := r.findItems(ctx, tx, folio.FolioID)
	if err != nil {
		return nil, err
	}
	payments, err := r.findPayments(ctx, tx, folio.FolioID)
	if err != nil {
		return nil, err
	}

	totals := billing.ComputeFolioTotals(items, payments, folio.ServiceCharge)
	billing.ApplyTotals(folio, totals)
	folio.Version++
	folio.LastUpdatedAt = at
	folio.LastUpdatedBy = actorID

	_, err = tx.Exec(ctx, `
		UPDATE folios
		SET subtotal = $2, tax_amount = $3, total_amount = $4, paid_amount = $5,
		    balance = $6, version = $7, last_updated_at = $8, last_updated_by = $9
		WHERE folio_id = $1`,
		folio.FolioID, folio.Subtotal, folio.TaxAmount, folio.TotalAmount, folio.PaidAmount,
		folio.Balance, folio.Version, folio.LastUpdatedAt, folio.LastUpdatedBy,
	)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to update folio aggregates", err)
	}

	folio.Items = items
	folio.Payments = payments
	return folio, nil
}

func insertFolio(ctx context.Context, tx pgx.Tx, folio domain.Folio) error {
	m := mapping.ToModelFolio(folio)
	_, err := tx.Exec(ctx, `
		INSERT INTO folios (`+folioColumns+`)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19)`,
		m.FolioID, m.FolioNumber, m.PropertyID, m.GuestID, m.ReservationID, m.Status,
		m.Subtotal, m.TaxAmount, m.ServiceCharge, m.TotalAmount, m.PaidAmount, m.Balance,
		m.ClosedAt, m.ClosedBy, m.Version,
		m.CreatedAt, m.CreatedBy, m.LastUpdatedAt, m.LastUpdatedBy,
	)
	if err != nil {
		return apperrors.NewAppError(500, "failed to insert folio "+m.FolioID, err)
	}
	return nil
}

func insertItem(ctx context.Context, tx pgx.Tx, item domain.FolioItem) error {
	m := mapping.ToModelFolioItem(item)
	_, err := tx.Exec(ctx, `
		INSERT INTO folio_items (`+itemColumns+`)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19)`,
		m.ItemID, m.FolioID, m.ItemType, m.Description, m.Quantity, m.UnitPrice, m.TotalPrice,
		m.TaxAmount, m.TaxBreakdown, m.ServiceDate, m.Voided, m.VoidReason, m.VoidedBy, m.VoidedAt,
		m.IsPosted, m.CreatedAt, m.CreatedBy, m.LastUpdatedAt, m.LastUpdatedBy,
	)
	if err != nil {
		return apperrors.NewAppError(500, "failed to insert folio item "+m.ItemID, err)
	}
	return nil
}

// CreateFolio persists a new folio with any initial items in one transaction.
func (r *PgxFolioRepository) CreateFolio(ctx context.Context, folio domain.Folio, items []domain.FolioItem) (*domain.Folio, error) {
	tx, err := r.Begin(ctx)
	if err != nil {
		return nil, err
	}
	defer r.Rollback(ctx, tx)

	if err := insertFolio(ctx, tx, folio); err != nil {
		return nil, err
	}
	for _, item := range items {
		if err := insertItem(ctx, tx, item); err != nil {
			return nil, err
		}
	}
	if err := r.Commit(ctx, tx); err != nil {
		return nil, err
	}

	folio.Items = items
	return &folio, nil
}

// AddItem appends a charge line and recomputes the folio aggregates.
func (r *PgxFolioRepository) AddItem(ctx context.Context, folioID string, expectedVersion int64, item domain.FolioItem) (*domain.Folio, error) {
	tx, err := r.Begin(ctx)
	if err != nil {
		return nil, err
	}
	defer r.Rollback(ctx, tx)

	folio, err := r.lockFolio(ctx, tx, folioID, expectedVersion)
	if err != nil {
		return nil, err
	}
	if err := insertItem(ctx, tx, item); err != nil {
		return nil, err
	}
	folio, err = r.recomputeAggregates(ctx, tx, folio, item.CreatedBy, item.CreatedAt)
	if err != nil {
		return nil, err
	}
	if err := r.Commit(ctx, tx); err != nil {
		return nil, err
	}
	return folio, nil
}

// AddPayment records a payment and recomputes the folio aggregates.
func (r *PgxFolioRepository) AddPayment(ctx context.Context, folioID string, expectedVersion int64, payment domain.Payment) (*domain.Folio, error) {
	tx, err := r.Begin(ctx)
	if err != nil {
		return nil, err
	}
	defer r.Rollback(ctx, tx)

	folio, err := r.lockFolio(ctx, tx, folioID, expectedVersion)
	if err != nil {
		return nil, err
	}

	m := mapping.ToModelPayment(payment)
	_, err = tx.Exec(ctx, `
		INSERT INTO payments (`+paymentColumns+`)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15)`,
		m.PaymentID, m.FolioID, m.Amount, m.Method, m.ReferenceNumber,
		m.CorporateAccountID, m.Notes, m.Voided, m.VoidReason, m.VoidedBy, m.VoidedAt,
		m.CreatedAt, m.CreatedBy, m.LastUpdatedAt, m.LastUpdatedBy,
	)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to insert payment "+m.PaymentID, err)
	}

	// Corporate payments accrue on the corporate account's running balance.
	if payment.CorporateAccountID != nil {
		_, err = tx.Exec(ctx, `
			UPDATE corporate_accounts
			SET current_balance = current_balance + $2, last_updated_at = $3, last_updated_by = $4
			WHERE corporate_account_id = $1`,
			*payment.CorporateAccountID, payment.Amount, payment.CreatedAt, payment.CreatedBy,
		)
		if err != nil {
			return nil, apperrors.NewAppError(500, "failed to update corporate account balance", err)
		}
	}

	folio, err = r.recomputeAggregates(ctx, tx, folio, payment.CreatedBy, payment.CreatedAt)
	if err != nil {
		return nil, err
	}
	if err := r.Commit(ctx, tx); err != nil {
		return nil, err
	}
	return folio, nil
}

// VoidItem soft-voids a charge line. The voided=false predicate makes the void
// first-writer-wins: a second concurrent void matches no rows and fails.
func (r *PgxFolioRepository) VoidItem(ctx context.Context, folioID string, expectedVersion int64, itemID, reason, actorID string, at time.Time) (*domain.Folio, error) {
	tx, err := r.Begin(ctx)
	if err != nil {
		return nil, err
	}
	defer r.Rollback(ctx, tx)

	folio, err := r.lockFolio(ctx, tx, folioID, expectedVersion)
	if err != nil {
		return nil, err
	}

	tag, err := tx.Exec(ctx, `
		UPDATE folio_items
		SET voided = TRUE, void_reason = $3, voided_by = $4, voided_at = $5,
		    last_updated_at = $5, last_updated_by = $4
		WHERE item_id = $1 AND folio_id = $2 AND voided = FALSE`,
		itemID, folioID, reason, actorID, at,
	)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to void folio item", err)
	}
	if tag.RowsAffected() == 0 {
		return nil, r.classifyVoidFailure(ctx, tx, "folio_items", "item_id", itemID, folioID)
	}

	folio, err = r.recomputeAggregates(ctx, tx, folio, actorID, at)
	if err != nil {
		return nil, err
	}
	if err := r.Commit(ctx, tx); err != nil {
		return nil, err
	}
	return folio, nil
}

// VoidPayment soft-voids a payment; the recomputed balance rises by its amount.
// A voided corporate payment also gives back the credit it consumed: the accrual
// AddPayment applied to corporate_accounts.current_balance is reversed in the
// same transaction.
func (r *PgxFolioRepository) VoidPayment(ctx context.Context, folioID string, expectedVersion int64, paymentID, reason, actorID string, at time.Time) (*domain.Folio, error) {
	tx, err := r.Begin(ctx)
	if err != nil {
		return nil, err
	}
	defer r.Rollback(ctx, tx)

	folio, err := r.lockFolio(ctx, tx, folioID, expectedVersion)
	if err != nil {
		return nil, err
	}

	var corporateAccountID *string
	var amount decimal.Decimal
	err = tx.QueryRow(ctx, `
		UPDATE payments
		SET voided = TRUE, void_reason = $3, voided_by = $4, voided_at = $5,
		    last_updated_at = $5, last_updated_by = $4
		WHERE payment_id = $1 AND folio_id = $2 AND voided = FALSE
		RETURNING corporate_account_id, amount`,
		paymentID, folioID, reason, actorID, at,
	).Scan(&corporateAccountID, &amount)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, r.classifyVoidFailure(ctx, tx, "payments", "payment_id", paymentID, folioID)
	}
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to void payment", err)
	}

	if corporateAccountID != nil {
		_, err = tx.Exec(ctx, `
			UPDATE corporate_accounts
			SET current_balance = current_balance - $2, last_updated_at = $3, last_updated_by = $4
			WHERE corporate_account_id = $1`,
			*corporateAccountID, amount, at, actorID,
		)
		if err != nil {
			return nil, apperrors.NewAppError(500, "failed to update corporate account balance", err)
		}
	}

	folio, err = r.recomputeAggregates(ctx, tx, folio, actorID, at)
	if err != nil {
		return nil, err
	}
	if err := r.Commit(ctx, tx); err != nil {
		return nil, err
	}
	return folio, nil
}

// classifyVoidFailure distinguishes "already voided" from "no such row" after a
// zero-row void update.
func (r *PgxFolioRepository) classifyVoidFailure(ctx context.Context, tx pgx.Tx, table, idColumn, id, folioID string) error {
	var voided bool
	err := tx.QueryRow(ctx,
		`SELECT voided FROM `+table+` WHERE `+idColumn+` = $1 AND folio_id = $2`,
		id, folioID,
	).Scan(&voided)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return apperrors.ErrNotFound
		}
		return apperrors.NewAppError(500, "failed to classify void failure", err)
	}
	if voided {
		return apperrors.ErrAlreadyVoided
	}
	return apperrors.ErrNotFound
}

// TransferItem re-parents one non-voided item onto the target folio, recomputing
// both folios in the same transaction. Folios are locked in ID order so two
// opposing transfers cannot deadlock.
func (r *PgxFolioRepository) TransferItem(ctx context.Context, sourceFolioID string, sourceVersion int64, targetFolioID, itemID, actorID string, at time.Time) (*domain.Folio, *domain.Folio, error) {
	tx, err := r.Begin(ctx)
	if err != nil {
		return nil, nil, err
	}
	defer r.Rollback(ctx, tx)

	var source, target *domain.Folio
	if sourceFolioID < targetFolioID {
		if source, err = r.lockFolio(ctx, tx, sourceFolioID, sourceVersion); err != nil {
			return nil, nil, err
		}
		if target, err = r.lockFolioAnyVersion(ctx, tx, targetFolioID); err != nil {
			return nil, nil, err
		}
	} else {
		if target, err = r.lockFolioAnyVersion(ctx, tx, targetFolioID); err != nil {
			return nil, nil, err
		}
		if source, err = r.lockFolio(ctx, tx, sourceFolioID, sourceVersion); err != nil {
			return nil, nil, err
		}
	}

	tag, err := tx.Exec(ctx, `
		UPDATE folio_items
		SET folio_id = $3, last_updated_at = $4, last_updated_by = $5
		WHERE item_id = $1 AND folio_id = $2 AND voided = FALSE`,
		itemID, sourceFolioID, targetFolioID, at, actorID,
	)
	if err != nil {
		return nil, nil, apperrors.NewAppError(500, "failed to transfer folio item", err)
	}
	if tag.RowsAffected() == 0 {
		return nil, nil, r.classifyVoidFailure(ctx, tx, "folio_items", "item_id", itemID, sourceFolioID)
	}

	if source, err = r.recomputeAggregates(ctx, tx, source, actorID, at); err != nil {
		return nil, nil, err
	}
	if target, err = r.recomputeAggregates(ctx, tx, target, actorID, at); err != nil {
		return nil, nil, err
	}
	if err := r.Commit(ctx, tx); err != nil {
		return nil, nil, err
	}
	return source, target, nil
}

// lockFolioAnyVersion locks a folio row without an optimistic version check; used
// for the passive side of transfers.
func (r *PgxFolioRepository) lockFolioAnyVersion(ctx context.Context, tx pgx.Tx, folioID string) (*domain.Folio, error) {
	m, err := scanFolio(tx.QueryRow(ctx, `SELECT `+folioColumns+` FROM folios WHERE folio_id = $1 FOR UPDATE`, folioID))
	if err != nil {
		return nil, err
	}
	folio := mapping.ToDomainFolio(*m)
	return &folio, nil
}

// SplitFolio creates the new folio and re-parents the selected non-voided items
// onto it in one transaction. If any selected item is missing or voided the whole
// split fails.
func (r *PgxFolioRepository) SplitFolio(ctx context.Context, sourceFolioID string, sourceVersion int64, newFolio domain.Folio, itemIDs []string, actorID string, at time.Time) (*domain.Folio, *domain.Folio, error) {
	tx, err := r.Begin(ctx)
	if err != nil {
		return nil, nil, err
	}
	defer r.Rollback(ctx, tx)

	source, err := r.lockFolio(ctx, tx, sourceFolioID, sourceVersion)
	if err != nil {
		return nil, nil, err
	}
	if err := insertFolio(ctx, tx, newFolio); err != nil {
		return nil, nil, err
	}

	tag, err := tx.Exec(ctx, `
		UPDATE folio_items
		SET folio_id = $3, last_updated_at = $4, last_updated_by = $5
		WHERE item_id = ANY($1) AND folio_id = $2 AND voided = FALSE`,
		itemIDs, sourceFolioID, newFolio.FolioID, at, actorID,
	)
	if err != nil {
		return nil, nil, apperrors.NewAppError(500, "failed to re-parent folio items", err)
	}
	if int(tag.RowsAffected()) != len(itemIDs) {
		return nil, nil, fmt.Errorf("%w: %d of %d selected items could not be moved (missing or voided)",
			apperrors.ErrValidation, len(itemIDs)-int(tag.RowsAffected()), len(itemIDs))
	}

	if source, err = r.recomputeAggregates(ctx, tx, source, actorID, at); err != nil {
		return nil, nil, err
	}
	created, err := r.recomputeAggregates(ctx, tx, &newFolio, actorID, at)
	if err != nil {
		return nil, nil, err
	}
	if err := r.Commit(ctx, tx); err != nil {
		return nil, nil, err
	}
	return source, created, nil
}

// UpdateFolioStatus transitions the folio between OPEN and CLOSED. The zero
// balance precondition for closing is re-verified under the row lock so two
// concurrent closes (or a close racing a charge) cannot slip through.
func (r *PgxFolioRepository) UpdateFolioStatus(ctx context.Context, folioID string, expectedVersion int64, status domain.FolioStatus, actorID string, at time.Time) (*domain.Folio, error) {
	tx, err := r.Begin(ctx)
	if err != nil {
		return nil, err
	}
	defer r.Rollback(ctx, tx)

	folio, err := r.lockFolio(ctx, tx, folioID, expectedVersion)
	if err != nil {
		return nil, err
	}

	var closedAt *time.Time
	var closedBy *string
	if status == domain.FolioClosed {
		if !folio.Balance.IsZero() {
			return nil, fmt.Errorf("%w: balance is %s", apperrors.ErrBalanceNotZero, folio.Balance.StringFixed(2))
		}
		closedAt, closedBy = &at, &actorID
	}

	folio.Status = status
	folio.ClosedAt = closedAt
	folio.ClosedBy = closedBy
	folio.Version++
	folio.LastUpdatedAt = at
	folio.LastUpdatedBy = actorID

	_, err = tx.Exec(ctx, `
		UPDATE folios
		SET status = $2, closed_at = $3, closed_by = $4, version = $5,
		    last_updated_at = $6, last_updated_by = $7
		WHERE folio_id = $1`,
		folioID, string(status), closedAt, closedBy, folio.Version, at, actorID,
	)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to update folio status", err)
	}
	if err := r.Commit(ctx, tx); err != nil {
		return nil, err
	}
	return folio, nil
}
