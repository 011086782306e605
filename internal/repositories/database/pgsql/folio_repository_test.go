package pgsql

import (
	"context"
	"testing"
	"time"

	pgxmock "github.com/pashagolub/pgxmock/v4"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/stayfolio/hotel_pms_app/internal/models"
)

// anyArgs builds n wildcard matchers; pgxmock treats an expectation without
// WithArgs as expecting zero arguments, so "don't care" must be spelled out.
func anyArgs(n int) []interface{} {
	args := make([]interface{}, n)
	for i := range args {
		args[i] = pgxmock.AnyArg()
	}
	return args
}

var folioRowColumns = []string{
	"folio_id", "folio_number", "property_id", "guest_id", "reservation_id", "status",
	"subtotal", "tax_amount", "service_charge", "total_amount", "paid_amount", "balance",
	"closed_at", "closed_by", "version",
	"created_at", "created_by", "last_updated_at", "last_updated_by",
}

var itemRowColumns = []string{
	"item_id", "folio_id", "item_type", "description", "quantity", "unit_price", "total_price",
	"tax_amount", "tax_breakdown", "service_date", "voided", "void_reason", "voided_by", "voided_at",
	"is_posted", "created_at", "created_by", "last_updated_at", "last_updated_by",
}

var paymentRowColumns = []string{
	"payment_id", "folio_id", "amount", "method", "reference_number",
	"corporate_account_id", "notes", "voided", "void_reason", "voided_by", "voided_at",
	"created_at", "created_by", "last_updated_at", "last_updated_by",
}

// overpaidFolioRow is a locked folio row carrying one payment's worth of paid
// amount, so a successful void should bring paid and balance back to zero.
func overpaidFolioRow(at time.Time, paid decimal.Decimal) *pgxmock.Rows {
	return pgxmock.NewRows(folioRowColumns).AddRow(
		"folio-1", "F-20260830-AB12CD", "prop-1", "guest-1", (*string)(nil), models.FolioOpen,
		decimal.Zero, decimal.Zero, decimal.Zero, decimal.Zero, paid, paid.Neg(),
		(*time.Time)(nil), (*string)(nil), int64(1),
		at, "clerk-1", at, "clerk-1",
	)
}

func TestVoidPayment_ReversesCorporateAccrual(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := &PgxFolioRepository{BaseRepository: BaseRepository{Pool: mock}}
	at := time.Date(2026, 8, 30, 12, 0, 0, 0, time.UTC)
	corpID := "corp-1"
	voidedBy := "clerk-2"
	reason := "duplicate charge"
	amount := decimal.NewFromInt(500)

	mock.ExpectBegin()
	mock.ExpectQuery(`FROM folios WHERE folio_id = \$1 FOR UPDATE`).
		WithArgs("folio-1").
		WillReturnRows(overpaidFolioRow(at, amount))
	mock.ExpectQuery(`UPDATE payments`).
		WithArgs("pay-1", "folio-1", reason, "clerk-2", at).
		WillReturnRows(pgxmock.NewRows([]string{"corporate_account_id", "amount"}).AddRow(&corpID, amount))
	// The accrual AddPayment made on the corporate account must be undone.
	mock.ExpectExec(`UPDATE corporate_accounts`).
		WithArgs("corp-1", amount, at, "clerk-2").
		WillReturnResult(pgxmock.NewResult("UPDATE", 1))
	mock.ExpectQuery(`FROM folio_items WHERE folio_id`).
		WithArgs("folio-1").
		WillReturnRows(pgxmock.NewRows(itemRowColumns))
	mock.ExpectQuery(`FROM payments WHERE folio_id`).
		WithArgs("folio-1").
		WillReturnRows(pgxmock.NewRows(paymentRowColumns).AddRow(
			"pay-1", "folio-1", amount, "corporate", "", &corpID, "", true, &reason, &voidedBy, &at,
			at, "clerk-1", at, "clerk-2",
		))
	mock.ExpectExec(`UPDATE folios`).
		WithArgs(anyArgs(9)...).
		WillReturnResult(pgxmock.NewResult("UPDATE", 1))
	mock.ExpectCommit()
	mock.ExpectRollback()

	folio, err := repo.VoidPayment(context.Background(), "folio-1", 1, "pay-1", reason, "clerk-2", at)
	require.NoError(t, err)
	assert.True(t, folio.PaidAmount.IsZero(), "paid amount should drop to zero, got %s", folio.PaidAmount)
	assert.True(t, folio.Balance.IsZero(), "balance should return to zero, got %s", folio.Balance)
	assert.Equal(t, int64(2), folio.Version)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestVoidPayment_CashPaymentTouchesNoCorporateAccount(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := &PgxFolioRepository{BaseRepository: BaseRepository{Pool: mock}}
	at := time.Date(2026, 8, 30, 12, 0, 0, 0, time.UTC)
	amount := decimal.NewFromInt(120)

	mock.ExpectBegin()
	mock.ExpectQuery(`FROM folios WHERE folio_id = \$1 FOR UPDATE`).
		WithArgs("folio-1").
		WillReturnRows(overpaidFolioRow(at, amount))
	mock.ExpectQuery(`UPDATE payments`).
		WithArgs("pay-2", "folio-1", "keyed in twice", "clerk-2", at).
		WillReturnRows(pgxmock.NewRows([]string{"corporate_account_id", "amount"}).AddRow((*string)(nil), amount))
	// No corporate account touched: the next statements are the aggregate refresh.
	mock.ExpectQuery(`FROM folio_items WHERE folio_id`).
		WithArgs("folio-1").
		WillReturnRows(pgxmock.NewRows(itemRowColumns))
	mock.ExpectQuery(`FROM payments WHERE folio_id`).
		WithArgs("folio-1").
		WillReturnRows(pgxmock.NewRows(paymentRowColumns))
	mock.ExpectExec(`UPDATE folios`).
		WithArgs(anyArgs(9)...).
		WillReturnResult(pgxmock.NewResult("UPDATE", 1))
	mock.ExpectCommit()
	mock.ExpectRollback()

	folio, err := repo.VoidPayment(context.Background(), "folio-1", 1, "pay-2", "keyed in twice", "clerk-2", at)
	require.NoError(t, err)
	assert.True(t, folio.Balance.IsZero(), "balance should return to zero, got %s", folio.Balance)
	assert.NoError(t, mock.ExpectationsWereMet())
}
