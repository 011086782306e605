package billing

import (
	"github.com/shopspring/decimal"

	"github.com/stayfolio/hotel_pms_app/internal/core/domain"
)

// Round2 rounds a monetary amount to 2 decimal places. Every tax and rate
// computation step rounds through this so that stored and displayed figures agree.
func Round2(d decimal.Decimal) decimal.Decimal {
	return d.Round(2)
}

// FolioTotals is the recomputed aggregate state of a folio.
type FolioTotals struct {
	Subtotal    decimal.Decimal
	TaxAmount   decimal.Decimal
	TotalAmount decimal.Decimal
	PaidAmount  decimal.Decimal
	Balance     decimal.Decimal
}

// ComputeFolioTotals recomputes a folio's aggregates from its items and payments.
// Voided items and payments are excluded; the balance may go negative when a void
// drops the total below the amount already paid.
func ComputeFolioTotals(items []domain.FolioItem, payments []domain.Payment, serviceCharge decimal.Decimal) FolioTotals {
	subtotal := decimal.Zero
	tax := decimal.Zero
	for _, item := range items {
		if item.Voided {
			continue
		}
		subtotal = subtotal.Add(item.TotalPrice)
		tax = tax.Add(item.TaxAmount)
	}

	paid := decimal.Zero
	for _, p := range payments {
		if p.Voided {
			continue
		}
		paid = paid.Add(p.Amount)
	}

	total := subtotal.Add(tax).Add(serviceCharge)
	return FolioTotals{
		Subtotal:    Round2(subtotal),
		TaxAmount:   Round2(tax),
		TotalAmount: Round2(total),
		PaidAmount:  Round2(paid),
		Balance:     Round2(total.Sub(paid)),
	}
}

// ApplyTotals writes recomputed aggregates onto a folio.
func ApplyTotals(folio *domain.Folio, totals FolioTotals) {
	folio.Subtotal = totals.Subtotal
	folio.TaxAmount = totals.TaxAmount
	folio.TotalAmount = totals.TotalAmount
	folio.PaidAmount = totals.PaidAmount
	folio.Balance = totals.Balance
}

// LineTotal computes quantity times unit price, rounded to 2 decimals.
func LineTotal(quantity, unitPrice decimal.Decimal) decimal.Decimal {
	return Round2(quantity.Mul(unitPrice))
}
