package billing

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/stayfolio/hotel_pms_app/internal/core/domain"
)

func TestComputeFolioTotals(t *testing.T) {
	tests := []struct {
		name          string
		items         []domain.FolioItem
		payments      []domain.Payment
		serviceCharge decimal.Decimal
		want          FolioTotals
	}{
		{
			name:          "empty folio",
			serviceCharge: decimal.Zero,
			want: FolioTotals{
				Subtotal:    decimal.Zero,
				TaxAmount:   decimal.Zero,
				TotalAmount: decimal.Zero,
				PaidAmount:  decimal.Zero,
				Balance:     decimal.Zero,
			},
		},
		{
			name: "items and payments with voided lines excluded",
			items: []domain.FolioItem{
				{TotalPrice: decimal.NewFromInt(1000), TaxAmount: decimal.NewFromInt(100)},
				{TotalPrice: decimal.NewFromInt(500), TaxAmount: decimal.NewFromInt(50), Voided: true},
				{TotalPrice: decimal.NewFromInt(-200), TaxAmount: decimal.Zero},
			},
			payments: []domain.Payment{
				{Amount: decimal.NewFromInt(300)},
				{Amount: decimal.NewFromInt(100), Voided: true},
			},
			serviceCharge: decimal.NewFromInt(50),
			want: FolioTotals{
				Subtotal:    decimal.NewFromInt(800),
				TaxAmount:   decimal.NewFromInt(100),
				TotalAmount: decimal.NewFromInt(950),
				PaidAmount:  decimal.NewFromInt(300),
				Balance:     decimal.NewFromInt(650),
			},
		},
		{
			name: "voiding the only item drives balance negative",
			items: []domain.FolioItem{
				{TotalPrice: decimal.NewFromInt(1000), TaxAmount: decimal.Zero, Voided: true},
			},
			payments: []domain.Payment{
				{Amount: decimal.NewFromInt(1000)},
			},
			serviceCharge: decimal.Zero,
			want: FolioTotals{
				Subtotal:    decimal.Zero,
				TaxAmount:   decimal.Zero,
				TotalAmount: decimal.Zero,
				PaidAmount:  decimal.NewFromInt(1000),
				Balance:     decimal.NewFromInt(-1000),
			},
		},
		{
			name: "sub-cent amounts round to 2 decimals",
			items: []domain.FolioItem{
				{TotalPrice: decimal.RequireFromString("333.333"), TaxAmount: decimal.RequireFromString("33.3333")},
			},
			serviceCharge: decimal.Zero,
			want: FolioTotals{
				Subtotal:    decimal.RequireFromString("333.33"),
				TaxAmount:   decimal.RequireFromString("33.33"),
				TotalAmount: decimal.RequireFromString("366.67"),
				PaidAmount:  decimal.Zero,
				Balance:     decimal.RequireFromString("366.67"),
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ComputeFolioTotals(tt.items, tt.payments, tt.serviceCharge)
			assert.True(t, tt.want.Subtotal.Equal(got.Subtotal), "subtotal: want %s, got %s", tt.want.Subtotal, got.Subtotal)
			assert.True(t, tt.want.TaxAmount.Equal(got.TaxAmount), "tax: want %s, got %s", tt.want.TaxAmount, got.TaxAmount)
			assert.True(t, tt.want.TotalAmount.Equal(got.TotalAmount), "total: want %s, got %s", tt.want.TotalAmount, got.TotalAmount)
			assert.True(t, tt.want.PaidAmount.Equal(got.PaidAmount), "paid: want %s, got %s", tt.want.PaidAmount, got.PaidAmount)
			assert.True(t, tt.want.Balance.Equal(got.Balance), "balance: want %s, got %s", tt.want.Balance, got.Balance)
		})
	}
}

func TestApplyTotals(t *testing.T) {
	folio := &domain.Folio{}
	ApplyTotals(folio, FolioTotals{
		Subtotal:    decimal.NewFromInt(800),
		TaxAmount:   decimal.NewFromInt(100),
		TotalAmount: decimal.NewFromInt(900),
		PaidAmount:  decimal.NewFromInt(400),
		Balance:     decimal.NewFromInt(500),
	})

	assert.True(t, folio.Subtotal.Equal(decimal.NewFromInt(800)))
	assert.True(t, folio.TaxAmount.Equal(decimal.NewFromInt(100)))
	assert.True(t, folio.TotalAmount.Equal(decimal.NewFromInt(900)))
	assert.True(t, folio.PaidAmount.Equal(decimal.NewFromInt(400)))
	assert.True(t, folio.Balance.Equal(decimal.NewFromInt(500)))
}

func TestLineTotal(t *testing.T) {
	got := LineTotal(decimal.NewFromInt(3), decimal.RequireFromString("19.99"))
	assert.True(t, decimal.RequireFromString("59.97").Equal(got), "got %s", got)

	// Fractional quantities round half up at the line level
	got = LineTotal(decimal.RequireFromString("1.5"), decimal.RequireFromString("0.333"))
	assert.True(t, decimal.RequireFromString("0.50").Equal(got), "got %s", got)
}
