package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// PaymentMethod enumerates the accepted settlement methods.
type PaymentMethod string

const (
	PayCash         PaymentMethod = "cash"
	PayCreditCard   PaymentMethod = "credit_card"
	PayDebitCard    PaymentMethod = "debit_card"
	PayBankTransfer PaymentMethod = "bank_transfer"
	PayOther        PaymentMethod = "other"
)

// ValidPaymentMethod reports whether m is one of the known payment methods.
func ValidPaymentMethod(m PaymentMethod) bool {
	switch m {
	case PayCash, PayCreditCard, PayDebitCard, PayBankTransfer, PayOther:
		return true
	}
	return false
}

// Payment is a receipt against a folio. Payments are voided, never deleted;
// voiding raises the folio balance by the voided amount.
type Payment struct {
	PaymentID          string          `json:"paymentID"` // Primary Key (UUID)
	FolioID            string          `json:"folioID"`   // FK -> folios.folio_id (Not Null)
	Amount             decimal.Decimal `json:"amount"`    // Always positive
	Method             PaymentMethod   `json:"method"`
	ReferenceNumber    string          `json:"referenceNumber"`    // Nullable; card auth code, transfer ref, etc.
	CorporateAccountID *string         `json:"corporateAccountID"` // Nullable FK -> corporate_accounts
	Notes              string          `json:"notes"`
	Voided             bool            `json:"voided"`
	VoidReason         *string         `json:"voidReason"`
	VoidedBy           *string         `json:"voidedBy"`
	VoidedAt           *time.Time      `json:"voidedAt"`
	AuditFields
}

// CorporateAccount is a billing entity guests can be linked to for centralized
// invoicing. The credit limit is advisory; over-limit payments are flagged, not blocked.
type CorporateAccount struct {
	CorporateAccountID string          `json:"corporateAccountID"` // Primary Key (UUID)
	PropertyID         string          `json:"propertyID"`
	Name               string          `json:"name"`
	CreditLimit        decimal.Decimal `json:"creditLimit"`
	CurrentBalance     decimal.Decimal `json:"currentBalance"`
	IsActive           bool            `json:"isActive"`
	AuditFields
}
