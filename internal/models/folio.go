package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// FolioStatus indicates the lifecycle state of a folio row.
type FolioStatus string

const (
	FolioOpen   FolioStatus = "OPEN"
	FolioClosed FolioStatus = "CLOSED"
)

// Folio mirrors a row of the folios table.
type Folio struct {
	FolioID       string          `json:"folioID"`
	FolioNumber   string          `json:"folioNumber"`
	PropertyID    string          `json:"propertyID"`
	GuestID       string          `json:"guestID"`
	ReservationID *string         `json:"reservationID"`
	Status        FolioStatus     `json:"status"`
	Subtotal      decimal.Decimal `json:"subtotal"`
	TaxAmount     decimal.Decimal `json:"taxAmount"`
	ServiceCharge decimal.Decimal `json:"serviceCharge"`
	TotalAmount   decimal.Decimal `json:"totalAmount"`
	PaidAmount    decimal.Decimal `json:"paidAmount"`
	Balance       decimal.Decimal `json:"balance"`
	ClosedAt      *time.Time      `json:"closedAt"`
	ClosedBy      *string         `json:"closedBy"`
	Version       int64           `json:"version"`
	AuditFields
}

// FolioItem mirrors a row of the folio_items table. The tax breakdown is stored
// as a JSONB column of tax code -> amount.
type FolioItem struct {
	ItemID       string                     `json:"itemID"`
	FolioID      string                     `json:"folioID"`
	ItemType     string                     `json:"itemType"`
	Description  string                     `json:"description"`
	Quantity     decimal.Decimal            `json:"quantity"`
	UnitPrice    decimal.Decimal            `json:"unitPrice"`
	TotalPrice   decimal.Decimal            `json:"totalPrice"`
	TaxAmount    decimal.Decimal            `json:"taxAmount"`
	TaxBreakdown map[string]decimal.Decimal `json:"taxBreakdown"`
	ServiceDate  time.Time                  `json:"serviceDate"`
	Voided       bool                       `json:"voided"`
	VoidReason   *string                    `json:"voidReason"`
	VoidedBy     *string                    `json:"voidedBy"`
	VoidedAt     *time.Time                 `json:"voidedAt"`
	IsPosted     bool                       `json:"isPosted"`
	AuditFields
}

// Payment mirrors a row of the payments table.
type Payment struct {
	PaymentID          string          `json:"paymentID"`
	FolioID            string          `json:"folioID"`
	Amount             decimal.Decimal `json:"amount"`
	Method             string          `json:"method"`
	ReferenceNumber    string          `json:"referenceNumber"`
	CorporateAccountID *string         `json:"corporateAccountID"`
	Notes              string          `json:"notes"`
	Voided             bool            `json:"voided"`
	VoidReason         *string         `json:"voidReason"`
	VoidedBy           *string         `json:"voidedBy"`
	VoidedAt           *time.Time      `json:"voidedAt"`
	AuditFields
}

// CorporateAccount mirrors a row of the corporate_accounts table.
type CorporateAccount struct {
	CorporateAccountID string          `json:"corporateAccountID"`
	PropertyID         string          `json:"propertyID"`
	Name               string          `json:"name"`
	CreditLimit        decimal.Decimal `json:"creditLimit"`
	CurrentBalance     decimal.Decimal `json:"currentBalance"`
	IsActive           bool            `json:"isActive"`
	AuditFields
}
