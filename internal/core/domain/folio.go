package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// FolioStatus indicates the lifecycle state of a folio.
type FolioStatus string

const (
	FolioOpen   FolioStatus = "OPEN"
	FolioClosed FolioStatus = "CLOSED"
)

// Folio represents one guest's running account for a stay (or a split sub-account).
// Balance is always TotalAmount minus PaidAmount; a folio may only be closed when
// the balance is zero, and can always be reopened.
type Folio struct {
	FolioID       string          `json:"folioID"`       // Primary Key (UUID)
	FolioNumber   string          `json:"folioNumber"`   // Display identifier, unique per property
	PropertyID    string          `json:"propertyID"`    // FK -> properties.property_id (Not Null)
	GuestID       string          `json:"guestID"`       // FK -> guests.guest_id (Not Null)
	ReservationID *string         `json:"reservationID"` // Nullable FK -> reservations.reservation_id
	Status        FolioStatus     `json:"status"`
	Subtotal      decimal.Decimal `json:"subtotal"`      // Sum of non-voided item totals
	TaxAmount     decimal.Decimal `json:"taxAmount"`     // Sum of non-voided item tax amounts
	ServiceCharge decimal.Decimal `json:"serviceCharge"` // Flat service charge on the folio
	TotalAmount   decimal.Decimal `json:"totalAmount"`   // Subtotal + TaxAmount + ServiceCharge
	PaidAmount    decimal.Decimal `json:"paidAmount"`    // Sum of non-voided payments
	Balance       decimal.Decimal `json:"balance"`       // TotalAmount - PaidAmount
	ClosedAt      *time.Time      `json:"closedAt"`
	ClosedBy      *string         `json:"closedBy"`
	Version       int64           `json:"version"` // Optimistic concurrency token
	AuditFields

	// Loaded on demand; not populated by list queries.
	Items    []FolioItem `json:"items,omitempty"`
	Payments []Payment   `json:"payments,omitempty"`
}

// ItemType enumerates the kinds of charges a folio line item can carry.
type ItemType string

const (
	ItemRoomCharge    ItemType = "room_charge"
	ItemFoodBeverage  ItemType = "food_beverage"
	ItemLaundry       ItemType = "laundry"
	ItemMinibar       ItemType = "minibar"
	ItemSpa           ItemType = "spa"
	ItemParking       ItemType = "parking"
	ItemTelephone     ItemType = "telephone"
	ItemInternet      ItemType = "internet"
	ItemMiscellaneous ItemType = "miscellaneous"
	ItemTax           ItemType = "tax"
	ItemServiceCharge ItemType = "service_charge"
	ItemDiscount      ItemType = "discount"
	ItemDeposit       ItemType = "deposit"
)

// ValidItemType reports whether t is one of the known item types.
func ValidItemType(t ItemType) bool {
	switch t {
	case ItemRoomCharge, ItemFoodBeverage, ItemLaundry, ItemMinibar, ItemSpa,
		ItemParking, ItemTelephone, ItemInternet, ItemMiscellaneous, ItemTax,
		ItemServiceCharge, ItemDiscount, ItemDeposit:
		return true
	}
	return false
}

// ChargeType returns the tax applicability class for this item type.
func (t ItemType) ChargeType() ChargeType {
	switch t {
	case ItemRoomCharge:
		return ChargeRoom
	case ItemFoodBeverage, ItemMinibar:
		return ChargeFood
	case ItemServiceCharge, ItemLaundry, ItemSpa:
		return ChargeService
	default:
		return ChargeOther
	}
}

// FolioItem is a single charge line on a folio. Items are never edited in place or
// deleted; corrections are made by voiding, which preserves the audit trail.
type FolioItem struct {
	ItemID       string                     `json:"itemID"`  // Primary Key (UUID)
	FolioID      string                     `json:"folioID"` // FK -> folios.folio_id (Not Null)
	ItemType     ItemType                   `json:"itemType"`
	Description  string                     `json:"description"`
	Quantity     decimal.Decimal            `json:"quantity"`
	UnitPrice    decimal.Decimal            `json:"unitPrice"`
	TotalPrice   decimal.Decimal            `json:"totalPrice"` // Quantity * UnitPrice; negative for discounts
	TaxAmount    decimal.Decimal            `json:"taxAmount"`
	TaxBreakdown map[string]decimal.Decimal `json:"taxBreakdown"` // Tax code -> amount
	ServiceDate  time.Time                  `json:"serviceDate"`
	Voided       bool                       `json:"voided"`
	VoidReason   *string                    `json:"voidReason"`
	VoidedBy     *string                    `json:"voidedBy"`
	VoidedAt     *time.Time                 `json:"voidedAt"`
	IsPosted     bool                       `json:"isPosted"`
	AuditFields
}
