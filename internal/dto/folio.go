package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/stayfolio/hotel_pms_app/internal/core/domain"
)

// CreateFolioRequest defines the payload for opening a new folio.
type CreateFolioRequest struct {
	GuestID       string           `json:"guestID" binding:"required"`
	ReservationID *string          `json:"reservationID"`
	ServiceCharge *decimal.Decimal `json:"serviceCharge"`
}

// CheckInRequest defines the payload for the check-in workflow: one folio plus the
// stay's nightly room charges, created atomically.
type CheckInRequest struct {
	GuestID       string    `json:"guestID" binding:"required"`
	ReservationID *string   `json:"reservationID"`
	RoomTypeID    string    `json:"roomTypeID" binding:"required"`
	CheckInDate   time.Time `json:"checkInDate" binding:"required"`
	CheckOutDate  time.Time `json:"checkOutDate" binding:"required,gtfield=CheckInDate"`
}

// AddChargeRequest defines the payload for posting a charge to a folio.
type AddChargeRequest struct {
	ItemType           string          `json:"itemType" binding:"required,itemtype"`
	Description        string          `json:"description" binding:"required"`
	Quantity           decimal.Decimal `json:"quantity" binding:"required"`
	UnitPrice          decimal.Decimal `json:"unitPrice" binding:"required"`
	ServiceDate        *time.Time      `json:"serviceDate"`
	CorporateAccountID *string         `json:"corporateAccountID"` // For tax exemption lookup
	Version            int64           `json:"version"`
}

// AddAdjustmentRequest defines the payload for a discount or manual debit.
// Amount is always positive; Discount controls the sign of the resulting line.
type AddAdjustmentRequest struct {
	Amount      decimal.Decimal `json:"amount" binding:"required"`
	Discount    bool            `json:"discount"`
	Reason      string          `json:"reason" binding:"required"`
	Description string          `json:"description"`
	Version     int64           `json:"version"`
}

// RecordPaymentRequest defines the payload for recording a payment.
type RecordPaymentRequest struct {
	Amount             decimal.Decimal `json:"amount" binding:"required"`
	Method             string          `json:"method" binding:"required,paymentmethod"`
	ReferenceNumber    string          `json:"referenceNumber"`
	CorporateAccountID *string         `json:"corporateAccountID"`
	Notes              string          `json:"notes"`
	Version            int64           `json:"version"`
}

// VoidRequest defines the payload for voiding an item or payment.
type VoidRequest struct {
	Reason  string `json:"reason" binding:"required"`
	Version int64  `json:"version"`
}

// TransferItemRequest defines the payload for moving an item to another folio.
type TransferItemRequest struct {
	TargetFolioID string `json:"targetFolioID" binding:"required"`
	Version       int64  `json:"version"`
}

// SplitFolioRequest defines the payload for splitting items off onto a new folio.
type SplitFolioRequest struct {
	ItemIDs []string `json:"itemIDs" binding:"required"`
	Version int64    `json:"version"`
}

// CloseFolioRequest carries the optimistic version for a close or reopen.
type CloseFolioRequest struct {
	Version int64 `json:"version"`
}

// ListFoliosParams holds query parameters for listing folios.
type ListFoliosParams struct {
	Status    *string `form:"status" binding:"omitempty,oneof=OPEN CLOSED"`
	Limit     int     `form:"limit,default=25" binding:"omitempty,min=1,max=100"`
	NextToken *string `form:"nextToken"`
}

// FolioItemResponse defines the data returned for a folio line item.
type FolioItemResponse struct {
	ItemID       string                     `json:"itemID"`
	ItemType     string                     `json:"itemType"`
	Description  string                     `json:"description"`
	Quantity     decimal.Decimal            `json:"quantity"`
	UnitPrice    decimal.Decimal            `json:"unitPrice"`
	TotalPrice   decimal.Decimal            `json:"totalPrice"`
	TaxAmount    decimal.Decimal            `json:"taxAmount"`
	TaxBreakdown map[string]decimal.Decimal `json:"taxBreakdown,omitempty"`
	ServiceDate  time.Time                  `json:"serviceDate"`
	Voided       bool                       `json:"voided"`
	VoidReason   *string                    `json:"voidReason,omitempty"`
}

// PaymentResponse defines the data returned for a payment.
type PaymentResponse struct {
	PaymentID       string          `json:"paymentID"`
	Amount          decimal.Decimal `json:"amount"`
	Method          string          `json:"method"`
	ReferenceNumber string          `json:"referenceNumber,omitempty"`
	Notes           string          `json:"notes,omitempty"`
	Voided          bool            `json:"voided"`
	VoidReason      *string         `json:"voidReason,omitempty"`
}

// FolioResponse defines the data returned for a folio.
type FolioResponse struct {
	FolioID       string              `json:"folioID"`
	FolioNumber   string              `json:"folioNumber"`
	PropertyID    string              `json:"propertyID"`
	GuestID       string              `json:"guestID"`
	ReservationID *string             `json:"reservationID,omitempty"`
	Status        string              `json:"status"`
	Subtotal      decimal.Decimal     `json:"subtotal"`
	TaxAmount     decimal.Decimal     `json:"taxAmount"`
	ServiceCharge decimal.Decimal     `json:"serviceCharge"`
	TotalAmount   decimal.Decimal     `json:"totalAmount"`
	PaidAmount    decimal.Decimal     `json:"paidAmount"`
	Balance       decimal.Decimal     `json:"balance"`
	Version       int64               `json:"version"`
	ClosedAt      *time.Time          `json:"closedAt,omitempty"`
	Items         []FolioItemResponse `json:"items,omitempty"`
	Payments      []PaymentResponse   `json:"payments,omitempty"`
}

// RecordPaymentResponse wraps the refreshed folio plus an advisory credit warning
// when a corporate payment pushes the account past its limit.
type RecordPaymentResponse struct {
	Folio         FolioResponse `json:"folio"`
	CreditWarning *string       `json:"creditWarning,omitempty"`
}

// TransferItemResponse returns both folios touched by a transfer.
type TransferItemResponse struct {
	Source FolioResponse `json:"source"`
	Target FolioResponse `json:"target"`
}

// SplitFolioResponse returns the source folio and the newly created one.
type SplitFolioResponse struct {
	Source  FolioResponse `json:"source"`
	Created FolioResponse `json:"created"`
}

// ListFoliosResponse defines the paginated folio listing payload.
type ListFoliosResponse struct {
	Folios    []FolioResponse `json:"folios"`
	NextToken *string         `json:"nextToken,omitempty"`
}

// ToFolioItemResponse converts a domain.FolioItem to its response DTO.
func ToFolioItemResponse(item *domain.FolioItem) FolioItemResponse {
	return FolioItemResponse{
		ItemID:       item.ItemID,
		ItemType:     string(item.ItemType),
		Description:  item.Description,
		Quantity:     item.Quantity,
		UnitPrice:    item.UnitPrice,
		TotalPrice:   item.TotalPrice,
		TaxAmount:    item.TaxAmount,
		TaxBreakdown: item.TaxBreakdown,
		ServiceDate:  item.ServiceDate,
		Voided:       item.Voided,
		VoidReason:   item.VoidReason,
	}
}

// ToPaymentResponse converts a domain.Payment to its response DTO.
func ToPaymentResponse(p *domain.Payment) PaymentResponse {
	return PaymentResponse{
		PaymentID:       p.PaymentID,
		Amount:          p.Amount,
		Method:          string(p.Method),
		ReferenceNumber: p.ReferenceNumber,
		Notes:           p.Notes,
		Voided:          p.Voided,
		VoidReason:      p.VoidReason,
	}
}

// ToFolioResponse converts a domain.Folio to its response DTO, including items and
// payments when they are loaded.
func ToFolioResponse(f *domain.Folio) FolioResponse {
	resp := FolioResponse{
		FolioID:       f.FolioID,
		FolioNumber:   f.FolioNumber,
		PropertyID:    f.PropertyID,
		GuestID:       f.GuestID,
		ReservationID: f.ReservationID,
		Status:        string(f.Status),
		Subtotal:      f.Subtotal,
		TaxAmount:     f.TaxAmount,
		ServiceCharge: f.ServiceCharge,
		TotalAmount:   f.TotalAmount,
		PaidAmount:    f.PaidAmount,
		Balance:       f.Balance,
		Version:       f.Version,
		ClosedAt:      f.ClosedAt,
	}
	if len(f.Items) > 0 {
		resp.Items = make([]FolioItemResponse, len(f.Items))
		for i := range f.Items {
			resp.Items[i] = ToFolioItemResponse(&f.Items[i])
		}
	}
	if len(f.Payments) > 0 {
		resp.Payments = make([]PaymentResponse, len(f.Payments))
		for i := range f.Payments {
			resp.Payments[i] = ToPaymentResponse(&f.Payments[i])
		}
	}
	return resp
}
