package mapping

import (
	"github.com/stayfolio/hotel_pms_app/internal/core/domain"
	"github.com/stayfolio/hotel_pms_app/internal/models"
)

// ToModelFolio converts a domain Folio to a model Folio
func ToModelFolio(d domain.Folio) models.Folio {
	return models.Folio{
		FolioID:       d.FolioID,
		FolioNumber:   d.FolioNumber,
		PropertyID:    d.PropertyID,
		GuestID:       d.GuestID,
		ReservationID: d.ReservationID,
		Status:        models.FolioStatus(d.Status),
		Subtotal:      d.Subtotal,
		TaxAmount:     d.TaxAmount,
		ServiceCharge: d.ServiceCharge,
		TotalAmount:   d.TotalAmount,
		PaidAmount:    d.PaidAmount,
		Balance:       d.Balance,
		ClosedAt:      d.ClosedAt,
		ClosedBy:      d.ClosedBy,
		Version:       d.Version,
		AuditFields:   ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainFolio converts a model Folio to a domain Folio
func ToDomainFolio(m models.Folio) domain.Folio {
	return domain.Folio{
		FolioID:       m.FolioID,
		FolioNumber:   m.FolioNumber,
		PropertyID:    m.PropertyID,
		GuestID:       m.GuestID,
		ReservationID: m.ReservationID,
		Status:        domain.FolioStatus(m.Status),
		Subtotal:      m.Subtotal,
		TaxAmount:     m.TaxAmount,
		ServiceCharge: m.ServiceCharge,
		TotalAmount:   m.TotalAmount,
		PaidAmount:    m.PaidAmount,
		Balance:       m.Balance,
		ClosedAt:      m.ClosedAt,
		ClosedBy:      m.ClosedBy,
		Version:       m.Version,
		AuditFields:   ToDomainAuditFields(m.AuditFields),
	}
}

// ToModelFolioItem converts a domain FolioItem to a model FolioItem
func ToModelFolioItem(d domain.FolioItem) models.FolioItem {
	return models.FolioItem{
		ItemID:       d.ItemID,
		FolioID:      d.FolioID,
		ItemType:     string(d.ItemType),
		Description:  d.Description,
		Quantity:     d.Quantity,
		UnitPrice:    d.UnitPrice,
		TotalPrice:   d.TotalPrice,
		TaxAmount:    d.TaxAmount,
		TaxBreakdown: d.TaxBreakdown,
		ServiceDate:  d.ServiceDate,
		Voided:       d.Voided,
		VoidReason:   d.VoidReason,
		VoidedBy:     d.VoidedBy,
		VoidedAt:     d.VoidedAt,
		IsPosted:     d.IsPosted,
		AuditFields:  ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainFolioItem converts a model FolioItem to a domain FolioItem
func ToDomainFolioItem(m models.FolioItem) domain.FolioItem {
	return domain.FolioItem{
		ItemID:       m.ItemID,
		FolioID:      m.FolioID,
		ItemType:     domain.ItemType(m.ItemType),
		Description:  m.Description,
		Quantity:     m.Quantity,
		UnitPrice:    m.UnitPrice,
		TotalPrice:   m.TotalPrice,
		TaxAmount:    m.TaxAmount,
		TaxBreakdown: m.TaxBreakdown,
		ServiceDate:  m.ServiceDate,
		Voided:       m.Voided,
		VoidReason:   m.VoidReason,
		VoidedBy:     m.VoidedBy,
		VoidedAt:     m.VoidedAt,
		IsPosted:     m.IsPosted,
		AuditFields:  ToDomainAuditFields(m.AuditFields),
	}
}

// ToModelPayment converts a domain Payment to a model Payment
func ToModelPayment(d domain.Payment) models.Payment {
	return models.Payment{
		PaymentID:          d.PaymentID,
		FolioID:            d.FolioID,
		Amount:             d.Amount,
		Method:             string(d.Method),
		ReferenceNumber:    d.ReferenceNumber,
		CorporateAccountID: d.CorporateAccountID,
		Notes:              d.Notes,
		Voided:             d.Voided,
		VoidReason:         d.VoidReason,
		VoidedBy:           d.VoidedBy,
		VoidedAt:           d.VoidedAt,
		AuditFields:        ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainPayment converts a model Payment to a domain Payment
func ToDomainPayment(m models.Payment) domain.Payment {
	return domain.Payment{
		PaymentID:          m.PaymentID,
		FolioID:            m.FolioID,
		Amount:             m.Amount,
		Method:             domain.PaymentMethod(m.Method),
		ReferenceNumber:    m.ReferenceNumber,
		CorporateAccountID: m.CorporateAccountID,
		Notes:              m.Notes,
		Voided:             m.Voided,
		VoidReason:         m.VoidReason,
		VoidedBy:           m.VoidedBy,
		VoidedAt:           m.VoidedAt,
		AuditFields:        ToDomainAuditFields(m.AuditFields),
	}
}

// ToDomainCorporateAccount converts a model CorporateAccount to its domain form
func ToDomainCorporateAccount(m models.CorporateAccount) domain.CorporateAccount {
	return domain.CorporateAccount{
		CorporateAccountID: m.CorporateAccountID,
		PropertyID:         m.PropertyID,
		Name:               m.Name,
		CreditLimit:        m.CreditLimit,
		CurrentBalance:     m.CurrentBalance,
		IsActive:           m.IsActive,
		AuditFields:        ToDomainAuditFields(m.AuditFields),
	}
}
