package services

import (
	"context"

	"github.com/stayfolio/hotel_pms_app/internal/core/domain"
	"github.com/stayfolio/hotel_pms_app/internal/dto"
)

// FolioSvcFacade is the workflow layer for folio billing: it validates user input,
// consults the tax and rate resolvers, and issues one ledger mutation per action.
// Every call is scoped by an explicit TenantContext.
type FolioSvcFacade interface {
	// CreateFolio opens a new folio for a guest.
	CreateFolio(ctx context.Context, tc domain.TenantContext, req dto.CreateFolioRequest) (*domain.Folio, error)

	// CheckIn opens a folio and posts the stay's nightly room charges atomically,
	// pricing each night from the materialized daily rates (base rate fallback).
	CheckIn(ctx context.Context, tc domain.TenantContext, req dto.CheckInRequest) (*domain.Folio, error)

	// GetFolio retrieves a folio with its items and payments.
	GetFolio(ctx context.Context, tc domain.TenantContext, folioID string) (*domain.Folio, error)

	// ListFolios retrieves a paginated folio listing for the tenant's property.
	ListFolios(ctx context.Context, tc domain.TenantContext, params dto.ListFoliosParams) (*dto.ListFoliosResponse, error)

	// AddCharge posts a charge line, computing taxes for the charge.
	AddCharge(ctx context.Context, tc domain.TenantContext, folioID string, req dto.AddChargeRequest) (*domain.Folio, error)

	// AddAdjustment posts a discount or manual debit with a mandatory reason.
	AddAdjustment(ctx context.Context, tc domain.TenantContext, folioID string, req dto.AddAdjustmentRequest) (*domain.Folio, error)

	// RecordPayment records a payment, returning an advisory credit warning when a
	// corporate account is pushed over its limit.
	RecordPayment(ctx context.Context, tc domain.TenantContext, folioID string, req dto.RecordPaymentRequest) (*domain.Folio, *string, error)

	// VoidItem soft-voids a charge line.
	VoidItem(ctx context.Context, tc domain.TenantContext, folioID, itemID string, req dto.VoidRequest) (*domain.Folio, error)

	// VoidPayment soft-voids a payment, raising the balance by its amount.
	VoidPayment(ctx context.Context, tc domain.TenantContext, folioID, paymentID string, req dto.VoidRequest) (*domain.Folio, error)

	// TransferItem moves a non-voided item to a different open folio.
	TransferItem(ctx context.Context, tc domain.TenantContext, folioID, itemID string, req dto.TransferItemRequest) (source, target *domain.Folio, err error)

	// SplitFolio re-parents the selected items onto a newly created folio.
	SplitFolio(ctx context.Context, tc domain.TenantContext, folioID string, req dto.SplitFolioRequest) (source, created *domain.Folio, err error)

	// CloseFolio transitions the folio to CLOSED; fails unless the balance is zero.
	// Returns the folio header without items or payments.
	CloseFolio(ctx context.Context, tc domain.TenantContext, folioID string, version int64) (*domain.Folio, error)

	// ReopenFolio transitions a closed folio back to OPEN unconditionally.
	// Returns the folio header without items or payments.
	ReopenFolio(ctx context.Context, tc domain.TenantContext, folioID string, version int64) (*domain.Folio, error)
}
