package services

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/stayfolio/hotel_pms_app/internal/apperrors"
	"github.com/stayfolio/hotel_pms_app/internal/core/domain"
	portsrepo "github.com/stayfolio/hotel_pms_app/internal/core/ports/repositories"
	portssvc "github.com/stayfolio/hotel_pms_app/internal/core/ports/services"
	"github.com/stayfolio/hotel_pms_app/internal/dto"
	"github.com/stayfolio/hotel_pms_app/internal/middleware"
	"github.com/stayfolio/hotel_pms_app/internal/utils/billing"
)

var (
	ErrReasonMissing     = fmt.Errorf("%w: a non-empty reason is required", apperrors.ErrValidation)
	ErrAmountNotPositive = fmt.Errorf("%w: amount must be positive", apperrors.ErrValidation)
	ErrNoItemsSelected   = fmt.Errorf("%w: at least one item must be selected", apperrors.ErrValidation)
	ErrSameFolio         = fmt.Errorf("%w: source and target folio must differ", apperrors.ErrValidation)
)

// folioService owns folio billing workflows: it validates input, consults the tax
// and rate resolvers, and issues one repository mutation per user action. The
// repository recomputes aggregates and enforces the optimistic version check.
type folioService struct {
	folioRepo portsrepo.FolioRepositoryWithTx
	taxSvc    portssvc.TaxSvcFacade
	rateSvc   portssvc.RateSvcFacade
}

// NewFolioService creates a new folio service.
func NewFolioService(folioRepo portsrepo.FolioRepositoryWithTx, taxSvc portssvc.TaxSvcFacade, rateSvc portssvc.RateSvcFacade) portssvc.FolioSvcFacade {
	return &folioService{
		folioRepo: folioRepo,
		taxSvc:    taxSvc,
		rateSvc:   rateSvc,
	}
}

var _ portssvc.FolioSvcFacade = (*folioService)(nil)

// newFolioNumber generates a display identifier like F-20260830-1A2B3C.
func newFolioNumber(now time.Time) string {
	suffix := strings.ToUpper(strings.ReplaceAll(uuid.NewString(), "-", ""))[:6]
	return fmt.Sprintf("F-%s-%s", now.Format("20060102"), suffix)
}

// loadScopedFolio fetches a folio and verifies it belongs to the tenant's property.
// Folios of other properties are reported as not found.
func (s *folioService) loadScopedFolio(ctx context.Context, tc domain.TenantContext, folioID string) (*domain.Folio, error) {
	folio, err := s.folioRepo.FindFolioByID(ctx, folioID)
	if err != nil {
		return nil, fmt.Errorf("failed to find folio %s: %w", folioID, err)
	}
	if folio.PropertyID != tc.PropertyID {
		return nil, apperrors.ErrNotFound
	}
	return folio, nil
}

// expectedVersion picks the caller-supplied version when present, otherwise the
// currently loaded one. Callers that pass a version get a hard conflict check.
func expectedVersion(requested int64, folio *domain.Folio) int64 {
	if requested > 0 {
		return requested
	}
	return folio.Version
}

// CreateFolio opens a new folio for a guest.
func (s *folioService) CreateFolio(ctx context.Context, tc domain.TenantContext, req dto.CreateFolioRequest) (*domain.Folio, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	now := time.Now().UTC()
	serviceCharge := decimal.Zero
	if req.ServiceCharge != nil {
		if req.ServiceCharge.IsNegative() {
			return nil, fmt.Errorf("%w: service charge must not be negative", apperrors.ErrValidation)
		}
		serviceCharge = *req.ServiceCharge
	}

	folio := domain.Folio{
		FolioID:       uuid.NewString(),
		FolioNumber:   newFolioNumber(now),
		PropertyID:    tc.PropertyID,
		GuestID:       req.GuestID,
		ReservationID: req.ReservationID,
		Status:        domain.FolioOpen,
		Subtotal:      decimal.Zero,
		TaxAmount:     decimal.Zero,
		ServiceCharge: serviceCharge,
		TotalAmount:   serviceCharge,
		PaidAmount:    decimal.Zero,
		Balance:       serviceCharge,
		Version:       1,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     tc.ActorID,
			LastUpdatedAt: now,
			LastUpdatedBy: tc.ActorID,
		},
	}

	created, err := s.folioRepo.CreateFolio(ctx, folio, nil)
	if err != nil {
		logger.Error("Failed to create folio", slog.String("error", err.Error()), slog.String("guest_id", req.GuestID))
		return nil, fmt.Errorf("failed to create folio: %w", err)
	}

	logger.Info("Folio created", slog.String("folio_id", created.FolioID), slog.String("folio_number", created.FolioNumber))
	return created, nil
}

// CheckIn opens a folio and posts one room charge per night of the stay, priced
// from the resolved daily rates. The folio and all charges are persisted in a
// single transaction so a failing write leaves nothing behind.
func (s *folioService) CheckIn(ctx context.Context, tc domain.TenantContext, req dto.CheckInRequest) (*domain.Folio, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	checkIn := time.Date(req.CheckInDate.Year(), req.CheckInDate.Month(), req.CheckInDate.Day(), 0, 0, 0, 0, time.UTC)
	checkOut := time.Date(req.CheckOutDate.Year(), req.CheckOutDate.Month(), req.CheckOutDate.Day(), 0, 0, 0, 0, time.UTC)
	if !checkOut.After(checkIn) {
		return nil, fmt.Errorf("%w: check-out must be after check-in", apperrors.ErrValidation)
	}

	now := time.Now().UTC()
	folioID := uuid.NewString()
	guestID := req.GuestID
	audit := domain.AuditFields{
		CreatedAt:     now,
		CreatedBy:     tc.ActorID,
		LastUpdatedAt: now,
		LastUpdatedBy: tc.ActorID,
	}

	var items []domain.FolioItem
	for night := checkIn; night.Before(checkOut); night = night.AddDate(0, 0, 1) {
		rate, err := s.rateSvc.ResolveRate(ctx, tc, req.RoomTypeID, night)
		if err != nil {
			return nil, fmt.Errorf("failed to resolve rate for %s: %w", night.Format("2006-01-02"), err)
		}

		calc, err := s.taxSvc.CalculateTaxes(ctx, tc, rate, domain.ChargeRoom, nil, &guestID, night)
		if err != nil {
			return nil, fmt.Errorf("failed to calculate room taxes: %w", err)
		}

		items = append(items, domain.FolioItem{
			ItemID:       uuid.NewString(),
			FolioID:      folioID,
			ItemType:     domain.ItemRoomCharge,
			Description:  fmt.Sprintf("Room charge %s", night.Format("2006-01-02")),
			Quantity:     decimal.NewFromInt(1),
			UnitPrice:    rate,
			TotalPrice:   rate,
			TaxAmount:    calc.TotalTax,
			TaxBreakdown: taxBreakdownAmounts(calc),
			ServiceDate:  night,
			IsPosted:     true,
			AuditFields:  audit,
		})
	}

	folio := domain.Folio{
		FolioID:       folioID,
		FolioNumber:   newFolioNumber(now),
		PropertyID:    tc.PropertyID,
		GuestID:       guestID,
		ReservationID: req.ReservationID,
		Status:        domain.FolioOpen,
		ServiceCharge: decimal.Zero,
		Version:       1,
		AuditFields:   audit,
	}
	billing.ApplyTotals(&folio, billing.ComputeFolioTotals(items, nil, decimal.Zero))

	created, err := s.folioRepo.CreateFolio(ctx, folio, items)
	if err != nil {
		logger.Error("Failed to create check-in folio", slog.String("error", err.Error()), slog.String("guest_id", guestID))
		return nil, fmt.Errorf("failed to create check-in folio: %w", err)
	}

	logger.Info("Check-in folio created", slog.String("folio_id", created.FolioID), slog.Int("nights", len(items)))
	return created, nil
}

// taxBreakdownAmounts flattens a tax calculation into the code -> amount map stored
// on folio items.
func taxBreakdownAmounts(calc *domain.TaxCalculation) map[string]decimal.Decimal {
	if len(calc.Breakdown) == 0 {
		return nil
	}
	out := make(map[string]decimal.Decimal, len(calc.Breakdown))
	for code, line := range calc.Breakdown {
		out[code] = line.Amount
	}
	return out
}

// GetFolio retrieves a folio with its items and payments.
func (s *folioService) GetFolio(ctx context.Context, tc domain.TenantContext, folioID string) (*domain.Folio, error) {
	folio, err := s.folioRepo.FindFolioWithDetails(ctx, folioID)
	if err != nil {
		return nil, fmt.Errorf("failed to find folio %s: %w", folioID, err)
	}
	if folio.PropertyID != tc.PropertyID {
		return nil, apperrors.ErrNotFound
	}
	return folio, nil
}

// ListFolios retrieves a paginated folio listing for the tenant's property.
func (s *folioService) ListFolios(ctx context.Context, tc domain.TenantContext, params dto.ListFoliosParams) (*dto.ListFoliosResponse, error) {
	var status *domain.FolioStatus
	if params.Status != nil {
		st := domain.FolioStatus(*params.Status)
		status = &st
	}

	folios, nextToken, err := s.folioRepo.ListFoliosByProperty(ctx, tc.PropertyID, status, params.Limit, params.NextToken)
	if err != nil {
		return nil, fmt.Errorf("failed to list folios: %w", err)
	}

	resp := &dto.ListFoliosResponse{
		Folios:    make([]dto.FolioResponse, len(folios)),
		NextToken: nextToken,
	}
	for i := range folios {
		resp.Folios[i] = dto.ToFolioResponse(&folios[i])
	}
	return resp, nil
}

// AddCharge posts a charge line, computing taxes for the charge amount.
func (s *folioService) AddCharge(ctx context.Context, tc domain.TenantContext, folioID string, req dto.AddChargeRequest) (*domain.Folio, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	if req.Quantity.LessThanOrEqual(decimal.Zero) {
		return nil, fmt.Errorf("%w: quantity must be positive", apperrors.ErrValidation)
	}
	if req.UnitPrice.IsNegative() {
		return nil, fmt.Errorf("%w: unit price must not be negative", apperrors.ErrValidation)
	}
	itemType := domain.ItemType(req.ItemType)
	if !domain.ValidItemType(itemType) {
		return nil, fmt.Errorf("%w: unknown item type %q", apperrors.ErrValidation, req.ItemType)
	}

	folio, err := s.loadScopedFolio(ctx, tc, folioID)
	if err != nil {
		return nil, err
	}
	if folio.Status != domain.FolioOpen {
		return nil, apperrors.ErrFolioClosed
	}

	now := time.Now().UTC()
	serviceDate := now
	if req.ServiceDate != nil {
		serviceDate = *req.ServiceDate
	}

	totalPrice := billing.LineTotal(req.Quantity, req.UnitPrice)
	guestID := folio.GuestID
	calc, err := s.taxSvc.CalculateTaxes(ctx, tc, totalPrice, itemType.ChargeType(), req.CorporateAccountID, &guestID, serviceDate)
	if err != nil {
		return nil, fmt.Errorf("failed to calculate taxes: %w", err)
	}

	item := domain.FolioItem{
		ItemID:       uuid.NewString(),
		FolioID:      folio.FolioID,
		ItemType:     itemType,
		Description:  req.Description,
		Quantity:     req.Quantity,
		UnitPrice:    req.UnitPrice,
		TotalPrice:   totalPrice,
		TaxAmount:    calc.TotalTax,
		TaxBreakdown: taxBreakdownAmounts(calc),
		ServiceDate:  serviceDate,
		IsPosted:     true,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     tc.ActorID,
			LastUpdatedAt: now,
			LastUpdatedBy: tc.ActorID,
		},
	}

	updated, err := s.folioRepo.AddItem(ctx, folio.FolioID, expectedVersion(req.Version, folio), item)
	if err != nil {
		logger.Error("Failed to add charge", slog.String("error", err.Error()), slog.String("folio_id", folio.FolioID))
		return nil, fmt.Errorf("failed to add charge: %w", err)
	}

	logger.Info("Charge added", slog.String("folio_id", folio.FolioID), slog.String("item_id", item.ItemID), slog.String("total", totalPrice.String()))
	return updated, nil
}

// AddAdjustment posts a discount (negative line) or manual debit (positive line).
// Both require a positive amount and a non-blank reason.
func (s *folioService) AddAdjustment(ctx context.Context, tc domain.TenantContext, folioID string, req dto.AddAdjustmentRequest) (*domain.Folio, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	if req.Amount.LessThanOrEqual(decimal.Zero) {
		return nil, ErrAmountNotPositive
	}
	if strings.TrimSpace(req.Reason) == "" {
		return nil, ErrReasonMissing
	}

	folio, err := s.loadScopedFolio(ctx, tc, folioID)
	if err != nil {
		return nil, err
	}
	if folio.Status != domain.FolioOpen {
		return nil, apperrors.ErrFolioClosed
	}

	itemType := domain.ItemMiscellaneous
	totalPrice := billing.Round2(req.Amount)
	if req.Discount {
		itemType = domain.ItemDiscount
		totalPrice = totalPrice.Neg()
	}
	description := req.Description
	if description == "" {
		description = fmt.Sprintf("Adjustment: %s", req.Reason)
	}

	now := time.Now().UTC()
	item := domain.FolioItem{
		ItemID:      uuid.NewString(),
		FolioID:     folio.FolioID,
		ItemType:    itemType,
		Description: description,
		Quantity:    decimal.NewFromInt(1),
		UnitPrice:   totalPrice,
		TotalPrice:  totalPrice,
		TaxAmount:   decimal.Zero,
		ServiceDate: now,
		IsPosted:    true,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     tc.ActorID,
			LastUpdatedAt: now,
			LastUpdatedBy: tc.ActorID,
		},
	}

	updated, err := s.folioRepo.AddItem(ctx, folio.FolioID, expectedVersion(req.Version, folio), item)
	if err != nil {
		logger.Error("Failed to add adjustment", slog.String("error", err.Error()), slog.String("folio_id", folio.FolioID))
		return nil, fmt.Errorf("failed to add adjustment: %w", err)
	}

	logger.Info("Adjustment added", slog.String("folio_id", folio.FolioID), slog.String("item_id", item.ItemID), slog.Bool("discount", req.Discount))
	return updated, nil
}

// RecordPayment records a payment against the folio. When the payment draws on a
// corporate account the method is normalized to "other", the account name is noted,
// and an advisory warning is returned if the account would exceed its credit limit.
// The warning never blocks the payment.
func (s *folioService) RecordPayment(ctx context.Context, tc domain.TenantContext, folioID string, req dto.RecordPaymentRequest) (*domain.Folio, *string, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	if req.Amount.LessThanOrEqual(decimal.Zero) {
		return nil, nil, ErrAmountNotPositive
	}
	method := domain.PaymentMethod(req.Method)
	if !domain.ValidPaymentMethod(method) {
		return nil, nil, fmt.Errorf("%w: unknown payment method %q", apperrors.ErrValidation, req.Method)
	}

	folio, err := s.loadScopedFolio(ctx, tc, folioID)
	if err != nil {
		return nil, nil, err
	}
	if folio.Status != domain.FolioOpen {
		return nil, nil, apperrors.ErrFolioClosed
	}

	notes := req.Notes
	var creditWarning *string
	if req.CorporateAccountID != nil {
		account, err := s.folioRepo.FindCorporateAccountByID(ctx, *req.CorporateAccountID)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to find corporate account %s: %w", *req.CorporateAccountID, err)
		}
		if account.PropertyID != tc.PropertyID {
			return nil, nil, apperrors.ErrNotFound
		}

		method = domain.PayOther
		note := fmt.Sprintf("Charged to corporate account: %s", account.Name)
		if notes != "" {
			notes = notes + " | " + note
		} else {
			notes = note
		}

		projected := account.CurrentBalance.Add(req.Amount)
		if projected.GreaterThan(account.CreditLimit) {
			warning := fmt.Sprintf("corporate account %s exceeds its credit limit (%s of %s)",
				account.Name, projected.StringFixed(2), account.CreditLimit.StringFixed(2))
			creditWarning = &warning
			logger.Warn("Corporate credit limit exceeded", slog.String("corporate_account_id", account.CorporateAccountID), slog.String("projected", projected.String()))
		}
	}

	now := time.Now().UTC()
	payment := domain.Payment{
		PaymentID:          uuid.NewString(),
		FolioID:            folio.FolioID,
		Amount:             billing.Round2(req.Amount),
		Method:             method,
		ReferenceNumber:    req.ReferenceNumber,
		CorporateAccountID: req.CorporateAccountID,
		Notes:              notes,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     tc.ActorID,
			LastUpdatedAt: now,
			LastUpdatedBy: tc.ActorID,
		},
	}

	updated, err := s.folioRepo.AddPayment(ctx, folio.FolioID, expectedVersion(req.Version, folio), payment)
	if err != nil {
		logger.Error("Failed to record payment", slog.String("error", err.Error()), slog.String("folio_id", folio.FolioID))
		return nil, nil, fmt.Errorf("failed to record payment: %w", err)
	}

	logger.Info("Payment recorded", slog.String("folio_id", folio.FolioID), slog.String("payment_id", payment.PaymentID), slog.String("amount", payment.Amount.String()))
	return updated, creditWarning, nil
}

// VoidItem soft-voids a charge line with a mandatory reason.
func (s *folioService) VoidItem(ctx context.Context, tc domain.TenantContext, folioID, itemID string, req dto.VoidRequest) (*domain.Folio, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	if strings.TrimSpace(req.Reason) == "" {
		return nil, ErrReasonMissing
	}

	folio, err := s.loadScopedFolio(ctx, tc, folioID)
	if err != nil {
		return nil, err
	}
	if folio.Status != domain.FolioOpen {
		return nil, apperrors.ErrFolioClosed
	}

	updated, err := s.folioRepo.VoidItem(ctx, folio.FolioID, expectedVersion(req.Version, folio), itemID, req.Reason, tc.ActorID, time.Now().UTC())
	if err != nil {
		logger.Error("Failed to void item", slog.String("error", err.Error()), slog.String("folio_id", folio.FolioID), slog.String("item_id", itemID))
		return nil, fmt.Errorf("failed to void item: %w", err)
	}

	logger.Info("Item voided", slog.String("folio_id", folio.FolioID), slog.String("item_id", itemID))
	return updated, nil
}

// VoidPayment soft-voids a payment; the folio balance rises by the voided amount.
func (s *folioService) VoidPayment(ctx context.Context, tc domain.TenantContext, folioID, paymentID string, req dto.VoidRequest) (*domain.Folio, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	if strings.TrimSpace(req.Reason) == "" {
		return nil, ErrReasonMissing
	}

	folio, err := s.loadScopedFolio(ctx, tc, folioID)
	if err != nil {
		return nil, err
	}
	if folio.Status != domain.FolioOpen {
		return nil, apperrors.ErrFolioClosed
	}

	updated, err := s.folioRepo.VoidPayment(ctx, folio.FolioID, expectedVersion(req.Version, folio), paymentID, req.Reason, tc.ActorID, time.Now().UTC())
	if err != nil {
		logger.Error("Failed to void payment", slog.String("error", err.Error()), slog.String("folio_id", folio.FolioID), slog.String("payment_id", paymentID))
		return nil, fmt.Errorf("failed to void payment: %w", err)
	}

	logger.Info("Payment voided", slog.String("folio_id", folio.FolioID), slog.String("payment_id", paymentID))
	return updated, nil
}

// TransferItem moves a non-voided item to a different open folio of the same property.
func (s *folioService) TransferItem(ctx context.Context, tc domain.TenantContext, folioID, itemID string, req dto.TransferItemRequest) (*domain.Folio, *domain.Folio, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	if req.TargetFolioID == folioID {
		return nil, nil, ErrSameFolio
	}

	source, err := s.loadScopedFolio(ctx, tc, folioID)
	if err != nil {
		return nil, nil, err
	}
	target, err := s.loadScopedFolio(ctx, tc, req.TargetFolioID)
	if err != nil {
		return nil, nil, err
	}
	if source.Status != domain.FolioOpen || target.Status != domain.FolioOpen {
		return nil, nil, apperrors.ErrFolioClosed
	}

	updatedSource, updatedTarget, err := s.folioRepo.TransferItem(ctx, source.FolioID, expectedVersion(req.Version, source), target.FolioID, itemID, tc.ActorID, time.Now().UTC())
	if err != nil {
		logger.Error("Failed to transfer item", slog.String("error", err.Error()), slog.String("source_folio_id", source.FolioID), slog.String("target_folio_id", target.FolioID))
		return nil, nil, fmt.Errorf("failed to transfer item: %w", err)
	}

	logger.Info("Item transferred", slog.String("item_id", itemID), slog.String("source_folio_id", source.FolioID), slog.String("target_folio_id", target.FolioID))
	return updatedSource, updatedTarget, nil
}

// SplitFolio re-parents the selected non-voided items onto a newly created folio for
// the same guest, property and reservation.
func (s *folioService) SplitFolio(ctx context.Context, tc domain.TenantContext, folioID string, req dto.SplitFolioRequest) (*domain.Folio, *domain.Folio, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	if len(req.ItemIDs) == 0 {
		return nil, nil, ErrNoItemsSelected
	}

	source, err := s.loadScopedFolio(ctx, tc, folioID)
	if err != nil {
		return nil, nil, err
	}
	if source.Status != domain.FolioOpen {
		return nil, nil, apperrors.ErrFolioClosed
	}

	now := time.Now().UTC()
	newFolio := domain.Folio{
		FolioID:       uuid.NewString(),
		FolioNumber:   newFolioNumber(now),
		PropertyID:    source.PropertyID,
		GuestID:       source.GuestID,
		ReservationID: source.ReservationID,
		Status:        domain.FolioOpen,
		ServiceCharge: decimal.Zero,
		Version:       1,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     tc.ActorID,
			LastUpdatedAt: now,
			LastUpdatedBy: tc.ActorID,
		},
	}

	updatedSource, created, err := s.folioRepo.SplitFolio(ctx, source.FolioID, expectedVersion(req.Version, source), newFolio, req.ItemIDs, tc.ActorID, now)
	if err != nil {
		logger.Error("Failed to split folio", slog.String("error", err.Error()), slog.String("folio_id", source.FolioID))
		return nil, nil, fmt.Errorf("failed to split folio: %w", err)
	}

	logger.Info("Folio split", slog.String("source_folio_id", updatedSource.FolioID), slog.String("created_folio_id", created.FolioID), slog.Int("items", len(req.ItemIDs)))
	return updatedSource, created, nil
}

// CloseFolio transitions the folio to CLOSED; the balance must be zero.
func (s *folioService) CloseFolio(ctx context.Context, tc domain.TenantContext, folioID string, version int64) (*domain.Folio, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	folio, err := s.loadScopedFolio(ctx, tc, folioID)
	if err != nil {
		return nil, err
	}
	if folio.Status == domain.FolioClosed {
		return nil, apperrors.ErrFolioClosed
	}
	if !folio.Balance.IsZero() {
		return nil, fmt.Errorf("%w: balance is %s", apperrors.ErrBalanceNotZero, folio.Balance.StringFixed(2))
	}

	updated, err := s.folioRepo.UpdateFolioStatus(ctx, folio.FolioID, expectedVersion(version, folio), domain.FolioClosed, tc.ActorID, time.Now().UTC())
	if err != nil {
		logger.Error("Failed to close folio", slog.String("error", err.Error()), slog.String("folio_id", folio.FolioID))
		return nil, fmt.Errorf("failed to close folio: %w", err)
	}

	logger.Info("Folio closed", slog.String("folio_id", folio.FolioID))
	return updated, nil
}

// ReopenFolio transitions a closed folio back to OPEN. There is no guard; a closed
// folio can always be reopened for further mutation.
func (s *folioService) ReopenFolio(ctx context.Context, tc domain.TenantContext, folioID string, version int64) (*domain.Folio, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	folio, err := s.loadScopedFolio(ctx, tc, folioID)
	if err != nil {
		return nil, err
	}
	if folio.Status == domain.FolioOpen {
		return folio, nil
	}

	updated, err := s.folioRepo.UpdateFolioStatus(ctx, folio.FolioID, expectedVersion(version, folio), domain.FolioOpen, tc.ActorID, time.Now().UTC())
	if err != nil {
		logger.Error("Failed to reopen folio", slog.String("error", err.Error()), slog.String("folio_id", folio.FolioID))
		return nil, fmt.Errorf("failed to reopen folio: %w", err)
	}

	logger.Info("Folio reopened", slog.String("folio_id", folio.FolioID))
	return updated, nil
}
