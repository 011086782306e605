package repositories

import (
	"context"
	"time"

	"github.com/stayfolio/hotel_pms_app/internal/core/domain"
)

// FolioReader defines read operations for folio data.
type FolioReader interface {
	// FindFolioByID retrieves a folio header by its unique identifier.
	FindFolioByID(ctx context.Context, folioID string) (*domain.Folio, error)

	// FindFolioWithDetails retrieves a folio with its items and payments populated.
	FindFolioWithDetails(ctx context.Context, folioID string) (*domain.Folio, error)

	// ListFoliosByProperty retrieves a paginated list of folios for a property using
	// token-based pagination. Returns the folios, a token for the next page, and an error.
	ListFoliosByProperty(ctx context.Context, propertyID string, status *domain.FolioStatus, limit int, nextToken *string) ([]domain.Folio, *string, error)
}

// FolioWriter defines write operations for folio data. Every mutation runs inside a
// database transaction, recomputes the folio aggregates from its surviving items and
// payments, and performs an optimistic version check on the folio row; a stale
// expectedVersion fails with apperrors.ErrConflict. Mutations return the refreshed
// folio so callers always observe the post-mutation aggregates.
type FolioWriter interface {
	// CreateFolio persists a new folio, optionally with initial items (used by
	// check-in to create the folio and its nightly room charges atomically).
	CreateFolio(ctx context.Context, folio domain.Folio, items []domain.FolioItem) (*domain.Folio, error)

	// AddItem appends a charge line to the folio.
	AddItem(ctx context.Context, folioID string, expectedVersion int64, item domain.FolioItem) (*domain.Folio, error)

	// AddPayment records a payment against the folio.
	AddPayment(ctx context.Context, folioID string, expectedVersion int64, payment domain.Payment) (*domain.Folio, error)

	// VoidItem soft-voids a charge line. Fails with apperrors.ErrAlreadyVoided if the
	// item is already voided.
	VoidItem(ctx context.Context, folioID string, expectedVersion int64, itemID, reason, actorID string, at time.Time) (*domain.Folio, error)

	// VoidPayment soft-voids a payment, raising the folio balance by its amount.
	VoidPayment(ctx context.Context, folioID string, expectedVersion int64, paymentID, reason, actorID string, at time.Time) (*domain.Folio, error)

	// TransferItem re-parents one item from the source folio onto the target folio,
	// recomputing both folios' aggregates in the same transaction.
	TransferItem(ctx context.Context, sourceFolioID string, sourceVersion int64, targetFolioID, itemID, actorID string, at time.Time) (source *domain.Folio, target *domain.Folio, err error)

	// SplitFolio creates newFolio and re-parents the selected items onto it,
	// recomputing both folios' aggregates in the same transaction.
	SplitFolio(ctx context.Context, sourceFolioID string, sourceVersion int64, newFolio domain.Folio, itemIDs []string, actorID string, at time.Time) (source *domain.Folio, created *domain.Folio, err error)

	// UpdateFolioStatus transitions the folio between OPEN and CLOSED, stamping the
	// closed audit fields when closing and clearing them when reopening.
	UpdateFolioStatus(ctx context.Context, folioID string, expectedVersion int64, status domain.FolioStatus, actorID string, at time.Time) (*domain.Folio, error)
}

// CorporateAccountReader defines read operations for corporate billing accounts.
type CorporateAccountReader interface {
	// FindCorporateAccountByID retrieves a corporate account.
	FindCorporateAccountByID(ctx context.Context, corporateAccountID string) (*domain.CorporateAccount, error)
}

// FolioRepositoryFacade combines all folio-related repository interfaces.
type FolioRepositoryFacade interface {
	FolioReader
	FolioWriter
	CorporateAccountReader
}

// FolioRepositoryWithTx extends FolioRepositoryFacade with transaction capabilities.
type FolioRepositoryWithTx interface {
	FolioRepositoryFacade
	TransactionManager
}
