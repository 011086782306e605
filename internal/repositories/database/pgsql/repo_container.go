package pgsql

import (
	"github.com/jackc/pgx/v5/pgxpool"

	portsrepo "github.com/stayfolio/hotel_pms_app/internal/core/ports/repositories"
)

func NewRepositoryProvider(dbPool *pgxpool.Pool) portsrepo.RepositoryProvider {
	return portsrepo.RepositoryProvider{
		FolioRepo: NewFolioRepository(dbPool),
		TaxRepo:   NewTaxRepository(dbPool),
		RateRepo:  NewRateRepository(dbPool),
	}
}
