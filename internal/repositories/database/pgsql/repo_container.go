package pgsql

import (
	portsrepo "github.com/arprinters/pos_backend/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5/pgxpool"
)

func NewRepositoryProvider(dbPool *pgxpool.Pool) portsrepo.RepositoryProvider {
	customerRepo := newPgxCustomerRepository(dbPool)
	productRepo := newPgxProductRepository(dbPool)
	saleRepo := newPgxSaleRepository(dbPool)
	purchaseRepo := newPgxPurchaseRepository(dbPool)
	settingsRepo := newPgxSettingsRepository(dbPool)
	userRepo := newPgxUserRepository(dbPool)
	reportingRepo := newReportingRepository(dbPool)

	return portsrepo.RepositoryProvider{
		CustomerRepo:  customerRepo,
		ProductRepo:   productRepo,
		SaleRepo:      saleRepo,
		PurchaseRepo:  purchaseRepo,
		SettingsRepo:  settingsRepo,
		UserRepo:      userRepo,
		ReportingRepo: reportingRepo,
	}
}
