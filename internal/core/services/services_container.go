package services

import (
	portsrepo "github.com/arprinters/pos_backend/internal/core/ports/repositories"
	portssvc "github.com/arprinters/pos_backend/internal/core/ports/services"
	"github.com/arprinters/pos_backend/pkg/config"
)

// NewServiceContainer creates a new service container with properly initialized dependencies
func NewServiceContainer(cfg *config.Config, repos portsrepo.RepositoryProvider) *portssvc.ServiceContainer {
	// Create the container structure first
	container := &portssvc.ServiceContainer{}

	// Directory services come first since the transactional services
	// resolve customers and products through them.
	container.Customer = NewCustomerService(repos.CustomerRepo)
	container.Product = NewProductService(repos.ProductRepo)

	container.Sale = NewSaleService(repos.SaleRepo, container.Customer)
	container.Purchase = NewPurchaseService(repos.PurchaseRepo, container.Product)

	// The ledger reads the directory and the sale history directly; it never
	// writes, so it takes the reader interfaces.
	container.Ledger = NewLedgerService(repos.CustomerRepo, repos.SaleRepo)

	container.Settings = NewSettingsService(repos.SettingsRepo)
	container.User = NewUserService(repos.UserRepo)
	container.Token = NewTokenService(cfg)
	container.Reporting = NewReportingService(repos.ReportingRepo)

	return container
}

// Helper to check interface implementations at compile time
var (
	_ portssvc.SaleSvcFacade     = (*saleService)(nil)
	_ portssvc.LedgerSvcFacade   = (*ledgerService)(nil)
	_ portssvc.PurchaseSvcFacade = (*purchaseService)(nil)
)
