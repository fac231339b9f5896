package repositories

// RepositoryProvider bundles all repository implementations for injection
// into the service container.
type RepositoryProvider struct {
	CustomerRepo  CustomerRepositoryFacade
	ProductRepo   ProductRepositoryFacade
	SaleRepo      SaleRepositoryWithTx
	PurchaseRepo  PurchaseRepositoryWithTx
	SettingsRepo  SettingsRepository
	UserRepo      UserRepositoryFacade
	ReportingRepo ReportingRepository
}
