package repositories

import (
	"context"

	"github.com/arprinters/pos_backend/internal/core/domain"
)

// SaleReader defines read operations for sale data
type SaleReader interface {
	// FindSaleByID retrieves a specific sale, with its line items, by id.
	FindSaleByID(ctx context.Context, saleID string) (*domain.Sale, error)

	// ListSales retrieves a page of sales, newest first, using token-based
	// pagination. It returns the sales, a token for the next page, and an error.
	ListSales(ctx context.Context, limit int, nextToken *string) ([]domain.Sale, *string, error)

	// ListAllSales retrieves the full sale history with line items. The
	// ledger aggregation derives the per-customer credit position from this
	// complete snapshot.
	ListAllSales(ctx context.Context) ([]domain.Sale, error)
}

// SaleWriter defines write operations for sale data
type SaleWriter interface {
	// SaveSale persists a new sale and its items and decrements the stock of
	// every backing product within a single database transaction. Lines
	// without a product id are skipped for stock purposes. On any failure
	// nothing is committed.
	SaveSale(ctx context.Context, sale domain.Sale) error

	// UpdateSale replaces the stored sale header by id. Line items are
	// immutable and are not touched. Settlement uses this to flip the
	// payment fields.
	UpdateSale(ctx context.Context, sale domain.Sale) error
}

// SaleRepositoryFacade combines all sale-related repository interfaces
type SaleRepositoryFacade interface {
	SaleReader
	SaleWriter
}

// SaleRepositoryWithTx extends SaleRepositoryFacade with transaction capabilities
type SaleRepositoryWithTx interface {
	SaleRepositoryFacade
	TransactionManager
}
