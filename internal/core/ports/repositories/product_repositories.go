package repositories

import (
	"context"

	"github.com/arprinters/pos_backend/internal/core/domain"
)

// ProductReader defines read operations for catalog data
type ProductReader interface {
	// FindProductByID retrieves a specific product by id.
	FindProductByID(ctx context.Context, productID string) (*domain.Product, error)

	// ListProducts retrieves the full catalog.
	ListProducts(ctx context.Context) ([]domain.Product, error)

	// ListLowStockProducts retrieves products at or below their reorder level.
	ListLowStockProducts(ctx context.Context) ([]domain.Product, error)
}

// ProductWriter defines write operations for catalog data
type ProductWriter interface {
	// SaveProduct inserts or replaces a product record keyed by id. Stock is
	// not mutated through this path; sale and purchase recording own stock.
	SaveProduct(ctx context.Context, product domain.Product) error
}

// ProductRepositoryFacade combines all product-related repository interfaces
type ProductRepositoryFacade interface {
	ProductReader
	ProductWriter
}
