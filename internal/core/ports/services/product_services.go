package services

import (
	"context"

	"github.com/arprinters/pos_backend/internal/core/domain"
	"github.com/arprinters/pos_backend/internal/dto"
)

// ProductReaderSvc defines read operations for the catalog
type ProductReaderSvc interface {
	// GetProductByID retrieves a specific product by id.
	GetProductByID(ctx context.Context, productID string) (*domain.Product, error)

	// ListProducts retrieves the full catalog.
	ListProducts(ctx context.Context) ([]domain.Product, error)

	// ListLowStockProducts retrieves products at or below their reorder level.
	ListLowStockProducts(ctx context.Context) ([]domain.Product, error)
}

// ProductWriterSvc defines write operations for the catalog
type ProductWriterSvc interface {
	// CreateProduct adds a new product to the catalog.
	CreateProduct(ctx context.Context, req dto.CreateProductRequest, creatorUserID string) (*domain.Product, error)

	// UpdateProduct updates catalog fields of an existing product. Stock is
	// owned by sale and purchase recording and is not settable here.
	UpdateProduct(ctx context.Context, productID string, req dto.UpdateProductRequest, requestingUserID string) (*domain.Product, error)
}

// ProductSvcFacade combines all product-related service interfaces
type ProductSvcFacade interface {
	ProductReaderSvc
	ProductWriterSvc
}
