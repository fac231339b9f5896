package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/arprinters/pos_backend/internal/apperrors"
	"github.com/arprinters/pos_backend/internal/core/domain"
	portsrepo "github.com/arprinters/pos_backend/internal/core/ports/repositories"
	portssvc "github.com/arprinters/pos_backend/internal/core/ports/services"
	"github.com/arprinters/pos_backend/internal/dto"
)

// productService manages the product catalog.
type productService struct {
	BaseService
	productRepo portsrepo.ProductRepositoryFacade
}

// NewProductService creates a new ProductService.
func NewProductService(productRepo portsrepo.ProductRepositoryFacade) portssvc.ProductSvcFacade {
	return &productService{productRepo: productRepo}
}

// Ensure productService implements the portssvc.ProductSvcFacade interface
var _ portssvc.ProductSvcFacade = (*productService)(nil)

// CreateProduct adds a new product to the catalog. The initial stock is the
// only stock write that bypasses sale and purchase recording.
func (s *productService) CreateProduct(ctx context.Context, req dto.CreateProductRequest, creatorUserID string) (*domain.Product, error) {
	if req.Price.IsNegative() || req.Cost.IsNegative() {
		return nil, fmt.Errorf("%w: price and cost must not be negative", apperrors.ErrValidation)
	}
	if req.Stock < 0 || req.MinStockLevel < 0 {
		return nil, fmt.Errorf("%w: stock levels must not be negative", apperrors.ErrValidation)
	}

	now := time.Now().UTC()
	product := domain.Product{
		ProductID:     uuid.NewString(),
		Name:          req.Name,
		Category:      req.Category,
		Price:         req.Price,
		Cost:          req.Cost,
		Stock:         req.Stock,
		MinStockLevel: req.MinStockLevel,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     creatorUserID,
			LastUpdatedAt: now,
			LastUpdatedBy: creatorUserID,
		},
	}

	if err := s.productRepo.SaveProduct(ctx, product); err != nil {
		s.LogError(ctx, err, "Failed to save product", slog.String("product_id", product.ProductID))
		return nil, fmt.Errorf("failed to save product: %w", err)
	}

	s.LogInfo(ctx, "Product added", slog.String("product_id", product.ProductID), slog.String("name", product.Name))
	return &product, nil
}

// UpdateProduct updates catalog fields of an existing product. Stock and cost
// are owned by sale and purchase recording and cannot be set here.
func (s *productService) UpdateProduct(ctx context.Context, productID string, req dto.UpdateProductRequest, requestingUserID string) (*domain.Product, error) {
	product, err := s.productRepo.FindProductByID(ctx, productID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, apperrors.ErrNotFound
		}
		s.LogError(ctx, err, "Failed to find product for update", slog.String("product_id", productID))
		return nil, fmt.Errorf("failed to find product: %w", err)
	}

	if req.Name != nil {
		product.Name = *req.Name
	}
	if req.Category != nil {
		product.Category = *req.Category
	}
	if req.Price != nil {
		if req.Price.IsNegative() {
			return nil, fmt.Errorf("%w: price must not be negative", apperrors.ErrValidation)
		}
		product.Price = *req.Price
	}
	if req.MinStockLevel != nil {
		if *req.MinStockLevel < 0 {
			return nil, fmt.Errorf("%w: min stock level must not be negative", apperrors.ErrValidation)
		}
		product.MinStockLevel = *req.MinStockLevel
	}

	product.LastUpdatedAt = time.Now().UTC()
	product.LastUpdatedBy = requestingUserID

	if err := s.productRepo.SaveProduct(ctx, *product); err != nil {
		s.LogError(ctx, err, "Failed to update product", slog.String("product_id", productID))
		return nil, fmt.Errorf("failed to update product: %w", err)
	}

	return product, nil
}

// GetProductByID retrieves a specific product by id.
func (s *productService) GetProductByID(ctx context.Context, productID string) (*domain.Product, error) {
	product, err := s.productRepo.FindProductByID(ctx, productID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, apperrors.ErrNotFound
		}
		s.LogError(ctx, err, "Failed to get product", slog.String("product_id", productID))
		return nil, fmt.Errorf("failed to get product: %w", err)
	}
	return product, nil
}

// ListProducts retrieves the full catalog.
func (s *productService) ListProducts(ctx context.Context) ([]domain.Product, error) {
	products, err := s.productRepo.ListProducts(ctx)
	if err != nil {
		s.LogError(ctx, err, "Failed to list products")
		return nil, fmt.Errorf("failed to list products: %w", err)
	}
	return products, nil
}

// ListLowStockProducts retrieves products at or below their reorder level.
func (s *productService) ListLowStockProducts(ctx context.Context) ([]domain.Product, error) {
	products, err := s.productRepo.ListLowStockProducts(ctx)
	if err != nil {
		s.LogError(ctx, err, "Failed to list low stock products")
		return nil, fmt.Errorf("failed to list low stock products: %w", err)
	}
	return products, nil
}
