package dto

import (
	"github.com/arprinters/pos_backend/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateProductRequest defines the data needed to add a catalog product.
type CreateProductRequest struct {
	Name          string          `json:"name" binding:"required"`
	Category      string          `json:"category"`
	Price         decimal.Decimal `json:"price" binding:"required"`
	Cost          decimal.Decimal `json:"cost"`
	Stock         int64           `json:"stock"`
	MinStockLevel int64           `json:"minStockLevel"`
}

// UpdateProductRequest defines the data allowed for updating a product.
// Stock is deliberately absent; it moves only through sales and purchases.
type UpdateProductRequest struct {
	Name          *string          `json:"name"`
	Category      *string          `json:"category"`
	Price         *decimal.Decimal `json:"price"`
	MinStockLevel *int64           `json:"minStockLevel"`
}

// ProductResponse defines the data returned for a product.
type ProductResponse struct {
	ProductID     string          `json:"productID"`
	Name          string          `json:"name"`
	Category      string          `json:"category"`
	Price         decimal.Decimal `json:"price"`
	Cost          decimal.Decimal `json:"cost"`
	Stock         int64           `json:"stock"`
	MinStockLevel int64           `json:"minStockLevel"`
	LowStock      bool            `json:"lowStock"`
}

// ListProductsResponse wraps the catalog listing.
type ListProductsResponse struct {
	Products []ProductResponse `json:"products"`
}

// ToProductResponse converts a domain.Product to a ProductResponse DTO.
func ToProductResponse(p *domain.Product) ProductResponse {
	return ProductResponse{
		ProductID:     p.ProductID,
		Name:          p.Name,
		Category:      p.Category,
		Price:         p.Price,
		Cost:          p.Cost,
		Stock:         p.Stock,
		MinStockLevel: p.MinStockLevel,
		LowStock:      p.IsLowStock(),
	}
}

// ToListProductsResponse converts a slice of domain products to the list DTO.
func ToListProductsResponse(products []domain.Product) ListProductsResponse {
	responses := make([]ProductResponse, len(products))
	for i, p := range products {
		responses[i] = ToProductResponse(&p)
	}
	return ListProductsResponse{Products: responses}
}
