package services

import (
	"context"

	"github.com/arprinters/pos_backend/internal/core/domain"
	"github.com/arprinters/pos_backend/internal/dto"
)

// SaleReaderSvc defines read operations for sale data
type SaleReaderSvc interface {
	// GetSaleByID retrieves a specific sale by its ID.
	GetSaleByID(ctx context.Context, saleID string) (*domain.Sale, error)

	// ListSales retrieves a paginated list of sales, newest first.
	ListSales(ctx context.Context, params dto.ListSalesParams) (*dto.ListSalesResponse, error)
}

// SaleWriterSvc defines write operations for sale data
type SaleWriterSvc interface {
	// CreateSale validates and commits a checkout: the sale record plus the
	// stock decrement of every backing product, atomically.
	CreateSale(ctx context.Context, req dto.CreateSaleRequest, creatorUserID string) (*domain.Sale, error)

	// SettleSale marks a pending credit sale as paid in cash. Settling an
	// already-paid sale leaves the same final state.
	SettleSale(ctx context.Context, saleID string, requestingUserID string) (*domain.Sale, error)
}

// SaleSvcFacade combines all sale-related service interfaces
type SaleSvcFacade interface {
	SaleReaderSvc
	SaleWriterSvc
}
