package services

import (
	"context"

	"github.com/arprinters/pos_backend/internal/core/domain"
	"github.com/arprinters/pos_backend/internal/dto"
)

// PurchaseReaderSvc defines read operations for purchase data
type PurchaseReaderSvc interface {
	// GetPurchaseByID retrieves a specific purchase by its ID.
	GetPurchaseByID(ctx context.Context, purchaseID string) (*domain.Purchase, error)

	// ListPurchases retrieves the full purchase history, newest first.
	ListPurchases(ctx context.Context) ([]domain.Purchase, error)
}

// PurchaseWriterSvc defines write operations for purchase data
type PurchaseWriterSvc interface {
	// CreatePurchase commits a restock: the purchase record plus the stock
	// increment and cost overwrite of every purchased product, atomically.
	CreatePurchase(ctx context.Context, req dto.CreatePurchaseRequest, creatorUserID string) (*domain.Purchase, error)
}

// PurchaseSvcFacade combines all purchase-related service interfaces
type PurchaseSvcFacade interface {
	PurchaseReaderSvc
	PurchaseWriterSvc
}
