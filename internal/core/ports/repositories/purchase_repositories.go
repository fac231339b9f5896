package repositories

import (
	"context"

	"github.com/arprinters/pos_backend/internal/core/domain"
)

// PurchaseReader defines read operations for purchase data
type PurchaseReader interface {
	// FindPurchaseByID retrieves a specific purchase, with its lines, by id.
	FindPurchaseByID(ctx context.Context, purchaseID string) (*domain.Purchase, error)

	// ListPurchases retrieves the full purchase history, newest first.
	ListPurchases(ctx context.Context) ([]domain.Purchase, error)
}

// PurchaseWriter defines write operations for purchase data
type PurchaseWriter interface {
	// SavePurchase persists a new purchase and its lines and, within the same
	// database transaction, increments each purchased product's stock and
	// overwrites its cost with the line's unit cost.
	SavePurchase(ctx context.Context, purchase domain.Purchase) error
}

// PurchaseRepositoryFacade combines all purchase-related repository interfaces
type PurchaseRepositoryFacade interface {
	PurchaseReader
	PurchaseWriter
}

// PurchaseRepositoryWithTx extends PurchaseRepositoryFacade with transaction capabilities
type PurchaseRepositoryWithTx interface {
	PurchaseRepositoryFacade
	TransactionManager
}
