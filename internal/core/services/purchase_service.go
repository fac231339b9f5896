package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/arprinters/pos_backend/internal/apperrors"
	"github.com/arprinters/pos_backend/internal/core/domain"
	portsrepo "github.com/arprinters/pos_backend/internal/core/ports/repositories"
	portssvc "github.com/arprinters/pos_backend/internal/core/ports/services"
	"github.com/arprinters/pos_backend/internal/dto"
)

var ErrEmptyPurchase = errors.New("purchase must have at least one item")

// purchaseService provides restock recording operations.
type purchaseService struct {
	BaseService
	purchaseRepo portsrepo.PurchaseRepositoryWithTx
	productSvc   portssvc.ProductReaderSvc
}

// NewPurchaseService creates a new PurchaseService.
func NewPurchaseService(purchaseRepo portsrepo.PurchaseRepositoryWithTx, productSvc portssvc.ProductReaderSvc) portssvc.PurchaseSvcFacade {
	return &purchaseService{
		purchaseRepo: purchaseRepo,
		productSvc:   productSvc,
	}
}

// Ensure purchaseService implements the portssvc.PurchaseSvcFacade interface
var _ portssvc.PurchaseSvcFacade = (*purchaseService)(nil)

// CreatePurchase validates and commits a restock. The purchase record, the
// stock increments and the cost overwrites are persisted in one transaction.
func (s *purchaseService) CreatePurchase(ctx context.Context, req dto.CreatePurchaseRequest, creatorUserID string) (*domain.Purchase, error) {
	logger := s.GetLogger(ctx)

	if len(req.Items) == 0 {
		return nil, ErrEmptyPurchase
	}

	now := time.Now().UTC()
	purchaseID := uuid.NewString()

	// Every purchase line must reference a catalog product; resolve each one
	// so the stored line carries the product name of the day.
	domainItems := make([]domain.PurchaseItem, len(req.Items))
	total := decimal.Zero
	for i, itemReq := range req.Items {
		if itemReq.Quantity <= 0 {
			return nil, fmt.Errorf("%w: quantity must be positive for product %s", apperrors.ErrValidation, itemReq.ProductID)
		}
		if itemReq.UnitCost.IsNegative() {
			return nil, fmt.Errorf("%w: unit cost must not be negative for product %s", apperrors.ErrValidation, itemReq.ProductID)
		}

		product, err := s.productSvc.GetProductByID(ctx, itemReq.ProductID)
		if err != nil {
			if errors.Is(err, apperrors.ErrNotFound) {
				return nil, fmt.Errorf("%w: product %s not found", apperrors.ErrValidation, itemReq.ProductID)
			}
			logger.Error("Failed to resolve product for purchase", slog.String("product_id", itemReq.ProductID), slog.String("error", err.Error()))
			return nil, fmt.Errorf("failed to resolve product: %w", err)
		}

		domainItems[i] = domain.PurchaseItem{
			PurchaseItemID: uuid.NewString(),
			PurchaseID:     purchaseID,
			ProductID:      itemReq.ProductID,
			Name:           product.Name,
			UnitCost:       itemReq.UnitCost,
			Quantity:       itemReq.Quantity,
		}
		total = total.Add(domainItems[i].LineTotal())
	}

	purchase := domain.Purchase{
		PurchaseID:   purchaseID,
		PurchaseDate: now,
		SupplierName: req.SupplierName,
		Items:        domainItems,
		Total:        total,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     creatorUserID,
			LastUpdatedAt: now,
			LastUpdatedBy: creatorUserID,
		},
	}

	// The repository persists the purchase, its lines, the stock increments
	// and the cost overwrites in one transaction.
	if err := s.purchaseRepo.SavePurchase(ctx, purchase); err != nil {
		logger.Error("Failed to save purchase", slog.String("purchase_id", purchaseID), slog.String("error", err.Error()))
		return nil, fmt.Errorf("failed to save purchase: %w", err)
	}

	logger.Info("Purchase recorded",
		slog.String("purchase_id", purchaseID),
		slog.String("total", purchase.Total.String()),
	)
	return &purchase, nil
}

// GetPurchaseByID retrieves a specific purchase by its ID.
func (s *purchaseService) GetPurchaseByID(ctx context.Context, purchaseID string) (*domain.Purchase, error) {
	purchase, err := s.purchaseRepo.FindPurchaseByID(ctx, purchaseID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, apperrors.ErrNotFound
		}
		s.LogError(ctx, err, "Failed to get purchase", slog.String("purchase_id", purchaseID))
		return nil, fmt.Errorf("failed to get purchase: %w", err)
	}
	return purchase, nil
}

// ListPurchases retrieves the full purchase history, newest first.
func (s *purchaseService) ListPurchases(ctx context.Context) ([]domain.Purchase, error) {
	purchases, err := s.purchaseRepo.ListPurchases(ctx)
	if err != nil {
		s.LogError(ctx, err, "Failed to list purchases")
		return nil, fmt.Errorf("failed to list purchases: %w", err)
	}
	return purchases, nil
}
