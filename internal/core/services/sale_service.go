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

var (
	ErrEmptyCart          = errors.New("sale must have at least one item")
	ErrCreditNeedsAccount = errors.New("credit sales require a registered customer")
	ErrDiscountNegative   = errors.New("discount must not be negative")
	ErrDiscountTooLarge   = errors.New("discount must not exceed the subtotal")
)

// saleService provides checkout and settlement operations.
type saleService struct {
	BaseService
	saleRepo    portsrepo.SaleRepositoryWithTx
	customerSvc portssvc.CustomerReaderSvc
}

// NewSaleService creates a new SaleService.
func NewSaleService(saleRepo portsrepo.SaleRepositoryWithTx, customerSvc portssvc.CustomerReaderSvc) portssvc.SaleSvcFacade {
	return &saleService{
		saleRepo:    saleRepo,
		customerSvc: customerSvc,
	}
}

// Ensure saleService implements the portssvc.SaleSvcFacade interface
var _ portssvc.SaleSvcFacade = (*saleService)(nil)

// CreateSale validates and commits a checkout. The sale record and the stock
// decrement of every backing product are persisted in one transaction; on any
// failure nothing is recorded.
func (s *saleService) CreateSale(ctx context.Context, req dto.CreateSaleRequest, creatorUserID string) (*domain.Sale, error) {
	logger := s.GetLogger(ctx)

	// --- Basic Validation ---
	if len(req.Items) == 0 {
		return nil, ErrEmptyCart
	}

	for _, item := range req.Items {
		if item.Quantity <= 0 {
			return nil, fmt.Errorf("%w: quantity must be positive for item %q", apperrors.ErrValidation, item.Name)
		}
		if item.UnitPrice.IsNegative() {
			return nil, fmt.Errorf("%w: unit price must not be negative for item %q", apperrors.ErrValidation, item.Name)
		}
	}

	if req.Discount.IsNegative() {
		return nil, ErrDiscountNegative
	}

	// Credit sales must be attributable, otherwise the ledger could never
	// collect them.
	if req.PaymentMethod == domain.PaymentMethodCredit {
		if req.CustomerID == nil || *req.CustomerID == "" {
			return nil, ErrCreditNeedsAccount
		}
	}

	now := time.Now().UTC()
	saleID := uuid.NewString()

	// Prepare domain items from the DTO and compute the subtotal
	domainItems := make([]domain.SaleItem, len(req.Items))
	subtotal := decimal.Zero
	for i, itemReq := range req.Items {
		domainItems[i] = domain.SaleItem{
			SaleItemID: uuid.NewString(),
			SaleID:     saleID,
			ProductID:  itemReq.ProductID,
			Name:       itemReq.Name,
			UnitPrice:  itemReq.UnitPrice,
			Quantity:   itemReq.Quantity,
		}
		subtotal = subtotal.Add(domainItems[i].LineTotal())
	}

	if req.Discount.GreaterThan(subtotal) {
		return nil, ErrDiscountTooLarge
	}
	total := subtotal.Sub(req.Discount)

	// When a directory customer is selected, resolve it so the stored name
	// and contact reflect the directory record at sale time.
	customerName := req.CustomerName
	customerContact := req.CustomerContact
	if req.CustomerID != nil && *req.CustomerID != "" {
		customer, err := s.customerSvc.GetCustomerByID(ctx, *req.CustomerID)
		if err != nil {
			if errors.Is(err, apperrors.ErrNotFound) {
				return nil, fmt.Errorf("%w: customer %s not found", apperrors.ErrValidation, *req.CustomerID)
			}
			logger.Error("Failed to resolve customer for sale", slog.String("customer_id", *req.CustomerID), slog.String("error", err.Error()))
			return nil, fmt.Errorf("failed to resolve customer: %w", err)
		}
		customerName = customer.Name
		customerContact = customer.Phone
	}

	// Credit starts pending; every other method is settled at the counter.
	status := domain.PaymentStatusPaid
	if req.PaymentMethod == domain.PaymentMethodCredit {
		status = domain.PaymentStatusPending
	}

	sale := domain.Sale{
		SaleID:          saleID,
		SaleDate:        now,
		CustomerID:      req.CustomerID,
		CustomerName:    customerName,
		CustomerContact: customerContact,
		Items:           domainItems,
		Subtotal:        subtotal,
		Discount:        req.Discount,
		Total:           total,
		PaymentMethod:   req.PaymentMethod,
		PaymentStatus:   status,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     creatorUserID,
			LastUpdatedAt: now,
			LastUpdatedBy: creatorUserID,
		},
	}

	// The repository persists the sale, its items and the stock decrements
	// in one transaction.
	if err := s.saleRepo.SaveSale(ctx, sale); err != nil {
		logger.Error("Failed to save sale", slog.String("sale_id", saleID), slog.String("error", err.Error()))
		return nil, fmt.Errorf("failed to save sale: %w", err)
	}

	logger.Info("Sale recorded",
		slog.String("sale_id", saleID),
		slog.String("payment_method", string(sale.PaymentMethod)),
		slog.String("total", sale.Total.String()),
	)
	return &sale, nil
}

// SettleSale flips a pending credit sale to paid in cash. Settling an
// already-paid sale is a no-op that returns the same final state.
func (s *saleService) SettleSale(ctx context.Context, saleID string, requestingUserID string) (*domain.Sale, error) {
	logger := s.GetLogger(ctx)

	sale, err := s.saleRepo.FindSaleByID(ctx, saleID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, apperrors.ErrNotFound
		}
		logger.Error("Failed to find sale for settlement", slog.String("sale_id", saleID), slog.String("error", err.Error()))
		return nil, fmt.Errorf("failed to find sale: %w", err)
	}

	if sale.PaymentStatus == domain.PaymentStatusPaid && sale.PaymentMethod == domain.PaymentMethodCash {
		// Already settled, nothing to change.
		return sale, nil
	}

	now := time.Now().UTC()
	sale.PaymentStatus = domain.PaymentStatusPaid
	sale.PaymentMethod = domain.PaymentMethodCash
	sale.LastUpdatedAt = now
	sale.LastUpdatedBy = requestingUserID

	if err := s.saleRepo.UpdateSale(ctx, *sale); err != nil {
		logger.Error("Failed to settle sale", slog.String("sale_id", saleID), slog.String("error", err.Error()))
		return nil, fmt.Errorf("failed to settle sale: %w", err)
	}

	logger.Info("Sale settled", slog.String("sale_id", saleID), slog.String("total", sale.Total.String()))
	return sale, nil
}

// GetSaleByID retrieves a specific sale by its ID.
func (s *saleService) GetSaleByID(ctx context.Context, saleID string) (*domain.Sale, error) {
	sale, err := s.saleRepo.FindSaleByID(ctx, saleID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, apperrors.ErrNotFound
		}
		s.LogError(ctx, err, "Failed to get sale", slog.String("sale_id", saleID))
		return nil, fmt.Errorf("failed to get sale: %w", err)
	}
	return sale, nil
}

// ListSales retrieves a paginated list of sales, newest first.
func (s *saleService) ListSales(ctx context.Context, params dto.ListSalesParams) (*dto.ListSalesResponse, error) {
	limit := params.Limit
	if limit <= 0 {
		limit = 20
	}

	sales, nextToken, err := s.saleRepo.ListSales(ctx, limit, params.NextToken)
	if err != nil {
		s.LogError(ctx, err, "Failed to list sales")
		return nil, fmt.Errorf("failed to list sales: %w", err)
	}

	return dto.ToListSalesResponse(sales, nextToken), nil
}
