package repositories

import (
	"context"
	"time"

	"github.com/arprinters/pos_backend/internal/core/domain"
)

// ReportingRepository defines the aggregate queries behind the reports screen.
type ReportingRepository interface {
	// GetSalesSummaryData aggregates sales between from and to (inclusive).
	GetSalesSummaryData(ctx context.Context, from, to time.Time) (*domain.SalesSummary, error)

	// GetPurchaseSummaryData aggregates purchases between from and to.
	GetPurchaseSummaryData(ctx context.Context, from, to time.Time) (*domain.PurchaseSummary, error)

	// GetInventoryValuationData values the current stock at cost and retail.
	GetInventoryValuationData(ctx context.Context) (*domain.InventoryValuation, error)

	// GetProfitData computes net sales and the cost of stocked goods sold
	// between from and to.
	GetProfitData(ctx context.Context, from, to time.Time) (*domain.ProfitReport, error)
}
