package services

import (
	"context"
	"time"

	"github.com/arprinters/pos_backend/internal/core/domain"
)

// ReportingSvcFacade produces the date-ranged business reports.
type ReportingSvcFacade interface {
	// SalesSummary aggregates sales between from and to (inclusive).
	SalesSummary(ctx context.Context, from, to time.Time) (*domain.SalesSummary, error)

	// PurchaseSummary aggregates purchases between from and to.
	PurchaseSummary(ctx context.Context, from, to time.Time) (*domain.PurchaseSummary, error)

	// InventoryValuation values the current stock at cost and retail.
	InventoryValuation(ctx context.Context) (*domain.InventoryValuation, error)

	// ProfitReport estimates gross profit between from and to.
	ProfitReport(ctx context.Context, from, to time.Time) (*domain.ProfitReport, error)
}
