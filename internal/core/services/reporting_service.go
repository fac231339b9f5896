package services

import (
	"context"
	"fmt"
	"time"

	"github.com/arprinters/pos_backend/internal/apperrors"
	"github.com/arprinters/pos_backend/internal/core/domain"
	portsrepo "github.com/arprinters/pos_backend/internal/core/ports/repositories"
	portssvc "github.com/arprinters/pos_backend/internal/core/ports/services"
)

// reportingService produces the date-ranged business reports. The heavy
// lifting happens in SQL; this layer validates ranges and logs.
type reportingService struct {
	BaseService
	reportingRepo portsrepo.ReportingRepository
}

// NewReportingService creates a new ReportingService.
func NewReportingService(reportingRepo portsrepo.ReportingRepository) portssvc.ReportingSvcFacade {
	return &reportingService{reportingRepo: reportingRepo}
}

// Ensure reportingService implements the portssvc.ReportingSvcFacade interface
var _ portssvc.ReportingSvcFacade = (*reportingService)(nil)

func validateRange(from, to time.Time) error {
	if to.Before(from) {
		return fmt.Errorf("%w: report range end precedes start", apperrors.ErrValidation)
	}
	return nil
}

// SalesSummary aggregates sales between from and to (inclusive).
func (s *reportingService) SalesSummary(ctx context.Context, from, to time.Time) (*domain.SalesSummary, error) {
	if err := validateRange(from, to); err != nil {
		return nil, err
	}

	summary, err := s.reportingRepo.GetSalesSummaryData(ctx, from, to)
	if err != nil {
		s.LogError(ctx, err, "Failed to aggregate sales summary")
		return nil, fmt.Errorf("failed to aggregate sales summary: %w", err)
	}
	return summary, nil
}

// PurchaseSummary aggregates purchases between from and to.
func (s *reportingService) PurchaseSummary(ctx context.Context, from, to time.Time) (*domain.PurchaseSummary, error) {
	if err := validateRange(from, to); err != nil {
		return nil, err
	}

	summary, err := s.reportingRepo.GetPurchaseSummaryData(ctx, from, to)
	if err != nil {
		s.LogError(ctx, err, "Failed to aggregate purchase summary")
		return nil, fmt.Errorf("failed to aggregate purchase summary: %w", err)
	}
	return summary, nil
}

// InventoryValuation values the current stock at cost and retail.
func (s *reportingService) InventoryValuation(ctx context.Context) (*domain.InventoryValuation, error) {
	valuation, err := s.reportingRepo.GetInventoryValuationData(ctx)
	if err != nil {
		s.LogError(ctx, err, "Failed to compute inventory valuation")
		return nil, fmt.Errorf("failed to compute inventory valuation: %w", err)
	}
	return valuation, nil
}

// ProfitReport estimates gross profit between from and to.
func (s *reportingService) ProfitReport(ctx context.Context, from, to time.Time) (*domain.ProfitReport, error) {
	if err := validateRange(from, to); err != nil {
		return nil, err
	}

	report, err := s.reportingRepo.GetProfitData(ctx, from, to)
	if err != nil {
		s.LogError(ctx, err, "Failed to compute profit report")
		return nil, fmt.Errorf("failed to compute profit report: %w", err)
	}
	return report, nil
}
