package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sort"

	"github.com/shopspring/decimal"

	"github.com/arprinters/pos_backend/internal/apperrors"
	"github.com/arprinters/pos_backend/internal/core/domain"
	portsrepo "github.com/arprinters/pos_backend/internal/core/ports/repositories"
	portssvc "github.com/arprinters/pos_backend/internal/core/ports/services"
)

// ledgerService derives per-customer credit positions. Nothing here is
// stored: every call recomputes from the full customer directory and sale
// history, so the ledger can never drift from the transaction log.
type ledgerService struct {
	BaseService
	customerRepo portsrepo.CustomerReader
	saleRepo     portsrepo.SaleReader
}

// NewLedgerService creates a new LedgerService.
func NewLedgerService(customerRepo portsrepo.CustomerReader, saleRepo portsrepo.SaleReader) portssvc.LedgerSvcFacade {
	return &ledgerService{
		customerRepo: customerRepo,
		saleRepo:     saleRepo,
	}
}

// Ensure ledgerService implements the portssvc.LedgerSvcFacade interface
var _ portssvc.LedgerSvcFacade = (*ledgerService)(nil)

// buildEntry folds one customer's matched sales into a ledger entry and
// returns the matched sales alongside it.
func (s *ledgerService) buildEntry(customer domain.Customer, sales []domain.Sale) (domain.LedgerEntry, []domain.Sale) {
	entry := domain.LedgerEntry{
		CustomerID:   customer.CustomerID,
		CustomerName: customer.Name,
		Phone:        customer.Phone,
		TotalCredit:  decimal.Zero,
		TotalPaid:    decimal.Zero,
		Outstanding:  decimal.Zero,
	}

	var matched []domain.Sale
	for _, sale := range sales {
		if !sale.MatchesCustomer(customer) {
			continue
		}
		matched = append(matched, sale)

		entry.TotalCredit = entry.TotalCredit.Add(sale.Total)
		if sale.PaymentStatus == domain.PaymentStatusPaid {
			entry.TotalPaid = entry.TotalPaid.Add(sale.Total)
		}
		if entry.LastTransactionAt == nil || sale.SaleDate.After(*entry.LastTransactionAt) {
			saleDate := sale.SaleDate
			entry.LastTransactionAt = &saleDate
		}
	}

	entry.Outstanding = entry.TotalCredit.Sub(entry.TotalPaid)
	return entry, matched
}

// CustomerLedger produces one entry per directory customer, sorted by
// outstanding balance, highest debt first. Customers without any sales still
// appear, with zero balances.
func (s *ledgerService) CustomerLedger(ctx context.Context) ([]domain.LedgerEntry, error) {
	customers, err := s.customerRepo.ListCustomers(ctx)
	if err != nil {
		s.LogError(ctx, err, "Failed to list customers for ledger")
		return nil, fmt.Errorf("failed to list customers: %w", err)
	}

	sales, err := s.saleRepo.ListAllSales(ctx)
	if err != nil {
		s.LogError(ctx, err, "Failed to list sales for ledger")
		return nil, fmt.Errorf("failed to list sales: %w", err)
	}

	entries := make([]domain.LedgerEntry, 0, len(customers))
	for _, customer := range customers {
		entry, _ := s.buildEntry(customer, sales)
		entries = append(entries, entry)
	}

	// Highest debt first; ties break on name then id so the order is stable.
	sort.SliceStable(entries, func(i, j int) bool {
		if !entries[i].Outstanding.Equal(entries[j].Outstanding) {
			return entries[i].Outstanding.GreaterThan(entries[j].Outstanding)
		}
		if entries[i].CustomerName != entries[j].CustomerName {
			return entries[i].CustomerName < entries[j].CustomerName
		}
		return entries[i].CustomerID < entries[j].CustomerID
	})

	return entries, nil
}

// CustomerStatement returns one customer's ledger entry together with the
// matched sale history, newest first.
func (s *ledgerService) CustomerStatement(ctx context.Context, customerID string) (*domain.CustomerStatement, error) {
	customer, err := s.customerRepo.FindCustomerByID(ctx, customerID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, apperrors.ErrNotFound
		}
		s.LogError(ctx, err, "Failed to find customer for statement", slog.String("customer_id", customerID))
		return nil, fmt.Errorf("failed to find customer: %w", err)
	}

	sales, err := s.saleRepo.ListAllSales(ctx)
	if err != nil {
		s.LogError(ctx, err, "Failed to list sales for statement", slog.String("customer_id", customerID))
		return nil, fmt.Errorf("failed to list sales: %w", err)
	}

	entry, matched := s.buildEntry(*customer, sales)

	sort.SliceStable(matched, func(i, j int) bool {
		return matched[i].SaleDate.After(matched[j].SaleDate)
	})

	return &domain.CustomerStatement{
		Customer: *customer,
		Entry:    entry,
		Sales:    matched,
	}, nil
}
