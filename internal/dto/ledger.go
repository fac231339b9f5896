package dto

import (
	"time"

	"github.com/arprinters/pos_backend/internal/core/domain"
	"github.com/shopspring/decimal"
)

// LedgerEntryResponse is one customer's derived credit position.
type LedgerEntryResponse struct {
	CustomerID        string          `json:"customerID"`
	CustomerName      string          `json:"customerName"`
	Phone             string          `json:"phone"`
	TotalCredit       decimal.Decimal `json:"totalCredit"`
	TotalPaid         decimal.Decimal `json:"totalPaid"`
	Outstanding       decimal.Decimal `json:"outstanding"`
	LastTransactionAt *time.Time      `json:"lastTransactionAt,omitempty"`
}

// LedgerResponse is the full credit ledger, highest debt first, plus the
// grand total outstanding shown at the top of the credit screen.
type LedgerResponse struct {
	Entries          []LedgerEntryResponse `json:"entries"`
	TotalOutstanding decimal.Decimal       `json:"totalOutstanding"`
}

// CustomerStatementResponse is one customer's entry with the matched sale
// history, newest first.
type CustomerStatementResponse struct {
	Customer CustomerResponse    `json:"customer"`
	Entry    LedgerEntryResponse `json:"entry"`
	Sales    []SaleResponse      `json:"sales"`
}

// ToLedgerEntryResponse converts a domain.LedgerEntry to its DTO.
func ToLedgerEntryResponse(e domain.LedgerEntry) LedgerEntryResponse {
	return LedgerEntryResponse{
		CustomerID:        e.CustomerID,
		CustomerName:      e.CustomerName,
		Phone:             e.Phone,
		TotalCredit:       e.TotalCredit,
		TotalPaid:         e.TotalPaid,
		Outstanding:       e.Outstanding,
		LastTransactionAt: e.LastTransactionAt,
	}
}

// ToLedgerResponse converts ledger entries to the list DTO with the grand
// total outstanding.
func ToLedgerResponse(entries []domain.LedgerEntry) LedgerResponse {
	responses := make([]LedgerEntryResponse, len(entries))
	total := decimal.Zero
	for i, e := range entries {
		responses[i] = ToLedgerEntryResponse(e)
		total = total.Add(e.Outstanding)
	}
	return LedgerResponse{Entries: responses, TotalOutstanding: total}
}

// ToCustomerStatementResponse converts a domain.CustomerStatement to its DTO.
func ToCustomerStatementResponse(s *domain.CustomerStatement) CustomerStatementResponse {
	sales := make([]SaleResponse, len(s.Sales))
	for i, sale := range s.Sales {
		sales[i] = ToSaleResponse(&sale)
	}
	return CustomerStatementResponse{
		Customer: ToCustomerResponse(&s.Customer),
		Entry:    ToLedgerEntryResponse(s.Entry),
		Sales:    sales,
	}
}
