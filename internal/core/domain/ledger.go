package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// LedgerEntry is the derived credit position of one customer. It is never
// stored; it is recomputed from the full sale history on demand.
type LedgerEntry struct {
	CustomerID        string          `json:"customerID"`
	CustomerName      string          `json:"customerName"`
	Phone             string          `json:"phone"`
	TotalCredit       decimal.Decimal `json:"totalCredit"` // all matched sale totals, regardless of status
	TotalPaid         decimal.Decimal `json:"totalPaid"`   // matched sale totals with status PAID
	Outstanding       decimal.Decimal `json:"outstanding"` // TotalCredit - TotalPaid
	LastTransactionAt *time.Time      `json:"lastTransactionAt"`
}

// CustomerStatement is a ledger entry together with the matched sale
// history, newest first, for the per-customer drill-down view.
type CustomerStatement struct {
	Customer Customer    `json:"customer"`
	Entry    LedgerEntry `json:"entry"`
	Sales    []Sale      `json:"sales"`
}
