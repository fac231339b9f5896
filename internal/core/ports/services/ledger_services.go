package services

import (
	"context"

	"github.com/arprinters/pos_backend/internal/core/domain"
)

// LedgerSvcFacade derives per-customer credit positions from the full sale
// history. All operations are pure reads; nothing is stored.
type LedgerSvcFacade interface {
	// CustomerLedger produces one entry per directory customer, sorted by
	// outstanding balance, highest debt first.
	CustomerLedger(ctx context.Context) ([]domain.LedgerEntry, error)

	// CustomerStatement returns one customer's entry together with the
	// matched sale history, newest first.
	CustomerStatement(ctx context.Context, customerID string) (*domain.CustomerStatement, error)
}
