package pgsql

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/arprinters/pos_backend/internal/apperrors"
	"github.com/arprinters/pos_backend/internal/core/domain"
	portsrepo "github.com/arprinters/pos_backend/internal/core/ports/repositories"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
)

// --- Test Suite Setup ---

type PurchaseRepositoryTestSuite struct {
	suite.Suite
	mock pgxmock.PgxPoolIface
	repo portsrepo.PurchaseRepositoryWithTx
	ctx  context.Context
}

func (s *PurchaseRepositoryTestSuite) SetupTest() {
	mock, err := pgxmock.NewPool()
	s.Require().NoError(err)
	s.mock = mock
	s.repo = newPgxPurchaseRepository(mock)
	s.ctx = context.Background()
}

func (s *PurchaseRepositoryTestSuite) TearDownTest() {
	s.mock.Close()
}

func TestPurchaseRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(PurchaseRepositoryTestSuite))
}

// --- Fixtures ---

func restock(items ...domain.PurchaseItem) domain.Purchase {
	now := time.Date(2026, 3, 1, 8, 0, 0, 0, time.UTC)
	total := decimal.Zero
	for _, item := range items {
		total = total.Add(item.LineTotal())
	}
	return domain.Purchase{
		PurchaseID:   "purch-1",
		PurchaseDate: now,
		SupplierName: "Paper Depot",
		Items:        items,
		Total:        total,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     "user-1",
			LastUpdatedAt: now,
			LastUpdatedBy: "user-1",
		},
	}
}

// --- SavePurchase Tests ---

// Restocking 5 units at cost 80 increments stock by 5 and overwrites the
// product's cost basis with 80, inside the same transaction as the header
// and line inserts.
func (s *PurchaseRepositoryTestSuite) TestSavePurchase_Success() {
	purchase := restock(domain.PurchaseItem{
		PurchaseItemID: "line-1",
		PurchaseID:     "purch-1",
		ProductID:      "prod-1",
		Name:           "Glossy Paper A4",
		UnitCost:       decimal.NewFromInt(80),
		Quantity:       5,
	})

	s.mock.ExpectBegin()
	s.mock.ExpectExec("INSERT INTO purchases").
		WillReturnResult(pgxmock.NewResult("INSERT", 1))
	s.mock.ExpectQuery("SELECT product_id").
		WithArgs([]string{"prod-1"}).
		WillReturnRows(pgxmock.NewRows([]string{"product_id"}).AddRow("prod-1"))

	eb := s.mock.ExpectBatch()
	eb.ExpectExec("INSERT INTO purchase_items").
		WithArgs("line-1", "purch-1", "prod-1", "Glossy Paper A4", decimal.NewFromInt(80), int64(5)).
		WillReturnResult(pgxmock.NewResult("INSERT", 1))
	eb.ExpectExec("UPDATE products").
		WithArgs(int64(5), decimal.NewFromInt(80), purchase.LastUpdatedAt, "user-1", "prod-1").
		WillReturnResult(pgxmock.NewResult("UPDATE", 1))
	s.mock.ExpectCommit()

	err := s.repo.SavePurchase(s.ctx, purchase)

	s.NoError(err)
	s.NoError(s.mock.ExpectationsWereMet())
}

// Two lines for the same product apply their cost overwrites in entry order,
// so the later line's unit cost is the one that sticks.
func (s *PurchaseRepositoryTestSuite) TestSavePurchase_LastLineWinsCost() {
	purchase := restock(
		domain.PurchaseItem{
			PurchaseItemID: "line-1",
			PurchaseID:     "purch-1",
			ProductID:      "prod-1",
			Name:           "Glossy Paper A4",
			UnitCost:       decimal.NewFromInt(70),
			Quantity:       3,
		},
		domain.PurchaseItem{
			PurchaseItemID: "line-2",
			PurchaseID:     "purch-1",
			ProductID:      "prod-1",
			Name:           "Glossy Paper A4",
			UnitCost:       decimal.NewFromInt(80),
			Quantity:       5,
		},
	)

	s.mock.ExpectBegin()
	s.mock.ExpectExec("INSERT INTO purchases").
		WillReturnResult(pgxmock.NewResult("INSERT", 1))
	// The product is locked once even though two lines reference it.
	s.mock.ExpectQuery("SELECT product_id").
		WithArgs([]string{"prod-1"}).
		WillReturnRows(pgxmock.NewRows([]string{"product_id"}).AddRow("prod-1"))

	eb := s.mock.ExpectBatch()
	eb.ExpectExec("INSERT INTO purchase_items").
		WillReturnResult(pgxmock.NewResult("INSERT", 1))
	eb.ExpectExec("UPDATE products").
		WithArgs(int64(3), decimal.NewFromInt(70), purchase.LastUpdatedAt, "user-1", "prod-1").
		WillReturnResult(pgxmock.NewResult("UPDATE", 1))
	eb.ExpectExec("INSERT INTO purchase_items").
		WillReturnResult(pgxmock.NewResult("INSERT", 1))
	eb.ExpectExec("UPDATE products").
		WithArgs(int64(5), decimal.NewFromInt(80), purchase.LastUpdatedAt, "user-1", "prod-1").
		WillReturnResult(pgxmock.NewResult("UPDATE", 1))
	s.mock.ExpectCommit()

	err := s.repo.SavePurchase(s.ctx, purchase)

	s.NoError(err)
	s.NoError(s.mock.ExpectationsWereMet())
}

// A failing cost overwrite aborts the whole purchase.
func (s *PurchaseRepositoryTestSuite) TestSavePurchase_StockUpdateFails_RollsBack() {
	purchase := restock(domain.PurchaseItem{
		PurchaseItemID: "line-1",
		PurchaseID:     "purch-1",
		ProductID:      "prod-1",
		Name:           "Glossy Paper A4",
		UnitCost:       decimal.NewFromInt(80),
		Quantity:       5,
	})

	s.mock.ExpectBegin()
	s.mock.ExpectExec("INSERT INTO purchases").
		WillReturnResult(pgxmock.NewResult("INSERT", 1))
	s.mock.ExpectQuery("SELECT product_id").
		WithArgs([]string{"prod-1"}).
		WillReturnRows(pgxmock.NewRows([]string{"product_id"}).AddRow("prod-1"))

	eb := s.mock.ExpectBatch()
	eb.ExpectExec("INSERT INTO purchase_items").
		WillReturnResult(pgxmock.NewResult("INSERT", 1))
	eb.ExpectExec("UPDATE products").
		WillReturnError(assert.AnError)
	s.mock.ExpectRollback()

	err := s.repo.SavePurchase(s.ctx, purchase)

	s.Error(err)
	s.NoError(s.mock.ExpectationsWereMet())
}

// A line for an unknown product aborts the purchase with a not-found error
// before any line or stock write.
func (s *PurchaseRepositoryTestSuite) TestSavePurchase_UnknownProduct_RollsBack() {
	purchase := restock(domain.PurchaseItem{
		PurchaseItemID: "line-1",
		PurchaseID:     "purch-1",
		ProductID:      "prod-missing",
		Name:           "Glossy Paper A4",
		UnitCost:       decimal.NewFromInt(80),
		Quantity:       5,
	})

	s.mock.ExpectBegin()
	s.mock.ExpectExec("INSERT INTO purchases").
		WillReturnResult(pgxmock.NewResult("INSERT", 1))
	s.mock.ExpectQuery("SELECT product_id").
		WithArgs([]string{"prod-missing"}).
		WillReturnRows(pgxmock.NewRows([]string{"product_id"}))
	s.mock.ExpectRollback()

	err := s.repo.SavePurchase(s.ctx, purchase)

	s.Error(err)
	s.True(errors.Is(err, apperrors.ErrNotFound))
	s.NoError(s.mock.ExpectationsWereMet())
}
