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

type SaleRepositoryTestSuite struct {
	suite.Suite
	mock pgxmock.PgxPoolIface
	repo portsrepo.SaleRepositoryWithTx
	ctx  context.Context
}

func (s *SaleRepositoryTestSuite) SetupTest() {
	mock, err := pgxmock.NewPool()
	s.Require().NoError(err)
	s.mock = mock
	s.repo = newPgxSaleRepository(mock)
	s.ctx = context.Background()
}

func (s *SaleRepositoryTestSuite) TearDownTest() {
	s.mock.Close()
}

func TestSaleRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(SaleRepositoryTestSuite))
}

// --- Fixtures ---

func stockedSale() domain.Sale {
	productID := "prod-1"
	now := time.Date(2026, 2, 10, 9, 30, 0, 0, time.UTC)
	return domain.Sale{
		SaleID:        "sale-1",
		SaleDate:      now,
		CustomerName:  "Walk-in",
		Subtotal:      decimal.NewFromInt(820),
		Discount:      decimal.Zero,
		Total:         decimal.NewFromInt(820),
		PaymentMethod: domain.PaymentMethodCash,
		PaymentStatus: domain.PaymentStatusPaid,
		Items: []domain.SaleItem{
			{
				SaleItemID: "item-1",
				SaleID:     "sale-1",
				ProductID:  &productID,
				Name:       "A4 Color Print",
				UnitPrice:  decimal.NewFromInt(350),
				Quantity:   2,
			},
			{
				SaleItemID: "item-2",
				SaleID:     "sale-1",
				Name:       "Lamination Service",
				UnitPrice:  decimal.NewFromInt(120),
				Quantity:   1,
			},
		},
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     "user-1",
			LastUpdatedAt: now,
			LastUpdatedBy: "user-1",
		},
	}
}

// --- SaveSale Tests ---

// The header insert, the item inserts and the stock decrement all run inside
// one transaction. Only the catalog-backed line moves stock; the manual
// service line must not produce a products update.
func (s *SaleRepositoryTestSuite) TestSaveSale_Success() {
	sale := stockedSale()

	s.mock.ExpectBegin()
	s.mock.ExpectExec("INSERT INTO sales").
		WillReturnResult(pgxmock.NewResult("INSERT", 1))
	s.mock.ExpectQuery("SELECT product_id").
		WithArgs([]string{"prod-1"}).
		WillReturnRows(pgxmock.NewRows([]string{"product_id"}).AddRow("prod-1"))

	eb := s.mock.ExpectBatch()
	eb.ExpectExec("INSERT INTO sale_items").
		WithArgs("item-1", "sale-1", sale.Items[0].ProductID, "A4 Color Print", decimal.NewFromInt(350), int64(2)).
		WillReturnResult(pgxmock.NewResult("INSERT", 1))
	eb.ExpectExec("INSERT INTO sale_items").
		WithArgs("item-2", "sale-1", (*string)(nil), "Lamination Service", decimal.NewFromInt(120), int64(1)).
		WillReturnResult(pgxmock.NewResult("INSERT", 1))
	// Exactly one stock decrement, for the full catalog-backed quantity.
	eb.ExpectExec("UPDATE products").
		WithArgs(int64(2), sale.LastUpdatedAt, "user-1", "prod-1").
		WillReturnResult(pgxmock.NewResult("UPDATE", 1))
	s.mock.ExpectCommit()

	err := s.repo.SaveSale(s.ctx, sale)

	s.NoError(err)
	s.NoError(s.mock.ExpectationsWereMet())
}

// A failing stock decrement must abort the whole sale: the transaction is
// rolled back, never committed, and the error reaches the caller.
func (s *SaleRepositoryTestSuite) TestSaveSale_StockUpdateFails_RollsBack() {
	sale := stockedSale()

	s.mock.ExpectBegin()
	s.mock.ExpectExec("INSERT INTO sales").
		WillReturnResult(pgxmock.NewResult("INSERT", 1))
	s.mock.ExpectQuery("SELECT product_id").
		WithArgs([]string{"prod-1"}).
		WillReturnRows(pgxmock.NewRows([]string{"product_id"}).AddRow("prod-1"))

	eb := s.mock.ExpectBatch()
	eb.ExpectExec("INSERT INTO sale_items").
		WillReturnResult(pgxmock.NewResult("INSERT", 1))
	eb.ExpectExec("INSERT INTO sale_items").
		WillReturnResult(pgxmock.NewResult("INSERT", 1))
	eb.ExpectExec("UPDATE products").
		WillReturnError(assert.AnError)
	s.mock.ExpectRollback()

	err := s.repo.SaveSale(s.ctx, sale)

	s.Error(err)
	s.NoError(s.mock.ExpectationsWereMet())
}

// A line referencing a product id missing from the catalog aborts the sale
// before any item or stock write, with a not-found error.
func (s *SaleRepositoryTestSuite) TestSaveSale_UnknownProduct_RollsBack() {
	sale := stockedSale()

	s.mock.ExpectBegin()
	s.mock.ExpectExec("INSERT INTO sales").
		WillReturnResult(pgxmock.NewResult("INSERT", 1))
	s.mock.ExpectQuery("SELECT product_id").
		WithArgs([]string{"prod-1"}).
		WillReturnRows(pgxmock.NewRows([]string{"product_id"}))
	s.mock.ExpectRollback()

	err := s.repo.SaveSale(s.ctx, sale)

	s.Error(err)
	s.True(errors.Is(err, apperrors.ErrNotFound))
	s.NoError(s.mock.ExpectationsWereMet())
}

func (s *SaleRepositoryTestSuite) TestSaveSale_BeginFails() {
	s.mock.ExpectBegin().WillReturnError(assert.AnError)

	err := s.repo.SaveSale(s.ctx, stockedSale())

	s.Error(err)
	s.NoError(s.mock.ExpectationsWereMet())
}
