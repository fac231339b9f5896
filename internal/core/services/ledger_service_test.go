package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/arprinters/pos_backend/internal/apperrors"
	"github.com/arprinters/pos_backend/internal/core/domain"
	portssvc "github.com/arprinters/pos_backend/internal/core/ports/services"
	"github.com/arprinters/pos_backend/internal/core/services"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

// --- Test Suite Setup ---
type LedgerServiceTestSuite struct {
	suite.Suite
	mockCustomerRepo *MockCustomerRepository
	mockSaleRepo     *MockSaleRepository
	service          portssvc.LedgerSvcFacade
	hasan            domain.Customer
	rina             domain.Customer
}

func (suite *LedgerServiceTestSuite) SetupTest() {
	suite.mockCustomerRepo = new(MockCustomerRepository)
	suite.mockSaleRepo = new(MockSaleRepository)
	suite.service = services.NewLedgerService(suite.mockCustomerRepo, suite.mockSaleRepo)

	suite.hasan = domain.Customer{
		CustomerID: uuid.NewString(),
		Name:       "Hasan Traders",
		Phone:      "0171-2345678",
	}
	suite.rina = domain.Customer{
		CustomerID: uuid.NewString(),
		Name:       "Rina Akter",
		Phone:      "0181-7654321",
	}
}

func creditSale(customer domain.Customer, total int64, status domain.PaymentStatus, date time.Time) domain.Sale {
	customerID := customer.CustomerID
	return domain.Sale{
		SaleID:          uuid.NewString(),
		SaleDate:        date,
		CustomerID:      &customerID,
		CustomerName:    customer.Name,
		CustomerContact: customer.Phone,
		Total:           decimal.NewFromInt(total),
		PaymentMethod:   domain.PaymentMethodCredit,
		PaymentStatus:   status,
	}
}

// --- Test Cases ---

func (suite *LedgerServiceTestSuite) TestCustomerLedger_Balances() {
	ctx := context.Background()
	now := time.Now().UTC()

	sales := []domain.Sale{
		creditSale(suite.hasan, 1000, domain.PaymentStatusPending, now.Add(-48*time.Hour)),
		creditSale(suite.hasan, 400, domain.PaymentStatusPaid, now.Add(-24*time.Hour)),
		creditSale(suite.rina, 200, domain.PaymentStatusPending, now.Add(-12*time.Hour)),
	}

	suite.mockCustomerRepo.On("ListCustomers", ctx).Return([]domain.Customer{suite.hasan, suite.rina}, nil).Once()
	suite.mockSaleRepo.On("ListAllSales", ctx).Return(sales, nil).Once()

	entries, err := suite.service.CustomerLedger(ctx)

	suite.Require().NoError(err)
	suite.Require().Len(entries, 2)

	// Hasan owes 1000, Rina owes 200: highest debt first.
	suite.Equal(suite.hasan.CustomerID, entries[0].CustomerID)
	suite.True(entries[0].TotalCredit.Equal(decimal.NewFromInt(1400)))
	suite.True(entries[0].TotalPaid.Equal(decimal.NewFromInt(400)))
	suite.True(entries[0].Outstanding.Equal(decimal.NewFromInt(1000)))
	suite.Require().NotNil(entries[0].LastTransactionAt)
	suite.True(entries[0].LastTransactionAt.Equal(now.Add(-24 * time.Hour)))

	suite.Equal(suite.rina.CustomerID, entries[1].CustomerID)
	suite.True(entries[1].Outstanding.Equal(decimal.NewFromInt(200)))
}

func (suite *LedgerServiceTestSuite) TestCustomerLedger_NamePhoneFallback() {
	ctx := context.Background()
	now := time.Now().UTC()

	// Recorded before the customer was registered: no directory link, but
	// the captured name and phone match.
	unlinked := domain.Sale{
		SaleID:          uuid.NewString(),
		SaleDate:        now,
		CustomerName:    suite.hasan.Name,
		CustomerContact: suite.hasan.Phone,
		Total:           decimal.NewFromInt(750),
		PaymentMethod:   domain.PaymentMethodCredit,
		PaymentStatus:   domain.PaymentStatusPending,
	}
	// Same name, different phone: must not match.
	namesake := domain.Sale{
		SaleID:        uuid.NewString(),
		SaleDate:      now,
		CustomerName:  suite.hasan.Name,
		Total:         decimal.NewFromInt(999),
		PaymentMethod: domain.PaymentMethodCash,
		PaymentStatus: domain.PaymentStatusPaid,
	}

	suite.mockCustomerRepo.On("ListCustomers", ctx).Return([]domain.Customer{suite.hasan}, nil).Once()
	suite.mockSaleRepo.On("ListAllSales", ctx).Return([]domain.Sale{unlinked, namesake}, nil).Once()

	entries, err := suite.service.CustomerLedger(ctx)

	suite.Require().NoError(err)
	suite.Require().Len(entries, 1)
	suite.True(entries[0].TotalCredit.Equal(decimal.NewFromInt(750)))
	suite.True(entries[0].Outstanding.Equal(decimal.NewFromInt(750)))
}

func (suite *LedgerServiceTestSuite) TestCustomerLedger_ZeroSalesCustomer() {
	ctx := context.Background()

	suite.mockCustomerRepo.On("ListCustomers", ctx).Return([]domain.Customer{suite.hasan}, nil).Once()
	suite.mockSaleRepo.On("ListAllSales", ctx).Return([]domain.Sale{}, nil).Once()

	entries, err := suite.service.CustomerLedger(ctx)

	suite.Require().NoError(err)
	suite.Require().Len(entries, 1)
	suite.True(entries[0].TotalCredit.IsZero())
	suite.True(entries[0].TotalPaid.IsZero())
	suite.True(entries[0].Outstanding.IsZero())
	suite.Nil(entries[0].LastTransactionAt)
}

func (suite *LedgerServiceTestSuite) TestCustomerLedger_TieBreakByName() {
	ctx := context.Background()

	suite.mockCustomerRepo.On("ListCustomers", ctx).Return([]domain.Customer{suite.rina, suite.hasan}, nil).Once()
	suite.mockSaleRepo.On("ListAllSales", ctx).Return([]domain.Sale{}, nil).Once()

	entries, err := suite.service.CustomerLedger(ctx)

	suite.Require().NoError(err)
	suite.Require().Len(entries, 2)
	// Equal outstanding, so name order decides.
	suite.Equal("Hasan Traders", entries[0].CustomerName)
	suite.Equal("Rina Akter", entries[1].CustomerName)
}

func (suite *LedgerServiceTestSuite) TestCustomerStatement_NewestFirst() {
	ctx := context.Background()
	now := time.Now().UTC()

	older := creditSale(suite.hasan, 300, domain.PaymentStatusPaid, now.Add(-72*time.Hour))
	newer := creditSale(suite.hasan, 500, domain.PaymentStatusPending, now.Add(-1*time.Hour))
	other := creditSale(suite.rina, 999, domain.PaymentStatusPending, now)

	suite.mockCustomerRepo.On("FindCustomerByID", ctx, suite.hasan.CustomerID).Return(&suite.hasan, nil).Once()
	suite.mockSaleRepo.On("ListAllSales", ctx).Return([]domain.Sale{older, other, newer}, nil).Once()

	statement, err := suite.service.CustomerStatement(ctx, suite.hasan.CustomerID)

	suite.Require().NoError(err)
	suite.Require().NotNil(statement)
	suite.Require().Len(statement.Sales, 2)
	suite.Equal(newer.SaleID, statement.Sales[0].SaleID)
	suite.Equal(older.SaleID, statement.Sales[1].SaleID)
	suite.True(statement.Entry.Outstanding.Equal(decimal.NewFromInt(500)))
}

func (suite *LedgerServiceTestSuite) TestCustomerStatement_NotFound() {
	ctx := context.Background()
	customerID := uuid.NewString()

	suite.mockCustomerRepo.On("FindCustomerByID", ctx, customerID).Return(nil, apperrors.ErrNotFound).Once()

	_, err := suite.service.CustomerStatement(ctx, customerID)

	suite.Require().ErrorIs(err, apperrors.ErrNotFound)
	suite.mockSaleRepo.AssertNotCalled(suite.T(), "ListAllSales", mock.Anything)
}

// --- Run Test Suite ---
func TestLedgerService(t *testing.T) {
	suite.Run(t, new(LedgerServiceTestSuite))
}
