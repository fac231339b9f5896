package services_test

import (
	"context"
	"testing"

	"github.com/arprinters/pos_backend/internal/apperrors"
	"github.com/arprinters/pos_backend/internal/core/domain"
	portsrepo "github.com/arprinters/pos_backend/internal/core/ports/repositories"
	portssvc "github.com/arprinters/pos_backend/internal/core/ports/services"
	"github.com/arprinters/pos_backend/internal/core/services"
	"github.com/arprinters/pos_backend/internal/dto"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

// --- Mock PurchaseRepository ---
type MockPurchaseRepository struct {
	mock.Mock
}

// Ensure MockPurchaseRepository implements portsrepo.PurchaseRepositoryWithTx
var _ portsrepo.PurchaseRepositoryWithTx = (*MockPurchaseRepository)(nil)

func (m *MockPurchaseRepository) SavePurchase(ctx context.Context, purchase domain.Purchase) error {
	args := m.Called(ctx, purchase)
	return args.Error(0)
}

func (m *MockPurchaseRepository) FindPurchaseByID(ctx context.Context, purchaseID string) (*domain.Purchase, error) {
	args := m.Called(ctx, purchaseID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Purchase), args.Error(1)
}

func (m *MockPurchaseRepository) ListPurchases(ctx context.Context) ([]domain.Purchase, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Purchase), args.Error(1)
}

func (m *MockPurchaseRepository) Begin(ctx context.Context) (pgx.Tx, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(pgx.Tx), args.Error(1)
}

func (m *MockPurchaseRepository) Commit(ctx context.Context, tx pgx.Tx) error {
	args := m.Called(ctx, tx)
	return args.Error(0)
}

func (m *MockPurchaseRepository) Rollback(ctx context.Context, tx pgx.Tx) error {
	args := m.Called(ctx, tx)
	return args.Error(0)
}

// --- Mock ProductService (as used by PurchaseService) ---
type MockProductService struct {
	mock.Mock
}

var _ portssvc.ProductReaderSvc = (*MockProductService)(nil)

func (m *MockProductService) GetProductByID(ctx context.Context, productID string) (*domain.Product, error) {
	args := m.Called(ctx, productID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Product), args.Error(1)
}

func (m *MockProductService) ListProducts(ctx context.Context) ([]domain.Product, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Product), args.Error(1)
}

func (m *MockProductService) ListLowStockProducts(ctx context.Context) ([]domain.Product, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Product), args.Error(1)
}

// --- Test Suite Setup ---
type PurchaseServiceTestSuite struct {
	suite.Suite
	mockPurchaseRepo *MockPurchaseRepository
	mockProductSvc   *MockProductService
	service          portssvc.PurchaseSvcFacade
	userID           string
	paper            domain.Product
	toner            domain.Product
}

func (suite *PurchaseServiceTestSuite) SetupTest() {
	suite.mockPurchaseRepo = new(MockPurchaseRepository)
	suite.mockProductSvc = new(MockProductService)
	suite.service = services.NewPurchaseService(suite.mockPurchaseRepo, suite.mockProductSvc)

	suite.userID = uuid.NewString()
	suite.paper = domain.Product{
		ProductID: uuid.NewString(),
		Name:      "A4 Paper Ream",
		Price:     decimal.NewFromInt(350),
		Cost:      decimal.NewFromInt(280),
		Stock:     40,
	}
	suite.toner = domain.Product{
		ProductID: uuid.NewString(),
		Name:      "Black Toner Cartridge",
		Price:     decimal.NewFromInt(4500),
		Cost:      decimal.NewFromInt(3600),
		Stock:     3,
	}
}

// --- Test Cases ---

func (suite *PurchaseServiceTestSuite) TestCreatePurchase_Success() {
	ctx := context.Background()
	req := dto.CreatePurchaseRequest{
		SupplierName: "Paper Depot",
		Items: []dto.CreatePurchaseItemRequest{
			{ProductID: suite.paper.ProductID, UnitCost: decimal.NewFromInt(290), Quantity: 10},
			{ProductID: suite.toner.ProductID, UnitCost: decimal.NewFromInt(3550), Quantity: 2},
		},
	}

	suite.mockProductSvc.On("GetProductByID", ctx, suite.paper.ProductID).Return(&suite.paper, nil).Once()
	suite.mockProductSvc.On("GetProductByID", ctx, suite.toner.ProductID).Return(&suite.toner, nil).Once()
	suite.mockPurchaseRepo.On("SavePurchase", ctx, mock.AnythingOfType("domain.Purchase")).Return(nil).Once()

	purchase, err := suite.service.CreatePurchase(ctx, req, suite.userID)

	suite.Require().NoError(err)
	suite.Require().NotNil(purchase)
	suite.NotEmpty(purchase.PurchaseID)
	suite.Equal("Paper Depot", purchase.SupplierName)
	suite.Require().Len(purchase.Items, 2)
	// Lines carry the catalog name of the day.
	suite.Equal(suite.paper.Name, purchase.Items[0].Name)
	suite.Equal(suite.toner.Name, purchase.Items[1].Name)
	suite.True(purchase.Total.Equal(decimal.NewFromInt(10000)), "total should be 10*290 + 2*3550")
	suite.Equal(suite.userID, purchase.CreatedBy)

	suite.mockProductSvc.AssertExpectations(suite.T())
	suite.mockPurchaseRepo.AssertExpectations(suite.T())
}

func (suite *PurchaseServiceTestSuite) TestCreatePurchase_Empty() {
	ctx := context.Background()

	_, err := suite.service.CreatePurchase(ctx, dto.CreatePurchaseRequest{}, suite.userID)

	suite.Require().ErrorIs(err, services.ErrEmptyPurchase)
	suite.mockPurchaseRepo.AssertNotCalled(suite.T(), "SavePurchase", mock.Anything, mock.Anything)
}

func (suite *PurchaseServiceTestSuite) TestCreatePurchase_UnknownProduct() {
	ctx := context.Background()
	unknownID := uuid.NewString()
	req := dto.CreatePurchaseRequest{
		Items: []dto.CreatePurchaseItemRequest{
			{ProductID: unknownID, UnitCost: decimal.NewFromInt(100), Quantity: 1},
		},
	}

	suite.mockProductSvc.On("GetProductByID", ctx, unknownID).Return(nil, apperrors.ErrNotFound).Once()

	_, err := suite.service.CreatePurchase(ctx, req, suite.userID)

	suite.Require().ErrorIs(err, apperrors.ErrValidation)
	suite.mockPurchaseRepo.AssertNotCalled(suite.T(), "SavePurchase", mock.Anything, mock.Anything)
}

func (suite *PurchaseServiceTestSuite) TestCreatePurchase_InvalidLine() {
	ctx := context.Background()

	req := dto.CreatePurchaseRequest{
		Items: []dto.CreatePurchaseItemRequest{
			{ProductID: suite.paper.ProductID, UnitCost: decimal.NewFromInt(290), Quantity: 0},
		},
	}
	_, err := suite.service.CreatePurchase(ctx, req, suite.userID)
	suite.Require().ErrorIs(err, apperrors.ErrValidation)

	req.Items[0].Quantity = 5
	req.Items[0].UnitCost = decimal.NewFromInt(-1)
	_, err = suite.service.CreatePurchase(ctx, req, suite.userID)
	suite.Require().ErrorIs(err, apperrors.ErrValidation)

	suite.mockPurchaseRepo.AssertNotCalled(suite.T(), "SavePurchase", mock.Anything, mock.Anything)
}

func (suite *PurchaseServiceTestSuite) TestCreatePurchase_SaveError() {
	ctx := context.Background()
	req := dto.CreatePurchaseRequest{
		Items: []dto.CreatePurchaseItemRequest{
			{ProductID: suite.paper.ProductID, UnitCost: decimal.NewFromInt(290), Quantity: 10},
		},
	}

	repoErr := assert.AnError
	suite.mockProductSvc.On("GetProductByID", ctx, suite.paper.ProductID).Return(&suite.paper, nil).Once()
	suite.mockPurchaseRepo.On("SavePurchase", ctx, mock.Anything).Return(repoErr).Once()

	purchase, err := suite.service.CreatePurchase(ctx, req, suite.userID)

	suite.Require().Error(err)
	suite.Nil(purchase)
	suite.Contains(err.Error(), repoErr.Error())
	suite.mockPurchaseRepo.AssertExpectations(suite.T())
}

func (suite *PurchaseServiceTestSuite) TestGetPurchaseByID_NotFound() {
	ctx := context.Background()
	purchaseID := uuid.NewString()

	suite.mockPurchaseRepo.On("FindPurchaseByID", ctx, purchaseID).Return(nil, apperrors.ErrNotFound).Once()

	_, err := suite.service.GetPurchaseByID(ctx, purchaseID)

	suite.Require().ErrorIs(err, apperrors.ErrNotFound)
}

// --- Run Test Suite ---
func TestPurchaseService(t *testing.T) {
	suite.Run(t, new(PurchaseServiceTestSuite))
}
