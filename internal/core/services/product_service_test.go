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
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

// --- Mock ProductRepository ---
type MockProductRepository struct {
	mock.Mock
}

// Ensure MockProductRepository implements portsrepo.ProductRepositoryFacade
var _ portsrepo.ProductRepositoryFacade = (*MockProductRepository)(nil)

func (m *MockProductRepository) SaveProduct(ctx context.Context, product domain.Product) error {
	args := m.Called(ctx, product)
	return args.Error(0)
}

func (m *MockProductRepository) FindProductByID(ctx context.Context, productID string) (*domain.Product, error) {
	args := m.Called(ctx, productID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Product), args.Error(1)
}

func (m *MockProductRepository) ListProducts(ctx context.Context) ([]domain.Product, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Product), args.Error(1)
}

func (m *MockProductRepository) ListLowStockProducts(ctx context.Context) ([]domain.Product, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Product), args.Error(1)
}

// --- Test Suite Setup ---
type ProductServiceTestSuite struct {
	suite.Suite
	mockProductRepo *MockProductRepository
	service         portssvc.ProductSvcFacade
	userID          string
}

func (suite *ProductServiceTestSuite) SetupTest() {
	suite.mockProductRepo = new(MockProductRepository)
	suite.service = services.NewProductService(suite.mockProductRepo)
	suite.userID = uuid.NewString()
}

// --- Test Cases ---

func (suite *ProductServiceTestSuite) TestCreateProduct_Success() {
	ctx := context.Background()
	req := dto.CreateProductRequest{
		Name:          "A4 Paper Ream",
		Category:      "Paper",
		Price:         decimal.NewFromInt(350),
		Cost:          decimal.NewFromInt(280),
		Stock:         40,
		MinStockLevel: 10,
	}

	suite.mockProductRepo.On("SaveProduct", ctx, mock.AnythingOfType("domain.Product")).Return(nil).Once()

	product, err := suite.service.CreateProduct(ctx, req, suite.userID)

	suite.Require().NoError(err)
	suite.Require().NotNil(product)
	suite.NotEmpty(product.ProductID)
	suite.Equal(req.Name, product.Name)
	suite.Equal(int64(40), product.Stock)
	suite.Equal(suite.userID, product.CreatedBy)
	suite.mockProductRepo.AssertExpectations(suite.T())
}

func (suite *ProductServiceTestSuite) TestCreateProduct_NegativePrice() {
	ctx := context.Background()
	req := dto.CreateProductRequest{
		Name:  "A4 Paper Ream",
		Price: decimal.NewFromInt(-1),
	}

	_, err := suite.service.CreateProduct(ctx, req, suite.userID)

	suite.Require().ErrorIs(err, apperrors.ErrValidation)
	suite.mockProductRepo.AssertNotCalled(suite.T(), "SaveProduct", mock.Anything, mock.Anything)
}

func (suite *ProductServiceTestSuite) TestUpdateProduct_LeavesStockAndCost() {
	ctx := context.Background()
	existing := domain.Product{
		ProductID:     uuid.NewString(),
		Name:          "A4 Paper Ream",
		Price:         decimal.NewFromInt(350),
		Cost:          decimal.NewFromInt(280),
		Stock:         40,
		MinStockLevel: 10,
	}
	newPrice := decimal.NewFromInt(380)
	req := dto.UpdateProductRequest{Price: &newPrice}

	suite.mockProductRepo.On("FindProductByID", ctx, existing.ProductID).Return(&existing, nil).Once()
	suite.mockProductRepo.On("SaveProduct", ctx, mock.MatchedBy(func(p domain.Product) bool {
		return p.Price.Equal(newPrice) &&
			p.Stock == existing.Stock &&
			p.Cost.Equal(decimal.NewFromInt(280))
	})).Return(nil).Once()

	updated, err := suite.service.UpdateProduct(ctx, existing.ProductID, req, suite.userID)

	suite.Require().NoError(err)
	suite.True(updated.Price.Equal(newPrice))
	suite.Equal(int64(40), updated.Stock)
	suite.mockProductRepo.AssertExpectations(suite.T())
}

func (suite *ProductServiceTestSuite) TestUpdateProduct_NotFound() {
	ctx := context.Background()
	productID := uuid.NewString()

	suite.mockProductRepo.On("FindProductByID", ctx, productID).Return(nil, apperrors.ErrNotFound).Once()

	_, err := suite.service.UpdateProduct(ctx, productID, dto.UpdateProductRequest{}, suite.userID)

	suite.Require().ErrorIs(err, apperrors.ErrNotFound)
}

func (suite *ProductServiceTestSuite) TestListLowStockProducts() {
	ctx := context.Background()
	low := []domain.Product{
		{ProductID: uuid.NewString(), Name: "Black Toner Cartridge", Stock: 2, MinStockLevel: 5},
	}

	suite.mockProductRepo.On("ListLowStockProducts", ctx).Return(low, nil).Once()

	products, err := suite.service.ListLowStockProducts(ctx)

	suite.Require().NoError(err)
	suite.Require().Len(products, 1)
	suite.True(products[0].IsLowStock())
	suite.mockProductRepo.AssertExpectations(suite.T())
}

// --- Run Test Suite ---
func TestProductService(t *testing.T) {
	suite.Run(t, new(ProductServiceTestSuite))
}
