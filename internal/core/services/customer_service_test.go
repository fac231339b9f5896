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
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

// --- Mock CustomerRepository ---
type MockCustomerRepository struct {
	mock.Mock
}

// Ensure MockCustomerRepository implements portsrepo.CustomerRepositoryFacade
var _ portsrepo.CustomerRepositoryFacade = (*MockCustomerRepository)(nil)

func (m *MockCustomerRepository) SaveCustomer(ctx context.Context, customer domain.Customer) error {
	args := m.Called(ctx, customer)
	return args.Error(0)
}

func (m *MockCustomerRepository) DeleteCustomer(ctx context.Context, customerID string) error {
	args := m.Called(ctx, customerID)
	return args.Error(0)
}

func (m *MockCustomerRepository) FindCustomerByID(ctx context.Context, customerID string) (*domain.Customer, error) {
	args := m.Called(ctx, customerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Customer), args.Error(1)
}

func (m *MockCustomerRepository) ListCustomers(ctx context.Context) ([]domain.Customer, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Customer), args.Error(1)
}

// --- Test Suite Setup ---
type CustomerServiceTestSuite struct {
	suite.Suite
	mockCustomerRepo *MockCustomerRepository
	service          portssvc.CustomerSvcFacade
}

func (suite *CustomerServiceTestSuite) SetupTest() {
	suite.mockCustomerRepo = new(MockCustomerRepository)
	suite.service = services.NewCustomerService(suite.mockCustomerRepo)
}

// --- Test Cases ---

func (suite *CustomerServiceTestSuite) TestCreateCustomer_Success() {
	ctx := context.Background()
	req := dto.CreateCustomerRequest{
		Name:    "Hasan Traders",
		Phone:   "0171-2345678",
		Email:   "hasan@example.com",
		Address: "Shop 12, Station Road",
	}

	suite.mockCustomerRepo.On("SaveCustomer", ctx, mock.MatchedBy(func(c domain.Customer) bool {
		return c.Name == req.Name && c.Phone == req.Phone && c.CustomerID != ""
	})).Return(nil).Once()

	customer, err := suite.service.CreateCustomer(ctx, req)

	suite.Require().NoError(err)
	suite.Require().NotNil(customer)
	suite.NotEmpty(customer.CustomerID)
	suite.Equal(req.Name, customer.Name)
	suite.False(customer.CreatedAt.IsZero())
	suite.mockCustomerRepo.AssertExpectations(suite.T())
}

func (suite *CustomerServiceTestSuite) TestUpdateCustomer_PartialFields() {
	ctx := context.Background()
	existing := domain.Customer{
		CustomerID: uuid.NewString(),
		Name:       "Hasan Traders",
		Phone:      "0171-2345678",
		Email:      "hasan@example.com",
	}
	newPhone := "0181-9999999"
	req := dto.UpdateCustomerRequest{Phone: &newPhone}

	suite.mockCustomerRepo.On("FindCustomerByID", ctx, existing.CustomerID).Return(&existing, nil).Once()
	suite.mockCustomerRepo.On("SaveCustomer", ctx, mock.MatchedBy(func(c domain.Customer) bool {
		return c.Phone == newPhone && c.Name == existing.Name && c.Email == existing.Email
	})).Return(nil).Once()

	updated, err := suite.service.UpdateCustomer(ctx, existing.CustomerID, req)

	suite.Require().NoError(err)
	suite.Equal(newPhone, updated.Phone)
	suite.Equal(existing.Name, updated.Name)
	suite.mockCustomerRepo.AssertExpectations(suite.T())
}

func (suite *CustomerServiceTestSuite) TestUpdateCustomer_NotFound() {
	ctx := context.Background()
	customerID := uuid.NewString()

	suite.mockCustomerRepo.On("FindCustomerByID", ctx, customerID).Return(nil, apperrors.ErrNotFound).Once()

	_, err := suite.service.UpdateCustomer(ctx, customerID, dto.UpdateCustomerRequest{})

	suite.Require().ErrorIs(err, apperrors.ErrNotFound)
	suite.mockCustomerRepo.AssertNotCalled(suite.T(), "SaveCustomer", mock.Anything, mock.Anything)
}

func (suite *CustomerServiceTestSuite) TestDeleteCustomer() {
	ctx := context.Background()
	customerID := uuid.NewString()

	suite.mockCustomerRepo.On("DeleteCustomer", ctx, customerID).Return(nil).Once()

	err := suite.service.DeleteCustomer(ctx, customerID)

	suite.Require().NoError(err)
	suite.mockCustomerRepo.AssertExpectations(suite.T())
}

func (suite *CustomerServiceTestSuite) TestDeleteCustomer_NotFound() {
	ctx := context.Background()
	customerID := uuid.NewString()

	suite.mockCustomerRepo.On("DeleteCustomer", ctx, customerID).Return(apperrors.ErrNotFound).Once()

	err := suite.service.DeleteCustomer(ctx, customerID)

	suite.Require().ErrorIs(err, apperrors.ErrNotFound)
}

func (suite *CustomerServiceTestSuite) TestListCustomers_RepoError() {
	ctx := context.Background()
	repoErr := assert.AnError

	suite.mockCustomerRepo.On("ListCustomers", ctx).Return(nil, repoErr).Once()

	_, err := suite.service.ListCustomers(ctx)

	suite.Require().Error(err)
	suite.Contains(err.Error(), repoErr.Error())
}

// --- Run Test Suite ---
func TestCustomerService(t *testing.T) {
	suite.Run(t, new(CustomerServiceTestSuite))
}
