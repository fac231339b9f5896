package services

import (
	"context"

	"github.com/arprinters/pos_backend/internal/core/domain"
	"github.com/arprinters/pos_backend/internal/dto"
)

// CustomerReaderSvc defines read operations for the customer directory
type CustomerReaderSvc interface {
	// GetCustomerByID retrieves a specific customer by id.
	GetCustomerByID(ctx context.Context, customerID string) (*domain.Customer, error)

	// ListCustomers retrieves the full directory.
	ListCustomers(ctx context.Context) ([]domain.Customer, error)
}

// CustomerWriterSvc defines write operations for the customer directory
type CustomerWriterSvc interface {
	// CreateCustomer registers a new customer.
	CreateCustomer(ctx context.Context, req dto.CreateCustomerRequest) (*domain.Customer, error)

	// UpdateCustomer updates the contact fields of an existing customer.
	UpdateCustomer(ctx context.Context, customerID string, req dto.UpdateCustomerRequest) (*domain.Customer, error)

	// DeleteCustomer removes the directory record. Sales history survives.
	DeleteCustomer(ctx context.Context, customerID string) error
}

// CustomerSvcFacade combines all customer-related service interfaces
type CustomerSvcFacade interface {
	CustomerReaderSvc
	CustomerWriterSvc
}
