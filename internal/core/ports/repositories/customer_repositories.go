package repositories

import (
	"context"

	"github.com/arprinters/pos_backend/internal/core/domain"
)

// CustomerReader defines read operations for customer directory data
type CustomerReader interface {
	// FindCustomerByID retrieves a specific customer by id.
	FindCustomerByID(ctx context.Context, customerID string) (*domain.Customer, error)

	// ListCustomers retrieves the full customer directory.
	ListCustomers(ctx context.Context) ([]domain.Customer, error)
}

// CustomerWriter defines write operations for customer directory data
type CustomerWriter interface {
	// SaveCustomer inserts or replaces a customer record keyed by id.
	SaveCustomer(ctx context.Context, customer domain.Customer) error

	// DeleteCustomer removes the directory record only. Historical sales
	// referencing the customer are left untouched.
	DeleteCustomer(ctx context.Context, customerID string) error
}

// CustomerRepositoryFacade combines all customer-related repository interfaces
type CustomerRepositoryFacade interface {
	CustomerReader
	CustomerWriter
}
