package mapping

import (
	"github.com/arprinters/pos_backend/internal/core/domain"
	"github.com/arprinters/pos_backend/internal/models"
)

// ToModelCustomer converts a domain Customer to a model Customer.
func ToModelCustomer(d domain.Customer) models.Customer {
	return models.Customer{
		CustomerID: d.CustomerID,
		Name:       d.Name,
		Phone:      d.Phone,
		Email:      d.Email,
		Address:    d.Address,
		CreatedAt:  d.CreatedAt,
	}
}

// ToDomainCustomer converts a model Customer to a domain Customer.
func ToDomainCustomer(m models.Customer) domain.Customer {
	return domain.Customer{
		CustomerID: m.CustomerID,
		Name:       m.Name,
		Phone:      m.Phone,
		Email:      m.Email,
		Address:    m.Address,
		CreatedAt:  m.CreatedAt,
	}
}

// ToDomainCustomerSlice converts a slice of model Customers to domain Customers.
func ToDomainCustomerSlice(ms []models.Customer) []domain.Customer {
	ds := make([]domain.Customer, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainCustomer(m)
	}
	return ds
}
