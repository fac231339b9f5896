package pgsql

import (
	"context"
	"errors"

	"github.com/arprinters/pos_backend/internal/apperrors"
	"github.com/arprinters/pos_backend/internal/core/domain"
	portsrepo "github.com/arprinters/pos_backend/internal/core/ports/repositories"
	"github.com/arprinters/pos_backend/internal/models"
	"github.com/arprinters/pos_backend/internal/utils/mapping"
	"github.com/jackc/pgx/v5"
)

type PgxCustomerRepository struct {
	BaseRepository
}

// newPgxCustomerRepository creates a new repository for customer directory data.
func newPgxCustomerRepository(pool PgxPool) portsrepo.CustomerRepositoryFacade {
	return &PgxCustomerRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

// Ensure PgxCustomerRepository implements portsrepo.CustomerRepositoryFacade
var _ portsrepo.CustomerRepositoryFacade = (*PgxCustomerRepository)(nil)

// SaveCustomer inserts or replaces a customer record keyed by id.
func (r *PgxCustomerRepository) SaveCustomer(ctx context.Context, customer domain.Customer) error {
	modelCustomer := mapping.ToModelCustomer(customer)
	query := `
		INSERT INTO customers (customer_id, name, phone, email, address, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)
		ON CONFLICT (customer_id) DO UPDATE
		SET name = EXCLUDED.name, phone = EXCLUDED.phone,
		    email = EXCLUDED.email, address = EXCLUDED.address;
	`
	_, err := r.Pool.Exec(ctx, query,
		modelCustomer.CustomerID,
		modelCustomer.Name,
		modelCustomer.Phone,
		modelCustomer.Email,
		modelCustomer.Address,
		modelCustomer.CreatedAt,
	)
	if err != nil {
		return apperrors.NewAppError(500, "failed to save customer "+modelCustomer.CustomerID, err)
	}
	return nil
}

// DeleteCustomer removes the directory record only. Sales keep the captured
// name and contact, so history is unaffected.
func (r *PgxCustomerRepository) DeleteCustomer(ctx context.Context, customerID string) error {
	cmdTag, err := r.Pool.Exec(ctx, `DELETE FROM customers WHERE customer_id = $1;`, customerID)
	if err != nil {
		return apperrors.NewAppError(500, "failed to delete customer "+customerID, err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

// FindCustomerByID retrieves a customer by its ID.
func (r *PgxCustomerRepository) FindCustomerByID(ctx context.Context, customerID string) (*domain.Customer, error) {
	query := `
		SELECT customer_id, name, phone, email, address, created_at
		FROM customers
		WHERE customer_id = $1;
	`
	var modelCustomer models.Customer
	err := r.Pool.QueryRow(ctx, query, customerID).Scan(
		&modelCustomer.CustomerID,
		&modelCustomer.Name,
		&modelCustomer.Phone,
		&modelCustomer.Email,
		&modelCustomer.Address,
		&modelCustomer.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, apperrors.NewAppError(500, "failed to find customer by ID "+customerID, err)
	}

	domainCustomer := mapping.ToDomainCustomer(modelCustomer)
	return &domainCustomer, nil
}

// ListCustomers retrieves the full customer directory, sorted by name.
func (r *PgxCustomerRepository) ListCustomers(ctx context.Context) ([]domain.Customer, error) {
	query := `
		SELECT customer_id, name, phone, email, address, created_at
		FROM customers
		ORDER BY name, customer_id;
	`
	rows, err := r.Pool.Query(ctx, query)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query customers", err)
	}
	defer rows.Close()

	customers := []models.Customer{}
	for rows.Next() {
		var c models.Customer
		err := rows.Scan(
			&c.CustomerID,
			&c.Name,
			&c.Phone,
			&c.Email,
			&c.Address,
			&c.CreatedAt,
		)
		if err != nil {
			return nil, apperrors.NewAppError(500, "failed to scan customer row", err)
		}
		customers = append(customers, c)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewAppError(500, "error iterating customer rows", err)
	}

	return mapping.ToDomainCustomerSlice(customers), nil
}
