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

type PgxProductRepository struct {
	BaseRepository
}

// newPgxProductRepository creates a new repository for catalog data.
func newPgxProductRepository(pool PgxPool) portsrepo.ProductRepositoryFacade {
	return &PgxProductRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

// Ensure PgxProductRepository implements portsrepo.ProductRepositoryFacade
var _ portsrepo.ProductRepositoryFacade = (*PgxProductRepository)(nil)

// SaveProduct inserts or replaces a product record keyed by id. Stock and
// cost follow the record here only on insert paths driven by the catalog
// service; sale and purchase recording mutate them inside their own
// transactions.
func (r *PgxProductRepository) SaveProduct(ctx context.Context, product domain.Product) error {
	modelProduct := mapping.ToModelProduct(product)
	query := `
		INSERT INTO products (
			product_id, name, category, price, cost, stock, min_stock_level,
			created_at, created_by, last_updated_at, last_updated_by
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
		ON CONFLICT (product_id) DO UPDATE
		SET name = EXCLUDED.name, category = EXCLUDED.category,
		    price = EXCLUDED.price, min_stock_level = EXCLUDED.min_stock_level,
		    last_updated_at = EXCLUDED.last_updated_at,
		    last_updated_by = EXCLUDED.last_updated_by;
	`
	_, err := r.Pool.Exec(ctx, query,
		modelProduct.ProductID,
		modelProduct.Name,
		modelProduct.Category,
		modelProduct.Price,
		modelProduct.Cost,
		modelProduct.Stock,
		modelProduct.MinStockLevel,
		modelProduct.CreatedAt,
		modelProduct.CreatedBy,
		modelProduct.LastUpdatedAt,
		modelProduct.LastUpdatedBy,
	)
	if err != nil {
		return apperrors.NewAppError(500, "failed to save product "+modelProduct.ProductID, err)
	}
	return nil
}

// FindProductByID retrieves a product by its ID.
func (r *PgxProductRepository) FindProductByID(ctx context.Context, productID string) (*domain.Product, error) {
	query := `
		SELECT product_id, name, category, price, cost, stock, min_stock_level,
		       created_at, created_by, last_updated_at, last_updated_by
		FROM products
		WHERE product_id = $1;
	`
	var modelProduct models.Product
	err := r.Pool.QueryRow(ctx, query, productID).Scan(
		&modelProduct.ProductID,
		&modelProduct.Name,
		&modelProduct.Category,
		&modelProduct.Price,
		&modelProduct.Cost,
		&modelProduct.Stock,
		&modelProduct.MinStockLevel,
		&modelProduct.CreatedAt,
		&modelProduct.CreatedBy,
		&modelProduct.LastUpdatedAt,
		&modelProduct.LastUpdatedBy,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, apperrors.NewAppError(500, "failed to find product by ID "+productID, err)
	}

	domainProduct := mapping.ToDomainProduct(modelProduct)
	return &domainProduct, nil
}

// ListProducts retrieves the full catalog, sorted by name.
func (r *PgxProductRepository) ListProducts(ctx context.Context) ([]domain.Product, error) {
	query := `
		SELECT product_id, name, category, price, cost, stock, min_stock_level,
		       created_at, created_by, last_updated_at, last_updated_by
		FROM products
		ORDER BY name, product_id;
	`
	return r.queryProducts(ctx, query)
}

// ListLowStockProducts retrieves products at or below their reorder level.
func (r *PgxProductRepository) ListLowStockProducts(ctx context.Context) ([]domain.Product, error) {
	query := `
		SELECT product_id, name, category, price, cost, stock, min_stock_level,
		       created_at, created_by, last_updated_at, last_updated_by
		FROM products
		WHERE stock <= min_stock_level
		ORDER BY stock, name;
	`
	return r.queryProducts(ctx, query)
}

func (r *PgxProductRepository) queryProducts(ctx context.Context, query string) ([]domain.Product, error) {
	rows, err := r.Pool.Query(ctx, query)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query products", err)
	}
	defer rows.Close()

	products := []models.Product{}
	for rows.Next() {
		var p models.Product
		err := rows.Scan(
			&p.ProductID,
			&p.Name,
			&p.Category,
			&p.Price,
			&p.Cost,
			&p.Stock,
			&p.MinStockLevel,
			&p.CreatedAt,
			&p.CreatedBy,
			&p.LastUpdatedAt,
			&p.LastUpdatedBy,
		)
		if err != nil {
			return nil, apperrors.NewAppError(500, "failed to scan product row", err)
		}
		products = append(products, p)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewAppError(500, "error iterating product rows", err)
	}

	return mapping.ToDomainProductSlice(products), nil
}
