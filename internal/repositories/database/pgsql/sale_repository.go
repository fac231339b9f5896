package pgsql

import (
	"context"
	"errors"
	"strconv"

	"github.com/arprinters/pos_backend/internal/apperrors"
	"github.com/arprinters/pos_backend/internal/core/domain"
	portsrepo "github.com/arprinters/pos_backend/internal/core/ports/repositories"
	"github.com/arprinters/pos_backend/internal/models"
	"github.com/arprinters/pos_backend/internal/utils/mapping"
	"github.com/arprinters/pos_backend/internal/utils/pagination"
	"github.com/jackc/pgx/v5"
)

type PgxSaleRepository struct {
	BaseRepository
}

// newPgxSaleRepository creates a new repository for sale and sale item data.
func newPgxSaleRepository(pool PgxPool) portsrepo.SaleRepositoryWithTx {
	return &PgxSaleRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

// Ensure PgxSaleRepository implements portsrepo.SaleRepositoryWithTx
var _ portsrepo.SaleRepositoryWithTx = (*PgxSaleRepository)(nil)

// SaveSale saves a sale, its items, and the stock decrements of all backing
// products within a DB transaction. Items without a product id never touch
// stock.
func (r *PgxSaleRepository) SaveSale(ctx context.Context, sale domain.Sale) error {
	tx, err := r.Begin(ctx)
	if err != nil {
		return apperrors.NewAppError(500, "failed to begin transaction", err)
	}
	// Defer rollback in case of error
	defer r.Rollback(ctx, tx) // Will be ignored if transaction is committed successfully

	// 1. Insert the sale header using the transaction tx
	modelSale := mapping.ToModelSale(sale)
	saleQuery := `
		INSERT INTO sales (
			sale_id, sale_date, customer_id, customer_name, customer_contact,
			subtotal, discount, total, payment_method, payment_status,
			created_at, created_by, last_updated_at, last_updated_by
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14);
	`
	_, err = tx.Exec(ctx, saleQuery,
		modelSale.SaleID,
		modelSale.SaleDate,
		modelSale.CustomerID,
		modelSale.CustomerName,
		modelSale.CustomerContact,
		modelSale.Subtotal,
		modelSale.Discount,
		modelSale.Total,
		modelSale.PaymentMethod,
		modelSale.PaymentStatus,
		modelSale.CreatedAt,
		modelSale.CreatedBy,
		modelSale.LastUpdatedAt,
		modelSale.LastUpdatedBy,
	)
	if err != nil {
		return apperrors.NewAppError(500, "failed to insert sale "+modelSale.SaleID, err)
	}

	// 2. Lock the backing products so concurrent checkouts serialize their
	// stock movements.
	stockTotals := make(map[string]int64)
	for _, item := range sale.Items {
		if item.ProductID == nil {
			continue
		}
		stockTotals[*item.ProductID] += item.Quantity
	}
	if len(stockTotals) > 0 {
		productIDs := make([]string, 0, len(stockTotals))
		for id := range stockTotals {
			productIDs = append(productIDs, id)
		}
		locked, err := lockProducts(ctx, tx, productIDs)
		if err != nil {
			return err
		}
		for _, id := range productIDs {
			if !locked[id] {
				return apperrors.NewAppError(400, "sale references unknown product "+id, apperrors.ErrNotFound)
			}
		}
	}

	// 3. Insert the sale items and apply the stock decrements in one batch
	batch := &pgx.Batch{}
	itemQuery := `
		INSERT INTO sale_items (sale_item_id, sale_id, product_id, name, unit_price, quantity)
		VALUES ($1, $2, $3, $4, $5, $6);
	`
	for _, item := range sale.Items {
		modelItem := mapping.ToModelSaleItem(item)
		batch.Queue(itemQuery,
			modelItem.SaleItemID,
			modelItem.SaleID,
			modelItem.ProductID,
			modelItem.Name,
			modelItem.UnitPrice,
			modelItem.Quantity,
		)
	}
	stockQuery := `
		UPDATE products
		SET stock = stock - $1, last_updated_at = $2, last_updated_by = $3
		WHERE product_id = $4;
	`
	for productID, quantity := range stockTotals {
		batch.Queue(stockQuery, quantity, sale.LastUpdatedAt, sale.LastUpdatedBy, productID)
	}

	// 4. Send the batch
	br := tx.SendBatch(ctx, batch)
	err = br.Close() // Important: Close the batch results to check for errors in each command
	if err != nil {
		return apperrors.NewAppError(500, "failed to execute item batch for sale "+modelSale.SaleID, err)
	}

	// If all inserts/updates were successful, commit the transaction
	if err := r.Commit(ctx, tx); err != nil {
		return apperrors.NewAppError(500, "failed to commit transaction for sale "+modelSale.SaleID, err)
	}

	return nil
}

// lockProducts acquires row locks on the given products and reports which ids
// exist.
func lockProducts(ctx context.Context, tx pgx.Tx, productIDs []string) (map[string]bool, error) {
	query := `
		SELECT product_id
		FROM products
		WHERE product_id = ANY($1)
		FOR UPDATE;
	`
	rows, err := tx.Query(ctx, query, productIDs)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to lock products for update", err)
	}
	defer rows.Close()

	locked := make(map[string]bool, len(productIDs))
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, apperrors.NewAppError(500, "failed to scan locked product row", err)
		}
		locked[id] = true
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewAppError(500, "error iterating locked product rows", err)
	}
	return locked, nil
}

// UpdateSale replaces the stored sale header by id. Line items are immutable
// and are not touched.
func (r *PgxSaleRepository) UpdateSale(ctx context.Context, sale domain.Sale) error {
	modelSale := mapping.ToModelSale(sale)
	query := `
		UPDATE sales
		SET customer_id = $2, customer_name = $3, customer_contact = $4,
		    payment_method = $5, payment_status = $6,
		    last_updated_at = $7, last_updated_by = $8
		WHERE sale_id = $1;
	`
	cmdTag, err := r.Pool.Exec(ctx, query,
		modelSale.SaleID,
		modelSale.CustomerID,
		modelSale.CustomerName,
		modelSale.CustomerContact,
		modelSale.PaymentMethod,
		modelSale.PaymentStatus,
		modelSale.LastUpdatedAt,
		modelSale.LastUpdatedBy,
	)
	if err != nil {
		return apperrors.NewAppError(500, "failed to update sale "+modelSale.SaleID, err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

// FindSaleByID retrieves a sale, with its line items, by its ID.
func (r *PgxSaleRepository) FindSaleByID(ctx context.Context, saleID string) (*domain.Sale, error) {
	query := `
		SELECT sale_id, sale_date, customer_id, customer_name, customer_contact,
		       subtotal, discount, total, payment_method, payment_status,
		       created_at, created_by, last_updated_at, last_updated_by
		FROM sales
		WHERE sale_id = $1;
	`
	var modelSale models.Sale
	err := r.Pool.QueryRow(ctx, query, saleID).Scan(
		&modelSale.SaleID,
		&modelSale.SaleDate,
		&modelSale.CustomerID,
		&modelSale.CustomerName,
		&modelSale.CustomerContact,
		&modelSale.Subtotal,
		&modelSale.Discount,
		&modelSale.Total,
		&modelSale.PaymentMethod,
		&modelSale.PaymentStatus,
		&modelSale.CreatedAt,
		&modelSale.CreatedBy,
		&modelSale.LastUpdatedAt,
		&modelSale.LastUpdatedBy,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, apperrors.NewAppError(500, "failed to find sale by ID "+saleID, err)
	}

	items, err := r.findSaleItems(ctx, []string{saleID})
	if err != nil {
		return nil, err
	}

	domainSale := mapping.ToDomainSale(modelSale, items[saleID])
	return &domainSale, nil
}

// findSaleItems loads the line items for the given sales, grouped by sale id.
func (r *PgxSaleRepository) findSaleItems(ctx context.Context, saleIDs []string) (map[string][]models.SaleItem, error) {
	if len(saleIDs) == 0 {
		return map[string][]models.SaleItem{}, nil
	}

	query := `
		SELECT sale_item_id, sale_id, product_id, name, unit_price, quantity
		FROM sale_items
		WHERE sale_id = ANY($1)
		ORDER BY sale_item_id;
	`
	rows, err := r.Pool.Query(ctx, query, saleIDs)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query sale items", err)
	}
	defer rows.Close()

	itemsBySale := make(map[string][]models.SaleItem, len(saleIDs))
	for rows.Next() {
		var item models.SaleItem
		err := rows.Scan(
			&item.SaleItemID,
			&item.SaleID,
			&item.ProductID,
			&item.Name,
			&item.UnitPrice,
			&item.Quantity,
		)
		if err != nil {
			return nil, apperrors.NewAppError(500, "failed to scan sale item row", err)
		}
		itemsBySale[item.SaleID] = append(itemsBySale[item.SaleID], item)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewAppError(500, "error iterating sale item rows", err)
	}
	return itemsBySale, nil
}

// ListSales retrieves a paginated list of sales using token-based pagination.
// It returns the sales, a token for the next page, and an error.
func (r *PgxSaleRepository) ListSales(ctx context.Context, limit int, nextToken *string) ([]domain.Sale, *string, error) {
	// Default limit handling
	if limit <= 0 {
		limit = 20
	}
	// We fetch one extra item to determine if there's a next page.
	fetchLimit := limit + 1

	baseQuery := `
		SELECT sale_id, sale_date, customer_id, customer_name, customer_contact,
		       subtotal, discount, total, payment_method, payment_status,
		       created_at, created_by, last_updated_at, last_updated_by
		FROM sales
	`
	// Ordering is crucial and must be stable
	orderByClause := `ORDER BY sale_date DESC, created_at DESC`

	var rows pgx.Rows
	var err error
	args := []interface{}{}

	if nextToken != nil && *nextToken != "" {
		// Decode the token to get the cursor values
		lastSaleDate, lastCreatedAt, decodeErr := pagination.DecodeToken(*nextToken)
		if decodeErr != nil {
			return nil, nil, apperrors.NewAppError(400, "invalid nextToken", decodeErr)
		}

		// Tuple comparison is concise and efficient in Postgres
		cursorClause := `WHERE (sale_date, created_at) < ($1, $2)`
		args = append(args, lastSaleDate, lastCreatedAt)

		query := baseQuery + " " + cursorClause + " " + orderByClause + " LIMIT $" + strconv.Itoa(len(args)+1) + ";"
		args = append(args, fetchLimit)
		rows, err = r.Pool.Query(ctx, query, args...)
	} else {
		// First page request (no token)
		query := baseQuery + " " + orderByClause + " LIMIT $" + strconv.Itoa(len(args)+1) + ";"
		args = append(args, fetchLimit)
		rows, err = r.Pool.Query(ctx, query, args...)
	}

	if err != nil {
		return nil, nil, apperrors.NewAppError(500, "failed to query sales", err)
	}
	defer rows.Close()

	sales := make([]models.Sale, 0, fetchLimit)
	for rows.Next() {
		var s models.Sale
		err := rows.Scan(
			&s.SaleID,
			&s.SaleDate,
			&s.CustomerID,
			&s.CustomerName,
			&s.CustomerContact,
			&s.Subtotal,
			&s.Discount,
			&s.Total,
			&s.PaymentMethod,
			&s.PaymentStatus,
			&s.CreatedAt,
			&s.CreatedBy,
			&s.LastUpdatedAt,
			&s.LastUpdatedBy,
		)
		if err != nil {
			return nil, nil, apperrors.NewAppError(500, "failed to scan sale row", err)
		}
		sales = append(sales, s)
	}
	if err := rows.Err(); err != nil {
		return nil, nil, apperrors.NewAppError(500, "error iterating sale rows", err)
	}

	// Determine the next token
	var nextTokenVal *string
	if len(sales) > limit {
		lastSale := sales[limit-1] // The actual last item of the current page
		token := pagination.EncodeToken(lastSale.SaleDate, lastSale.CreatedAt)
		nextTokenVal = &token
		sales = sales[:limit]
	}

	return r.withItems(ctx, sales, nextTokenVal)
}

// withItems attaches line items to the given sale page.
func (r *PgxSaleRepository) withItems(ctx context.Context, sales []models.Sale, nextToken *string) ([]domain.Sale, *string, error) {
	saleIDs := make([]string, len(sales))
	for i, s := range sales {
		saleIDs[i] = s.SaleID
	}

	itemsBySale, err := r.findSaleItems(ctx, saleIDs)
	if err != nil {
		return nil, nil, err
	}

	domainSales := make([]domain.Sale, len(sales))
	for i, s := range sales {
		domainSales[i] = mapping.ToDomainSale(s, itemsBySale[s.SaleID])
	}
	return domainSales, nextToken, nil
}

// ListAllSales retrieves the full sale history with line items, newest first.
// The ledger aggregation consumes this complete snapshot.
func (r *PgxSaleRepository) ListAllSales(ctx context.Context) ([]domain.Sale, error) {
	query := `
		SELECT sale_id, sale_date, customer_id, customer_name, customer_contact,
		       subtotal, discount, total, payment_method, payment_status,
		       created_at, created_by, last_updated_at, last_updated_by
		FROM sales
		ORDER BY sale_date DESC, created_at DESC;
	`
	rows, err := r.Pool.Query(ctx, query)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query all sales", err)
	}
	defer rows.Close()

	sales := []models.Sale{}
	for rows.Next() {
		var s models.Sale
		err := rows.Scan(
			&s.SaleID,
			&s.SaleDate,
			&s.CustomerID,
			&s.CustomerName,
			&s.CustomerContact,
			&s.Subtotal,
			&s.Discount,
			&s.Total,
			&s.PaymentMethod,
			&s.PaymentStatus,
			&s.CreatedAt,
			&s.CreatedBy,
			&s.LastUpdatedAt,
			&s.LastUpdatedBy,
		)
		if err != nil {
			return nil, apperrors.NewAppError(500, "failed to scan sale row", err)
		}
		sales = append(sales, s)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewAppError(500, "error iterating sale rows", err)
	}

	domainSales, _, err := r.withItems(ctx, sales, nil)
	return domainSales, err
}
