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

type PgxPurchaseRepository struct {
	BaseRepository
}

// newPgxPurchaseRepository creates a new repository for purchase data.
func newPgxPurchaseRepository(pool PgxPool) portsrepo.PurchaseRepositoryWithTx {
	return &PgxPurchaseRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

// Ensure PgxPurchaseRepository implements portsrepo.PurchaseRepositoryWithTx
var _ portsrepo.PurchaseRepositoryWithTx = (*PgxPurchaseRepository)(nil)

// SavePurchase saves a purchase, its lines, the stock increments and the cost
// overwrites within a DB transaction. The last line for a product wins the
// cost overwrite, matching the order the lines were entered.
func (r *PgxPurchaseRepository) SavePurchase(ctx context.Context, purchase domain.Purchase) error {
	tx, err := r.Begin(ctx)
	if err != nil {
		return apperrors.NewAppError(500, "failed to begin transaction", err)
	}
	// Defer rollback in case of error
	defer r.Rollback(ctx, tx) // Will be ignored if transaction is committed successfully

	// 1. Insert the purchase header using the transaction tx
	modelPurchase := mapping.ToModelPurchase(purchase)
	purchaseQuery := `
		INSERT INTO purchases (
			purchase_id, purchase_date, supplier_name, total,
			created_at, created_by, last_updated_at, last_updated_by
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8);
	`
	_, err = tx.Exec(ctx, purchaseQuery,
		modelPurchase.PurchaseID,
		modelPurchase.PurchaseDate,
		modelPurchase.SupplierName,
		modelPurchase.Total,
		modelPurchase.CreatedAt,
		modelPurchase.CreatedBy,
		modelPurchase.LastUpdatedAt,
		modelPurchase.LastUpdatedBy,
	)
	if err != nil {
		return apperrors.NewAppError(500, "failed to insert purchase "+modelPurchase.PurchaseID, err)
	}

	// 2. Lock the restocked products
	productIDs := make([]string, 0, len(purchase.Items))
	seen := make(map[string]bool, len(purchase.Items))
	for _, item := range purchase.Items {
		if !seen[item.ProductID] {
			seen[item.ProductID] = true
			productIDs = append(productIDs, item.ProductID)
		}
	}
	locked, err := lockProducts(ctx, tx, productIDs)
	if err != nil {
		return err
	}
	for _, id := range productIDs {
		if !locked[id] {
			return apperrors.NewAppError(400, "purchase references unknown product "+id, apperrors.ErrNotFound)
		}
	}

	// 3. Insert the lines and apply stock increment plus cost overwrite per line
	batch := &pgx.Batch{}
	itemQuery := `
		INSERT INTO purchase_items (purchase_item_id, purchase_id, product_id, name, unit_cost, quantity)
		VALUES ($1, $2, $3, $4, $5, $6);
	`
	stockQuery := `
		UPDATE products
		SET stock = stock + $1, cost = $2, last_updated_at = $3, last_updated_by = $4
		WHERE product_id = $5;
	`
	for _, item := range purchase.Items {
		modelItem := mapping.ToModelPurchaseItem(item)
		batch.Queue(itemQuery,
			modelItem.PurchaseItemID,
			modelItem.PurchaseID,
			modelItem.ProductID,
			modelItem.Name,
			modelItem.UnitCost,
			modelItem.Quantity,
		)
		batch.Queue(stockQuery,
			modelItem.Quantity,
			modelItem.UnitCost,
			purchase.LastUpdatedAt,
			purchase.LastUpdatedBy,
			modelItem.ProductID,
		)
	}

	// 4. Send the batch
	br := tx.SendBatch(ctx, batch)
	err = br.Close() // Important: Close the batch results to check for errors in each command
	if err != nil {
		return apperrors.NewAppError(500, "failed to execute item batch for purchase "+modelPurchase.PurchaseID, err)
	}

	// If all inserts/updates were successful, commit the transaction
	if err := r.Commit(ctx, tx); err != nil {
		return apperrors.NewAppError(500, "failed to commit transaction for purchase "+modelPurchase.PurchaseID, err)
	}

	return nil
}

// FindPurchaseByID retrieves a purchase, with its lines, by its ID.
func (r *PgxPurchaseRepository) FindPurchaseByID(ctx context.Context, purchaseID string) (*domain.Purchase, error) {
	query := `
		SELECT purchase_id, purchase_date, supplier_name, total,
		       created_at, created_by, last_updated_at, last_updated_by
		FROM purchases
		WHERE purchase_id = $1;
	`
	var modelPurchase models.Purchase
	err := r.Pool.QueryRow(ctx, query, purchaseID).Scan(
		&modelPurchase.PurchaseID,
		&modelPurchase.PurchaseDate,
		&modelPurchase.SupplierName,
		&modelPurchase.Total,
		&modelPurchase.CreatedAt,
		&modelPurchase.CreatedBy,
		&modelPurchase.LastUpdatedAt,
		&modelPurchase.LastUpdatedBy,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, apperrors.NewAppError(500, "failed to find purchase by ID "+purchaseID, err)
	}

	itemsByPurchase, err := r.findPurchaseItems(ctx, []string{purchaseID})
	if err != nil {
		return nil, err
	}

	domainPurchase := mapping.ToDomainPurchase(modelPurchase, itemsByPurchase[purchaseID])
	return &domainPurchase, nil
}

// findPurchaseItems loads the lines for the given purchases, grouped by
// purchase id.
func (r *PgxPurchaseRepository) findPurchaseItems(ctx context.Context, purchaseIDs []string) (map[string][]models.PurchaseItem, error) {
	if len(purchaseIDs) == 0 {
		return map[string][]models.PurchaseItem{}, nil
	}

	query := `
		SELECT purchase_item_id, purchase_id, product_id, name, unit_cost, quantity
		FROM purchase_items
		WHERE purchase_id = ANY($1)
		ORDER BY purchase_item_id;
	`
	rows, err := r.Pool.Query(ctx, query, purchaseIDs)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query purchase items", err)
	}
	defer rows.Close()

	itemsByPurchase := make(map[string][]models.PurchaseItem, len(purchaseIDs))
	for rows.Next() {
		var item models.PurchaseItem
		err := rows.Scan(
			&item.PurchaseItemID,
			&item.PurchaseID,
			&item.ProductID,
			&item.Name,
			&item.UnitCost,
			&item.Quantity,
		)
		if err != nil {
			return nil, apperrors.NewAppError(500, "failed to scan purchase item row", err)
		}
		itemsByPurchase[item.PurchaseID] = append(itemsByPurchase[item.PurchaseID], item)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewAppError(500, "error iterating purchase item rows", err)
	}
	return itemsByPurchase, nil
}

// ListPurchases retrieves the full purchase history, newest first.
func (r *PgxPurchaseRepository) ListPurchases(ctx context.Context) ([]domain.Purchase, error) {
	query := `
		SELECT purchase_id, purchase_date, supplier_name, total,
		       created_at, created_by, last_updated_at, last_updated_by
		FROM purchases
		ORDER BY purchase_date DESC, created_at DESC;
	`
	rows, err := r.Pool.Query(ctx, query)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query purchases", err)
	}
	defer rows.Close()

	purchases := []models.Purchase{}
	for rows.Next() {
		var p models.Purchase
		err := rows.Scan(
			&p.PurchaseID,
			&p.PurchaseDate,
			&p.SupplierName,
			&p.Total,
			&p.CreatedAt,
			&p.CreatedBy,
			&p.LastUpdatedAt,
			&p.LastUpdatedBy,
		)
		if err != nil {
			return nil, apperrors.NewAppError(500, "failed to scan purchase row", err)
		}
		purchases = append(purchases, p)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewAppError(500, "error iterating purchase rows", err)
	}

	purchaseIDs := make([]string, len(purchases))
	for i, p := range purchases {
		purchaseIDs[i] = p.PurchaseID
	}
	itemsByPurchase, err := r.findPurchaseItems(ctx, purchaseIDs)
	if err != nil {
		return nil, err
	}

	domainPurchases := make([]domain.Purchase, len(purchases))
	for i, p := range purchases {
		domainPurchases[i] = mapping.ToDomainPurchase(p, itemsByPurchase[p.PurchaseID])
	}
	return domainPurchases, nil
}
