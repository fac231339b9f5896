package pgsql

import (
	"context"
	"fmt"
	"time"

	"github.com/arprinters/pos_backend/internal/core/domain"
	portsrepo "github.com/arprinters/pos_backend/internal/core/ports/repositories"
	"github.com/shopspring/decimal"
)

// reportingRepository implements the ReportingRepository interface
type reportingRepository struct {
	BaseRepository
}

// newReportingRepository creates a new reporting repository
func newReportingRepository(db PgxPool) portsrepo.ReportingRepository {
	return &reportingRepository{
		BaseRepository: BaseRepository{Pool: db},
	}
}

// GetSalesSummaryData aggregates sales over a date range, including the
// per-method breakdown shown on the reports screen.
func (r *reportingRepository) GetSalesSummaryData(ctx context.Context, from, to time.Time) (*domain.SalesSummary, error) {
	query := `
		SELECT
			COUNT(*) AS sale_count,
			COALESCE(SUM(subtotal), 0) AS gross_amount,
			COALESCE(SUM(discount), 0) AS discount_total,
			COALESCE(SUM(total), 0) AS net_amount,
			COALESCE(SUM(CASE WHEN payment_status = 'PENDING' THEN total ELSE 0 END), 0) AS pending_amount
		FROM sales
		WHERE sale_date BETWEEN $1 AND $2
	`

	summary := &domain.SalesSummary{
		From:     from,
		To:       to,
		ByMethod: make(map[domain.PaymentMethod]decimal.Decimal),
	}
	err := r.Pool.QueryRow(ctx, query, from, to).Scan(
		&summary.SaleCount,
		&summary.GrossAmount,
		&summary.DiscountTotal,
		&summary.NetAmount,
		&summary.PendingAmount,
	)
	if err != nil {
		return nil, fmt.Errorf("error querying sales summary data: %w", err)
	}

	methodQuery := `
		SELECT payment_method, COALESCE(SUM(total), 0) AS amount
		FROM sales
		WHERE sale_date BETWEEN $1 AND $2
		GROUP BY payment_method
	`
	rows, err := r.Pool.Query(ctx, methodQuery, from, to)
	if err != nil {
		return nil, fmt.Errorf("error querying sales by method: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var method string
		var amount decimal.Decimal
		if err := rows.Scan(&method, &amount); err != nil {
			return nil, fmt.Errorf("error scanning sales by method row: %w", err)
		}
		summary.ByMethod[domain.PaymentMethod(method)] = amount
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating sales by method rows: %w", err)
	}

	return summary, nil
}

// GetPurchaseSummaryData aggregates purchases over a date range.
func (r *reportingRepository) GetPurchaseSummaryData(ctx context.Context, from, to time.Time) (*domain.PurchaseSummary, error) {
	query := `
		SELECT
			COUNT(*) AS purchase_count,
			COALESCE(SUM(total), 0) AS total_amount
		FROM purchases
		WHERE purchase_date BETWEEN $1 AND $2
	`

	summary := &domain.PurchaseSummary{From: from, To: to}
	err := r.Pool.QueryRow(ctx, query, from, to).Scan(
		&summary.PurchaseCount,
		&summary.TotalAmount,
	)
	if err != nil {
		return nil, fmt.Errorf("error querying purchase summary data: %w", err)
	}

	return summary, nil
}

// GetInventoryValuationData values the current stock at cost and at retail.
// Negative stock rows are excluded; oversold lines carry no sellable value.
func (r *reportingRepository) GetInventoryValuationData(ctx context.Context) (*domain.InventoryValuation, error) {
	query := `
		SELECT
			COUNT(*) AS product_count,
			COALESCE(SUM(stock), 0) AS units_in_stock,
			COALESCE(SUM(stock * cost), 0) AS cost_value,
			COALESCE(SUM(stock * price), 0) AS retail_value
		FROM products
		WHERE stock > 0
	`

	valuation := &domain.InventoryValuation{}
	err := r.Pool.QueryRow(ctx, query).Scan(
		&valuation.ProductCount,
		&valuation.UnitsInStock,
		&valuation.CostValue,
		&valuation.RetailValue,
	)
	if err != nil {
		return nil, fmt.Errorf("error querying inventory valuation data: %w", err)
	}

	return valuation, nil
}

// GetProfitData computes net sales and the cost of stocked goods sold over a
// date range. Manual/service lines have no backing product and therefore no
// cost basis.
func (r *reportingRepository) GetProfitData(ctx context.Context, from, to time.Time) (*domain.ProfitReport, error) {
	salesQuery := `
		SELECT COALESCE(SUM(total), 0) AS net_sales
		FROM sales
		WHERE sale_date BETWEEN $1 AND $2
	`
	report := &domain.ProfitReport{From: from, To: to}
	err := r.Pool.QueryRow(ctx, salesQuery, from, to).Scan(&report.NetSales)
	if err != nil {
		return nil, fmt.Errorf("error querying net sales: %w", err)
	}

	// Cost of goods uses today's product cost; the sale line does not record
	// the cost at sale time.
	cogsQuery := `
		SELECT COALESCE(SUM(si.quantity * p.cost), 0) AS cost_of_goods
		FROM sale_items si
		JOIN sales s ON si.sale_id = s.sale_id
		JOIN products p ON si.product_id = p.product_id
		WHERE s.sale_date BETWEEN $1 AND $2
	`
	err = r.Pool.QueryRow(ctx, cogsQuery, from, to).Scan(&report.CostOfGoods)
	if err != nil {
		return nil, fmt.Errorf("error querying cost of goods: %w", err)
	}

	report.GrossProfit = report.NetSales.Sub(report.CostOfGoods)
	return report, nil
}
