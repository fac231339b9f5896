package models

import (
	"github.com/shopspring/decimal"
)

// Product is the products table row.
type Product struct {
	ProductID     string          `db:"product_id"`
	Name          string          `db:"name"`
	Category      string          `db:"category"`
	Price         decimal.Decimal `db:"price"`
	Cost          decimal.Decimal `db:"cost"`
	Stock         int64           `db:"stock"`
	MinStockLevel int64           `db:"min_stock_level"`
	AuditFields
}
