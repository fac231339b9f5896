package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Purchase is the purchases table row. Items live in purchase_items.
type Purchase struct {
	PurchaseID   string          `db:"purchase_id"`
	PurchaseDate time.Time       `db:"purchase_date"`
	SupplierName string          `db:"supplier_name"`
	Total        decimal.Decimal `db:"total"`
	AuditFields
}

// PurchaseItem is the purchase_items table row.
type PurchaseItem struct {
	PurchaseItemID string          `db:"purchase_item_id"`
	PurchaseID     string          `db:"purchase_id"`
	ProductID      string          `db:"product_id"`
	Name           string          `db:"name"`
	UnitCost       decimal.Decimal `db:"unit_cost"`
	Quantity       int64           `db:"quantity"`
}
