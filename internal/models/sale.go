package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// PaymentMethod mirrors domain.PaymentMethod for persistence.
type PaymentMethod string

// PaymentStatus mirrors domain.PaymentStatus for persistence.
type PaymentStatus string

// Sale is the sales table row. Items live in sale_items.
type Sale struct {
	SaleID          string          `db:"sale_id"`
	SaleDate        time.Time       `db:"sale_date"`
	CustomerID      *string         `db:"customer_id"` // nullable FK, not enforced against deletes
	CustomerName    string          `db:"customer_name"`
	CustomerContact string          `db:"customer_contact"`
	Subtotal        decimal.Decimal `db:"subtotal"`
	Discount        decimal.Decimal `db:"discount"`
	Total           decimal.Decimal `db:"total"`
	PaymentMethod   PaymentMethod   `db:"payment_method"`
	PaymentStatus   PaymentStatus   `db:"payment_status"`
	AuditFields
}

// SaleItem is the sale_items table row.
type SaleItem struct {
	SaleItemID string          `db:"sale_item_id"`
	SaleID     string          `db:"sale_id"`
	ProductID  *string         `db:"product_id"` // NULL for manual/service lines
	Name       string          `db:"name"`
	UnitPrice  decimal.Decimal `db:"unit_price"`
	Quantity   int64           `db:"quantity"`
}
