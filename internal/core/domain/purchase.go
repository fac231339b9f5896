package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// PurchaseItem is one restocked line. UnitCost becomes the product's new
// cost basis (last-purchase-cost policy).
type PurchaseItem struct {
	PurchaseItemID string          `json:"purchaseItemID"`
	PurchaseID     string          `json:"purchaseID"`
	ProductID      string          `json:"productID"`
	Name           string          `json:"name"`
	UnitCost       decimal.Decimal `json:"unitCost"`
	Quantity       int64           `json:"quantity"`
}

// LineTotal returns unit cost times quantity for this line.
func (i PurchaseItem) LineTotal() decimal.Decimal {
	return i.UnitCost.Mul(decimal.NewFromInt(i.Quantity))
}

// Purchase records a supplier restock. Committed atomically with the stock
// increment and cost overwrite of every purchased product.
type Purchase struct {
	PurchaseID   string          `json:"purchaseID"`
	PurchaseDate time.Time       `json:"purchaseDate"`
	SupplierName string          `json:"supplierName"`
	Items        []PurchaseItem  `json:"items"`
	Total        decimal.Decimal `json:"total"`
	AuditFields
}
