package domain

import (
	"github.com/shopspring/decimal"
)

// Product is a stocked catalog item. Stock is mutated only by sale and
// purchase recording; nothing stops it going negative.
type Product struct {
	ProductID     string          `json:"productID"`
	Name          string          `json:"name"`
	Category      string          `json:"category"`
	Price         decimal.Decimal `json:"price"` // selling price per unit
	Cost          decimal.Decimal `json:"cost"`  // last purchase cost per unit
	Stock         int64           `json:"stock"`
	MinStockLevel int64           `json:"minStockLevel"`
	AuditFields
}

// IsLowStock reports whether stock has reached the reorder threshold.
func (p Product) IsLowStock() bool {
	return p.Stock <= p.MinStockLevel
}
