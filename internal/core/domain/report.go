package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// SalesSummary aggregates sales over a date range for the reports screen.
type SalesSummary struct {
	From          time.Time                         `json:"from"`
	To            time.Time                         `json:"to"`
	SaleCount     int64                             `json:"saleCount"`
	GrossAmount   decimal.Decimal                   `json:"grossAmount"` // sum of subtotals
	DiscountTotal decimal.Decimal                   `json:"discountTotal"`
	NetAmount     decimal.Decimal                   `json:"netAmount"` // sum of totals
	PendingAmount decimal.Decimal                   `json:"pendingAmount"`
	ByMethod      map[PaymentMethod]decimal.Decimal `json:"byMethod"`
}

// PurchaseSummary aggregates purchases over a date range.
type PurchaseSummary struct {
	From          time.Time       `json:"from"`
	To            time.Time       `json:"to"`
	PurchaseCount int64           `json:"purchaseCount"`
	TotalAmount   decimal.Decimal `json:"totalAmount"`
}

// InventoryValuation values the current stock at cost and at retail.
type InventoryValuation struct {
	ProductCount int64           `json:"productCount"`
	UnitsInStock int64           `json:"unitsInStock"`
	CostValue    decimal.Decimal `json:"costValue"`   // sum of stock * cost
	RetailValue  decimal.Decimal `json:"retailValue"` // sum of stock * price
}

// ProfitReport estimates margin over a date range: net sales less the cost
// of stocked goods sold. Manual/service lines carry no cost basis.
type ProfitReport struct {
	From        time.Time       `json:"from"`
	To          time.Time       `json:"to"`
	NetSales    decimal.Decimal `json:"netSales"`
	CostOfGoods decimal.Decimal `json:"costOfGoods"`
	GrossProfit decimal.Decimal `json:"grossProfit"`
}
