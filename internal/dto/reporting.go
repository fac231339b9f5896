package dto

import (
	"github.com/arprinters/pos_backend/internal/core/domain"
	"github.com/shopspring/decimal"
)

// SalesSummaryResponse is the date-ranged sales report.
type SalesSummaryResponse struct {
	FromDate      string                     `json:"fromDate"`
	ToDate        string                     `json:"toDate"`
	SaleCount     int64                      `json:"saleCount"`
	GrossAmount   decimal.Decimal            `json:"grossAmount"`
	DiscountTotal decimal.Decimal            `json:"discountTotal"`
	NetAmount     decimal.Decimal            `json:"netAmount"`
	PendingAmount decimal.Decimal            `json:"pendingAmount"`
	ByMethod      map[string]decimal.Decimal `json:"byMethod"`
}

// PurchaseSummaryResponse is the date-ranged purchases report.
type PurchaseSummaryResponse struct {
	FromDate      string          `json:"fromDate"`
	ToDate        string          `json:"toDate"`
	PurchaseCount int64           `json:"purchaseCount"`
	TotalAmount   decimal.Decimal `json:"totalAmount"`
}

// InventoryValuationResponse is the current stock valuation report.
type InventoryValuationResponse struct {
	ProductCount int64           `json:"productCount"`
	UnitsInStock int64           `json:"unitsInStock"`
	CostValue    decimal.Decimal `json:"costValue"`
	RetailValue  decimal.Decimal `json:"retailValue"`
}

// ProfitReportResponse is the date-ranged profit estimate.
type ProfitReportResponse struct {
	FromDate    string          `json:"fromDate"`
	ToDate      string          `json:"toDate"`
	NetSales    decimal.Decimal `json:"netSales"`
	CostOfGoods decimal.Decimal `json:"costOfGoods"`
	GrossProfit decimal.Decimal `json:"grossProfit"`
}

// ToSalesSummaryResponse converts a domain.SalesSummary to its DTO.
func ToSalesSummaryResponse(s *domain.SalesSummary) SalesSummaryResponse {
	byMethod := make(map[string]decimal.Decimal, len(s.ByMethod))
	for method, amount := range s.ByMethod {
		byMethod[string(method)] = amount
	}
	return SalesSummaryResponse{
		FromDate:      s.From.Format("2006-01-02"),
		ToDate:        s.To.Format("2006-01-02"),
		SaleCount:     s.SaleCount,
		GrossAmount:   s.GrossAmount,
		DiscountTotal: s.DiscountTotal,
		NetAmount:     s.NetAmount,
		PendingAmount: s.PendingAmount,
		ByMethod:      byMethod,
	}
}

// ToPurchaseSummaryResponse converts a domain.PurchaseSummary to its DTO.
func ToPurchaseSummaryResponse(s *domain.PurchaseSummary) PurchaseSummaryResponse {
	return PurchaseSummaryResponse{
		FromDate:      s.From.Format("2006-01-02"),
		ToDate:        s.To.Format("2006-01-02"),
		PurchaseCount: s.PurchaseCount,
		TotalAmount:   s.TotalAmount,
	}
}

// ToInventoryValuationResponse converts a domain.InventoryValuation to its DTO.
func ToInventoryValuationResponse(v *domain.InventoryValuation) InventoryValuationResponse {
	return InventoryValuationResponse{
		ProductCount: v.ProductCount,
		UnitsInStock: v.UnitsInStock,
		CostValue:    v.CostValue,
		RetailValue:  v.RetailValue,
	}
}

// ToProfitReportResponse converts a domain.ProfitReport to its DTO.
func ToProfitReportResponse(r *domain.ProfitReport) ProfitReportResponse {
	return ProfitReportResponse{
		FromDate:    r.From.Format("2006-01-02"),
		ToDate:      r.To.Format("2006-01-02"),
		NetSales:    r.NetSales,
		CostOfGoods: r.CostOfGoods,
		GrossProfit: r.GrossProfit,
	}
}
