package dto

import (
	"time"

	"github.com/arprinters/pos_backend/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateSaleItemRequest is one cart line submitted at checkout. ProductID is
// nil for manual/service lines typed straight into the entry terminal.
type CreateSaleItemRequest struct {
	ProductID *string         `json:"productID"`
	Name      string          `json:"name" binding:"required"`
	UnitPrice decimal.Decimal `json:"unitPrice" binding:"required"`
	Quantity  int64           `json:"quantity" binding:"required,gt=0"`
}

// CreateSaleRequest defines the data needed to commit a checkout.
type CreateSaleRequest struct {
	CustomerID      *string                 `json:"customerID"` // optional, required for CREDIT
	CustomerName    string                  `json:"customerName"`
	CustomerContact string                  `json:"customerContact"`
	Items           []CreateSaleItemRequest `json:"items"`
	Discount        decimal.Decimal         `json:"discount"`
	PaymentMethod   domain.PaymentMethod    `json:"paymentMethod" binding:"required,oneof=CASH CARD ONLINE CREDIT"`
}

// SaleItemResponse defines the data returned for one sale line.
type SaleItemResponse struct {
	SaleItemID string          `json:"saleItemID"`
	ProductID  *string         `json:"productID"`
	Name       string          `json:"name"`
	UnitPrice  decimal.Decimal `json:"unitPrice"`
	Quantity   int64           `json:"quantity"`
	LineTotal  decimal.Decimal `json:"lineTotal"`
}

// SaleResponse defines the data returned for a sale.
type SaleResponse struct {
	SaleID          string               `json:"saleID"`
	SaleDate        time.Time            `json:"saleDate"`
	CustomerID      *string              `json:"customerID"`
	CustomerName    string               `json:"customerName"`
	CustomerContact string               `json:"customerContact"`
	Items           []SaleItemResponse   `json:"items"`
	Subtotal        decimal.Decimal      `json:"subtotal"`
	Discount        decimal.Decimal      `json:"discount"`
	Total           decimal.Decimal      `json:"total"`
	PaymentMethod   domain.PaymentMethod `json:"paymentMethod"`
	PaymentStatus   domain.PaymentStatus `json:"paymentStatus"`
	CreatedAt       time.Time            `json:"createdAt"`
}

// ListSalesParams defines query parameters for listing sales.
type ListSalesParams struct {
	Limit     int     `form:"limit,default=20"`
	NextToken *string `form:"nextToken"`
}

// ListSalesResponse wraps a page of sales with the cursor for the next page.
type ListSalesResponse struct {
	Sales     []SaleResponse `json:"sales"`
	NextToken *string        `json:"nextToken,omitempty"`
}

// ToSaleResponse converts a domain.Sale to a SaleResponse DTO.
func ToSaleResponse(sale *domain.Sale) SaleResponse {
	items := make([]SaleItemResponse, len(sale.Items))
	for i, item := range sale.Items {
		items[i] = SaleItemResponse{
			SaleItemID: item.SaleItemID,
			ProductID:  item.ProductID,
			Name:       item.Name,
			UnitPrice:  item.UnitPrice,
			Quantity:   item.Quantity,
			LineTotal:  item.LineTotal(),
		}
	}
	return SaleResponse{
		SaleID:          sale.SaleID,
		SaleDate:        sale.SaleDate,
		CustomerID:      sale.CustomerID,
		CustomerName:    sale.CustomerName,
		CustomerContact: sale.CustomerContact,
		Items:           items,
		Subtotal:        sale.Subtotal,
		Discount:        sale.Discount,
		Total:           sale.Total,
		PaymentMethod:   sale.PaymentMethod,
		PaymentStatus:   sale.PaymentStatus,
		CreatedAt:       sale.CreatedAt,
	}
}

// ToListSalesResponse converts a page of domain sales to the list DTO.
func ToListSalesResponse(sales []domain.Sale, nextToken *string) *ListSalesResponse {
	responses := make([]SaleResponse, len(sales))
	for i, sale := range sales {
		responses[i] = ToSaleResponse(&sale)
	}
	return &ListSalesResponse{
		Sales:     responses,
		NextToken: nextToken,
	}
}
