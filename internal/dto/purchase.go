package dto

import (
	"time"

	"github.com/arprinters/pos_backend/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreatePurchaseItemRequest is one restocked line.
type CreatePurchaseItemRequest struct {
	ProductID string          `json:"productID" binding:"required"`
	UnitCost  decimal.Decimal `json:"unitCost" binding:"required"`
	Quantity  int64           `json:"quantity" binding:"required,gt=0"`
}

// CreatePurchaseRequest defines the data needed to record a restock.
type CreatePurchaseRequest struct {
	SupplierName string                      `json:"supplierName"`
	Items        []CreatePurchaseItemRequest `json:"items" binding:"required,min=1,dive"`
}

// PurchaseItemResponse defines the data returned for one purchase line.
type PurchaseItemResponse struct {
	PurchaseItemID string          `json:"purchaseItemID"`
	ProductID      string          `json:"productID"`
	Name           string          `json:"name"`
	UnitCost       decimal.Decimal `json:"unitCost"`
	Quantity       int64           `json:"quantity"`
	LineTotal      decimal.Decimal `json:"lineTotal"`
}

// PurchaseResponse defines the data returned for a purchase.
type PurchaseResponse struct {
	PurchaseID   string                 `json:"purchaseID"`
	PurchaseDate time.Time              `json:"purchaseDate"`
	SupplierName string                 `json:"supplierName"`
	Items        []PurchaseItemResponse `json:"items"`
	Total        decimal.Decimal        `json:"total"`
}

// ListPurchasesResponse wraps the purchase history.
type ListPurchasesResponse struct {
	Purchases []PurchaseResponse `json:"purchases"`
}

// ToPurchaseResponse converts a domain.Purchase to a PurchaseResponse DTO.
func ToPurchaseResponse(p *domain.Purchase) PurchaseResponse {
	items := make([]PurchaseItemResponse, len(p.Items))
	for i, item := range p.Items {
		items[i] = PurchaseItemResponse{
			PurchaseItemID: item.PurchaseItemID,
			ProductID:      item.ProductID,
			Name:           item.Name,
			UnitCost:       item.UnitCost,
			Quantity:       item.Quantity,
			LineTotal:      item.LineTotal(),
		}
	}
	return PurchaseResponse{
		PurchaseID:   p.PurchaseID,
		PurchaseDate: p.PurchaseDate,
		SupplierName: p.SupplierName,
		Items:        items,
		Total:        p.Total,
	}
}

// ToListPurchasesResponse converts a slice of domain purchases to the list DTO.
func ToListPurchasesResponse(purchases []domain.Purchase) ListPurchasesResponse {
	responses := make([]PurchaseResponse, len(purchases))
	for i, p := range purchases {
		responses[i] = ToPurchaseResponse(&p)
	}
	return ListPurchasesResponse{Purchases: responses}
}
