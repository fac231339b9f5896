package mapping

import (
	"github.com/arprinters/pos_backend/internal/core/domain"
	"github.com/arprinters/pos_backend/internal/models"
)

// ToModelPurchase converts a domain Purchase to its purchases table row.
func ToModelPurchase(d domain.Purchase) models.Purchase {
	return models.Purchase{
		PurchaseID:   d.PurchaseID,
		PurchaseDate: d.PurchaseDate,
		SupplierName: d.SupplierName,
		Total:        d.Total,
		AuditFields:  ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainPurchase converts a purchases row plus its item rows to a domain Purchase.
func ToDomainPurchase(m models.Purchase, items []models.PurchaseItem) domain.Purchase {
	domainItems := make([]domain.PurchaseItem, len(items))
	for i, item := range items {
		domainItems[i] = ToDomainPurchaseItem(item)
	}
	return domain.Purchase{
		PurchaseID:   m.PurchaseID,
		PurchaseDate: m.PurchaseDate,
		SupplierName: m.SupplierName,
		Items:        domainItems,
		Total:        m.Total,
		AuditFields:  ToDomainAuditFields(m.AuditFields),
	}
}

// ToModelPurchaseItem converts a domain PurchaseItem to its table row.
func ToModelPurchaseItem(d domain.PurchaseItem) models.PurchaseItem {
	return models.PurchaseItem{
		PurchaseItemID: d.PurchaseItemID,
		PurchaseID:     d.PurchaseID,
		ProductID:      d.ProductID,
		Name:           d.Name,
		UnitCost:       d.UnitCost,
		Quantity:       d.Quantity,
	}
}

// ToDomainPurchaseItem converts a purchase_items row to a domain PurchaseItem.
func ToDomainPurchaseItem(m models.PurchaseItem) domain.PurchaseItem {
	return domain.PurchaseItem{
		PurchaseItemID: m.PurchaseItemID,
		PurchaseID:     m.PurchaseID,
		ProductID:      m.ProductID,
		Name:           m.Name,
		UnitCost:       m.UnitCost,
		Quantity:       m.Quantity,
	}
}
