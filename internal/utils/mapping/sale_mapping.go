package mapping

import (
	"github.com/arprinters/pos_backend/internal/core/domain"
	"github.com/arprinters/pos_backend/internal/models"
)

// ToModelSale converts a domain Sale to its sales table row. Items are
// mapped separately via ToModelSaleItem.
func ToModelSale(d domain.Sale) models.Sale {
	return models.Sale{
		SaleID:          d.SaleID,
		SaleDate:        d.SaleDate,
		CustomerID:      d.CustomerID,
		CustomerName:    d.CustomerName,
		CustomerContact: d.CustomerContact,
		Subtotal:        d.Subtotal,
		Discount:        d.Discount,
		Total:           d.Total,
		PaymentMethod:   models.PaymentMethod(d.PaymentMethod),
		PaymentStatus:   models.PaymentStatus(d.PaymentStatus),
		AuditFields:     ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainSale converts a sales row plus its item rows to a domain Sale.
func ToDomainSale(m models.Sale, items []models.SaleItem) domain.Sale {
	domainItems := make([]domain.SaleItem, len(items))
	for i, item := range items {
		domainItems[i] = ToDomainSaleItem(item)
	}
	return domain.Sale{
		SaleID:          m.SaleID,
		SaleDate:        m.SaleDate,
		CustomerID:      m.CustomerID,
		CustomerName:    m.CustomerName,
		CustomerContact: m.CustomerContact,
		Items:           domainItems,
		Subtotal:        m.Subtotal,
		Discount:        m.Discount,
		Total:           m.Total,
		PaymentMethod:   domain.PaymentMethod(m.PaymentMethod),
		PaymentStatus:   domain.PaymentStatus(m.PaymentStatus),
		AuditFields:     ToDomainAuditFields(m.AuditFields),
	}
}

// ToModelSaleItem converts a domain SaleItem to its sale_items table row.
func ToModelSaleItem(d domain.SaleItem) models.SaleItem {
	return models.SaleItem{
		SaleItemID: d.SaleItemID,
		SaleID:     d.SaleID,
		ProductID:  d.ProductID,
		Name:       d.Name,
		UnitPrice:  d.UnitPrice,
		Quantity:   d.Quantity,
	}
}

// ToDomainSaleItem converts a sale_items row to a domain SaleItem.
func ToDomainSaleItem(m models.SaleItem) domain.SaleItem {
	return domain.SaleItem{
		SaleItemID: m.SaleItemID,
		SaleID:     m.SaleID,
		ProductID:  m.ProductID,
		Name:       m.Name,
		UnitPrice:  m.UnitPrice,
		Quantity:   m.Quantity,
	}
}
