package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// PaymentMethod identifies how a sale was (or will be) paid.
type PaymentMethod string

const (
	PaymentMethodCash   PaymentMethod = "CASH"
	PaymentMethodCard   PaymentMethod = "CARD"
	PaymentMethodOnline PaymentMethod = "ONLINE"
	PaymentMethodCredit PaymentMethod = "CREDIT"
)

// PaymentStatus tracks whether a sale has been paid for.
type PaymentStatus string

const (
	PaymentStatusPaid    PaymentStatus = "PAID"
	PaymentStatusPending PaymentStatus = "PENDING"
)

// SaleItem is one line of a sale. ProductID is nil for manual/service lines
// that have no backing catalog product; those lines never touch stock.
type SaleItem struct {
	SaleItemID string          `json:"saleItemID"`
	SaleID     string          `json:"saleID"`
	ProductID  *string         `json:"productID"`
	Name       string          `json:"name"`
	UnitPrice  decimal.Decimal `json:"unitPrice"`
	Quantity   int64           `json:"quantity"`
}

// LineTotal returns unit price times quantity for this line.
func (i SaleItem) LineTotal() decimal.Decimal {
	return i.UnitPrice.Mul(decimal.NewFromInt(i.Quantity))
}

// Sale is a committed checkout. Customer identity is denormalized at sale
// time: CustomerID links a directory record when one was selected, while
// CustomerName/CustomerContact always capture what was on the invoice.
// Amounts and items are immutable after creation; only the payment fields
// change, through settlement.
type Sale struct {
	SaleID          string          `json:"saleID"`
	SaleDate        time.Time       `json:"saleDate"`
	CustomerID      *string         `json:"customerID"` // nil for walk-in sales
	CustomerName    string          `json:"customerName"`
	CustomerContact string          `json:"customerContact"`
	Items           []SaleItem      `json:"items"`
	Subtotal        decimal.Decimal `json:"subtotal"`
	Discount        decimal.Decimal `json:"discount"`
	Total           decimal.Decimal `json:"total"`
	PaymentMethod   PaymentMethod   `json:"paymentMethod"`
	PaymentStatus   PaymentStatus   `json:"paymentStatus"`
	AuditFields
}

// ItemsSubtotal sums the line totals of all items.
func (s Sale) ItemsSubtotal() decimal.Decimal {
	sum := decimal.Zero
	for _, item := range s.Items {
		sum = sum.Add(item.LineTotal())
	}
	return sum
}

// MatchesCustomer reports whether this sale belongs to the given customer.
// A sale matches on the linked directory id, or, for sales recorded before
// the customer was linked, on the captured name plus phone pair.
func (s Sale) MatchesCustomer(c Customer) bool {
	if s.CustomerID != nil && *s.CustomerID == c.CustomerID {
		return true
	}
	return s.CustomerName == c.Name && s.CustomerContact == c.Phone
}
