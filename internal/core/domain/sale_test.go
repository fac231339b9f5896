package domain_test

import (
	"testing"

	"github.com/arprinters/pos_backend/internal/core/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func stringPtr(s string) *string {
	return &s
}

func TestSaleItem_LineTotal(t *testing.T) {
	item := domain.SaleItem{
		Name:      "Flyer Print",
		UnitPrice: decimal.NewFromInt(500),
		Quantity:  4,
	}
	assert.True(t, decimal.NewFromInt(2000).Equal(item.LineTotal()))
}

func TestSale_ItemsSubtotal(t *testing.T) {
	sale := domain.Sale{
		Items: []domain.SaleItem{
			{Name: "Business Cards", UnitPrice: decimal.NewFromInt(1200), Quantity: 1},
			{Name: "Lamination", UnitPrice: decimal.NewFromInt(150), Quantity: 3},
		},
	}
	assert.True(t, decimal.NewFromInt(1650).Equal(sale.ItemsSubtotal()))
}

func TestSale_MatchesCustomer(t *testing.T) {
	customer := domain.Customer{
		CustomerID: "cust-1",
		Name:       "Kamal",
		Phone:      "0771234567",
	}

	tests := []struct {
		name string
		sale domain.Sale
		want bool
	}{
		{
			name: "matches by linked id",
			sale: domain.Sale{CustomerID: stringPtr("cust-1"), CustomerName: "someone else"},
			want: true,
		},
		{
			name: "matches by name and phone fallback",
			sale: domain.Sale{CustomerName: "Kamal", CustomerContact: "0771234567"},
			want: true,
		},
		{
			name: "name alone is not enough",
			sale: domain.Sale{CustomerName: "Kamal", CustomerContact: "0000000000"},
			want: false,
		},
		{
			name: "different linked id does not fall through to name match when contact differs",
			sale: domain.Sale{CustomerID: stringPtr("cust-2"), CustomerName: "Nimal", CustomerContact: "071"},
			want: false,
		},
		{
			name: "walk-in sale with no identity",
			sale: domain.Sale{CustomerName: "Walk-in Customer"},
			want: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.sale.MatchesCustomer(customer))
		})
	}
}
