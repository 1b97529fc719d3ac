package response

import (
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	productResponse "github.com/aryasetya/storefront/catalog/pkg/response"
)

func item(price string, quantity int32) CartItemWithProduct {
	return CartItemWithProduct{
		CartItem: CartItem{
			ID:        uuid.New(),
			SessionID: "session",
			ProductID: uuid.New(),
			Quantity:  quantity,
		},
		Product: &productResponse.Product{
			ID:    uuid.New(),
			Price: decimal.RequireFromString(price),
		},
	}
}

func danglingItem(quantity int32) CartItemWithProduct {
	return CartItemWithProduct{
		CartItem: CartItem{
			ID:        uuid.New(),
			SessionID: "session",
			ProductID: uuid.New(),
			Quantity:  quantity,
		},
	}
}

func TestSummarize(t *testing.T) {
	tests := []struct {
		name              string
		items             []CartItemWithProduct
		expectedTotal     string
		expectedItemCount int32
	}{
		{
			name:              "empty cart",
			items:             nil,
			expectedTotal:     "0",
			expectedItemCount: 0,
		},
		{
			name:              "single item",
			items:             []CartItemWithProduct{item("10.00", 2)},
			expectedTotal:     "20.00",
			expectedItemCount: 2,
		},
		{
			name: "multiple items",
			items: []CartItemWithProduct{
				item("10.00", 2),
				item("5.50", 3),
			},
			expectedTotal:     "36.50",
			expectedItemCount: 5,
		},
		{
			name: "dangling item contributes nothing",
			items: []CartItemWithProduct{
				item("10.00", 2),
				danglingItem(4),
			},
			expectedTotal:     "20.00",
			expectedItemCount: 2,
		},
		{
			name:              "only dangling items",
			items:             []CartItemWithProduct{danglingItem(1), danglingItem(9)},
			expectedTotal:     "0",
			expectedItemCount: 0,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cart := Summarize(tt.items)

			assert.True(
				t,
				cart.Total.Equal(decimal.RequireFromString(tt.expectedTotal)),
				"expected total=%s got=%s",
				tt.expectedTotal,
				cart.Total,
			)
			assert.EqualValues(t, tt.expectedItemCount, cart.ItemCount)
			assert.Len(t, cart.Items, len(tt.items))
		})
	}
}
