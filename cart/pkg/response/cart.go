package response

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	productResponse "github.com/aryasetya/storefront/catalog/pkg/response"
)

type CartItem struct {
	ID        uuid.UUID `json:"id"`
	SessionID string    `json:"session_id"`
	ProductID uuid.UUID `json:"product_id"`
	Quantity  int32     `json:"quantity"`
	CreatedAt time.Time `json:"created_at"`
}

// CartItemWithProduct is the joined view of a cart row and its product. The
// product is nil when it has been deleted or deactivated since the item was
// added; such dangling items are kept in the list but ignored by pricing.
type CartItemWithProduct struct {
	CartItem
	Product *productResponse.Product `json:"product"`
}

type Cart struct {
	Items     []CartItemWithProduct `json:"items"`
	Total     decimal.Decimal       `json:"total"`
	ItemCount int32                 `json:"item_count"`
}

// Summarize prices a cart from the products' current prices. Line total is
// unit price times quantity; items without a resolved product contribute
// nothing to either the total or the item count.
func Summarize(items []CartItemWithProduct) Cart {
	total := decimal.Zero
	itemCount := int32(0)
	for _, item := range items {
		if item.Product == nil {
			continue
		}
		lineTotal := item.Product.Price.Mul(decimal.NewFromInt32(item.Quantity))
		total = total.Add(lineTotal)
		itemCount += item.Quantity
	}
	return Cart{Items: items, Total: total, ItemCount: itemCount}
}
