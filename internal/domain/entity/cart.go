package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Cart belongs to exactly one user and owns its items.
type Cart struct {
	ID        uuid.UUID
	UserID    uuid.UUID
	Items     []*CartItem
	CreatedAt time.Time
	UpdatedAt time.Time
}

// TotalPrice is the sum of all item prices.
func (c *Cart) TotalPrice() decimal.Decimal {
	total := decimal.Zero
	for _, item := range c.Items {
		total = total.Add(item.Price)
	}

	return total
}

// FindItem returns the item with the given id.
func (c *Cart) FindItem(id uuid.UUID) (*CartItem, bool) {
	for _, item := range c.Items {
		if item.ID == id {
			return item, true
		}
	}

	return nil, false
}

// FindItemByVariant returns the item holding the given variant, if any.
func (c *Cart) FindItemByVariant(variantID uuid.UUID) (*CartItem, bool) {
	for _, item := range c.Items {
		if item.Variant != nil && item.Variant.ID == variantID {
			return item, true
		}
	}

	return nil, false
}

// CartItem is a line in a cart. Price is always computed server-side.
type CartItem struct {
	ID        uuid.UUID
	CartID    uuid.UUID
	Variant   *Variant
	Quantity  int
	Price     decimal.Decimal // Unit price × quantity at the time the item was last priced.
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Reprice recomputes the line price from the variant's unit price.
func (i *CartItem) Reprice() {
	if i.Variant == nil {
		i.Price = decimal.Zero

		return
	}
	i.Price = i.Variant.Price.Mul(decimal.NewFromInt(int64(i.Quantity)))
}
