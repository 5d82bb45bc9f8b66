package domain

import "time"

// CartItem represents a single line item in the cart. It carries the full
// product record so the persisted cart renders without a catalog lookup.
// SelectedColor is display metadata only: line-item identity is the product
// ID alone, so adding the same product in a different color merges into the
// existing line rather than opening a new one.
type CartItem struct {
	Product       Product `json:"product"`
	Quantity      int     `json:"quantity"`
	SelectedColor string  `json:"selected_color,omitempty"`
}

// Cart represents a shopping cart. Items keep insertion order.
type Cart struct {
	ID        string     `json:"id"`
	UserID    string     `json:"user_id"`
	Items     []CartItem `json:"items"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt time.Time  `json:"updated_at"`
}

// Total returns the sum of price × quantity across all items.
// It is recomputed on every call, never cached.
func (c *Cart) Total() float64 {
	var total float64
	for _, item := range c.Items {
		total += item.Product.Price * float64(item.Quantity)
	}
	return total
}

// ItemCount returns the total number of units in the cart.
func (c *Cart) ItemCount() int {
	var count int
	for _, item := range c.Items {
		count += item.Quantity
	}
	return count
}

// FindItemIndex returns the index of the cart item for the given product ID,
// or -1 if not present.
func (c *Cart) FindItemIndex(productID string) int {
	for i := range c.Items {
		if c.Items[i].Product.ID == productID {
			return i
		}
	}
	return -1
}

// AddItem adds quantity units of the product to the cart. If a line item for
// the same product ID already exists its quantity is incremented, regardless
// of selected color. The resulting quantity is clamped to the product's stock
// count. A non-positive quantity is a no-op.
//
// Returns true if the cart changed.
func (c *Cart) AddItem(p Product, quantity int, selectedColor string) bool {
	if quantity <= 0 {
		return false
	}

	if i := c.FindItemIndex(p.ID); i >= 0 {
		c.Items[i].Quantity = clampQuantity(c.Items[i].Quantity+quantity, p.StockCount)
		return true
	}

	c.Items = append(c.Items, CartItem{
		Product:       p,
		Quantity:      clampQuantity(quantity, p.StockCount),
		SelectedColor: selectedColor,
	})
	return true
}

// UpdateQuantity replaces the quantity of the line item for the given product
// ID. A quantity of zero or less removes the item. The new quantity is
// clamped to the product's stock count. Unknown product IDs are a no-op.
//
// Returns true if the cart changed.
func (c *Cart) UpdateQuantity(productID string, quantity int) bool {
	i := c.FindItemIndex(productID)
	if i < 0 {
		return false
	}

	if quantity <= 0 {
		c.Items = append(c.Items[:i], c.Items[i+1:]...)
		return true
	}

	c.Items[i].Quantity = clampQuantity(quantity, c.Items[i].Product.StockCount)
	return true
}

// RemoveItem removes every line item matching the product ID. Removing an
// absent product is a no-op, so the operation is idempotent.
//
// Returns true if the cart changed.
func (c *Cart) RemoveItem(productID string) bool {
	kept := c.Items[:0]
	removed := false
	for _, item := range c.Items {
		if item.Product.ID == productID {
			removed = true
			continue
		}
		kept = append(kept, item)
	}
	c.Items = kept
	return removed
}

// Clear removes all items from the cart.
func (c *Cart) Clear() {
	c.Items = []CartItem{}
}

// clampQuantity bounds q to [1, stockCount]. A non-positive stock count
// leaves only the lower bound, since the source data does not guarantee
// stock counts for out-of-stock products.
func clampQuantity(q, stockCount int) int {
	if q < 1 {
		q = 1
	}
	if stockCount > 0 && q > stockCount {
		q = stockCount
	}
	return q
}
