// Package cart implements the menu-order cart: an in-memory line-item list
// keyed by item id. Persistence is the caller's concern.
package cart

// LineItem is one menu item in the cart. Invariant: Qty >= 1 for any item
// present in the cart.
type LineItem struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Price int64  `json:"price"`
	Unit  string `json:"unit,omitempty"`
	Qty   int    `json:"qty"`
}

// Cart is an ordered list of line items.
type Cart struct {
	Items []LineItem `json:"items"`
}

// Add inserts the item at quantity 1, or increments the quantity when the
// item is already present.
func (c *Cart) Add(item LineItem) {
	for i := range c.Items {
		if c.Items[i].ID == item.ID {
			c.Items[i].Qty++
			return
		}
	}
	item.Qty = 1
	c.Items = append(c.Items, item)
}

// Increment bumps an existing item's quantity. Returns false when the item is
// not in the cart.
func (c *Cart) Increment(id string) bool {
	for i := range c.Items {
		if c.Items[i].ID == id {
			c.Items[i].Qty++
			return true
		}
	}
	return false
}

// Decrement lowers an item's quantity, removing the line when it would drop
// below 1. Returns false when the item is not in the cart.
func (c *Cart) Decrement(id string) bool {
	for i := range c.Items {
		if c.Items[i].ID == id {
			c.Items[i].Qty--
			if c.Items[i].Qty < 1 {
				c.Items = append(c.Items[:i], c.Items[i+1:]...)
			}
			return true
		}
	}
	return false
}

// Remove deletes a line item regardless of quantity. Returns false when the
// item is not in the cart.
func (c *Cart) Remove(id string) bool {
	for i := range c.Items {
		if c.Items[i].ID == id {
			c.Items = append(c.Items[:i], c.Items[i+1:]...)
			return true
		}
	}
	return false
}

// Clear empties the cart.
func (c *Cart) Clear() {
	c.Items = nil
}

// Subtotal is the sum of price times quantity over all lines.
func (c *Cart) Subtotal() int64 {
	var total int64
	for _, item := range c.Items {
		total += item.Price * int64(item.Qty)
	}
	return total
}

// Len returns the number of distinct line items.
func (c *Cart) Len() int {
	return len(c.Items)
}
