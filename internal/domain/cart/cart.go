package cart

import "example.com/bookstore-storefront/internal/domain/catalog"

// Line holds a snapshot of the product at the time it was added, not a live
// reference into the catalog.
type Line struct {
	Product  catalog.Product
	Quantity int64
}

// Cart is an ordered collection of lines; insertion order is first-added
// order. At most one line exists per product ID. Derived values are
// recomputed on every read, never cached.
type Cart struct {
	Lines []Line
}

// Add merges quantity into an existing line for the same product, otherwise
// appends a new line. No stock ceiling is enforced here; that is the calling
// view's concern.
func (c *Cart) Add(p catalog.Product, quantity int64) {
	for i := range c.Lines {
		if c.Lines[i].Product.ID == p.ID {
			c.Lines[i].Quantity += quantity
			return
		}
	}
	c.Lines = append(c.Lines, Line{Product: p, Quantity: quantity})
}

// Remove deletes the line for productID if present. Absent IDs are not an
// error.
func (c *Cart) Remove(productID int64) {
	for i := range c.Lines {
		if c.Lines[i].Product.ID == productID {
			c.Lines = append(c.Lines[:i], c.Lines[i+1:]...)
			return
		}
	}
}

// UpdateQuantity overwrites the quantity of an existing line. A quantity of
// zero or less removes the line instead of persisting a zero.
func (c *Cart) UpdateQuantity(productID int64, quantity int64) {
	if quantity <= 0 {
		c.Remove(productID)
		return
	}
	for i := range c.Lines {
		if c.Lines[i].Product.ID == productID {
			c.Lines[i].Quantity = quantity
			return
		}
	}
}

func (c *Cart) Clear() {
	c.Lines = nil
}

func (c *Cart) ItemCount() int64 {
	var total int64
	for _, line := range c.Lines {
		total += line.Quantity
	}
	return total
}

func (c *Cart) Total() float64 {
	var total float64
	for _, line := range c.Lines {
		total += line.Product.Price * float64(line.Quantity)
	}
	return total
}

func (c *Cart) Contains(productID int64) bool {
	return c.Quantity(productID) > 0
}

func (c *Cart) Quantity(productID int64) int64 {
	for _, line := range c.Lines {
		if line.Product.ID == productID {
			return line.Quantity
		}
	}
	return 0
}
