package domain

// CartLine is a frozen product snapshot plus a quantity.
// A cart holds at most one line per product id.
type CartLine struct {
	ProductID string
	Name      string
	Category  string
	Origin    string
	ImageURL  string
	PriceUGX  int64
	PriceKES  int64
	Quantity  int
}

// NewCartLine snapshots a product into a line with quantity 1.
// Later product edits must not alter lines already in carts or orders.
func NewCartLine(p *Product) CartLine {
	return CartLine{
		ProductID: p.ID,
		Name:      p.Name,
		Category:  p.Category,
		Origin:    p.Origin,
		ImageURL:  p.ImageURL,
		PriceUGX:  p.PriceUGX,
		PriceKES:  p.PriceKES,
		Quantity:  1,
	}
}

// PriceIn returns the snapshotted unit price in the given currency.
func (l *CartLine) PriceIn(currency Currency) int64 {
	if currency == CurrencyKES {
		return l.PriceKES
	}
	return l.PriceUGX
}

// Cart is an ordered collection of cart lines owned by one cart token.
type Cart struct {
	Lines []CartLine
}

func NewCart() *Cart {
	return &Cart{Lines: []CartLine{}}
}

// Add increments the quantity of an existing line for the product,
// or appends a new line with quantity 1.
func (c *Cart) Add(p *Product) {
	for i := range c.Lines {
		if c.Lines[i].ProductID == p.ID {
			c.Lines[i].Quantity++
			return
		}
	}
	c.Lines = append(c.Lines, NewCartLine(p))
}

// Remove drops the line for the product id. Absent id is a no-op.
func (c *Cart) Remove(productID string) {
	for i := range c.Lines {
		if c.Lines[i].ProductID == productID {
			c.Lines = append(c.Lines[:i], c.Lines[i+1:]...)
			return
		}
	}
}

// SetQuantity sets the quantity of the line for the product id.
// A quantity <= 0 removes the line instead.
func (c *Cart) SetQuantity(productID string, quantity int) {
	if quantity <= 0 {
		c.Remove(productID)
		return
	}
	for i := range c.Lines {
		if c.Lines[i].ProductID == productID {
			c.Lines[i].Quantity = quantity
			return
		}
	}
}

// Clear empties the cart unconditionally.
func (c *Cart) Clear() {
	c.Lines = []CartLine{}
}

// Count is the sum of line quantities.
func (c *Cart) Count() int {
	count := 0
	for i := range c.Lines {
		count += c.Lines[i].Quantity
	}
	return count
}

// Total is the sum of unit price times quantity in the given currency.
func (c *Cart) Total(currency Currency) int64 {
	var total int64
	for i := range c.Lines {
		total += c.Lines[i].PriceIn(currency) * int64(c.Lines[i].Quantity)
	}
	return total
}

// Line returns the line for the product id, if present.
func (c *Cart) Line(productID string) (CartLine, bool) {
	for i := range c.Lines {
		if c.Lines[i].ProductID == productID {
			return c.Lines[i], true
		}
	}
	return CartLine{}, false
}

// IsEmpty reports whether the cart has no lines.
func (c *Cart) IsEmpty() bool {
	return len(c.Lines) == 0
}
