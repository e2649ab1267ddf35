package domain

import "time"

// Product describes a catalog item.
// Prices are whole shilling amounts in both display currencies.
type Product struct {
	ID          string // uuid
	Name        string
	Description string
	Category    string
	Origin      string // origin tag, e.g. "Uganda" or "Kenya"
	PriceUGX    int64
	PriceKES    int64
	ImageURL    string
	Stock       int
	Featured    bool
	CreatedAt   time.Time
	UpdatedAt   *time.Time
}

func NewProduct(name, description, category, origin string, priceUGX, priceKES int64) *Product {
	return &Product{
		Name:        name,
		Description: description,
		Category:    category,
		Origin:      origin,
		PriceUGX:    priceUGX,
		PriceKES:    priceKES,
	}
}

// PriceIn returns the product price in the given display currency.
func (p *Product) PriceIn(currency Currency) int64 {
	if currency == CurrencyKES {
		return p.PriceKES
	}
	return p.PriceUGX
}
