package converter

import "time"

// ProductRedisModel is the cached JSON form of a catalog product.
type ProductRedisModel struct {
	ID          string     `json:"id"`
	Name        string     `json:"name"`
	Description string     `json:"description"`
	Category    string     `json:"category"`
	Origin      string     `json:"origin"`
	PriceUGX    int64      `json:"price_ugx"`
	PriceKES    int64      `json:"price_kes"`
	ImageURL    string     `json:"image_url"`
	Stock       int        `json:"stock"`
	Featured    bool       `json:"featured"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   *time.Time `json:"updated_at,omitempty"`
}

// CartLineRedisModel is one snapshot line of a stored cart.
type CartLineRedisModel struct {
	ProductID string `json:"product_id"`
	Name      string `json:"name"`
	Category  string `json:"category"`
	Origin    string `json:"origin"`
	ImageURL  string `json:"image_url"`
	PriceUGX  int64  `json:"price_ugx"`
	PriceKES  int64  `json:"price_kes"`
	Quantity  int    `json:"quantity"`
}

// CartRedisModel is the stored JSON form of a cart snapshot.
type CartRedisModel struct {
	Lines []CartLineRedisModel `json:"lines"`
}
