package converter

import "time"

// ProductModel is a row of the products table.
type ProductModel struct {
	ID          string     `db:"id"`
	Name        string     `db:"name"`
	Description string     `db:"description"`
	Category    string     `db:"category"`
	Origin      string     `db:"origin"`
	PriceUGX    int64      `db:"price_ugx"`
	PriceKES    int64      `db:"price_kes"`
	ImageURL    string     `db:"image_url"`
	Stock       int        `db:"stock"`
	Featured    bool       `db:"featured"`
	CreatedAt   time.Time  `db:"created_at"`
	UpdatedAt   *time.Time `db:"updated_at"`
}

// OrderModel is a row of the orders table. Items holds the frozen cart
// lines as JSONB.
type OrderModel struct {
	ID            string     `db:"id"`
	CustomerName  string     `db:"customer_name"`
	Email         string     `db:"email"`
	Phone         string     `db:"phone"`
	Address       string     `db:"address"`
	City          string     `db:"city"`
	Country       string     `db:"country"`
	Notes         string     `db:"notes"`
	Amount        int64      `db:"amount"`
	Items         []byte     `db:"items"`
	PaymentMethod string     `db:"payment_method"`
	Status        string     `db:"status"`
	TxRef         string     `db:"tx_ref"`
	TransactionID *string    `db:"transaction_id"`
	CreatedAt     time.Time  `db:"created_at"`
	UpdatedAt     *time.Time `db:"updated_at"`
}

// ReviewModel is a row of the reviews table.
type ReviewModel struct {
	ID        int64     `db:"id"`
	Name      string    `db:"name"`
	Email     string    `db:"email"`
	Message   string    `db:"message"`
	CreatedAt time.Time `db:"created_at"`
}

// OutboxEventModel is a row of the outbox_events table.
type OutboxEventModel struct {
	ID          int64      `db:"id"`
	EventID     string     `db:"event_id"`
	EventType   string     `db:"event_type"`
	OrderID     string     `db:"order_id"`
	Payload     []byte     `db:"payload"`
	Status      string     `db:"status"`
	CreatedAt   time.Time  `db:"created_at"`
	ProcessedAt *time.Time `db:"processed_at"`
}
