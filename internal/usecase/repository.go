package usecase

import (
	"context"
	"time"

	"github.com/momozvault/go-backend/internal/domain"
)

type ProductRepository interface {
	List(ctx context.Context, filter *ProductFilter) ([]domain.Product, error)
	GetByID(ctx context.Context, id string) (*domain.Product, error)
	Categories(ctx context.Context) ([]string, error)
	Create(ctx context.Context, product *domain.Product) (*domain.Product, error)
	Update(ctx context.Context, product *domain.Product) (*domain.Product, error)
	Delete(ctx context.Context, id string) error
}

type OrderRepository interface {
	// Create runs inside the transaction stored in ctx.
	Create(ctx context.Context, order *domain.Order) (*domain.Order, error)
	GetByID(ctx context.Context, id string) (*domain.Order, error)
	GetByTxRef(ctx context.Context, txRef string) (*domain.Order, error)
	ListByEmail(ctx context.Context, email string) ([]domain.Order, error)
	List(ctx context.Context, status *domain.OrderStatus) ([]domain.Order, error)
	// UpdateStatus transitions the order only when its current status equals
	// from; returns ErrIllegalTransition when the row was concurrently moved.
	UpdateStatus(ctx context.Context, id string, from, to domain.OrderStatus, transactionID *string) (*domain.Order, error)
	SalesSince(ctx context.Context, since time.Time) ([]SalesPoint, error)
}

type ReviewRepository interface {
	Create(ctx context.Context, review *domain.Review) (*domain.Review, error)
	List(ctx context.Context) ([]domain.Review, error)
}

// CartRepository is the durable cart store. One snapshot per cart token.
type CartRepository interface {
	// Load returns the persisted cart; a missing or malformed snapshot
	// loads as an empty cart, never an error.
	Load(ctx context.Context, token string) (*domain.Cart, error)
	Save(ctx context.Context, token string, cart *domain.Cart) error
	Delete(ctx context.Context, token string) error
	LoadCurrency(ctx context.Context, token string) (domain.Currency, error)
	SaveCurrency(ctx context.Context, token string, currency domain.Currency) error
}

type CacheRepository interface {
	GetProduct(ctx context.Context, id string) (*domain.Product, error)
	SetProduct(ctx context.Context, product *domain.Product) error
	DeleteProduct(ctx context.Context, id string) error
}

type OutboxRepository interface {
	// Create runs inside the transaction stored in ctx.
	Create(ctx context.Context, event *OutboxEvent) (*OutboxEvent, error)
	GetAndMarkAsProcessing(ctx context.Context, limit int) ([]*OutboxEvent, error)
	MarkAsProcessed(ctx context.Context, id int64) error
}
