package usecase

import (
	"context"
	"time"

	"github.com/momozvault/go-backend/internal/domain"
)

type CatalogUC interface {
	ListProducts(ctx context.Context, req *ListProductsReq) ([]domain.Product, error)
	GetProduct(ctx context.Context, id string) (*domain.Product, error)
	ListCategories(ctx context.Context) ([]string, error)
	CreateProduct(ctx context.Context, req *SaveProductReq) (*domain.Product, error)
	UpdateProduct(ctx context.Context, id string, req *SaveProductReq) (*domain.Product, error)
	DeleteProduct(ctx context.Context, id string) error
}

type CartUC interface {
	GetCart(ctx context.Context, token string) (*CartView, error)
	AddToCart(ctx context.Context, token, productID string) (*CartView, error)
	UpdateQuantity(ctx context.Context, token, productID string, quantity int) (*CartView, error)
	RemoveFromCart(ctx context.Context, token, productID string) (*CartView, error)
	ClearCart(ctx context.Context, token string) error
	GetCurrency(ctx context.Context, token string) (domain.Currency, error)
	SetCurrency(ctx context.Context, token string, currency domain.Currency) error
}

type OrderUC interface {
	Checkout(ctx context.Context, req *CheckoutReq) (*domain.Order, error)
	GetOrder(ctx context.Context, id string) (*domain.Order, error)
	ListOrdersByEmail(ctx context.Context, email string) ([]domain.Order, error)
	ListOrders(ctx context.Context, status *domain.OrderStatus) ([]domain.Order, error)
	ChangeStatus(ctx context.Context, id string, next domain.OrderStatus) (*domain.Order, error)
	SalesSummary(ctx context.Context, since time.Time) (*SalesSummary, error)
}

type PaymentUC interface {
	InitializePayment(ctx context.Context, orderID string) (*PaymentLink, error)
	ConfirmPayment(ctx context.Context, txRef string, transactionID string) (*domain.Order, error)
}

type ReviewUC interface {
	SubmitReview(ctx context.Context, req *SubmitReviewReq) (*domain.Review, error)
	ListReviews(ctx context.Context) ([]domain.Review, error)
}

type AuthUC interface {
	Login(ctx context.Context, email, password string) (*LoginRes, error)
	VerifyToken(token string) (*TokenClaims, error)
}
