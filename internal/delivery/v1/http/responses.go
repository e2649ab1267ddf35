package http

import (
	"time"

	"github.com/momozvault/go-backend/internal/domain"
	"github.com/momozvault/go-backend/internal/usecase"
)

type ProductResponse struct {
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

func NewProductResponse(p *domain.Product) *ProductResponse {
	return &ProductResponse{
		ID:          p.ID,
		Name:        p.Name,
		Description: p.Description,
		Category:    p.Category,
		Origin:      p.Origin,
		PriceUGX:    p.PriceUGX,
		PriceKES:    p.PriceKES,
		ImageURL:    p.ImageURL,
		Stock:       p.Stock,
		Featured:    p.Featured,
		CreatedAt:   p.CreatedAt,
		UpdatedAt:   p.UpdatedAt,
	}
}

func NewProductListResponse(products []domain.Product) []ProductResponse {
	out := make([]ProductResponse, 0, len(products))
	for i := range products {
		out = append(out, *NewProductResponse(&products[i]))
	}
	return out
}

type CartLineResponse struct {
	ProductID string `json:"product_id"`
	Name      string `json:"name"`
	Category  string `json:"category"`
	Origin    string `json:"origin"`
	ImageURL  string `json:"image_url"`
	PriceUGX  int64  `json:"price_ugx"`
	PriceKES  int64  `json:"price_kes"`
	Quantity  int    `json:"quantity"`
}

type CartResponse struct {
	Lines    []CartLineResponse `json:"lines"`
	Count    int                `json:"count"`
	Currency string             `json:"currency"`
	Total    int64              `json:"total"`
}

func NewCartResponse(view *usecase.CartView) *CartResponse {
	lines := make([]CartLineResponse, 0, len(view.Lines))
	for _, l := range view.Lines {
		lines = append(lines, CartLineResponse{
			ProductID: l.ProductID,
			Name:      l.Name,
			Category:  l.Category,
			Origin:    l.Origin,
			ImageURL:  l.ImageURL,
			PriceUGX:  l.PriceUGX,
			PriceKES:  l.PriceKES,
			Quantity:  l.Quantity,
		})
	}

	return &CartResponse{
		Lines:    lines,
		Count:    view.Count,
		Currency: string(view.Currency),
		Total:    view.Total,
	}
}

type OrderResponse struct {
	ID            string             `json:"id"`
	CustomerName  string             `json:"customer_name"`
	Email         string             `json:"email"`
	Phone         string             `json:"phone"`
	Address       string             `json:"address"`
	City          string             `json:"city"`
	Country       string             `json:"country"`
	Notes         string             `json:"notes,omitempty"`
	Amount        int64              `json:"amount"`
	Items         []CartLineResponse `json:"items"`
	PaymentMethod string             `json:"payment_method"`
	Status        string             `json:"status"`
	TxRef         string             `json:"tx_ref"`
	TransactionID *string            `json:"transaction_id,omitempty"`
	CreatedAt     time.Time          `json:"created_at"`
	UpdatedAt     *time.Time         `json:"updated_at,omitempty"`
}

func NewOrderResponse(o *domain.Order) *OrderResponse {
	items := make([]CartLineResponse, 0, len(o.Items))
	for _, l := range o.Items {
		items = append(items, CartLineResponse{
			ProductID: l.ProductID,
			Name:      l.Name,
			Category:  l.Category,
			Origin:    l.Origin,
			ImageURL:  l.ImageURL,
			PriceUGX:  l.PriceUGX,
			PriceKES:  l.PriceKES,
			Quantity:  l.Quantity,
		})
	}

	return &OrderResponse{
		ID:            o.ID,
		CustomerName:  o.CustomerName,
		Email:         o.Email,
		Phone:         o.Phone,
		Address:       o.Address,
		City:          o.City,
		Country:       o.Country,
		Notes:         o.Notes,
		Amount:        o.Amount,
		Items:         items,
		PaymentMethod: o.PaymentMethod,
		Status:        string(o.Status),
		TxRef:         o.TxRef,
		TransactionID: o.TransactionID,
		CreatedAt:     o.CreatedAt,
		UpdatedAt:     o.UpdatedAt,
	}
}

func NewOrderListResponse(orders []domain.Order) []OrderResponse {
	out := make([]OrderResponse, 0, len(orders))
	for i := range orders {
		out = append(out, *NewOrderResponse(&orders[i]))
	}
	return out
}

type ReviewResponse struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Message   string    `json:"message"`
	CreatedAt time.Time `json:"created_at"`
}

func NewReviewResponse(r *domain.Review) *ReviewResponse {
	return &ReviewResponse{
		ID:        r.ID,
		Name:      r.Name,
		Email:     r.Email,
		Message:   r.Message,
		CreatedAt: r.CreatedAt,
	}
}

func NewReviewListResponse(reviews []domain.Review) []ReviewResponse {
	out := make([]ReviewResponse, 0, len(reviews))
	for i := range reviews {
		out = append(out, *NewReviewResponse(&reviews[i]))
	}
	return out
}

type DailySalesResponse struct {
	Day     string `json:"day"`
	Revenue int64  `json:"revenue"`
	Orders  int    `json:"orders"`
}

type SalesSummaryResponse struct {
	Revenue    int64                `json:"revenue"`
	OrderCount int                  `json:"order_count"`
	Days       []DailySalesResponse `json:"days"`
}

func NewSalesSummaryResponse(s *usecase.SalesSummary) *SalesSummaryResponse {
	days := make([]DailySalesResponse, 0, len(s.Days))
	for _, d := range s.Days {
		days = append(days, DailySalesResponse{Day: d.Day, Revenue: d.Revenue, Orders: d.Orders})
	}

	return &SalesSummaryResponse{
		Revenue:    s.Revenue,
		OrderCount: s.OrderCount,
		Days:       days,
	}
}
