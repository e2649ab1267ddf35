package usecase

import (
	"time"

	"github.com/momozvault/go-backend/internal/domain"
)

// CATALOG

// ListProductsReq filters the catalog listing. Zero values mean "no filter".
type ListProductsReq struct {
	Search   string // name substring, case-insensitive
	Featured *bool
	Limit    int
}

// ProductFilter is the repository-level listing filter.
type ProductFilter struct {
	Search   string
	Featured *bool
	Limit    int
}

// SaveProductReq carries admin product create/update form data.
type SaveProductReq struct {
	Name        string
	Description string
	Category    string
	Origin      string
	PriceUGX    int64
	PriceKES    int64
	Stock       int
	Featured    bool
	ImageURL    string        // used when no file is uploaded
	Image       *ProductImage // optional uploaded file, wins over ImageURL
}

// ProductImage is an image received via multipart/form-data.
type ProductImage struct {
	Data     []byte
	MimeType string // Content-Type from multipart (image/jpeg)
	Size     int64
	Name     string // original file name (for logs)
}

// CART

// CartView is the cart DTO returned to delivery: lines plus derived values
// computed for the stored currency preference.
type CartView struct {
	Lines    []domain.CartLine
	Count    int
	Currency domain.Currency
	Total    int64
}

// ORDERS

// CheckoutReq carries the checkout submission.
type CheckoutReq struct {
	CartToken     string
	Name          string
	Email         string
	Phone         string
	Address       string
	City          string
	Country       string
	Notes         string
	PaymentMethod string
}

// SalesPoint is one order's contribution to the analytics window.
type SalesPoint struct {
	CreatedAt time.Time
	Amount    int64
}

// DailySales aggregates revenue for one calendar day.
type DailySales struct {
	Day     string // YYYY-MM-DD
	Revenue int64
	Orders  int
}

// SalesSummary is the admin analytics response.
type SalesSummary struct {
	Revenue    int64
	OrderCount int
	Days       []DailySales
}

// PAYMENTS

// PaymentLinkReq configures the hosted payment page.
type PaymentLinkReq struct {
	TxRef         string
	Amount        int64
	Currency      domain.Currency
	CustomerName  string
	CustomerEmail string
	CustomerPhone string
}

type PaymentLink struct {
	TxRef string
	Link  string
}

// GatewayTransaction is the gateway's authoritative view of a transaction.
type GatewayTransaction struct {
	TransactionID string
	TxRef         string
	Status        string // "successful" is the only status that marks an order paid
	Amount        int64
	Currency      string
}

// Successful reports a completed payment matching the expected charge.
func (t *GatewayTransaction) Successful(amount int64, currency domain.Currency) bool {
	return t.Status == "successful" && t.Amount >= amount && t.Currency == string(currency)
}

// REVIEWS

type SubmitReviewReq struct {
	Name    string
	Email   string
	Message string
}

// AUTH

type LoginRes struct {
	Token     string
	ExpiresAt time.Time
}

type TokenClaims struct {
	Email string
	Role  string
}

// INFRASTRUCTURE

type UploadImageReq struct {
	ProductName string
	Image       ProductImage
}

type UploadImageRes struct {
	ObjectKey string
	URL       string
}

type WriteRawMessageReq struct {
	OrderID string
	Payload []byte
}

// OUTBOX

type OutboxStatus string

const (
	Pending    OutboxStatus = "pending"
	Processing OutboxStatus = "processing"
	Processed  OutboxStatus = "processed"
)

const (
	EventOrderCreated       = "order.created"
	EventOrderStatusChanged = "order.status_changed"
)

// OutboxEvent is a pending Kafka publication recorded transactionally
// with the state change it describes.
type OutboxEvent struct {
	ID          int64
	EventID     string // uuid
	EventType   string
	OrderID     string
	Payload     []byte
	Status      OutboxStatus
	CreatedAt   time.Time
	ProcessedAt *time.Time
}

// OrderEventPayload is the JSON body published for order lifecycle events.
type OrderEventPayload struct {
	EventID    string             `json:"event_id"`
	EventType  string             `json:"event_type"`
	OrderID    string             `json:"order_id"`
	OccurredAt time.Time          `json:"occurred_at"`
	Status     domain.OrderStatus `json:"status"`
	Amount     int64              `json:"amount"`
	Email      string             `json:"email"`
}

// MAPPERS

func NewCartView(cart *domain.Cart, currency domain.Currency) *CartView {
	return &CartView{
		Lines:    cart.Lines,
		Count:    cart.Count(),
		Currency: currency,
		Total:    cart.Total(currency),
	}
}

func NewOutboxEvent(eventID, eventType, orderID string, payload []byte) *OutboxEvent {
	return &OutboxEvent{
		EventID:   eventID,
		EventType: eventType,
		OrderID:   orderID,
		Payload:   payload,
		Status:    Pending,
		CreatedAt: time.Now().UTC(),
	}
}

func NewWriteRawMessageReq(orderID string, payload []byte) *WriteRawMessageReq {
	return &WriteRawMessageReq{
		OrderID: orderID,
		Payload: payload,
	}
}

func NewUploadImageReq(productName string, image ProductImage) *UploadImageReq {
	return &UploadImageReq{
		ProductName: productName,
		Image:       image,
	}
}

func NewProductImage(data []byte, mimeType string, size int64, name string) *ProductImage {
	return &ProductImage{
		Data:     data,
		MimeType: mimeType,
		Size:     size,
		Name:     name,
	}
}

func NewPaymentLinkReq(order *domain.Order) *PaymentLinkReq {
	return &PaymentLinkReq{
		TxRef:         order.TxRef,
		Amount:        order.Amount,
		Currency:      domain.CurrencyUGX,
		CustomerName:  order.CustomerName,
		CustomerEmail: order.Email,
		CustomerPhone: order.Phone,
	}
}
