package domain

import (
	"time"

	"github.com/momozvault/go-backend/pkg/e"
)

// OrderStatus is one of the fixed order lifecycle states.
type OrderStatus string

const (
	OrderStatusPending   OrderStatus = "pending"
	OrderStatusPaid      OrderStatus = "paid"
	OrderStatusShipped   OrderStatus = "shipped"
	OrderStatusDelivered OrderStatus = "delivered"
	OrderStatusCancelled OrderStatus = "cancelled"
)

// legalTransitions encodes the forward-only lifecycle:
// pending -> paid|cancelled, paid -> shipped|cancelled, shipped -> delivered.
// Skipping or regressing states is rejected.
var legalTransitions = map[OrderStatus][]OrderStatus{
	OrderStatusPending: {OrderStatusPaid, OrderStatusCancelled},
	OrderStatusPaid:    {OrderStatusShipped, OrderStatusCancelled},
	OrderStatusShipped: {OrderStatusDelivered},
}

func ParseOrderStatus(s string) (OrderStatus, error) {
	switch OrderStatus(s) {
	case OrderStatusPending, OrderStatusPaid, OrderStatusShipped, OrderStatusDelivered, OrderStatusCancelled:
		return OrderStatus(s), nil
	default:
		return "", e.ErrStatusBadRequest
	}
}

// CanTransitionTo reports whether moving from s to next is legal.
func (s OrderStatus) CanTransitionTo(next OrderStatus) bool {
	for _, allowed := range legalTransitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

// Order is a checkout submission: contact and shipping fields plus a
// denormalized copy of the cart lines at submission time.
type Order struct {
	ID            string // uuid
	CustomerName  string
	Email         string
	Phone         string
	Address       string
	City          string
	Country       string
	Notes         string
	Amount        int64 // total in UGX including the flat shipping fee
	Items         []CartLine
	PaymentMethod string
	Status        OrderStatus
	TxRef         string  // payment reference handed to the gateway
	TransactionID *string // gateway transaction id, set on payment success
	CreatedAt     time.Time
	UpdatedAt     *time.Time
}

func NewOrder(customerName, email, phone, address, city, country, notes, paymentMethod string, amount int64, items []CartLine) *Order {
	return &Order{
		CustomerName:  customerName,
		Email:         email,
		Phone:         phone,
		Address:       address,
		City:          city,
		Country:       country,
		Notes:         notes,
		Amount:        amount,
		Items:         items,
		PaymentMethod: paymentMethod,
		Status:        OrderStatusPending,
	}
}
