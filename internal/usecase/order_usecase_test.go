package usecase

import (
	"context"
	"testing"
	"time"

	"github.com/momozvault/go-backend/internal/domain"
	"github.com/momozvault/go-backend/pkg/e"
	"github.com/momozvault/go-backend/pkg/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validCheckoutReq() *CheckoutReq {
	return &CheckoutReq{
		CartToken:     "tok-1",
		Name:          "Amina K",
		Email:         "amina@example.com",
		Phone:         "+256700123456",
		Address:       "Plot 12, Kampala Rd",
		City:          "Kampala",
		Country:       "Uganda",
		PaymentMethod: "flutterwave",
	}
}

func newTestOrderUC(orderRepo OrderRepository, cartRepo CartRepository, outboxRepo OutboxRepository) *OrderUseCase {
	return NewOrderUC(orderRepo, cartRepo, outboxRepo, stubTransactional{}, 10_000, logger.NewNop())
}

func TestCheckout_TotalAddsFlatShippingFee(t *testing.T) {
	cart := &domain.Cart{Lines: []domain.CartLine{
		{ProductID: "a", Name: "Oud Royale", PriceUGX: 10_000, Quantity: 1},
		{ProductID: "b", Name: "Musk Noir", PriceUGX: 20_000, Quantity: 1},
		{ProductID: "c", Name: "Amber Dusk", PriceUGX: 5_000, Quantity: 1},
	}}

	var deletedToken string
	cartRepo := &mockCartRepository{
		LoadFunc: func(ctx context.Context, token string) (*domain.Cart, error) {
			return cart, nil
		},
		DeleteFunc: func(ctx context.Context, token string) error {
			deletedToken = token
			return nil
		},
	}
	orderRepo := &mockOrderRepository{
		CreateFunc: func(ctx context.Context, order *domain.Order) (*domain.Order, error) {
			return order, nil
		},
	}
	var event *OutboxEvent
	outboxRepo := &mockOutboxRepository{
		CreateFunc: func(ctx context.Context, ev *OutboxEvent) (*OutboxEvent, error) {
			event = ev
			return ev, nil
		},
	}
	uc := newTestOrderUC(orderRepo, cartRepo, outboxRepo)

	order, err := uc.Checkout(context.Background(), validCheckoutReq())

	require.NoError(t, err)
	assert.Equal(t, int64(45_000), order.Amount, "line subtotals plus the flat shipping fee")
	assert.Equal(t, domain.OrderStatusPending, order.Status)
	assert.NotEmpty(t, order.ID)
	assert.NotEmpty(t, order.TxRef)
	assert.Equal(t, cart.Lines, order.Items)

	require.NotNil(t, event, "checkout must record an outbox event")
	assert.Equal(t, EventOrderCreated, event.EventType)
	assert.Equal(t, order.ID, event.OrderID)

	assert.Equal(t, "tok-1", deletedToken, "cart is cleared after commit")
}

func TestCheckout_RejectsInvalidSubmission(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name   string
		mutate func(req *CheckoutReq)
	}{
		{"empty name", func(r *CheckoutReq) { r.Name = "  " }},
		{"malformed email", func(r *CheckoutReq) { r.Email = "not-an-email" }},
		{"phone without country code", func(r *CheckoutReq) { r.Phone = "0700123456" }},
		{"phone too short", func(r *CheckoutReq) { r.Phone = "+25670012345" }},
		{"phone with letters", func(r *CheckoutReq) { r.Phone = "+2567001234ab" }},
		{"empty address", func(r *CheckoutReq) { r.Address = "" }},
		{"empty city", func(r *CheckoutReq) { r.City = "" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := validCheckoutReq()
			tt.mutate(req)

			uc := newTestOrderUC(&mockOrderRepository{}, &mockCartRepository{}, &mockOutboxRepository{})

			_, err := uc.Checkout(ctx, req)
			assert.ErrorIs(t, err, e.ErrCheckoutValidation)
		})
	}
}

func TestCheckout_EmptyCart(t *testing.T) {
	ctx := context.Background()

	// The default mock cart store loads an empty cart.
	uc := newTestOrderUC(&mockOrderRepository{}, &mockCartRepository{}, &mockOutboxRepository{})

	_, err := uc.Checkout(ctx, validCheckoutReq())
	assert.ErrorIs(t, err, e.ErrEmptyCart)
}

func TestChangeStatus_RejectsIllegalTransition(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name string
		from domain.OrderStatus
		to   domain.OrderStatus
	}{
		{"pending cannot ship", domain.OrderStatusPending, domain.OrderStatusShipped},
		{"paid cannot deliver", domain.OrderStatusPaid, domain.OrderStatusDelivered},
		{"delivered is terminal", domain.OrderStatusDelivered, domain.OrderStatusShipped},
		{"cancelled is terminal", domain.OrderStatusCancelled, domain.OrderStatusPaid},
		{"shipped cannot cancel", domain.OrderStatusShipped, domain.OrderStatusCancelled},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			orderRepo := &mockOrderRepository{
				GetByIDFunc: func(ctx context.Context, id string) (*domain.Order, error) {
					return &domain.Order{ID: id, Status: tt.from}, nil
				},
				UpdateStatusFunc: func(ctx context.Context, id string, from, to domain.OrderStatus, transactionID *string) (*domain.Order, error) {
					t.Fatal("UpdateStatus must not be called for an illegal transition")
					return nil, nil
				},
			}

			uc := newTestOrderUC(orderRepo, &mockCartRepository{}, &mockOutboxRepository{})

			_, err := uc.ChangeStatus(ctx, "o1", tt.to)
			assert.ErrorIs(t, err, e.ErrIllegalTransition)
		})
	}
}

func TestChangeStatus_OrderNotFound(t *testing.T) {
	ctx := context.Background()

	orderRepo := &mockOrderRepository{
		GetByIDFunc: func(ctx context.Context, id string) (*domain.Order, error) {
			return nil, e.ErrOrderNotFound
		},
	}

	uc := newTestOrderUC(orderRepo, &mockCartRepository{}, &mockOutboxRepository{})

	_, err := uc.ChangeStatus(ctx, "missing", domain.OrderStatusPaid)
	assert.ErrorIs(t, err, e.ErrOrderNotFound)
}

func TestSalesSummary_AggregatesByDay(t *testing.T) {
	ctx := context.Background()

	day1 := time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC)
	day2 := time.Date(2025, 3, 11, 14, 30, 0, 0, time.UTC)

	orderRepo := &mockOrderRepository{
		SalesSinceFunc: func(ctx context.Context, since time.Time) ([]SalesPoint, error) {
			return []SalesPoint{
				{CreatedAt: day1, Amount: 95_000},
				{CreatedAt: day1.Add(2 * time.Hour), Amount: 120_000},
				{CreatedAt: day2, Amount: 60_000},
			}, nil
		},
	}

	uc := newTestOrderUC(orderRepo, &mockCartRepository{}, &mockOutboxRepository{})

	summary, err := uc.SalesSummary(ctx, day1.AddDate(0, 0, -1))
	require.NoError(t, err)

	assert.Equal(t, int64(275_000), summary.Revenue)
	assert.Equal(t, 3, summary.OrderCount)

	require.Len(t, summary.Days, 2)
	assert.Equal(t, "2025-03-10", summary.Days[0].Day)
	assert.Equal(t, int64(215_000), summary.Days[0].Revenue)
	assert.Equal(t, 2, summary.Days[0].Orders)
	assert.Equal(t, "2025-03-11", summary.Days[1].Day)
	assert.Equal(t, int64(60_000), summary.Days[1].Revenue)
	assert.Equal(t, 1, summary.Days[1].Orders)
}
