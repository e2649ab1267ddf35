package usecase

import (
	"context"
	"encoding/json"
	"regexp"
	"sort"
	"strings"
	"time"

	transaction "github.com/avito-tech/go-transaction-manager/drivers/pgxv5/v2"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/momozvault/go-backend/internal/domain"
	"github.com/momozvault/go-backend/pkg/e"
	"github.com/momozvault/go-backend/pkg/logger"
)

var (
	emailRe = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)
	phoneRe = regexp.MustCompile(`^\+256\d{9}$`)
)

// OrderUseCase implements checkout and the order lifecycle.
type OrderUseCase struct {
	orderRepo   OrderRepository
	cartRepo    CartRepository
	outboxRepo  OutboxRepository
	dbPool      transaction.Transactional
	shippingFee int64
	logger      logger.Logger
}

func NewOrderUC(
	orderRepo OrderRepository,
	cartRepo CartRepository,
	outboxRepo OutboxRepository,
	dbPool transaction.Transactional,
	shippingFee int64,
	logger logger.Logger,
) *OrderUseCase {
	return &OrderUseCase{
		orderRepo:   orderRepo,
		cartRepo:    cartRepo,
		outboxRepo:  outboxRepo,
		dbPool:      dbPool,
		shippingFee: shippingFee,
		logger:      logger,
	}
}

// Checkout validates the submission, freezes the cart lines into a new
// pending order, and records the order plus its outbox event in one
// transaction. The cart is cleared only after a successful commit.
func (o *OrderUseCase) Checkout(ctx context.Context, req *CheckoutReq) (*domain.Order, error) {
	const op = "OrderUseCase.Checkout"

	if err := validateCheckout(req); err != nil {
		return nil, e.Wrap(op, err)
	}

	cart, err := o.cartRepo.Load(ctx, req.CartToken)
	if err != nil {
		return nil, e.Wrap(op, err)
	}
	if cart.IsEmpty() {
		return nil, e.Wrap(op, e.ErrEmptyCart)
	}

	total := cart.Total(domain.CurrencyUGX) + o.shippingFee

	order := domain.NewOrder(
		strings.TrimSpace(req.Name),
		strings.TrimSpace(req.Email),
		strings.TrimSpace(req.Phone),
		strings.TrimSpace(req.Address),
		strings.TrimSpace(req.City),
		strings.TrimSpace(req.Country),
		strings.TrimSpace(req.Notes),
		req.PaymentMethod,
		total,
		cart.Lines,
	)
	order.ID = uuid.NewString()
	order.TxRef = uuid.NewString()

	ctx, tx, err := transaction.NewTransaction(ctx, pgx.TxOptions{}, o.dbPool)
	if err != nil {
		return nil, e.Wrap(op, err)
	}
	defer func() {
		if err != nil && tx.IsActive() {
			tx.Rollback(ctx)
		}
	}()
	ctx = context.WithValue(ctx, "tx", tx.Transaction())

	created, err := o.orderRepo.Create(ctx, order)
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	if err = recordOrderEvent(ctx, o.outboxRepo, EventOrderCreated, created); err != nil {
		return nil, e.Wrap(op, err)
	}

	if err = tx.Commit(ctx); err != nil {
		return nil, e.Wrap(op, err)
	}

	// The order now owns the frozen line items; drop the cart.
	if err := o.cartRepo.Delete(ctx, req.CartToken); err != nil {
		o.logger.Warnf("Failed to clear cart after checkout: %v", e.Wrap(op, err))
	}

	return created, nil
}

func (o *OrderUseCase) GetOrder(ctx context.Context, id string) (*domain.Order, error) {
	const op = "OrderUseCase.GetOrder"

	order, err := o.orderRepo.GetByID(ctx, id)
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	return order, nil
}

func (o *OrderUseCase) ListOrdersByEmail(ctx context.Context, email string) ([]domain.Order, error) {
	const op = "OrderUseCase.ListOrdersByEmail"

	orders, err := o.orderRepo.ListByEmail(ctx, email)
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	return orders, nil
}

func (o *OrderUseCase) ListOrders(ctx context.Context, status *domain.OrderStatus) ([]domain.Order, error) {
	const op = "OrderUseCase.ListOrders"

	orders, err := o.orderRepo.List(ctx, status)
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	return orders, nil
}

// ChangeStatus applies an admin-driven transition. Illegal transitions are
// rejected before any write; the repository re-checks the current status so
// a concurrent move loses rather than overwrites.
func (o *OrderUseCase) ChangeStatus(ctx context.Context, id string, next domain.OrderStatus) (*domain.Order, error) {
	const op = "OrderUseCase.ChangeStatus"

	order, err := o.orderRepo.GetByID(ctx, id)
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	if !order.Status.CanTransitionTo(next) {
		return nil, e.Wrap(op, e.ErrIllegalTransition)
	}

	ctx, tx, err := transaction.NewTransaction(ctx, pgx.TxOptions{}, o.dbPool)
	if err != nil {
		return nil, e.Wrap(op, err)
	}
	defer func() {
		if err != nil && tx.IsActive() {
			tx.Rollback(ctx)
		}
	}()
	ctx = context.WithValue(ctx, "tx", tx.Transaction())

	updated, err := o.orderRepo.UpdateStatus(ctx, id, order.Status, next, nil)
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	if err = recordOrderEvent(ctx, o.outboxRepo, EventOrderStatusChanged, updated); err != nil {
		return nil, e.Wrap(op, err)
	}

	if err = tx.Commit(ctx); err != nil {
		return nil, e.Wrap(op, err)
	}

	return updated, nil
}

// SalesSummary aggregates orders created since the cutoff into revenue,
// order count and per-day buckets.
func (o *OrderUseCase) SalesSummary(ctx context.Context, since time.Time) (*SalesSummary, error) {
	const op = "OrderUseCase.SalesSummary"

	points, err := o.orderRepo.SalesSince(ctx, since)
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	summary := &SalesSummary{}
	byDay := make(map[string]*DailySales)
	for _, point := range points {
		summary.Revenue += point.Amount
		summary.OrderCount++

		day := point.CreatedAt.UTC().Format("2006-01-02")
		bucket, ok := byDay[day]
		if !ok {
			bucket = &DailySales{Day: day}
			byDay[day] = bucket
		}
		bucket.Revenue += point.Amount
		bucket.Orders++
	}

	summary.Days = make([]DailySales, 0, len(byDay))
	for _, bucket := range byDay {
		summary.Days = append(summary.Days, *bucket)
	}
	sort.Slice(summary.Days, func(i, j int) bool {
		return summary.Days[i].Day < summary.Days[j].Day
	})

	return summary, nil
}

// recordOrderEvent stores an outbox event inside the current transaction.
func recordOrderEvent(ctx context.Context, outboxRepo OutboxRepository, eventType string, order *domain.Order) error {
	eventID := uuid.NewString()
	payload, err := json.Marshal(OrderEventPayload{
		EventID:    eventID,
		EventType:  eventType,
		OrderID:    order.ID,
		OccurredAt: time.Now().UTC(),
		Status:     order.Status,
		Amount:     order.Amount,
		Email:      order.Email,
	})
	if err != nil {
		return err
	}

	_, err = outboxRepo.Create(ctx, NewOutboxEvent(eventID, eventType, order.ID, payload))
	return err
}

// validateCheckout enforces the submission rules. Failures surface a single
// field-agnostic error; the order is not attempted.
func validateCheckout(req *CheckoutReq) error {
	if strings.TrimSpace(req.Name) == "" {
		return e.ErrCheckoutValidation
	}
	if !emailRe.MatchString(strings.TrimSpace(req.Email)) {
		return e.ErrCheckoutValidation
	}
	if !phoneRe.MatchString(strings.TrimSpace(req.Phone)) {
		return e.ErrCheckoutValidation
	}
	if strings.TrimSpace(req.Address) == "" {
		return e.ErrCheckoutValidation
	}
	if strings.TrimSpace(req.City) == "" {
		return e.ErrCheckoutValidation
	}
	return nil
}
