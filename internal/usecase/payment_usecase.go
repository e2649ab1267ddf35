package usecase

import (
	"context"

	transaction "github.com/avito-tech/go-transaction-manager/drivers/pgxv5/v2"
	"github.com/jackc/pgx/v5"
	"github.com/momozvault/go-backend/internal/domain"
	"github.com/momozvault/go-backend/pkg/e"
	"github.com/momozvault/go-backend/pkg/logger"
)

// PaymentUseCase drives the Flutterwave handoff: issuing a hosted payment
// link for a pending order and confirming the charge afterwards.
type PaymentUseCase struct {
	orderRepo  OrderRepository
	outboxRepo OutboxRepository
	gateway    PaymentGateway
	dbPool     transaction.Transactional
	logger     logger.Logger
}

func NewPaymentUC(
	orderRepo OrderRepository,
	outboxRepo OutboxRepository,
	gateway PaymentGateway,
	dbPool transaction.Transactional,
	logger logger.Logger,
) *PaymentUseCase {
	return &PaymentUseCase{
		orderRepo:  orderRepo,
		outboxRepo: outboxRepo,
		gateway:    gateway,
		dbPool:     dbPool,
		logger:     logger,
	}
}

// InitializePayment creates a hosted payment link for a pending order.
// Orders in any other state cannot re-enter payment.
func (p *PaymentUseCase) InitializePayment(ctx context.Context, orderID string) (*PaymentLink, error) {
	const op = "PaymentUseCase.InitializePayment"

	order, err := p.orderRepo.GetByID(ctx, orderID)
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	if order.Status != domain.OrderStatusPending {
		return nil, e.Wrap(op, e.ErrIllegalTransition)
	}

	link, err := p.gateway.CreatePaymentLink(ctx, NewPaymentLinkReq(order))
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	return link, nil
}

// ConfirmPayment verifies the transaction with the gateway and, on a
// successful charge that covers the order total, moves the order from
// pending to paid. The status update is a compare-and-set: if another
// confirmation got there first the second one fails instead of rewriting.
func (p *PaymentUseCase) ConfirmPayment(ctx context.Context, txRef string, transactionID string) (*domain.Order, error) {
	const op = "PaymentUseCase.ConfirmPayment"

	gwTx, err := p.gateway.VerifyTransaction(ctx, transactionID)
	if err != nil {
		return nil, e.Wrap(op, err)
	}
	if gwTx.TxRef != txRef {
		p.logger.Warnf("Transaction reference mismatch. got: %s, want: %s", gwTx.TxRef, txRef)
		return nil, e.Wrap(op, e.ErrPaymentGateway)
	}

	order, err := p.orderRepo.GetByTxRef(ctx, txRef)
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	if !gwTx.Successful(order.Amount, domain.CurrencyUGX) {
		p.logger.Warnf(
			"Gateway reported unsuccessful transaction. tx_ref: %s, status: %s, amount: %d/%s",
			txRef, gwTx.Status, gwTx.Amount, gwTx.Currency,
		)
		return nil, e.Wrap(op, e.ErrPaymentGateway)
	}

	if order.Status == domain.OrderStatusPaid {
		// Webhook and redirect verification can race; the first one won.
		return order, nil
	}
	if order.Status != domain.OrderStatusPending {
		return nil, e.Wrap(op, e.ErrIllegalTransition)
	}

	ctx, tx, err := transaction.NewTransaction(ctx, pgx.TxOptions{}, p.dbPool)
	if err != nil {
		return nil, e.Wrap(op, err)
	}
	defer func() {
		if err != nil && tx.IsActive() {
			tx.Rollback(ctx)
		}
	}()
	ctx = context.WithValue(ctx, "tx", tx.Transaction())

	updated, err := p.orderRepo.UpdateStatus(
		ctx, order.ID, domain.OrderStatusPending, domain.OrderStatusPaid, &gwTx.TransactionID,
	)
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	if err = recordOrderEvent(ctx, p.outboxRepo, EventOrderStatusChanged, updated); err != nil {
		return nil, e.Wrap(op, err)
	}

	if err = tx.Commit(ctx); err != nil {
		return nil, e.Wrap(op, err)
	}

	return updated, nil
}
