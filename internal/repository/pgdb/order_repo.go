package pgdb

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jimlawless/whereami"
	"github.com/momozvault/go-backend/internal/domain"
	"github.com/momozvault/go-backend/internal/repository/pgdb/converter"
	"github.com/momozvault/go-backend/internal/usecase"
	"github.com/momozvault/go-backend/pkg/e"
	"github.com/momozvault/go-backend/pkg/tr"
)

// OrderRepo implements the order repository on top of PostgreSQL.
// Item lines are stored denormalized as JSONB: they are immutable
// snapshots, never joined against the live catalog.
type OrderRepo struct {
	pool *pgxpool.Pool
	conv converter.OrderConverter
}

func NewOrderRepo(pool *pgxpool.Pool, conv converter.OrderConverter) *OrderRepo {
	return &OrderRepo{
		pool: pool,
		conv: conv,
	}
}

const orderColumns = `
	id, customer_name, email, phone, address, city, country, notes,
	amount, items, payment_method, status, tx_ref, transaction_id,
	created_at, updated_at
`

// Create inserts the order inside the transaction stored in ctx.
func (o *OrderRepo) Create(ctx context.Context, order *domain.Order) (*domain.Order, error) {
	tx, err := tr.TxFromCtx(ctx)
	if err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	model, err := o.conv.ToModel(order)
	if err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	query := `
		INSERT INTO orders (
			id, customer_name, email, phone, address, city, country, notes,
			amount, items, payment_method, status, tx_ref
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)
		RETURNING created_at
	`

	err = tx.QueryRow(ctx, query,
		model.ID, model.CustomerName, model.Email, model.Phone,
		model.Address, model.City, model.Country, model.Notes,
		model.Amount, model.Items, model.PaymentMethod, model.Status, model.TxRef,
	).Scan(&model.CreatedAt)
	if err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	return o.conv.ToEntity(model)
}

func (o *OrderRepo) GetByID(ctx context.Context, id string) (*domain.Order, error) {
	query := `SELECT ` + orderColumns + ` FROM orders WHERE id = $1`

	return o.getOne(ctx, query, id)
}

func (o *OrderRepo) GetByTxRef(ctx context.Context, txRef string) (*domain.Order, error) {
	query := `SELECT ` + orderColumns + ` FROM orders WHERE tx_ref = $1`

	return o.getOne(ctx, query, txRef)
}

func (o *OrderRepo) ListByEmail(ctx context.Context, email string) ([]domain.Order, error) {
	query := `
		SELECT ` + orderColumns + `
		FROM orders
		WHERE email = $1
		ORDER BY created_at DESC
	`

	return o.list(ctx, query, email)
}

func (o *OrderRepo) List(ctx context.Context, status *domain.OrderStatus) ([]domain.Order, error) {
	query := `
		SELECT ` + orderColumns + `
		FROM orders
		WHERE $1::text IS NULL OR status = $1
		ORDER BY created_at DESC
	`

	var arg *string
	if status != nil {
		s := string(*status)
		arg = &s
	}

	return o.list(ctx, query, arg)
}

// UpdateStatus transitions the order only when its current status still
// equals from. A zero-row update means another writer moved the order
// first; the caller gets ErrIllegalTransition instead of a silent
// overwrite. Runs inside the transaction stored in ctx.
func (o *OrderRepo) UpdateStatus(ctx context.Context, id string, from, to domain.OrderStatus, transactionID *string) (*domain.Order, error) {
	tx, err := tr.TxFromCtx(ctx)
	if err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	query := `
		UPDATE orders
		SET status = $3,
			transaction_id = COALESCE($4, transaction_id),
			updated_at = NOW()
		WHERE id = $1 AND status = $2
		RETURNING ` + orderColumns

	model, err := scanOrder(tx.QueryRow(ctx, query, id, string(from), string(to), transactionID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, e.Wrap(whereami.WhereAmI(), e.ErrIllegalTransition)
		}

		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	return o.conv.ToEntity(model)
}

// SalesSince returns the creation time and amount of every order created
// at or after the cutoff, cancelled orders excluded.
func (o *OrderRepo) SalesSince(ctx context.Context, since time.Time) ([]usecase.SalesPoint, error) {
	query := `
		SELECT created_at, amount
		FROM orders
		WHERE created_at >= $1 AND status <> $2
		ORDER BY created_at
	`

	rows, err := o.pool.Query(ctx, query, since, string(domain.OrderStatusCancelled))
	if err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}
	defer rows.Close()

	points := make([]usecase.SalesPoint, 0)
	for rows.Next() {
		var point usecase.SalesPoint
		if err := rows.Scan(&point.CreatedAt, &point.Amount); err != nil {
			return nil, e.Wrap(whereami.WhereAmI(), err)
		}

		points = append(points, point)
	}

	return points, rows.Err()
}

func (o *OrderRepo) getOne(ctx context.Context, query string, arg any) (*domain.Order, error) {
	model, err := scanOrder(o.pool.QueryRow(ctx, query, arg))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, e.Wrap(whereami.WhereAmI(), e.ErrOrderNotFound)
		}

		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	return o.conv.ToEntity(model)
}

func (o *OrderRepo) list(ctx context.Context, query string, arg any) ([]domain.Order, error) {
	rows, err := o.pool.Query(ctx, query, arg)
	if err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}
	defer rows.Close()

	orders := make([]domain.Order, 0)
	for rows.Next() {
		model, err := scanOrder(rows)
		if err != nil {
			return nil, e.Wrap(whereami.WhereAmI(), err)
		}

		order, err := o.conv.ToEntity(model)
		if err != nil {
			return nil, e.Wrap(whereami.WhereAmI(), err)
		}

		orders = append(orders, *order)
	}

	return orders, rows.Err()
}

func scanOrder(row pgx.Row) (*converter.OrderModel, error) {
	var model converter.OrderModel
	err := row.Scan(
		&model.ID, &model.CustomerName, &model.Email, &model.Phone,
		&model.Address, &model.City, &model.Country, &model.Notes,
		&model.Amount, &model.Items, &model.PaymentMethod, &model.Status,
		&model.TxRef, &model.TransactionID, &model.CreatedAt, &model.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	return &model, nil
}
