package usecase

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/momozvault/go-backend/internal/domain"
)

// Mock implementations. Tests set only the funcs they exercise;
// unset funcs fall back to empty results.

type mockProductRepository struct {
	ListFunc       func(ctx context.Context, filter *ProductFilter) ([]domain.Product, error)
	GetByIDFunc    func(ctx context.Context, id string) (*domain.Product, error)
	CategoriesFunc func(ctx context.Context) ([]string, error)
	CreateFunc     func(ctx context.Context, product *domain.Product) (*domain.Product, error)
	UpdateFunc     func(ctx context.Context, product *domain.Product) (*domain.Product, error)
	DeleteFunc     func(ctx context.Context, id string) error
}

func (m *mockProductRepository) List(ctx context.Context, filter *ProductFilter) ([]domain.Product, error) {
	if m.ListFunc == nil {
		return nil, nil
	}
	return m.ListFunc(ctx, filter)
}

func (m *mockProductRepository) GetByID(ctx context.Context, id string) (*domain.Product, error) {
	return m.GetByIDFunc(ctx, id)
}

func (m *mockProductRepository) Categories(ctx context.Context) ([]string, error) {
	if m.CategoriesFunc == nil {
		return nil, nil
	}
	return m.CategoriesFunc(ctx)
}

func (m *mockProductRepository) Create(ctx context.Context, product *domain.Product) (*domain.Product, error) {
	return m.CreateFunc(ctx, product)
}

func (m *mockProductRepository) Update(ctx context.Context, product *domain.Product) (*domain.Product, error) {
	return m.UpdateFunc(ctx, product)
}

func (m *mockProductRepository) Delete(ctx context.Context, id string) error {
	return m.DeleteFunc(ctx, id)
}

type mockCartRepository struct {
	LoadFunc         func(ctx context.Context, token string) (*domain.Cart, error)
	SaveFunc         func(ctx context.Context, token string, cart *domain.Cart) error
	DeleteFunc       func(ctx context.Context, token string) error
	LoadCurrencyFunc func(ctx context.Context, token string) (domain.Currency, error)
	SaveCurrencyFunc func(ctx context.Context, token string, currency domain.Currency) error
}

func (m *mockCartRepository) Load(ctx context.Context, token string) (*domain.Cart, error) {
	if m.LoadFunc == nil {
		return &domain.Cart{}, nil
	}
	return m.LoadFunc(ctx, token)
}

func (m *mockCartRepository) Save(ctx context.Context, token string, cart *domain.Cart) error {
	if m.SaveFunc == nil {
		return nil
	}
	return m.SaveFunc(ctx, token, cart)
}

func (m *mockCartRepository) Delete(ctx context.Context, token string) error {
	if m.DeleteFunc == nil {
		return nil
	}
	return m.DeleteFunc(ctx, token)
}

func (m *mockCartRepository) LoadCurrency(ctx context.Context, token string) (domain.Currency, error) {
	if m.LoadCurrencyFunc == nil {
		return domain.DefaultCurrency, nil
	}
	return m.LoadCurrencyFunc(ctx, token)
}

func (m *mockCartRepository) SaveCurrency(ctx context.Context, token string, currency domain.Currency) error {
	if m.SaveCurrencyFunc == nil {
		return nil
	}
	return m.SaveCurrencyFunc(ctx, token, currency)
}

type mockOrderRepository struct {
	CreateFunc       func(ctx context.Context, order *domain.Order) (*domain.Order, error)
	GetByIDFunc      func(ctx context.Context, id string) (*domain.Order, error)
	GetByTxRefFunc   func(ctx context.Context, txRef string) (*domain.Order, error)
	ListByEmailFunc  func(ctx context.Context, email string) ([]domain.Order, error)
	ListFunc         func(ctx context.Context, status *domain.OrderStatus) ([]domain.Order, error)
	UpdateStatusFunc func(ctx context.Context, id string, from, to domain.OrderStatus, transactionID *string) (*domain.Order, error)
	SalesSinceFunc   func(ctx context.Context, since time.Time) ([]SalesPoint, error)
}

func (m *mockOrderRepository) Create(ctx context.Context, order *domain.Order) (*domain.Order, error) {
	return m.CreateFunc(ctx, order)
}

func (m *mockOrderRepository) GetByID(ctx context.Context, id string) (*domain.Order, error) {
	return m.GetByIDFunc(ctx, id)
}

func (m *mockOrderRepository) GetByTxRef(ctx context.Context, txRef string) (*domain.Order, error) {
	return m.GetByTxRefFunc(ctx, txRef)
}

func (m *mockOrderRepository) ListByEmail(ctx context.Context, email string) ([]domain.Order, error) {
	return m.ListByEmailFunc(ctx, email)
}

func (m *mockOrderRepository) List(ctx context.Context, status *domain.OrderStatus) ([]domain.Order, error) {
	return m.ListFunc(ctx, status)
}

func (m *mockOrderRepository) UpdateStatus(ctx context.Context, id string, from, to domain.OrderStatus, transactionID *string) (*domain.Order, error) {
	return m.UpdateStatusFunc(ctx, id, from, to, transactionID)
}

func (m *mockOrderRepository) SalesSince(ctx context.Context, since time.Time) ([]SalesPoint, error) {
	return m.SalesSinceFunc(ctx, since)
}

type mockReviewRepository struct {
	CreateFunc func(ctx context.Context, review *domain.Review) (*domain.Review, error)
	ListFunc   func(ctx context.Context) ([]domain.Review, error)
}

func (m *mockReviewRepository) Create(ctx context.Context, review *domain.Review) (*domain.Review, error) {
	return m.CreateFunc(ctx, review)
}

func (m *mockReviewRepository) List(ctx context.Context) ([]domain.Review, error) {
	return m.ListFunc(ctx)
}

type mockCacheRepository struct {
	GetProductFunc    func(ctx context.Context, id string) (*domain.Product, error)
	SetProductFunc    func(ctx context.Context, product *domain.Product) error
	DeleteProductFunc func(ctx context.Context, id string) error
}

func (m *mockCacheRepository) GetProduct(ctx context.Context, id string) (*domain.Product, error) {
	if m.GetProductFunc == nil {
		return nil, nil
	}
	return m.GetProductFunc(ctx, id)
}

func (m *mockCacheRepository) SetProduct(ctx context.Context, product *domain.Product) error {
	if m.SetProductFunc == nil {
		return nil
	}
	return m.SetProductFunc(ctx, product)
}

func (m *mockCacheRepository) DeleteProduct(ctx context.Context, id string) error {
	if m.DeleteProductFunc == nil {
		return nil
	}
	return m.DeleteProductFunc(ctx, id)
}

type mockOutboxRepository struct {
	CreateFunc func(ctx context.Context, event *OutboxEvent) (*OutboxEvent, error)
}

func (m *mockOutboxRepository) Create(ctx context.Context, event *OutboxEvent) (*OutboxEvent, error) {
	if m.CreateFunc == nil {
		return event, nil
	}
	return m.CreateFunc(ctx, event)
}

func (m *mockOutboxRepository) GetAndMarkAsProcessing(ctx context.Context, limit int) ([]*OutboxEvent, error) {
	return nil, nil
}

func (m *mockOutboxRepository) MarkAsProcessed(ctx context.Context, id int64) error {
	return nil
}

// stubTx satisfies pgx.Tx with no-ops so use cases can run their
// transactional paths against mock repositories.
type stubTx struct{}

func (stubTx) Begin(ctx context.Context) (pgx.Tx, error) { return stubTx{}, nil }
func (stubTx) Commit(ctx context.Context) error          { return nil }
func (stubTx) Rollback(ctx context.Context) error        { return nil }
func (stubTx) CopyFrom(ctx context.Context, tableName pgx.Identifier, columnNames []string, rowSrc pgx.CopyFromSource) (int64, error) {
	return 0, nil
}
func (stubTx) SendBatch(ctx context.Context, b *pgx.Batch) pgx.BatchResults { return nil }
func (stubTx) LargeObjects() pgx.LargeObjects                               { return pgx.LargeObjects{} }
func (stubTx) Prepare(ctx context.Context, name, sql string) (*pgconn.StatementDescription, error) {
	return nil, nil
}
func (stubTx) Exec(ctx context.Context, sql string, arguments ...any) (pgconn.CommandTag, error) {
	return pgconn.CommandTag{}, nil
}
func (stubTx) Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error) {
	return nil, nil
}
func (stubTx) QueryRow(ctx context.Context, sql string, args ...any) pgx.Row { return nil }
func (stubTx) Conn() *pgx.Conn                                               { return nil }

type stubTransactional struct{}

func (stubTransactional) BeginTx(ctx context.Context, _ pgx.TxOptions) (pgx.Tx, error) {
	return stubTx{}, nil
}

type mockPaymentGateway struct {
	CreatePaymentLinkFunc func(ctx context.Context, req *PaymentLinkReq) (*PaymentLink, error)
	VerifyTransactionFunc func(ctx context.Context, transactionID string) (*GatewayTransaction, error)
}

func (m *mockPaymentGateway) CreatePaymentLink(ctx context.Context, req *PaymentLinkReq) (*PaymentLink, error) {
	return m.CreatePaymentLinkFunc(ctx, req)
}

func (m *mockPaymentGateway) VerifyTransaction(ctx context.Context, transactionID string) (*GatewayTransaction, error) {
	return m.VerifyTransactionFunc(ctx, transactionID)
}

type mockImagesInfra struct {
	UploadImageFunc   func(ctx context.Context, req *UploadImageReq) (*UploadImageRes, error)
	CleanupImagesFunc func(keys []string)
}

func (m *mockImagesInfra) UploadImage(ctx context.Context, req *UploadImageReq) (*UploadImageRes, error) {
	return m.UploadImageFunc(ctx, req)
}

func (m *mockImagesInfra) CleanupImages(keys []string) {
	if m.CleanupImagesFunc != nil {
		m.CleanupImagesFunc(keys)
	}
}
