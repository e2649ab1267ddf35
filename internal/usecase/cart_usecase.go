package usecase

import (
	"context"

	"github.com/momozvault/go-backend/internal/domain"
	"github.com/momozvault/go-backend/pkg/e"
	"github.com/momozvault/go-backend/pkg/logger"
)

// CartUseCase implements the cart manager: every mutation is a discrete
// load-modify-persist cycle against the durable cart store, and the full
// snapshot is persisted before the mutation is acknowledged.
type CartUseCase struct {
	cartRepo    CartRepository
	productRepo ProductRepository
	logger      logger.Logger
}

func NewCartUC(cartRepo CartRepository, productRepo ProductRepository, logger logger.Logger) *CartUseCase {
	return &CartUseCase{
		cartRepo:    cartRepo,
		productRepo: productRepo,
		logger:      logger,
	}
}

func (c *CartUseCase) GetCart(ctx context.Context, token string) (*CartView, error) {
	const op = "CartUseCase.GetCart"

	cart, err := c.cartRepo.Load(ctx, token)
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	return c.view(ctx, token, cart), nil
}

// AddToCart snapshots the product into the cart, incrementing the quantity
// when a line for it already exists.
func (c *CartUseCase) AddToCart(ctx context.Context, token, productID string) (*CartView, error) {
	const op = "CartUseCase.AddToCart"

	product, err := c.productRepo.GetByID(ctx, productID)
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	cart, err := c.cartRepo.Load(ctx, token)
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	cart.Add(product)

	if err := c.cartRepo.Save(ctx, token, cart); err != nil {
		return nil, e.Wrap(op, err)
	}

	return c.view(ctx, token, cart), nil
}

// UpdateQuantity sets a line's quantity; zero or negative removes the line.
func (c *CartUseCase) UpdateQuantity(ctx context.Context, token, productID string, quantity int) (*CartView, error) {
	const op = "CartUseCase.UpdateQuantity"

	cart, err := c.cartRepo.Load(ctx, token)
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	cart.SetQuantity(productID, quantity)

	if err := c.cartRepo.Save(ctx, token, cart); err != nil {
		return nil, e.Wrap(op, err)
	}

	return c.view(ctx, token, cart), nil
}

// RemoveFromCart drops the line for the product id; absent lines are a no-op.
func (c *CartUseCase) RemoveFromCart(ctx context.Context, token, productID string) (*CartView, error) {
	const op = "CartUseCase.RemoveFromCart"

	cart, err := c.cartRepo.Load(ctx, token)
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	cart.Remove(productID)

	if err := c.cartRepo.Save(ctx, token, cart); err != nil {
		return nil, e.Wrap(op, err)
	}

	return c.view(ctx, token, cart), nil
}

func (c *CartUseCase) ClearCart(ctx context.Context, token string) error {
	const op = "CartUseCase.ClearCart"

	if err := c.cartRepo.Delete(ctx, token); err != nil {
		return e.Wrap(op, err)
	}

	return nil
}

func (c *CartUseCase) GetCurrency(ctx context.Context, token string) (domain.Currency, error) {
	const op = "CartUseCase.GetCurrency"

	currency, err := c.cartRepo.LoadCurrency(ctx, token)
	if err != nil {
		return "", e.Wrap(op, err)
	}

	return currency, nil
}

func (c *CartUseCase) SetCurrency(ctx context.Context, token string, currency domain.Currency) error {
	const op = "CartUseCase.SetCurrency"

	if err := c.cartRepo.SaveCurrency(ctx, token, currency); err != nil {
		return e.Wrap(op, err)
	}

	return nil
}

// view computes the derived cart values for the stored currency preference.
// Count and total are always recomputed from the line set, never stored.
func (c *CartUseCase) view(ctx context.Context, token string, cart *domain.Cart) *CartView {
	currency, err := c.cartRepo.LoadCurrency(ctx, token)
	if err != nil {
		c.logger.Warnf("Failed to load currency preference, using default: %v", err)
		currency = domain.DefaultCurrency
	}

	return NewCartView(cart, currency)
}
