package usecase

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/momozvault/go-backend/internal/domain"
	"github.com/momozvault/go-backend/pkg/e"
	"github.com/momozvault/go-backend/pkg/logger"
)

// CatalogUseCase implements catalog reads and admin product CRUD.
type CatalogUseCase struct {
	productRepo ProductRepository
	cacheRepo   CacheRepository
	imagesInfra ImagesInfra
	logger      logger.Logger
}

func NewCatalogUC(
	productRepo ProductRepository,
	cacheRepo CacheRepository,
	imagesInfra ImagesInfra,
	logger logger.Logger,
) *CatalogUseCase {
	return &CatalogUseCase{
		productRepo: productRepo,
		cacheRepo:   cacheRepo,
		imagesInfra: imagesInfra,
		logger:      logger,
	}
}

// ListProducts returns catalog products, newest first.
func (c *CatalogUseCase) ListProducts(ctx context.Context, req *ListProductsReq) ([]domain.Product, error) {
	const op = "CatalogUseCase.ListProducts"

	products, err := c.productRepo.List(ctx, &ProductFilter{
		Search:   strings.TrimSpace(req.Search),
		Featured: req.Featured,
		Limit:    req.Limit,
	})
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	return products, nil
}

// GetProduct returns one product, trying the cache before the database.
func (c *CatalogUseCase) GetProduct(ctx context.Context, id string) (*domain.Product, error) {
	const op = "CatalogUseCase.GetProduct"

	if cached, err := c.cacheRepo.GetProduct(ctx, id); err == nil && cached != nil {
		return cached, nil
	}

	product, err := c.productRepo.GetByID(ctx, id)
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	// Background cache fill; a miss here never fails the read.
	go func() {
		bgCtx, cancel := context.WithTimeout(context.Background(), 500*time.Millisecond)
		defer cancel()

		if err := c.cacheRepo.SetProduct(bgCtx, product); err != nil {
			c.logger.Warnf("Failed to cache product in background: %v", e.Wrap(op, err))
		}
	}()

	return product, nil
}

func (c *CatalogUseCase) ListCategories(ctx context.Context) ([]string, error) {
	const op = "CatalogUseCase.ListCategories"

	categories, err := c.productRepo.Categories(ctx)
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	return categories, nil
}

// CreateProduct validates and stores a new product, uploading its image first.
// The uploaded object is cleaned up when the insert fails.
func (c *CatalogUseCase) CreateProduct(ctx context.Context, req *SaveProductReq) (*domain.Product, error) {
	const op = "CatalogUseCase.CreateProduct"

	if err := c.validateProduct(req); err != nil {
		return nil, e.Wrap(op, err)
	}

	imageURL, objectKey, err := c.resolveImage(ctx, req)
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	product := domain.NewProduct(req.Name, req.Description, req.Category, req.Origin, req.PriceUGX, req.PriceKES)
	product.ID = uuid.NewString()
	product.Stock = req.Stock
	product.Featured = req.Featured
	product.ImageURL = imageURL

	created, err := c.productRepo.Create(ctx, product)
	if err != nil {
		if objectKey != "" {
			c.imagesInfra.CleanupImages([]string{objectKey})
		}
		return nil, e.Wrap(op, err)
	}

	return created, nil
}

// UpdateProduct applies admin edits to an existing product and invalidates
// its cache entry. Last writer wins; there is no version check.
func (c *CatalogUseCase) UpdateProduct(ctx context.Context, id string, req *SaveProductReq) (*domain.Product, error) {
	const op = "CatalogUseCase.UpdateProduct"

	if err := c.validateProduct(req); err != nil {
		return nil, e.Wrap(op, err)
	}

	existing, err := c.productRepo.GetByID(ctx, id)
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	imageURL, objectKey, err := c.resolveImage(ctx, req)
	if err != nil {
		return nil, e.Wrap(op, err)
	}
	if imageURL == "" {
		imageURL = existing.ImageURL
	}

	existing.Name = req.Name
	existing.Description = req.Description
	existing.Category = req.Category
	existing.Origin = req.Origin
	existing.PriceUGX = req.PriceUGX
	existing.PriceKES = req.PriceKES
	existing.Stock = req.Stock
	existing.Featured = req.Featured
	existing.ImageURL = imageURL

	updated, err := c.productRepo.Update(ctx, existing)
	if err != nil {
		if objectKey != "" {
			c.imagesInfra.CleanupImages([]string{objectKey})
		}
		return nil, e.Wrap(op, err)
	}

	if err := c.cacheRepo.DeleteProduct(ctx, id); err != nil {
		c.logger.Warnf("Failed to invalidate product cache: %v", e.Wrap(op, err))
	}

	return updated, nil
}

func (c *CatalogUseCase) DeleteProduct(ctx context.Context, id string) error {
	const op = "CatalogUseCase.DeleteProduct"

	if err := c.productRepo.Delete(ctx, id); err != nil {
		return e.Wrap(op, err)
	}

	if err := c.cacheRepo.DeleteProduct(ctx, id); err != nil {
		c.logger.Warnf("Failed to invalidate product cache: %v", e.Wrap(op, err))
	}

	return nil
}

// resolveImage uploads the attached image when present and returns the
// resulting public URL and object key. Falls back to the submitted URL.
func (c *CatalogUseCase) resolveImage(ctx context.Context, req *SaveProductReq) (string, string, error) {
	if req.Image == nil {
		return req.ImageURL, "", nil
	}

	res, err := c.imagesInfra.UploadImage(ctx, NewUploadImageReq(req.Name, *req.Image))
	if err != nil {
		return "", "", err
	}

	return res.URL, res.ObjectKey, nil
}

func (c *CatalogUseCase) validateProduct(req *SaveProductReq) error {
	if strings.TrimSpace(req.Name) == "" || strings.TrimSpace(req.Description) == "" {
		return e.ErrMissingFields
	}

	if req.PriceUGX <= 0 || req.PriceKES <= 0 {
		return e.ErrInvalidPrice
	}

	return nil
}
