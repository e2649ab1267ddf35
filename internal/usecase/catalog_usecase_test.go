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

func validSaveProductReq() *SaveProductReq {
	return &SaveProductReq{
		Name:        "Oud Royale",
		Description: "Deep resinous oud oil",
		Category:    "oud",
		Origin:      "UAE",
		PriceUGX:    85_000,
		PriceKES:    3_200,
		Stock:       12,
	}
}

func TestGetProduct_CacheHit(t *testing.T) {
	cached := testProduct("p1")
	productRepo := &mockProductRepository{
		GetByIDFunc: func(ctx context.Context, id string) (*domain.Product, error) {
			t.Fatal("database must not be hit on a cache hit")
			return nil, nil
		},
	}
	cacheRepo := &mockCacheRepository{
		GetProductFunc: func(ctx context.Context, id string) (*domain.Product, error) {
			return cached, nil
		},
	}
	uc := NewCatalogUC(productRepo, cacheRepo, &mockImagesInfra{}, logger.NewNop())

	got, err := uc.GetProduct(context.Background(), "p1")

	require.NoError(t, err)
	assert.Same(t, cached, got)
}

func TestGetProduct_CacheMissFillsInBackground(t *testing.T) {
	product := testProduct("p1")
	filled := make(chan *domain.Product, 1)

	productRepo := &mockProductRepository{
		GetByIDFunc: func(ctx context.Context, id string) (*domain.Product, error) {
			return product, nil
		},
	}
	cacheRepo := &mockCacheRepository{
		SetProductFunc: func(ctx context.Context, p *domain.Product) error {
			filled <- p
			return nil
		},
	}
	uc := NewCatalogUC(productRepo, cacheRepo, &mockImagesInfra{}, logger.NewNop())

	got, err := uc.GetProduct(context.Background(), "p1")

	require.NoError(t, err)
	assert.Equal(t, product, got)

	select {
	case p := <-filled:
		assert.Equal(t, "p1", p.ID)
	case <-time.After(time.Second):
		t.Fatal("cache was never filled")
	}
}

func TestGetProduct_NotFound(t *testing.T) {
	productRepo := &mockProductRepository{
		GetByIDFunc: func(ctx context.Context, id string) (*domain.Product, error) {
			return nil, e.ErrProductNotFound
		},
	}
	uc := NewCatalogUC(productRepo, &mockCacheRepository{}, &mockImagesInfra{}, logger.NewNop())

	_, err := uc.GetProduct(context.Background(), "missing")

	assert.ErrorIs(t, err, e.ErrProductNotFound)
}

func TestCreateProduct_RejectsInvalidForm(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*SaveProductReq)
		want   error
	}{
		{name: "empty name", mutate: func(r *SaveProductReq) { r.Name = "  " }, want: e.ErrMissingFields},
		{name: "empty description", mutate: func(r *SaveProductReq) { r.Description = "" }, want: e.ErrMissingFields},
		{name: "zero ugx price", mutate: func(r *SaveProductReq) { r.PriceUGX = 0 }, want: e.ErrInvalidPrice},
		{name: "negative kes price", mutate: func(r *SaveProductReq) { r.PriceKES = -1 }, want: e.ErrInvalidPrice},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			productRepo := &mockProductRepository{
				CreateFunc: func(ctx context.Context, p *domain.Product) (*domain.Product, error) {
					t.Fatal("invalid form must not reach the repository")
					return nil, nil
				},
			}
			uc := NewCatalogUC(productRepo, &mockCacheRepository{}, &mockImagesInfra{}, logger.NewNop())

			req := validSaveProductReq()
			tc.mutate(req)

			_, err := uc.CreateProduct(context.Background(), req)

			assert.ErrorIs(t, err, tc.want)
		})
	}
}

func TestCreateProduct_AssignsID(t *testing.T) {
	var inserted *domain.Product
	productRepo := &mockProductRepository{
		CreateFunc: func(ctx context.Context, p *domain.Product) (*domain.Product, error) {
			inserted = p
			return p, nil
		},
	}
	uc := NewCatalogUC(productRepo, &mockCacheRepository{}, &mockImagesInfra{}, logger.NewNop())

	created, err := uc.CreateProduct(context.Background(), validSaveProductReq())

	require.NoError(t, err)
	require.NotNil(t, inserted)
	// The id column has no database default; the insert carries it.
	assert.NotEmpty(t, inserted.ID)
	assert.Equal(t, inserted.ID, created.ID)
}

func TestCreateProduct_UploadsAttachedImage(t *testing.T) {
	productRepo := &mockProductRepository{
		CreateFunc: func(ctx context.Context, p *domain.Product) (*domain.Product, error) {
			return p, nil
		},
	}
	infra := &mockImagesInfra{
		UploadImageFunc: func(ctx context.Context, req *UploadImageReq) (*UploadImageRes, error) {
			return &UploadImageRes{ObjectKey: "oud-royale/abc.jpg", URL: "http://minio/images/oud-royale/abc.jpg"}, nil
		},
	}
	uc := NewCatalogUC(productRepo, &mockCacheRepository{}, infra, logger.NewNop())

	req := validSaveProductReq()
	req.Image = NewProductImage([]byte{0xff, 0xd8}, "image/jpeg", 2, "photo.jpg")

	created, err := uc.CreateProduct(context.Background(), req)

	require.NoError(t, err)
	assert.Equal(t, "http://minio/images/oud-royale/abc.jpg", created.ImageURL)
}

func TestCreateProduct_CleansUpImageOnInsertFailure(t *testing.T) {
	cleaned := make(chan []string, 1)

	productRepo := &mockProductRepository{
		CreateFunc: func(ctx context.Context, p *domain.Product) (*domain.Product, error) {
			return nil, e.ErrInternalServerError
		},
	}
	infra := &mockImagesInfra{
		UploadImageFunc: func(ctx context.Context, req *UploadImageReq) (*UploadImageRes, error) {
			return &UploadImageRes{ObjectKey: "oud-royale/abc.jpg", URL: "http://minio/images/oud-royale/abc.jpg"}, nil
		},
		CleanupImagesFunc: func(keys []string) {
			cleaned <- keys
		},
	}
	uc := NewCatalogUC(productRepo, &mockCacheRepository{}, infra, logger.NewNop())

	req := validSaveProductReq()
	req.Image = NewProductImage([]byte{0xff, 0xd8}, "image/jpeg", 2, "photo.jpg")

	_, err := uc.CreateProduct(context.Background(), req)

	require.Error(t, err)
	select {
	case keys := <-cleaned:
		assert.Equal(t, []string{"oud-royale/abc.jpg"}, keys)
	case <-time.After(time.Second):
		t.Fatal("orphaned image was never scheduled for cleanup")
	}
}

func TestUpdateProduct_KeepsExistingImageWithoutUpload(t *testing.T) {
	existing := testProduct("p1")
	existing.ImageURL = "http://minio/images/old.jpg"

	productRepo := &mockProductRepository{
		GetByIDFunc: func(ctx context.Context, id string) (*domain.Product, error) {
			return existing, nil
		},
		UpdateFunc: func(ctx context.Context, p *domain.Product) (*domain.Product, error) {
			return p, nil
		},
	}
	uc := NewCatalogUC(productRepo, &mockCacheRepository{}, &mockImagesInfra{}, logger.NewNop())

	updated, err := uc.UpdateProduct(context.Background(), "p1", validSaveProductReq())

	require.NoError(t, err)
	assert.Equal(t, "http://minio/images/old.jpg", updated.ImageURL)
}

func TestDeleteProduct_InvalidatesCache(t *testing.T) {
	var invalidated string

	productRepo := &mockProductRepository{
		DeleteFunc: func(ctx context.Context, id string) error { return nil },
	}
	cacheRepo := &mockCacheRepository{
		DeleteProductFunc: func(ctx context.Context, id string) error {
			invalidated = id
			return nil
		},
	}
	uc := NewCatalogUC(productRepo, cacheRepo, &mockImagesInfra{}, logger.NewNop())

	err := uc.DeleteProduct(context.Background(), "p1")

	require.NoError(t, err)
	assert.Equal(t, "p1", invalidated)
}
