package converter

import (
	"github.com/momozvault/go-backend/internal/domain"
)

// ProductConverter maps Product entities between domain and the Redis model.
type ProductConverter interface {
	ToRedisModel(entity *domain.Product) *ProductRedisModel
	ToEntity(model *ProductRedisModel) *domain.Product
}

// CartConverter maps Cart snapshots between domain and the Redis model.
type CartConverter interface {
	ToRedisModel(entity *domain.Cart) *CartRedisModel
	ToEntity(model *CartRedisModel) *domain.Cart
}

type ProductConverterImpl struct{}

func (c *ProductConverterImpl) ToRedisModel(entity *domain.Product) *ProductRedisModel {
	return &ProductRedisModel{
		ID:          entity.ID,
		Name:        entity.Name,
		Description: entity.Description,
		Category:    entity.Category,
		Origin:      entity.Origin,
		PriceUGX:    entity.PriceUGX,
		PriceKES:    entity.PriceKES,
		ImageURL:    entity.ImageURL,
		Stock:       entity.Stock,
		Featured:    entity.Featured,
		CreatedAt:   entity.CreatedAt,
		UpdatedAt:   entity.UpdatedAt,
	}
}

func (c *ProductConverterImpl) ToEntity(model *ProductRedisModel) *domain.Product {
	return &domain.Product{
		ID:          model.ID,
		Name:        model.Name,
		Description: model.Description,
		Category:    model.Category,
		Origin:      model.Origin,
		PriceUGX:    model.PriceUGX,
		PriceKES:    model.PriceKES,
		ImageURL:    model.ImageURL,
		Stock:       model.Stock,
		Featured:    model.Featured,
		CreatedAt:   model.CreatedAt,
		UpdatedAt:   model.UpdatedAt,
	}
}

type CartConverterImpl struct{}

func (c *CartConverterImpl) ToRedisModel(entity *domain.Cart) *CartRedisModel {
	lines := make([]CartLineRedisModel, 0, len(entity.Lines))
	for _, line := range entity.Lines {
		lines = append(lines, CartLineRedisModel{
			ProductID: line.ProductID,
			Name:      line.Name,
			Category:  line.Category,
			Origin:    line.Origin,
			ImageURL:  line.ImageURL,
			PriceUGX:  line.PriceUGX,
			PriceKES:  line.PriceKES,
			Quantity:  line.Quantity,
		})
	}

	return &CartRedisModel{Lines: lines}
}

func (c *CartConverterImpl) ToEntity(model *CartRedisModel) *domain.Cart {
	cart := &domain.Cart{}
	for _, line := range model.Lines {
		cart.Lines = append(cart.Lines, domain.CartLine{
			ProductID: line.ProductID,
			Name:      line.Name,
			Category:  line.Category,
			Origin:    line.Origin,
			ImageURL:  line.ImageURL,
			PriceUGX:  line.PriceUGX,
			PriceKES:  line.PriceKES,
			Quantity:  line.Quantity,
		})
	}

	return cart
}
