package converter

import (
	"encoding/json"

	"github.com/momozvault/go-backend/internal/domain"
	"github.com/momozvault/go-backend/internal/usecase"
)

// ProductConverter maps Product entities between domain and the PostgreSQL model.
type ProductConverter interface {
	ToModel(entity *domain.Product) *ProductModel
	ToEntity(model *ProductModel) *domain.Product
}

// OrderConverter maps Order entities between domain and the PostgreSQL model.
// The item lines travel as JSONB, so conversion can fail.
type OrderConverter interface {
	ToModel(entity *domain.Order) (*OrderModel, error)
	ToEntity(model *OrderModel) (*domain.Order, error)
}

// ReviewConverter maps Review entities between domain and the PostgreSQL model.
type ReviewConverter interface {
	ToModel(entity *domain.Review) *ReviewModel
	ToEntity(model *ReviewModel) *domain.Review
}

// OutboxEventConverter maps OutboxEvent entities between usecase and the PostgreSQL model.
type OutboxEventConverter interface {
	ToModel(entity *usecase.OutboxEvent) *OutboxEventModel
	ToEntity(model *OutboxEventModel) *usecase.OutboxEvent
	ToArrEntity(models []*OutboxEventModel) []*usecase.OutboxEvent
}

type ProductConverterImpl struct{}

func (c *ProductConverterImpl) ToModel(entity *domain.Product) *ProductModel {
	return &ProductModel{
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

func (c *ProductConverterImpl) ToEntity(model *ProductModel) *domain.Product {
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

type OrderConverterImpl struct{}

func (c *OrderConverterImpl) ToModel(entity *domain.Order) (*OrderModel, error) {
	items, err := json.Marshal(entity.Items)
	if err != nil {
		return nil, err
	}

	return &OrderModel{
		ID:            entity.ID,
		CustomerName:  entity.CustomerName,
		Email:         entity.Email,
		Phone:         entity.Phone,
		Address:       entity.Address,
		City:          entity.City,
		Country:       entity.Country,
		Notes:         entity.Notes,
		Amount:        entity.Amount,
		Items:         items,
		PaymentMethod: entity.PaymentMethod,
		Status:        string(entity.Status),
		TxRef:         entity.TxRef,
		TransactionID: entity.TransactionID,
		CreatedAt:     entity.CreatedAt,
		UpdatedAt:     entity.UpdatedAt,
	}, nil
}

func (c *OrderConverterImpl) ToEntity(model *OrderModel) (*domain.Order, error) {
	var items []domain.CartLine
	if len(model.Items) > 0 {
		if err := json.Unmarshal(model.Items, &items); err != nil {
			return nil, err
		}
	}

	return &domain.Order{
		ID:            model.ID,
		CustomerName:  model.CustomerName,
		Email:         model.Email,
		Phone:         model.Phone,
		Address:       model.Address,
		City:          model.City,
		Country:       model.Country,
		Notes:         model.Notes,
		Amount:        model.Amount,
		Items:         items,
		PaymentMethod: model.PaymentMethod,
		Status:        domain.OrderStatus(model.Status),
		TxRef:         model.TxRef,
		TransactionID: model.TransactionID,
		CreatedAt:     model.CreatedAt,
		UpdatedAt:     model.UpdatedAt,
	}, nil
}

type ReviewConverterImpl struct{}

func (c *ReviewConverterImpl) ToModel(entity *domain.Review) *ReviewModel {
	return &ReviewModel{
		ID:        entity.ID,
		Name:      entity.Name,
		Email:     entity.Email,
		Message:   entity.Message,
		CreatedAt: entity.CreatedAt,
	}
}

func (c *ReviewConverterImpl) ToEntity(model *ReviewModel) *domain.Review {
	return &domain.Review{
		ID:        model.ID,
		Name:      model.Name,
		Email:     model.Email,
		Message:   model.Message,
		CreatedAt: model.CreatedAt,
	}
}

type OutboxEventConverterImpl struct{}

func (c *OutboxEventConverterImpl) ToModel(entity *usecase.OutboxEvent) *OutboxEventModel {
	return &OutboxEventModel{
		ID:          entity.ID,
		EventID:     entity.EventID,
		EventType:   entity.EventType,
		OrderID:     entity.OrderID,
		Payload:     entity.Payload,
		Status:      string(entity.Status),
		CreatedAt:   entity.CreatedAt,
		ProcessedAt: entity.ProcessedAt,
	}
}

func (c *OutboxEventConverterImpl) ToEntity(model *OutboxEventModel) *usecase.OutboxEvent {
	return &usecase.OutboxEvent{
		ID:          model.ID,
		EventID:     model.EventID,
		EventType:   model.EventType,
		OrderID:     model.OrderID,
		Payload:     model.Payload,
		Status:      usecase.OutboxStatus(model.Status),
		CreatedAt:   model.CreatedAt,
		ProcessedAt: model.ProcessedAt,
	}
}

func (c *OutboxEventConverterImpl) ToArrEntity(models []*OutboxEventModel) []*usecase.OutboxEvent {
	entities := make([]*usecase.OutboxEvent, 0, len(models))
	for _, model := range models {
		entities = append(entities, c.ToEntity(model))
	}
	return entities
}
