package usecase

import (
	"context"

	"github.com/momozvault/go-backend/internal/domain"
)

type ImageRepository interface {
	// Upload stores the image and returns the object key.
	Upload(ctx context.Context, image *domain.Image) (string, error)
	Delete(ctx context.Context, key string) error
}

type PaymentGateway interface {
	// CreatePaymentLink initializes a hosted payment page for the order
	// and returns the redirect link.
	CreatePaymentLink(ctx context.Context, req *PaymentLinkReq) (*PaymentLink, error)
	// VerifyTransaction fetches the authoritative transaction state from
	// the gateway by transaction id.
	VerifyTransaction(ctx context.Context, transactionID string) (*GatewayTransaction, error)
}

type ImagesInfra interface {
	// UploadImage stores a product image and returns its public URL.
	UploadImage(ctx context.Context, req *UploadImageReq) (*UploadImageRes, error)
	CleanupImages(keys []string)
}

type MessageProducer interface {
	WriteRawMessage(ctx context.Context, req *WriteRawMessageReq) error
}
