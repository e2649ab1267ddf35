package usecase

import (
	"context"
	"strings"

	"github.com/momozvault/go-backend/internal/domain"
	"github.com/momozvault/go-backend/pkg/e"
	"github.com/momozvault/go-backend/pkg/logger"
)

type ReviewUseCase struct {
	reviewRepo ReviewRepository
	logger     logger.Logger
}

func NewReviewUC(reviewRepo ReviewRepository, logger logger.Logger) *ReviewUseCase {
	return &ReviewUseCase{
		reviewRepo: reviewRepo,
		logger:     logger,
	}
}

func (r *ReviewUseCase) SubmitReview(ctx context.Context, req *SubmitReviewReq) (*domain.Review, error) {
	const op = "ReviewUseCase.SubmitReview"

	name := strings.TrimSpace(req.Name)
	email := strings.TrimSpace(req.Email)
	message := strings.TrimSpace(req.Message)

	if name == "" || message == "" || !emailRe.MatchString(email) {
		return nil, e.Wrap(op, e.ErrReviewValidation)
	}

	review, err := r.reviewRepo.Create(ctx, domain.NewReview(name, email, message))
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	return review, nil
}

func (r *ReviewUseCase) ListReviews(ctx context.Context) ([]domain.Review, error) {
	const op = "ReviewUseCase.ListReviews"

	reviews, err := r.reviewRepo.List(ctx)
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	return reviews, nil
}
