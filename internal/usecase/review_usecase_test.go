package usecase

import (
	"context"
	"testing"

	"github.com/momozvault/go-backend/internal/domain"
	"github.com/momozvault/go-backend/pkg/e"
	"github.com/momozvault/go-backend/pkg/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSubmitReview_Valid(t *testing.T) {
	ctx := context.Background()

	reviewRepo := &mockReviewRepository{
		CreateFunc: func(ctx context.Context, review *domain.Review) (*domain.Review, error) {
			review.ID = 1
			return review, nil
		},
	}

	uc := NewReviewUC(reviewRepo, logger.NewNop())

	review, err := uc.SubmitReview(ctx, &SubmitReviewReq{
		Name:    "  Amina K  ",
		Email:   "amina@example.com",
		Message: "Lovely oud, lasts all day.",
	})
	require.NoError(t, err)

	assert.Equal(t, int64(1), review.ID)
	assert.Equal(t, "Amina K", review.Name)
}

func TestSubmitReview_RejectsIncompleteSubmission(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name string
		req  SubmitReviewReq
	}{
		{"missing name", SubmitReviewReq{Email: "a@b.com", Message: "hi"}},
		{"missing message", SubmitReviewReq{Name: "A", Email: "a@b.com"}},
		{"blank message", SubmitReviewReq{Name: "A", Email: "a@b.com", Message: "   "}},
		{"malformed email", SubmitReviewReq{Name: "A", Email: "nope", Message: "hi"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			reviewRepo := &mockReviewRepository{
				CreateFunc: func(ctx context.Context, review *domain.Review) (*domain.Review, error) {
					t.Fatal("invalid review must not be stored")
					return nil, nil
				},
			}

			uc := NewReviewUC(reviewRepo, logger.NewNop())

			_, err := uc.SubmitReview(ctx, &tt.req)
			assert.ErrorIs(t, err, e.ErrReviewValidation)
		})
	}
}

func TestListReviews(t *testing.T) {
	ctx := context.Background()

	reviewRepo := &mockReviewRepository{
		ListFunc: func(ctx context.Context) ([]domain.Review, error) {
			return []domain.Review{{ID: 2}, {ID: 1}}, nil
		},
	}

	uc := NewReviewUC(reviewRepo, logger.NewNop())

	reviews, err := uc.ListReviews(ctx)
	require.NoError(t, err)
	assert.Len(t, reviews, 2)
}
