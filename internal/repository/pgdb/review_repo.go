package pgdb

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jimlawless/whereami"
	"github.com/momozvault/go-backend/internal/domain"
	"github.com/momozvault/go-backend/internal/repository/pgdb/converter"
	"github.com/momozvault/go-backend/pkg/e"
)

type ReviewRepo struct {
	pool *pgxpool.Pool
	conv converter.ReviewConverter
}

func NewReviewRepo(pool *pgxpool.Pool, conv converter.ReviewConverter) *ReviewRepo {
	return &ReviewRepo{
		pool: pool,
		conv: conv,
	}
}

func (r *ReviewRepo) Create(ctx context.Context, review *domain.Review) (*domain.Review, error) {
	model := r.conv.ToModel(review)
	query := `
		INSERT INTO reviews (name, email, message)
		VALUES ($1, $2, $3)
		RETURNING id, created_at
	`

	err := r.pool.QueryRow(ctx, query, model.Name, model.Email, model.Message).
		Scan(&model.ID, &model.CreatedAt)
	if err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	return r.conv.ToEntity(model), nil
}

// List returns all reviews, newest first.
func (r *ReviewRepo) List(ctx context.Context) ([]domain.Review, error) {
	query := `
		SELECT id, name, email, message, created_at
		FROM reviews
		ORDER BY created_at DESC
	`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}
	defer rows.Close()

	reviews := make([]domain.Review, 0)
	for rows.Next() {
		var model converter.ReviewModel
		if err := rows.Scan(&model.ID, &model.Name, &model.Email, &model.Message, &model.CreatedAt); err != nil {
			return nil, e.Wrap(whereami.WhereAmI(), err)
		}

		reviews = append(reviews, *r.conv.ToEntity(&model))
	}

	return reviews, rows.Err()
}
