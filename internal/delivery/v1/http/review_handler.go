package http

import (
	"net/http"

	"github.com/momozvault/go-backend/internal/usecase"
	"github.com/momozvault/go-backend/pkg/logger"
)

type ReviewHandler struct {
	reviewUC usecase.ReviewUC
	logger   logger.Logger
}

func NewReviewHandler(reviewUC usecase.ReviewUC, logger logger.Logger) *ReviewHandler {
	return &ReviewHandler{
		reviewUC: reviewUC,
		logger:   logger,
	}
}

type submitReviewRequest struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Message string `json:"message"`
}

// submitReview
//
//	@Summary	Leave a customer review
//	@Tags		reviews
//	@Accept		json
//	@Produce	json
//	@Param		review	body		submitReviewRequest	true	"Review"
//	@Success	201		{object}	ReviewResponse
//	@Failure	400		{object}	ErrorResponse
//	@Router		/reviews [post]
func (rh *ReviewHandler) submitReview(w http.ResponseWriter, r *http.Request) {
	var req submitReviewRequest
	if err := decodeJSON(r, &req); err != nil {
		WriteError(w, err)
		return
	}

	review, err := rh.reviewUC.SubmitReview(r.Context(), &usecase.SubmitReviewReq{
		Name:    req.Name,
		Email:   req.Email,
		Message: req.Message,
	})
	if err != nil {
		rh.logger.Warnf("%s", err.Error())
		WriteError(w, err)
		return
	}

	WriteSuccess(w, http.StatusCreated, NewReviewResponse(review))
}

// listReviews
//
//	@Summary	List customer reviews
//	@Tags		reviews
//	@Produce	json
//	@Success	200	{array}	ReviewResponse
//	@Router		/reviews [get]
func (rh *ReviewHandler) listReviews(w http.ResponseWriter, r *http.Request) {
	reviews, err := rh.reviewUC.ListReviews(r.Context())
	if err != nil {
		rh.logger.Warnf("%s", err.Error())
		WriteError(w, err)
		return
	}

	WriteSuccess(w, http.StatusOK, NewReviewListResponse(reviews))
}
