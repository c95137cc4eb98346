package usecase

import (
	"context"

	"localdeal/internal/domain/entity"

	"github.com/google/uuid"
)

// AddReviewInput holds a new review.
type AddReviewInput struct {
	Rating  int
	Comment string
}

// ReviewList is the reviews of an offer with their summary.
type ReviewList struct {
	Reviews []*entity.Review
	Summary entity.ReviewSummary
}

// ReviewUsecase defines review operations.
type ReviewUsecase interface {
	AddReview(ctx context.Context, userID, offerID uuid.UUID, input *AddReviewInput) (*entity.Review, error)
	ListReviews(ctx context.Context, offerID uuid.UUID) (*ReviewList, error)
}
