package repository

import (
	"context"

	"localdeal/internal/domain/entity"

	"github.com/google/uuid"
)

// ReviewRepository defines the operations on reviews. Reviews are append-only.
type ReviewRepository interface {
	Create(ctx context.Context, review *entity.Review) error

	// FindByOfferID lists the reviews of an offer, newest first.
	FindByOfferID(ctx context.Context, offerID uuid.UUID) ([]*entity.Review, error)
}
