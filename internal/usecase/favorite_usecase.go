package usecase

import (
	"context"

	"github.com/google/uuid"
)

// FavoriteStatus tells whether an offer is bookmarked by a user.
type FavoriteStatus struct {
	OfferID    uuid.UUID
	IsFavorite bool
}

// FavoriteUsecase defines bookmark operations.
type FavoriteUsecase interface {
	// Toggle creates the favorite when missing and removes it otherwise.
	Toggle(ctx context.Context, userID, offerID uuid.UUID) (*FavoriteStatus, error)
	Status(ctx context.Context, userID, offerID uuid.UUID) (*FavoriteStatus, error)
	// List returns the favorite offers, most recently bookmarked first.
	List(ctx context.Context, userID uuid.UUID) ([]*OfferDetail, error)
}
