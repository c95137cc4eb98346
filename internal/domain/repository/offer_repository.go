package repository

import (
	"context"

	"localdeal/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// ErrOfferNotFound is returned when an offer is not found.
var ErrOfferNotFound = errors.New("offer not found")

// OfferFilter selects the offers of a city, optionally narrowed to one category.
type OfferFilter struct {
	City     string // Exact, case-sensitive match. Required.
	Category string // Empty means every category.
}

// OfferRepository defines the operations on offers. Listings are ordered newest first.
type OfferRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Offer, error)

	// FindByIDs batch-loads offers. Unknown IDs are skipped.
	FindByIDs(ctx context.Context, ids []uuid.UUID) ([]*entity.Offer, error)

	// FindByCity lists the offers matching the filter, newest first.
	FindByCity(ctx context.Context, filter OfferFilter) ([]*entity.Offer, error)

	// FindByBusinessID lists the offers of a business, newest first.
	FindByBusinessID(ctx context.Context, businessID uuid.UUID) ([]*entity.Offer, error)

	Create(ctx context.Context, offer *entity.Offer) error

	// Update persists the editable fields and never changes created_at.
	Update(ctx context.Context, offer *entity.Offer) error

	// MoveToCity sets the city of every offer of a business and returns how many offers moved.
	MoveToCity(ctx context.Context, businessID uuid.UUID, city string) (int64, error)

	// Delete removes the offer together with its favorites and reviews.
	Delete(ctx context.Context, id uuid.UUID) error
}
