package usecase

import (
	"context"
	"time"

	"localdeal/internal/domain/entity"

	"github.com/google/uuid"
)

// OfferQuery selects the offers shown in a city.
type OfferQuery struct {
	City     string
	Category string // "" or "all" disables the category filter.
	Search   string // Case-insensitive, matched in memory.
}

// OfferDetail is an offer with everything derived at read time.
type OfferDetail struct {
	Offer           *entity.Offer
	BusinessName    string
	DiscountPercent int
	IsExpired       bool
	IsExpiringSoon  bool
	DaysLeft        int
	Contact         entity.ContactLinks
	ShareURL        string
}

// ImageUpload is an offer image received from an owner.
type ImageUpload struct {
	Filename    string
	ContentType string
	Data        []byte
}

// CreateOfferInput holds a new offer.
type CreateOfferInput struct {
	Form  entity.OfferForm
	Image *ImageUpload
}

// UpdateOfferInput holds the fields to change; nil fields keep their value.
type UpdateOfferInput struct {
	Title           *string
	Description     *string
	OriginalPrice   *float64
	DiscountedPrice *float64
	Category        *string
	ValidUntil      *time.Time
	Image           *ImageUpload
}

// OfferUsecase defines the read side of offers.
type OfferUsecase interface {
	// ListOffers returns the offers of a city, newest first. An empty city yields no offers.
	ListOffers(ctx context.Context, query *OfferQuery) ([]*OfferDetail, error)
	GetOffer(ctx context.Context, offerID uuid.UUID) (*OfferDetail, error)
	ListBusinessOffers(ctx context.Context, businessID uuid.UUID) ([]*OfferDetail, error)
	// GenerateOfferQR renders the share URL of an offer as a PNG.
	GenerateOfferQR(ctx context.Context, offerID uuid.UUID) ([]byte, error)
}

// OwnerOfferUsecase defines offer management for owners.
type OwnerOfferUsecase interface {
	ListOwnerOffers(ctx context.Context, ownerID uuid.UUID) ([]*OfferDetail, error)
	CreateOffer(ctx context.Context, ownerID uuid.UUID, input *CreateOfferInput) (*OfferDetail, error)
	UpdateOffer(ctx context.Context, ownerID, offerID uuid.UUID, input *UpdateOfferInput) (*OfferDetail, error)
	// DeleteOffer removes the offer with its favorites and reviews. confirmed must be true.
	DeleteOffer(ctx context.Context, ownerID, offerID uuid.UUID, confirmed bool) error
}
