package entity

import (
	"time"

	"github.com/google/uuid"
)

// Favorite marks an offer saved by a user. Key is unique per (user, offer).
type Favorite struct {
	Key       string    `json:"key"`
	UserID    uuid.UUID `json:"user_id"`
	OfferID   uuid.UUID `json:"offer_id"`
	CreatedAt time.Time `json:"created_at"`
}

// FavoriteKey returns the composite key "<userId>_<offerId>".
func FavoriteKey(userID, offerID uuid.UUID) string {
	return userID.String() + "_" + offerID.String()
}

// NewFavorite creates a favorite with its composite key.
func NewFavorite(userID, offerID uuid.UUID) *Favorite {
	return &Favorite{
		Key:     FavoriteKey(userID, offerID),
		UserID:  userID,
		OfferID: offerID,
	}
}
