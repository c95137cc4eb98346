package entity

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestAverageRating(t *testing.T) {
	assert.Equal(t, 0.0, AverageRating(nil))
	assert.Equal(t, 4.0, AverageRating([]*Review{{Rating: 4}}))
	assert.Equal(t, 4.3, AverageRating([]*Review{{Rating: 4}, {Rating: 4}, {Rating: 5}}))
	assert.Equal(t, 2.5, AverageRating([]*Review{{Rating: 5}, {Rating: 1}, {Rating: 3}, {Rating: 1}}))

	summary := SummarizeReviews([]*Review{{Rating: 5}, {Rating: 4}})
	assert.Equal(t, ReviewSummary{Average: 4.5, Count: 2}, summary)
}

func TestFavoriteKey(t *testing.T) {
	userID := uuid.MustParse("11111111-1111-1111-1111-111111111111")
	offerID := uuid.MustParse("22222222-2222-2222-2222-222222222222")

	assert.Equal(t, "11111111-1111-1111-1111-111111111111_22222222-2222-2222-2222-222222222222", FavoriteKey(userID, offerID))

	fav := NewFavorite(userID, offerID)
	assert.Equal(t, FavoriteKey(userID, offerID), fav.Key)
	assert.Equal(t, userID, fav.UserID)
	assert.Equal(t, offerID, fav.OfferID)
}
