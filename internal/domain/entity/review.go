package entity

import (
	"math"
	"time"

	"github.com/google/uuid"
)

// AnonymousReviewer is shown for reviews written by users without a display name.
const AnonymousReviewer = "Anonymous"

// Review ratings are bounded to this range.
const (
	MinRating = 1
	MaxRating = 5
)

// Review is an append-only rating left by a user on an offer.
type Review struct {
	ID        uuid.UUID `json:"id"`
	UserID    uuid.UUID `json:"user_id"`
	UserName  string    `json:"user_name"`
	OfferID   uuid.UUID `json:"offer_id"`
	Rating    int       `json:"rating"`
	Comment   string    `json:"comment"`
	CreatedAt time.Time `json:"created_at"`
}

// ReviewSummary aggregates the ratings of an offer.
type ReviewSummary struct {
	Average float64 `json:"average"`
	Count   int     `json:"count"`
}

// AverageRating returns the mean rating rounded to one decimal, 0 without reviews.
func AverageRating(reviews []*Review) float64 {
	if len(reviews) == 0 {
		return 0
	}

	sum := 0
	for _, r := range reviews {
		sum += r.Rating
	}

	return math.Round(float64(sum)/float64(len(reviews))*10) / 10
}

// SummarizeReviews builds the summary for a list of reviews.
func SummarizeReviews(reviews []*Review) ReviewSummary {
	return ReviewSummary{Average: AverageRating(reviews), Count: len(reviews)}
}
