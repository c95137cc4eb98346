package entity

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDiscountPercent(t *testing.T) {
	tests := []struct {
		name       string
		original   float64
		discounted float64
		want       int
	}{
		{name: "half price", original: 500, discounted: 250, want: 50},
		{name: "rounds to nearest", original: 300, discounted: 200, want: 33},
		{name: "rounds half up", original: 200, discounted: 199, want: 1},
		{name: "no discount", original: 100, discounted: 100, want: 0},
		{name: "free", original: 100, discounted: 0, want: 100},
		{name: "zero original", original: 0, discounted: 0, want: 0},
		{name: "negative original", original: -10, discounted: 5, want: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, DiscountPercent(tt.original, tt.discounted))
		})
	}
}

func TestOffer_DiscountPercentIsDerived(t *testing.T) {
	offer := &Offer{OriginalPrice: 500, DiscountedPrice: 250}
	assert.Equal(t, 50, offer.DiscountPercent())

	offer.DiscountedPrice = 400
	assert.Equal(t, 20, offer.DiscountPercent())
}

func TestOffer_Expiry(t *testing.T) {
	now := time.Date(2026, 5, 10, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name         string
		validUntil   time.Time
		wantExpired  bool
		wantSoon     bool
		wantDaysLeft int
	}{
		{name: "yesterday", validUntil: now.Add(-24 * time.Hour), wantExpired: true, wantSoon: false, wantDaysLeft: -1},
		{name: "exactly now", validUntil: now, wantExpired: false, wantSoon: false, wantDaysLeft: 0},
		{name: "one nanosecond ago", validUntil: now.Add(-time.Nanosecond), wantExpired: true, wantSoon: false, wantDaysLeft: 0},
		{name: "in two days", validUntil: now.Add(48 * time.Hour), wantExpired: false, wantSoon: true, wantDaysLeft: 2},
		{name: "in one hour", validUntil: now.Add(time.Hour), wantExpired: false, wantSoon: true, wantDaysLeft: 1},
		{name: "in exactly three days", validUntil: now.Add(72 * time.Hour), wantExpired: false, wantSoon: true, wantDaysLeft: 3},
		{name: "in three days and a minute", validUntil: now.Add(72*time.Hour + time.Minute), wantExpired: false, wantSoon: false, wantDaysLeft: 4},
		{name: "next month", validUntil: now.AddDate(0, 1, 0), wantExpired: false, wantSoon: false, wantDaysLeft: 31},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			offer := &Offer{ValidUntil: tt.validUntil}
			assert.Equal(t, tt.wantExpired, offer.IsExpired(now))
			assert.Equal(t, tt.wantSoon, offer.IsExpiringSoon(now))
			assert.Equal(t, tt.wantDaysLeft, offer.DaysLeft(now))
		})
	}
}

func TestParseValidUntil(t *testing.T) {
	t.Run("date only is midnight UTC", func(t *testing.T) {
		got, err := ParseValidUntil("2026-12-31")
		require.NoError(t, err)
		assert.Equal(t, time.Date(2026, 12, 31, 0, 0, 0, 0, time.UTC), got)
	})

	t.Run("RFC 3339 is normalised to UTC", func(t *testing.T) {
		got, err := ParseValidUntil("2026-12-31T10:30:00+05:30")
		require.NoError(t, err)
		assert.Equal(t, time.Date(2026, 12, 31, 5, 0, 0, 0, time.UTC), got)
		assert.Equal(t, time.UTC, got.Location())
	})

	t.Run("invalid", func(t *testing.T) {
		for _, in := range []string{"", "  ", "31/12/2026", "tomorrow"} {
			_, err := ParseValidUntil(in)
			assert.ErrorIs(t, err, ErrInvalidValidUntil, in)
		}
	})
}

func TestMatchesSearch(t *testing.T) {
	offer := &Offer{Title: "Weekend Pizza Deal", Description: "Two large pizzas for the price of one"}

	tests := []struct {
		name     string
		business string
		term     string
		want     bool
	}{
		{name: "empty term", term: "", want: true},
		{name: "blank term", term: "   ", want: true},
		{name: "title case insensitive", term: "PIZZA", want: true},
		{name: "description", term: "price of one", want: true},
		{name: "business name", business: "Mario's Kitchen", term: "mario", want: true},
		{name: "no match", business: "Mario's Kitchen", term: "sushi", want: false},
		{name: "trimmed term", term: "  deal ", want: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, MatchesSearch(offer, tt.business, tt.term))
		})
	}
}

func TestNewOfferFromForm(t *testing.T) {
	business := &Business{ID: uuid.New(), City: "Pune"}
	validUntil := time.Date(2026, 7, 1, 0, 0, 0, 0, time.UTC)
	form := OfferForm{
		Title:           "  Spa day ",
		Description:     "Full body massage",
		OriginalPrice:   2000,
		DiscountedPrice: 1500,
		Category:        "Beauty & Spa",
		ValidUntil:      validUntil,
	}

	offer := NewOfferFromForm(business, form, "https://cdn.example.com/offers/1.png")

	assert.NotEqual(t, uuid.Nil, offer.ID)
	assert.Equal(t, business.ID, offer.BusinessID)
	assert.Equal(t, "Pune", offer.City)
	assert.Equal(t, "Spa day", offer.Title)
	assert.Equal(t, validUntil, offer.ValidUntil)
	assert.Equal(t, "https://cdn.example.com/offers/1.png", offer.ImageURL)
	assert.Equal(t, 25, offer.DiscountPercent())
}
