package entity

import (
	"math"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

const (
	// ExpiringSoonDays is the window, in whole days, in which a live offer is flagged as expiring soon.
	ExpiringSoonDays = 3

	dateOnlyLayout = "2006-01-02"
	day            = 24 * time.Hour
)

// ErrInvalidValidUntil is returned when a validUntil value is neither RFC 3339 nor YYYY-MM-DD.
var ErrInvalidValidUntil = errors.New("validUntil must be RFC 3339 or YYYY-MM-DD")

// Offer is a time-bounded discount listing posted by a business.
// The discount percentage is never stored, it is derived from the two prices.
type Offer struct {
	ID              uuid.UUID `json:"id"`
	BusinessID      uuid.UUID `json:"business_id"`
	Title           string    `json:"title"`
	Description     string    `json:"description"`
	OriginalPrice   float64   `json:"original_price"`
	DiscountedPrice float64   `json:"discounted_price"`
	Category        string    `json:"category"`
	City            string    `json:"city"`        // Copied from the business when the offer is created.
	ValidUntil      time.Time `json:"valid_until"` // UTC instant after which the offer is expired.
	ImageURL        string    `json:"image_url,omitempty"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

// DiscountPercent returns the rounded discount percentage, or 0 when the original price is not positive.
func DiscountPercent(originalPrice, discountedPrice float64) int {
	if originalPrice <= 0 {
		return 0
	}

	return int(math.Round((originalPrice - discountedPrice) / originalPrice * 100))
}

// DiscountPercent derives the discount from the offer prices.
func (o *Offer) DiscountPercent() int {
	return DiscountPercent(o.OriginalPrice, o.DiscountedPrice)
}

// IsExpired reports whether validUntil lies strictly before now.
func (o *Offer) IsExpired(now time.Time) bool {
	return o.ValidUntil.Before(now)
}

// DaysLeft returns the number of started days until expiry. It is zero or negative once the offer expired.
func (o *Offer) DaysLeft(now time.Time) int {
	return int(math.Ceil(float64(o.ValidUntil.Sub(now)) / float64(day)))
}

// IsExpiringSoon reports whether the offer expires within ExpiringSoonDays.
func (o *Offer) IsExpiringSoon(now time.Time) bool {
	left := o.DaysLeft(now)

	return left > 0 && left <= ExpiringSoonDays
}

// Form returns the editable fields of the offer.
func (o *Offer) Form() OfferForm {
	return OfferForm{
		Title:           o.Title,
		Description:     o.Description,
		OriginalPrice:   o.OriginalPrice,
		DiscountedPrice: o.DiscountedPrice,
		Category:        o.Category,
		ValidUntil:      o.ValidUntil,
	}
}

// ApplyForm overwrites the editable fields with the (already validated) form.
func (o *Offer) ApplyForm(form OfferForm) {
	form = form.Normalize()
	o.Title = form.Title
	o.Description = form.Description
	o.OriginalPrice = form.OriginalPrice
	o.DiscountedPrice = form.DiscountedPrice
	o.Category = form.Category
	o.ValidUntil = form.ValidUntil
}

// NewOfferFromForm builds a new offer for the business. The offer inherits the business city.
func NewOfferFromForm(business *Business, form OfferForm, imageURL string) *Offer {
	offer := &Offer{
		ID:         uuid.New(),
		BusinessID: business.ID,
		City:       business.City,
		ImageURL:   imageURL,
	}
	offer.ApplyForm(form)

	return offer
}

// ParseValidUntil parses an RFC 3339 timestamp or a YYYY-MM-DD date (midnight UTC). The result is in UTC.
func ParseValidUntil(value string) (time.Time, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return time.Time{}, ErrInvalidValidUntil
	}

	if t, err := time.Parse(time.RFC3339, value); err == nil {
		return t.UTC(), nil
	}

	t, err := time.ParseInLocation(dateOnlyLayout, value, time.UTC)
	if err != nil {
		return time.Time{}, errors.Wrapf(ErrInvalidValidUntil, "parse %q", value)
	}

	return t, nil
}

// MatchesSearch reports whether term occurs, case-insensitively, in the offer title, description or
// the owning business name. A blank term matches every offer.
func MatchesSearch(offer *Offer, businessName, term string) bool {
	term = strings.ToLower(strings.TrimSpace(term))
	if term == "" {
		return true
	}

	return strings.Contains(strings.ToLower(offer.Title), term) ||
		strings.Contains(strings.ToLower(offer.Description), term) ||
		strings.Contains(strings.ToLower(businessName), term)
}
