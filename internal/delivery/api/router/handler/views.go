package handler

import (
	"time"

	"localdeal/internal/domain/entity"
	"localdeal/internal/usecase"

	"github.com/google/uuid"
)

// OfferView is the JSON shape of an offer with its derived fields.
type OfferView struct {
	ID              uuid.UUID           `json:"id"`
	BusinessID      uuid.UUID           `json:"business_id"`
	BusinessName    string              `json:"business_name"`
	Title           string              `json:"title"`
	Description     string              `json:"description"`
	OriginalPrice   float64             `json:"original_price"`
	DiscountedPrice float64             `json:"discounted_price"`
	DiscountPercent int                 `json:"discount_percent"`
	Category        string              `json:"category"`
	City            string              `json:"city"`
	ImageURL        string              `json:"image_url,omitempty"`
	ValidUntil      time.Time           `json:"valid_until"`
	IsExpired       bool                `json:"is_expired"`
	IsExpiringSoon  bool                `json:"is_expiring_soon"`
	DaysLeft        int                 `json:"days_left"`
	Contact         entity.ContactLinks `json:"contact"`
	ShareURL        string              `json:"share_url"`
	CreatedAt       time.Time           `json:"created_at"`
}

func newOfferView(d *usecase.OfferDetail) OfferView {
	o := d.Offer

	return OfferView{
		ID:              o.ID,
		BusinessID:      o.BusinessID,
		BusinessName:    d.BusinessName,
		Title:           o.Title,
		Description:     o.Description,
		OriginalPrice:   o.OriginalPrice,
		DiscountedPrice: o.DiscountedPrice,
		DiscountPercent: d.DiscountPercent,
		Category:        o.Category,
		City:            o.City,
		ImageURL:        o.ImageURL,
		ValidUntil:      o.ValidUntil,
		IsExpired:       d.IsExpired,
		IsExpiringSoon:  d.IsExpiringSoon,
		DaysLeft:        d.DaysLeft,
		Contact:         d.Contact,
		ShareURL:        d.ShareURL,
		CreatedAt:       o.CreatedAt,
	}
}

func newOfferViews(details []*usecase.OfferDetail) []OfferView {
	views := make([]OfferView, 0, len(details))
	for _, d := range details {
		views = append(views, newOfferView(d))
	}

	return views
}

// BusinessView is the JSON shape of a business with its contact links.
type BusinessView struct {
	*entity.Business
	Contact entity.ContactLinks `json:"contact"`
}

func newBusinessView(d *usecase.BusinessDetail) BusinessView {
	return BusinessView{Business: d.Business, Contact: d.Contact}
}

func newBusinessViews(details []*usecase.BusinessDetail) []BusinessView {
	views := make([]BusinessView, 0, len(details))
	for _, d := range details {
		views = append(views, newBusinessView(d))
	}

	return views
}

// UserView is the JSON shape of a profile.
type UserView struct {
	*entity.User
	ProfileComplete bool `json:"profile_complete"`
}

func newUserView(u *entity.User) *UserView {
	if u == nil {
		return nil
	}

	return &UserView{User: u, ProfileComplete: u.IsProfileComplete()}
}
