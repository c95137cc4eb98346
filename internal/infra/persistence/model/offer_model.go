package model

import (
	"time"

	"github.com/google/uuid"
)

// OfferModel mirrors the 'offers' table. The discount percentage is derived, never stored.
type OfferModel struct {
	ID              uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	BusinessID      uuid.UUID `gorm:"type:uuid;not null;index"`
	Title           string    `gorm:"type:varchar(120);not null"`
	Description     string    `gorm:"type:text;not null"`
	OriginalPrice   float64   `gorm:"type:numeric(12,2);not null"`
	DiscountedPrice float64   `gorm:"type:numeric(12,2);not null"`
	Category        string    `gorm:"type:varchar(50);not null;index:idx_offers_city_category,priority:2"`
	City            string    `gorm:"type:varchar(100);not null;index:idx_offers_city_category,priority:1"`
	ValidUntil      time.Time `gorm:"not null"`
	ImageURL        string    `gorm:"type:text;not null;default:''"`
	CreatedAt       time.Time `gorm:"index"`
	UpdatedAt       time.Time

	Favorites []FavoriteModel `gorm:"foreignKey:OfferID;constraint:OnDelete:CASCADE"`
	Reviews   []ReviewModel   `gorm:"foreignKey:OfferID;constraint:OnDelete:CASCADE"`
}

// TableName explicitly sets the table name for GORM.
func (OfferModel) TableName() string {
	return "offers"
}

// FavoriteModel mirrors the 'favorites' table. Key is "<user_id>_<offer_id>".
type FavoriteModel struct {
	Key       string    `gorm:"type:varchar(80);primary_key"`
	UserID    uuid.UUID `gorm:"type:uuid;not null;index"`
	OfferID   uuid.UUID `gorm:"type:uuid;not null;index"`
	CreatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (FavoriteModel) TableName() string {
	return "favorites"
}

// ReviewModel mirrors the 'reviews' table.
type ReviewModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	UserID    uuid.UUID `gorm:"type:uuid;not null;index"`
	UserName  string    `gorm:"type:varchar(100);not null"`
	OfferID   uuid.UUID `gorm:"type:uuid;not null;index"`
	Rating    int       `gorm:"type:smallint;not null;check:rating BETWEEN 1 AND 5"`
	Comment   string    `gorm:"type:text;not null"`
	CreatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (ReviewModel) TableName() string {
	return "reviews"
}
