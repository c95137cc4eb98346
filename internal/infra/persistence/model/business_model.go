package model

import (
	"time"

	"github.com/google/uuid"
)

// BusinessModel mirrors the 'businesses' table. owner_id is unique: one business per owner.
type BusinessModel struct {
	ID             uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	OwnerID        uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_businesses_owner_id"`
	Name           string    `gorm:"type:varchar(120);not null"`
	Description    string    `gorm:"type:text;not null;default:''"`
	Address        string    `gorm:"type:varchar(300);not null"`
	City           string    `gorm:"type:varchar(100);not null;index"`
	Phone          string    `gorm:"type:varchar(32);not null"`
	WhatsAppNumber string    `gorm:"column:whatsapp_number;type:varchar(32);not null;default:''"`
	Website        string    `gorm:"type:varchar(255);not null;default:''"`
	Category       string    `gorm:"type:varchar(50);not null"`
	CreatedAt      time.Time
	UpdatedAt      time.Time

	Owner  *UserModel   `gorm:"foreignKey:OwnerID;constraint:OnDelete:CASCADE"`
	Offers []OfferModel `gorm:"foreignKey:BusinessID;constraint:OnDelete:CASCADE"`
}

// TableName explicitly sets the table name for GORM.
func (BusinessModel) TableName() string {
	return "businesses"
}
