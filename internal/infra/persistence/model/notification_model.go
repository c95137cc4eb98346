package model

import (
	"time"

	"github.com/google/uuid"
)

// OfferNotificationModel is the GORM-specific struct for the 'offer_notifications' table.
type OfferNotificationModel struct {
	ID          uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	OfferID     uuid.UUID `gorm:"type:uuid;not null;index"`
	BusinessID  uuid.UUID `gorm:"type:uuid;not null;index"`
	City        string    `gorm:"type:varchar(100);not null"`
	Title       string    `gorm:"type:text;not null"`
	Body        string    `gorm:"type:text;not null"`
	TotalSent   int       `gorm:"not null;default:0"`
	TotalFailed int       `gorm:"not null;default:0"`
	PublishedAt time.Time
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// TableName explicitly sets the table name for GORM.
func (OfferNotificationModel) TableName() string {
	return "offer_notifications"
}

// NotificationLogModel is the GORM-specific struct for the 'notification_logs' table.
// It represents a log entry for a single notification sent to a user device.
type NotificationLogModel struct {
	ID             uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	NotificationID uuid.UUID `gorm:"type:uuid;not null;index"`
	UserID         uuid.UUID `gorm:"type:uuid;not null;index"`
	DeviceID       uuid.UUID `gorm:"type:uuid;not null;index"`
	Status         string    `gorm:"type:text;not null;default:'sent'"`
	FCMMessageID   string    `gorm:"type:text"`
	ErrorMessage   string    `gorm:"type:text"`
	SentAt         time.Time
}

// TableName explicitly sets the table name for GORM.
func (NotificationLogModel) TableName() string {
	return "notification_logs"
}
