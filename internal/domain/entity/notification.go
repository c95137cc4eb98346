// Package entity contains the core business objects of the project.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// Notification delivery statuses.
const (
	NotificationStatusSent   = "sent"
	NotificationStatusFailed = "failed"
)

// OfferNotification records one fan-out of a published offer to the customers of its city.
type OfferNotification struct {
	ID          uuid.UUID `json:"id"`
	OfferID     uuid.UUID `json:"offer_id"`
	BusinessID  uuid.UUID `json:"business_id"`
	City        string    `json:"city"`
	Title       string    `json:"title"`
	Body        string    `json:"body"`
	TotalSent   int       `json:"total_sent"`   // Number of devices that accepted the push.
	TotalFailed int       `json:"total_failed"` // Number of devices that rejected it.
	PublishedAt time.Time `json:"published_at"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// NotificationLog is the delivery result for a single device.
type NotificationLog struct {
	ID             uuid.UUID `json:"id"`
	NotificationID uuid.UUID `json:"notification_id"`
	UserID         uuid.UUID `json:"user_id"`
	DeviceID       uuid.UUID `json:"device_id"`
	Status         string    `json:"status"`
	FCMMessageID   string    `json:"fcm_message_id,omitempty"`
	ErrorMessage   string    `json:"error_message,omitempty"`
	SentAt         time.Time `json:"sent_at"`
}
