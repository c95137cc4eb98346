// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"

	"localdeal/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// ErrNotificationNotFound is returned when a notification is not found.
var ErrNotificationNotFound = errors.New("notification not found")

// NotificationRepository defines the interface for offer notification history.
type NotificationRepository interface {
	// CreateNotification persists a new offer notification.
	CreateNotification(ctx context.Context, notification *entity.OfferNotification) error

	// FindNotificationsByBusiness lists the notifications sent for a business, newest first.
	FindNotificationsByBusiness(ctx context.Context, businessID uuid.UUID, limit, offset int) ([]*entity.OfferNotification, error)

	// UpdateNotificationStatus updates the total sent and failed counts for a notification.
	UpdateNotificationStatus(ctx context.Context, id uuid.UUID, totalSent, totalFailed int) error

	// BatchCreateNotificationLogs persists multiple notification log entries in a batch for better performance.
	BatchCreateNotificationLogs(ctx context.Context, logs []*entity.NotificationLog) error
}
