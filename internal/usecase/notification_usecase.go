package usecase

import (
	"context"

	"localdeal/internal/domain/entity"
	"localdeal/internal/domain/service"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// ErrInvalidEvent marks an offer event that can never be processed, so redelivery is pointless.
var ErrInvalidEvent = errors.New("invalid offer event")

// NotificationUsecase defines the interface for offer notification use cases
type NotificationUsecase interface {
	// DeliverOfferPublished pushes a published offer to the devices of the customers in its city.
	DeliverOfferPublished(ctx context.Context, event *service.OfferPublishedEvent) (*entity.OfferNotification, error)

	// GetNotificationHistory retrieves the notifications sent for an owner's business with pagination
	GetNotificationHistory(ctx context.Context, ownerID uuid.UUID, limit, offset int) ([]*entity.OfferNotification, error)
}
