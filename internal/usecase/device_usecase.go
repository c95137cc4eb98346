package usecase

import (
	"context"

	"localdeal/internal/domain/entity"

	"github.com/google/uuid"
)

// DeviceInfo is the push registration a signed-in app sends after obtaining
// an FCM token. DeviceID is the app's own install identifier.
type DeviceInfo struct {
	FCMToken string `json:"fcm_token"`
	DeviceID string `json:"device_id"`
	Platform string `json:"platform"`
}

// DeviceUsecase manages the phones that receive a push when a business in
// the customer's city publishes an offer.
type DeviceUsecase interface {
	// RegisterDevice keeps one row per (user, device_id). A repeat
	// registration only swaps the token; a new install is stored active
	// with a lowercased platform.
	RegisterDevice(ctx context.Context, userID uuid.UUID, deviceInfo *DeviceInfo) (*entity.UserDevice, error)

	// UpdateFCMToken rotates the token of a device the user owns.
	UpdateFCMToken(ctx context.Context, userID uuid.UUID, deviceID uuid.UUID, fcmToken string) error

	// GetUserDevices lists the devices still eligible for pushes.
	GetUserDevices(ctx context.Context, userID uuid.UUID) ([]*entity.UserDevice, error)

	// DeactivateDevice stops pushes to a device, usually on sign-out.
	// Unknown ids are not found; another user's device is forbidden.
	DeactivateDevice(ctx context.Context, userID, deviceID uuid.UUID) error
}
