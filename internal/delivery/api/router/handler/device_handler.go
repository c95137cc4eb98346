package handler

import (
	"log/slog"
	"net/http"
	"strings"
	"time"

	"localdeal/internal/delivery/api/response"
	"localdeal/internal/domain/entity"
	"localdeal/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// DeviceHandlerParams holds dependencies for DeviceHandler, injected by Fx.
type DeviceHandlerParams struct {
	fx.In

	DeviceUC usecase.DeviceUsecase
	Logger   *slog.Logger
}

// DeviceHandler registers the push targets of a signed-in user.
type DeviceHandler struct {
	deviceUC usecase.DeviceUsecase
	logger   *slog.Logger
}

// NewDeviceHandler is the constructor for DeviceHandler.
func NewDeviceHandler(params DeviceHandlerParams) *DeviceHandler {
	return &DeviceHandler{
		deviceUC: params.DeviceUC,
		logger:   params.Logger,
	}
}

// RegisterDeviceRequest is sent by the app after it obtained an FCM token.
type RegisterDeviceRequest struct {
	FCMToken string `json:"fcm_token" validate:"required,max=4096"`
	DeviceID string `json:"device_id" validate:"required,max=255"`
	Platform string `json:"platform" validate:"required,oneof=ios android web"`
}

// UpdateFCMTokenRequest carries a rotated FCM token.
type UpdateFCMTokenRequest struct {
	FCMToken string `json:"fcm_token" validate:"required,max=4096"`
}

// DeviceView is a registered device. Tokens are credentials and never echoed back in full.
type DeviceView struct {
	ID          uuid.UUID `json:"id"`
	DeviceID    string    `json:"device_id"`
	Platform    string    `json:"platform"`
	TokenSuffix string    `json:"token_suffix"`
	IsActive    bool      `json:"is_active"`
	UpdatedAt   time.Time `json:"updated_at"`
}

const tokenSuffixLen = 6

func newDeviceView(d *entity.UserDevice) DeviceView {
	suffix := d.FCMToken
	if len(suffix) > tokenSuffixLen {
		suffix = suffix[len(suffix)-tokenSuffixLen:]
	}

	return DeviceView{
		ID:          d.ID,
		DeviceID:    d.DeviceID,
		Platform:    d.Platform,
		TokenSuffix: suffix,
		IsActive:    d.IsActive,
		UpdatedAt:   d.UpdatedAt,
	}
}

// RegisterDevice handles POST /api/v1/devices. Registering a known device_id refreshes its token.
func (h *DeviceHandler) RegisterDevice(c echo.Context) error {
	userID, err := currentUserID(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	var req RegisterDeviceRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid device input")
	}
	req.Platform = strings.ToLower(strings.TrimSpace(req.Platform))
	if err := c.Validate(&req); err != nil {
		return response.HandleAppError(c, err)
	}

	device, err := h.deviceUC.RegisterDevice(c.Request().Context(), userID, &usecase.DeviceInfo{
		FCMToken: req.FCMToken,
		DeviceID: req.DeviceID,
		Platform: req.Platform,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, newDeviceView(device))
}

// GetUserDevices handles GET /api/v1/devices.
func (h *DeviceHandler) GetUserDevices(c echo.Context) error {
	userID, err := currentUserID(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	devices, err := h.deviceUC.GetUserDevices(c.Request().Context(), userID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	views := make([]DeviceView, 0, len(devices))
	for _, d := range devices {
		views = append(views, newDeviceView(d))
	}

	return response.Success(c, http.StatusOK, views)
}

// UpdateFCMToken handles PUT /api/v1/devices/:id/token.
func (h *DeviceHandler) UpdateFCMToken(c echo.Context) error {
	userID, deviceID, err := userAndPathID(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	var req UpdateFCMTokenRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid FCM token input")
	}
	if err := c.Validate(&req); err != nil {
		return response.HandleAppError(c, err)
	}

	if err := h.deviceUC.UpdateFCMToken(c.Request().Context(), userID, deviceID, req.FCMToken); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Message(c, http.StatusOK, "FCM token updated")
}

// DeactivateDevice handles DELETE /api/v1/devices/:id. The device stops receiving offer pushes.
func (h *DeviceHandler) DeactivateDevice(c echo.Context) error {
	userID, deviceID, err := userAndPathID(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	if err := h.deviceUC.DeactivateDevice(c.Request().Context(), userID, deviceID); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Message(c, http.StatusOK, "Device deactivated")
}
