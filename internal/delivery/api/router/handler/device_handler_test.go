package handler

import (
	"net/http"
	"testing"

	"localdeal/internal/domain/entity"
	domainerrors "localdeal/internal/domain/errors"
	mockUsecase "localdeal/internal/mocks/usecase"
	"localdeal/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func setupDeviceHandler(t *testing.T, userID uuid.UUID) (*echo.Echo, *mockUsecase.MockDeviceUsecase) {
	deviceUC := mockUsecase.NewMockDeviceUsecase(t)
	h := NewDeviceHandler(DeviceHandlerParams{DeviceUC: deviceUC, Logger: discardLogger})

	e := newTestEcho()
	g := e.Group("/api/v1/devices", withIdentity(userID))
	g.POST("", h.RegisterDevice)
	g.GET("", h.GetUserDevices)
	g.PUT("/:id/token", h.UpdateFCMToken)
	g.DELETE("/:id", h.DeactivateDevice)

	return e, deviceUC
}

func TestDeviceHandler_RegisterDevice(t *testing.T) {
	userID := uuid.New()
	e, deviceUC := setupDeviceHandler(t, userID)

	deviceUC.EXPECT().
		RegisterDevice(mock.Anything, userID, &usecase.DeviceInfo{FCMToken: "fcm-token-abcdef", DeviceID: "pixel-8", Platform: entity.PlatformAndroid}).
		Return(&entity.UserDevice{ID: uuid.New(), UserID: userID, FCMToken: "fcm-token-abcdef", DeviceID: "pixel-8", Platform: entity.PlatformAndroid, IsActive: true}, nil)

	rec := doRequest(e, http.MethodPost, "/api/v1/devices", `{"fcm_token":"fcm-token-abcdef","device_id":"pixel-8","platform":"Android"}`, nil)

	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	got := decodeData[DeviceView](t, rec)
	assert.Equal(t, "abcdef", got.TokenSuffix)
	assert.NotContains(t, rec.Body.String(), "fcm-token-abcdef")
}

func TestDeviceHandler_RegisterDevice_UnknownPlatform(t *testing.T) {
	e, _ := setupDeviceHandler(t, uuid.New())

	rec := doRequest(e, http.MethodPost, "/api/v1/devices", `{"fcm_token":"t","device_id":"d","platform":"symbian"}`, nil)

	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, decodeError(t, rec).Details, "platform")
}

func TestDeviceHandler_DeactivateDevice(t *testing.T) {
	userID := uuid.New()
	deviceID := uuid.New()
	e, deviceUC := setupDeviceHandler(t, userID)

	deviceUC.EXPECT().DeactivateDevice(mock.Anything, userID, deviceID).Return(domainerrors.ErrForbidden)

	rec := doRequest(e, http.MethodDelete, "/api/v1/devices/"+deviceID.String(), "", nil)

	assert.Equal(t, http.StatusForbidden, rec.Code)
}
