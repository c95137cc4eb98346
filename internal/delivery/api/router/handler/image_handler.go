package handler

import (
	"log/slog"
	"net/http"
	"strings"

	"localdeal/internal/delivery/api/response"
	deliverycontext "localdeal/internal/delivery/context"
	"localdeal/internal/domain/service"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// ImageHandlerParams holds dependencies for ImageHandler, injected by Fx.
type ImageHandlerParams struct {
	fx.In

	Storage service.ImageStorage
	Logger  *slog.Logger
}

// ImageHandler serves uploaded offer images when the bucket is not publicly reachable.
type ImageHandler struct {
	storage service.ImageStorage
	logger  *slog.Logger
}

// NewImageHandler is the constructor for ImageHandler.
func NewImageHandler(params ImageHandlerParams) *ImageHandler {
	return &ImageHandler{
		storage: params.Storage,
		logger:  params.Logger,
	}
}

// GetImage handles GET /images/*.
func (h *ImageHandler) GetImage(c echo.Context) error {
	key := strings.TrimPrefix(c.Param("*"), "/")
	if key == "" || strings.Contains(key, "..") {
		return response.NotFound(c, "IMAGE_NOT_FOUND", "Image not found")
	}

	data, contentType, err := h.storage.Download(c.Request().Context(), key)
	if errors.Is(err, service.ErrImageNotFound) {
		return response.NotFound(c, "IMAGE_NOT_FOUND", "Image not found")
	}
	if err != nil {
		deliverycontext.GetLoggerOrDefault(c.Request().Context(), h.logger).Error("Failed to read image",
			slog.String("key", key),
			slog.Any("error", err),
		)

		return response.Error(c, http.StatusBadGateway, "IMAGE_UNAVAILABLE", "Image is temporarily unavailable", nil)
	}

	if contentType == "" {
		contentType = http.DetectContentType(data)
	}
	c.Response().Header().Set(echo.HeaderCacheControl, "public, max-age=86400")

	return c.Blob(http.StatusOK, contentType, data)
}
