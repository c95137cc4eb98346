package handler

import (
	"log/slog"
	"net/http"

	"localdeal/internal/delivery/api/response"
	"localdeal/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// FavoriteHandlerParams holds dependencies for FavoriteHandler, injected by Fx.
type FavoriteHandlerParams struct {
	fx.In

	FavoriteUC usecase.FavoriteUsecase
	Logger     *slog.Logger
}

// FavoriteHandler serves offer bookmarks.
type FavoriteHandler struct {
	favoriteUC usecase.FavoriteUsecase
	logger     *slog.Logger
}

// NewFavoriteHandler is the constructor for FavoriteHandler.
func NewFavoriteHandler(params FavoriteHandlerParams) *FavoriteHandler {
	return &FavoriteHandler{
		favoriteUC: params.FavoriteUC,
		logger:     params.Logger,
	}
}

// FavoriteStatusResponse tells whether an offer is bookmarked.
type FavoriteStatusResponse struct {
	OfferID    uuid.UUID `json:"offer_id"`
	IsFavorite bool      `json:"is_favorite"`
}

// ToggleFavorite handles POST /api/v1/offers/:id/favorite.
func (h *FavoriteHandler) ToggleFavorite(c echo.Context) error {
	userID, offerID, err := userAndPathID(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	status, err := h.favoriteUC.Toggle(c.Request().Context(), userID, offerID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, FavoriteStatusResponse{OfferID: status.OfferID, IsFavorite: status.IsFavorite})
}

// GetFavoriteStatus handles GET /api/v1/offers/:id/favorite.
func (h *FavoriteHandler) GetFavoriteStatus(c echo.Context) error {
	userID, offerID, err := userAndPathID(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	status, err := h.favoriteUC.Status(c.Request().Context(), userID, offerID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, FavoriteStatusResponse{OfferID: status.OfferID, IsFavorite: status.IsFavorite})
}

// ListFavorites handles GET /api/v1/favorites.
func (h *FavoriteHandler) ListFavorites(c echo.Context) error {
	userID, err := currentUserID(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	offers, err := h.favoriteUC.List(c.Request().Context(), userID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, newOfferViews(offers))
}
