package handler

import (
	"log/slog"
	"net/http"

	"localdeal/internal/delivery/api/response"
	"localdeal/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// OfferHandlerParams holds dependencies for OfferHandler, injected by Fx.
type OfferHandlerParams struct {
	fx.In

	OfferUC usecase.OfferUsecase
	Logger  *slog.Logger
}

// OfferHandler serves the public offer listing.
type OfferHandler struct {
	offerUC usecase.OfferUsecase
	logger  *slog.Logger
}

// NewOfferHandler is the constructor for OfferHandler.
func NewOfferHandler(params OfferHandlerParams) *OfferHandler {
	return &OfferHandler{
		offerUC: params.OfferUC,
		logger:  params.Logger,
	}
}

// ListOffersRequest filters the offers of a city.
type ListOffersRequest struct {
	City     string `query:"city"`
	Category string `query:"category"`
	Search   string `query:"search"`
}

// ListOffers handles GET /api/v1/offers.
func (h *OfferHandler) ListOffers(c echo.Context) error {
	var req ListOffersRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid offer filter")
	}

	offers, err := h.offerUC.ListOffers(c.Request().Context(), &usecase.OfferQuery{
		City:     req.City,
		Category: req.Category,
		Search:   req.Search,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, newOfferViews(offers))
}

// GetOffer handles GET /api/v1/offers/:id.
func (h *OfferHandler) GetOffer(c echo.Context) error {
	offerID, err := pathUUID(c, "id")
	if err != nil {
		return response.HandleAppError(c, err)
	}

	offer, err := h.offerUC.GetOffer(c.Request().Context(), offerID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, newOfferView(offer))
}

// ListBusinessOffers handles GET /api/v1/businesses/:id/offers.
func (h *OfferHandler) ListBusinessOffers(c echo.Context) error {
	businessID, err := pathUUID(c, "id")
	if err != nil {
		return response.HandleAppError(c, err)
	}

	offers, err := h.offerUC.ListBusinessOffers(c.Request().Context(), businessID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, newOfferViews(offers))
}

// GetOfferQR handles GET /api/v1/offers/:id/qr and returns the share link as a PNG.
func (h *OfferHandler) GetOfferQR(c echo.Context) error {
	offerID, err := pathUUID(c, "id")
	if err != nil {
		return response.HandleAppError(c, err)
	}

	png, err := h.offerUC.GenerateOfferQR(c.Request().Context(), offerID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	c.Response().Header().Set(echo.HeaderCacheControl, "public, max-age=3600")

	return c.Blob(http.StatusOK, "image/png", png)
}
