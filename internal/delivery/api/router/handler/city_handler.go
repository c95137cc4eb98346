package handler

import (
	"log/slog"
	"net/http"
	"strconv"

	"localdeal/internal/delivery/api/response"
	"localdeal/internal/domain/entity"
	"localdeal/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// CityHandlerParams holds dependencies for CityHandler, injected by Fx.
type CityHandlerParams struct {
	fx.In

	CityUC usecase.CityUsecase
	Logger *slog.Logger
}

// CityHandler serves the city catalogue.
type CityHandler struct {
	cityUC usecase.CityUsecase
	logger *slog.Logger
}

// NewCityHandler is the constructor for CityHandler.
func NewCityHandler(params CityHandlerParams) *CityHandler {
	return &CityHandler{
		cityUC: params.CityUC,
		logger: params.Logger,
	}
}

// NearestCityRequest is a device position.
type NearestCityRequest struct {
	Lat string `query:"lat" json:"lat" validate:"required,latitude"`
	Lon string `query:"lon" json:"lon" validate:"required,longitude"`
}

// NearestCityResponse is the closest known city.
type NearestCityResponse struct {
	City           *entity.City `json:"city"`
	DistanceMeters float64      `json:"distance_meters"`
}

// ListCities handles GET /api/v1/cities.
func (h *CityHandler) ListCities(c echo.Context) error {
	cities, err := h.cityUC.ListCities(c.Request().Context())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, cities)
}

// NearestCity handles GET /api/v1/cities/nearest.
func (h *CityHandler) NearestCity(c echo.Context) error {
	var req NearestCityRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid coordinates")
	}
	if err := c.Validate(&req); err != nil {
		return response.HandleAppError(c, err)
	}

	// both parse, the validator checked them
	lat, _ := strconv.ParseFloat(req.Lat, 64)
	lon, _ := strconv.ParseFloat(req.Lon, 64)

	output, err := h.cityUC.NearestCity(c.Request().Context(), lat, lon)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, NearestCityResponse{
		City:           output.City,
		DistanceMeters: output.DistanceMeters,
	})
}
