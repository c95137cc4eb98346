package handler

import (
	"log/slog"
	"net/http"

	"localdeal/internal/delivery/api/response"
	"localdeal/internal/domain/entity"
	"localdeal/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// BusinessHandlerParams holds dependencies for BusinessHandler, injected by Fx.
type BusinessHandlerParams struct {
	fx.In

	BusinessUC usecase.BusinessUsecase
	Logger     *slog.Logger
}

// BusinessHandler serves business profiles.
type BusinessHandler struct {
	businessUC usecase.BusinessUsecase
	logger     *slog.Logger
}

// NewBusinessHandler is the constructor for BusinessHandler.
func NewBusinessHandler(params BusinessHandlerParams) *BusinessHandler {
	return &BusinessHandler{
		businessUC: params.BusinessUC,
		logger:     params.Logger,
	}
}

// ListBusinesses handles GET /api/v1/businesses?city=.
func (h *BusinessHandler) ListBusinesses(c echo.Context) error {
	businesses, err := h.businessUC.ListBusinesses(c.Request().Context(), c.QueryParam("city"))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, newBusinessViews(businesses))
}

// GetBusiness handles GET /api/v1/businesses/:id.
func (h *BusinessHandler) GetBusiness(c echo.Context) error {
	businessID, err := pathUUID(c, "id")
	if err != nil {
		return response.HandleAppError(c, err)
	}

	business, err := h.businessUC.GetBusiness(c.Request().Context(), businessID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, newBusinessView(business))
}

// GetMyBusiness handles GET /api/v1/owner/business.
func (h *BusinessHandler) GetMyBusiness(c echo.Context) error {
	ownerID, err := currentUserID(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	business, err := h.businessUC.GetMyBusiness(c.Request().Context(), ownerID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, newBusinessView(business))
}

// SaveMyBusiness handles PUT /api/v1/owner/business. The form is validated by the usecase.
func (h *BusinessHandler) SaveMyBusiness(c echo.Context) error {
	ownerID, err := currentUserID(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	var form entity.BusinessForm
	if err := c.Bind(&form); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid business input")
	}

	output, err := h.businessUC.SaveMyBusiness(c.Request().Context(), ownerID, &form)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	status := http.StatusOK
	if output.Created {
		status = http.StatusCreated
	}

	return response.Success(c, status, newBusinessView(output.Business))
}
