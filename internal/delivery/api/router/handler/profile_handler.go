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

// ProfileHandlerParams holds dependencies for ProfileHandler, injected by Fx.
type ProfileHandlerParams struct {
	fx.In

	ProfileUC usecase.ProfileUsecase
	Logger    *slog.Logger
}

// ProfileHandler serves the signed-in user's profile.
type ProfileHandler struct {
	profileUC usecase.ProfileUsecase
	logger    *slog.Logger
}

// NewProfileHandler is the constructor for ProfileHandler.
func NewProfileHandler(params ProfileHandlerParams) *ProfileHandler {
	return &ProfileHandler{
		profileUC: params.ProfileUC,
		logger:    params.Logger,
	}
}

// UpdateProfileRequest completes or edits the profile.
type UpdateProfileRequest struct {
	Role string `json:"role" validate:"required,oneof=user owner"`
	City string `json:"city" validate:"required"`
	Name string `json:"name" validate:"max=120"`
}

// ProfileResponse is the profile with where it was read from.
type ProfileResponse struct {
	User    *UserView `json:"user"`
	Source  string    `json:"source"`
	Warning string    `json:"warning,omitempty"`
}

// UpdateProfileResponse carries the saved profile and an access token with the new role.
type UpdateProfileResponse struct {
	User        *UserView           `json:"user"`
	AccessToken string              `json:"access_token"`
	Persisted   bool                `json:"persisted"`
	Warning     string              `json:"warning,omitempty"`
	State       entity.SessionState `json:"state"`
}

// GetProfile handles GET /api/v1/me.
func (h *ProfileHandler) GetProfile(c echo.Context) error {
	userID, err := currentUserID(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	output, err := h.profileUC.GetProfile(c.Request().Context(), userID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, ProfileResponse{
		User:    newUserView(output.User),
		Source:  output.Source,
		Warning: output.Warning,
	})
}

// UpdateProfile handles PUT /api/v1/me/profile.
func (h *ProfileHandler) UpdateProfile(c echo.Context) error {
	userID, err := currentUserID(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	var req UpdateProfileRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid profile input")
	}
	if err := c.Validate(&req); err != nil {
		return response.HandleAppError(c, err)
	}

	output, err := h.profileUC.UpdateUserRole(c.Request().Context(), userID, &usecase.UpdateUserRoleInput{
		Role: entity.Role(req.Role),
		City: req.City,
		Name: req.Name,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, UpdateProfileResponse{
		User:        newUserView(output.User),
		AccessToken: output.AccessToken,
		Persisted:   output.Persisted,
		Warning:     output.Warning,
		State:       output.State,
	})
}
