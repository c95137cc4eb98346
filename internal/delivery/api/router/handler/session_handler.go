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

// SessionHandlerParams holds dependencies for SessionHandler, injected by Fx.
type SessionHandlerParams struct {
	fx.In

	SessionUC usecase.SessionUsecase
	Logger    *slog.Logger
}

// SessionHandler serves sign-in, token refresh and sign-out.
type SessionHandler struct {
	sessionUC usecase.SessionUsecase
	logger    *slog.Logger
}

// NewSessionHandler is the constructor for SessionHandler.
func NewSessionHandler(params SessionHandlerParams) *SessionHandler {
	return &SessionHandler{
		sessionUC: params.SessionUC,
		logger:    params.Logger,
	}
}

// SignInRequest carries the Firebase ID token of an anonymous or Google sign-in.
type SignInRequest struct {
	IDToken string `json:"id_token" validate:"required"`
}

// RefreshRequest carries the refresh token issued at sign-in.
type RefreshRequest struct {
	RefreshToken string `json:"refresh_token" validate:"required"`
}

// SignOutRequest ends one session, or every session of the user when RefreshToken is empty.
type SignOutRequest struct {
	RefreshToken string `json:"refresh_token"`
}

// SessionResponse is returned after a successful sign-in.
type SessionResponse struct {
	AccessToken  string              `json:"access_token"`
	RefreshToken string              `json:"refresh_token"`
	User         *UserView           `json:"user"`
	State        entity.SessionState `json:"state"`
	IsNewUser    bool                `json:"is_new_user"`
}

// RefreshResponse is returned after a token refresh.
type RefreshResponse struct {
	AccessToken string              `json:"access_token"`
	User        *UserView           `json:"user"`
	State       entity.SessionState `json:"state"`
}

// SignIn handles POST /auth/firebase.
func (h *SessionHandler) SignIn(c echo.Context) error {
	var req SignInRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid sign-in input")
	}
	if err := c.Validate(&req); err != nil {
		return response.HandleAppError(c, err)
	}

	output, err := h.sessionUC.SignIn(c.Request().Context(), &usecase.SignInInput{IDToken: req.IDToken})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	status := http.StatusOK
	if output.IsNewUser {
		status = http.StatusCreated
	}

	return response.Success(c, status, SessionResponse{
		AccessToken:  output.AccessToken,
		RefreshToken: output.RefreshToken,
		User:         newUserView(output.User),
		State:        output.State,
		IsNewUser:    output.IsNewUser,
	})
}

// Refresh handles POST /auth/refresh.
func (h *SessionHandler) Refresh(c echo.Context) error {
	var req RefreshRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid refresh token input")
	}
	if err := c.Validate(&req); err != nil {
		return response.HandleAppError(c, err)
	}

	output, err := h.sessionUC.Refresh(c.Request().Context(), req.RefreshToken)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, RefreshResponse{
		AccessToken: output.AccessToken,
		User:        newUserView(output.User),
		State:       output.State,
	})
}

// SignOut handles POST /auth/logout.
func (h *SessionHandler) SignOut(c echo.Context) error {
	userID, err := currentUserID(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	var req SignOutRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid logout input")
	}

	state, err := h.sessionUC.SignOut(c.Request().Context(), userID, req.RefreshToken)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, map[string]entity.SessionState{"state": state})
}
