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

func setupSessionHandler(t *testing.T, userID uuid.UUID) (*echo.Echo, *mockUsecase.MockSessionUsecase) {
	sessionUC := mockUsecase.NewMockSessionUsecase(t)
	h := NewSessionHandler(SessionHandlerParams{SessionUC: sessionUC, Logger: discardLogger})

	e := newTestEcho()
	e.POST("/auth/firebase", h.SignIn)
	e.POST("/auth/refresh", h.Refresh)
	e.POST("/auth/logout", h.SignOut, withIdentity(userID))

	return e, sessionUC
}

func TestSessionHandler_SignIn(t *testing.T) {
	tests := []struct {
		name       string
		isNewUser  bool
		wantStatus int
	}{
		{name: "first sign-in creates the account", isNewUser: true, wantStatus: http.StatusCreated},
		{name: "returning user", isNewUser: false, wantStatus: http.StatusOK},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e, sessionUC := setupSessionHandler(t, uuid.New())
			user := &entity.User{ID: uuid.New()}

			sessionUC.EXPECT().SignIn(mock.Anything, &usecase.SignInInput{IDToken: "firebase-token"}).Return(&usecase.SessionOutput{
				AccessToken:  "access",
				RefreshToken: "refresh",
				User:         user,
				State:        entity.SessionProfileIncomplete,
				IsNewUser:    tt.isNewUser,
			}, nil)

			rec := doRequest(e, http.MethodPost, "/auth/firebase", `{"id_token":"firebase-token"}`, nil)

			require.Equal(t, tt.wantStatus, rec.Code, rec.Body.String())
			got := decodeData[SessionResponse](t, rec)
			assert.Equal(t, "access", got.AccessToken)
			assert.Equal(t, entity.SessionProfileIncomplete, got.State)
			require.NotNil(t, got.User)
			assert.False(t, got.User.ProfileComplete)
		})
	}
}

func TestSessionHandler_SignIn_Errors(t *testing.T) {
	e, sessionUC := setupSessionHandler(t, uuid.New())

	rec := doRequest(e, http.MethodPost, "/auth/firebase", `{}`, nil)
	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, decodeError(t, rec).Details, "id_token")

	sessionUC.EXPECT().SignIn(mock.Anything, mock.Anything).Return(nil, domainerrors.ErrAuthFailed)
	rec = doRequest(e, http.MethodPost, "/auth/firebase", `{"id_token":"forged"}`, nil)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestSessionHandler_Refresh(t *testing.T) {
	e, sessionUC := setupSessionHandler(t, uuid.New())

	sessionUC.EXPECT().Refresh(mock.Anything, "refresh").Return(&usecase.RefreshOutput{
		AccessToken: "new-access",
		User:        &entity.User{ID: uuid.New(), Role: entity.RoleUser, City: "Pune"},
		State:       entity.SessionAuthenticated,
	}, nil)

	rec := doRequest(e, http.MethodPost, "/auth/refresh", `{"refresh_token":"refresh"}`, nil)

	require.Equal(t, http.StatusOK, rec.Code)
	got := decodeData[RefreshResponse](t, rec)
	assert.Equal(t, "new-access", got.AccessToken)
	assert.True(t, got.User.ProfileComplete)
}

func TestSessionHandler_SignOut(t *testing.T) {
	userID := uuid.New()
	e, sessionUC := setupSessionHandler(t, userID)

	sessionUC.EXPECT().SignOut(mock.Anything, userID, "").Return(entity.SessionSignedOut, nil)

	rec := doRequest(e, http.MethodPost, "/auth/logout", "", nil)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, map[string]entity.SessionState{"state": entity.SessionSignedOut}, decodeData[map[string]entity.SessionState](t, rec))
}
