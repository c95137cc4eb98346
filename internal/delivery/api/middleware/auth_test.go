package middleware

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"localdeal/internal/delivery/api/response"
	"localdeal/internal/domain/entity"
	domainerrors "localdeal/internal/domain/errors"
	"localdeal/internal/domain/service"
	mockService "localdeal/internal/mocks/service"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestAuthMiddleware(t *testing.T) (*AuthMiddleware, *mockService.MockTokenService) {
	tokenSvc := mockService.NewMockTokenService(t)

	return NewAuthMiddleware(AuthMiddlewareParams{
		TokenSvc: tokenSvc,
		Logger:   slog.New(slog.NewTextHandler(io.Discard, nil)),
	}), tokenSvc
}

func decodeErrorCode(t *testing.T, rec *httptest.ResponseRecorder) string {
	var body response.ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	require.NotNil(t, body.Error)

	return body.Error.Code
}

func TestAuthenticate(t *testing.T) {
	userID := uuid.New()

	tests := []struct {
		name       string
		header     string
		setupMock  func(m *mockService.MockTokenService)
		wantStatus int
		wantCode   string
	}{
		{
			name:       "missing header",
			wantStatus: http.StatusUnauthorized,
			wantCode:   "MISSING_TOKEN",
		},
		{
			name:       "not a bearer token",
			header:     "Basic abc",
			wantStatus: http.StatusUnauthorized,
			wantCode:   "INVALID_TOKEN",
		},
		{
			name:   "rejected token",
			header: "Bearer expired",
			setupMock: func(m *mockService.MockTokenService) {
				m.EXPECT().ValidateAccessToken("expired").Return(nil, domainerrors.ErrInvalidToken)
			},
			wantStatus: http.StatusUnauthorized,
			wantCode:   domainerrors.ErrInvalidToken.ErrorCode(),
		},
		{
			name:   "valid token",
			header: "Bearer good",
			setupMock: func(m *mockService.MockTokenService) {
				m.EXPECT().ValidateAccessToken("good").Return(&service.Claims{UserID: userID, Roles: []string{"owner"}, Type: "access"}, nil)
			},
			wantStatus: http.StatusOK,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mw, tokenSvc := newTestAuthMiddleware(t)
			if tt.setupMock != nil {
				tt.setupMock(tokenSvc)
			}

			e := echo.New()
			req := httptest.NewRequest(http.MethodGet, "/api/v1/me", nil)
			if tt.header != "" {
				req.Header.Set(echo.HeaderAuthorization, tt.header)
			}
			rec := httptest.NewRecorder()
			c := e.NewContext(req, rec)

			err := mw.Authenticate(func(c echo.Context) error {
				gotID, ok := GetUserID(c)
				assert.True(t, ok)
				assert.Equal(t, userID, gotID)

				roles, ok := GetRoles(c)
				assert.True(t, ok)
				assert.True(t, roles.Contains(entity.RoleOwner))

				return c.NoContent(http.StatusOK)
			})(c)

			require.NoError(t, err)
			assert.Equal(t, tt.wantStatus, rec.Code)
			if tt.wantCode != "" {
				assert.Equal(t, tt.wantCode, decodeErrorCode(t, rec))
			}
		})
	}
}

func TestRequireCompleteProfile(t *testing.T) {
	mw, _ := newTestAuthMiddleware(t)
	next := func(c echo.Context) error { return c.NoContent(http.StatusNoContent) }

	tests := []struct {
		name       string
		roles      entity.Roles
		wantStatus int
	}{
		{name: "no roles yet", roles: nil, wantStatus: http.StatusForbidden},
		{name: "customer", roles: entity.Roles{entity.RoleUser}, wantStatus: http.StatusNoContent},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := echo.New()
			rec := httptest.NewRecorder()
			c := e.NewContext(httptest.NewRequest(http.MethodPost, "/", nil), rec)
			SetIdentity(c, uuid.New(), tt.roles)

			require.NoError(t, mw.RequireCompleteProfile(next)(c))
			assert.Equal(t, tt.wantStatus, rec.Code)
		})
	}
}

func TestRequireRole(t *testing.T) {
	mw, _ := newTestAuthMiddleware(t)
	next := func(c echo.Context) error { return c.NoContent(http.StatusNoContent) }

	tests := []struct {
		name       string
		roles      entity.Roles
		wantStatus int
		wantCode   string
	}{
		{name: "incomplete profile", roles: entity.Roles{}, wantStatus: http.StatusForbidden, wantCode: domainerrors.ErrProfileIncomplete.ErrorCode()},
		{name: "customer is forbidden", roles: entity.Roles{entity.RoleUser}, wantStatus: http.StatusForbidden, wantCode: "FORBIDDEN"},
		{name: "owner passes", roles: entity.Roles{entity.RoleOwner}, wantStatus: http.StatusNoContent},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := echo.New()
			rec := httptest.NewRecorder()
			c := e.NewContext(httptest.NewRequest(http.MethodGet, "/api/v1/owner/offers", nil), rec)
			SetIdentity(c, uuid.New(), tt.roles)

			require.NoError(t, mw.RequireRole(entity.RoleOwner)(next)(c))
			assert.Equal(t, tt.wantStatus, rec.Code)
			if tt.wantCode != "" {
				assert.Equal(t, tt.wantCode, decodeErrorCode(t, rec))
			}
		})
	}
}

func TestGetUserID_Missing(t *testing.T) {
	c := echo.New().NewContext(httptest.NewRequest(http.MethodGet, "/", nil), httptest.NewRecorder())

	_, ok := GetUserID(c)
	assert.False(t, ok)

	SetIdentity(c, uuid.Nil, nil)
	_, ok = GetUserID(c)
	assert.False(t, ok)
}
