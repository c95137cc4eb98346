package response

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	deliverycontext "localdeal/internal/delivery/context"
	domainerrors "localdeal/internal/domain/errors"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newContext() (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	rec := httptest.NewRecorder()
	c := e.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), rec)
	deliverycontext.SetRequestID(c, "req-42")

	return c, rec
}

func TestSuccess_CarriesRequestID(t *testing.T) {
	c, rec := newContext()

	require.NoError(t, Success(c, http.StatusCreated, map[string]int{"n": 1}))

	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.JSONEq(t, `{"data":{"n":1},"meta":{"request_id":"req-42"}}`, rec.Body.String())
}

func TestHandleAppError(t *testing.T) {
	tests := []struct {
		name        string
		err         error
		wantStatus  int
		wantCode    string
		wantDetails any
	}{
		{
			name:       "wrapped sentinel",
			err:        errors.Wrap(domainerrors.ErrOfferNotFound, "load offer"),
			wantStatus: http.StatusNotFound,
			wantCode:   "OFFER_NOT_FOUND",
		},
		{
			name:        "validation fields become details",
			err:         domainerrors.NewValidationError(map[string]string{"title": "is required"}),
			wantStatus:  http.StatusBadRequest,
			wantCode:    "VALIDATION_FAILED",
			wantDetails: map[string]any{"title": "is required"},
		},
		{
			name:       "details hidden on 401",
			err:        domainerrors.NewBaseError(http.StatusUnauthorized, "INVALID_TOKEN", "Invalid token", "expired"),
			wantStatus: http.StatusUnauthorized,
			wantCode:   "INVALID_TOKEN",
		},
		{
			name:        "details kept on 4xx",
			err:         domainerrors.NewBaseError(http.StatusConflict, "CONFLICT", "Conflict", "already exists"),
			wantStatus:  http.StatusConflict,
			wantCode:    "CONFLICT",
			wantDetails: "already exists",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, rec := newContext()

			require.NoError(t, HandleAppError(c, tt.err))

			assert.Equal(t, tt.wantStatus, rec.Code)
			var body struct {
				Error struct {
					Code    string `json:"code"`
					Details any    `json:"details"`
				} `json:"error"`
				Meta MetaInfo `json:"meta"`
			}
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
			assert.Equal(t, tt.wantCode, body.Error.Code)
			assert.Equal(t, tt.wantDetails, body.Error.Details)
			assert.Equal(t, "req-42", body.Meta.RequestID)
		})
	}
}

func TestHandleAppError_PassesThroughPlainErrors(t *testing.T) {
	c, rec := newContext()

	err := HandleAppError(c, errors.New("boom"))

	require.Error(t, err)
	assert.False(t, c.Response().Committed)
	assert.Equal(t, 0, rec.Body.Len())
}
