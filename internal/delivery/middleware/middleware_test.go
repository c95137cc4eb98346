package middleware

import (
	"bytes"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"localdeal/config"
	deliverycontext "localdeal/internal/delivery/context"
	domainerrors "localdeal/internal/domain/errors"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRequestIDMiddleware_Process(t *testing.T) {
	tests := []struct {
		name     string
		incoming string
		keep     bool
	}{
		{name: "caller id is reused", incoming: "trace-123", keep: true},
		{name: "missing id is generated", incoming: ""},
		{name: "id with spaces is replaced", incoming: "a b"},
		{name: "oversized id is replaced", incoming: strings.Repeat("x", maxRequestIDLength+1)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := echo.New()
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			if tt.incoming != "" {
				req.Header.Set(deliverycontext.HeaderXRequestID, tt.incoming)
			}
			rec := httptest.NewRecorder()
			c := e.NewContext(req, rec)

			var ctxID string
			err := NewRequestIDMiddleware(slog.Default()).Process(func(c echo.Context) error {
				ctxID = deliverycontext.GetRequestIDFromContext(c.Request().Context())
				assert.NotNil(t, deliverycontext.GetLogger(c.Request().Context()))

				return nil
			})(c)
			require.NoError(t, err)

			headerID := rec.Header().Get(deliverycontext.HeaderXRequestID)
			assert.Equal(t, headerID, ctxID)
			if tt.keep {
				assert.Equal(t, tt.incoming, headerID)
			} else {
				assert.NotEqual(t, tt.incoming, headerID)
				assert.Len(t, headerID, 36)
			}
		})
	}
}

func TestAccessLogMiddleware_Handle(t *testing.T) {
	tests := []struct {
		name      string
		debug     bool
		route     string
		handler   echo.HandlerFunc
		wantLevel string
	}{
		{
			name:    "success is quiet outside debug",
			route:   "/api/v1/offers",
			handler: func(c echo.Context) error { return c.NoContent(http.StatusOK) },
		},
		{
			name:      "success is logged in debug",
			debug:     true,
			route:     "/api/v1/offers",
			handler:   func(c echo.Context) error { return c.NoContent(http.StatusOK) },
			wantLevel: "INFO",
		},
		{
			name:      "returned domain error uses its status",
			route:     "/api/v1/offers/:id",
			handler:   func(echo.Context) error { return domainerrors.ErrOfferNotFound },
			wantLevel: "WARN",
		},
		{
			name:      "unknown error is a server error",
			route:     "/api/v1/offers/:id",
			handler:   func(echo.Context) error { return assert.AnError },
			wantLevel: "ERROR",
		},
		{
			name:    "health probes are skipped",
			debug:   true,
			route:   "/health",
			handler: func(c echo.Context) error { return c.NoContent(http.StatusOK) },
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			logger := slog.New(slog.NewTextHandler(&buf, nil))
			cfg := &config.Config{}
			cfg.Env.Debug = tt.debug

			e := echo.New()
			c := e.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), httptest.NewRecorder())
			c.SetPath(tt.route)

			_ = NewAccessLogMiddleware(logger, cfg).Handle(tt.handler)(c)

			if tt.wantLevel == "" {
				assert.Empty(t, buf.String())

				return
			}
			assert.Contains(t, buf.String(), "level="+tt.wantLevel)
			assert.Contains(t, buf.String(), "route="+tt.route)
		})
	}
}
