package router

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"localdeal/config"

	"github.com/labstack/echo/v4"
	"github.com/labstack/gommon/bytes"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIsUploadRoute(t *testing.T) {
	tests := []struct {
		path string
		want bool
	}{
		{path: "/api/v1/owner/offers", want: true},
		{path: "/api/v1/owner/offers/:id", want: true},
		{path: "/api/v1/owner/business", want: false},
		{path: "/api/v1/offers", want: false},
		{path: "", want: false},
	}

	e := echo.New()
	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			c := e.NewContext(httptest.NewRequest(http.MethodPost, "/", nil), httptest.NewRecorder())
			c.SetPath(tt.path)

			assert.Equal(t, tt.want, IsUploadRoute(c))
		})
	}
}

func TestUploadLimit(t *testing.T) {
	tests := []struct {
		name     string
		storage  *config.StorageConfig
		minBytes int64
		maxBytes int64
	}{
		{name: "default image size", storage: nil, minBytes: 5_000_000 + bytes.MiB - 10*bytes.KiB, maxBytes: 5_000_000 + bytes.MiB + 10*bytes.KiB},
		{name: "configured image size", storage: &config.StorageConfig{MaxImageSize: "2MiB"}, minBytes: 3*bytes.MiB - 10*bytes.KiB, maxBytes: 3*bytes.MiB + 10*bytes.KiB},
		{name: "unparsable size falls back", storage: &config.StorageConfig{MaxImageSize: "big"}, minBytes: 5_000_000 + bytes.MiB - 10*bytes.KiB, maxBytes: 5_000_000 + bytes.MiB + 10*bytes.KiB},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := &router{config: &config.Config{Storage: tt.storage}}

			limit, err := bytes.Parse(r.uploadLimit())
			require.NoError(t, err)
			assert.GreaterOrEqual(t, limit, tt.minBytes)
			assert.LessOrEqual(t, limit, tt.maxBytes)
		})
	}
}
