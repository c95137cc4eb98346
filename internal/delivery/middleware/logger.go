package middleware

import (
	"log/slog"
	"net/http"
	"time"

	"localdeal/config"
	deliverycontext "localdeal/internal/delivery/context"
	domainerrors "localdeal/internal/domain/errors"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// AccessLogMiddleware writes one log line per request once the handler returned.
type AccessLogMiddleware struct {
	logger    *slog.Logger
	verbose   bool
	skipPaths map[string]struct{}
}

// NewAccessLogMiddleware creates the access log middleware. Probes and scrapes are not logged.
// Outside debug mode only failed requests are logged.
func NewAccessLogMiddleware(logger *slog.Logger, cfg *config.Config) *AccessLogMiddleware {
	skip := map[string]struct{}{"/health": {}}
	if cfg.Metrics != nil && cfg.Metrics.Enabled {
		skip[cfg.Metrics.Path] = struct{}{}
	}

	return &AccessLogMiddleware{
		logger:    logger,
		verbose:   cfg.Env.Debug,
		skipPaths: skip,
	}
}

// Handle logs the request after next returns.
func (m *AccessLogMiddleware) Handle(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		start := time.Now()
		err := next(c)

		if _, skip := m.skipPaths[c.Path()]; skip {
			return err
		}

		status := c.Response().Status
		if err != nil {
			// the error handler has not written yet
			status = statusOf(err)
		}
		if !m.verbose && status < 400 {
			return err
		}

		m.log(c, start, status, err)

		return err
	}
}

func (m *AccessLogMiddleware) log(c echo.Context, start time.Time, status int, err error) {
	req := c.Request()

	attrs := []slog.Attr{
		slog.String("method", req.Method),
		slog.String("route", c.Path()),
		slog.String("uri", req.URL.RequestURI()),
		slog.Int("status", status),
		slog.Duration("latency", time.Since(start)),
		slog.Int64("bytes_out", c.Response().Size),
		slog.String("remote_ip", c.RealIP()),
		slog.String("user_agent", req.UserAgent()),
	}
	if err != nil {
		attrs = append(attrs, slog.Any("error", err))
	}

	level := slog.LevelInfo
	switch {
	case status >= 500:
		level = slog.LevelError
	case status >= 400:
		level = slog.LevelWarn
	}

	// carries request_id and, once authenticated, user_id
	logger := deliverycontext.GetLoggerOrDefault(req.Context(), m.logger)
	logger.LogAttrs(req.Context(), level, "request completed", attrs...)
}

func statusOf(err error) int {
	var appErr domainerrors.AppError
	if errors.As(err, &appErr) {
		return appErr.HTTPCode()
	}

	var httpErr *echo.HTTPError
	if errors.As(err, &httpErr) {
		return httpErr.Code
	}

	return http.StatusInternalServerError
}
