package middleware

import (
	"strings"
	"time"

	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	"github.com/rs/zerolog"

	"github.com/travelink/hotel-search/internal/infrastructure/logger"
)

// LoggerConfig configures the request logger.
type LoggerConfig struct {
	// Skipper skips logging for matching requests.
	Skipper echomw.Skipper
}

// DefaultLoggerConfig skips the swagger UI assets and the health check.
func DefaultLoggerConfig() LoggerConfig {
	return LoggerConfig{Skipper: SkipPaths("/swagger/", "/health")}
}

// SkipPaths returns a skipper matching requests whose path starts with
// any of the given prefixes.
func SkipPaths(prefixes ...string) echomw.Skipper {
	return func(c echo.Context) bool {
		path := c.Request().URL.Path
		for _, p := range prefixes {
			if strings.HasPrefix(path, p) {
				return true
			}
		}
		return false
	}
}

// RequestLogger returns middleware that logs every HTTP request on completion.
func RequestLogger(log *logger.Logger) echo.MiddlewareFunc {
	return RequestLoggerWithConfig(log, LoggerConfig{})
}

// RequestLoggerWithConfig returns a request logger with a custom configuration.
// The level follows the status: 5xx error, 4xx warn, anything else info.
func RequestLoggerWithConfig(log *logger.Logger, config LoggerConfig) echo.MiddlewareFunc {
	if config.Skipper == nil {
		config.Skipper = echomw.DefaultSkipper
	}

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if config.Skipper(c) {
				return next(c)
			}

			start := time.Now()

			if err := next(c); err != nil {
				// Let Echo's error handler write the response
				c.Error(err)
			}

			duration := time.Since(start)
			req := c.Request()
			res := c.Response()

			var event *zerolog.Event
			status := res.Status
			switch {
			case status >= 500:
				event = log.Error()
			case status >= 400:
				event = log.Warn()
			default:
				event = log.Info()
			}

			event.
				Str("request_id", GetRequestID(c)).
				Str("method", req.Method).
				Str("path", req.URL.Path).
				Str("query", req.URL.RawQuery).
				Int("status", status).
				Int64("duration_ms", duration.Milliseconds()).
				Int64("bytes_out", res.Size).
				Str("client_ip", c.RealIP()).
				Str("user_agent", req.UserAgent()).
				Msg("HTTP request")

			return nil
		}
	}
}
