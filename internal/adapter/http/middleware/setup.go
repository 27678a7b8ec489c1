package middleware

import (
	"github.com/labstack/echo/v4"

	"github.com/travelink/hotel-search/internal/infrastructure/logger"
)

// Config groups the middleware options applied by SetupWithConfig.
type Config struct {
	// AllowedOrigins for CORS; empty allows any origin
	AllowedOrigins []string
	Logging        LoggerConfig
	Recovery       RecoveryConfig
}

// DefaultConfig returns the configuration used by Setup.
func DefaultConfig() Config {
	return Config{
		Logging:  DefaultLoggerConfig(),
		Recovery: DefaultRecoveryConfig(),
	}
}

// Setup registers all middleware on the Echo instance in the correct order.
// The order is important:
//  1. RequestID - First, to generate/propagate request ID for all subsequent logging
//  2. RequestLogger - Second, logs all requests with request ID
//  3. Recover - Third, catches panics and returns 500 (wraps handlers)
//  4. CORS - Last, answers preflight requests before routing
//
// This function should be called before registering routes.
func Setup(e *echo.Echo, log *logger.Logger) error {
	return SetupWithConfig(e, log, DefaultConfig())
}

// SetupWithConfig registers middleware with a custom configuration.
func SetupWithConfig(e *echo.Echo, log *logger.Logger, config Config) error {
	cors, err := CORS(config.AllowedOrigins)
	if err != nil {
		return err
	}

	e.Use(RequestID())
	e.Use(RequestLoggerWithConfig(log, config.Logging))
	e.Use(RecoverWithConfig(log, config.Recovery))
	e.Use(cors)
	return nil
}

// Chain returns the request id, logging and recovery middleware as a slice
// for use with route groups.
func Chain(log *logger.Logger) []echo.MiddlewareFunc {
	return []echo.MiddlewareFunc{
		RequestID(),
		RequestLogger(log),
		Recover(log),
	}
}
