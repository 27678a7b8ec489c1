// Package logger wraps zerolog with the service defaults and a few
// context helpers used across the search pipeline.
package logger

import (
	"io"
	"os"
	"strconv"
	"time"

	"github.com/rs/zerolog"
)

// Config holds the logger configuration options.
type Config struct {
	// Level is the minimum log level (debug, info, warn, error).
	Level string `env:"LOG_LEVEL" envDefault:"info"`

	// Format is the output format (json, console).
	Format string `env:"LOG_FORMAT" envDefault:"json"`

	EnableCaller bool `env:"LOG_CALLER" envDefault:"false"`

	ServiceName string `env:"SERVICE_NAME" envDefault:"hotel-search"`
}

// DefaultConfig returns the configuration used when nothing is set.
func DefaultConfig() Config {
	return Config{
		Level:       "info",
		Format:      "json",
		ServiceName: "hotel-search",
	}
}

// Logger wraps zerolog.Logger with additional context.
type Logger struct {
	zerolog.Logger
}

// New creates a Logger writing to stdout.
func New(cfg Config) *Logger {
	return NewWithOutput(cfg, os.Stdout)
}

// NewWithOutput creates a Logger writing to output.
func NewWithOutput(cfg Config, output io.Writer) *Logger {
	level, err := zerolog.ParseLevel(cfg.Level)
	if err != nil || level == zerolog.NoLevel {
		level = zerolog.InfoLevel
	}

	writer := output
	if cfg.Format == "console" {
		writer = zerolog.ConsoleWriter{
			Out:        output,
			TimeFormat: time.RFC3339,
		}
	}

	ctx := zerolog.New(writer).
		Level(level).
		With().
		Timestamp().
		Str("service", cfg.ServiceName)

	if cfg.EnableCaller {
		ctx = ctx.Caller()
	}

	return &Logger{Logger: ctx.Logger()}
}

// Nop returns a disabled logger.
func Nop() *Logger {
	return &Logger{Logger: zerolog.Nop()}
}

// WithContext returns a child logger carrying key=value.
func (l *Logger) WithContext(key, value string) *Logger {
	return &Logger{Logger: l.With().Str(key, value).Logger()}
}

func (l *Logger) WithRequestID(requestID string) *Logger {
	return l.WithContext("request_id", requestID)
}

func (l *Logger) WithProvider(provider string) *Logger {
	return l.WithContext("provider", provider)
}

func (l *Logger) WithDestination(destination string) *Logger {
	return l.WithContext("destination", destination)
}

// WithGeneration tags entries with the session search generation they
// belong to, so superseded searches can be told apart in the output.
func (l *Logger) WithGeneration(generation uint64) *Logger {
	return l.WithContext("generation", strconv.FormatUint(generation, 10))
}
