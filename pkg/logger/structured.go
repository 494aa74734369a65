package logger

import (
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"
)

var zlog zerolog.Logger

// InitStructured initializes the structured zerolog logger
func InitStructured(env string) {
	var w io.Writer

	if env == "development" || env == "dev" || env == "local" {
		// Pretty console output for development
		w = zerolog.ConsoleWriter{Out: os.Stdout, TimeFormat: time.RFC3339}
	} else {
		// JSON output for production (machine-readable)
		w = os.Stdout
	}

	zlog = zerolog.New(w).With().
		Timestamp().
		Str("service", "litmart-backend").
		Logger()

	zerolog.TimeFieldFormat = time.RFC3339
}

// GetLogger returns the global zerolog logger
func GetLogger() *zerolog.Logger {
	return &zlog
}

// WithRequestID returns a logger with request_id field
func WithRequestID(requestID string) zerolog.Logger {
	return zlog.With().Str("request_id", requestID).Logger()
}

// WithMemberID returns a logger with member_id field
func WithMemberID(memberID int64) zerolog.Logger {
	return zlog.With().Int64("member_id", memberID).Logger()
}

// Info logs a formatted info message (printf-style convenience for startup code)
func Info(format string, args ...interface{}) {
	zlog.Info().Msgf(format, args...)
}

// Warn logs a formatted warning message
func Warn(format string, args ...interface{}) {
	zlog.Warn().Msgf(format, args...)
}

// Error logs a formatted error message
func Error(format string, args ...interface{}) {
	zlog.Error().Msgf(format, args...)
}
