package observability

import (
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

// NewLogger builds the process-wide logger. Dev environments get a
// human-friendly console writer, everything else JSON. LOG_LEVEL
// overrides the default info level.
func NewLogger(env string) zerolog.Logger {
	var l zerolog.Logger
	switch env {
	case "dev", "development":
		l = zerolog.New(zerolog.ConsoleWriter{Out: os.Stdout, TimeFormat: time.RFC3339})
	default:
		l = zerolog.New(os.Stdout)
	}

	level := zerolog.InfoLevel
	if v := os.Getenv("LOG_LEVEL"); v != "" {
		if parsed, err := zerolog.ParseLevel(strings.ToLower(v)); err == nil {
			level = parsed
		}
	}
	return l.Level(level).With().Timestamp().Str("service", "hotelbook").Logger()
}
