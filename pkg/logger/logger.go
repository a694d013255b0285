package logger

import (
	"io"
	"os"

	"github.com/rs/zerolog"
)

// New returns a JSON logger writing to stdout. Production gets info level,
// everything else debug.
func New(env string) zerolog.Logger {
	return NewWithWriter(env, os.Stdout)
}

func NewWithWriter(env string, w io.Writer) zerolog.Logger {
	logger := zerolog.New(w).With().Timestamp().Logger()

	switch env {
	case "production":
		return logger.Level(zerolog.InfoLevel)
	default:
		return logger.Level(zerolog.DebugLevel)
	}
}
