package logger

import (
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// Config holds logger configuration
type Config struct {
	Debug      bool
	TimeFormat string
	Output     io.Writer
}

// New builds a zerolog.Logger. Debug mode switches to the human readable
// console writer and debug level; otherwise JSON lines at info level.
func New(cfg Config) zerolog.Logger {
	if cfg.Output == nil {
		cfg.Output = os.Stdout
	}
	if cfg.TimeFormat == "" {
		cfg.TimeFormat = time.RFC3339
	}

	level := zerolog.InfoLevel
	out := cfg.Output
	if cfg.Debug {
		level = zerolog.DebugLevel
		out = zerolog.ConsoleWriter{
			Out:        cfg.Output,
			TimeFormat: cfg.TimeFormat,
		}
	}

	return zerolog.New(out).
		Level(level).
		With().
		Timestamp().
		Logger()
}

// Setup replaces the global logger used by the log package.
func Setup(cfg Config) {
	zerolog.TimeFieldFormat = time.RFC3339
	log.Logger = New(cfg)
}
