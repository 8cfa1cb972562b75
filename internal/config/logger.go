package config

import (
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/term"
)

// NewLogger creates a new logger based on the configuration.
func NewLogger(cfg LoggerConfig) zerolog.Logger {
	return NewFileLogger(cfg, os.Stdout)
}

// NewFileLogger writes to f. Console output is chosen when no format is
// configured and f is a terminal.
func NewFileLogger(cfg LoggerConfig, f *os.File) zerolog.Logger {
	return newLogger(cfg, f, term.IsTerminal(int(f.Fd())))
}

func newLogger(cfg LoggerConfig, out io.Writer, isTerminal bool) zerolog.Logger {
	// Set log level
	var level zerolog.Level
	switch cfg.Level {
	case "debug":
		level = zerolog.DebugLevel
	case "info":
		level = zerolog.InfoLevel
	case "warn":
		level = zerolog.WarnLevel
	case "error":
		level = zerolog.ErrorLevel
	default:
		level = zerolog.InfoLevel
	}

	zerolog.SetGlobalLevel(level)

	format := cfg.Format
	if format == "" {
		format = "json"
		if isTerminal {
			format = "console"
		}
	}

	// Configure output format
	var logger zerolog.Logger
	if format == "console" {
		logger = zerolog.New(zerolog.ConsoleWriter{
			Out:        out,
			TimeFormat: time.RFC3339,
			NoColor:    !isTerminal,
		}).With().Timestamp().Logger()
	} else {
		logger = zerolog.New(out).With().Timestamp().Logger()
	}

	return logger
}
