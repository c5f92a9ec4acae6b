package main

import (
	"io"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// levelEnv names the environment variable that overrides the -v level.
const levelEnv = "MLOG"

// newLogger builds the process logger and installs it as the global one.
func newLogger(w io.Writer, verbosity int) zerolog.Logger {
	logger := zerolog.New(zerolog.ConsoleWriter{
		Out:        w,
		TimeFormat: time.RFC3339,
	}).Level(logLevel(verbosity, os.Getenv(levelEnv))).
		With().
		Timestamp().
		Logger()

	log.Logger = logger
	return logger
}

// logLevel maps the -v count to a level. A valid MLOG value wins.
func logLevel(verbosity int, env string) zerolog.Level {
	if env != "" {
		if level, err := zerolog.ParseLevel(strings.ToLower(env)); err == nil {
			return level
		}
	}

	switch {
	case verbosity <= 0:
		return zerolog.InfoLevel
	case verbosity == 1:
		return zerolog.DebugLevel
	default:
		return zerolog.TraceLevel
	}
}
