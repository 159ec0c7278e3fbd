package main

import (
	"io"
	"os"

	"github.com/charmbracelet/log"
)

// newLogger builds the stderr logger. --debug wins over the configured level;
// an unknown level falls back to info.
func newLogger(level string, debug bool) *log.Logger {
	return newLoggerTo(os.Stderr, level, debug)
}

func newLoggerTo(w io.Writer, level string, debug bool) *log.Logger {
	lvl, err := log.ParseLevel(level)
	if err != nil {
		lvl = log.InfoLevel
	}
	if debug {
		lvl = log.DebugLevel
	}

	logger := log.NewWithOptions(w, log.Options{
		Level:           lvl,
		ReportTimestamp: true,
		Prefix:          "ndrandom",
	})
	if err != nil && level != "" {
		logger.Warn("unknown log level, using info", "level", level)
	}
	return logger
}
