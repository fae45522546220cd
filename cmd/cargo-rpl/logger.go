package main

import (
	"io"
	"os"

	"github.com/charmbracelet/log"
)

// logLevelEnvVar selects the diagnostic level. Unset keeps the wrapper
// quiet below warn, so cargo's own output is all the user normally sees.
const logLevelEnvVar = "RPL_LOG"

// newLogger builds the diagnostic logger for one invocation.
func newLogger(w io.Writer) *log.Logger {
	logger := log.NewWithOptions(w, log.Options{
		Prefix: "cargo-rpl",
	})
	logger.SetLevel(log.WarnLevel)

	if raw := os.Getenv(logLevelEnvVar); raw != "" {
		level, err := log.ParseLevel(raw)
		if err != nil {
			logger.Warn("unknown log level", "value", raw)
			return logger
		}
		logger.SetLevel(level)
	}
	return logger
}
