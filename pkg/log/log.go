// Package log provides the verbose diagnostic logger shared by the commands.
// Output is only produced when TOUCH_VERBOSE is set in the environment.
package log

import (
	"os"

	"github.com/rs/zerolog"
)

const verboseEnvVar = "TOUCH_VERBOSE"

// Logger returns a logger writing to stderr. It is disabled unless verbose
// output has been requested.
func Logger() zerolog.Logger {
	if os.Getenv(verboseEnvVar) == "" {
		return zerolog.Nop()
	}

	return zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr, NoColor: true, PartsExclude: []string{zerolog.TimestampFieldName}}).
		Level(zerolog.DebugLevel)
}

// SetVerbose enables or disables verbose output for the current process.
func SetVerbose(enabled bool) error {
	if !enabled {
		return os.Unsetenv(verboseEnvVar)
	}

	return os.Setenv(verboseEnvVar, "1")
}
