package log

import (
	"io"
	"os"

	"github.com/YuminosukeSato/cartree/pkg/errors"
)

// SetupLogger installs a zerolog provider writing to stderr at the given
// level ("debug", "info", "warn", "error"). With console set, records are
// rendered for humans instead of as JSON lines.
func SetupLogger(loglevel string, console bool) error {
	return SetupLoggerTo(os.Stderr, loglevel, console)
}

// SetupLoggerTo is SetupLogger with an explicit destination.
func SetupLoggerTo(w io.Writer, loglevel string, console bool) error {
	level, err := ToLogLevel(loglevel)
	if err != nil {
		return err
	}
	if console {
		SetProvider(NewConsoleProvider(w, level))
	} else {
		SetProvider(NewZerologProvider(w, level))
	}
	return nil
}

// ToLogLevel parses a level name.
func ToLogLevel(level string) (Level, error) {
	switch level {
	case "debug":
		return LevelDebug, nil
	case "info":
		return LevelInfo, nil
	case "warn":
		return LevelWarn, nil
	case "error":
		return LevelError, nil
	default:
		return LevelInfo, errors.NewValidationError("log_level", "must be one of debug, info, warn, error", level)
	}
}
