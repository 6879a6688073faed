// Package log provides a thread-safe, structured logging infrastructure with filesystem-based persistence.
package log

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/epishuffle/epishuffle/filesystem"
	"github.com/epishuffle/epishuffle/key"
	"github.com/epishuffle/epishuffle/where"
	logrus "github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

// enabled indicates the logging state for the active application instance.
var enabled bool

// Fields is an alias of logrus.Fields so callers don't import logrus directly.
type Fields = logrus.Fields

// Setup initializes the logging subsystem based on global configuration.
// File logging (logs.write) takes precedence over stderr (logs.stderr).
// If both are disabled, all subsequent log emissions are silently discarded.
func Setup() error {
	var out io.Writer

	switch {
	case viper.GetBool(key.LogsWrite):
		f, err := openLogFile()
		if err != nil {
			return err
		}
		out = f
	case viper.GetBool(key.LogsStderr):
		out = os.Stderr
	default:
		enabled = false
		return nil
	}

	enabled = true
	logrus.SetOutput(out)

	if viper.GetBool(key.LogsJson) {
		logrus.SetFormatter(&logrus.JSONFormatter{})
	} else {
		logrus.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	}

	parsed, err := logrus.ParseLevel(viper.GetString(key.LogsLevel))
	if err != nil {
		parsed = logrus.InfoLevel
	}
	logrus.SetLevel(parsed)

	return nil
}

func openLogFile() (io.Writer, error) {
	dir := where.Logs()
	if dir == "" {
		return nil, errors.New("log directory path is empty")
	}

	path := filepath.Join(dir, fmt.Sprintf("%s.log", time.Now().Format("2006-01-02")))
	f, err := filesystem.API().OpenFile(path, os.O_RDWR|os.O_CREATE|os.O_APPEND, 0666)
	if err != nil {
		return nil, fmt.Errorf("open log file: %w", err)
	}
	return f, nil
}

// Enabled reports whether log emissions reach a backend.
func Enabled() bool {
	return enabled
}

// WithFields emits a single structured entry at info level.
func WithFields(fields Fields, msg string) {
	if enabled {
		logrus.WithFields(fields).Info(msg)
	}
}

// Severity-Specific Log Emissions - these functions proxy messages to the configured backend when logging is enabled.

func Error(args ...interface{}) {
	if enabled {
		logrus.Error(args...)
	}
}
func Errorf(format string, args ...interface{}) {
	if enabled {
		logrus.Errorf(format, args...)
	}
}
func Warn(args ...interface{}) {
	if enabled {
		logrus.Warn(args...)
	}
}
func Warnf(format string, args ...interface{}) {
	if enabled {
		logrus.Warnf(format, args...)
	}
}
func Info(args ...interface{}) {
	if enabled {
		logrus.Info(args...)
	}
}
func Infof(format string, args ...interface{}) {
	if enabled {
		logrus.Infof(format, args...)
	}
}
func Debug(args ...interface{}) {
	if enabled {
		logrus.Debug(args...)
	}
}
func Debugf(format string, args ...interface{}) {
	if enabled {
		logrus.Debugf(format, args...)
	}
}
