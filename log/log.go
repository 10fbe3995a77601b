// Package log provides structured, file-backed logging on top of logrus.
//
// Logging is opt-in: unless logs.write is enabled every call is a no-op, so the
// terminal stays reserved for the metadata table and the progress display.
package log

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/framex-cli/framex/filesystem"
	"github.com/framex-cli/framex/key"
	"github.com/framex-cli/framex/where"
	logrus "github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

// Fields is an alias so callers do not need to import logrus directly.
type Fields = logrus.Fields

// enabled indicates the persistent logging state for the active application instance.
var enabled bool

// Setup initializes the logging subsystem, including file handles, formatting, and severity levels based on global configuration.
func Setup() error {
	enabled = viper.GetBool(key.LogsWrite)
	if !enabled {
		return nil
	}

	dir := where.Logs()
	if dir == "" {
		return errors.New("log directory path is empty")
	}

	filename := fmt.Sprintf("%s.log", time.Now().Format("2006-01-02"))
	f, err := filesystem.API().OpenFile(filepath.Join(dir, filename), os.O_RDWR|os.O_CREATE|os.O_APPEND, 0666)
	if err != nil {
		return fmt.Errorf("open log file: %w", err)
	}

	configure(f)
	return nil
}

// configure points logrus at out and applies format and level settings.
func configure(out io.Writer) {
	logrus.SetOutput(out)

	if viper.GetBool(key.LogsJson) {
		logrus.SetFormatter(&logrus.JSONFormatter{})
	} else {
		logrus.SetFormatter(&logrus.TextFormatter{DisableColors: true, FullTimestamp: true})
	}

	parsed, err := logrus.ParseLevel(viper.GetString(key.LogsLevel))
	if err != nil {
		parsed = logrus.InfoLevel
	}
	logrus.SetLevel(parsed)
}

// Entry is a logger bound to a set of fields. A nil *Entry discards everything.
type Entry struct {
	entry *logrus.Entry
}

// WithFields returns an Entry carrying fields on every emission.
func WithFields(fields Fields) *Entry {
	if !enabled {
		return nil
	}
	return &Entry{entry: logrus.WithFields(fields)}
}

func (e *Entry) Debugf(format string, args ...interface{}) {
	if e != nil {
		e.entry.Debugf(format, args...)
	}
}

func (e *Entry) Infof(format string, args ...interface{}) {
	if e != nil {
		e.entry.Infof(format, args...)
	}
}

func (e *Entry) Warnf(format string, args ...interface{}) {
	if e != nil {
		e.entry.Warnf(format, args...)
	}
}

func (e *Entry) Errorf(format string, args ...interface{}) {
	if e != nil {
		e.entry.Errorf(format, args...)
	}
}

// Severity-specific emissions on the package logger.

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
func Debugf(format string, args ...interface{}) {
	if enabled {
		logrus.Debugf(format, args...)
	}
}
