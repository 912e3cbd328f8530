package logger

import (
	"io"
	"os"
	"sync"
	"time"

	"github.com/charmbracelet/log"

	"github.com/openuo-online/openuo-launcher/internal/config"
)

var (
	instance *log.Logger
	once     sync.Once
)

// GetLogger returns the shared launcher logger.
func GetLogger() *log.Logger {
	once.Do(func() {
		instance = log.NewWithOptions(os.Stdout, log.Options{
			ReportTimestamp: true,
			TimeFormat:      time.DateTime,
			Level:           log.InfoLevel,
		})
	})
	return instance
}

// SetLevel sets the minimum log level.
func SetLevel(level config.LogLevel) {
	l := GetLogger()
	switch level {
	case config.LogLevelDebug:
		l.SetLevel(log.DebugLevel)
	case config.LogLevelInfo:
		l.SetLevel(log.InfoLevel)
	case config.LogLevelWarn:
		l.SetLevel(log.WarnLevel)
	case config.LogLevelError:
		l.SetLevel(log.ErrorLevel)
	default:
		l.SetLevel(log.InfoLevel)
	}
}

// SetOutput redirects log output, typically to a RotatingFileWriter or a
// MultiWriter combining it with stdout.
func SetOutput(w io.Writer) {
	if w == nil {
		w = io.Discard
	}
	GetLogger().SetOutput(w)
}

// Convenience functions using the shared logger

// Debug logs a debug message
func Debug(format string, args ...interface{}) {
	GetLogger().Debugf(format, args...)
}

// Info logs an info message
func Info(format string, args ...interface{}) {
	GetLogger().Infof(format, args...)
}

// Warn logs a warning message
func Warn(format string, args ...interface{}) {
	GetLogger().Warnf(format, args...)
}

// Error logs an error message
func Error(format string, args ...interface{}) {
	GetLogger().Errorf(format, args...)
}
