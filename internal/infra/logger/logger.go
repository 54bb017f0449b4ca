// internal/infra/logger/logger.go
package logger

import (
	"io"
	"os"
	"strings"

	"college_records/internal/infra/config"

	"github.com/sirupsen/logrus"
)

// Log is the global logger instance
var Log = logrus.New()

// Init initializes the global logger based on application configuration.
func Init(cfg *config.AppConfig) {
	Log.SetOutput(outputFor(cfg.LogOutput))

	level, err := logrus.ParseLevel(strings.ToLower(cfg.LogLevel))
	if err != nil {
		Log.Warnf("Invalid log level '%s', defaulting to 'warn'. Error: %v", cfg.LogLevel, err)
		Log.SetLevel(logrus.WarnLevel)
	} else {
		Log.SetLevel(level)
	}

	if strings.ToLower(cfg.Environment) == "production" || strings.ToLower(cfg.Environment) == "staging" {
		Log.SetFormatter(&logrus.JSONFormatter{
			TimestampFormat: "2006-01-02T15:04:05.000Z07:00", // ISO8601
		})
	} else {
		Log.SetFormatter(&logrus.TextFormatter{
			FullTimestamp:   true,
			TimestampFormat: "2006-01-02 15:04:05",
		})
	}

	Log.Debugf("Log level set to: %s", Log.GetLevel().String())
	Log.Debugf("Log format set for environment: %s", cfg.Environment)
}

func outputFor(name string) io.Writer {
	switch name {
	case config.LogOutputStdout:
		return os.Stdout
	case config.LogOutputDiscard:
		return io.Discard
	default:
		return os.Stderr
	}
}

// Component returns an entry tagged with the component name, the base for every
// logger handed to services and handlers.
func Component(name string) *logrus.Entry {
	return Log.WithField("component", name)
}
