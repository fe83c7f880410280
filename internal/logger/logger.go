// Package logger builds the structured logger shared by the CLI and the store.
package logger

import (
	"io"
	"os"

	"github.com/sirupsen/logrus"
)

// EnvLevel overrides the level chosen from flags.
const EnvLevel = "LOG_LEVEL"

// New returns a logger writing text lines to w.
// Level is Warn by default, Debug when debug is set, or LOG_LEVEL if valid.
func New(w io.Writer, debug bool) *logrus.Logger {
	log := logrus.New()
	log.SetOutput(w)
	log.SetFormatter(&logrus.TextFormatter{
		DisableColors:    true,
		DisableTimestamp: true,
	})

	log.SetLevel(logrus.WarnLevel)
	if debug {
		log.SetLevel(logrus.DebugLevel)
	}
	if level := os.Getenv(EnvLevel); level != "" {
		if lvl, err := logrus.ParseLevel(level); err == nil {
			log.SetLevel(lvl)
		}
	}

	return log
}

// Discard returns a logger that drops everything.
func Discard() *logrus.Logger {
	log := logrus.New()
	log.SetOutput(io.Discard)
	return log
}

// Component returns an entry tagged with the subsystem name.
func Component(log logrus.FieldLogger, name string) logrus.FieldLogger {
	return log.WithField("component", name)
}
