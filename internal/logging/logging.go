// Package logging configures the process-wide logrus logger. Everything is
// written to stderr: stdout is the JSON-RPC channel and must stay clean.
package logging

import (
	"os"

	"github.com/sirupsen/logrus"
)

// EnvLevel overrides the configured log level when set.
const EnvLevel = "ITERMLINK_LOG_LEVEL"

// Setup builds the root logger. Level resolution: ITERMLINK_LOG_LEVEL env
// var, then the configured level, then info.
func Setup(level string) *logrus.Logger {
	log := logrus.New()
	log.SetOutput(os.Stderr)

	if env := os.Getenv(EnvLevel); env != "" {
		level = env
	}
	parsed, err := logrus.ParseLevel(level)
	if err != nil {
		parsed = logrus.InfoLevel
	}
	log.SetLevel(parsed)
	return log
}

// Component returns a logger entry tagged with a component name.
func Component(log *logrus.Logger, name string) *logrus.Entry {
	return log.WithField("component", name)
}
