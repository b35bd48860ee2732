package logger

import (
	"os"

	"github.com/sirupsen/logrus"
)

var log = newLogger()

func newLogger() *logrus.Logger {
	l := logrus.New()
	l.SetFormatter(&logrus.JSONFormatter{})
	l.SetLevel(logrus.InfoLevel)
	l.SetOutput(os.Stdout)
	return l
}

// Get returns the process logger.
func Get() *logrus.Logger {
	return log
}

// SetLevel parses level ("debug", "info", ...) and applies it. Unknown levels
// keep the current one and are reported back.
func SetLevel(level string) error {
	lvl, err := logrus.ParseLevel(level)
	if err != nil {
		return err
	}
	log.SetLevel(lvl)
	return nil
}

// For returns an entry tagged with the module and operation that emits it.
func For(module, op string) *logrus.Entry {
	return log.WithFields(logrus.Fields{
		"module": module,
		"op":     op,
	})
}

// LogError logs err with its module, operation and an optional payload.
func LogError(module, op string, data any, err error) {
	entry := For(module, op)
	if data != nil {
		entry = entry.WithField("data", data)
	}
	entry.Error(err.Error())
}
