// Package log provides loggers for patchbay graphs.
package log

import (
	"os"
	"strconv"

	"github.com/sirupsen/logrus"
)

// DebugEnv is the environment variable which enables debug level.
const DebugEnv = "PATCHBAY_DEBUG"

var debug bool

func init() {
	debug = debugEnabled(os.Getenv(DebugEnv))
}

func debugEnabled(v string) bool {
	enabled, err := strconv.ParseBool(v)
	if err != nil {
		return false
	}
	return enabled
}

// GetLogger returns a new logger instance.
func GetLogger() *logrus.Logger {
	l := logrus.New()
	if debug {
		l.SetLevel(logrus.DebugLevel)
	}
	return l
}
