// SPDX-License-Identifier: EPL-2.0

// Package log builds the logrus loggers used across bae. Debug output is
// enabled by setting BAE_DEBUG to a true value.
package log

import (
	"io"
	"os"
	"strconv"
	"sync"

	"github.com/sirupsen/logrus"
	"golang.org/x/term"
)

// EnvDebug is the environment variable that turns on debug logging.
const EnvDebug = "BAE_DEBUG"

var (
	shared     *logrus.Logger
	sharedOnce sync.Once
)

// Debug reports whether BAE_DEBUG is set to a true value.
func Debug() bool {
	debug, err := strconv.ParseBool(os.Getenv(EnvDebug))
	if err != nil {
		return false
	}
	return debug
}

// New returns a new logger writing to w.
func New(w io.Writer) *logrus.Logger {
	l := logrus.New()
	l.SetOutput(w)
	if Debug() {
		l.SetLevel(logrus.DebugLevel)
	}
	return l
}

// NewCLI returns a logger for command line tools writing to f. When f is
// not a terminal entries are written as JSON.
func NewCLI(f *os.File) *logrus.Logger {
	l := New(f)
	if !term.IsTerminal(int(f.Fd())) {
		l.SetFormatter(&logrus.JSONFormatter{})
	}
	return l
}

// Default returns the process wide logger, writing to stderr.
func Default() *logrus.Logger {
	sharedOnce.Do(func() {
		shared = New(os.Stderr)
	})
	return shared
}

// Discard returns a logger that drops everything. Useful in tests.
func Discard() *logrus.Logger {
	l := logrus.New()
	l.SetOutput(io.Discard)
	return l
}
