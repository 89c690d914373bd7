// Package logging builds the process logger: zap underneath, logr on top.
//
// Library packages never construct loggers; they accept a logr.Logger and
// emit at the verbosity levels below. Only cmd/ and tests call New.
package logging

import (
	"fmt"
	"os"
	"strings"

	"github.com/go-logr/logr"
	"github.com/go-logr/zapr"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Verbosity levels passed to logr's V().
const (
	INFO  = 0
	DEBUG = 1
	TRACE = 2
)

// ParseLevel maps a level name to a logr verbosity.
func ParseLevel(level string) (int, error) {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "", "info":
		return INFO, nil
	case "debug":
		return DEBUG, nil
	case "trace":
		return TRACE, nil
	default:
		return 0, fmt.Errorf("unknown log level %q (want info, debug or trace)", level)
	}
}

// New returns a logr.Logger backed by zap. Development mode switches to the
// console encoder with caller and stack annotations.
func New(level string, development bool) (logr.Logger, error) {
	v, err := ParseLevel(level)
	if err != nil {
		return logr.Discard(), err
	}

	cfg := zap.NewProductionConfig()
	if development {
		cfg = zap.NewDevelopmentConfig()
	}
	// zapr maps V(n) to zap level -n.
	cfg.Level = zap.NewAtomicLevelAt(zapcore.Level(-v))
	cfg.DisableStacktrace = !development

	z, err := cfg.Build()
	if err != nil {
		return logr.Discard(), fmt.Errorf("build zap logger: %w", err)
	}

	return zapr.NewLogger(z), nil
}

// NewTestLogger returns a console logger on stderr enabled up to DEBUG.
// Suites call it once from their Test entry point.
func NewTestLogger() logr.Logger {
	enc := zapcore.NewConsoleEncoder(zap.NewDevelopmentEncoderConfig())
	core := zapcore.NewCore(enc, zapcore.Lock(os.Stderr), zap.NewAtomicLevelAt(zapcore.Level(-DEBUG)))

	return zapr.NewLogger(zap.New(core))
}
