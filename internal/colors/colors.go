// Package colors provides color output utilities.
package colors

import (
	"fmt"
	"io"
	"os"
	"strings"
	"sync"
	"sync/atomic"
)

// Color constants
const (
	Red    = "\033[0;31m"
	Green  = "\033[0;32m"
	Yellow = "\033[1;33m"
	Blue   = "\033[0;34m"
	Cyan   = "\033[0;36m"
	Reset  = "\033[0m"
)

const checkmark = "✓"

// Logger defines the interface for structured logging.
type Logger interface {
	Debug(msg string, args ...any)
	Info(msg string, args ...any)
	Warn(msg string, args ...any)
	Error(msg string, args ...any)
}

var (
	debugEnabled atomic.Bool
	quietEnabled atomic.Bool
	logger       Logger
	loggerMu     sync.RWMutex
	// reentry guards against a failed write reporting itself forever.
	reentry atomic.Bool
)

func init() {
	if val := os.Getenv("NOSHOW_DEBUG"); val == "true" || val == "1" {
		debugEnabled.Store(true)
	}
}

// SetDebug enables or disables debug output.
func SetDebug(enabled bool) {
	debugEnabled.Store(enabled)
}

// DebugEnabled reports whether debug output is on.
func DebugEnabled() bool {
	return debugEnabled.Load()
}

// SetQuiet suppresses Info and Success console output. Warnings and errors still print.
func SetQuiet(enabled bool) {
	quietEnabled.Store(enabled)
}

// SetLogger sets the structured logger to mirror console output.
func SetLogger(l Logger) {
	loggerMu.Lock()
	defer loggerMu.Unlock()
	logger = l
}

func currentLogger() Logger {
	loggerMu.RLock()
	defer loggerMu.RUnlock()
	return logger
}

type level int

const (
	levelDebug level = iota
	levelInfo
	levelSuccess
	levelWarn
	levelError
)

func (l level) mirror(lg Logger, msg string) {
	switch l {
	case levelDebug:
		lg.Debug(msg)
	case levelInfo:
		lg.Info(msg)
	case levelSuccess:
		lg.Info(msg, "type", "success")
	case levelWarn:
		lg.Warn(msg)
	case levelError:
		lg.Error(msg)
	}
}

func emit(l level, w io.Writer, line string, msg string) {
	if lg := currentLogger(); lg != nil {
		l.mirror(lg, msg)
	}
	if quietEnabled.Load() && (l == levelInfo || l == levelSuccess) {
		return
	}
	if _, err := fmt.Fprintln(w, line); err != nil {
		if !reentry.CompareAndSwap(false, true) {
			fmt.Fprintf(os.Stderr, "Error: failed to print message: %v\n", err)
			return
		}
		defer reentry.Store(false)
		Warning("failed to print message: " + err.Error())
	}
}

// Error outputs an error message to stderr.
func Error(msgs ...string) {
	msg := strings.Join(msgs, " ")
	emit(levelError, os.Stderr, Red+"Error:"+Reset+" "+msg+Reset, msg)
}

// Success outputs a success message to stdout.
func Success(msgs ...string) {
	msg := strings.Join(msgs, " ")
	emit(levelSuccess, os.Stdout, Green+checkmark+Reset+" "+msg+Reset, msg)
}

// Warning outputs a warning message to stderr.
func Warning(msgs ...string) {
	msg := strings.Join(msgs, " ")
	emit(levelWarn, os.Stderr, Yellow+"Warning:"+Reset+" "+msg+Reset, msg)
}

// Info outputs an informational message to stdout.
func Info(msgs ...string) {
	msg := strings.Join(msgs, " ")
	emit(levelInfo, os.Stdout, Blue+msg+Reset, msg)
}

// LogInfo outputs an informational message to stderr, keeping stdout clean for data.
func LogInfo(msgs ...string) {
	msg := strings.Join(msgs, " ")
	emit(levelInfo, os.Stderr, Blue+msg+Reset, msg)
}

// Debug outputs a debug message to stderr if debug is enabled.
func Debug(msgs ...string) {
	if !debugEnabled.Load() {
		return
	}
	msg := strings.Join(msgs, " ")
	emit(levelDebug, os.Stderr, Cyan+"Debug:"+Reset+" "+msg+Reset, msg)
}
