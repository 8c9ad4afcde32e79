// Package errors routes operator-facing messages to the console or to the TUI
// status line, and turns domain errors into short hints.
package errors

import (
	"sync"

	"github.com/cristianoliveira/noshow/internal/colors"
)

// ErrorHandler is the interface for reporting outcomes to the operator.
// Different implementations can report differently based on context.
type ErrorHandler interface {
	Error(msg string)
	Warning(msg string)
	Info(msg string)
	Success(msg string)
}

// CLIHandler reports through a ColorOutput, normally the colors package.
type CLIHandler struct {
	colors     ColorOutput
	mu         sync.Mutex
	inHandling bool
}

// ColorOutput is the console surface a CLIHandler writes to.
type ColorOutput interface {
	Error(msgs ...string)
	Warning(msgs ...string)
	Info(msgs ...string)
	Success(msgs ...string)
}

var _ ErrorHandler = (*CLIHandler)(nil)

func NewCLIHandler(out ColorOutput) *CLIHandler {
	return &CLIHandler{colors: out}
}

// NewConsoleHandler returns a CLIHandler printing through the colors package:
// errors and warnings on stderr, info and success on stdout.
func NewConsoleHandler() *CLIHandler {
	return NewCLIHandler(console{})
}

type console struct{}

func (console) Error(msgs ...string)   { colors.Error(msgs...) }
func (console) Warning(msgs ...string) { colors.Warning(msgs...) }
func (console) Info(msgs ...string)    { colors.Info(msgs...) }
func (console) Success(msgs ...string) { colors.Success(msgs...) }

// Error prints msg. A nested Error call made while printing goes straight to
// the output instead of recursing through the handler.
func (h *CLIHandler) Error(msg string) {
	h.mu.Lock()
	if h.inHandling {
		h.mu.Unlock()
		h.colors.Error(msg)
		return
	}
	h.inHandling = true
	h.mu.Unlock()

	defer func() {
		h.mu.Lock()
		h.inHandling = false
		h.mu.Unlock()
	}()

	h.colors.Error(msg)
}

func (h *CLIHandler) Warning(msg string) {
	h.colors.Warning(msg)
}

func (h *CLIHandler) Info(msg string) {
	h.colors.Info(msg)
}

func (h *CLIHandler) Success(msg string) {
	h.colors.Success(msg)
}

// Report sends err through h as an error, using Describe for the text.
// A nil err is ignored.
func Report(h ErrorHandler, err error) {
	if err == nil {
		return
	}
	h.Error(Describe(err))
}
