// Package app provides TUI application adapters for command wiring.
package app

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/cristianoliveira/noshow/internal/config"
	"github.com/cristianoliveira/noshow/internal/export"
	"github.com/cristianoliveira/noshow/internal/tui/state"
)

// ProgramRunner defines the interface for running a bubbletea program.
// This abstraction allows for easier testing and swapping of implementations.
type ProgramRunner interface {
	// Run starts the bubbletea program with the given model.
	Run(model tea.Model) error
}

// DefaultProgramRunner is the default implementation of ProgramRunner
// that wraps tea.NewProgram with standard options.
type DefaultProgramRunner struct{}

// NewDefaultProgramRunner creates a new DefaultProgramRunner.
func NewDefaultProgramRunner() *DefaultProgramRunner {
	return &DefaultProgramRunner{}
}

// Run starts a bubbletea program on the alternate screen.
func (r *DefaultProgramRunner) Run(model tea.Model) error {
	p := tea.NewProgram(model, tea.WithAltScreen())
	_, err := p.Run()
	return err
}

// OptionsLoader defines the interface for loading the TUI options.
type OptionsLoader interface {
	Load() (state.Options, error)
}

// ConfigOptionsLoader reads export_format and export_dir from the global configuration.
type ConfigOptionsLoader struct{}

// NewConfigOptionsLoader creates a new ConfigOptionsLoader.
func NewConfigOptionsLoader() *ConfigOptionsLoader {
	return &ConfigOptionsLoader{}
}

// Load returns the configured export options.
func (l *ConfigOptionsLoader) Load() (state.Options, error) {
	config.Load()
	format, err := export.ParseFormat(config.Get("export_format", string(export.FormatXLSX)))
	if err != nil {
		return state.Options{}, fmt.Errorf("tui: %w", err)
	}
	return state.Options{
		ExportFormat: format,
		ExportDir:    config.Get("export_dir", "."),
	}, nil
}
