package app

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/cristianoliveira/noshow/internal/colors"
	"github.com/cristianoliveira/noshow/internal/tui/state"
)

// Client defines dependencies needed by the tui command.
type Client interface {
	LoadOptions() (state.Options, error)
	CreateModel(opts state.Options) (tea.Model, error)
	RunProgram(model tea.Model) error
}

// DefaultClient is the default adapter-based implementation used by CLI wiring.
type DefaultClient struct {
	service       state.Service
	programRunner ProgramRunner
	optionsLoader OptionsLoader
}

var _ Client = (*DefaultClient)(nil)

// NewDefaultClient creates a default TUI client adapter around service.
// If programRunner is nil, a DefaultProgramRunner will be used.
// If optionsLoader is nil, a ConfigOptionsLoader will be used.
func NewDefaultClient(service state.Service, programRunner ProgramRunner, optionsLoader OptionsLoader) *DefaultClient {
	if programRunner == nil {
		programRunner = NewDefaultProgramRunner()
	}
	if optionsLoader == nil {
		optionsLoader = NewConfigOptionsLoader()
	}
	return &DefaultClient{
		service:       service,
		programRunner: programRunner,
		optionsLoader: optionsLoader,
	}
}

// LoadOptions loads the export options using the injected OptionsLoader.
func (d *DefaultClient) LoadOptions() (state.Options, error) {
	return d.optionsLoader.Load()
}

// CreateModel builds the TUI model.
func (d *DefaultClient) CreateModel(opts state.Options) (tea.Model, error) {
	return state.NewModel(d.service, opts)
}

// RunProgram starts the bubbletea program using the configured ProgramRunner.
func (d *DefaultClient) RunProgram(model tea.Model) error {
	if err := d.programRunner.Run(model); err != nil {
		colors.Debug(fmt.Sprintf("tui program failed: %v", err))
		return fmt.Errorf("run tui: %w", err)
	}
	return nil
}
