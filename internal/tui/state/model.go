// Package state holds the bubbletea model of the justification builder: pick a
// reason, pick a variant, fill the fields while the text renders live, edit the
// final text if needed, then add it to the consultation.
package state

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/cristianoliveira/noshow/internal/catalog"
	"github.com/cristianoliveira/noshow/internal/core"
	"github.com/cristianoliveira/noshow/internal/domain"
	"github.com/cristianoliveira/noshow/internal/errors"
	"github.com/cristianoliveira/noshow/internal/export"
	"github.com/cristianoliveira/noshow/internal/form"
	"github.com/cristianoliveira/noshow/internal/mask"
	"github.com/cristianoliveira/noshow/internal/tui/render"
)

const (
	defaultViewportWidth  = 80
	defaultViewportHeight = 10
	wideLayoutWidth       = 110
	editorHeight          = 6
)

// Service is what the model needs from the application core.
type Service interface {
	Reasons() []catalog.ReasonEntry
	Preview(idOrTitle, variantID string, values mask.ValueMap) (core.Preview, error)
	Submit(ctx context.Context, idOrTitle, variantID string, values mask.ValueMap, override string) (domain.Record, error)
	Records(ctx context.Context) ([]domain.Record, error)
	Export(ctx context.Context, format export.Format, dir string) (string, export.Format, error)
	Reset(ctx context.Context) (int, error)
}

// Options configures where exports go.
type Options struct {
	ExportFormat export.Format
	ExportDir    string
}

type stage int

const (
	stageReasons stage = iota
	stageVariants
	stageFields
	stageEdit
)

func (s stage) String() string {
	switch s {
	case stageVariants:
		return "variants"
	case stageFields:
		return "fields"
	case stageEdit:
		return "edit"
	default:
		return "reasons"
	}
}

// Model represents the TUI model for bubbletea.
type Model struct {
	svc  Service
	opts Options

	reasons       []catalog.ReasonEntry
	stage         stage
	cursor        int
	variantCursor int

	entry   catalog.ReasonEntry
	variant catalog.TemplateVariant
	inputs  []textinput.Model
	focus   int
	preview core.Preview

	editor   textarea.Model
	edited   bool
	guidance viewport.Model

	records      int
	confirmReset bool

	errorHandler  *errors.TUIHandler
	statusMessage errors.Message
	hasStatus     bool

	width  int
	height int
}

// NewModel creates the model and loads the catalog and the record count.
func NewModel(svc Service, opts Options) (*Model, error) {
	if svc == nil {
		return nil, fmt.Errorf("tui: service cannot be nil")
	}
	if opts.ExportFormat == "" {
		opts.ExportFormat = export.FormatXLSX
	}
	if opts.ExportDir == "" {
		opts.ExportDir = "."
	}

	reasons := svc.Reasons()
	if len(reasons) == 0 {
		return nil, fmt.Errorf("tui: the catalog has no reasons")
	}
	records, err := svc.Records(context.Background())
	if err != nil {
		return nil, fmt.Errorf("tui: load records: %w", err)
	}

	editor := textarea.New()
	editor.ShowLineNumbers = false
	editor.CharLimit = 0
	editor.SetWidth(defaultViewportWidth)
	editor.SetHeight(editorHeight)

	m := &Model{
		svc:      svc,
		opts:     opts,
		reasons:  reasons,
		records:  len(records),
		editor:   editor,
		guidance: viewport.New(defaultViewportWidth, defaultViewportHeight),
	}
	m.errorHandler = errors.NewTUIHandler(func(msg errors.Message) {
		m.statusMessage = msg
		m.hasStatus = msg.Text != ""
	})
	return m, nil
}

// Init initializes the TUI model.
func (m *Model) Init() tea.Cmd {
	return nil
}

// Update handles messages and updates the model state.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKeyMsg(msg)
	case tea.WindowSizeMsg:
		m.handleWindowSize(msg)
		return m, nil
	case recordAddedMsg:
		m.records++
		m.errorHandler.Success(fmt.Sprintf("record #%d added: %s", msg.Record.ID, msg.Record.ReasonTitle))
		m.resetForm()
		return m, nil
	case exportedMsg:
		if msg.Used != msg.Requested {
			m.errorHandler.Warning(fmt.Sprintf("%s export failed, wrote %s instead: %s", msg.Requested, msg.Used, msg.Path))
			return m, nil
		}
		m.errorHandler.Success(fmt.Sprintf("exported %d records to %s", m.records, msg.Path))
		return m, nil
	case resetMsg:
		m.records = 0
		m.newConsultation()
		m.errorHandler.Success(fmt.Sprintf("new consultation: %d records dropped", msg.Dropped))
		return m, nil
	case errorMsg:
		errors.Report(m.errorHandler, msg.Err)
		return m, nil
	}
	return m, nil
}

func (m *Model) handleWindowSize(msg tea.WindowSizeMsg) {
	m.width = msg.Width
	m.height = msg.Height

	panelWidth := msg.Width
	if msg.Width >= wideLayoutWidth {
		panelWidth = msg.Width / 2
	}
	m.guidance.Width = max(panelWidth-4, 20)
	m.guidance.Height = max(msg.Height/3, 4)
	m.editor.SetWidth(max(msg.Width-4, 20))
	for i := range m.inputs {
		m.inputs[i].Width = max(panelWidth-30, 10)
	}
}

// selectReason moves to the variant choice, or straight to the form when the
// reason has a single variant.
func (m *Model) selectReason() tea.Cmd {
	entry := m.reasons[m.cursor]
	if entry.ID != m.entry.ID {
		m.entry = entry
		m.inputs = nil
	}
	if len(entry.Variants) > 1 {
		m.stage = stageVariants
		m.variantCursor = 0
		return nil
	}
	return m.selectVariant(0)
}

func (m *Model) selectVariant(i int) tea.Cmd {
	if i < 0 || i >= len(m.entry.Variants) {
		return nil
	}
	m.variant = m.entry.Variants[i]
	if m.inputs == nil {
		m.inputs = newInputs(m.entry)
	}
	m.stage = stageFields
	m.edited = false
	m.guidance.SetContent(render.Guidance(m.entry, m.variant))
	m.guidance.GotoTop()
	m.refresh()
	return m.focusInput(0)
}

func newInputs(entry catalog.ReasonEntry) []textinput.Model {
	labels := entry.EffectiveLabels()
	inputs := make([]textinput.Model, len(entry.Fields))
	for i := range entry.Fields {
		in := textinput.New()
		in.Prompt = ""
		in.Placeholder = labels[i]
		in.Width = defaultViewportWidth - 30
		inputs[i] = in
	}
	return inputs
}

func (m *Model) focusInput(i int) tea.Cmd {
	if len(m.inputs) == 0 {
		return nil
	}
	i = (i + len(m.inputs)) % len(m.inputs)
	for j := range m.inputs {
		m.inputs[j].Blur()
	}
	m.focus = i
	return m.inputs[i].Focus()
}

// values returns the current inputs keyed by effective field key.
func (m *Model) values() mask.ValueMap {
	raw := make([]string, len(m.inputs))
	for i, in := range m.inputs {
		raw[i] = in.Value()
	}
	return form.BuildValues(m.entry, raw)
}

// refresh re-renders the preview from the current inputs.
func (m *Model) refresh() {
	p, err := m.svc.Preview(m.entry.ID, m.variant.ID, m.values())
	if err != nil {
		errors.Report(m.errorHandler, err)
		return
	}
	m.preview = p
}

// finalText is the text that would be stored right now.
func (m *Model) finalText() string {
	if m.edited {
		return strings.TrimSpace(m.editor.Value())
	}
	return m.preview.Text
}

func (m *Model) submit() tea.Cmd {
	if !m.preview.Ready() {
		errors.Report(m.errorHandler, &form.MissingFieldsError{Warnings: m.preview.Warnings})
		return nil
	}
	override := ""
	if m.edited {
		override = m.editor.Value()
	}
	svc, id, variantID, values := m.svc, m.entry.ID, m.variant.ID, m.values()
	return func() tea.Msg {
		record, err := svc.Submit(context.Background(), id, variantID, values, override)
		if err != nil {
			return errorMsg{Err: err}
		}
		return recordAddedMsg{Record: record}
	}
}

func (m *Model) exportRecords() tea.Cmd {
	svc, format, dir := m.svc, m.opts.ExportFormat, m.opts.ExportDir
	return func() tea.Msg {
		path, used, err := svc.Export(context.Background(), format, dir)
		if err != nil {
			return errorMsg{Err: err}
		}
		return exportedMsg{Path: path, Requested: format, Used: used}
	}
}

func (m *Model) resetRecords() tea.Cmd {
	svc := m.svc
	return func() tea.Msg {
		n, err := svc.Reset(context.Background())
		if err != nil {
			return errorMsg{Err: err}
		}
		return resetMsg{Dropped: n}
	}
}

// resetForm clears the inputs and the manual edit and returns to the reason list.
func (m *Model) resetForm() {
	for i := range m.inputs {
		m.inputs[i].SetValue("")
		m.inputs[i].Blur()
	}
	m.editor.Reset()
	m.editor.Blur()
	m.edited = false
	m.stage = stageReasons
	m.refresh()
}

// newConsultation clears the form and forgets the selected reason and variant
// after every record was dropped.
func (m *Model) newConsultation() {
	m.resetForm()
	m.entry = catalog.ReasonEntry{}
	m.variant = catalog.TemplateVariant{}
	m.inputs = nil
	m.focus = 0
	m.preview = core.Preview{}
	m.cursor = 0
	m.variantCursor = 0
	m.guidance.SetContent("")
}
