package state

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cristianoliveira/noshow/internal/catalog"
	"github.com/cristianoliveira/noshow/internal/core"
	"github.com/cristianoliveira/noshow/internal/errors"
	"github.com/cristianoliveira/noshow/internal/export"
	"github.com/cristianoliveira/noshow/internal/storage"
	"github.com/cristianoliveira/noshow/internal/token"
)

func testCatalog(t *testing.T) *catalog.Catalog {
	t.Helper()
	c, err := catalog.New([]catalog.ReasonEntry{
		{
			ID:       "chuva",
			Title:    "Chuva forte",
			Action:   "Reagendar",
			Usage:    "Atendimento externo impossível",
			Examples: []string{"Alagamento"},
			Fields: []catalog.FieldDefinition{
				{Key: token.KeyName, Label: "Nome", Required: true},
				{Key: token.KeyDate, Label: "Data", Required: true},
			},
			Variants: []catalog.TemplateVariant{
				{ID: "padrao", Label: "Padrão", Template: "Atendimento de [NOME] suspenso em [DATA]."},
			},
		},
		{
			ID:     "placa",
			Title:  "Substituição de placa",
			Fields: []catalog.FieldDefinition{{Key: token.KeyWorkOrderNumber, Label: "Número OS"}},
			Variants: []catalog.TemplateVariant{
				{ID: "com_os", Label: "Com OS", ExtraRequired: []string{token.KeyWorkOrderNumber}, Template: "Alterado pela OS [NÚMERO ORDEM DE SERVIÇO]."},
				{ID: "sem_os", Label: "Sem OS", Template: "Cliente não enviou veículo."},
			},
		},
	})
	require.NoError(t, err)
	return c
}

func newTestModel(t *testing.T) (*Model, string) {
	t.Helper()
	dir := t.TempDir()
	store, err := storage.Open(filepath.Join(dir, "records.db"))
	require.NoError(t, err)

	svc := core.New(core.Options{Catalog: testCatalog(t), Store: store})
	t.Cleanup(func() { require.NoError(t, svc.Close()) })

	m, err := NewModel(svc, Options{ExportFormat: export.FormatCSV, ExportDir: dir})
	require.NoError(t, err)
	return m, dir
}

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func key(k tea.KeyType) tea.KeyMsg {
	return tea.KeyMsg{Type: k}
}

// send feeds msg to the model and runs any returned command once, feeding its
// message back, the way the bubbletea runtime would.
func send(t *testing.T, m *Model, msg tea.Msg) tea.Cmd {
	t.Helper()
	_, cmd := m.Update(msg)
	return cmd
}

func sendAndRun(t *testing.T, m *Model, msg tea.Msg) {
	t.Helper()
	cmd := send(t, m, msg)
	require.NotNil(t, cmd)
	m.Update(cmd())
}

func latestStatus(t *testing.T, m *Model) errors.Message {
	t.Helper()
	msg, ok := m.errorHandler.GetLatest()
	require.True(t, ok, "expected a status message")
	return msg
}

type emptyService struct{ Service }

func (emptyService) Reasons() []catalog.ReasonEntry { return nil }

func TestNewModelValidatesInput(t *testing.T) {
	_, err := NewModel(nil, Options{})
	require.Error(t, err)

	_, err = NewModel(emptyService{}, Options{})
	require.ErrorContains(t, err, "no reasons")
}

func TestNewModelDefaults(t *testing.T) {
	store, err := storage.Open(filepath.Join(t.TempDir(), "records.db"))
	require.NoError(t, err)
	svc := core.New(core.Options{Catalog: testCatalog(t), Store: store})
	t.Cleanup(func() { require.NoError(t, svc.Close()) })

	m, err := NewModel(svc, Options{})
	require.NoError(t, err)
	assert.Equal(t, export.FormatXLSX, m.opts.ExportFormat)
	assert.Equal(t, ".", m.opts.ExportDir)
	assert.Equal(t, stageReasons, m.stage)
	assert.Nil(t, m.Init())
}

func TestReasonNavigation(t *testing.T) {
	m, _ := newTestModel(t)

	send(t, m, runes("k"))
	assert.Equal(t, 0, m.cursor)
	send(t, m, runes("j"))
	assert.Equal(t, 1, m.cursor)
	send(t, m, key(tea.KeyDown))
	assert.Equal(t, 1, m.cursor, "cursor stops at the last reason")
	send(t, m, runes("g"))
	assert.Equal(t, 0, m.cursor)
	send(t, m, runes("G"))
	assert.Equal(t, 1, m.cursor)
}

func TestQuitKeys(t *testing.T) {
	m, _ := newTestModel(t)

	cmd := send(t, m, runes("q"))
	require.NotNil(t, cmd)
	assert.Equal(t, tea.Quit(), cmd())

	cmd = send(t, m, key(tea.KeyCtrlC))
	require.NotNil(t, cmd)
	assert.Equal(t, tea.Quit(), cmd())
}

func TestSingleVariantGoesStraightToFields(t *testing.T) {
	m, _ := newTestModel(t)

	send(t, m, key(tea.KeyEnter))
	require.Equal(t, stageFields, m.stage)
	assert.Equal(t, "padrao", m.variant.ID)
	require.Len(t, m.inputs, 2)
	assert.Equal(t, 0, m.focus)
	assert.Equal(t, "Atendimento de [NOME] suspenso em [DATA].", m.preview.Text)
	assert.Len(t, m.preview.Warnings, 2)
}

func TestLivePreviewFollowsInputs(t *testing.T) {
	m, _ := newTestModel(t)
	send(t, m, key(tea.KeyEnter))

	send(t, m, runes("Ana"))
	assert.Equal(t, "Atendimento de Ana suspenso em [DATA].", m.preview.Text)

	send(t, m, key(tea.KeyTab))
	assert.Equal(t, 1, m.focus)
	send(t, m, runes("16/10"))
	assert.Equal(t, "Atendimento de Ana suspenso em 16/10.", m.preview.Text)
	assert.True(t, m.preview.Ready())

	send(t, m, key(tea.KeyTab))
	assert.Equal(t, 0, m.focus, "focus wraps around")
	send(t, m, key(tea.KeyShiftTab))
	assert.Equal(t, 1, m.focus)
}

func TestSubmitBlockedByMissingFields(t *testing.T) {
	m, _ := newTestModel(t)
	send(t, m, key(tea.KeyEnter))
	send(t, m, runes("Ana"))

	cmd := send(t, m, key(tea.KeyCtrlS))
	assert.Nil(t, cmd)
	status := latestStatus(t, m)
	assert.Equal(t, errors.MessageTypeError, status.Type)
	assert.Equal(t, "fill in the required fields: Data", status.Text)
	assert.Equal(t, 0, m.records)
}

func TestSubmitAddsRecordAndResetsForm(t *testing.T) {
	m, _ := newTestModel(t)
	send(t, m, key(tea.KeyEnter))
	send(t, m, runes("Ana"))
	send(t, m, key(tea.KeyTab))
	send(t, m, runes("16/10"))

	sendAndRun(t, m, key(tea.KeyCtrlS))

	assert.Equal(t, 1, m.records)
	assert.Equal(t, stageReasons, m.stage)
	status := latestStatus(t, m)
	assert.Equal(t, errors.MessageTypeSuccess, status.Type)
	assert.Contains(t, status.Text, "record #1 added")
	for _, in := range m.inputs {
		assert.Empty(t, in.Value())
	}

	records, err := m.svc.Records(t.Context())
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, "Atendimento de Ana suspenso em 16/10.", records[0].Text)
}

func TestVariantChoiceAndExtraRequirement(t *testing.T) {
	m, _ := newTestModel(t)
	send(t, m, runes("j"))
	send(t, m, key(tea.KeyEnter))
	require.Equal(t, stageVariants, m.stage)

	send(t, m, key(tea.KeyEnter))
	require.Equal(t, stageFields, m.stage)
	assert.Equal(t, "com_os", m.variant.ID)

	assert.Nil(t, send(t, m, key(tea.KeyCtrlS)))
	assert.Equal(t, "fill in the required fields: Número OS", latestStatus(t, m).Text)

	send(t, m, key(tea.KeyEsc))
	require.Equal(t, stageVariants, m.stage)
	send(t, m, runes("j"))
	send(t, m, key(tea.KeyEnter))
	assert.Equal(t, "sem_os", m.variant.ID)
	assert.True(t, m.preview.Ready(), "the field is optional without the OS variant")

	sendAndRun(t, m, key(tea.KeyCtrlS))
	assert.Equal(t, 1, m.records)
}

func TestEditFinalTextOverridesPreview(t *testing.T) {
	m, _ := newTestModel(t)
	send(t, m, key(tea.KeyEnter))
	send(t, m, runes("Ana"))
	send(t, m, key(tea.KeyTab))
	send(t, m, runes("16/10"))

	send(t, m, key(tea.KeyCtrlE))
	require.Equal(t, stageEdit, m.stage)
	assert.Equal(t, m.preview.Text, m.editor.Value())

	send(t, m, runes(" Cliente avisado."))
	send(t, m, key(tea.KeyEsc))
	require.Equal(t, stageFields, m.stage)
	assert.True(t, m.edited)
	assert.Contains(t, m.View(), "Preview (edited)")

	sendAndRun(t, m, key(tea.KeyCtrlS))
	records, err := m.svc.Records(t.Context())
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, "Atendimento de Ana suspenso em 16/10. Cliente avisado.", records[0].Text)
}

func TestChangingAFieldDiscardsManualEdit(t *testing.T) {
	m, _ := newTestModel(t)
	send(t, m, key(tea.KeyEnter))
	send(t, m, key(tea.KeyCtrlE))
	send(t, m, runes("!"))
	send(t, m, key(tea.KeyEsc))
	require.True(t, m.edited)

	send(t, m, runes("Ana"))
	assert.False(t, m.edited)
	assert.Equal(t, "field changed: manual edit discarded", latestStatus(t, m).Text)
}

func TestExport(t *testing.T) {
	m, dir := newTestModel(t)

	sendAndRun(t, m, key(tea.KeyCtrlX))
	assert.Equal(t, "nothing to export yet: add a justification first", latestStatus(t, m).Text)

	send(t, m, runes("j"))
	send(t, m, key(tea.KeyEnter))
	send(t, m, runes("j"))
	send(t, m, key(tea.KeyEnter))
	sendAndRun(t, m, key(tea.KeyCtrlS))

	sendAndRun(t, m, key(tea.KeyCtrlX))
	status := latestStatus(t, m)
	require.Equal(t, errors.MessageTypeSuccess, status.Type)
	assert.Contains(t, status.Text, "exported 1 records to")

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	var csvFiles int
	for _, e := range entries {
		if strings.HasSuffix(e.Name(), ".csv") {
			csvFiles++
		}
	}
	assert.Equal(t, 1, csvFiles)
}

func TestExportFallbackIsReportedAsWarning(t *testing.T) {
	m, _ := newTestModel(t)
	m.Update(exportedMsg{Path: "/tmp/x.csv", Requested: export.FormatXLSX, Used: export.FormatCSV})
	status := latestStatus(t, m)
	assert.Equal(t, errors.MessageTypeWarning, status.Type)
	assert.Contains(t, status.Text, "xlsx export failed, wrote csv instead")
}

func TestResetAsksForConfirmation(t *testing.T) {
	m, _ := newTestModel(t)

	send(t, m, key(tea.KeyCtrlR))
	assert.False(t, m.confirmReset)
	assert.Equal(t, "no records to drop", latestStatus(t, m).Text)

	send(t, m, runes("j"))
	send(t, m, key(tea.KeyEnter))
	send(t, m, runes("j"))
	send(t, m, key(tea.KeyEnter))
	sendAndRun(t, m, key(tea.KeyCtrlS))
	require.Equal(t, 1, m.records)

	send(t, m, key(tea.KeyCtrlR))
	assert.True(t, m.confirmReset)
	assert.Contains(t, m.View(), "Drop all 1 records")
	send(t, m, runes("n"))
	assert.False(t, m.confirmReset)
	assert.Equal(t, "reset cancelled", latestStatus(t, m).Text)
	assert.Equal(t, 1, m.records)

	send(t, m, key(tea.KeyCtrlR))
	sendAndRun(t, m, runes("y"))
	assert.Equal(t, 0, m.records)
	assert.Contains(t, latestStatus(t, m).Text, "1 records dropped")
}

func TestResetStartsNewConsultation(t *testing.T) {
	m, _ := newTestModel(t)

	send(t, m, runes("j"))
	send(t, m, key(tea.KeyEnter))
	send(t, m, runes("j"))
	send(t, m, key(tea.KeyEnter))
	sendAndRun(t, m, key(tea.KeyCtrlS))
	require.Equal(t, 1, m.records)

	send(t, m, key(tea.KeyEnter))
	send(t, m, key(tea.KeyEnter))
	require.Equal(t, stageFields, m.stage)
	send(t, m, runes("123"))
	require.Equal(t, "123", m.inputs[0].Value())

	send(t, m, key(tea.KeyCtrlR))
	sendAndRun(t, m, runes("y"))

	assert.Equal(t, 0, m.records)
	assert.Equal(t, stageReasons, m.stage)
	assert.Equal(t, 0, m.cursor)
	assert.Empty(t, m.entry.ID)
	assert.Empty(t, m.variant.ID)
	assert.Nil(t, m.inputs)
	assert.Empty(t, m.preview.Text)
	assert.False(t, m.edited)
}

func TestViewPerStage(t *testing.T) {
	m, _ := newTestModel(t)
	m.Update(tea.WindowSizeMsg{Width: 80, Height: 40})

	view := m.View()
	assert.Contains(t, view, "Chuva forte (1)")
	assert.Contains(t, view, "0 records")

	send(t, m, key(tea.KeyEnter))
	view = m.View()
	assert.Contains(t, view, "Nome *")
	assert.Contains(t, view, "Action: Reagendar")
	assert.Contains(t, view, "! required field missing: Data")

	m.Update(tea.WindowSizeMsg{Width: 140, Height: 40})
	assert.Contains(t, m.View(), "Atendimento de [NOME] suspenso em [DATA].")

	send(t, m, key(tea.KeyCtrlE))
	assert.Contains(t, m.View(), "Edit the final text")
}

func TestStageString(t *testing.T) {
	assert.Equal(t, "reasons", stageReasons.String())
	assert.Equal(t, "variants", stageVariants.String())
	assert.Equal(t, "fields", stageFields.String())
	assert.Equal(t, "edit", stageEdit.String())
}
