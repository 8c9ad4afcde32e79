package main

import (
	"bytes"
	"context"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"github.com/stretchr/testify/mock"

	"github.com/cristianoliveira/noshow/internal/catalog"
	"github.com/cristianoliveira/noshow/internal/core"
	"github.com/cristianoliveira/noshow/internal/domain"
	"github.com/cristianoliveira/noshow/internal/export"
	"github.com/cristianoliveira/noshow/internal/mask"
	"github.com/cristianoliveira/noshow/internal/token"
	"github.com/cristianoliveira/noshow/internal/tui/state"
)

// mockClient is a testify mock covering every command client interface.
type mockClient struct {
	mock.Mock
}

func (m *mockClient) Reasons() []catalog.ReasonEntry {
	args := m.Called()
	entries, _ := args.Get(0).([]catalog.ReasonEntry)
	return entries
}

func (m *mockClient) Reason(idOrTitle string) (catalog.ReasonEntry, error) {
	args := m.Called(idOrTitle)
	return args.Get(0).(catalog.ReasonEntry), args.Error(1)
}

func (m *mockClient) BuildValues(entry catalog.ReasonEntry, inputs []string) mask.ValueMap {
	args := m.Called(entry, inputs)
	return args.Get(0).(mask.ValueMap)
}

func (m *mockClient) ParseValues(entry catalog.ReasonEntry, pairs []string) (mask.ValueMap, error) {
	args := m.Called(entry, pairs)
	values, _ := args.Get(0).(mask.ValueMap)
	return values, args.Error(1)
}

func (m *mockClient) Preview(idOrTitle, variantID string, values mask.ValueMap) (core.Preview, error) {
	args := m.Called(idOrTitle, variantID, values)
	return args.Get(0).(core.Preview), args.Error(1)
}

func (m *mockClient) Explain(idOrTitle, variantID string, values mask.ValueMap) ([]core.TokenTrace, error) {
	args := m.Called(idOrTitle, variantID, values)
	traces, _ := args.Get(0).([]core.TokenTrace)
	return traces, args.Error(1)
}

func (m *mockClient) Submit(ctx context.Context, idOrTitle, variantID string, values mask.ValueMap, override string) (domain.Record, error) {
	args := m.Called(ctx, idOrTitle, variantID, values, override)
	return args.Get(0).(domain.Record), args.Error(1)
}

func (m *mockClient) Records(ctx context.Context) ([]domain.Record, error) {
	args := m.Called(ctx)
	records, _ := args.Get(0).([]domain.Record)
	return records, args.Error(1)
}

func (m *mockClient) DeleteRecord(ctx context.Context, id int64) error {
	return m.Called(ctx, id).Error(0)
}

func (m *mockClient) Duplicates(ctx context.Context) ([][]domain.Record, error) {
	args := m.Called(ctx)
	groups, _ := args.Get(0).([][]domain.Record)
	return groups, args.Error(1)
}

func (m *mockClient) DuplicatesOf(ctx context.Context, record domain.Record) ([]domain.Record, error) {
	args := m.Called(ctx, record)
	records, _ := args.Get(0).([]domain.Record)
	return records, args.Error(1)
}

func (m *mockClient) Export(ctx context.Context, f export.Format, dir string) (string, export.Format, error) {
	args := m.Called(ctx, f, dir)
	return args.String(0), args.Get(1).(export.Format), args.Error(2)
}

func (m *mockClient) Reset(ctx context.Context) (int, error) {
	args := m.Called(ctx)
	return args.Int(0), args.Error(1)
}

func (m *mockClient) Normalize(raw string) token.Key {
	return m.Called(raw).Get(0).(token.Key)
}

func (m *mockClient) Lint() []catalog.Issue {
	issues, _ := m.Called().Get(0).([]catalog.Issue)
	return issues
}

func (m *mockClient) Version() string {
	return m.Called().String(0)
}

// mockTUIClient is a testify mock of app.Client.
type mockTUIClient struct {
	mock.Mock
}

func (m *mockTUIClient) LoadOptions() (state.Options, error) {
	args := m.Called()
	return args.Get(0).(state.Options), args.Error(1)
}

func (m *mockTUIClient) CreateModel(opts state.Options) (tea.Model, error) {
	args := m.Called(opts)
	model, _ := args.Get(0).(tea.Model)
	return model, args.Error(1)
}

func (m *mockTUIClient) RunProgram(model tea.Model) error {
	return m.Called(model).Error(0)
}

func newMockClient(t *testing.T) *mockClient {
	t.Helper()
	m := new(mockClient)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

// execute runs c with args and returns what it wrote to its output.
func execute(t *testing.T, c *cobra.Command, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	c.SetOut(&out)
	c.SetErr(&out)
	c.SetArgs(args)
	c.SilenceUsage = true
	c.SilenceErrors = true
	err := c.Execute()
	return out.String(), err
}

func technicianEntry() catalog.ReasonEntry {
	return catalog.ReasonEntry{
		ID:       "no_show_tecnico",
		Title:    "No-show técnico",
		Action:   "Reagendar",
		Usage:    "Técnico não compareceu",
		Examples: []string{"Técnico não foi ao local"},
		Fields: []catalog.FieldDefinition{
			{Key: "technician_name", Label: "Nome Técnico", Required: true},
			{Key: "date", Label: "Data", Required: true},
			{Key: "date", Label: "Data"},
		},
		Variants: []catalog.TemplateVariant{
			{ID: "padrao", Label: "Padrão", Template: "Técnico [NOME TÉCNICO], em [DATA], não compareceu."},
			{ID: "com_os", Label: "Com OS", Description: "OS aberta", ExtraRequired: []string{"date_2"}, Template: "[DATA 2]"},
		},
	}
}
