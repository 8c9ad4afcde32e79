package main

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/cristianoliveira/noshow/internal/catalog"
	"github.com/cristianoliveira/noshow/internal/core"
	"github.com/cristianoliveira/noshow/internal/domain"
	"github.com/cristianoliveira/noshow/internal/mask"
)

// scriptedPrompter answers prompts from fixed queues and records what was asked.
type scriptedPrompter struct {
	selects  []int
	inputs   []string
	confirms []bool

	asked    []string
	required []bool
}

func (p *scriptedPrompter) Select(message string, options []string, help string) (int, error) {
	p.asked = append(p.asked, message)
	if len(p.selects) == 0 {
		return 0, errors.New("unexpected select: " + message)
	}
	answer := p.selects[0]
	p.selects = p.selects[1:]
	return answer, nil
}

func (p *scriptedPrompter) Input(message, defaultValue, help string, required bool) (string, error) {
	p.asked = append(p.asked, message)
	p.required = append(p.required, required)
	if len(p.inputs) == 0 {
		return "", errors.New("unexpected input: " + message)
	}
	answer := p.inputs[0]
	p.inputs = p.inputs[1:]
	if answer == "" {
		answer = defaultValue
	}
	return answer, nil
}

func (p *scriptedPrompter) Confirm(message string, defaultValue bool) (bool, error) {
	p.asked = append(p.asked, message)
	if len(p.confirms) == 0 {
		return false, errors.New("unexpected confirm: " + message)
	}
	answer := p.confirms[0]
	p.confirms = p.confirms[1:]
	return answer, nil
}

func TestPromptCmdBuildsAndSubmits(t *testing.T) {
	entry := technicianEntry()
	values := mask.ValueMap{"technician_name": "João", "date": "16/10", "date_2": "17/10"}
	rendered := "Técnico João, em 16/10, não compareceu."

	client := newMockClient(t)
	client.On("Reasons").Return([]catalog.ReasonEntry{entry}).Once()
	client.On("BuildValues", entry, []string{"João", "16/10", "17/10"}).Return(values).Once()
	client.On("Preview", "no_show_tecnico", "com_os", values).Return(core.Preview{Text: rendered}, nil).Once()
	client.On("Submit", mock.Anything, "no_show_tecnico", "com_os", values, "").
		Return(domain.Record{ID: 1, ReasonTitle: entry.Title, Text: rendered}, nil).Once()

	ask := &scriptedPrompter{
		selects:  []int{0, 1},
		inputs:   []string{"João", "16/10", "17/10", ""},
		confirms: []bool{true},
	}
	out, err := execute(t, newPromptCmd(client, ask))
	require.NoError(t, err)

	assert.Equal(t, "\n"+rendered+"\n\n", out)
	assert.Equal(t, []string{
		"Reason:", "Template:", "Nome Técnico:", "Data:", "Data 2:",
		"Final text (Enter keeps it):", "Add to the consultation?",
	}, ask.asked)
	// Data 2 is required only by the com_os variant.
	assert.Equal(t, []bool{true, true, true, false}, ask.required)
}

func TestPromptCmdManualOverride(t *testing.T) {
	entry := technicianEntry()
	entry.Variants = entry.Variants[:1]
	values := mask.ValueMap{"technician_name": "João", "date": "16/10", "date_2": ""}

	client := newMockClient(t)
	client.On("Reasons").Return([]catalog.ReasonEntry{entry}).Once()
	client.On("BuildValues", entry, []string{"João", "16/10", "-"}).Return(values).Once()
	client.On("Preview", "no_show_tecnico", "padrao", values).Return(core.Preview{Text: "Técnico João."}, nil).Once()
	client.On("Submit", mock.Anything, "no_show_tecnico", "padrao", values, "Técnico João faltou.").
		Return(domain.Record{ID: 2}, nil).Once()

	ask := &scriptedPrompter{
		selects:  []int{0},
		inputs:   []string{"João", "16/10", "-", "  Técnico João faltou.  "},
		confirms: []bool{true},
	}
	_, err := execute(t, newPromptCmd(client, ask))
	require.NoError(t, err)
	assert.NotContains(t, ask.asked, "Template:", "a single variant is selected without asking")
}

func TestPromptCmdDeclined(t *testing.T) {
	entry := technicianEntry()
	entry.Variants = entry.Variants[:1]

	client := newMockClient(t)
	client.On("Reasons").Return([]catalog.ReasonEntry{entry}).Once()
	client.On("BuildValues", entry, mock.Anything).Return(mask.ValueMap{}).Once()
	client.On("Preview", "no_show_tecnico", "padrao", mask.ValueMap{}).Return(core.Preview{Text: "x"}, nil).Once()

	ask := &scriptedPrompter{
		selects:  []int{0},
		inputs:   []string{"a", "b", "c", ""},
		confirms: []bool{false},
	}
	_, err := execute(t, newPromptCmd(client, ask))
	require.NoError(t, err)
	client.AssertNotCalled(t, "Submit", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestPromptCmdEmptyCatalog(t *testing.T) {
	client := newMockClient(t)
	client.On("Reasons").Return(nil).Once()

	_, err := execute(t, newPromptCmd(client, &scriptedPrompter{}))
	require.EqualError(t, err, "the catalog has no reasons")
}

func TestVariantLabel(t *testing.T) {
	assert.Equal(t, "Com OS - OS aberta", variantLabel(catalog.TemplateVariant{ID: "com_os", Label: "Com OS", Description: "OS aberta"}))
	assert.Equal(t, "sem_os", variantLabel(catalog.TemplateVariant{ID: "sem_os"}))
}
