package state

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/cristianoliveira/noshow/internal/form"
	"github.com/cristianoliveira/noshow/internal/tui/render"
)

// View renders the model.
func (m *Model) View() string {
	var body string
	switch m.stage {
	case stageVariants:
		body = render.Title(m.entry.Title+": choose a template") + "\n\n" +
			render.VariantList(m.entry.Variants, m.variantCursor, m.width)
	case stageFields:
		body = m.viewFields()
	case stageEdit:
		body = render.Title("Edit the final text") + "\n\n" + m.editor.View() + "\n\n" +
			render.Panel(m.guidance.View(), m.width)
	default:
		body = render.Title("No-show / cancellation reason") + "\n\n" +
			render.ReasonList(m.reasons, m.cursor, m.width)
	}

	var b strings.Builder
	b.WriteString(body)
	b.WriteString("\n\n")
	if m.hasStatus {
		b.WriteString(render.Status(m.statusMessage))
		b.WriteString("\n")
	}
	b.WriteString(render.Footer(render.FooterState{
		Stage:        m.stage.String(),
		Records:      m.records,
		ConfirmReset: m.confirmReset,
	}))
	return b.String()
}

func (m *Model) viewFields() string {
	labels := m.entry.EffectiveLabels()
	rows := make([]string, 0, len(m.inputs)+2)
	rows = append(rows, render.Title(fmt.Sprintf("%s · %s", m.entry.Title, m.variant.Label)), "")
	for i, in := range m.inputs {
		required := form.Required(m.entry, m.variant, i)
		rows = append(rows, render.FieldLabel(labels[i], required, i == m.focus)+" "+in.View())
	}
	if len(m.inputs) == 0 {
		rows = append(rows, render.Muted("This reason has no fields."))
	}
	fields := strings.Join(rows, "\n")

	preview := render.Preview(m.finalText(), m.preview.Warnings, m.edited)
	guidance := render.Panel(m.guidance.View(), m.guidance.Width+4)

	if m.width >= wideLayoutWidth {
		left := lipgloss.JoinVertical(lipgloss.Left, fields, "", preview)
		return lipgloss.JoinHorizontal(lipgloss.Top, lipgloss.NewStyle().Width(m.width/2).Render(left), guidance)
	}
	return strings.Join([]string{fields, "", preview, "", guidance}, "\n")
}
