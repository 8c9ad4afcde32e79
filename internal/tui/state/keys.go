package state

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
)

func (m *Model) handleKeyMsg(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	key := msg.String()
	if key == "ctrl+c" {
		return m, tea.Quit
	}

	if m.confirmReset {
		m.confirmReset = false
		if key == "y" || key == "Y" {
			return m, m.resetRecords()
		}
		m.errorHandler.Info("reset cancelled")
		return m, nil
	}

	switch key {
	case "ctrl+x":
		return m, m.exportRecords()
	case "ctrl+r":
		if m.records == 0 {
			m.errorHandler.Info("no records to drop")
			return m, nil
		}
		m.confirmReset = true
		return m, nil
	}

	switch m.stage {
	case stageVariants:
		return m.handleVariantKeys(key)
	case stageFields:
		return m.handleFieldKeys(msg)
	case stageEdit:
		return m.handleEditKeys(msg)
	default:
		return m.handleReasonKeys(key)
	}
}

func (m *Model) handleReasonKeys(key string) (tea.Model, tea.Cmd) {
	switch key {
	case "q", "esc":
		return m, tea.Quit
	case "j", "down":
		if m.cursor < len(m.reasons)-1 {
			m.cursor++
		}
	case "k", "up":
		if m.cursor > 0 {
			m.cursor--
		}
	case "g", "home":
		m.cursor = 0
	case "G", "end":
		m.cursor = len(m.reasons) - 1
	case "enter":
		return m, m.selectReason()
	}
	return m, nil
}

func (m *Model) handleVariantKeys(key string) (tea.Model, tea.Cmd) {
	switch key {
	case "esc":
		m.stage = stageReasons
	case "j", "down":
		if m.variantCursor < len(m.entry.Variants)-1 {
			m.variantCursor++
		}
	case "k", "up":
		if m.variantCursor > 0 {
			m.variantCursor--
		}
	case "enter":
		return m, m.selectVariant(m.variantCursor)
	}
	return m, nil
}

func (m *Model) handleFieldKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		for i := range m.inputs {
			m.inputs[i].Blur()
		}
		if len(m.entry.Variants) > 1 {
			m.stage = stageVariants
		} else {
			m.stage = stageReasons
		}
		return m, nil
	case "tab", "down", "enter":
		return m, m.focusInput(m.focus + 1)
	case "shift+tab", "up":
		return m, m.focusInput(m.focus - 1)
	case "pgup", "pgdown":
		var cmd tea.Cmd
		m.guidance, cmd = m.guidance.Update(msg)
		return m, cmd
	case "ctrl+e":
		if !m.edited {
			m.editor.SetValue(m.preview.Text)
		}
		if m.focus < len(m.inputs) {
			m.inputs[m.focus].Blur()
		}
		m.stage = stageEdit
		return m, m.editor.Focus()
	case "ctrl+s":
		return m, m.submit()
	}

	if len(m.inputs) == 0 {
		return m, nil
	}
	before := m.inputs[m.focus].Value()
	var cmd tea.Cmd
	m.inputs[m.focus], cmd = m.inputs[m.focus].Update(msg)
	if m.inputs[m.focus].Value() != before {
		if m.edited {
			m.edited = false
			m.errorHandler.Info("field changed: manual edit discarded")
		}
		m.refresh()
	}
	return m, cmd
}

func (m *Model) handleEditKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.editor.Blur()
		m.edited = strings.TrimSpace(m.editor.Value()) != "" &&
			strings.TrimSpace(m.editor.Value()) != m.preview.Text
		m.stage = stageFields
		return m, m.focusInput(m.focus)
	case "ctrl+s":
		m.edited = strings.TrimSpace(m.editor.Value()) != "" &&
			strings.TrimSpace(m.editor.Value()) != m.preview.Text
		return m, m.submit()
	}

	var cmd tea.Cmd
	m.editor, cmd = m.editor.Update(msg)
	return m, cmd
}
