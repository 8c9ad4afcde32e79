// Package render draws the pieces of the justification TUI: reason and
// variant lists, field rows, the guidance panel, the preview and the footer.
package render

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"

	"github.com/cristianoliveira/noshow/internal/catalog"
	"github.com/cristianoliveira/noshow/internal/colors"
	"github.com/cristianoliveira/noshow/internal/errors"
	"github.com/cristianoliveira/noshow/internal/form"
)

const (
	cursorSymbol    = "▸"
	requiredMarker  = "*"
	labelWidth      = 22
	defaultWidth    = 80
	mutedColor      = "241"
	selectedFgColor = "0"
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color(ansiColorNumber(colors.Blue)))
	selectedStyle = lipgloss.NewStyle().
			Bold(true).
			Background(lipgloss.Color(ansiColorNumber(colors.Blue))).
			Foreground(lipgloss.Color(selectedFgColor))
	mutedStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color(mutedColor))
	warningStyle = lipgloss.NewStyle().Foreground(lipgloss.Color(ansiColorNumber(colors.Yellow)))
	errorStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color(ansiColorNumber(colors.Red)))
	successStyle = lipgloss.NewStyle().Foreground(lipgloss.Color(ansiColorNumber(colors.Green)))
	panelStyle   = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color(mutedColor)).
			Padding(0, 1)
)

// Title renders a section heading.
func Title(text string) string {
	return titleStyle.Render(text)
}

// Muted renders secondary text.
func Muted(text string) string {
	return mutedStyle.Render(text)
}

// Panel wraps content in a bordered box of the given outer width.
func Panel(content string, width int) string {
	if width <= 0 {
		width = defaultWidth
	}
	return panelStyle.Width(max(width-2, 10)).Render(content)
}

// ReasonList renders every reason, one per line, with the cursor row highlighted.
func ReasonList(entries []catalog.ReasonEntry, cursor, width int) string {
	if len(entries) == 0 {
		return Muted("No reasons in the catalog.")
	}
	lines := make([]string, len(entries))
	for i, e := range entries {
		label := fmt.Sprintf("%s (%d)", e.Title, len(e.Variants))
		lines[i] = listRow(label, i == cursor, width)
	}
	return strings.Join(lines, "\n")
}

// VariantList renders the variants of one reason with their descriptions.
func VariantList(variants []catalog.TemplateVariant, cursor, width int) string {
	lines := make([]string, 0, len(variants))
	for i, v := range variants {
		label := v.Label
		if label == "" {
			label = v.ID
		}
		if v.Description != "" {
			label += " - " + v.Description
		}
		lines = append(lines, listRow(label, i == cursor, width))
	}
	return strings.Join(lines, "\n")
}

func listRow(label string, selected bool, width int) string {
	if width <= 0 {
		width = defaultWidth
	}
	label = runewidth.Truncate(label, width-2, "...")
	if selected {
		return selectedStyle.Render(cursorSymbol + " " + runewidth.FillRight(label, width-2))
	}
	return "  " + label
}

// FieldLabel renders the label column of a form row. Required fields carry a
// trailing marker.
func FieldLabel(label string, required, focused bool) string {
	if required {
		label += " " + requiredMarker
	}
	cell := runewidth.FillRight(runewidth.Truncate(label, labelWidth, "..."), labelWidth)
	if focused {
		return titleStyle.Render(cell)
	}
	return cell
}

// Guidance renders the operator guidance for a reason and the chosen variant.
func Guidance(entry catalog.ReasonEntry, variant catalog.TemplateVariant) string {
	var b strings.Builder
	b.WriteString(Title(entry.Title))
	b.WriteString("\n")
	if entry.Action != "" {
		fmt.Fprintf(&b, "\nAction: %s\n", entry.Action)
	}
	if entry.Usage != "" {
		fmt.Fprintf(&b, "\nWhen to use: %s\n", entry.Usage)
	}
	if len(entry.Examples) > 0 {
		b.WriteString("\nExamples:\n")
		for _, ex := range entry.Examples {
			fmt.Fprintf(&b, "  - %s\n", ex)
		}
	}
	if variant.Label != "" || variant.Description != "" {
		fmt.Fprintf(&b, "\nVariant: %s", variant.Label)
		if variant.Description != "" {
			fmt.Fprintf(&b, " (%s)", variant.Description)
		}
		b.WriteString("\n")
	}
	return strings.TrimRight(b.String(), "\n")
}

// Preview renders the justification text followed by any blocking warnings.
func Preview(text string, warnings []form.Warning, edited bool) string {
	var b strings.Builder
	heading := "Preview"
	if edited {
		heading = "Preview (edited)"
	}
	b.WriteString(Title(heading))
	b.WriteString("\n")
	b.WriteString(text)
	for _, w := range warnings {
		b.WriteString("\n")
		b.WriteString(warningStyle.Render("! " + w.String()))
	}
	return b.String()
}

// Status renders a status line message by type.
func Status(msg errors.Message) string {
	switch msg.Type {
	case errors.MessageTypeError:
		return errorStyle.Render("Error: " + msg.Text)
	case errors.MessageTypeWarning:
		return warningStyle.Render("Warning: " + msg.Text)
	case errors.MessageTypeSuccess:
		return successStyle.Render("✓ " + msg.Text)
	default:
		return msg.Text
	}
}

// FooterState defines the inputs needed to render footer help text.
type FooterState struct {
	Stage        string
	Records      int
	ConfirmReset bool
}

// Footer renders the key help for the current stage and the record count.
func Footer(state FooterState) string {
	if state.ConfirmReset {
		return warningStyle.Render(fmt.Sprintf("Drop all %d records and start a new consultation? y/n", state.Records))
	}

	var help []string
	switch state.Stage {
	case "reasons":
		help = append(help, "j/k: move", "Enter: select")
	case "variants":
		help = append(help, "j/k: move", "Enter: select", "Esc: back")
	case "fields":
		help = append(help, "Tab: next field", "Ctrl+E: edit text", "Ctrl+S: add", "Esc: back")
	case "edit":
		help = append(help, "Ctrl+S: add", "Esc: keep and go back")
	}
	help = append(help, "Ctrl+X: export", "Ctrl+R: reset", "Ctrl+C: quit")

	line := strings.Join(help, "  |  ")
	return mutedStyle.Render(fmt.Sprintf("%s  ·  %d records", line, state.Records))
}

// ansiColorNumber extracts the color number from an ANSI escape sequence.
// Example: "\033[0;34m" -> "34"
func ansiColorNumber(ansi string) string {
	if len(ansi) < 2 {
		return ""
	}
	lastSemicolon := strings.LastIndex(ansi, ";")
	if lastSemicolon == -1 {
		return ""
	}
	return ansi[lastSemicolon+1 : len(ansi)-1]
}
