package main

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/cristianoliveira/noshow/cmd"
	"github.com/cristianoliveira/noshow/internal/catalog"
)

type showClient interface {
	Reason(idOrTitle string) (catalog.ReasonEntry, error)
}

const showCommandLong = `Show the guidance, fields and template variants of one reason.

USAGE:
    noshow show <reason> [--json]

EXAMPLES:
    noshow show no_show_tecnico
    noshow show "No-show técnico" --json`

// NewShowCmd creates the show command with explicit dependencies.
func NewShowCmd(client showClient) *cobra.Command {
	if client == nil {
		panic("NewShowCmd: client dependency cannot be nil")
	}

	var asJSON bool

	showCmd := &cobra.Command{
		Use:   "show <reason>",
		Short: "Show a reason's guidance, fields and variants",
		Long:  showCommandLong,
		Args:  cobra.MatchAll(cobra.ExactArgs(1), requireReasonArg("show")),
		RunE: func(c *cobra.Command, args []string) error {
			entry, err := client.Reason(args[0])
			if err != nil {
				return err
			}
			if asJSON {
				enc := json.NewEncoder(c.OutOrStdout())
				enc.SetIndent("", "  ")
				enc.SetEscapeHTML(false)
				return enc.Encode(entry)
			}
			return writeEntry(c.OutOrStdout(), entry)
		},
	}

	showCmd.Flags().BoolVar(&asJSON, "json", false, "Print the entry as JSON")
	return showCmd
}

func writeEntry(w io.Writer, entry catalog.ReasonEntry) error {
	var b strings.Builder
	fmt.Fprintf(&b, "%s (%s)\n", entry.Title, entry.ID)
	if entry.Action != "" {
		fmt.Fprintf(&b, "\nAction:      %s\n", entry.Action)
	}
	if entry.Usage != "" {
		fmt.Fprintf(&b, "When to use: %s\n", entry.Usage)
	}
	if len(entry.Examples) > 0 {
		b.WriteString("\nExamples:\n")
		for _, ex := range entry.Examples {
			fmt.Fprintf(&b, "  - %s\n", ex)
		}
	}

	keys := entry.EffectiveKeys()
	labels := entry.EffectiveLabels()
	b.WriteString("\nFields:\n")
	if len(entry.Fields) == 0 {
		b.WriteString("  (none)\n")
	}
	for i, f := range entry.Fields {
		marker := ""
		if f.Required {
			marker = " *"
		}
		fmt.Fprintf(&b, "  %d. %s%s [%s]\n", i+1, labels[i], marker, keys[i])
	}

	b.WriteString("\nVariants:\n")
	for _, v := range entry.Variants {
		fmt.Fprintf(&b, "  %s  %s", v.ID, v.Label)
		if v.Description != "" {
			fmt.Fprintf(&b, " - %s", v.Description)
		}
		b.WriteString("\n")
		if len(v.ExtraRequired) > 0 {
			fmt.Fprintf(&b, "      requires: %s\n", strings.Join(v.ExtraRequired, ", "))
		}
		fmt.Fprintf(&b, "      %s\n", v.Template)
	}

	_, err := io.WriteString(w, b.String())
	return err
}

func init() {
	cmd.RootCmd.AddCommand(NewShowCmd(coreClient))
}
