package main

import (
	"fmt"
	"slices"
	"strings"

	"github.com/spf13/cobra"

	"github.com/cristianoliveira/noshow/cmd"
	"github.com/cristianoliveira/noshow/internal/catalog"
	"github.com/cristianoliveira/noshow/internal/format"
	"github.com/cristianoliveira/noshow/internal/search"
)

type reasonsClient interface {
	Reasons() []catalog.ReasonEntry
}

const reasonsCommandLong = `List the no-show and cancellation reasons of the catalog.

USAGE:
    noshow reasons [--format=table|simple|json] [--search <query>] [--search-mode=token|substring|regex]

--search filters by ID, title, action, usage and examples, ignoring case and
accents. In token mode every word must match; field:text restricts a word to
one field (id, title, action, usage, examples, fields, templates).

The catalog is the built-in one unless catalog_path (or NOSHOW_CATALOG_PATH)
points to a TOML, YAML or XLSX file.`

// NewReasonsCmd creates the reasons command with explicit dependencies.
func NewReasonsCmd(client reasonsClient) *cobra.Command {
	if client == nil {
		panic("NewReasonsCmd: client dependency cannot be nil")
	}

	var outputFormat string
	var query string
	var mode string

	reasonsCmd := &cobra.Command{
		Use:   "reasons",
		Short: "List the catalog reasons",
		Long:  reasonsCommandLong,
		Args:  cobra.NoArgs,
		RunE: func(c *cobra.Command, args []string) error {
			if err := validateFormat(outputFormat); err != nil {
				return err
			}
			provider, err := search.New(mode)
			if err != nil {
				return err
			}
			if rp, ok := provider.(*search.RegexProvider); ok && query != "" {
				if err := rp.Validate(query); err != nil {
					return fmt.Errorf("invalid search pattern: %w", err)
				}
			}
			entries := search.Filter(provider, client.Reasons(), query)
			f := format.NewFormatter(format.FormatterType(outputFormat))
			return f.FormatReasons(entries, c.OutOrStdout())
		},
	}

	reasonsCmd.Flags().StringVar(&outputFormat, "format", string(format.FormatterTypeTable), "Output format: "+strings.Join(format.Types(), ", "))
	reasonsCmd.Flags().StringVarP(&query, "search", "s", "", "Only list reasons matching this query")
	reasonsCmd.Flags().StringVar(&mode, "search-mode", "token", "Search mode: "+strings.Join(search.Modes(), ", "))
	return reasonsCmd
}

func validateFormat(name string) error {
	if !slices.Contains(format.Types(), name) {
		return fmt.Errorf("invalid format %q: expected one of %s", name, strings.Join(format.Types(), ", "))
	}
	return nil
}

func init() {
	cmd.RootCmd.AddCommand(NewReasonsCmd(coreClient))
}
