package main

import (
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/cristianoliveira/noshow/cmd"
	"github.com/cristianoliveira/noshow/internal/token"
)

type normalizeClient interface {
	Normalize(raw string) token.Key
}

const normalizeCommandLong = `Show the canonical key a template token spelling maps to.

Brackets are optional. Composite date/hour tokens print as date_time#N.

USAGE:
    noshow normalize <token>...

EXAMPLES:
    noshow normalize "[NOME TÉCNICO]" "DATA 2" "DATA/HORA 2"`

// NewNormalizeCmd creates the normalize command with explicit dependencies.
func NewNormalizeCmd(client normalizeClient) *cobra.Command {
	if client == nil {
		panic("NewNormalizeCmd: client dependency cannot be nil")
	}

	return &cobra.Command{
		Use:   "normalize <token>...",
		Short: "Show the canonical key of token spellings",
		Long:  normalizeCommandLong,
		Args:  cobra.MinimumNArgs(1),
		RunE: func(c *cobra.Command, args []string) error {
			w := tabwriter.NewWriter(c.OutOrStdout(), 0, 4, 2, ' ', 0)
			for _, raw := range args {
				key := client.Normalize(raw)
				name := key.String()
				if key.Empty() {
					name = "(empty)"
				}
				fmt.Fprintf(w, "%s\t%s\n", strings.TrimSpace(raw), name)
			}
			return w.Flush()
		},
	}
}

func init() {
	cmd.RootCmd.AddCommand(NewNormalizeCmd(coreClient))
}
