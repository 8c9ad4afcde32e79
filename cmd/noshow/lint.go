package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/cristianoliveira/noshow/cmd"
	"github.com/cristianoliveira/noshow/internal/catalog"
	"github.com/cristianoliveira/noshow/internal/colors"
)

type lintClient interface {
	Lint() []catalog.Issue
}

const lintCommandLong = `Check the catalog templates against their fields.

Reports tokens no field can fill, fields no template reads and variant
requirements naming unknown fields. Issues are warnings unless --strict is set.

USAGE:
    noshow lint [--strict]`

// NewLintCmd creates the lint command with explicit dependencies.
func NewLintCmd(client lintClient) *cobra.Command {
	if client == nil {
		panic("NewLintCmd: client dependency cannot be nil")
	}

	var strict bool

	lintCmd := &cobra.Command{
		Use:   "lint",
		Short: "Check catalog templates against their fields",
		Long:  lintCommandLong,
		Args:  cobra.NoArgs,
		RunE: func(c *cobra.Command, args []string) error {
			issues := client.Lint()
			for _, issue := range issues {
				fmt.Fprintln(c.OutOrStdout(), issue.String())
			}
			if len(issues) == 0 {
				colors.Success("catalog is clean")
				return nil
			}
			if strict {
				return fmt.Errorf("catalog has %d issues", len(issues))
			}
			colors.Warning(fmt.Sprintf("catalog has %d issues", len(issues)))
			return nil
		},
	}

	lintCmd.Flags().BoolVar(&strict, "strict", false, "Fail when any issue is found")
	return lintCmd
}

func init() {
	cmd.RootCmd.AddCommand(NewLintCmd(coreClient))
}
