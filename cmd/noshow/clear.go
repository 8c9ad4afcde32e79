package main

import (
	"context"
	"fmt"
	"os"

	"github.com/AlecAivazis/survey/v2"
	"github.com/spf13/cobra"

	"github.com/cristianoliveira/noshow/cmd"
	"github.com/cristianoliveira/noshow/internal/colors"
)

type clearClient interface {
	Reset(ctx context.Context) (int, error)
}

const clearCommandLong = `Start a new consultation by dropping every collected justification.

USAGE:
    noshow clear [--yes]

Export first if the records are still needed.`

// confirmClear asks before dropping the records. Replaced in tests.
var confirmClear = func() (bool, error) {
	if os.Getenv("CI") != "" {
		return true, nil
	}
	ok := false
	err := survey.AskOne(&survey.Confirm{
		Message: "Drop every collected justification?",
		Default: false,
	}, &ok)
	return ok, err
}

// NewClearCmd creates the clear command with explicit dependencies.
func NewClearCmd(client clearClient) *cobra.Command {
	if client == nil {
		panic("NewClearCmd: client dependency cannot be nil")
	}

	var yes bool

	clearCmd := &cobra.Command{
		Use:   "clear",
		Short: "Start a new consultation (drop all records)",
		Long:  clearCommandLong,
		Args:  cobra.NoArgs,
		RunE: func(c *cobra.Command, args []string) error {
			if !yes {
				ok, err := confirmClear()
				if err != nil {
					return err
				}
				if !ok {
					colors.Info("Operation cancelled")
					return nil
				}
			}
			n, err := client.Reset(commandContext(c))
			if err != nil {
				return err
			}
			colors.Success(fmt.Sprintf("new consultation: %d records dropped", n))
			return nil
		},
	}

	clearCmd.Flags().BoolVarP(&yes, "yes", "y", false, "Do not ask for confirmation")
	return clearCmd
}

func init() {
	cmd.RootCmd.AddCommand(NewClearCmd(coreClient))
}
