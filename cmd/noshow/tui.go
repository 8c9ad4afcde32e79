package main

import (
	"github.com/spf13/cobra"

	"github.com/cristianoliveira/noshow/cmd"
	"github.com/cristianoliveira/noshow/internal/tui/app"
)

const tuiCommandLong = `Open the interactive justification builder.

Pick a reason and a template variant, fill the fields while the text renders
live next to the reason's guidance, edit the final text if needed and add it to
the consultation. Export and reset are available from every screen.`

// NewTUICmd creates the tui command with explicit dependencies.
func NewTUICmd(client app.Client) *cobra.Command {
	if client == nil {
		panic("NewTUICmd: client dependency cannot be nil")
	}

	return &cobra.Command{
		Use:   "tui",
		Short: "Open the interactive builder",
		Long:  tuiCommandLong,
		Args:  cobra.NoArgs,
		RunE: func(c *cobra.Command, args []string) error {
			opts, err := client.LoadOptions()
			if err != nil {
				return err
			}
			model, err := client.CreateModel(opts)
			if err != nil {
				return err
			}
			return client.RunProgram(model)
		},
	}
}

func init() {
	cmd.RootCmd.AddCommand(NewTUICmd(tuiClient))
}
