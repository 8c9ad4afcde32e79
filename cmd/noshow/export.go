package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/cristianoliveira/noshow/cmd"
	"github.com/cristianoliveira/noshow/internal/colors"
	"github.com/cristianoliveira/noshow/internal/config"
	"github.com/cristianoliveira/noshow/internal/export"
)

type exportClient interface {
	Export(ctx context.Context, format export.Format, dir string) (string, export.Format, error)
}

const exportCommandLong = `Export the collected justifications to a spreadsheet.

The file is named no_show_YYYYMMDD_HHMMSS.xlsx (or .csv) and has one column per
fixed attribute followed by one column per field label. When the XLSX file
cannot be written a CSV file is written instead.

USAGE:
    noshow export [--format=xlsx|csv] [--dir <path>]

Defaults come from export_format and export_dir in the configuration.`

// NewExportCmd creates the export command with explicit dependencies.
func NewExportCmd(client exportClient) *cobra.Command {
	if client == nil {
		panic("NewExportCmd: client dependency cannot be nil")
	}

	var formatName string
	var dir string

	exportCmd := &cobra.Command{
		Use:   "export",
		Short: "Export the collected justifications (XLSX or CSV)",
		Long:  exportCommandLong,
		Args:  cobra.NoArgs,
		RunE: func(c *cobra.Command, args []string) error {
			if formatName == "" {
				formatName = config.Get("export_format", string(export.FormatXLSX))
			}
			f, err := export.ParseFormat(formatName)
			if err != nil {
				return err
			}
			if dir == "" {
				dir = config.Get("export_dir", ".")
			}

			path, used, err := client.Export(commandContext(c), f, dir)
			if err != nil {
				return err
			}
			fmt.Fprintln(c.OutOrStdout(), path)
			colors.Success(fmt.Sprintf("exported as %s", used))
			return nil
		},
	}

	exportCmd.Flags().StringVar(&formatName, "format", "", "Output format: xlsx or csv")
	exportCmd.Flags().StringVar(&dir, "dir", "", "Directory to write the file to")
	return exportCmd
}

func init() {
	cmd.RootCmd.AddCommand(NewExportCmd(coreClient))
}
