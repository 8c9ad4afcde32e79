package main

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/cristianoliveira/noshow/cmd"
	"github.com/cristianoliveira/noshow/internal/colors"
	"github.com/cristianoliveira/noshow/internal/domain"
	"github.com/cristianoliveira/noshow/internal/format"
)

type recordsClient interface {
	Records(ctx context.Context) ([]domain.Record, error)
	DeleteRecord(ctx context.Context, id int64) error
	Duplicates(ctx context.Context) ([][]domain.Record, error)
}

const recordsCommandLong = `List the justifications collected in the current consultation.

USAGE:
    noshow records [--format=table|simple|json] [--sort <field>] [--order asc|desc]
    noshow records --delete <id>
    noshow records --duplicates

--duplicates lists only the records that repeat another one, one group per
block. dedup_criteria (text, reason_text, exact) and dedup_window (e.g. 10m)
in the configuration decide what counts as a repeat.`

// NewRecordsCmd creates the records command with explicit dependencies.
func NewRecordsCmd(client recordsClient) *cobra.Command {
	if client == nil {
		panic("NewRecordsCmd: client dependency cannot be nil")
	}

	var outputFormat string
	var deleteID int64
	var duplicates bool
	var sortField string
	var sortOrder string

	recordsCmd := &cobra.Command{
		Use:   "records",
		Short: "List the collected justifications",
		Long:  recordsCommandLong,
		Args:  cobra.NoArgs,
		RunE: func(c *cobra.Command, args []string) error {
			ctx := commandContext(c)
			if c.Flags().Changed("delete") {
				if err := client.DeleteRecord(ctx, deleteID); err != nil {
					return err
				}
				colors.Success(fmt.Sprintf("record #%d deleted", deleteID))
				return nil
			}

			if err := validateFormat(outputFormat); err != nil {
				return err
			}
			if duplicates {
				return writeDuplicates(c, client, outputFormat)
			}
			field, err := domain.ParseSortByField(sortField)
			if err != nil {
				return err
			}
			order, err := domain.ParseSortOrder(sortOrder)
			if err != nil {
				return err
			}
			records, err := client.Records(ctx)
			if err != nil {
				return err
			}
			records = domain.SortRecords(records, domain.SortOptions{Field: field, Order: order})
			if len(records) == 0 && outputFormat != string(format.FormatterTypeJSON) {
				colors.Info("No records yet")
				return nil
			}
			return format.NewFormatter(format.FormatterType(outputFormat)).FormatRecords(records, c.OutOrStdout())
		},
	}

	recordsCmd.Flags().StringVar(&outputFormat, "format", string(format.FormatterTypeTable), "Output format: "+strings.Join(format.Types(), ", "))
	recordsCmd.Flags().Int64Var(&deleteID, "delete", 0, "Delete the record with this ID")
	recordsCmd.Flags().StringVar(&sortField, "sort", domain.SortByIDField.String(), "Sort by: "+strings.Join(domain.SortFields(), ", "))
	recordsCmd.Flags().StringVar(&sortOrder, "order", domain.SortOrderAsc.String(), "Sort order: asc or desc")
	recordsCmd.Flags().BoolVar(&duplicates, "duplicates", false, "List only records that repeat another one")
	return recordsCmd
}

func writeDuplicates(c *cobra.Command, client recordsClient, outputFormat string) error {
	groups, err := client.Duplicates(commandContext(c))
	if err != nil {
		return err
	}
	if len(groups) == 0 && outputFormat != string(format.FormatterTypeJSON) {
		colors.Info("No repeated justifications")
		return nil
	}
	if outputFormat == string(format.FormatterTypeJSON) {
		var flat []domain.Record
		for _, g := range groups {
			flat = append(flat, g...)
		}
		return format.NewFormatter(format.FormatterTypeJSON).FormatRecords(flat, c.OutOrStdout())
	}
	f := format.NewFormatter(format.FormatterType(outputFormat))
	for i, g := range groups {
		if i > 0 {
			fmt.Fprintln(c.OutOrStdout())
		}
		if err := f.FormatRecords(g, c.OutOrStdout()); err != nil {
			return err
		}
	}
	return nil
}

func init() {
	cmd.RootCmd.AddCommand(NewRecordsCmd(coreClient))
}
