package main

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/cristianoliveira/noshow/cmd"
	"github.com/cristianoliveira/noshow/internal/colors"
	"github.com/cristianoliveira/noshow/internal/domain"
	"github.com/cristianoliveira/noshow/internal/mask"
)

type addClient interface {
	valuesClient
	Submit(ctx context.Context, idOrTitle, variantID string, values mask.ValueMap, override string) (domain.Record, error)
	DuplicatesOf(ctx context.Context, record domain.Record) ([]domain.Record, error)
}

const addCommandLong = `Render a justification and add it to the current consultation.

Fields are filled like in 'noshow render'. Unlike render, missing required
fields block the command and nothing is stored. --text replaces the rendered
text with a hand-edited one. A warning is shown when the consultation already
holds the same justification (see dedup_criteria and dedup_window).

USAGE:
    noshow add <reason> [value...] [OPTIONS]

OPTIONS:
    --variant <id>       Template variant (default: first)
    --set key=value      Field value (repeatable)
    --text <text>        Store this text instead of the rendered one

EXAMPLES:
    noshow add no_show_tecnico "João" 16/10 08h00 "pneu furado"
    noshow add pedido_cliente --set nome=Maria --text "Cliente pediu reagendamento."`

// NewAddCmd creates the add command with explicit dependencies.
func NewAddCmd(client addClient) *cobra.Command {
	if client == nil {
		panic("NewAddCmd: client dependency cannot be nil")
	}

	var variant string
	var sets []string
	var text string

	addCmd := &cobra.Command{
		Use:   "add <reason> [value...]",
		Short: "Add a justification to the consultation",
		Long:  addCommandLong,
		Args:  requireReasonArg("add"),
		RunE: func(c *cobra.Command, args []string) error {
			entry, err := client.Reason(args[0])
			if err != nil {
				return err
			}
			values, err := collectValues(client, entry, args[1:], sets)
			if err != nil {
				return err
			}
			ctx := commandContext(c)
			record, err := client.Submit(ctx, entry.ID, variant, values, text)
			if err != nil {
				return err
			}
			fmt.Fprintln(c.OutOrStdout(), record.Text)
			colors.Success(fmt.Sprintf("record #%d added (%s)", record.ID, record.ReasonTitle))
			warnDuplicates(ctx, client, record)
			return nil
		},
	}

	registerValueFlags(addCmd, &variant, &sets)
	addCmd.Flags().StringVar(&text, "text", "", "Store this text instead of the rendered one")
	return addCmd
}

// warnDuplicates never fails the command; the record is already stored.
func warnDuplicates(ctx context.Context, client addClient, record domain.Record) {
	others, err := client.DuplicatesOf(ctx, record)
	if err != nil {
		colors.Debug("duplicate check: " + err.Error())
		return
	}
	if len(others) == 0 {
		return
	}
	ids := make([]string, len(others))
	for i, r := range others {
		ids[i] = fmt.Sprintf("#%d", r.ID)
	}
	colors.Warning(fmt.Sprintf("record #%d repeats %s", record.ID, strings.Join(ids, ", ")))
}

func init() {
	cmd.RootCmd.AddCommand(NewAddCmd(coreClient))
}
