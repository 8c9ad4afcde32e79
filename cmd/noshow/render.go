package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/cristianoliveira/noshow/cmd"
	"github.com/cristianoliveira/noshow/internal/colors"
	"github.com/cristianoliveira/noshow/internal/core"
	"github.com/cristianoliveira/noshow/internal/mask"
)

type renderClient interface {
	valuesClient
	Preview(idOrTitle, variantID string, values mask.ValueMap) (core.Preview, error)
	Explain(idOrTitle, variantID string, values mask.ValueMap) ([]core.TokenTrace, error)
}

const renderCommandLong = `Render a justification without storing it.

Positional values fill the reason's fields in order (see 'noshow show <reason>');
--set assigns a field by key, label or token spelling and wins over positional values.
Missing required fields are reported as warnings; the text is rendered anyway.

USAGE:
    noshow render <reason> [value...] [OPTIONS]

OPTIONS:
    --variant <id>       Template variant (default: first)
    --set key=value      Field value (repeatable)
    --explain            Show how each [TOKEN] was resolved
    --strict             Fail when required fields are missing

EXAMPLES:
    noshow render no_show_tecnico "João" 16/10 08h00 "pneu furado"
    noshow render cronograma_substituicao_placa --variant com_os --set "Número OS=123"`

// NewRenderCmd creates the render command with explicit dependencies.
func NewRenderCmd(client renderClient) *cobra.Command {
	if client == nil {
		panic("NewRenderCmd: client dependency cannot be nil")
	}

	var variant string
	var sets []string
	var explain bool
	var strict bool

	renderCmd := &cobra.Command{
		Use:   "render <reason> [value...]",
		Short: "Render a justification without storing it",
		Long:  renderCommandLong,
		Args:  requireReasonArg("render"),
		RunE: func(c *cobra.Command, args []string) error {
			entry, err := client.Reason(args[0])
			if err != nil {
				return err
			}
			values, err := collectValues(client, entry, args[1:], sets)
			if err != nil {
				return err
			}
			p, err := client.Preview(entry.ID, variant, values)
			if err != nil {
				return err
			}

			fmt.Fprintln(c.OutOrStdout(), p.Text)
			if explain {
				traces, err := client.Explain(entry.ID, variant, values)
				if err != nil {
					return err
				}
				writeTraces(c.OutOrStdout(), traces)
			}

			for _, w := range p.Warnings {
				colors.Warning(w.String())
			}
			if strict && !p.Ready() {
				return fmt.Errorf("%d required fields missing", len(p.Warnings))
			}
			return nil
		},
	}

	registerValueFlags(renderCmd, &variant, &sets)
	renderCmd.Flags().BoolVar(&explain, "explain", false, "Show how each token was resolved")
	renderCmd.Flags().BoolVar(&strict, "strict", false, "Fail when required fields are missing")
	return renderCmd
}

func writeTraces(w io.Writer, traces []core.TokenTrace) {
	fmt.Fprintln(w)
	for _, tr := range traces {
		res := tr.Resolution
		switch res.Kind {
		case mask.Unresolved:
			fmt.Fprintf(w, "%s  unresolved\n", res.Raw)
		default:
			fmt.Fprintf(w, "%s  %s via %s = %q\n", res.Raw, res.Kind, res.Key, res.Value)
		}
		tried := make([]string, len(tr.Steps))
		for i, s := range tr.Steps {
			mark := "-"
			if s.Found {
				mark = "+"
			}
			tried[i] = mark + s.Key
		}
		if len(tried) > 0 {
			fmt.Fprintf(w, "    tried: %s\n", strings.Join(tried, " "))
		}
	}
}

func init() {
	cmd.RootCmd.AddCommand(NewRenderCmd(coreClient))
}
