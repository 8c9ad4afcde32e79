package main

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/cristianoliveira/noshow/internal/catalog"
	"github.com/cristianoliveira/noshow/internal/mask"
)

// valuesClient turns command-line inputs into a value map for one reason.
type valuesClient interface {
	Reason(idOrTitle string) (catalog.ReasonEntry, error)
	BuildValues(entry catalog.ReasonEntry, inputs []string) mask.ValueMap
	ParseValues(entry catalog.ReasonEntry, pairs []string) (mask.ValueMap, error)
}

// collectValues pairs positional inputs with the reason's fields in order, then
// applies --set assignments on top. A non-empty assignment always wins.
func collectValues(client valuesClient, entry catalog.ReasonEntry, positional, sets []string) (mask.ValueMap, error) {
	values := client.BuildValues(entry, positional)
	if len(sets) == 0 {
		return values, nil
	}
	named, err := client.ParseValues(entry, sets)
	if err != nil {
		return nil, err
	}
	for k, v := range named {
		if _, known := values[k]; !known || v != "" {
			values[k] = v
		}
	}
	return values, nil
}

// registerValueFlags adds the flags shared by render and add.
func registerValueFlags(c *cobra.Command, variant *string, sets *[]string) {
	c.Flags().StringVar(variant, "variant", "", "Template variant ID (default: the reason's first variant)")
	c.Flags().StringArrayVar(sets, "set", nil, "Field value as key=value; key may be a field key, label or token spelling (repeatable)")
}

// commandContext returns the command's context, or a background context when
// the command runs outside Execute.
func commandContext(c *cobra.Command) context.Context {
	if ctx := c.Context(); ctx != nil {
		return ctx
	}
	return context.Background()
}

func requireReasonArg(name string) cobra.PositionalArgs {
	return func(c *cobra.Command, args []string) error {
		if len(args) == 0 || strings.TrimSpace(args[0]) == "" {
			return fmt.Errorf("%s requires a reason ID or title", name)
		}
		return nil
	}
}
