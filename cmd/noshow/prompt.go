package main

import (
	"context"
	"fmt"
	"strings"

	"github.com/AlecAivazis/survey/v2"
	"github.com/spf13/cobra"

	"github.com/cristianoliveira/noshow/cmd"
	"github.com/cristianoliveira/noshow/internal/catalog"
	"github.com/cristianoliveira/noshow/internal/colors"
	"github.com/cristianoliveira/noshow/internal/core"
	"github.com/cristianoliveira/noshow/internal/domain"
	"github.com/cristianoliveira/noshow/internal/form"
	"github.com/cristianoliveira/noshow/internal/mask"
)

type promptClient interface {
	Reasons() []catalog.ReasonEntry
	BuildValues(entry catalog.ReasonEntry, inputs []string) mask.ValueMap
	Preview(idOrTitle, variantID string, values mask.ValueMap) (core.Preview, error)
	Submit(ctx context.Context, idOrTitle, variantID string, values mask.ValueMap, override string) (domain.Record, error)
}

// prompter asks the operator one question at a time.
type prompter interface {
	Select(message string, options []string, help string) (int, error)
	Input(message, defaultValue, help string, required bool) (string, error)
	Confirm(message string, defaultValue bool) (bool, error)
}

// surveyPrompter asks on the terminal.
type surveyPrompter struct{}

func (surveyPrompter) Select(message string, options []string, help string) (int, error) {
	idx := 0
	err := survey.AskOne(&survey.Select{Message: message, Options: options, Help: help, PageSize: 15}, &idx)
	return idx, err
}

func (surveyPrompter) Input(message, defaultValue, help string, required bool) (string, error) {
	var answer string
	var opts []survey.AskOpt
	if required {
		opts = append(opts, survey.WithValidator(survey.Required))
	}
	err := survey.AskOne(&survey.Input{Message: message, Default: defaultValue, Help: help}, &answer, opts...)
	return answer, err
}

func (surveyPrompter) Confirm(message string, defaultValue bool) (bool, error) {
	ok := defaultValue
	err := survey.AskOne(&survey.Confirm{Message: message, Default: defaultValue}, &ok)
	return ok, err
}

const promptCommandLong = `Build a justification through a sequence of terminal prompts.

Choose the reason and the template variant, answer one question per field,
review the rendered text, optionally rewrite it, then confirm to add it.

USAGE:
    noshow prompt`

// NewPromptCmd creates the prompt command with explicit dependencies.
func NewPromptCmd(client promptClient) *cobra.Command {
	return newPromptCmd(client, surveyPrompter{})
}

func newPromptCmd(client promptClient, ask prompter) *cobra.Command {
	if client == nil {
		panic("NewPromptCmd: client dependency cannot be nil")
	}

	return &cobra.Command{
		Use:   "prompt",
		Short: "Build a justification through terminal prompts",
		Long:  promptCommandLong,
		Args:  cobra.NoArgs,
		RunE: func(c *cobra.Command, args []string) error {
			return runPrompt(commandContext(c), c, client, ask)
		},
	}
}

func runPrompt(ctx context.Context, c *cobra.Command, client promptClient, ask prompter) error {
	reasons := client.Reasons()
	if len(reasons) == 0 {
		return fmt.Errorf("the catalog has no reasons")
	}
	titles := make([]string, len(reasons))
	for i, e := range reasons {
		titles[i] = e.Title
	}
	i, err := ask.Select("Reason:", titles, "")
	if err != nil {
		return err
	}
	entry := reasons[i]

	variant := entry.Variants[0]
	if len(entry.Variants) > 1 {
		labels := make([]string, len(entry.Variants))
		for j, v := range entry.Variants {
			labels[j] = variantLabel(v)
		}
		j, err := ask.Select("Template:", labels, entry.Usage)
		if err != nil {
			return err
		}
		variant = entry.Variants[j]
	}

	labels := entry.EffectiveLabels()
	inputs := make([]string, len(entry.Fields))
	for j := range entry.Fields {
		required := form.Required(entry, variant, j)
		answer, err := ask.Input(labels[j]+":", "", entry.Action, required)
		if err != nil {
			return err
		}
		inputs[j] = answer
	}

	values := client.BuildValues(entry, inputs)
	p, err := client.Preview(entry.ID, variant.ID, values)
	if err != nil {
		return err
	}
	fmt.Fprintf(c.OutOrStdout(), "\n%s\n\n", p.Text)
	for _, w := range p.Warnings {
		colors.Warning(w.String())
	}

	text, err := ask.Input("Final text (Enter keeps it):", p.Text, "Rewrite the text if it needs a manual adjustment.", false)
	if err != nil {
		return err
	}
	override := ""
	if t := strings.TrimSpace(text); t != "" && t != p.Text {
		override = t
	}

	ok, err := ask.Confirm("Add to the consultation?", true)
	if err != nil {
		return err
	}
	if !ok {
		colors.Info("Nothing added")
		return nil
	}

	record, err := client.Submit(ctx, entry.ID, variant.ID, values, override)
	if err != nil {
		return err
	}
	colors.Success(fmt.Sprintf("record #%d added (%s)", record.ID, record.ReasonTitle))
	return nil
}

func variantLabel(v catalog.TemplateVariant) string {
	label := v.Label
	if label == "" {
		label = v.ID
	}
	if v.Description != "" {
		label += " - " + v.Description
	}
	return label
}

func init() {
	cmd.RootCmd.AddCommand(NewPromptCmd(coreClient))
}
