// Package cmd holds the root command shared by every noshow subcommand.
package cmd

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/cristianoliveira/noshow/internal/version"
)

const description = "Build standardized no-show and cancellation justifications."

// RootCmd represents the base command when called without any subcommands.
var RootCmd = &cobra.Command{
	Use:           "noshow",
	Short:         description,
	Long:          description,
	SilenceUsage:  true,
	SilenceErrors: true,
}

// outputWriter overrides where help is printed; nil means stdout.
var outputWriter io.Writer

// helpCmd represents the help command
var helpCmd = &cobra.Command{
	Use:   "help",
	Short: "Show this help message",
	Long:  `Show this help message.`,
	Run: func(cmd *cobra.Command, args []string) {
		PrintHelp(cmd.Root())
	},
}

// Execute runs the root command. Errors are returned to main, which prints them.
func Execute() error {
	return RootCmd.Execute()
}

func init() {
	RootCmd.Version = version.String()

	// Hide the completion command
	RootCmd.CompletionOptions.HiddenDefaultCmd = true

	RootCmd.SetHelpCommand(helpCmd)
	RootCmd.SetHelpFunc(func(cmd *cobra.Command, args []string) {
		if cmd != cmd.Root() {
			// Subcommands keep cobra's help with their flags.
			fmt.Fprintln(cmd.OutOrStdout(), cmd.Long)
			fmt.Fprintln(cmd.OutOrStdout())
			fmt.Fprint(cmd.OutOrStdout(), cmd.UsageString())
			return
		}
		PrintHelp(cmd)
	})
}

// PrintHelp prints the top-level help with commands in workflow order.
func PrintHelp(cmd *cobra.Command) {
	commandOrder := []string{
		"reasons",
		"show",
		"render",
		"add",
		"prompt",
		"tui",
		"records",
		"export",
		"clear",
		"normalize",
		"lint",
		"help",
		"version",
	}

	var cmdLines []string
	for _, name := range commandOrder {
		var found *cobra.Command
		for _, c := range cmd.Commands() {
			if c.Name() == name {
				found = c
				break
			}
		}
		if found == nil {
			continue
		}
		cmdLines = append(cmdLines, fmt.Sprintf("    %-22s %s", found.Use, found.Short))
	}

	helpText := fmt.Sprintf(`noshow %s

%s

USAGE:
    noshow [COMMAND] [OPTIONS]

COMMANDS:
%s

OPTIONS:
    -h, --help      Show help message
    -v, --version   Show version

ENVIRONMENT:
    NOSHOW_CONFIG_PATH, NOSHOW_CATALOG_PATH, NOSHOW_DB_PATH, NOSHOW_DEBUG, NOSHOW_QUIET
`, cmd.Version, description, strings.Join(cmdLines, "\n"))

	w := outputWriter
	if w == nil {
		w = os.Stdout
	}
	fmt.Fprint(w, helpText)
}
