package main

import (
	"os"
	"slices"

	"github.com/cristianoliveira/noshow/cmd"
	"github.com/cristianoliveira/noshow/internal/colors"
	"github.com/cristianoliveira/noshow/internal/config"
	"github.com/cristianoliveira/noshow/internal/errors"
	"github.com/cristianoliveira/noshow/internal/logging"
)

// reporter prints command failures with a hint on what to do next.
var reporter errors.ErrorHandler = errors.NewConsoleHandler()

func main() {
	os.Exit(run(os.Args[1:], cmd.Execute))
}

// run configures output and logging, executes the command line and returns the
// process exit code.
func run(args []string, execute func() error) int {
	config.Load()
	colors.SetDebug(colors.DebugEnabled() || config.GetBool("debug", false))
	colors.SetQuiet(config.GetBool("quiet", false))

	if err := logging.InitGlobal(); err != nil {
		colors.Warning("file logging disabled: " + err.Error())
	}
	defer func() {
		if err := logging.ShutdownGlobal(); err != nil {
			colors.Debug("closing log file: " + err.Error())
		}
		if err := coreClient.Close(); err != nil {
			colors.Debug("closing record store: " + err.Error())
		}
	}()

	logging.Info("command started", "command", commandName(args))
	if startupErr != nil && needsCore(args) {
		logging.Error("startup failed", "error", startupErr)
		errors.Report(reporter, startupErr)
		return 1
	}

	cmd.RootCmd.SetArgs(args)
	if err := execute(); err != nil {
		logging.Error("command failed", "error", err)
		errors.Report(reporter, err)
		return 1
	}
	logging.Info("command completed")
	return 0
}

// needsCore reports whether args run a command that needs the configured
// catalog and store. Help and version work even when configuration is broken.
func needsCore(args []string) bool {
	if len(args) == 0 {
		return false
	}
	if slices.ContainsFunc(args, func(a string) bool {
		return a == "-h" || a == "--help" || a == "-v" || a == "--version"
	}) {
		return false
	}
	switch args[0] {
	case "help", "version":
		return false
	}
	return true
}

// commandName returns the subcommand being run. Field values are never logged.
func commandName(args []string) string {
	if len(args) == 0 {
		return "help"
	}
	return args[0]
}
