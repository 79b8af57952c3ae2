// Package main implements the tt CLI tool.
package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/amonks/tt/task"
	"github.com/spf13/cobra"
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "tt: %v\n", err)
		os.Exit(exitCode(err))
	}
}

// exitCode maps an error to the process exit status. Errors that carry their
// own exit code win over the task error kinds.
func exitCode(err error) int {
	var exitErr interface{ ExitCode() int }
	if errors.As(err, &exitErr) {
		return exitErr.ExitCode()
	}
	return task.KindOf(err).ExitCode()
}

var rootCmd = &cobra.Command{
	Use:           "tt",
	Short:         "tt - a personal task tracker with checklists and deadlines",
	SilenceErrors: true,
	SilenceUsage:  true,
}

var (
	rootStorePath string
	rootLogLevel  string
)

func init() {
	rootCmd.PersistentFlags().StringVar(&rootStorePath, "store", "", "Path to the task file (default ~/.local/state/tt/tasks.json)")
	rootCmd.PersistentFlags().StringVar(&rootLogLevel, "log-level", "", "Log level (debug, info, warn, error)")
}
