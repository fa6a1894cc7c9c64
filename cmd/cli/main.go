// Package main implements task-parser, a one-shot command line front end for
// the extraction pipeline.
package main

import (
	"os"

	"github.com/spf13/cobra"
)

var version = "dev"

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "task-parser",
	Short: "Turn free-text task descriptions into structured tasks",
	Long: `task-parser extracts a task name, assignee, due date and priority from
a free-text description. A configured model provider is tried first and the
rule-based parser is used when it is unavailable or fails.`,
	Version:       version,
	SilenceUsage:  true,
	SilenceErrors: false,
}

func init() {
	rootCmd.AddCommand(newParseCmd())
}
