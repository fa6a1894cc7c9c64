package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"smart-task-parser/config"
	"smart-task-parser/internal/extraction"
	"smart-task-parser/internal/extraction/modelbased"
	"smart-task-parser/internal/extraction/rulebased"
	extractionUC "smart-task-parser/internal/extraction/usecase"
	"smart-task-parser/internal/model"
	"smart-task-parser/pkg/datemath"
	"smart-task-parser/pkg/llmprovider"
	"smart-task-parser/pkg/log"
)

type parseOptions struct {
	rulesOnly bool
	verbose   bool
	timezone  string
}

// parsedTaskJSON is the printed form of a resolved task.
type parsedTaskJSON struct {
	TaskName string         `json:"taskName"`
	Assignee string         `json:"assignee,omitempty"`
	DueDate  string         `json:"dueDate,omitempty"`
	Priority model.Priority `json:"priority"`
	Source   string         `json:"source"`
}

func newParseCmd() *cobra.Command {
	opts := &parseOptions{}

	cmd := &cobra.Command{
		Use:   "parse <text...>",
		Short: "Parse a task description and print it as JSON",
		Long: `Parse a task description and print the structured task as JSON.

Examples:
  # Parse with the configured model provider, falling back to rules
  task-parser parse "Review proposal John by Friday 3pm P1"

  # Skip the model provider entirely
  task-parser parse --rules-only Team meeting tomorrow 2pm`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runParse(cmd.Context(), cmd.OutOrStdout(), cmd.ErrOrStderr(), strings.Join(args, " "), opts)
		},
	}

	cmd.Flags().BoolVar(&opts.rulesOnly, "rules-only", false, "use the rule-based parser only")
	cmd.Flags().BoolVarP(&opts.verbose, "verbose", "v", false, "log the model exchange")
	cmd.Flags().StringVar(&opts.timezone, "timezone", "", "IANA timezone for relative dates (default from config)")
	return cmd
}

func runParse(ctx context.Context, stdout, stderr io.Writer, text string, opts *parseOptions) error {
	if ctx == nil {
		ctx = context.Background()
	}
	if strings.TrimSpace(text) == "" {
		return fmt.Errorf("text must not be empty")
	}

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	level := "warn"
	if opts.verbose || cfg.Extraction.Verbose {
		level = "debug"
	}
	logger := log.Init(log.ZapConfig{Level: level, Encoding: log.EncodingConsole, Output: stderr})

	timezone := cfg.Extraction.Timezone
	if opts.timezone != "" {
		timezone = opts.timezone
	}
	dates, err := datemath.NewParser(timezone)
	if err != nil {
		return fmt.Errorf("timezone %q: %w", timezone, err)
	}

	var modelExtractor extraction.Extractor
	if !opts.rulesOnly {
		manager, err := llmprovider.NewManagerFromConfig(ctx, &cfg.LLM, logger)
		if err != nil {
			return err
		}
		modelExtractor = modelbased.New(logger, manager, dates, opts.verbose || cfg.Extraction.Verbose)
	}

	outcome := extractionUC.New(logger, modelExtractor, rulebased.New(dates)).Resolve(ctx, text)
	return printOutcome(stdout, stderr, outcome)
}

func printOutcome(stdout, stderr io.Writer, outcome extraction.Outcome) error {
	if notice := outcome.Notice(); notice != "" {
		fmt.Fprintf(stderr, "note: %s\n", notice)
	}

	enc := json.NewEncoder(stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(parsedTaskJSON{
		TaskName: outcome.Task.TaskName,
		Assignee: outcome.Task.Assignee,
		DueDate:  outcome.Task.FormatDueDate(),
		Priority: outcome.Task.Priority,
		Source:   string(outcome.Source),
	})
}
