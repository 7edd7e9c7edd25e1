package cmd

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ziadkadry99/mermaidviz/internal/config"
	"github.com/ziadkadry99/mermaidviz/internal/lint"
	"github.com/ziadkadry99/mermaidviz/internal/progress"
)

var checkCmd = &cobra.Command{
	Use:   "check [dir]",
	Short: "Check Mermaid diagrams for styling the renderer ignores",
	Long: `Walks dir (default: current directory) and analyzes every .mmd/.mermaid
file and every mermaid code block in Markdown files. With --strict the
command fails when any diagram attempts unsupported styling.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runCheck,
}

func init() {
	checkCmd.Flags().Bool("strict", false, "exit non-zero on unsupported styling")
	checkCmd.Flags().Bool("json", false, "print the report as JSON")
	checkCmd.Flags().StringSlice("include", nil, "glob patterns to include (overrides config)")
	checkCmd.Flags().StringSlice("exclude", nil, "glob patterns to exclude (overrides config)")
	rootCmd.AddCommand(checkCmd)
}

func runCheck(cmd *cobra.Command, args []string) error {
	// check runs without a provider, so a missing or partial config is fine.
	cfg, err := config.Load(cfgFile)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	opts := lint.Options{
		Root:    ".",
		Include: cfg.Check.Include,
		Exclude: cfg.Check.Exclude,
	}
	if dir := argOrEmpty(args); dir != "" {
		opts.Root = dir
	}
	if cmd.Flags().Changed("include") {
		opts.Include, _ = cmd.Flags().GetStringSlice("include")
	}
	if cmd.Flags().Changed("exclude") {
		opts.Exclude, _ = cmd.Flags().GetStringSlice("exclude")
	}

	strict := cfg.Check.Strict
	if cmd.Flags().Changed("strict") {
		strict, _ = cmd.Flags().GetBool("strict")
	}
	asJSON, _ := cmd.Flags().GetBool("json")

	var reporter progress.Reporter = progress.Discard{}
	if !asJSON {
		reporter = progress.NewReporter("Checking diagrams")
	}

	report, err := lint.Check(opts, reporter)
	if err != nil {
		return fmt.Errorf("check failed: %w", err)
	}

	out := cmd.OutOrStdout()
	if asJSON {
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		if err := enc.Encode(report); err != nil {
			return fmt.Errorf("encoding report: %w", err)
		}
	} else {
		lint.WriteText(out, report, verbose)
	}

	if strict && report.Unsupported() > 0 {
		exitOnError(fmt.Errorf("%d diagrams attempt unsupported styling", report.Unsupported()))
	}
	return nil
}
