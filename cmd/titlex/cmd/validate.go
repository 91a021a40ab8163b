package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/dbsmedya/titlex/internal/titles"
)

var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Validate configuration and every input document",
	Long: `Validate checks the configuration and parses every input document
without writing the output file.

Checks performed:
  - Configuration syntax and required fields
  - Input directory existence
  - Every Title.xml is well-formed and has name/str

Example:
  titlex validate --config titlex.yaml`,
	Args: cobra.NoArgs,
	RunE: runValidate,
}

func init() {
	rootCmd.AddCommand(validateCmd)
}

func runValidate(cmd *cobra.Command, args []string) error {
	cfg, log, err := setup(cmd)
	if err != nil {
		return err
	}
	defer func() { _ = log.Sync() }()

	log.Info("Starting validation checks...")

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "\n=== Configuration Validation ===\n")
	fmt.Fprintf(out, "Config file: %s\n", GetConfigFile())
	fmt.Fprintf(out, "Input:       %s\n", cfg.Paths.InputDir)
	fmt.Fprintf(out, "Output:      %s\n", cfg.Paths.OutputFile)
	fmt.Fprintf(out, "Target file: %s\n\n", cfg.Paths.TargetFile)

	orch, err := titles.NewOrchestrator(cfg, log)
	if err != nil {
		return fmt.Errorf("failed to create orchestrator: %w", err)
	}

	_, result, err := orch.Collect()
	if err != nil {
		fmt.Fprintf(out, "❌ %v\n", err)
		return fmt.Errorf("validation failed: %w", err)
	}

	fmt.Fprintln(out, "=== Validation Complete ===")
	fmt.Fprintf(out, "%s %d document(s) parsed successfully\n", okStyle.Sprint("✅"), result.Entries)
	return nil
}
