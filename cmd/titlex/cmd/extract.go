package cmd

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/dbsmedya/titlex/internal/progress"
	"github.com/dbsmedya/titlex/internal/titles"
)

var extractCmd = &cobra.Command{
	Use:   "extract",
	Short: "Extract titles and write the JSON output",
	Long: `Extract discovers every Title.xml below the input directory, reads
name/str (required) and rareType (optional) from each, and overwrites the
output file with a JSON array of {"name", "rareType"} objects in path order.

This is what titlex does when run without a subcommand.

Example:
  titlex extract --input ./title_raw --output ./title.json`,
	Args: cobra.NoArgs,
	RunE: runExtract,
}

func init() {
	rootCmd.AddCommand(extractCmd)
}

func runExtract(cmd *cobra.Command, args []string) error {
	cfg, log, err := setup(cmd)
	if err != nil {
		return err
	}
	defer func() { _ = log.Sync() }()

	reporter := progress.NewBarReporter(cmd.ErrOrStderr(), !cfg.Output.Progress)
	orch, err := titles.NewOrchestrator(cfg, log, titles.WithReporter(reporter))
	if err != nil {
		return fmt.Errorf("failed to create orchestrator: %w", err)
	}

	result, err := orch.Run()
	if err != nil {
		// Reported once, by cobra.
		log.Debugw("Extraction failed", "error", err)
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "%s Extracted %d title(s)\n", okStyle.Sprint("✔"), result.Entries)
	fmt.Fprintf(out, "  Input:    %s\n", result.InputDir)
	fmt.Fprintf(out, "  Output:   %s\n", result.OutputFile)
	fmt.Fprintf(out, "  Duration: %s\n", dimStyle.Sprint(result.Duration.Round(time.Microsecond)))
	return nil
}
