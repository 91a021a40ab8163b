package cmd

import (
	"fmt"
	"path/filepath"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/dbsmedya/titlex/internal/titles"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List extracted titles without writing output",
	Long: `List runs discovery and extraction exactly like extract but prints the
titles as a table instead of writing the output file, followed by a
count of titles per rareType.

Example:
  titlex list --input ./title_raw`,
	Args: cobra.NoArgs,
	RunE: runList,
}

func init() {
	rootCmd.AddCommand(listCmd)
}

func runList(cmd *cobra.Command, args []string) error {
	cfg, log, err := setup(cmd)
	if err != nil {
		return err
	}
	defer func() { _ = log.Sync() }()

	orch, err := titles.NewOrchestrator(cfg, log)
	if err != nil {
		return fmt.Errorf("failed to create orchestrator: %w", err)
	}

	entries, result, err := orch.Collect()
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if len(entries) == 0 {
		fmt.Fprintf(out, "No %s files found in %s\n", cfg.Paths.TargetFile, cfg.Paths.InputDir)
		return nil
	}

	printHeader(out, "Titles in %s", cfg.Paths.InputDir)
	fmt.Fprintln(out)

	rows := make([][]string, 0, len(entries))
	for i, entry := range entries {
		rel, err := filepath.Rel(cfg.Paths.InputDir, result.Files[i])
		if err != nil {
			rel = result.Files[i]
		}
		rows = append(rows, []string{strconv.Itoa(i + 1), filepath.ToSlash(rel), entry.Name, entry.RareType})
	}
	printTable(out, []string{"#", "PATH", "NAME", "RARE TYPE"}, rows)

	fmt.Fprintln(out)
	printSection(out, "Rarity")
	tally := make([][]string, 0, result.Rarities.Len())
	for el := result.Rarities.Front(); el != nil; el = el.Next() {
		label := el.Key
		if label == "" {
			label = "(none)"
		}
		tally = append(tally, []string{label, strconv.Itoa(el.Value)})
	}
	printTable(out, []string{"RARE TYPE", "COUNT"}, tally)

	fmt.Fprintf(out, "\nTotal: %d title(s)\n", result.Entries)
	return nil
}
