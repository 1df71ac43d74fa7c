package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/pdiddy/dataset-bridge/internal/archive"
	"github.com/pdiddy/dataset-bridge/internal/harvest"
)

var runsCmd = &cobra.Command{
	Use:   "runs",
	Short: "List archived harvest runs or re-export one",
	Long: `Runs reads the SQLite harvest archive. Without flags it prints the run
history; with --export it writes a past run's datasets back out as a JSON
array, byte-compatible with the harvest output.`,
	RunE: runRuns,
}

func init() {
	runsCmd.Flags().String("archive", "", "SQLite archive path")
	runsCmd.Flags().Int64("export", 0, "re-export this run ID instead of listing")
	runsCmd.Flags().String("output", "", "output file for --export")

	rootCmd.AddCommand(runsCmd)
}

func runRuns(cmd *cobra.Command, args []string) error {
	archivePath := flagOrConfig(cmd, "archive", "archive.path")
	if archivePath == "" {
		return fmt.Errorf("provide the archive via --archive or the archive.path config key")
	}

	store, err := archive.Open(archivePath)
	if err != nil {
		return err
	}
	defer store.Close()

	exportID, _ := cmd.Flags().GetInt64("export")
	if exportID > 0 {
		output, _ := cmd.Flags().GetString("output")
		if output == "" {
			return fmt.Errorf("--export requires --output")
		}
		datasets, err := store.Datasets(cmd.Context(), exportID)
		if err != nil {
			return err
		}
		if len(datasets) == 0 {
			return fmt.Errorf("run %d has no archived datasets", exportID)
		}
		if err := harvest.WriteDatasets(output, datasets); err != nil {
			return err
		}
		fmt.Fprintf(os.Stdout, "Exported %d datasets from run %d to %s\n", len(datasets), exportID, output)
		return nil
	}

	runs, err := store.Runs(cmd.Context())
	if err != nil {
		return err
	}
	if len(runs) == 0 {
		fmt.Fprintln(os.Stdout, "No archived runs.")
		return nil
	}

	fmt.Fprintf(os.Stdout, "%-4s  %-25s  %-9s  %-6s  %s\n", "ID", "Started", "Harvested", "Failed", "Catalog")
	for _, r := range runs {
		fmt.Fprintf(os.Stdout, "%-4d  %-25s  %-9d  %-6d  %s\n",
			r.ID, r.StartedAt.Format("2006-01-02 15:04:05 MST"), r.Harvested, r.Failed, r.Catalog)
	}
	return nil
}
