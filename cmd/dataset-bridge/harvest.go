package main

import (
	"fmt"
	"net/http"
	"os"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdiddy/dataset-bridge/internal/archive"
	"github.com/pdiddy/dataset-bridge/internal/ckan"
	"github.com/pdiddy/dataset-bridge/internal/harvest"
	"github.com/pdiddy/dataset-bridge/internal/secrets"
	"github.com/pdiddy/dataset-bridge/pkg/types"
)

const (
	defaultTimeout   = 60 * time.Second
	defaultOutput    = "output/schema_org_metadata.json"
	defaultUserAgent = "dataset-bridge/0.1"
)

var harvestCmd = &cobra.Command{
	Use:   "harvest",
	Short: "Harvest a CKAN catalog into a Schema.org Dataset JSON file",
	Long: `Harvest lists every package in the catalog, fetches each record, maps it to
a Schema.org Dataset, and writes the results as one pretty-printed JSON array.
Packages that fail to fetch are logged and skipped. With --archive the run is
also recorded in a local SQLite database.`,
	RunE: runHarvest,
}

func init() {
	harvestCmd.Flags().String("base-url", "", "catalog site root (e.g. https://open.data.example.org)")
	harvestCmd.Flags().String("output", "", "output JSON file (default output/schema_org_metadata.json)")
	harvestCmd.Flags().String("report", "", "write a YAML run report to this path")
	harvestCmd.Flags().String("archive", "", "record the run in this SQLite archive")
	harvestCmd.Flags().String("api-key", "", "CKAN API key (default: .secrets/ckan-api-key)")
	harvestCmd.Flags().Duration("timeout", 0, "HTTP request timeout (default 60s)")
	harvestCmd.Flags().Duration("delay", 0, "delay between consecutive package fetches")
	harvestCmd.Flags().Int("limit", 0, "harvest at most this many packages (0 = all)")
	harvestCmd.Flags().Bool("verbose", false, "log every package fetch")

	rootCmd.AddCommand(harvestCmd)
}

// flagOrConfig returns the flag value when set, otherwise the viper key.
func flagOrConfig(cmd *cobra.Command, flag, key string) string {
	if v, _ := cmd.Flags().GetString(flag); v != "" {
		return v
	}
	return viper.GetString(key)
}

func runHarvest(cmd *cobra.Command, args []string) error {
	baseURL := flagOrConfig(cmd, "base-url", "base_url")
	if baseURL == "" {
		return fmt.Errorf("provide the catalog site root via --base-url or the base_url config key")
	}

	output := flagOrConfig(cmd, "output", "output_file")
	if output == "" {
		output = defaultOutput
	}
	reportFile := flagOrConfig(cmd, "report", "report_file")
	archivePath := flagOrConfig(cmd, "archive", "archive.path")

	timeout, _ := cmd.Flags().GetDuration("timeout")
	if timeout == 0 {
		timeout = defaultTimeout
	}
	delay, _ := cmd.Flags().GetDuration("delay")
	limit, _ := cmd.Flags().GetInt("limit")
	apiKey, _ := cmd.Flags().GetString("api-key")
	verbose, _ := cmd.Flags().GetBool("verbose")

	log := logrus.New()
	log.SetOutput(os.Stderr)
	if verbose {
		log.SetLevel(logrus.DebugLevel)
	}

	cfg := types.HarvestConfig{
		Catalog: types.CatalogConfig{
			HTTPConfig: types.HTTPConfig{
				Timeout:   timeout,
				UserAgent: defaultUserAgent,
			},
			BaseURL: baseURL,
			APIKey:  secretDefault(secrets.CKANAPIKey, apiKey),
		},
		OutputFile:   output,
		ReportFile:   reportFile,
		Limit:        limit,
		RequestDelay: delay,
	}

	client := ckan.NewClient(cfg.Catalog, &http.Client{Timeout: cfg.Catalog.Timeout})

	started := time.Now()
	result, err := harvest.Run(cmd.Context(), client, cfg, log)
	if err != nil {
		return err
	}
	if result.Total() == 0 {
		// Empty catalog: nothing to process, nothing to write.
		return nil
	}

	if err := harvest.WriteDatasets(cfg.OutputFile, result.Datasets); err != nil {
		return err
	}
	fmt.Fprintf(os.Stdout, "Saved %d datasets to %s\n", len(result.Datasets), cfg.OutputFile)

	if cfg.ReportFile != "" {
		report := harvest.NewReport(client.BaseURL(), cfg.OutputFile, result)
		if err := harvest.WriteReport(cfg.ReportFile, report); err != nil {
			return err
		}
	}

	if archivePath != "" {
		store, err := archive.Open(archivePath)
		if err != nil {
			return err
		}
		defer store.Close()

		info := archive.RunInfo{
			Catalog:   client.BaseURL(),
			StartedAt: started,
			Harvested: result.Harvested,
			Failed:    result.Failed,
		}
		runID, err := store.RecordRun(cmd.Context(), info, result.Datasets)
		if err != nil {
			return err
		}
		fmt.Fprintf(os.Stdout, "Archived as run %d in %s\n", runID, archivePath)
	}

	if result.HasFailures() {
		fmt.Fprintf(os.Stderr, "warning: %d package(s) failed and were skipped\n", result.Failed)
	}
	return nil
}
