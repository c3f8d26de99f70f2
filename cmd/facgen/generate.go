package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/gyeh/facilitymap/internal/exitcode"
	"github.com/gyeh/facilitymap/internal/generate"
	"github.com/gyeh/facilitymap/internal/logging"
	"github.com/gyeh/facilitymap/internal/snapshot"
)

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate per-region facility artifacts from registry snapshots",
	RunE:  runGenerate,
}

func init() {
	f := generateCmd.Flags()
	f.StringVar(&cfg.SnapshotDir, "snapshot-dir", "", "Local snapshot directory ({dir}/{YYYY-MM}/{REGION}.parquet)")
	f.StringVar(&cfg.SnapshotURL, "snapshot-url", "", "Snapshot mirror base URL")
	f.StringVar(&cfg.OutDir, "out", "", "Output directory for artifacts (required)")
	f.StringVar(&cfg.PeriodStr, "period", "", "Reference period YYYY-MM (default: latest published)")
	f.StringSliceVar(&cfg.Regions, "regions", nil, "Regions to process (default: all 27)")
	f.IntVar(&cfg.Workers, "workers", 0, "Concurrent region workers (default 4)")
	rootCmd.AddCommand(generateCmd)
}

func runGenerate(cmd *cobra.Command, args []string) error {
	log := logging.Setup(cfg.LogFormat)
	ctx := context.Background()

	if configFile != "" {
		if err := cfg.LoadFromFile(configFile); err != nil {
			log.Error().Err(err).Msg("config file load failed")
			os.Exit(exitcode.UsageError)
		}
	}
	if err := cfg.Validate(); err != nil {
		log.Error().Err(err).Msg("config validation failed")
		os.Exit(exitcode.UsageError)
	}

	var fetcher snapshot.Fetcher
	if cfg.SnapshotDir != "" {
		fetcher = snapshot.Dir{Root: cfg.SnapshotDir}
	} else {
		fetcher = snapshot.NewHTTP(cfg.SnapshotURL)
	}

	summary, err := generate.Run(ctx, log, &cfg, fetcher)
	if err != nil {
		log.Error().Err(err).Msg("generation failed")
		os.Exit(exitcode.WriteError)
	}

	fmt.Printf("Generation complete: %d facilities across %d regions (%.1fs)\n",
		summary.Total, len(cfg.Regions)-len(summary.Failures), summary.DurationTotal.Seconds())

	if len(summary.Failures) == len(cfg.Regions) {
		log.Error().Strs("regions", summary.Failures).Msg("no region could be retrieved")
		os.Exit(exitcode.RetrievalError)
	}
	if !summary.Succeeded() {
		log.Warn().Strs("regions", summary.Failures).Msg("some regions failed retrieval")
		os.Exit(exitcode.PartialSuccess)
	}
	return nil
}
