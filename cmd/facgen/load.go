package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/gyeh/facilitymap/internal/db"
	"github.com/gyeh/facilitymap/internal/exitcode"
	"github.com/gyeh/facilitymap/internal/load"
	"github.com/gyeh/facilitymap/internal/logging"
)

var loadCmd = &cobra.Command{
	Use:   "load",
	Short: "Load generated artifacts into the serving database",
	RunE:  runLoad,
}

func init() {
	loadCmd.Flags().StringVar(&cfg.DataDir, "dir", "", "Artifact directory from a generate run (required)")
	_ = loadCmd.MarkFlagRequired("dir")
	rootCmd.AddCommand(loadCmd)
}

func runLoad(cmd *cobra.Command, args []string) error {
	log := logging.Setup(cfg.LogFormat)
	ctx := context.Background()

	if err := cfg.ValidateLoad(); err != nil {
		log.Error().Err(err).Msg("config validation failed")
		os.Exit(exitcode.UsageError)
	}

	pool, err := db.NewPool(ctx, cfg.DSN)
	if err != nil {
		log.Error().Err(err).Msg("database connection failed")
		os.Exit(exitcode.DBConnError)
	}
	defer pool.Close()

	result, err := load.Run(ctx, pool, log, &cfg)
	if err != nil {
		if pe, ok := err.(*load.PipelineError); ok {
			log.Error().Err(pe.Err).Str("phase", pe.Phase).Msg("load failed")
			switch pe.Phase {
			case "preflight":
				os.Exit(exitcode.ValidationError)
			default:
				os.Exit(exitcode.CopyError)
			}
		}
		log.Error().Err(err).Msg("load failed")
		os.Exit(exitcode.CopyError)
	}

	fmt.Printf("Load complete: %d rows across %d regions (%.1fs)\n",
		result.RowsCopied, result.RegionsLoaded, result.DurationTotal.Seconds())
	return nil
}
