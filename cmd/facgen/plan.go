package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"sort"

	"github.com/spf13/cobra"

	"github.com/gyeh/facilitymap/internal/exitcode"
	"github.com/gyeh/facilitymap/internal/generate"
	"github.com/gyeh/facilitymap/internal/logging"
	"github.com/gyeh/facilitymap/internal/model"
	"github.com/gyeh/facilitymap/internal/normalize"
	"github.com/gyeh/facilitymap/internal/snapshot"
)

var planCmd = &cobra.Command{
	Use:   "plan",
	Short: "Dry-run one region: resolution coverage and drop stats (no writes)",
	RunE:  runPlan,
}

func init() {
	f := planCmd.Flags()
	f.StringVar(&cfg.SnapshotDir, "snapshot-dir", "", "Local snapshot directory")
	f.StringVar(&cfg.SnapshotURL, "snapshot-url", "", "Snapshot mirror base URL")
	f.StringVar(&cfg.Region, "region", "", "Region to inspect (required)")
	f.StringVar(&cfg.PeriodStr, "period", "", "Reference period YYYY-MM (default: latest published)")
	_ = planCmd.MarkFlagRequired("region")
	rootCmd.AddCommand(planCmd)
}

func runPlan(cmd *cobra.Command, args []string) error {
	log := logging.Setup(cfg.LogFormat)
	ctx := context.Background()

	if err := cfg.ValidatePlan(); err != nil {
		log.Error().Err(err).Msg("config validation failed")
		os.Exit(exitcode.UsageError)
	}

	var fetcher snapshot.Fetcher
	if cfg.SnapshotDir != "" {
		fetcher = snapshot.Dir{Root: cfg.SnapshotDir}
	} else {
		fetcher = snapshot.NewHTTP(cfg.SnapshotURL)
	}

	tbl, err := fetcher.Fetch(ctx, cfg.Region, cfg.Period)
	if err != nil {
		log.Error().Err(err).Str("region", cfg.Region).Msg("snapshot retrieval failed")
		os.Exit(exitcode.RetrievalError)
	}

	res := generate.ProcessRegion(cfg.Region, tbl)

	fmt.Println("=== facgen plan ===")
	fmt.Printf("Region:     %s\n", cfg.Region)
	fmt.Printf("Period:     %s\n", cfg.Period)
	fmt.Printf("Columns:    %d\n", len(tbl.Columns()))
	fmt.Printf("Rows:       %d\n", res.RowsRead)
	fmt.Printf("Kept:       %d\n", len(res.Facilities))
	fmt.Printf("Dropped:    %d private, %d deactivated\n", res.DroppedAffiliation, res.DroppedInactive)
	fmt.Printf("Skipped:    %d rows missing required fields\n", res.SkippedRows)

	fmt.Println()
	fmt.Println("Field resolution:")
	for _, fc := range normalize.SchemaCoverage(tbl) {
		col := fc.Column
		if !fc.Found {
			col = "(not found)"
		}
		fmt.Printf("  %-16s → %s\n", fc.Field, col)
	}

	tiers := make(map[model.Tier]int)
	labels := make(map[string]int)
	for _, f := range res.Facilities {
		tiers[f.Tier]++
		labels[f.TypeLabel]++
	}
	fmt.Println()
	fmt.Println("Tier distribution:")
	for _, tier := range []model.Tier{model.TierPrimary, model.TierSecondary, model.TierTertiary} {
		fmt.Printf("  %-10s %d\n", tier, tiers[tier])
	}

	type labelCount struct {
		label string
		n     int
	}
	counts := make([]labelCount, 0, len(labels))
	for label, n := range labels {
		counts = append(counts, labelCount{label, n})
	}
	sort.Slice(counts, func(i, j int) bool {
		if counts[i].n != counts[j].n {
			return counts[i].n > counts[j].n
		}
		return counts[i].label < counts[j].label
	})
	if len(counts) > 10 {
		counts = counts[:10]
	}
	fmt.Println()
	fmt.Println("Top facility types:")
	for _, c := range counts {
		fmt.Printf("  %-40s %d\n", c.label, c.n)
	}

	if data, err := json.Marshal(res.Facilities); err == nil {
		fmt.Printf("\nProjected artifact size: %d bytes\n", len(data))
	}

	return nil
}
