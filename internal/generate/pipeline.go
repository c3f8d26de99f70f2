package generate

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"

	"github.com/gyeh/facilitymap/internal/config"
	"github.com/gyeh/facilitymap/internal/model"
	"github.com/gyeh/facilitymap/internal/rawtable"
	"github.com/gyeh/facilitymap/internal/snapshot"
)

// SummaryFile is the run summary artifact name within the output directory.
const SummaryFile = "_meta.json"

// RegionFile returns the artifact file name for one region.
func RegionFile(region string) string {
	return strings.ToUpper(region) + ".json"
}

// Run generates the full artifact set for one period: fetches every
// region's snapshot, normalizes it, and writes one JSON artifact per region
// plus the run summary.
//
// Retrieval failures never abort the run; the region is recorded with a
// zero count and listed in the summary's failures. Artifact write failures
// abort: a half-written output directory must not look publishable.
func Run(ctx context.Context, log zerolog.Logger, cfg *config.Config, fetcher snapshot.Fetcher) (*model.RunSummary, error) {
	start := time.Now()

	if err := os.MkdirAll(cfg.OutDir, 0o755); err != nil {
		return nil, fmt.Errorf("create output dir: %w", err)
	}

	summary := &model.RunSummary{
		GeneratedAt: start.UTC(),
		Period:      cfg.Period.String(),
		RunID:       uuid.New().String(),
		Counts:      make(map[string]int, len(cfg.Regions)),
		Failures:    []string{},
	}

	log.Info().
		Str("run_id", summary.RunID).
		Str("period", summary.Period).
		Int("regions", len(cfg.Regions)).
		Int("workers", cfg.Workers).
		Msg("starting generation")

	var mu sync.Mutex
	g, ctx := errgroup.WithContext(ctx)
	if cfg.Workers > 0 {
		g.SetLimit(cfg.Workers)
	}

	for _, region := range cfg.Regions {
		g.Go(func() error {
			regionStart := time.Now()

			tbl, used, err := fetchWithFallback(ctx, fetcher, region, cfg.Period)
			if err != nil {
				mu.Lock()
				summary.Counts[region] = 0
				summary.Failures = append(summary.Failures, region)
				mu.Unlock()
				log.Warn().Err(err).Str("region", region).Msg("region retrieval failed")
				return nil
			}
			if used != cfg.Period {
				log.Info().
					Str("region", region).
					Str("fallback_period", used.String()).
					Msg("using previous period snapshot")
			}

			res := ProcessRegion(region, tbl)
			size, err := WriteRegion(filepath.Join(cfg.OutDir, RegionFile(region)), res.Facilities)
			if err != nil {
				return fmt.Errorf("region %s: %w", region, err)
			}

			mu.Lock()
			summary.Counts[region] = len(res.Facilities)
			summary.Total += len(res.Facilities)
			mu.Unlock()

			log.Info().
				Str("region", region).
				Int("rows_read", res.RowsRead).
				Int("kept", len(res.Facilities)).
				Int("dropped_affiliation", res.DroppedAffiliation).
				Int("dropped_inactive", res.DroppedInactive).
				Int("skipped", res.SkippedRows).
				Int64("bytes", size).
				Dur("duration", time.Since(regionStart)).
				Msg("region complete")
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	sort.Strings(summary.Failures)
	summary.DurationTotal = time.Since(start)

	if err := WriteSummary(filepath.Join(cfg.OutDir, SummaryFile), summary); err != nil {
		return nil, err
	}

	log.Info().
		Int("total", summary.Total).
		Int("failed_regions", len(summary.Failures)).
		Dur("total_duration", summary.DurationTotal).
		Msg("generation complete")

	return summary, nil
}

// fetchWithFallback retrieves the region snapshot for period, falling back
// to the previous period once when the publisher has not caught up yet.
// Only a missing snapshot triggers the fallback; transport and decode
// failures surface as-is.
func fetchWithFallback(ctx context.Context, fetcher snapshot.Fetcher, region string, period model.Period) (*rawtable.Table, model.Period, error) {
	tbl, err := fetcher.Fetch(ctx, region, period)
	if err == nil {
		return tbl, period, nil
	}
	if !errors.Is(err, snapshot.ErrNotAvailable) {
		return nil, period, err
	}

	prev := period.Prev()
	tbl, prevErr := fetcher.Fetch(ctx, region, prev)
	if prevErr != nil {
		return nil, prev, fmt.Errorf("no snapshot for %s or %s: %w", period, prev, prevErr)
	}
	return tbl, prev, nil
}
