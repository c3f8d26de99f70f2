// Package load moves a generated artifact set into the Postgres serving
// schema: preflight reads the run summary, each region is replaced
// wholesale inside a transaction, and finalize refreshes planner stats.
package load

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"

	"github.com/gyeh/facilitymap/internal/config"
)

// PipelineError wraps an error with the phase where it occurred.
type PipelineError struct {
	Phase string
	Err   error
}

func (e *PipelineError) Error() string {
	return fmt.Sprintf("%s: %s", e.Phase, e.Err)
}

func (e *PipelineError) Unwrap() error {
	return e.Err
}

// Result summarizes a completed load run.
type Result struct {
	Period        string
	LoadBatchID   string
	RegionsLoaded int
	RowsCopied    int64
	DurationTotal time.Duration
}

// Run executes the full load pipeline: preflight → per-region copy →
// finalize.
func Run(ctx context.Context, pool *pgxpool.Pool, log zerolog.Logger, cfg *config.Config) (*Result, error) {
	totalStart := time.Now()

	log.Info().Str("dir", cfg.DataDir).Msg("starting preflight")
	pf, err := Preflight(log, cfg.DataDir)
	if err != nil {
		return nil, &PipelineError{Phase: "preflight", Err: err}
	}

	var rowsCopied int64
	for _, region := range pf.Regions {
		rl, err := LoadRegion(ctx, pool, log, cfg.DataDir, region, pf.Summary.Period, pf.LoadBatchID)
		if err != nil {
			return nil, &PipelineError{Phase: "copy", Err: err}
		}
		if expected := pf.Summary.Counts[region]; rl.RowsCopied != int64(expected) {
			log.Warn().
				Str("region", region).
				Int64("copied", rl.RowsCopied).
				Int("summary_count", expected).
				Msg("artifact row count differs from summary")
		}
		rowsCopied += rl.RowsCopied
	}

	log.Info().Msg("finalizing")
	if _, err := Finalize(ctx, pool, log); err != nil {
		return nil, &PipelineError{Phase: "finalize", Err: err}
	}

	result := &Result{
		Period:        pf.Summary.Period,
		LoadBatchID:   pf.LoadBatchID.String(),
		RegionsLoaded: len(pf.Regions),
		RowsCopied:    rowsCopied,
		DurationTotal: time.Since(totalStart),
	}

	log.Info().
		Str("period", result.Period).
		Int("regions", result.RegionsLoaded).
		Int64("rows_copied", result.RowsCopied).
		Dur("total_duration", result.DurationTotal).
		Msg("load pipeline complete")

	return result, nil
}
