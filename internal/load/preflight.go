package load

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/gyeh/facilitymap/internal/generate"
	"github.com/gyeh/facilitymap/internal/model"
)

// PreflightResult holds everything resolved before touching the database.
type PreflightResult struct {
	// Summary is the run summary decoded from the artifact directory.
	Summary *model.RunSummary
	// Regions lists the regions with a loadable artifact, sorted. Regions
	// the generation run recorded as failed are excluded.
	Regions []string
	// LoadBatchID is a freshly generated UUID tagging every row of this
	// load run.
	LoadBatchID uuid.UUID
}

// Preflight reads the run summary and checks that every successful region's
// artifact is present. A summary that promises an artifact the directory
// does not hold means the directory is not a complete publishable set, and
// the load refuses it.
func Preflight(log zerolog.Logger, dir string) (*PreflightResult, error) {
	data, err := os.ReadFile(filepath.Join(dir, generate.SummaryFile))
	if err != nil {
		return nil, fmt.Errorf("read summary: %w", err)
	}

	var summary model.RunSummary
	if err := json.Unmarshal(data, &summary); err != nil {
		return nil, fmt.Errorf("decode summary: %w", err)
	}
	if summary.Period == "" {
		return nil, fmt.Errorf("summary has no period")
	}

	failed := make(map[string]bool, len(summary.Failures))
	for _, r := range summary.Failures {
		failed[r] = true
	}

	regions := make([]string, 0, len(summary.Counts))
	for region := range summary.Counts {
		if failed[region] {
			continue
		}
		if _, err := os.Stat(filepath.Join(dir, generate.RegionFile(region))); err != nil {
			return nil, fmt.Errorf("artifact for region %s: %w", region, err)
		}
		regions = append(regions, region)
	}
	sort.Strings(regions)

	log.Info().
		Str("period", summary.Period).
		Str("source_run_id", summary.RunID).
		Int("regions", len(regions)).
		Int("failed_regions", len(summary.Failures)).
		Int("total", summary.Total).
		Msg("preflight complete")

	return &PreflightResult{
		Summary:     &summary,
		Regions:     regions,
		LoadBatchID: uuid.New(),
	}, nil
}
