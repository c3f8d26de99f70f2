package generate

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"

	"github.com/gyeh/facilitymap/internal/config"
	"github.com/gyeh/facilitymap/internal/model"
	"github.com/gyeh/facilitymap/internal/rawtable"
	"github.com/gyeh/facilitymap/internal/snapshot"
)

// fakeFetcher serves canned tables keyed by "REGION/PERIOD". Unknown keys
// read as not-available, the same contract the real fetchers honor.
type fakeFetcher struct {
	tables map[string]*rawtable.Table
	errs   map[string]error
}

func (f *fakeFetcher) Fetch(_ context.Context, region string, period model.Period) (*rawtable.Table, error) {
	key := region + "/" + period.String()
	if err, ok := f.errs[key]; ok {
		return nil, err
	}
	if tbl, ok := f.tables[key]; ok {
		return tbl, nil
	}
	return nil, fmt.Errorf("%s: %w", key, snapshot.ErrNotAvailable)
}

func facilityTable(n int) *rawtable.Table {
	columns := []string{"CO_UNIDADE", "NO_FANTASIA", "TP_UNIDADE", "TP_GESTAO"}
	rows := make([][]string, n)
	for i := range rows {
		rows[i] = []string{fmt.Sprintf("%d", i+1), fmt.Sprintf("UNIDADE %02d", i+1), "02", "M"}
	}
	return rawtable.New(columns, rows)
}

func runConfig(out string, regions ...string) *config.Config {
	return &config.Config{
		OutDir:  out,
		Period:  model.Period{Year: 2025, Month: 6},
		Regions: regions,
		Workers: 2,
	}
}

func TestRun(t *testing.T) {
	fetcher := &fakeFetcher{tables: map[string]*rawtable.Table{
		"SP/2025-06": facilityTable(5),
		"RJ/2025-06": facilityTable(3),
	}}
	out := t.TempDir()

	summary, err := Run(context.Background(), zerolog.Nop(), runConfig(out, "SP", "RJ"), fetcher)
	if err != nil {
		t.Fatalf("Run: %v", err)
	}

	if summary.Total != 8 {
		t.Errorf("Total = %d, want 8", summary.Total)
	}
	if summary.Counts["SP"] != 5 || summary.Counts["RJ"] != 3 {
		t.Errorf("Counts = %v, want SP:5 RJ:3", summary.Counts)
	}
	if !summary.Succeeded() {
		t.Errorf("Failures = %v, want none", summary.Failures)
	}
	if summary.RunID == "" || summary.GeneratedAt.IsZero() {
		t.Errorf("summary missing run metadata: %+v", summary)
	}
	if summary.Period != "2025-06" {
		t.Errorf("Period = %q, want 2025-06", summary.Period)
	}

	for _, name := range []string{"SP.json", "RJ.json", SummaryFile} {
		if _, err := os.Stat(filepath.Join(out, name)); err != nil {
			t.Errorf("missing artifact %s: %v", name, err)
		}
	}
}

func TestRunRetrievalFailureIsolated(t *testing.T) {
	fetcher := &fakeFetcher{
		tables: map[string]*rawtable.Table{"SP/2025-06": facilityTable(5)},
		errs:   map[string]error{"RJ/2025-06": errors.New("connection reset")},
	}
	out := t.TempDir()

	summary, err := Run(context.Background(), zerolog.Nop(), runConfig(out, "SP", "RJ"), fetcher)
	if err != nil {
		t.Fatalf("Run must not abort on a single region failure: %v", err)
	}

	if len(summary.Failures) != 1 || summary.Failures[0] != "RJ" {
		t.Errorf("Failures = %v, want [RJ]", summary.Failures)
	}
	if got, ok := summary.Counts["RJ"]; !ok || got != 0 {
		t.Errorf("Counts[RJ] = %d (present=%v), want explicit 0", got, ok)
	}
	if summary.Total != 5 {
		t.Errorf("Total = %d, want 5", summary.Total)
	}

	if _, err := os.Stat(filepath.Join(out, "RJ.json")); !os.IsNotExist(err) {
		t.Errorf("failed region must not leave an artifact, stat err = %v", err)
	}
	if _, err := os.Stat(filepath.Join(out, SummaryFile)); err != nil {
		t.Errorf("summary must be written despite failures: %v", err)
	}
}

func TestRunPreviousPeriodFallback(t *testing.T) {
	// Publication lag: the requested period is absent but the previous
	// month exists.
	fetcher := &fakeFetcher{tables: map[string]*rawtable.Table{
		"SP/2025-05": facilityTable(4),
	}}
	out := t.TempDir()

	summary, err := Run(context.Background(), zerolog.Nop(), runConfig(out, "SP"), fetcher)
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if summary.Counts["SP"] != 4 {
		t.Errorf("Counts[SP] = %d, want 4 from previous period", summary.Counts["SP"])
	}
	if !summary.Succeeded() {
		t.Errorf("Failures = %v, want fallback to succeed", summary.Failures)
	}
	// The summary still names the requested period.
	if summary.Period != "2025-06" {
		t.Errorf("Period = %q, want requested 2025-06", summary.Period)
	}
}

func TestRunAllRegionsFail(t *testing.T) {
	fetcher := &fakeFetcher{}
	out := t.TempDir()

	summary, err := Run(context.Background(), zerolog.Nop(), runConfig(out, "SP", "AC", "RJ"), fetcher)
	if err != nil {
		t.Fatalf("Run: %v", err)
	}

	want := []string{"AC", "RJ", "SP"}
	if len(summary.Failures) != len(want) {
		t.Fatalf("Failures = %v, want %v", summary.Failures, want)
	}
	for i, r := range want {
		if summary.Failures[i] != r {
			t.Errorf("Failures[%d] = %q, want %q (sorted)", i, summary.Failures[i], r)
		}
	}
	if summary.Total != 0 {
		t.Errorf("Total = %d, want 0", summary.Total)
	}
	if _, err := os.Stat(filepath.Join(out, SummaryFile)); err != nil {
		t.Errorf("summary must be written even when every region fails: %v", err)
	}
}

func TestRunDeterministicArtifacts(t *testing.T) {
	fetcher := &fakeFetcher{tables: map[string]*rawtable.Table{
		"SP/2025-06": facilityTable(10),
	}}

	outA, outB := t.TempDir(), t.TempDir()
	if _, err := Run(context.Background(), zerolog.Nop(), runConfig(outA, "SP"), fetcher); err != nil {
		t.Fatalf("first Run: %v", err)
	}
	if _, err := Run(context.Background(), zerolog.Nop(), runConfig(outB, "SP"), fetcher); err != nil {
		t.Fatalf("second Run: %v", err)
	}

	a, _ := os.ReadFile(filepath.Join(outA, "SP.json"))
	b, _ := os.ReadFile(filepath.Join(outB, "SP.json"))
	if len(a) == 0 || !bytes.Equal(a, b) {
		t.Errorf("same input produced different artifacts:\n%s\n%s", a, b)
	}
}
