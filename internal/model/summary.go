package model

import "time"

// RunSummary captures the outcome of a single generation run. It is written
// alongside the per-region artifacts and rebuilt from scratch every run.
//
// Regions that failed retrieval appear both in Failures and in Counts with a
// zero count, so consumers can distinguish "no data retrievable" from "region
// not part of this run".
type RunSummary struct {
	GeneratedAt time.Time      `json:"generated_at"`
	Period      string         `json:"period"`
	RunID       string         `json:"run_id"`
	Counts      map[string]int `json:"counts"`
	Total       int            `json:"total"`
	Failures    []string       `json:"failures"`

	DurationTotal time.Duration `json:"-"`
}

// Succeeded reports whether every region produced output this run.
func (s *RunSummary) Succeeded() bool {
	return len(s.Failures) == 0
}
