package generate

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/gyeh/facilitymap/internal/model"
)

// WriteRegion writes one region's facilities as a compact JSON array and
// returns the artifact size in bytes. Non-ASCII text is written literally;
// every consumer reads UTF-8. A region with no facilities still produces an
// artifact holding an empty array.
func WriteRegion(path string, facilities []*model.Facility) (int64, error) {
	if facilities == nil {
		facilities = []*model.Facility{}
	}

	f, err := os.Create(path)
	if err != nil {
		return 0, fmt.Errorf("create region artifact: %w", err)
	}

	enc := json.NewEncoder(f)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(facilities); err != nil {
		f.Close()
		return 0, fmt.Errorf("encode region artifact: %w", err)
	}

	st, err := f.Stat()
	if err != nil {
		f.Close()
		return 0, fmt.Errorf("stat region artifact: %w", err)
	}
	if err := f.Close(); err != nil {
		return 0, fmt.Errorf("close region artifact: %w", err)
	}
	return st.Size(), nil
}

// WriteSummary writes the run summary, indented for humans who end up
// reading it during incident triage.
func WriteSummary(path string, s *model.RunSummary) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create summary artifact: %w", err)
	}

	enc := json.NewEncoder(f)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(s); err != nil {
		f.Close()
		return fmt.Errorf("encode summary artifact: %w", err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("close summary artifact: %w", err)
	}
	return nil
}
