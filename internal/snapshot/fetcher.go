// Package snapshot retrieves monthly registry snapshots, one parquet file
// per region, from a local directory or an HTTP mirror.
package snapshot

import (
	"context"
	"errors"

	"github.com/gyeh/facilitymap/internal/model"
	"github.com/gyeh/facilitymap/internal/rawtable"
)

// ErrNotAvailable reports that the publisher has no snapshot for the
// requested region and period. Callers may fall back to the previous
// period before giving up on the region.
var ErrNotAvailable = errors.New("snapshot not available")

// Fetcher retrieves the raw snapshot table for one region and period.
type Fetcher interface {
	Fetch(ctx context.Context, region string, period model.Period) (*rawtable.Table, error)
}
