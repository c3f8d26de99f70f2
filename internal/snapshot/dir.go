package snapshot

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/gyeh/facilitymap/internal/model"
	"github.com/gyeh/facilitymap/internal/parquetread"
	"github.com/gyeh/facilitymap/internal/rawtable"
)

// Dir serves snapshots from a local directory laid out as
// {root}/{YYYY-MM}/{REGION}.parquet.
type Dir struct {
	Root string
}

// Path returns where the snapshot for region and period lives under the
// directory root.
func (d Dir) Path(region string, period model.Period) string {
	return filepath.Join(d.Root, period.String(), strings.ToUpper(region)+".parquet")
}

func (d Dir) Fetch(ctx context.Context, region string, period model.Period) (*rawtable.Table, error) {
	path := d.Path(region, period)
	if _, err := os.Stat(path); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%s %s: %w", region, period, ErrNotAvailable)
		}
		return nil, fmt.Errorf("stat snapshot: %w", err)
	}
	return parquetread.ReadTable(path)
}
