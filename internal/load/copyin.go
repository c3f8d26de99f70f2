package load

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"

	"github.com/gyeh/facilitymap/internal/db"
	"github.com/gyeh/facilitymap/internal/generate"
	"github.com/gyeh/facilitymap/internal/model"
)

const copyBatch = 1024

// RegionLoad holds metrics from loading one region.
type RegionLoad struct {
	Region     string
	RowsCopied int64
	Duration   time.Duration
}

// LoadRegion replaces one region's rows in the serving table: DELETE and
// COPY run in a single transaction so a failed load never leaves the
// region empty. The artifact is decoded as a stream and fed to COPY
// through a channel-backed CopyFromSource.
func LoadRegion(ctx context.Context, pool *pgxpool.Pool, log zerolog.Logger, dir, region, period string, batchID uuid.UUID) (*RegionLoad, error) {
	start := time.Now()
	path := filepath.Join(dir, generate.RegionFile(region))

	tx, err := pool.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("begin: %w", err)
	}
	defer tx.Rollback(ctx)

	tag, err := tx.Exec(ctx, "DELETE FROM map_serving.facilities WHERE region = $1", region)
	if err != nil {
		return nil, fmt.Errorf("delete region %s: %w", region, err)
	}

	copyCtx, cancel := context.WithCancel(ctx)
	defer cancel()

	ch := make(chan *model.ServingRow, copyBatch)
	errCh := make(chan error, 1)

	// Producer goroutine: decode artifact → tag rows → push to channel
	go func() {
		defer close(ch)
		errCh <- streamRows(copyCtx, path, region, period, batchID, ch)
	}()

	copied, copyErr := tx.CopyFrom(copyCtx,
		pgx.Identifier{"map_serving", "facilities"},
		model.ServingColumns(),
		db.NewChannelSource(ch),
	)

	// Unblock the producer if COPY stopped consuming, then collect its verdict.
	cancel()
	prodErr := <-errCh

	if copyErr != nil {
		if prodErr != nil && !errors.Is(prodErr, context.Canceled) {
			return nil, fmt.Errorf("region %s: %w", region, prodErr)
		}
		return nil, fmt.Errorf("copy region %s: %w", region, copyErr)
	}
	if prodErr != nil {
		return nil, fmt.Errorf("region %s: %w", region, prodErr)
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, fmt.Errorf("commit region %s: %w", region, err)
	}

	dur := time.Since(start)
	log.Info().
		Str("region", region).
		Int64("rows_deleted", tag.RowsAffected()).
		Int64("rows_copied", copied).
		Dur("duration", dur).
		Msg("region loaded")

	return &RegionLoad{Region: region, RowsCopied: copied, Duration: dur}, nil
}

// streamRows decodes one region artifact element by element and sends
// serving rows down ch.
func streamRows(ctx context.Context, path, region, period string, batchID uuid.UUID, ch chan<- *model.ServingRow) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("open artifact: %w", err)
	}
	defer f.Close()

	name := filepath.Base(path)
	dec := json.NewDecoder(f)

	tok, err := dec.Token()
	if err != nil {
		return fmt.Errorf("artifact %s: %w", name, err)
	}
	if d, ok := tok.(json.Delim); !ok || d != '[' {
		return fmt.Errorf("artifact %s: not a JSON array", name)
	}

	for dec.More() {
		var fac model.Facility
		if err := dec.Decode(&fac); err != nil {
			return fmt.Errorf("artifact %s: %w", name, err)
		}
		row := &model.ServingRow{
			LoadBatchID: batchID,
			Region:      region,
			Period:      period,
			Facility:    fac,
		}
		select {
		case ch <- row:
		case <-ctx.Done():
			return ctx.Err()
		}
	}

	if _, err := dec.Token(); err != nil {
		return fmt.Errorf("artifact %s: %w", name, err)
	}
	return nil
}
