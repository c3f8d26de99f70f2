package load

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"
)

// Finalize refreshes planner statistics after the bulk load.
func Finalize(ctx context.Context, pool *pgxpool.Pool, log zerolog.Logger) (time.Duration, error) {
	start := time.Now()

	if _, err := pool.Exec(ctx, "ANALYZE map_serving.facilities"); err != nil {
		return 0, fmt.Errorf("analyze facilities: %w", err)
	}
	log.Info().Msg("ANALYZE complete")

	return time.Since(start), nil
}
