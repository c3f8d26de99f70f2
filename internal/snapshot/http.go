package snapshot

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/gyeh/facilitymap/internal/model"
	"github.com/gyeh/facilitymap/internal/parquetread"
	"github.com/gyeh/facilitymap/internal/rawtable"
)

// HTTP retrieves snapshots from a mirror that exposes the same layout as a
// snapshot directory: {base}/{YYYY-MM}/{REGION}.parquet.
type HTTP struct {
	Base    string
	Client  *http.Client
	Retries int           // extra attempts after the first
	Backoff time.Duration // delay before the first retry, doubled each attempt
}

// NewHTTP returns an HTTP fetcher with a generous download timeout and a
// small retry budget for transient mirror failures.
func NewHTTP(base string) *HTTP {
	return &HTTP{
		Base:    strings.TrimRight(base, "/"),
		Client:  &http.Client{Timeout: 5 * time.Minute},
		Retries: 2,
		Backoff: 500 * time.Millisecond,
	}
}

func (h *HTTP) Fetch(ctx context.Context, region string, period model.Period) (*rawtable.Table, error) {
	url := fmt.Sprintf("%s/%s/%s.parquet", strings.TrimRight(h.Base, "/"), period, strings.ToUpper(region))

	attempts := h.Retries + 1
	if attempts < 1 {
		attempts = 1
	}

	var lastErr error
	for attempt := 1; attempt <= attempts; attempt++ {
		tbl, retryable, err := h.fetchOnce(ctx, url)
		if err == nil {
			return tbl, nil
		}
		if !retryable {
			return nil, err
		}
		lastErr = err
		if attempt < attempts {
			if err := sleep(ctx, h.Backoff<<(attempt-1)); err != nil {
				return nil, err
			}
		}
	}
	return nil, lastErr
}

// fetchOnce downloads the snapshot to a temp file and reads it. The bool
// reports whether the failure is worth retrying.
func (h *HTTP) fetchOnce(ctx context.Context, url string) (*rawtable.Table, bool, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, http.NoBody)
	if err != nil {
		return nil, false, fmt.Errorf("build snapshot request: %w", err)
	}

	resp, err := h.Client.Do(req)
	if err != nil {
		return nil, true, fmt.Errorf("fetch snapshot: %w", err)
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusOK:
		// handled below
	case resp.StatusCode == http.StatusNotFound:
		return nil, false, fmt.Errorf("%s: %w", url, ErrNotAvailable)
	case retryableStatus(resp.StatusCode):
		return nil, true, fmt.Errorf("fetch snapshot: status %d", resp.StatusCode)
	default:
		return nil, false, fmt.Errorf("fetch snapshot: status %d", resp.StatusCode)
	}

	tmp, err := os.CreateTemp("", "snapshot-*.parquet")
	if err != nil {
		return nil, false, fmt.Errorf("create temp snapshot: %w", err)
	}
	defer os.Remove(tmp.Name())

	if _, err := io.Copy(tmp, resp.Body); err != nil {
		tmp.Close()
		return nil, true, fmt.Errorf("download snapshot: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return nil, false, fmt.Errorf("close temp snapshot: %w", err)
	}

	tbl, err := parquetread.ReadTable(tmp.Name())
	if err != nil {
		return nil, false, err
	}
	return tbl, false, nil
}

// retryableStatus reports whether the mirror failure is temporary.
func retryableStatus(code int) bool {
	switch code {
	case http.StatusRequestTimeout,
		http.StatusTooManyRequests,
		http.StatusInternalServerError,
		http.StatusBadGateway,
		http.StatusServiceUnavailable,
		http.StatusGatewayTimeout:
		return true
	}
	return false
}

func sleep(ctx context.Context, d time.Duration) error {
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}
