package db

import (
	"github.com/jackc/pgx/v5"

	"github.com/gyeh/facilitymap/internal/model"
)

// ChannelSource implements pgx.CopyFromSource by reading ServingRows from a
// channel, giving natural backpressure between the artifact decoder and the
// COPY writer.
type ChannelSource struct {
	ch      <-chan *model.ServingRow
	current *model.ServingRow
	err     error
}

// NewChannelSource creates a CopyFromSource backed by a channel.
func NewChannelSource(ch <-chan *model.ServingRow) *ChannelSource {
	return &ChannelSource{ch: ch}
}

// Next advances to the next row. Returns false when the channel is closed.
func (s *ChannelSource) Next() bool {
	row, ok := <-s.ch
	if !ok {
		return false
	}
	s.current = row
	return true
}

// Values returns the current row's values in COPY column order.
func (s *ChannelSource) Values() ([]any, error) {
	return s.current.CopyValues(), nil
}

// Err returns any error encountered during iteration.
func (s *ChannelSource) Err() error {
	return s.err
}

// Compile-time check that ChannelSource satisfies the interface.
var _ pgx.CopyFromSource = (*ChannelSource)(nil)
