package db

import (
	"testing"

	"github.com/google/uuid"

	"github.com/gyeh/facilitymap/internal/model"
)

func TestChannelSource(t *testing.T) {
	batch := uuid.New()
	rows := []*model.ServingRow{
		{LoadBatchID: batch, Region: "SP", Period: "2025-06",
			Facility: model.Facility{ID: "0000001", Name: "Ubs Centro", Tier: model.TierPrimary}},
		{LoadBatchID: batch, Region: "SP", Period: "2025-06",
			Facility: model.Facility{ID: "0000002", Name: "Hospital Geral", Tier: model.TierTertiary}},
	}

	ch := make(chan *model.ServingRow, len(rows))
	for _, r := range rows {
		ch <- r
	}
	close(ch)

	src := NewChannelSource(ch)
	cols := model.ServingColumns()

	var got int
	for src.Next() {
		values, err := src.Values()
		if err != nil {
			t.Fatalf("Values: %v", err)
		}
		if len(values) != len(cols) {
			t.Fatalf("row %d: %d values for %d columns", got, len(values), len(cols))
		}
		if values[0] != rows[got].ID {
			t.Errorf("row %d facility_id = %v, want %v", got, values[0], rows[got].ID)
		}
		if values[1] != "SP" || values[2] != "2025-06" {
			t.Errorf("row %d region/period = %v/%v", got, values[1], values[2])
		}
		if values[3] != batch {
			t.Errorf("row %d load_batch_id = %v, want %v", got, values[3], batch)
		}
		got++
	}

	if got != len(rows) {
		t.Errorf("iterated %d rows, want %d", got, len(rows))
	}
	if err := src.Err(); err != nil {
		t.Errorf("Err: %v", err)
	}
}

func TestChannelSourceEmpty(t *testing.T) {
	ch := make(chan *model.ServingRow)
	close(ch)

	src := NewChannelSource(ch)
	if src.Next() {
		t.Error("Next on a closed empty channel must return false")
	}
}

func TestServingColumnsMatchCopyValues(t *testing.T) {
	row := &model.ServingRow{}
	if len(row.CopyValues()) != len(model.ServingColumns()) {
		t.Fatalf("CopyValues has %d entries, ServingColumns has %d",
			len(row.CopyValues()), len(model.ServingColumns()))
	}
}
