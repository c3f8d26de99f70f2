package snapshot

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/parquet-go/parquet-go"

	"github.com/gyeh/facilitymap/internal/model"
)

type fixtureRow struct {
	Code string `parquet:"CO_UNIDADE"`
	Name string `parquet:"NO_FANTASIA"`
}

func fixtureBytes(t *testing.T, rows []fixtureRow) []byte {
	t.Helper()
	var buf bytes.Buffer
	w := parquet.NewGenericWriter[fixtureRow](&buf)
	if _, err := w.Write(rows); err != nil {
		t.Fatalf("write fixture rows: %v", err)
	}
	if err := w.Close(); err != nil {
		t.Fatalf("close fixture writer: %v", err)
	}
	return buf.Bytes()
}

func writeSnapshotFile(t *testing.T, root string, period model.Period, region string, rows []fixtureRow) {
	t.Helper()
	dir := filepath.Join(root, period.String())
	if err := os.MkdirAll(dir, 0o755); err != nil {
		t.Fatalf("mkdir snapshot period dir: %v", err)
	}
	path := filepath.Join(dir, region+".parquet")
	if err := os.WriteFile(path, fixtureBytes(t, rows), 0o644); err != nil {
		t.Fatalf("write snapshot file: %v", err)
	}
}

func TestDirFetch(t *testing.T) {
	root := t.TempDir()
	period := model.Period{Year: 2025, Month: 6}
	writeSnapshotFile(t, root, period, "SP", []fixtureRow{
		{Code: "9561", Name: "UBS CENTRO"},
		{Code: "9562", Name: "UBS LESTE"},
	})

	tbl, err := Dir{Root: root}.Fetch(context.Background(), "SP", period)
	if err != nil {
		t.Fatalf("Fetch: %v", err)
	}
	if tbl.NumRows() != 2 {
		t.Fatalf("NumRows = %d, want 2", tbl.NumRows())
	}
	if got := tbl.Row(0).Get("NO_FANTASIA"); got != "UBS CENTRO" {
		t.Errorf("row 0 name = %q, want %q", got, "UBS CENTRO")
	}
}

func TestDirFetchLowercaseRegion(t *testing.T) {
	root := t.TempDir()
	period := model.Period{Year: 2025, Month: 6}
	writeSnapshotFile(t, root, period, "SP", []fixtureRow{{Code: "1", Name: "X"}})

	if _, err := (Dir{Root: root}).Fetch(context.Background(), "sp", period); err != nil {
		t.Fatalf("Fetch with lowercase region: %v", err)
	}
}

func TestDirFetchMissing(t *testing.T) {
	d := Dir{Root: t.TempDir()}
	_, err := d.Fetch(context.Background(), "AC", model.Period{Year: 2025, Month: 6})
	if !errors.Is(err, ErrNotAvailable) {
		t.Fatalf("err = %v, want ErrNotAvailable", err)
	}
}

func TestDirPathLayout(t *testing.T) {
	d := Dir{Root: "/data/snapshots"}
	got := d.Path("rj", model.Period{Year: 2025, Month: 6})
	want := filepath.Join("/data/snapshots", "2025-06", "RJ.parquet")
	if got != want {
		t.Errorf("Path = %q, want %q", got, want)
	}
}
