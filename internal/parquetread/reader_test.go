package parquetread

import (
	"math"
	"os"
	"path/filepath"
	"testing"

	"github.com/parquet-go/parquet-go"
)

func writeFixture[T any](t *testing.T, rows []T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "fixture.parquet")
	f, err := os.Create(path)
	if err != nil {
		t.Fatalf("create fixture: %v", err)
	}
	w := parquet.NewGenericWriter[T](f)
	if _, err := w.Write(rows); err != nil {
		t.Fatalf("write fixture rows: %v", err)
	}
	if err := w.Close(); err != nil {
		t.Fatalf("close fixture writer: %v", err)
	}
	if err := f.Close(); err != nil {
		t.Fatalf("close fixture file: %v", err)
	}
	return path
}

func strptr(s string) *string   { return &s }
func f64ptr(f float64) *float64 { return &f }

func TestReadTableStringSchema(t *testing.T) {
	type row struct {
		Code string `parquet:"CO_UNIDADE"`
		Name string `parquet:"NO_FANTASIA"`
		Muni string `parquet:"CO_MUNICIPIO_GESTOR"`
	}
	path := writeFixture(t, []row{
		{Code: "9561", Name: "UBS CENTRO", Muni: "355030"},
		{Code: "2269311", Name: "HOSPITAL GERAL", Muni: "330455"},
	})

	tbl, err := ReadTable(path)
	if err != nil {
		t.Fatalf("ReadTable: %v", err)
	}
	if tbl.NumRows() != 2 {
		t.Fatalf("NumRows = %d, want 2", tbl.NumRows())
	}
	if got := tbl.Row(0).Get("CO_UNIDADE"); got != "9561" {
		t.Errorf("row 0 CO_UNIDADE = %q, want %q", got, "9561")
	}
	if got := tbl.Row(1).Get("NO_FANTASIA"); got != "HOSPITAL GERAL" {
		t.Errorf("row 1 NO_FANTASIA = %q, want %q", got, "HOSPITAL GERAL")
	}
}

func TestReadTableNumericDrift(t *testing.T) {
	// Some snapshot vintages store codes as doubles, with NaN for missing
	// cells. They must read back as the plain digit strings the CSVs had.
	type row struct {
		Code   *float64 `parquet:"CNES,optional"`
		Name   *string  `parquet:"NOFANTASIA,optional"`
		Postal *float64 `parquet:"NU_CEP,optional"`
	}
	path := writeFixture(t, []row{
		{Code: f64ptr(9561), Name: strptr("UBS CENTRO"), Postal: f64ptr(1310100)},
		{Code: f64ptr(math.NaN()), Name: nil, Postal: nil},
	})

	tbl, err := ReadTable(path)
	if err != nil {
		t.Fatalf("ReadTable: %v", err)
	}
	if got := tbl.Row(0).Get("CNES"); got != "9561" {
		t.Errorf("double code = %q, want %q", got, "9561")
	}
	if got := tbl.Row(0).Get("NU_CEP"); got != "1310100" {
		t.Errorf("double postal = %q, want %q", got, "1310100")
	}
	if got := tbl.Row(1).Get("CNES"); got != "" {
		t.Errorf("NaN code = %q, want empty", got)
	}
	if got := tbl.Row(1).Get("NOFANTASIA"); got != "" {
		t.Errorf("null name = %q, want empty", got)
	}
}

func TestOpenReportsSchema(t *testing.T) {
	type row struct {
		Code string `parquet:"CO_UNIDADE"`
		Name string `parquet:"NO_FANTASIA"`
	}
	path := writeFixture(t, []row{{Code: "1", Name: "X"}})

	r, err := Open(path)
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	defer r.Close()

	cols := r.Columns()
	if len(cols) != 2 {
		t.Fatalf("Columns = %v, want 2 entries", cols)
	}
	found := map[string]bool{}
	for _, c := range cols {
		found[c] = true
	}
	if !found["CO_UNIDADE"] || !found["NO_FANTASIA"] {
		t.Errorf("Columns = %v, want CO_UNIDADE and NO_FANTASIA", cols)
	}
	if r.NumRows() != 1 {
		t.Errorf("NumRows = %d, want 1", r.NumRows())
	}
}

func TestOpenMissingFile(t *testing.T) {
	if _, err := Open(filepath.Join(t.TempDir(), "absent.parquet")); err == nil {
		t.Fatal("expected error opening a missing file")
	}
}
