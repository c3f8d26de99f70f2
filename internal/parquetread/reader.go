package parquetread

import (
	"fmt"
	"io"
	"math"
	"os"
	"strconv"
	"strings"

	"github.com/parquet-go/parquet-go"

	"github.com/gyeh/facilitymap/internal/rawtable"
)

// readBatch is the number of rows decoded per ReadRows call.
const readBatch = 1024

// Reader streams rows out of a snapshot file whose column set is not known
// ahead of time. Every cell is surfaced as a string: the upstream publisher
// stores code columns as doubles in some vintages, with NaN standing in for
// missing values, and flattening that drift here lets the field resolver
// treat all vintages alike.
type Reader struct {
	file    *os.File
	pf      *parquet.File
	columns []string
}

// Open opens a snapshot file and reads its schema.
func Open(path string) (*Reader, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open parquet file: %w", err)
	}

	stat, err := f.Stat()
	if err != nil {
		f.Close()
		return nil, fmt.Errorf("stat parquet file: %w", err)
	}

	pf, err := parquet.OpenFile(f, stat.Size())
	if err != nil {
		f.Close()
		return nil, fmt.Errorf("open parquet: %w", err)
	}

	paths := pf.Schema().Columns()
	columns := make([]string, len(paths))
	for i, p := range paths {
		columns[i] = strings.Join(p, ".")
	}

	return &Reader{file: f, pf: pf, columns: columns}, nil
}

// Columns returns the leaf column names in file order.
func (r *Reader) Columns() []string {
	return r.columns
}

// NumRows returns the total number of rows in the file.
func (r *Reader) NumRows() int64 {
	return r.pf.NumRows()
}

// ReadAll materializes the whole file as a raw table. Region snapshots are
// small enough to hold in memory, and the table-level filters downstream
// need the full column set anyway.
func (r *Reader) ReadAll() (*rawtable.Table, error) {
	out := make([][]string, 0, r.pf.NumRows())
	buf := make([]parquet.Row, readBatch)

	for _, rg := range r.pf.RowGroups() {
		rows := rg.Rows()
		for {
			n, err := rows.ReadRows(buf)
			for _, row := range buf[:n] {
				out = append(out, r.cells(row))
			}
			if err == io.EOF {
				break
			}
			if err != nil {
				rows.Close()
				return nil, fmt.Errorf("read parquet rows: %w", err)
			}
			if n == 0 {
				break
			}
		}
		if err := rows.Close(); err != nil {
			return nil, fmt.Errorf("close row group: %w", err)
		}
	}

	return rawtable.New(r.columns, out), nil
}

// Close releases the underlying file.
func (r *Reader) Close() error {
	return r.file.Close()
}

// ReadTable opens path, reads every row, and closes the file.
func ReadTable(path string) (*rawtable.Table, error) {
	r, err := Open(path)
	if err != nil {
		return nil, err
	}
	defer r.Close()
	return r.ReadAll()
}

func (r *Reader) cells(row parquet.Row) []string {
	cells := make([]string, len(r.columns))
	for _, v := range row {
		if c := v.Column(); c >= 0 && c < len(cells) {
			cells[c] = valueString(v)
		}
	}
	return cells
}

// valueString renders one parquet value the way the upstream CSV would have
// spelled it. Doubles holding integral codes come out without a fractional
// part; NaN and infinities read as empty cells.
func valueString(v parquet.Value) string {
	if v.IsNull() {
		return ""
	}
	switch v.Kind() {
	case parquet.ByteArray, parquet.FixedLenByteArray:
		return string(v.ByteArray())
	case parquet.Boolean:
		return strconv.FormatBool(v.Boolean())
	case parquet.Int32:
		return strconv.FormatInt(int64(v.Int32()), 10)
	case parquet.Int64:
		return strconv.FormatInt(v.Int64(), 10)
	case parquet.Float:
		return floatString(float64(v.Float()), 32)
	case parquet.Double:
		return floatString(v.Double(), 64)
	default:
		return v.String()
	}
}

func floatString(f float64, bits int) string {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return ""
	}
	return strconv.FormatFloat(f, 'f', -1, bits)
}
