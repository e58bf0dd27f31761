// pkg/storage/reader.go
package storage

import (
	"bufio"
	"io"
	"os"
	"strings"

	"github.com/tnm/shql/pkg/errs"
)

// Record is a single row: its TAB-separated fields in column order.
type Record []string

// RowReader streams records from a table's data file in on-disk order.
type RowReader struct {
	f       *os.File
	scanner *bufio.Scanner
}

// OpenRows opens table's data file for streaming iteration.
func OpenRows(dir, table string) (*RowReader, error) {
	f, err := os.Open(DataPath(dir, table))
	if err != nil {
		return nil, errs.NewIOError("open data file", err)
	}
	return newRowReader(f), nil
}

// newRowReader wraps an already-open file for record iteration.
func newRowReader(f *os.File) *RowReader {
	return &RowReader{f: f, scanner: bufio.NewScanner(f)}
}

// Next returns the next record, or io.EOF once the file is exhausted.
// Blank lines (a common hand-editing artifact) are skipped wherever
// they appear.
func (r *RowReader) Next() (Record, error) {
	for r.scanner.Scan() {
		line := r.scanner.Text()
		if line == "" {
			continue
		}
		return Record(strings.Split(line, "\t")), nil
	}
	if err := r.scanner.Err(); err != nil {
		return nil, errs.NewIOError("read data file", err)
	}
	return nil, io.EOF
}

// Close releases the underlying file handle.
func (r *RowReader) Close() error {
	return r.f.Close()
}

// ReadAll loads every record of table into memory. Used by the join
// and sort stages, which operate over the whole relation at once.
func ReadAll(dir, table string) ([]Record, error) {
	r, err := OpenRows(dir, table)
	if err != nil {
		return nil, err
	}
	defer r.Close()

	var records []Record
	for {
		rec, err := r.Next()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}
		records = append(records, rec)
	}
	return records, nil
}
