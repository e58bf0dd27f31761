// pkg/storage/writer.go
package storage

import (
	"os"
	"strings"

	"github.com/tnm/shql/pkg/errs"
)

// AppendRows appends records to table's data file, one TAB-joined line
// each. Used by INSERT, which only ever grows a table.
func AppendRows(dir, table string, records []Record) error {
	f, err := os.OpenFile(DataPath(dir, table), os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return errs.NewIOError("open data file for append", err)
	}
	defer f.Close()

	for _, rec := range records {
		if _, err := f.WriteString(strings.Join(rec, "\t") + "\n"); err != nil {
			return errs.NewIOError("append row", err)
		}
	}
	return nil
}

// Rewrite replaces table's data file wholesale with records. The new
// content is written to a sibling temporary file first and then moved
// into place with os.Rename, which is atomic on the same filesystem:
// a reader never observes a partially written file, and on failure
// during the write the original data file is untouched.
func Rewrite(dir, table string, records []Record) error {
	target := DataPath(dir, table)
	tmp := target + ".tmp"

	f, err := os.OpenFile(tmp, os.O_CREATE|os.O_TRUNC|os.O_WRONLY, 0o644)
	if err != nil {
		return errs.NewIOError("create temp file", err)
	}
	for _, rec := range records {
		if _, err := f.WriteString(strings.Join(rec, "\t") + "\n"); err != nil {
			f.Close()
			os.Remove(tmp)
			return errs.NewIOError("write temp file", err)
		}
	}
	if err := f.Close(); err != nil {
		os.Remove(tmp)
		return errs.NewIOError("close temp file", err)
	}
	if err := os.Rename(tmp, target); err != nil {
		os.Remove(tmp)
		return errs.NewIOError("rename temp file over data file", err)
	}
	return nil
}
