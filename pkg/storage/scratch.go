// pkg/storage/scratch.go
package storage

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/tnm/shql/pkg/errs"
)

// Scratch owns a per-statement temporary directory used for join, sort
// and DISTINCT intermediates. Each statement must own a unique scratch
// namespace and clean it up on every exit path, including error paths.
// The zero value is not usable; create one with NewScratch.
type Scratch struct {
	dir     string
	counter int
}

// NewScratch creates a fresh scratch namespace under the OS temp
// directory. Callers must defer Close to guarantee cleanup even on
// error paths.
func NewScratch() (*Scratch, error) {
	dir, err := os.MkdirTemp("", "shql-")
	if err != nil {
		return nil, errs.NewIOError("create scratch dir", err)
	}
	return &Scratch{dir: dir}, nil
}

// Close removes the entire scratch namespace. Safe to call multiple
// times and on a nil Scratch.
func (s *Scratch) Close() error {
	if s == nil {
		return nil
	}
	return os.RemoveAll(s.dir)
}

// NewRelation materializes records as a new scratch file and returns
// its path, becoming the intermediate relation R of a join step or the
// input to a sort/distinct pass.
func (s *Scratch) NewRelation(records []Record) (string, error) {
	s.counter++
	path := filepath.Join(s.dir, fmt.Sprintf("rel-%d", s.counter))

	f, err := os.Create(path)
	if err != nil {
		return "", errs.NewIOError("create scratch relation", err)
	}
	defer f.Close()

	for _, rec := range records {
		if _, err := f.WriteString(strings.Join(rec, "\t") + "\n"); err != nil {
			return "", errs.NewIOError("write scratch relation", err)
		}
	}
	return path, nil
}

// LoadRelation reads back a relation written by NewRelation.
func (s *Scratch) LoadRelation(path string) ([]Record, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errs.NewIOError("open scratch relation", err)
	}
	defer f.Close()

	var records []Record
	r := newRowReader(f)
	for {
		rec, err := r.Next()
		if err != nil {
			break
		}
		records = append(records, rec)
	}
	return records, nil
}
