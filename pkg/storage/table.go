// pkg/storage/table.go
package storage

import (
	"os"
	"path/filepath"

	"github.com/tnm/shql/pkg/errs"
	"github.com/tnm/shql/pkg/schema"
)

// schemaSuffix and dataSuffix name a table's two on-disk files within
// a database directory.
const (
	schemaSuffix = "@"
	dataSuffix   = "~"
)

// SchemaPath and DataPath return the on-disk path of a table's schema
// and data files within dir.
func SchemaPath(dir, table string) string { return filepath.Join(dir, table+schemaSuffix) }
func DataPath(dir, table string) string   { return filepath.Join(dir, table+dataSuffix) }

// Exists reports whether table is a valid table in dir: both its
// schema and data files are present. A partial state (only one file
// present) is corrupt and is reported as an error rather than
// silently treated as "missing".
func Exists(dir, table string) (bool, error) {
	schemaOK, err := fileExists(SchemaPath(dir, table))
	if err != nil {
		return false, err
	}
	dataOK, err := fileExists(DataPath(dir, table))
	if err != nil {
		return false, err
	}
	if schemaOK != dataOK {
		return false, errs.NewIOError("table state",
			&corruptTableError{Table: table})
	}
	return schemaOK && dataOK, nil
}

func fileExists(path string) (bool, error) {
	_, err := os.Stat(path)
	if err == nil {
		return true, nil
	}
	if os.IsNotExist(err) {
		return false, nil
	}
	return false, errs.NewIOError("stat", err)
}

type corruptTableError struct{ Table string }

func (e *corruptTableError) Error() string {
	return "table " + e.Table + " has only one of its schema/data files"
}

// Create writes the schema file for table, then touches an empty data
// file. From the caller's perspective both files appear atomically:
// the schema file is written first and the data file is created empty
// immediately after.
func Create(dir, table string, cols []schema.Column) error {
	exists, err := Exists(dir, table)
	if err != nil {
		return err
	}
	if exists {
		return &errs.AlreadyExistsError{Kind: "table", Name: table}
	}
	if err := schema.Save(SchemaPath(dir, table), cols); err != nil {
		return err
	}
	f, err := os.OpenFile(DataPath(dir, table), os.O_CREATE|os.O_EXCL, 0o644)
	if err != nil {
		return errs.NewIOError("create data file", err)
	}
	return errs.NewIOError("close data file", f.Close())
}

// Drop removes both files of table.
func Drop(dir, table string) error {
	exists, err := Exists(dir, table)
	if err != nil {
		return err
	}
	if !exists {
		return &errs.NotFoundError{Kind: "table", Name: table}
	}
	if err := os.Remove(SchemaPath(dir, table)); err != nil {
		return errs.NewIOError("remove schema file", err)
	}
	if err := os.Remove(DataPath(dir, table)); err != nil {
		return errs.NewIOError("remove data file", err)
	}
	return nil
}

// OpenSchema loads table's column list, failing with NotFoundError if
// the table does not exist.
func OpenSchema(dir, table string) (*schema.Resolver, error) {
	exists, err := Exists(dir, table)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, &errs.NotFoundError{Kind: "table", Name: table}
	}
	return schema.Load(SchemaPath(dir, table))
}
