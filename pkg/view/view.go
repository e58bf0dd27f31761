// pkg/view/view.go
package view

import (
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/tnm/shql/pkg/errs"
)

// suffix names a view's metadata file within a database directory,
// e.g. <view>!.
const suffix = "!"

// Join is one stored equi-join clause of a view's specification.
type Join struct {
	LeftTable  string `yaml:"left_table"`
	LeftCol    string `yaml:"left_col"`
	RightTable string `yaml:"right_table"`
	RightCol   string `yaml:"right_col"`
}

// Definition is a named, saved join specification: a table list and
// its equi-join predicates. Views are not materialized; SELECT ...
// FROM viewname is rewritten at query time into the underlying
// multi-table SELECT.
type Definition struct {
	Name   string   `yaml:"name"`
	Tables []string `yaml:"tables"`
	Joins  []Join   `yaml:"joins"`
}

func path(dir, name string) string {
	return filepath.Join(dir, name+suffix)
}

// Exists reports whether a view by this name has a stored definition.
func Exists(dir, name string) (bool, error) {
	_, err := os.Stat(path(dir, name))
	if err == nil {
		return true, nil
	}
	if os.IsNotExist(err) {
		return false, nil
	}
	return false, errs.NewIOError("stat view file", err)
}

// Create persists def, failing with AlreadyExistsError if a view by
// that name already exists.
func Create(dir string, def Definition) error {
	exists, err := Exists(dir, def.Name)
	if err != nil {
		return err
	}
	if exists {
		return &errs.AlreadyExistsError{Kind: "view", Name: def.Name}
	}
	out, err := yaml.Marshal(def)
	if err != nil {
		return errs.NewIOError("marshal view", err)
	}
	if err := os.WriteFile(path(dir, def.Name), out, 0o644); err != nil {
		return errs.NewIOError("write view file", err)
	}
	return nil
}

// Load reads back a view's stored definition.
func Load(dir, name string) (Definition, error) {
	data, err := os.ReadFile(path(dir, name))
	if err != nil {
		if os.IsNotExist(err) {
			return Definition{}, &errs.NotFoundError{Kind: "view", Name: name}
		}
		return Definition{}, errs.NewIOError("read view file", err)
	}
	var def Definition
	if err := yaml.Unmarshal(data, &def); err != nil {
		return Definition{}, errs.NewIOError("unmarshal view", err)
	}
	return def, nil
}

// Drop removes a view's stored definition.
func Drop(dir, name string) error {
	exists, err := Exists(dir, name)
	if err != nil {
		return err
	}
	if !exists {
		return &errs.NotFoundError{Kind: "view", Name: name}
	}
	if err := os.Remove(path(dir, name)); err != nil {
		return errs.NewIOError("remove view file", err)
	}
	return nil
}
