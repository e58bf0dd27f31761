// pkg/schema/schema.go
package schema

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/tnm/shql/pkg/errs"
)

// Column is one positional field of a table: its name and its
// (display-only) width.
type Column struct {
	Name  string
	Width int
}

// Resolver maps a column name to its 0-based positional index within a
// record. Lookup is first-match left-to-right, so a resolver built by
// concatenating two tables' columns for a join step still resolves
// unambiguous bare names.
type Resolver struct {
	Columns []Column
	index   map[string]int // name -> first matching position (0-based)
}

// New builds a Resolver over an ordered column list.
func New(columns []Column) *Resolver {
	idx := make(map[string]int, len(columns))
	for i, c := range columns {
		if _, ok := idx[c.Name]; !ok {
			idx[c.Name] = i
		}
	}
	return &Resolver{Columns: columns, index: idx}
}

// Lookup returns the 0-based position of name, or ok=false if no
// column by that name exists. A miss is not an error here: it is the
// signal the predicate compiler uses to fall back to treating the
// identifier as a literal.
func (r *Resolver) Lookup(name string) (int, bool) {
	i, ok := r.index[name]
	return i, ok
}

// Names returns the column names in positional order.
func (r *Resolver) Names() []string {
	names := make([]string, len(r.Columns))
	for i, c := range r.Columns {
		names[i] = c.Name
	}
	return names
}

// Concat builds a new Resolver whose columns are r's columns followed
// by other's, used to build the combined schema after a join step.
func (r *Resolver) Concat(other *Resolver) *Resolver {
	cols := make([]Column, 0, len(r.Columns)+len(other.Columns))
	cols = append(cols, r.Columns...)
	cols = append(cols, other.Columns...)
	return New(cols)
}

// Load reads a schema file: one "name\twidth" line per column.
func Load(path string) (*Resolver, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errs.NewIOError("open schema", err)
	}
	defer f.Close()

	var cols []Column
	scanner := bufio.NewScanner(f)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := scanner.Text()
		if line == "" {
			continue
		}
		parts := strings.SplitN(line, "\t", 2)
		if len(parts) != 2 {
			return nil, errs.NewParseError("schema line %d: expected name<TAB>width, got %q", lineNo, line)
		}
		width, err := strconv.Atoi(strings.TrimSpace(parts[1]))
		if err != nil {
			return nil, errs.NewParseError("schema line %d: bad width %q", lineNo, parts[1])
		}
		cols = append(cols, Column{Name: parts[0], Width: width})
	}
	if err := scanner.Err(); err != nil {
		return nil, errs.NewIOError("read schema", err)
	}
	return New(cols), nil
}

// Save writes a schema file in the "name\twidth\n" format Load expects.
func Save(path string, cols []Column) error {
	var sb strings.Builder
	for _, c := range cols {
		fmt.Fprintf(&sb, "%s\t%d\n", c.Name, c.Width)
	}
	if err := os.WriteFile(path, []byte(sb.String()), 0o644); err != nil {
		return errs.NewIOError("write schema", err)
	}
	return nil
}
