// pkg/sql/executor/executor.go
package executor

import (
	"fmt"
	"strings"

	"github.com/tnm/shql/pkg/errs"
	"github.com/tnm/shql/pkg/session"
	"github.com/tnm/shql/pkg/sql/parser"
)

// Result holds the outcome of executing one statement: either a set
// of rows (a SELECT) or a row count (a mutator).
type Result struct {
	// HasRows is true for SELECT-shaped results; false for mutators,
	// whose only output is RowsAffected.
	HasRows bool

	Columns      []string
	Rows         [][]string
	RowsAffected int64
}

// FormatLines renders a Result as plain lines: a header of column
// names, TAB-joined rows, and a trailing "(N rows)" line. quiet
// suppresses the header and row count; it does not suppress the rows
// themselves. Column padding by declared width is presentational and
// lives outside the core.
func (r *Result) FormatLines(quiet bool) []string {
	var lines []string
	if r.HasRows {
		if !quiet && len(r.Columns) > 0 {
			lines = append(lines, strings.Join(r.Columns, "\t"))
		}
		for _, row := range r.Rows {
			lines = append(lines, strings.Join(row, "\t"))
		}
		if !quiet {
			lines = append(lines, fmt.Sprintf("(%d rows)", len(r.Rows)))
		}
		return lines
	}
	if !quiet {
		lines = append(lines, fmt.Sprintf("(%d rows)", r.RowsAffected))
	}
	return lines
}

// Executor drives Storage to execute one statement at a time against a
// Session. It is stateless between calls; all per-statement state
// (scratch namespace, current table, subselect flag) lives on the
// Session passed to Run.
type Executor struct{}

// New creates an Executor.
func New() *Executor { return &Executor{} }

// Run executes stmt against sess and returns its result.
func (e *Executor) Run(sess *session.Session, stmt parser.Statement) (*Result, error) {
	switch s := stmt.(type) {
	case *parser.SelectStmt:
		return e.execSelect(sess, s)
	case *parser.InsertStmt:
		return e.execInsert(sess, s)
	case *parser.UpdateStmt:
		return e.execUpdate(sess, s)
	case *parser.DeleteStmt:
		return e.execDelete(sess, s)
	case *parser.CreateTableStmt:
		return e.execCreateTable(sess, s)
	case *parser.DropTableStmt:
		return e.execDropTable(sess, s)
	case *parser.CreateViewStmt:
		return e.execCreateView(sess, s)
	case *parser.DropViewStmt:
		return e.execDropView(sess, s)
	default:
		return nil, errs.NewParseError("statement of type %T is not executable by the core", stmt)
	}
}

// runSubquery adapts Run to predicate.SubqueryRunner: it executes a
// nested SELECT with the subselect session flag set and returns its
// raw rows.
func (e *Executor) runSubquery(sess *session.Session, sub *parser.SelectStmt) ([][]string, error) {
	nested := sess.Nested()
	result, err := e.execSelect(nested, sub)
	if err != nil {
		return nil, err
	}
	return result.Rows, nil
}
