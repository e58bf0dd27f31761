// pkg/session/session.go
package session

import "github.com/tnm/shql/pkg/storage"

// Session carries the state that lives for the whole process (the
// database directory, the quiet flag) and the state that lives for a
// single statement (the current table, the subselect flag, and the
// statement's own scratch namespace).
type Session struct {
	// Dir is the database directory, fixed for the process lifetime.
	Dir string

	// Quiet suppresses column headers and row-count chrome in output.
	Quiet bool

	// Subselect is set while a nested SELECT (a subquery) is
	// executing, suppressing headers/row-count chrome in its output.
	Subselect bool

	// CurrentTable is the table name in scope for a single-table
	// statement (or the first FROM-list table of a SELECT). It is
	// bookkeeping only: predicate resolution goes through a
	// schema.Resolver, not through this field.
	CurrentTable string

	// Scratch is the current statement's temporary workspace for
	// join/sort/distinct intermediates. It is nil on the top-level,
	// process-lifetime Session returned by New; StartStatement opens
	// one for the duration of a single statement, and the caller must
	// Close it on every exit path, including error paths.
	Scratch *storage.Scratch
}

// New creates the top-level, process-lifetime Session. It carries no
// scratch namespace of its own — each statement opens one via
// StartStatement and closes it when the statement finishes.
func New(dir string, quiet bool) (*Session, error) {
	return &Session{Dir: dir, Quiet: quiet}, nil
}

// StartStatement returns a copy of s scoped to one statement, with a
// freshly opened scratch namespace. The caller must Close the
// returned Session when the statement finishes, successfully or not,
// so no session outlives a single statement's scratch files.
func (s *Session) StartStatement() (*Session, error) {
	scratch, err := storage.NewScratch()
	if err != nil {
		return nil, err
	}
	cp := *s
	cp.Scratch = scratch
	return &cp, nil
}

// Close releases the session's scratch namespace.
func (s *Session) Close() error {
	if s == nil {
		return nil
	}
	return s.Scratch.Close()
}

// Nested returns a child Session for a subquery: same directory and
// scratch namespace (subqueries are part of the same statement, so
// they share its scratch lifetime), but with Subselect set so nested
// output suppresses headers and row counts.
func (s *Session) Nested() *Session {
	return &Session{
		Dir:       s.Dir,
		Quiet:     s.Quiet,
		Subselect: true,
		Scratch:   s.Scratch,
	}
}

// WithTable returns a copy of s scoped to the given current table.
func (s *Session) WithTable(table string) *Session {
	cp := *s
	cp.CurrentTable = table
	return &cp
}
