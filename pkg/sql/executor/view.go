// pkg/sql/executor/view.go
package executor

import (
	"github.com/tnm/shql/pkg/errs"
	"github.com/tnm/shql/pkg/session"
	"github.com/tnm/shql/pkg/sql/parser"
	"github.com/tnm/shql/pkg/storage"
	"github.com/tnm/shql/pkg/view"
)

// expandViews rewrites a FROM list at query time: any entry that names
// a saved view is replaced by its underlying tables, and the view's
// stored equi-join clauses are folded into the WHERE expression as
// additional top-level AND terms. Views are never materialized.
// Entries that are ordinary tables pass through unchanged.
func (e *Executor) expandViews(sess *session.Session, from []string, where parser.Expr) ([]string, parser.Expr, error) {
	var tables []string
	for _, name := range from {
		exists, err := view.Exists(sess.Dir, name)
		if err != nil {
			return nil, nil, err
		}
		if !exists {
			tables = append(tables, name)
			continue
		}

		def, err := view.Load(sess.Dir, name)
		if err != nil {
			return nil, nil, err
		}
		tables = append(tables, def.Tables...)
		for _, j := range def.Joins {
			clause := &parser.CompareExpr{
				Left:  parser.Operand{Ident: j.LeftCol},
				Op:    parser.OpEQ,
				Right: parser.Operand{Ident: j.RightCol},
			}
			if where == nil {
				where = clause
			} else {
				where = &parser.AndExpr{Left: where, Right: clause}
			}
		}
	}
	return tables, where, nil
}

// execCreateView implements CREATE VIEW name ( t1.k = t2.k, ... ): the
// view's table list is derived from the tables named by its join
// clauses, in first-appearance order. Every referenced table must
// already exist, checked up front the same way the other mutators
// validate their table argument before touching disk.
func (e *Executor) execCreateView(sess *session.Session, stmt *parser.CreateViewStmt) (*Result, error) {
	def := view.Definition{Name: stmt.View}
	seen := make(map[string]bool)
	for _, j := range stmt.Joins {
		if !seen[j.LeftTable] {
			if err := requireTable(sess, j.LeftTable); err != nil {
				return nil, err
			}
			def.Tables = append(def.Tables, j.LeftTable)
			seen[j.LeftTable] = true
		}
		if !seen[j.RightTable] {
			if err := requireTable(sess, j.RightTable); err != nil {
				return nil, err
			}
			def.Tables = append(def.Tables, j.RightTable)
			seen[j.RightTable] = true
		}
		def.Joins = append(def.Joins, view.Join{
			LeftTable:  j.LeftTable,
			LeftCol:    j.LeftCol,
			RightTable: j.RightTable,
			RightCol:   j.RightCol,
		})
	}
	if err := view.Create(sess.Dir, def); err != nil {
		return nil, err
	}
	return &Result{}, nil
}

// requireTable fails with a NotFoundError unless table exists in the
// session's database directory.
func requireTable(sess *session.Session, table string) error {
	exists, err := storage.Exists(sess.Dir, table)
	if err != nil {
		return err
	}
	if !exists {
		return &errs.NotFoundError{Kind: "table", Name: table}
	}
	return nil
}

func (e *Executor) execDropView(sess *session.Session, stmt *parser.DropViewStmt) (*Result, error) {
	if err := view.Drop(sess.Dir, stmt.View); err != nil {
		return nil, err
	}
	return &Result{}, nil
}
