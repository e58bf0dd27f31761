// pkg/sql/executor/mutate.go
package executor

import (
	"github.com/tnm/shql/pkg/errs"
	"github.com/tnm/shql/pkg/predicate"
	"github.com/tnm/shql/pkg/schema"
	"github.com/tnm/shql/pkg/session"
	"github.com/tnm/shql/pkg/sql/parser"
	"github.com/tnm/shql/pkg/storage"
)

// operandValue resolves an Operand to its string value for a mutator's
// VALUES/SET list: a quoted literal, a bareword/number token taken
// verbatim, or a scalar subquery's single cell.
func (e *Executor) operandValue(sess *session.Session, op parser.Operand) (string, error) {
	switch {
	case op.Sub != nil:
		rows, err := e.runSubquery(sess, op.Sub)
		if err != nil {
			return "", err
		}
		if len(rows) != 1 || len(rows[0]) != 1 {
			return "", errs.NewSubqueryError("scalar subquery must return exactly one row and one column")
		}
		return rows[0][0], nil
	case op.IsStr:
		return op.Str, nil
	default:
		return op.Ident, nil
	}
}

// execInsert implements INSERT INTO name VALUES ( ... ): the flat
// value list is sliced into row-sized groups and each group's length
// must match the table's column count.
func (e *Executor) execInsert(sess *session.Session, stmt *parser.InsertStmt) (*Result, error) {
	sess = sess.WithTable(stmt.Table)
	resolver, err := storage.OpenSchema(sess.Dir, stmt.Table)
	if err != nil {
		return nil, err
	}
	ncols := len(resolver.Columns)
	if ncols == 0 || len(stmt.Values)%ncols != 0 {
		return nil, errs.NewArityError("insert into %s expects a multiple of %d values, got %d", stmt.Table, ncols, len(stmt.Values))
	}

	var records []storage.Record
	for start := 0; start < len(stmt.Values); start += ncols {
		group := stmt.Values[start : start+ncols]
		row := make([]string, ncols)
		for i, op := range group {
			v, err := e.operandValue(sess, op)
			if err != nil {
				return nil, err
			}
			row[i] = v
		}
		records = append(records, storage.Record(row))
	}

	if err := storage.AppendRows(sess.Dir, stmt.Table, records); err != nil {
		return nil, err
	}
	return &Result{RowsAffected: int64(len(records))}, nil
}

// execUpdate implements UPDATE name SET ... [WHERE ...] as a
// predicate-filtered whole-file rewrite; fields are not fixed-width,
// so there is no in-place patch to do instead.
func (e *Executor) execUpdate(sess *session.Session, stmt *parser.UpdateStmt) (*Result, error) {
	sess = sess.WithTable(stmt.Table)
	resolver, err := storage.OpenSchema(sess.Dir, stmt.Table)
	if err != nil {
		return nil, err
	}
	rows, err := storage.ReadAll(sess.Dir, stmt.Table)
	if err != nil {
		return nil, err
	}
	pred, err := predicate.Compile(stmt.Where, resolver, subRunner(e, sess))
	if err != nil {
		return nil, err
	}

	setIdx := make([]int, len(stmt.Set))
	for i, a := range stmt.Set {
		idx, ok := resolver.Lookup(a.Column)
		if !ok {
			return nil, errs.NewArityError("update %s: unknown column %s", stmt.Table, a.Column)
		}
		setIdx[i] = idx
	}

	out := make([]storage.Record, 0, len(rows))
	var affected int64
	for _, rec := range rows {
		row := []string(rec)
		match, err := pred(row)
		if err != nil {
			return nil, err
		}
		if match {
			affected++
			updated := append([]string{}, row...)
			for i, a := range stmt.Set {
				v, err := e.operandValue(sess, a.Value)
				if err != nil {
					return nil, err
				}
				updated[setIdx[i]] = v
			}
			row = updated
		}
		out = append(out, storage.Record(row))
	}

	if err := storage.Rewrite(sess.Dir, stmt.Table, out); err != nil {
		return nil, err
	}
	return &Result{RowsAffected: affected}, nil
}

// execDelete implements DELETE FROM name [WHERE ...], again as a
// whole-file rewrite.
func (e *Executor) execDelete(sess *session.Session, stmt *parser.DeleteStmt) (*Result, error) {
	sess = sess.WithTable(stmt.Table)
	resolver, err := storage.OpenSchema(sess.Dir, stmt.Table)
	if err != nil {
		return nil, err
	}
	rows, err := storage.ReadAll(sess.Dir, stmt.Table)
	if err != nil {
		return nil, err
	}
	pred, err := predicate.Compile(stmt.Where, resolver, subRunner(e, sess))
	if err != nil {
		return nil, err
	}

	out := make([]storage.Record, 0, len(rows))
	var affected int64
	for _, rec := range rows {
		row := []string(rec)
		match, err := pred(row)
		if err != nil {
			return nil, err
		}
		if match {
			affected++
			continue
		}
		out = append(out, rec)
	}

	if err := storage.Rewrite(sess.Dir, stmt.Table, out); err != nil {
		return nil, err
	}
	return &Result{RowsAffected: affected}, nil
}

func (e *Executor) execCreateTable(sess *session.Session, stmt *parser.CreateTableStmt) (*Result, error) {
	cols := make([]schema.Column, len(stmt.Columns))
	for i, c := range stmt.Columns {
		cols[i] = schema.Column{Name: c.Name, Width: c.Width}
	}
	if err := storage.Create(sess.Dir, stmt.Table, cols); err != nil {
		return nil, err
	}
	return &Result{}, nil
}

func (e *Executor) execDropTable(sess *session.Session, stmt *parser.DropTableStmt) (*Result, error) {
	if err := storage.Drop(sess.Dir, stmt.Table); err != nil {
		return nil, err
	}
	return &Result{}, nil
}

// subRunner adapts the executor's own Run to predicate.SubqueryRunner
// for mutators, which compile a WHERE clause the same way SELECT does.
func subRunner(e *Executor, sess *session.Session) predicate.SubqueryRunner {
	return func(sub *parser.SelectStmt) ([][]string, error) {
		return e.runSubquery(sess, sub)
	}
}
