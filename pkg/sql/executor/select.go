// pkg/sql/executor/select.go
package executor

import (
	"sort"
	"strings"

	"github.com/tnm/shql/pkg/errs"
	"github.com/tnm/shql/pkg/predicate"
	"github.com/tnm/shql/pkg/schema"
	"github.com/tnm/shql/pkg/session"
	"github.com/tnm/shql/pkg/sql/parser"
	"github.com/tnm/shql/pkg/storage"
)

func (e *Executor) execSelect(sess *session.Session, stmt *parser.SelectStmt) (*Result, error) {
	result, err := e.execSelectOne(sess, stmt)
	if err != nil {
		return nil, err
	}
	if stmt.Union == nil {
		return result, nil
	}
	other, err := e.execSelectOne(sess, stmt.Union)
	if err != nil {
		return nil, err
	}
	return unionResults(result, other)
}

// execSelectOne runs a single (non-UNION) SELECT: view expansion,
// left-to-right sort-merge joins over the FROM list, the residual
// WHERE filter, projection or aggregation, DISTINCT and ORDER BY.
func (e *Executor) execSelectOne(sess *session.Session, stmt *parser.SelectStmt) (*Result, error) {
	tables, where, err := e.expandViews(sess, stmt.From, stmt.Where)
	if err != nil {
		return nil, err
	}
	if len(tables) == 0 {
		return nil, errs.NewParseError("select has no FROM tables")
	}
	sess = sess.WithTable(tables[0])

	resolver, err := storage.OpenSchema(sess.Dir, tables[0])
	if err != nil {
		return nil, err
	}
	rows, err := storage.ReadAll(sess.Dir, tables[0])
	if err != nil {
		return nil, err
	}
	records := recordsToRows(rows)

	for _, next := range tables[1:] {
		nextResolver, err := storage.OpenSchema(sess.Dir, next)
		if err != nil {
			return nil, err
		}
		nextRows, err := storage.ReadAll(sess.Dir, next)
		if err != nil {
			return nil, err
		}
		pairs, residual := predicate.FindJoinKeys(where, resolver, nextResolver)
		if len(pairs) == 0 {
			return nil, errs.NewJoinOrderError()
		}
		records, err = e.sortMergeJoin(sess, records, recordsToRows(nextRows), pairs)
		if err != nil {
			return nil, err
		}
		resolver = resolver.Concat(nextResolver)
		where = residual
	}

	pred, err := predicate.Compile(where, resolver, func(sub *parser.SelectStmt) ([][]string, error) {
		return e.runSubquery(sess, sub)
	})
	if err != nil {
		return nil, err
	}

	var filtered [][]string
	for _, rec := range records {
		ok, err := pred(rec)
		if err != nil {
			return nil, err
		}
		if ok {
			filtered = append(filtered, rec)
		}
	}

	if hasAggregate(stmt.Columns) {
		return e.execAggregate(stmt, resolver, filtered)
	}

	cols, projected, err := project(stmt.Columns, resolver, filtered)
	if err != nil {
		return nil, err
	}

	if stmt.Distinct {
		projected = distinctRows(projected)
	}

	if len(stmt.OrderBy) > 0 {
		if err := orderRows(projected, cols, stmt.OrderBy); err != nil {
			return nil, err
		}
	}

	return &Result{HasRows: true, Columns: cols, Rows: projected}, nil
}

func recordsToRows(recs []storage.Record) [][]string {
	out := make([][]string, len(recs))
	for i, r := range recs {
		out[i] = []string(r)
	}
	return out
}

func hasAggregate(columns []parser.SelectColumn) bool {
	for _, c := range columns {
		if c.Agg != "" {
			return true
		}
	}
	return false
}

// project turns the SELECT column list into output column names and
// projected rows. An empty list, or a first entry with Star set, means
// "*".
func project(columns []parser.SelectColumn, resolver *schema.Resolver, rows [][]string) ([]string, [][]string, error) {
	if len(columns) == 0 || columns[0].Star {
		return resolver.Names(), rows, nil
	}

	idxs := make([]int, len(columns))
	names := make([]string, len(columns))
	for i, c := range columns {
		idx, ok := resolver.Lookup(c.Name)
		if !ok {
			return nil, nil, &errs.NotFoundError{Kind: "column", Name: c.Name}
		}
		idxs[i] = idx
		names[i] = c.Name
	}

	out := make([][]string, len(rows))
	for i, row := range rows {
		projected := make([]string, len(idxs))
		for j, idx := range idxs {
			if idx < len(row) {
				projected[j] = row[idx]
			}
		}
		out[i] = projected
	}
	return names, out, nil
}

// distinctRows removes duplicate rows, preserving the order of first
// occurrence.
func distinctRows(rows [][]string) [][]string {
	seen := make(map[string]bool, len(rows))
	out := make([][]string, 0, len(rows))
	for _, row := range rows {
		key := strings.Join(row, "\x1f")
		if seen[key] {
			continue
		}
		seen[key] = true
		out = append(out, row)
	}
	return out
}

// orderRows sorts rows in place by cols's named ORDER BY terms,
// stably, honoring each term's "num" and desc/asc modifiers. Without
// "num" the comparison is plain lexicographic string ordering, not the
// numeric-auto-detecting rule WHERE clauses use, so a mixed column
// like "10", "9", "Carol" sorts as strings.
func orderRows(rows [][]string, cols []string, terms []parser.OrderTerm) error {
	positions := make(map[string]int, len(cols))
	for i, c := range cols {
		positions[c] = i
	}

	type orderKey struct {
		idx     int
		numeric bool
		desc    bool
	}
	keys := make([]orderKey, len(terms))
	for i, t := range terms {
		idx, ok := positions[t.Column]
		if !ok {
			return &errs.NotFoundError{Kind: "column", Name: t.Column}
		}
		keys[i] = orderKey{idx: idx, numeric: t.Numeric, desc: t.Desc}
	}

	sort.SliceStable(rows, func(i, j int) bool {
		for _, k := range keys {
			a, b := rows[i][k.idx], rows[j][k.idx]
			if a == b {
				continue
			}
			var less bool
			if k.numeric {
				af, _ := predicate.Numeric(a)
				bf, _ := predicate.Numeric(b)
				less = af < bf
			} else {
				less = predicate.StringLess(a, b)
			}
			if k.desc {
				return !less
			}
			return less
		}
		return false
	})
	return nil
}

// unionResults combines two SELECTs' results, deduplicating the
// combined row set. Mismatched column counts are rejected rather than
// silently padded.
func unionResults(a, b *Result) (*Result, error) {
	if len(a.Columns) != len(b.Columns) {
		return nil, errs.NewArityError("union requires matching column counts, got %d and %d", len(a.Columns), len(b.Columns))
	}
	all := make([][]string, 0, len(a.Rows)+len(b.Rows))
	all = append(all, a.Rows...)
	all = append(all, b.Rows...)
	return &Result{HasRows: true, Columns: a.Columns, Rows: distinctRows(all)}, nil
}
