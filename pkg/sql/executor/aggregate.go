// pkg/sql/executor/aggregate.go
package executor

import (
	"strconv"

	"github.com/tnm/shql/pkg/errs"
	"github.com/tnm/shql/pkg/predicate"
	"github.com/tnm/shql/pkg/schema"
	"github.com/tnm/shql/pkg/sql/parser"
)

// execAggregate computes one output row of aggregate values, one per
// SELECT column. Every column must be an aggregate: a plain column in
// the list has no aggregate argument to resolve and fails with a
// NotFoundError. ORDER BY and DISTINCT do not apply to an aggregate
// result and are ignored by the caller before reaching here.
func (e *Executor) execAggregate(stmt *parser.SelectStmt, resolver *schema.Resolver, rows [][]string) (*Result, error) {
	names := make([]string, len(stmt.Columns))
	values := make([]string, len(stmt.Columns))
	for i, c := range stmt.Columns {
		name := c.Name
		if c.Agg != "" {
			name = c.Agg + "(" + c.AggCol + ")"
		}
		v, err := computeAggregate(c, resolver, rows)
		if err != nil {
			return nil, err
		}
		names[i] = name
		values[i] = v
	}
	return &Result{HasRows: true, Columns: names, Rows: [][]string{values}}, nil
}

// computeAggregate handles each aggregate's own empty-field rule:
// COUNT(col) excludes empty fields, SUM/AVG treat them as zero, and
// MIN/MAX skip them since there is no zero-like value to fall back to.
func computeAggregate(c parser.SelectColumn, resolver *schema.Resolver, rows [][]string) (string, error) {
	if c.Agg == "count" && c.AggCol == "*" {
		return strconv.Itoa(len(rows)), nil
	}

	idx, ok := resolver.Lookup(c.AggCol)
	if !ok {
		return "", &errs.NotFoundError{Kind: "column", Name: c.AggCol}
	}

	switch c.Agg {
	case "count":
		n := 0
		for _, row := range rows {
			if idx < len(row) && row[idx] != "" {
				n++
			}
		}
		return strconv.Itoa(n), nil
	case "sum", "avg":
		// A non-numeric or empty field counts as zero rather than
		// being excluded.
		var sum float64
		for _, row := range rows {
			if idx >= len(row) {
				continue
			}
			if f, ok := predicate.Numeric(row[idx]); ok {
				sum += f
			}
		}
		if c.Agg == "sum" {
			return formatNumber(sum), nil
		}
		if len(rows) == 0 {
			return "0", nil
		}
		return formatNumber(sum / float64(len(rows))), nil
	case "min":
		return extremum(rows, idx, true), nil
	case "max":
		return extremum(rows, idx, false), nil
	default:
		return "", errs.NewParseError("unknown aggregate %q", c.Agg)
	}
}

func extremum(rows [][]string, idx int, wantMin bool) string {
	var best string
	has := false
	for _, row := range rows {
		if idx >= len(row) || row[idx] == "" {
			continue
		}
		v := row[idx]
		switch {
		case !has:
			best, has = v, true
		case wantMin && predicate.Less(v, best):
			best = v
		case !wantMin && predicate.Less(best, v):
			best = v
		}
	}
	return best
}

func formatNumber(f float64) string {
	if f == float64(int64(f)) {
		return strconv.FormatInt(int64(f), 10)
	}
	return strconv.FormatFloat(f, 'f', -1, 64)
}
