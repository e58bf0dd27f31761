// pkg/predicate/predicate.go
package predicate

import (
	"github.com/tnm/shql/pkg/errs"
	"github.com/tnm/shql/pkg/schema"
	"github.com/tnm/shql/pkg/sql/parser"
)

// Predicate is a compiled boolean test over a single record. It
// returns an error only when it embeds a subquery that failed on
// first use.
type Predicate func(rec []string) (bool, error)

// SubqueryRunner executes an embedded SELECT and returns its rows.
// The executor package supplies the real implementation; this package
// only depends on the function shape, keeping predicate compilation
// free of any dependency on the executor.
type SubqueryRunner func(sub *parser.SelectStmt) ([][]string, error)

// Compile translates a WHERE-clause expression into a Predicate,
// resolving identifiers against resolver. An identifier resolver miss
// becomes a literal string equal to its text, a convenience for
// unquoted right-hand sides. A nil expr compiles to an always-true
// predicate, matching a statement with no WHERE clause.
func Compile(expr parser.Expr, resolver *schema.Resolver, runSub SubqueryRunner) (Predicate, error) {
	if expr == nil {
		return func([]string) (bool, error) { return true, nil }, nil
	}

	switch e := expr.(type) {
	case *parser.AndExpr:
		l, err := Compile(e.Left, resolver, runSub)
		if err != nil {
			return nil, err
		}
		r, err := Compile(e.Right, resolver, runSub)
		if err != nil {
			return nil, err
		}
		return func(rec []string) (bool, error) {
			lv, err := l(rec)
			if err != nil || !lv {
				return false, err
			}
			return r(rec)
		}, nil

	case *parser.OrExpr:
		l, err := Compile(e.Left, resolver, runSub)
		if err != nil {
			return nil, err
		}
		r, err := Compile(e.Right, resolver, runSub)
		if err != nil {
			return nil, err
		}
		return func(rec []string) (bool, error) {
			lv, err := l(rec)
			if err != nil {
				return false, err
			}
			if lv {
				return true, nil
			}
			return r(rec)
		}, nil

	case *parser.NotExpr:
		inner, err := Compile(e.Inner, resolver, runSub)
		if err != nil {
			return nil, err
		}
		return func(rec []string) (bool, error) {
			v, err := inner(rec)
			return !v, err
		}, nil

	case *parser.CompareExpr:
		return compileCompare(e, resolver, runSub)

	case *parser.InExpr:
		return compileIn(e, resolver, runSub)

	default:
		return nil, errs.NewParseError("unsupported expression node %T", expr)
	}
}

func compileCompare(e *parser.CompareExpr, resolver *schema.Resolver, runSub SubqueryRunner) (Predicate, error) {
	lg, err := resolveOperand(e.Left, resolver, runSub)
	if err != nil {
		return nil, err
	}
	rg, err := resolveOperand(e.Right, resolver, runSub)
	if err != nil {
		return nil, err
	}
	op := e.Op
	return func(rec []string) (bool, error) {
		lv, err := lg(rec)
		if err != nil {
			return false, err
		}
		rv, err := rg(rec)
		if err != nil {
			return false, err
		}
		return compareValues(lv, rv, op), nil
	}, nil
}

func compileIn(e *parser.InExpr, resolver *schema.Resolver, runSub SubqueryRunner) (Predicate, error) {
	lg, err := resolveOperand(e.Left, resolver, runSub)
	if err != nil {
		return nil, err
	}

	var (
		done      bool
		cacheErr  error
		cachedSet map[string]bool
	)
	load := func() {
		rows, err := runSub(e.Sub)
		if err != nil {
			cacheErr = err
			return
		}
		cachedSet = make(map[string]bool, len(rows))
		for _, row := range rows {
			if len(row) != 1 {
				cacheErr = errs.NewSubqueryError("IN subquery must yield exactly one column")
				return
			}
			cachedSet[row[0]] = true
		}
	}

	return func(rec []string) (bool, error) {
		if !done {
			load()
			done = true
		}
		if cacheErr != nil {
			return false, cacheErr
		}
		v, err := lg(rec)
		if err != nil {
			return false, err
		}
		found := cachedSet[v]
		if e.Negate {
			return !found, nil
		}
		return found, nil
	}, nil
}

// valueGetter extracts one operand's string value for a given record.
type valueGetter func(rec []string) (string, error)

// resolveOperand turns a parsed Operand into a valueGetter: a field
// reference when the identifier resolves against resolver, a constant
// literal otherwise (quoted string, bareword fallback, or a cached
// scalar subquery result).
func resolveOperand(op parser.Operand, resolver *schema.Resolver, runSub SubqueryRunner) (valueGetter, error) {
	switch {
	case op.Sub != nil:
		var (
			done     bool
			cacheErr error
			cached   string
		)
		return func([]string) (string, error) {
			if !done {
				rows, err := runSub(op.Sub)
				if err != nil {
					cacheErr = err
				} else if len(rows) != 1 || len(rows[0]) != 1 {
					cacheErr = errs.NewSubqueryError("scalar subquery must return exactly one row and one column")
				} else {
					cached = rows[0][0]
				}
				done = true
			}
			return cached, cacheErr
		}, nil

	case op.IsStr:
		val := op.Str
		return func([]string) (string, error) { return val, nil }, nil

	default:
		if idx, ok := resolver.Lookup(op.Ident); ok {
			return func(rec []string) (string, error) {
				if idx >= len(rec) {
					return "", nil
				}
				return rec[idx], nil
			}, nil
		}
		val := op.Ident
		return func([]string) (string, error) { return val, nil }, nil
	}
}
