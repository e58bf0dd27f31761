// pkg/predicate/compare.go
package predicate

import (
	"strconv"

	"github.com/tnm/shql/pkg/sql/parser"
)

// compareValues is WHERE's comparison rule: string comparison by
// default, except that when both sides parse as numbers the
// comparison is done numerically instead. Equal string representations
// always compare equal either way, so this never contradicts a plain
// string comparison on equality, only on ordering.
func compareValues(l, r string, op parser.CompareOp) bool {
	if lf, lok := parseNumber(l); lok {
		if rf, rok := parseNumber(r); rok {
			return numericCompare(lf, rf, op)
		}
	}
	return stringCompare(l, r, op)
}

func parseNumber(s string) (float64, bool) {
	f, err := strconv.ParseFloat(s, 64)
	return f, err == nil
}

func numericCompare(l, r float64, op parser.CompareOp) bool {
	switch op {
	case parser.OpEQ:
		return l == r
	case parser.OpNE:
		return l != r
	case parser.OpLT:
		return l < r
	case parser.OpGT:
		return l > r
	case parser.OpLE:
		return l <= r
	case parser.OpGE:
		return l >= r
	default:
		return false
	}
}

func stringCompare(l, r string, op parser.CompareOp) bool {
	switch op {
	case parser.OpEQ:
		return l == r
	case parser.OpNE:
		return l != r
	case parser.OpLT:
		return l < r
	case parser.OpGT:
		return l > r
	case parser.OpLE:
		return l <= r
	case parser.OpGE:
		return l >= r
	default:
		return false
	}
}

// Numeric parses s as a number and reports whether it is one, using
// the same number test as WHERE comparisons. ORDER BY's explicit "num"
// modifier and the SUM/AVG aggregates use it.
func Numeric(s string) (float64, bool) { return parseNumber(s) }

// Less reports whether l < r under the same numeric-or-string rule
// compareValues uses, for callers (MIN/MAX) that need a less-than
// test rather than a full CompareExpr. ORDER BY without an explicit
// "num" modifier must NOT use this: it needs pure string ordering
// regardless of what the field text looks like. Use StringLess there.
func Less(l, r string) bool {
	return compareValues(l, r, parser.OpLT)
}

// StringLess reports whether l < r by plain lexicographic comparison,
// with no numeric auto-detection. This is the default ORDER BY
// comparison when a column carries no "num" modifier: mixed columns
// like "10", "9", "Carol" sort as strings, not by guessing intent from
// the field text.
func StringLess(l, r string) bool {
	return l < r
}
