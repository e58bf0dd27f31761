// pkg/predicate/join.go
package predicate

import (
	"github.com/tnm/shql/pkg/schema"
	"github.com/tnm/shql/pkg/sql/parser"
)

// JoinKeyPair is one equi-join key extracted from a WHERE clause: a
// column position in the accumulated relation (left) and one in the
// next FROM-list table (right).
type JoinKeyPair struct {
	LeftIndex, RightIndex int
}

// FindJoinKeys walks the top-level AND chain of expr (OR/NOT
// subtrees are never safe to split across a join boundary, so they
// are left untouched) and pulls out every "a = b" clause whose two
// sides resolve one each into left and right. It returns the
// extracted pairs and the residual expression with those clauses
// removed, so they are not re-applied as a filter after the join
// merge.
func FindJoinKeys(expr parser.Expr, left, right *schema.Resolver) ([]JoinKeyPair, parser.Expr) {
	if expr == nil {
		return nil, nil
	}

	clauses := flattenAnd(expr)
	var pairs []JoinKeyPair
	var residual []parser.Expr

	for _, cl := range clauses {
		cmp, ok := cl.(*parser.CompareExpr)
		if ok && cmp.Op == parser.OpEQ {
			if pair, ok := tryJoinPair(cmp, left, right); ok {
				pairs = append(pairs, pair)
				continue
			}
		}
		residual = append(residual, cl)
	}

	return pairs, rebuildAnd(residual)
}

func flattenAnd(expr parser.Expr) []parser.Expr {
	if and, ok := expr.(*parser.AndExpr); ok {
		return append(flattenAnd(and.Left), flattenAnd(and.Right)...)
	}
	return []parser.Expr{expr}
}

func rebuildAnd(clauses []parser.Expr) parser.Expr {
	if len(clauses) == 0 {
		return nil
	}
	result := clauses[0]
	for _, cl := range clauses[1:] {
		result = &parser.AndExpr{Left: result, Right: cl}
	}
	return result
}

// tryJoinPair checks whether cmp is an equality between one field of
// left and one field of right, in either order. Literal operands
// (quoted strings, scalar subqueries) never qualify as join keys.
func tryJoinPair(cmp *parser.CompareExpr, left, right *schema.Resolver) (JoinKeyPair, bool) {
	if pair, ok := matchSides(cmp.Left, cmp.Right, left, right); ok {
		return pair, true
	}
	if pair, ok := matchSides(cmp.Right, cmp.Left, left, right); ok {
		return JoinKeyPair{LeftIndex: pair.LeftIndex, RightIndex: pair.RightIndex}, true
	}
	return JoinKeyPair{}, false
}

func matchSides(a, b parser.Operand, left, right *schema.Resolver) (JoinKeyPair, bool) {
	if a.IsStr || a.Sub != nil || b.IsStr || b.Sub != nil {
		return JoinKeyPair{}, false
	}
	li, lok := left.Lookup(a.Ident)
	ri, rok := right.Lookup(b.Ident)
	if lok && rok {
		return JoinKeyPair{LeftIndex: li, RightIndex: ri}, true
	}
	return JoinKeyPair{}, false
}
