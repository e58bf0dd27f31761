// pkg/sql/parser/expr.go
package parser

import (
	"github.com/tnm/shql/pkg/errs"
	"github.com/tnm/shql/pkg/token"
)

// parseWhereExpr parses the WHERE-clause grammar: NOT binds tighter
// than AND, AND binds tighter than OR, parentheses override both.
func parseWhereExpr(c *cursor) (Expr, error) {
	return parseOrExpr(c)
}

func parseOrExpr(c *cursor) (Expr, error) {
	left, err := parseAndExpr(c)
	if err != nil {
		return nil, err
	}
	for c.is("or") {
		c.next()
		right, err := parseAndExpr(c)
		if err != nil {
			return nil, err
		}
		left = &OrExpr{Left: left, Right: right}
	}
	return left, nil
}

func parseAndExpr(c *cursor) (Expr, error) {
	left, err := parseNotExpr(c)
	if err != nil {
		return nil, err
	}
	for c.is("and") {
		c.next()
		right, err := parseNotExpr(c)
		if err != nil {
			return nil, err
		}
		left = &AndExpr{Left: left, Right: right}
	}
	return left, nil
}

func parseNotExpr(c *cursor) (Expr, error) {
	if c.is("not") {
		c.next()
		inner, err := parsePrimaryExpr(c)
		if err != nil {
			return nil, err
		}
		return &NotExpr{Inner: inner}, nil
	}
	return parsePrimaryExpr(c)
}

func parsePrimaryExpr(c *cursor) (Expr, error) {
	if c.peek().Type == token.LPAREN {
		c.next()
		inner, err := parseOrExpr(c)
		if err != nil {
			return nil, err
		}
		if _, err := c.expectType(token.RPAREN, ")"); err != nil {
			return nil, err
		}
		return inner, nil
	}

	left, err := parseOperand(c)
	if err != nil {
		return nil, err
	}

	negate := false
	if c.is("not") && c.isAt(1, "in") {
		negate = true
		c.next()
	}
	if c.is("in") {
		c.next()
		sub, err := parseSubquery(c)
		if err != nil {
			return nil, err
		}
		return &InExpr{Left: left, Negate: negate, Sub: sub}, nil
	}

	op, err := parseCompareOp(c)
	if err != nil {
		return nil, err
	}

	if c.is("select") {
		sub, err := parseSubquery(c)
		if err != nil {
			return nil, err
		}
		return &CompareExpr{Left: left, Op: op, Right: Operand{Sub: sub}}, nil
	}

	right, err := parseOperand(c)
	if err != nil {
		return nil, err
	}
	return &CompareExpr{Left: left, Op: op, Right: right}, nil
}

// parseOperand reads a single identifier/number or quoted string. A
// value's ultimate meaning (field reference vs literal) is decided
// later by the predicate compiler against a schema resolver.
func parseOperand(c *cursor) (Operand, error) {
	t := c.peek()
	switch t.Type {
	case token.STRING:
		c.next()
		return Operand{Str: unquote(t.Literal), IsStr: true}, nil
	case token.WORD:
		c.next()
		return Operand{Ident: t.Literal}, nil
	default:
		return Operand{}, errs.NewParseError("expected a value, got %q", t.Literal)
	}
}

func parseCompareOp(c *cursor) (CompareOp, error) {
	t := c.next()
	switch t.Type {
	case token.EQ:
		return OpEQ, nil
	case token.NE:
		return OpNE, nil
	case token.LT:
		return OpLT, nil
	case token.GT:
		return OpGT, nil
	case token.LE:
		return OpLE, nil
	case token.GE:
		return OpGE, nil
	default:
		return 0, errs.NewParseError("expected a comparison operator, got %q", t.Literal)
	}
}

// parseSubquery parses an embedded SELECT, which this grammar never
// wraps in parentheses. With no closing delimiter to look for, it
// consumes every remaining token: scalar and IN subqueries are always
// the final element of the enclosing WHERE clause (see DESIGN.md).
func parseSubquery(c *cursor) (*SelectStmt, error) {
	return parseSelectStmt(c)
}
