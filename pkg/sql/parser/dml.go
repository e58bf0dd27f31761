// pkg/sql/parser/dml.go
package parser

import (
	"github.com/tnm/shql/pkg/errs"
	"github.com/tnm/shql/pkg/token"
)

func parseInsert(c *cursor) (Statement, error) {
	if err := c.expectWord("insert"); err != nil {
		return nil, err
	}
	if err := c.expectWord("into"); err != nil {
		return nil, err
	}
	table, err := c.nextName("table name")
	if err != nil {
		return nil, err
	}
	if err := c.expectWord("values"); err != nil {
		return nil, err
	}
	if _, err := c.expectType(token.LPAREN, "("); err != nil {
		return nil, err
	}

	var vals []Operand
	for !c.atEnd() && c.peek().Type != token.RPAREN {
		v, err := parseOperand(c)
		if err != nil {
			return nil, err
		}
		vals = append(vals, v)
	}
	if _, err := c.expectType(token.RPAREN, ")"); err != nil {
		return nil, err
	}
	if len(vals) == 0 {
		return nil, errs.NewParseError("expected at least one value")
	}

	return &InsertStmt{Table: table, Values: vals}, nil
}

func parseUpdate(c *cursor) (Statement, error) {
	if err := c.expectWord("update"); err != nil {
		return nil, err
	}
	table, err := c.nextName("table name")
	if err != nil {
		return nil, err
	}
	if err := c.expectWord("set"); err != nil {
		return nil, err
	}

	var assigns []Assignment
	for {
		col, err := c.nextName("column name")
		if err != nil {
			return nil, err
		}
		if _, err := c.expectType(token.EQ, "="); err != nil {
			return nil, err
		}
		val, err := parseOperand(c)
		if err != nil {
			return nil, err
		}
		assigns = append(assigns, Assignment{Column: col, Value: val})

		if c.atEnd() || c.is("where") {
			break
		}
	}

	var where Expr
	if c.is("where") {
		c.next()
		where, err = parseWhereExpr(c)
		if err != nil {
			return nil, err
		}
	}

	return &UpdateStmt{Table: table, Set: assigns, Where: where}, nil
}

func parseDelete(c *cursor) (Statement, error) {
	if err := c.expectWord("delete"); err != nil {
		return nil, err
	}
	if err := c.expectWord("from"); err != nil {
		return nil, err
	}
	table, err := c.nextName("table name")
	if err != nil {
		return nil, err
	}

	var where Expr
	if c.is("where") {
		c.next()
		where, err = parseWhereExpr(c)
		if err != nil {
			return nil, err
		}
	}

	return &DeleteStmt{Table: table, Where: where}, nil
}
