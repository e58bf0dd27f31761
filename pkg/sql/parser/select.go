// pkg/sql/parser/select.go
package parser

import (
	"strings"

	"github.com/tnm/shql/pkg/errs"
	"github.com/tnm/shql/pkg/token"
)

func parseSelect(c *cursor) (Statement, error) {
	return parseSelectStmt(c)
}

// parseSelectStmt parses the body of a SELECT, shared by top-level
// SELECT statements and embedded subqueries.
func parseSelectStmt(c *cursor) (*SelectStmt, error) {
	if err := c.expectWord("select"); err != nil {
		return nil, err
	}

	stmt := &SelectStmt{}
	if c.is("distinct") {
		stmt.Distinct = true
		c.next()
	}

	cols, err := parseSelectList(c)
	if err != nil {
		return nil, err
	}
	stmt.Columns = cols

	if err := c.expectWord("from"); err != nil {
		return nil, err
	}
	tables, err := parseTableList(c)
	if err != nil {
		return nil, err
	}
	stmt.From = tables

	if c.is("where") {
		c.next()
		where, err := parseWhereExpr(c)
		if err != nil {
			return nil, err
		}
		stmt.Where = where
	}

	if c.is("order") {
		c.next()
		if err := c.expectWord("by"); err != nil {
			return nil, err
		}
		order, err := parseOrderList(c)
		if err != nil {
			return nil, err
		}
		stmt.OrderBy = order
	}

	if c.is("union") {
		c.next()
		union, err := parseSelectStmt(c)
		if err != nil {
			return nil, err
		}
		stmt.Union = union
	}

	return stmt, nil
}

func parseSelectList(c *cursor) ([]SelectColumn, error) {
	if c.peek().Type == token.STAR {
		c.next()
		return []SelectColumn{{Star: true}}, nil
	}

	var cols []SelectColumn
	for !c.atEnd() && !c.is("from") {
		if c.peek().Type == token.WORD && token.IsAggregateName(c.peek().Literal) && c.peekAt(1).Type == token.LPAREN {
			agg := strings.ToLower(c.next().Literal)
			c.next() // (
			var aggCol string
			if c.peek().Type == token.STAR {
				aggCol = "*"
				c.next()
			} else {
				name, err := c.nextName("aggregate column")
				if err != nil {
					return nil, err
				}
				aggCol = name
			}
			if _, err := c.expectType(token.RPAREN, ")"); err != nil {
				return nil, err
			}
			cols = append(cols, SelectColumn{Agg: agg, AggCol: aggCol})
			continue
		}

		if c.peek().Type != token.WORD {
			return nil, errs.NewParseError("expected a column name, got %q", c.peek().Literal)
		}
		cols = append(cols, SelectColumn{Name: c.next().Literal})
	}

	if len(cols) == 0 {
		return nil, errs.NewParseError("expected a select list")
	}
	return cols, nil
}

func parseTableList(c *cursor) ([]string, error) {
	var tables []string
	for !c.atEnd() && !c.is("where") && !c.is("order") && !c.is("union") {
		if c.peek().Type != token.WORD {
			break
		}
		tables = append(tables, c.next().Literal)
	}
	if len(tables) == 0 {
		return nil, errs.NewParseError("expected a table list")
	}
	return tables, nil
}

func parseOrderList(c *cursor) ([]OrderTerm, error) {
	var terms []OrderTerm
	for !c.atEnd() && !c.is("union") {
		if c.peek().Type != token.WORD {
			break
		}
		t := OrderTerm{Column: c.next().Literal}
		for {
			switch {
			case c.is("num"):
				t.Numeric = true
				c.next()
			case c.is("asc"):
				c.next()
			case c.is("desc"):
				t.Desc = true
				c.next()
			default:
				goto doneModifiers
			}
		}
	doneModifiers:
		terms = append(terms, t)
	}
	if len(terms) == 0 {
		return nil, errs.NewParseError("expected an order-by list")
	}
	return terms, nil
}
