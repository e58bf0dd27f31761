// pkg/sql/parser/ddl.go
package parser

import (
	"strconv"

	"github.com/tnm/shql/pkg/errs"
	"github.com/tnm/shql/pkg/token"
)

func parseCreateTable(c *cursor) (Statement, error) {
	c.next() // create
	c.next() // table
	table, err := c.nextName("table name")
	if err != nil {
		return nil, err
	}
	if _, err := c.expectType(token.LPAREN, "("); err != nil {
		return nil, err
	}

	var cols []ColumnDef
	for !c.atEnd() && c.peek().Type != token.RPAREN {
		name, err := c.nextName("column name")
		if err != nil {
			return nil, err
		}
		widthTok, err := c.expectType(token.WORD, "column width")
		if err != nil {
			return nil, err
		}
		width, convErr := strconv.Atoi(widthTok.Literal)
		if convErr != nil {
			return nil, errs.NewParseError("bad column width %q", widthTok.Literal)
		}
		cols = append(cols, ColumnDef{Name: name, Width: width})
	}
	if _, err := c.expectType(token.RPAREN, ")"); err != nil {
		return nil, err
	}
	if len(cols) == 0 {
		return nil, errs.NewParseError("expected at least one column")
	}

	return &CreateTableStmt{Table: table, Columns: cols}, nil
}

func parseDropTable(c *cursor) (Statement, error) {
	c.next() // drop
	c.next() // table
	table, err := c.nextName("table name")
	if err != nil {
		return nil, err
	}
	return &DropTableStmt{Table: table}, nil
}

func parseCreateView(c *cursor) (Statement, error) {
	c.next() // create
	c.next() // view
	view, err := c.nextName("view name")
	if err != nil {
		return nil, err
	}
	if _, err := c.expectType(token.LPAREN, "("); err != nil {
		return nil, err
	}

	var joins []JoinPair
	for !c.atEnd() && c.peek().Type != token.RPAREN {
		leftTable, err := c.nextName("table name")
		if err != nil {
			return nil, err
		}
		if _, err := c.expectType(token.DOT, "."); err != nil {
			return nil, err
		}
		leftCol, err := c.nextName("column name")
		if err != nil {
			return nil, err
		}
		if _, err := c.expectType(token.EQ, "="); err != nil {
			return nil, err
		}
		rightTable, err := c.nextName("table name")
		if err != nil {
			return nil, err
		}
		if _, err := c.expectType(token.DOT, "."); err != nil {
			return nil, err
		}
		rightCol, err := c.nextName("column name")
		if err != nil {
			return nil, err
		}
		joins = append(joins, JoinPair{
			LeftTable: leftTable, LeftCol: leftCol,
			RightTable: rightTable, RightCol: rightCol,
		})
	}
	if _, err := c.expectType(token.RPAREN, ")"); err != nil {
		return nil, err
	}
	if len(joins) == 0 {
		return nil, errs.NewParseError("expected at least one join clause")
	}

	return &CreateViewStmt{View: view, Joins: joins}, nil
}

func parseDropView(c *cursor) (Statement, error) {
	c.next() // drop
	c.next() // view
	view, err := c.nextName("view name")
	if err != nil {
		return nil, err
	}
	return &DropViewStmt{View: view}, nil
}
