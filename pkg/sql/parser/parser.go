// pkg/sql/parser/parser.go
package parser

import (
	"github.com/tnm/shql/pkg/errs"
	"github.com/tnm/shql/pkg/lexer"
	"github.com/tnm/shql/pkg/token"
)

// Parse tokenizes text and dispatches to the statement parser matching
// its leading tokens.
func Parse(text string) (Statement, error) {
	toks, err := lexer.Tokenize(text)
	if err != nil {
		return nil, err
	}
	return ParseTokens(toks)
}

// ParseTokens dispatches an already-tokenized statement.
func ParseTokens(toks []token.Token) (Statement, error) {
	c := newCursor(toks)
	if c.atEnd() {
		return nil, errs.NewParseError("empty statement")
	}

	switch {
	case c.is("select"):
		return parseSelect(c)
	case c.is("insert") && c.isAt(1, "into"):
		return parseInsert(c)
	case c.is("update"):
		return parseUpdate(c)
	case c.is("delete") && c.isAt(1, "from"):
		return parseDelete(c)
	case c.is("create") && c.isAt(1, "table"):
		return parseCreateTable(c)
	case c.is("create") && c.isAt(1, "view"):
		return parseCreateView(c)
	case c.is("drop") && c.isAt(1, "table"):
		return parseDropTable(c)
	case c.is("drop") && c.isAt(1, "view"):
		return parseDropView(c)
	case c.is("help"):
		return parseHelp(c)
	case c.is("print"):
		return parsePrint(c)
	default:
		return nil, errs.NewParseError("unknown command")
	}
}

func parseHelp(c *cursor) (Statement, error) {
	c.next() // help
	var args []string
	for !c.atEnd() {
		args = append(args, c.next().Literal)
	}
	return &HelpStmt{Args: args}, nil
}

func parsePrint(c *cursor) (Statement, error) {
	c.next() // print
	var args []string
	for !c.atEnd() {
		args = append(args, c.next().Literal)
	}
	return &PrintStmt{Args: args}, nil
}
