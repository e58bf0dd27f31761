// pkg/sql/parser/cursor.go
package parser

import (
	"strings"

	"github.com/tnm/shql/pkg/errs"
	"github.com/tnm/shql/pkg/token"
)

// cursor is a read-only walk over a token slice shared by the
// dispatcher and every statement parser.
type cursor struct {
	toks []token.Token
	pos  int
}

func newCursor(toks []token.Token) *cursor {
	return &cursor{toks: toks}
}

// peek returns the current token without consuming it.
func (c *cursor) peek() token.Token {
	return c.toks[c.pos]
}

// peekAt returns the token n positions ahead of the current one,
// clamped to EOF if it runs off the end.
func (c *cursor) peekAt(n int) token.Token {
	i := c.pos + n
	if i >= len(c.toks) {
		return c.toks[len(c.toks)-1] // EOF is always the last token
	}
	return c.toks[i]
}

// next consumes and returns the current token.
func (c *cursor) next() token.Token {
	t := c.toks[c.pos]
	if t.Type != token.EOF {
		c.pos++
	}
	return t
}

// atEnd reports whether only EOF remains.
func (c *cursor) atEnd() bool {
	return c.peek().Type == token.EOF
}

// word lowercases a WORD token's literal; non-WORD tokens yield "".
func word(t token.Token) string {
	if t.Type != token.WORD {
		return ""
	}
	return strings.ToLower(t.Literal)
}

// is reports whether the current token is a WORD matching kw
// case-insensitively.
func (c *cursor) is(kw string) bool {
	return word(c.peek()) == kw
}

// isAt reports whether the token n ahead is a WORD matching kw.
func (c *cursor) isAt(n int, kw string) bool {
	return word(c.peekAt(n)) == kw
}

// unquote strips a STRING token's delimiting quotes.
func unquote(lit string) string {
	if len(lit) >= 2 {
		return lit[1 : len(lit)-1]
	}
	return lit
}

// expectWord consumes the current token, failing unless it is a WORD
// matching kw case-insensitively.
func (c *cursor) expectWord(kw string) error {
	if !c.is(kw) {
		return errs.NewParseError("expected %q, got %q", kw, c.peek().Literal)
	}
	c.next()
	return nil
}

// expectType consumes the current token, failing unless it has type t.
func (c *cursor) expectType(t token.Type, what string) (token.Token, error) {
	if c.peek().Type != t {
		return token.Token{}, errs.NewParseError("expected %s, got %q", what, c.peek().Literal)
	}
	return c.next(), nil
}

// nextName consumes a WORD token and returns its literal text,
// unmodified: identifiers are case-preserving.
func (c *cursor) nextName(what string) (string, error) {
	if c.peek().Type != token.WORD {
		return "", errs.NewParseError("expected %s, got %q", what, c.peek().Literal)
	}
	return c.next().Literal, nil
}
