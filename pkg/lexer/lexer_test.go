// pkg/lexer/lexer_test.go
package lexer

import (
	"testing"

	"github.com/tnm/shql/pkg/token"
)

func typesOf(toks []token.Token) []token.Type {
	types := make([]token.Type, len(toks))
	for i, t := range toks {
		types[i] = t.Type
	}
	return types
}

func TestTokenizeBasicSelect(t *testing.T) {
	toks, err := Tokenize("select name from users where age > 28")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := []token.Type{
		token.WORD, token.WORD, token.WORD, token.WORD, token.WORD,
		token.WORD, token.GT, token.WORD, token.EOF,
	}
	got := typesOf(toks)
	if len(got) != len(want) {
		t.Fatalf("got %d tokens, want %d: %v", len(got), len(want), got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("token %d: got %v want %v", i, got[i], want[i])
		}
	}
}

func TestTokenizeQuotedStringKeepsDelimiters(t *testing.T) {
	toks, err := Tokenize(`where name = 'Alice'`)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	var str string
	for _, tok := range toks {
		if tok.Type == token.STRING {
			str = tok.Literal
		}
	}
	if str != "'Alice'" {
		t.Errorf("got %q, want quotes retained", str)
	}
}

func TestTokenizeDoubleQuoted(t *testing.T) {
	toks, err := Tokenize(`"hello world"`)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if toks[0].Type != token.STRING || toks[0].Literal != `"hello world"` {
		t.Errorf("got %+v", toks[0])
	}
}

func TestTokenizeUnterminatedString(t *testing.T) {
	_, err := Tokenize("select 'oops")
	if err == nil {
		t.Fatal("expected an error for unterminated string")
	}
}

func TestTokenizeOperatorsMaximalMunch(t *testing.T) {
	cases := map[string]token.Type{
		"<=": token.LE,
		">=": token.GE,
		"<>": token.NE,
		"!=": token.NE,
		"<":  token.LT,
		">":  token.GT,
		"=":  token.EQ,
		"!":  token.NOT,
	}
	for lit, want := range cases {
		toks, err := Tokenize("a " + lit + " b")
		if err != nil {
			t.Fatalf("%s: unexpected error: %v", lit, err)
		}
		if toks[1].Type != want {
			t.Errorf("%s: got %v want %v", lit, toks[1].Type, want)
		}
	}
}

func TestTokenizeCommaDiscarded(t *testing.T) {
	toks, err := Tokenize("select a, b c")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	// select, a, b, c, EOF -- no COMMA token type exists at all
	if len(toks) != 5 {
		t.Fatalf("got %d tokens: %v", len(toks), toks)
	}
}

func TestTokenizeParensStarDot(t *testing.T) {
	toks, err := Tokenize("count(*) t.f")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := []token.Type{token.WORD, token.LPAREN, token.STAR, token.RPAREN, token.WORD, token.DOT, token.WORD, token.EOF}
	got := typesOf(toks)
	if len(got) != len(want) {
		t.Fatalf("got %v", got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("token %d: got %v want %v", i, got[i], want[i])
		}
	}
}

func TestTokenizeTotalOnEmptyInput(t *testing.T) {
	toks, err := Tokenize("")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(toks) != 1 || toks[0].Type != token.EOF {
		t.Errorf("got %v", toks)
	}
}
