// pkg/lexer/lexer.go
package lexer

import (
	"github.com/tnm/shql/pkg/errs"
	"github.com/tnm/shql/pkg/token"
)

// terminators are the characters that end a WORD without themselves
// being consumed as part of it: the single-character tokens, the
// operator leading characters, and whitespace.
func isTerminator(ch byte) bool {
	switch ch {
	case ' ', '\t', '\n', '\r', '(', ')', '*', '.', ',', '<', '>', '=', '!', '\'', '"':
		return true
	default:
		return false
	}
}

// Lexer turns a single statement string into a stream of tokens.
type Lexer struct {
	input   string
	pos     int
	readPos int
	ch      byte
}

// New creates a Lexer over the given statement text.
func New(input string) *Lexer {
	l := &Lexer{input: input}
	l.readChar()
	return l
}

func (l *Lexer) readChar() {
	if l.readPos >= len(l.input) {
		l.ch = 0
	} else {
		l.ch = l.input[l.readPos]
	}
	l.pos = l.readPos
	l.readPos++
}

func (l *Lexer) peekChar() byte {
	if l.readPos >= len(l.input) {
		return 0
	}
	return l.input[l.readPos]
}

// Tokenize consumes the whole input and returns its token sequence,
// or a *ParseError if a quoted string is never closed.
func Tokenize(input string) ([]token.Token, error) {
	l := New(input)
	var toks []token.Token
	for {
		tok, err := l.next()
		if err != nil {
			return nil, err
		}
		toks = append(toks, tok)
		if tok.Type == token.EOF {
			return toks, nil
		}
	}
}

func (l *Lexer) next() (token.Token, error) {
	l.skipWhitespace()

	pos := l.pos

	switch l.ch {
	case 0:
		return token.Token{Type: token.EOF, Pos: pos}, nil
	case '(':
		l.readChar()
		return token.Token{Type: token.LPAREN, Literal: "(", Pos: pos}, nil
	case ')':
		l.readChar()
		return token.Token{Type: token.RPAREN, Literal: ")", Pos: pos}, nil
	case '*':
		l.readChar()
		return token.Token{Type: token.STAR, Literal: "*", Pos: pos}, nil
	case '.':
		l.readChar()
		return token.Token{Type: token.DOT, Literal: ".", Pos: pos}, nil
	case ',':
		// Commas are optional separators everywhere; discard and
		// recurse for the next real token.
		l.readChar()
		return l.next()
	case '\'', '"':
		return l.readQuoted(pos)
	case '<':
		if l.peekChar() == '=' {
			l.readChar()
			l.readChar()
			return token.Token{Type: token.LE, Literal: "<=", Pos: pos}, nil
		}
		if l.peekChar() == '>' {
			l.readChar()
			l.readChar()
			return token.Token{Type: token.NE, Literal: "<>", Pos: pos}, nil
		}
		l.readChar()
		return token.Token{Type: token.LT, Literal: "<", Pos: pos}, nil
	case '>':
		if l.peekChar() == '=' {
			l.readChar()
			l.readChar()
			return token.Token{Type: token.GE, Literal: ">=", Pos: pos}, nil
		}
		l.readChar()
		return token.Token{Type: token.GT, Literal: ">", Pos: pos}, nil
	case '=':
		l.readChar()
		return token.Token{Type: token.EQ, Literal: "=", Pos: pos}, nil
	case '!':
		if l.peekChar() == '=' {
			l.readChar()
			l.readChar()
			return token.Token{Type: token.NE, Literal: "!=", Pos: pos}, nil
		}
		l.readChar()
		return token.Token{Type: token.NOT, Literal: "!", Pos: pos}, nil
	default:
		return l.readWord(pos), nil
	}
}

func (l *Lexer) skipWhitespace() {
	for l.ch == ' ' || l.ch == '\t' || l.ch == '\n' || l.ch == '\r' {
		l.readChar()
	}
}

// readQuoted reads a quoted string starting at the current quote
// character, keeping the delimiters in the token literal. It performs
// no escape processing: the string ends at the next occurrence of the
// same quote character.
func (l *Lexer) readQuoted(pos int) (token.Token, error) {
	quote := l.ch
	start := l.pos
	l.readChar() // consume opening quote
	for l.ch != quote {
		if l.ch == 0 {
			return token.Token{}, errs.NewParseError("unterminated quoted string")
		}
		l.readChar()
	}
	l.readChar() // consume closing quote
	return token.Token{Type: token.STRING, Literal: l.input[start:l.pos], Pos: pos}, nil
}

// readWord reads an identifier/number/keyword up to the next
// terminator character.
func (l *Lexer) readWord(pos int) token.Token {
	start := l.pos
	for l.ch != 0 && !isTerminator(l.ch) {
		l.readChar()
	}
	return token.Token{Type: token.WORD, Literal: l.input[start:l.pos], Pos: pos}
}
