// pkg/token/token.go
package token

import "strings"

// Type identifies the lexical class of a Token.
type Type int

const (
	EOF Type = iota
	ILLEGAL

	// WORD covers identifiers, numbers and keywords alike. The source
	// grammar does not distinguish them at lex time; the dispatcher and
	// parsers classify a WORD by its lowercased text.
	WORD

	// STRING is a quoted literal. Literal retains the opening and
	// closing quote characters so downstream code can tell a string
	// apart from a bareword without re-scanning the source.
	STRING

	LPAREN // (
	RPAREN // )
	STAR   // *
	DOT    // .

	EQ  // =
	NE  // != or <>
	LT  // <
	GT  // >
	LE  // <=
	GE  // >=
	NOT // ! alone (no trailing '=')
)

// Token is a single lexeme produced by the tokenizer.
type Token struct {
	Type    Type
	Literal string
	Pos     int
}

// keywords is the fixed, unreserved keyword set. Membership is checked
// by the dispatcher/parsers, not by the lexer: a keyword is just a
// WORD whose lowercased text happens to match.
var keywords = map[string]bool{
	"select": true, "from": true, "where": true, "order": true, "by": true,
	"insert": true, "into": true, "values": true, "update": true, "set": true,
	"delete": true, "create": true, "drop": true, "table": true, "view": true,
	"and": true, "or": true, "not": true, "in": true, "distinct": true,
	"asc": true, "desc": true, "num": true, "union": true,
	"help": true, "print": true, "edit": true,
}

// aggregates is the set of aggregate function names, recognized only
// when immediately followed by '('.
var aggregates = map[string]bool{
	"count": true, "sum": true, "avg": true, "min": true, "max": true,
}

// IsKeyword reports whether word (case-insensitively) is one of the
// fixed keywords.
func IsKeyword(word string) bool {
	return keywords[strings.ToLower(word)]
}

// IsAggregateName reports whether word (case-insensitively) names an
// aggregate function.
func IsAggregateName(word string) bool {
	return aggregates[strings.ToLower(word)]
}
