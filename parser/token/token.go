package token

import "fmt"

type Token struct {
	Type   Type
	Text   string
	Source *Location
}

type Type uint

// Type constants used for the malish lexer/parser.  Comments are recognized
// by the lexer but never emitted.
const (
	INVALID Type = iota
	EOF

	ATOM   // any maximal run of non-delimiter characters
	STRING // a double-quoted string, possibly unterminated

	SPLICE_UNQUOTE // ~@
	QUOTE          // '
	QUASIQUOTE     // `
	UNQUOTE        // ~
	META           // ^
	DEREF          // @

	PAREN_L
	PAREN_R
	BRACKET_L
	BRACKET_R
	BRACE_L
	BRACE_R

	numTokenTypes
)

func (typ Type) String() string {
	typeStrings := [numTokenTypes]string{
		INVALID:        "invalid",
		EOF:            "EOF",
		ATOM:           "atom",
		STRING:         "string",
		SPLICE_UNQUOTE: "~@",
		QUOTE:          "'",
		QUASIQUOTE:     "`",
		UNQUOTE:        "~",
		META:           "^",
		DEREF:          "@",
		PAREN_L:        "(",
		PAREN_R:        ")",
		BRACKET_L:      "[",
		BRACKET_R:      "]",
		BRACE_L:        "{",
		BRACE_R:        "}",
	}
	if typ >= numTokenTypes {
		return typeStrings[INVALID]
	}
	return typeStrings[typ]
}

// Delimiters maps single character tokens to their type.
var Delimiters = map[string]Type{
	"~@": SPLICE_UNQUOTE,
	"'":  QUOTE,
	"`":  QUASIQUOTE,
	"~":  UNQUOTE,
	"^":  META,
	"@":  DEREF,
	"(":  PAREN_L,
	")":  PAREN_R,
	"[":  BRACKET_L,
	"]":  BRACKET_R,
	"{":  BRACE_L,
	"}":  BRACE_R,
}

type Location struct {
	File string
	Pos  int
	Line int // line number (starting at 1 when tracked)
	Col  int // line column number (starting at 1 when tracked)
}

func (loc *Location) String() string {
	switch {
	case loc.Line == 0:
		return fmt.Sprintf("%s[%d]", loc.File, loc.Pos)
	case loc.Col == 0:
		return fmt.Sprintf("%s:%d", loc.File, loc.Line)
	default:
		return fmt.Sprintf("%s:%d:%d", loc.File, loc.Line, loc.Col)
	}
}
