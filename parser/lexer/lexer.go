package lexer

import (
	"regexp"
	"sort"
	"strings"

	"github.com/bmatsuo/malish/parser/token"
)

// tokenPattern matches one token preceded by any separators.  Submatch 1 is
// the token text.  String tokens may be unterminated and escape sequences
// are recognized but never decoded.
var tokenPattern = regexp.MustCompile(
	`[\s,]*(~@|[\[\]{}()'` + "`" + `~^@]|"(?:\\.|[^\\"])*"?|;.*|[^\s\[\]{}('"` + "`" + `,;)]+)`)

// Lexer produces tokens from a complete source text.
type Lexer struct {
	file    string
	src     string
	matches [][]int
	next    int
	lines   []int // byte offset of the first byte of each line
}

// New returns a Lexer over src.  The file name is recorded in token source
// locations.
func New(file string, src string) *Lexer {
	lex := &Lexer{
		file:    file,
		src:     src,
		matches: tokenPattern.FindAllStringSubmatchIndex(src, -1),
		lines:   []int{0},
	}
	for i := 0; i < len(src); i++ {
		if src[i] == '\n' {
			lex.lines = append(lex.lines, i+1)
		}
	}
	return lex
}

// NextToken returns the next token in the source.  Comments are skipped.
// When the source is exhausted NextToken returns a token of type EOF.
func (lex *Lexer) NextToken() *token.Token {
	for lex.next < len(lex.matches) {
		m := lex.matches[lex.next]
		lex.next++
		start, end := m[2], m[3]
		text := lex.src[start:end]
		if strings.HasPrefix(text, ";") {
			continue
		}
		return &token.Token{
			Type:   tokenType(text),
			Text:   text,
			Source: lex.loc(start),
		}
	}
	return &token.Token{
		Type:   token.EOF,
		Source: lex.loc(len(lex.src)),
	}
}

func (lex *Lexer) loc(pos int) *token.Location {
	line := sort.Search(len(lex.lines), func(i int) bool { return lex.lines[i] > pos })
	return &token.Location{
		File: lex.file,
		Pos:  pos,
		Line: line,
		Col:  pos - lex.lines[line-1] + 1,
	}
}

func tokenType(text string) token.Type {
	if typ, ok := token.Delimiters[text]; ok {
		return typ
	}
	if text[0] == '"' {
		return token.STRING
	}
	return token.ATOM
}

// Tokenize returns all tokens in src, excluding the terminating EOF token.
func Tokenize(file string, src string) []*token.Token {
	lex := New(file, src)
	var toks []*token.Token
	for {
		tok := lex.NextToken()
		if tok.Type == token.EOF {
			return toks
		}
		toks = append(toks, tok)
	}
}
