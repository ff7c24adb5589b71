package lexer

import (
	"testing"

	"github.com/bmatsuo/malish/parser/token"
	"github.com/stretchr/testify/assert"
)

func TestTokenize(t *testing.T) {
	for i, test := range []struct {
		src   string
		texts []string
		types []token.Type
	}{
		{"", nil, nil},
		{"  ,, \n", nil, nil},
		{"(+ 1 2)",
			[]string{"(", "+", "1", "2", ")"},
			[]token.Type{token.PAREN_L, token.ATOM, token.ATOM, token.ATOM, token.PAREN_R}},
		{"(a,b)",
			[]string{"(", "a", "b", ")"},
			[]token.Type{token.PAREN_L, token.ATOM, token.ATOM, token.PAREN_R}},
		{`"a \"b\" c" d`,
			[]string{`"a \"b\" c"`, "d"},
			[]token.Type{token.STRING, token.ATOM}},
		{`"open`,
			[]string{`"open`},
			[]token.Type{token.STRING}},
		{"x ; comment (ignored)\ny",
			[]string{"x", "y"},
			[]token.Type{token.ATOM, token.ATOM}},
		{"~@a 'b `c ~d ^e @f",
			[]string{"~@", "a", "'", "b", "`", "c", "~", "d", "^", "e", "@", "f"},
			[]token.Type{
				token.SPLICE_UNQUOTE, token.ATOM, token.QUOTE, token.ATOM,
				token.QUASIQUOTE, token.ATOM, token.UNQUOTE, token.ATOM,
				token.META, token.ATOM, token.DEREF, token.ATOM,
			}},
		{"[a]{b}",
			[]string{"[", "a", "]", "{", "b", "}"},
			[]token.Type{token.BRACKET_L, token.ATOM, token.BRACKET_R, token.BRACE_L, token.ATOM, token.BRACE_R}},
		{"def! let* -1.5e3",
			[]string{"def!", "let*", "-1.5e3"},
			[]token.Type{token.ATOM, token.ATOM, token.ATOM}},
	} {
		toks := Tokenize("test", test.src)
		var texts []string
		var types []token.Type
		for _, tok := range toks {
			texts = append(texts, tok.Text)
			types = append(types, tok.Type)
		}
		assert.Equal(t, test.texts, texts, "test %d: %q", i, test.src)
		assert.Equal(t, test.types, types, "test %d: %q", i, test.src)
	}
}

func TestLocations(t *testing.T) {
	lex := New("file.mal", "(a\n  bc)\n")
	var locs []string
	for {
		tok := lex.NextToken()
		locs = append(locs, tok.Source.String())
		if tok.Type == token.EOF {
			break
		}
	}
	assert.Equal(t, []string{
		"file.mal:1:1",
		"file.mal:1:2",
		"file.mal:2:3",
		"file.mal:2:5",
		"file.mal:3:1",
	}, locs)
}

func TestEOFRepeats(t *testing.T) {
	lex := New("test", "x")
	assert.Equal(t, token.ATOM, lex.NextToken().Type)
	assert.Equal(t, token.EOF, lex.NextToken().Type)
	assert.Equal(t, token.EOF, lex.NextToken().Type)
}
