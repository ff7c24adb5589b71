package rdparser

import (
	"io"
	"strconv"
	"strings"

	"github.com/bmatsuo/malish/lisp"
	"github.com/bmatsuo/malish/parser/internal/interntoken"
	"github.com/bmatsuo/malish/parser/lexer"
	"github.com/bmatsuo/malish/parser/token"
)

type reader struct {
	intern *interntoken.Table
}

// NewReader returns a lisp.Reader to use in a lisp.Runtime.  Symbol text is
// interned for the lifetime of the reader.
func NewReader() lisp.Reader {
	return &reader{intern: interntoken.NewTable()}
}

// Read implements lisp.Reader.
func (r *reader) Read(name string, src io.Reader) (*lisp.LVal, error) {
	b, err := io.ReadAll(src)
	if err != nil {
		return nil, err
	}
	p := New(lexer.New(name, string(b))).WithIntern(r.intern)
	return p.ReadForm()
}

// Parser is a lisp parser.
type Parser struct {
	lex    *lexer.Lexer
	intern *interntoken.Table
	curr   *token.Token
	peek   *token.Token
}

// New initializes and returns a new Parser that reads tokens from lex.
func New(lex *lexer.Lexer) *Parser {
	p := &Parser{
		lex: lex,
	}
	p.ReadToken()
	return p
}

// WithIntern makes p intern symbol names in tab.  Values read by p never
// refer to the source text.
func (p *Parser) WithIntern(tab *interntoken.Table) *Parser {
	p.intern = tab
	return p
}

// ReadForm parses the next form.  When no tokens remain ReadForm returns
// nil (the lisp value).
func (p *Parser) ReadForm() (*lisp.LVal, error) {
	switch p.PeekType() {
	case token.EOF:
		return lisp.Nil(), nil
	case token.PAREN_L:
		return p.ParseList()
	default:
		return p.ParseAtom(), nil
	}
}

// ParseList parses a parenthesized list.  Running out of input before the
// closing parenthesis is an error.
func (p *Parser) ParseList() (*lisp.LVal, error) {
	if !p.expect(token.PAREN_L) {
		return nil, p.errorf(lisp.CondInvalidSyntax, "list expected: %v", p.PeekType())
	}
	open := p.Token()
	var cells []*lisp.LVal
	for {
		if p.PeekType() == token.EOF {
			err := lisp.ErrorConditionf(lisp.CondUnmatchedSyntax, "unmatched %s", open.Text)
			err.Source = open.Source
			return nil, err
		}
		if p.expect(token.PAREN_R) {
			break
		}
		x, err := p.ReadForm()
		if err != nil {
			return nil, err
		}
		cells = append(cells, x)
	}
	v := lisp.SExpr(cells)
	v.Source = open.Source
	return v, nil
}

// ParseAtom parses the next token as an atom: true, false, nil, a string, a
// number, or a symbol.
func (p *Parser) ParseAtom() *lisp.LVal {
	tok := p.ReadToken()
	text := tok.Text
	var v *lisp.LVal
	switch {
	case text == "true":
		v = lisp.Bool(true)
	case text == "false":
		v = lisp.Bool(false)
	case text == "nil":
		v = lisp.Nil()
	case len(text) >= 2 && text[0] == '"' && text[len(text)-1] == '"':
		// escape sequences are intentionally left as written
		v = lisp.String(strings.Clone(text[1 : len(text)-1]))
	default:
		x, ok := parseNumber(text)
		if ok {
			v = lisp.Number(x)
		} else {
			v = lisp.Symbol(p.intern.Get(text))
		}
	}
	v.Source = tok.Source
	return v
}

// parseNumber parses decimal floating point text, including inf and nan.
// Hexadecimal forms accepted by strconv are not numbers.
func parseNumber(text string) (float64, bool) {
	digits := strings.TrimLeft(text, "+-")
	if len(digits) >= 2 && digits[0] == '0' && (digits[1] == 'x' || digits[1] == 'X') {
		return 0, false
	}
	x, err := strconv.ParseFloat(text, 64)
	if err != nil {
		return 0, false
	}
	return x, true
}

func (p *Parser) ReadToken() *token.Token {
	p.curr = p.peek
	p.peek = p.lex.NextToken()
	return p.curr
}

func (p *Parser) Token() *token.Token {
	return p.curr
}

func (p *Parser) Peek() *token.Token {
	return p.peek
}

func (p *Parser) PeekType() token.Type {
	return p.peek.Type
}

func (p *Parser) expect(typ ...token.Type) bool {
	peekType := p.peek.Type
	for _, typ := range typ {
		if typ == peekType {
			p.ReadToken()
			return true
		}
	}
	return false
}

func (p *Parser) errorf(condition string, format string, v ...interface{}) error {
	err := lisp.ErrorConditionf(condition, format, v...)
	err.Source = p.Peek().Source
	return err
}
