/*
Package parser provides a lisp reader.

	form   := list | atom
	list   := '(' form* ')'
	atom   := 'true' | 'false' | 'nil' | string | number | symbol
	string := '"' ( '\' any | not-quote )* '"'
	number := decimal text accepted by strconv.ParseFloat
	symbol := /[^\s\[\]{}('"`,;)]+/

Whitespace and commas separate tokens.  A semicolon begins a comment that
extends to the end of the line.  Escape sequences in strings are not
decoded.
*/
package parser

import (
	"strings"

	"github.com/bmatsuo/malish/lisp"
	"github.com/bmatsuo/malish/parser/rdparser"
)

// NewReader returns a new lisp.Reader.
func NewReader() lisp.Reader {
	return rdparser.NewReader()
}

// ReadString reads the first form in src.  The name is recorded in the
// source locations of the returned values.
func ReadString(name string, src string) (*lisp.LVal, error) {
	return rdparser.NewReader().Read(name, strings.NewReader(src))
}
