package lisp

import (
	"bytes"
	"math"
	"strconv"

	"github.com/bmatsuo/malish/parser/token"
)

// LValType is the type of an LVal
type LValType uint

// Possible LValType values
const (
	LInvalid LValType = iota
	LNumber
	LSymbol
	LString
	LSExpr
	LNil
	LBool
	LBuiltin
	LFun
)

var lvalTypeStrings = []string{
	LInvalid: "INVALID",
	LNumber:  "number",
	LSymbol:  "symbol",
	LString:  "string",
	LSExpr:   "list",
	LNil:     "nil",
	LBool:    "bool",
	LBuiltin: "builtin-function",
	LFun:     "function",
}

func (t LValType) String() string {
	if int(t) >= len(lvalTypeStrings) {
		return lvalTypeStrings[LInvalid]
	}
	return lvalTypeStrings[t]
}

// Builtin is a native function.  Its arguments have already been evaluated.
// The env is the environment of the call site and must only be used to
// access the Runtime.
type Builtin func(env *LEnv, args []*LVal) (*LVal, error)

// LVal is a lisp value
type LVal struct {
	Type LValType

	// Source is the location the value was read from, if any.
	Source *token.Location

	Num  float64
	Str  string // symbol name, string contents, or builtin name
	Bool bool

	Cells []*LVal

	// Variables needed for function values
	Builtin Builtin
	Env     EnvID
	Formals []string
	Body    *LVal
}

// Number returns an LVal representing the number x.
func Number(x float64) *LVal {
	return &LVal{
		Type: LNumber,
		Num:  x,
	}
}

// Symbol returns an LVal resprenting the symbol s
func Symbol(s string) *LVal {
	return &LVal{
		Type: LSymbol,
		Str:  s,
	}
}

// String returns an LVal representing the string s.
func String(s string) *LVal {
	return &LVal{
		Type: LString,
		Str:  s,
	}
}

// SExpr returns an LVal representing an S-expression, a list.
func SExpr(cells []*LVal) *LVal {
	return &LVal{
		Type:  LSExpr,
		Cells: cells,
	}
}

// Nil returns an LVal representing nil, an absent value.
func Nil() *LVal {
	return &LVal{
		Type: LNil,
	}
}

// Bool returns an LVal representing the boolean b.
func Bool(b bool) *LVal {
	return &LVal{
		Type: LBool,
		Bool: b,
	}
}

// Fun returns an LVal representing a native function called name.
func Fun(name string, fn Builtin) *LVal {
	return &LVal{
		Type:    LBuiltin,
		Str:     name,
		Builtin: fn,
	}
}

// Lambda returns a closure over the scope env that binds formals
// positionally and evaluates body.
func Lambda(env EnvID, formals []string, body *LVal) *LVal {
	return &LVal{
		Type:    LFun,
		Env:     env,
		Formals: formals,
		Body:    body,
	}
}

// IsNil returns true if v is nil.
func (v *LVal) IsNil() bool {
	return v.Type == LNil
}

// IsFunction returns true if v can be called.
func (v *LVal) IsFunction() bool {
	return v.Type == LBuiltin || v.Type == LFun
}

// Len returns the number of cells in a list.
func (v *LVal) Len() int {
	return len(v.Cells)
}

// True returns true if v is anything other than nil or false.
func True(v *LVal) bool {
	switch v.Type {
	case LNil:
		return false
	case LBool:
		return v.Bool
	default:
		return true
	}
}

// Equal reports whether a and b are structurally equal.  Functions are never
// equal to anything, themselves included.
func Equal(a, b *LVal) bool {
	if a.Type != b.Type {
		return false
	}
	switch a.Type {
	case LNumber:
		return a.Num == b.Num
	case LSymbol, LString:
		return a.Str == b.Str
	case LBool:
		return a.Bool == b.Bool
	case LNil:
		return true
	case LSExpr:
		if len(a.Cells) != len(b.Cells) {
			return false
		}
		for i := range a.Cells {
			if !Equal(a.Cells[i], b.Cells[i]) {
				return false
			}
		}
		return true
	default:
		return false
	}
}

// Compare orders a and b.  Only numbers are ordered; any other pair of
// values is comparable only when structurally equal, in which case Compare
// returns 0.  The second return value is false when a and b are
// incomparable.
func Compare(a, b *LVal) (int, bool) {
	if a.Type == LNumber && b.Type == LNumber {
		switch {
		case a.Num < b.Num:
			return -1, true
		case a.Num > b.Num:
			return 1, true
		case a.Num == b.Num:
			return 0, true
		}
		return 0, false // NaN
	}
	if Equal(a, b) {
		return 0, true
	}
	return 0, false
}

// String returns the readable representation of v, which the reader
// accepts.
func (v *LVal) String() string {
	var buf bytes.Buffer
	v.format(&buf, true)
	return buf.String()
}

// Display returns v formatted for humans.  Strings appear without quotes.
func Display(v *LVal) string {
	var buf bytes.Buffer
	v.format(&buf, false)
	return buf.String()
}

func (v *LVal) format(buf *bytes.Buffer, readably bool) {
	switch v.Type {
	case LNumber:
		buf.WriteString(formatNumber(v.Num))
	case LSymbol:
		buf.WriteString(v.Str)
	case LString:
		if readably {
			buf.WriteByte('"')
			buf.WriteString(v.Str)
			buf.WriteByte('"')
		} else {
			buf.WriteString(v.Str)
		}
	case LNil:
		buf.WriteString("nil")
	case LBool:
		buf.WriteString(strconv.FormatBool(v.Bool))
	case LSExpr:
		formatCells(buf, v.Cells, readably)
	case LBuiltin:
		buf.WriteString("<builtin-function ``")
		buf.WriteString(v.Str)
		buf.WriteString("''>")
	case LFun:
		buf.WriteString("(fn* (")
		for i, name := range v.Formals {
			if i > 0 {
				buf.WriteString(" ")
			}
			buf.WriteString(name)
		}
		buf.WriteString(") ")
		v.Body.format(buf, readably)
		buf.WriteString(")")
	default:
		buf.WriteString("<invalid>")
	}
}

func formatCells(buf *bytes.Buffer, cells []*LVal, readably bool) {
	buf.WriteString("(")
	for i, c := range cells {
		if i > 0 {
			buf.WriteString(" ")
		}
		c.format(buf, readably)
	}
	buf.WriteString(")")
}

func formatNumber(x float64) string {
	switch {
	case math.IsInf(x, 1):
		return "inf"
	case math.IsInf(x, -1):
		return "-inf"
	case math.IsNaN(x):
		return "NaN"
	}
	return strconv.FormatFloat(x, 'f', -1, 64)
}
