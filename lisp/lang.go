package lisp

// SpecialOp identifies a special form.  Special forms receive their
// arguments unevaluated.
type SpecialOp uint

// The closed set of special forms.  OpNone marks an ordinary function
// application.
const (
	OpNone SpecialOp = iota
	OpDef
	OpLet
	OpDo
	OpIf
	OpFn
	OpEval
	numSpecialOps
)

var specialOpNames = [numSpecialOps]string{
	OpNone: "",
	OpDef:  "def!",
	OpLet:  "let*",
	OpDo:   "do",
	OpIf:   "if",
	OpFn:   "fn*",
	OpEval: "eval",
}

func (op SpecialOp) String() string {
	if op >= numSpecialOps {
		return specialOpNames[OpNone]
	}
	return specialOpNames[op]
}

// LookupSpecialOp returns the special form named by head, or OpNone if head
// is not a symbol naming a special form.
func LookupSpecialOp(head *LVal) SpecialOp {
	if head.Type != LSymbol {
		return OpNone
	}
	switch head.Str {
	case "def!":
		return OpDef
	case "let*":
		return OpLet
	case "do":
		return OpDo
	case "if":
		return OpIf
	case "fn*":
		return OpFn
	case "eval":
		return OpEval
	default:
		return OpNone
	}
}
