package lisp

import (
	"bytes"
	"errors"
	"fmt"

	"github.com/bmatsuo/malish/parser/token"
)

// Error conditions reported by the runtime.
const (
	CondInvalidSyntax   = "invalid-syntax"
	CondUnmatchedSyntax = "unmatched-syntax"
	CondNotFunction     = "not-a-function"
	CondTypeError       = "type-error"
	CondArityError      = "arity-error"
	CondStackOverflow   = "stack-overflow"
	CondIOError         = "io-error"
	CondRuntimeError    = "runtime-error"
)

// Error is an error which aborts evaluation.  Errors are never caught by
// lisp code.
type Error struct {
	Condition string
	Message   string
	Func      string          // name of the function or special form that failed
	Source    *token.Location // location of the failing expression
	Stack     *CallStack      // call stack at the time of failure
	Err       error           // underlying cause, if any
}

// ErrorConditionf returns an Error with the given condition and a formatted
// message.
func ErrorConditionf(condition string, format string, v ...interface{}) *Error {
	return &Error{
		Condition: condition,
		Message:   fmt.Sprintf(format, v...),
	}
}

// Errorf returns a runtime-error with a formatted message.
func Errorf(format string, v ...interface{}) *Error {
	return ErrorConditionf(CondRuntimeError, format, v...)
}

// Error implements the error interface.
func (e *Error) Error() string {
	var buf bytes.Buffer
	if e.Source != nil {
		buf.WriteString(e.Source.String())
		buf.WriteString(": ")
	}
	if e.Func != "" {
		buf.WriteString(e.Func)
		buf.WriteString(": ")
	}
	buf.WriteString(e.Condition)
	if e.Message != "" {
		buf.WriteString(": ")
		buf.WriteString(e.Message)
	}
	return buf.String()
}

func (e *Error) Unwrap() error {
	return e.Err
}

// GoError returns err as an *Error if it is one or wraps one.
func GoError(err error) (*Error, bool) {
	var lerr *Error
	if errors.As(err, &lerr) {
		return lerr, true
	}
	return nil, false
}

// ErrorCondition returns the condition of err, or the empty string if err
// did not come from the runtime.
func ErrorCondition(err error) string {
	lerr, ok := GoError(err)
	if !ok {
		return ""
	}
	return lerr.Condition
}

// errorf creates an error for a failure evaluating expr.
func (env *LEnv) errorf(expr *LVal, fn string, condition string, format string, v ...interface{}) error {
	err := ErrorConditionf(condition, format, v...)
	err.Func = fn
	if expr != nil {
		err.Source = expr.Source
	}
	err.Stack = env.Runtime.Stack.Copy()
	return err
}

// annotate attaches call site information to an error returned by a native
// function.
func (env *LEnv) annotate(err error, call *LVal, fn string) error {
	lerr, ok := GoError(err)
	if !ok {
		lerr = &Error{
			Condition: CondRuntimeError,
			Message:   err.Error(),
			Err:       err,
		}
	}
	if lerr.Func == "" {
		lerr.Func = fn
	}
	if lerr.Source == nil && call != nil {
		lerr.Source = call.Source
	}
	if lerr.Stack == nil {
		lerr.Stack = env.Runtime.Stack.Copy()
	}
	return lerr
}
