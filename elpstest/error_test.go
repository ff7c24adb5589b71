package elpstest

import (
	"testing"

	"github.com/bmatsuo/malish/lisp"
)

func TestErrors(t *testing.T) {
	tests := TestSuite{
		{"special form syntax", TestSequence{
			{"(do)", "test:1:1: do: invalid-syntax: at least one expression expected", ""},
			{"(if true 1)", "test:1:1: if: invalid-syntax: three arguments expected (got 2)", ""},
			{"(def! 1 2)", "test:1:1: def!: invalid-syntax: first argument is not a symbol: number", ""},
			{"(def! x)", "test:1:1: def!: invalid-syntax: two arguments expected (got 1)", ""},
			{"(let* (a) a)", "test:1:1: let*: invalid-syntax: no value bound to a", ""},
			{"(fn* (a 1) a)", "test:1:1: fn*: invalid-syntax: first argument contains a non-symbol: number", ""},
			{"(eval)", "test:1:1: eval: invalid-syntax: one argument expected (got 0)", ""},
		}},
		{"calls", TestSequence{
			{"(1 2)", "test:1:1: not-a-function: first element of expression is not a function: 1", ""},
			{"(+ 1 (list))", "test:1:1: +: type-error: argument is not a number: list", ""},
			{`(let* (a 1) (+ a "x"))`, "test:1:13: +: type-error: argument is not a number: string", ""},
			{"(count)", "test:1:1: count: arity-error: at least 1 arguments expected (got 0)", ""},
		}},
		{"aborted evaluation", TestSequence{
			{"(do (prn 1) (def! z 2) (1) (prn 3))", "test:1:24: not-a-function: first element of expression is not a function: 1", "1\n"},
			{"z", "2", ""},
		}},
		{"reader", TestSequence{
			{"(+ 1", "test:1:1: unmatched-syntax: unmatched (", ""},
			{`(read-string "(1 (2")`, "read-string:1:4: read-string: unmatched-syntax: unmatched (", ""},
		}},
		{"files", TestSequence{
			{`(slurp "/nonexistent/malish-test")`, "test:1:1: slurp: io-error: open /nonexistent/malish-test: no such file or directory", ""},
		}},
	}
	RunTestSuite(t, tests)
}

func TestStackOverflow(t *testing.T) {
	r := &Runner{
		Config: []lisp.Config{lisp.WithMaximumStackHeight(10)},
	}
	r.RunTestSuite(t, TestSuite{
		{"unbounded recursion", TestSequence{
			{"(def! loop (fn* (n) (loop n)))", "nil", ""},
			{"(loop 1)", "test:1:21: loop: stack-overflow: maximum stack height exceeded (10)", ""},
			{"(def! down (fn* (n) (if (<= n 0) n (down (- n 1)))))", "nil", ""},
			{"(down 5)", "0", ""},
		}},
	})
}
