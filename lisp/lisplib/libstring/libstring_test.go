package libstring_test

import (
	"testing"

	"github.com/bmatsuo/malish/elpstest"
)

func TestString(t *testing.T) {
	tests := elpstest.TestSuite{
		{"str", elpstest.TestSequence{
			{`(str)`, `""`, ""},
			{`(str "a")`, `"a"`, ""},
			{`(str "a" "b" 3)`, `"a b 3"`, ""},
			{`(str (list 1 "x") nil)`, `"(1 x) nil"`, ""},
		}},
		{"pr-str", elpstest.TestSequence{
			{`(pr-str)`, `""`, ""},
			{`(pr-str 1 (list 2))`, `"1 (2)"`, ""},
			{`(count (list (pr-str "ab")))`, "1", ""},
			{`(= (pr-str "ab") (str "ab"))`, "false", ""},
		}},
		{"read-string", elpstest.TestSequence{
			{`(read-string "42")`, "42", ""},
			{`(read-string "(a b)")`, "(a b)", ""},
			{`(read-string "")`, "nil", ""},
			{`(read-string "1 2")`, "1", ""},
			{`(list? (read-string "()"))`, "true", ""},
			{`(read-string 1)`, "test:1:1: read-string: type-error: argument is not a string: number", ""},
			{`(read-string)`, "test:1:1: read-string: arity-error: at least 1 arguments expected (got 0)", ""},
		}},
	}
	elpstest.RunTestSuite(t, tests)
}
