package lisp_test

import (
	"math"
	"testing"

	"github.com/bmatsuo/malish/lisp"
	"github.com/stretchr/testify/assert"
)

func list(cells ...*lisp.LVal) *lisp.LVal {
	return lisp.SExpr(cells)
}

func TestTrue(t *testing.T) {
	assert.False(t, lisp.True(lisp.Nil()))
	assert.False(t, lisp.True(lisp.Bool(false)))
	assert.True(t, lisp.True(lisp.Bool(true)))
	assert.True(t, lisp.True(lisp.Number(0)))
	assert.True(t, lisp.True(lisp.String("")))
	assert.True(t, lisp.True(list()))
}

func TestEqual(t *testing.T) {
	f := lisp.Fun("f", nil)
	for i, test := range []struct {
		a, b  *lisp.LVal
		equal bool
	}{
		{lisp.Number(1), lisp.Number(1), true},
		{lisp.Number(1), lisp.Number(2), false},
		{lisp.String("a"), lisp.String("a"), true},
		{lisp.String("a"), lisp.Symbol("a"), false},
		{lisp.Symbol("a"), lisp.Symbol("a"), true},
		{lisp.Nil(), lisp.Nil(), true},
		{lisp.Nil(), lisp.Bool(false), false},
		{lisp.Nil(), list(), false},
		{lisp.Bool(true), lisp.Bool(true), true},
		{list(lisp.Number(1), list(lisp.String("x"))), list(lisp.Number(1), list(lisp.String("x"))), true},
		{list(lisp.Number(1)), list(lisp.Number(1), lisp.Number(2)), false},
		{f, f, false},
	} {
		assert.Equal(t, test.equal, lisp.Equal(test.a, test.b), "test %d: %v = %v", i, test.a, test.b)
	}
}

func TestCompare(t *testing.T) {
	c, ok := lisp.Compare(lisp.Number(1), lisp.Number(2))
	assert.True(t, ok)
	assert.Equal(t, -1, c)
	c, ok = lisp.Compare(lisp.Number(3), lisp.Number(2))
	assert.True(t, ok)
	assert.Equal(t, 1, c)
	c, ok = lisp.Compare(lisp.String("a"), lisp.String("a"))
	assert.True(t, ok)
	assert.Equal(t, 0, c)
	_, ok = lisp.Compare(lisp.String("a"), lisp.String("b"))
	assert.False(t, ok)
	_, ok = lisp.Compare(lisp.Number(math.NaN()), lisp.Number(1))
	assert.False(t, ok)
	_, ok = lisp.Compare(lisp.Number(1), lisp.String("1"))
	assert.False(t, ok)
}

func TestString(t *testing.T) {
	body := list(lisp.Symbol("+"), lisp.Symbol("a"), lisp.String("b"))
	for i, test := range []struct {
		v        *lisp.LVal
		readable string
		display  string
	}{
		{lisp.Number(3), "3", "3"},
		{lisp.Number(0.5), "0.5", "0.5"},
		{lisp.Number(-12.25), "-12.25", "-12.25"},
		{lisp.Number(1e21), "1000000000000000000000", "1000000000000000000000"},
		{lisp.Number(math.Inf(1)), "inf", "inf"},
		{lisp.Number(math.Inf(-1)), "-inf", "-inf"},
		{lisp.Number(math.NaN()), "NaN", "NaN"},
		{lisp.String("hi there"), `"hi there"`, "hi there"},
		{lisp.Symbol("foo"), "foo", "foo"},
		{lisp.Nil(), "nil", "nil"},
		{lisp.Bool(false), "false", "false"},
		{list(), "()", "()"},
		{list(lisp.Number(1), lisp.String("a")), `(1 "a")`, "(1 a)"},
		{lisp.Fun("count", nil), "<builtin-function ``count''>", "<builtin-function ``count''>"},
		{lisp.Lambda(0, []string{"a", "b"}, body), `(fn* (a b) (+ a "b"))`, "(fn* (a b) (+ a b))"},
	} {
		assert.Equal(t, test.readable, test.v.String(), "test %d", i)
		assert.Equal(t, test.display, lisp.Display(test.v), "test %d", i)
	}
}

func TestSprint(t *testing.T) {
	args := []*lisp.LVal{lisp.String("a"), lisp.Number(1), list(lisp.String("b"))}
	assert.Equal(t, `"a" 1 ("b")`, lisp.Sprint(args, true))
	assert.Equal(t, "a 1 (b)", lisp.Sprint(args, false))
	assert.Equal(t, "", lisp.Sprint(nil, true))
}
