package parser_test

import (
	"fmt"
	"strings"
	"testing"

	"github.com/bmatsuo/malish/parser"
)

func benchmarkSource(n int) string {
	var b strings.Builder
	b.WriteString("(do\n")
	for i := 0; i < n; i++ {
		b.WriteString(`  (def! f (fn* (a b) (if (< a b) (str "less" a) (list a b 1.5))))` + "\n")
	}
	b.WriteString(")")
	return b.String()
}

func BenchmarkReader(b *testing.B) {
	for _, n := range []int{1, 100, 10000} {
		src := benchmarkSource(n)
		b.Run(fmt.Sprintf("forms-%d", n), func(b *testing.B) {
			r := parser.NewReader()
			b.SetBytes(int64(len(src)))
			for i := 0; i < b.N; i++ {
				_, err := r.Read("bench", strings.NewReader(src))
				if err != nil {
					b.Fatal(err)
				}
			}
		})
	}
}
