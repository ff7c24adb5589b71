package libos_test

import (
	"os"
	"path/filepath"
	"strconv"
	"testing"

	"github.com/bmatsuo/malish/elpstest"
	"github.com/stretchr/testify/require"
)

func TestReadFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "data.txt")
	require.NoError(t, os.WriteFile(path, []byte("some text\n"), 0o644))
	missing := filepath.Join(dir, "missing.txt")

	quoted := strconv.Quote(path)
	tests := elpstest.TestSuite{
		{"slurp", elpstest.TestSequence{
			{"(slurp " + quoted + ")", "\"some text\n\"", ""},
			{"(= (slurp " + quoted + ") (read-file " + quoted + "))", "true", ""},
			{"(slurp " + strconv.Quote(missing) + ")",
				"test:1:1: slurp: io-error: open " + missing + ": no such file or directory", ""},
			{"(slurp 1)", "test:1:1: slurp: type-error: argument is not a string: number", ""},
		}},
	}
	elpstest.RunTestSuite(t, tests)
}
