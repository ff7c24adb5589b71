package repl

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/bmatsuo/malish/lisp"
	"github.com/chzyer/readline"
)

// DefaultPrompt is the prompt used when Config.Prompt is empty.
const DefaultPrompt = "user> "

// Config controls a repl session.
type Config struct {
	Prompt      string
	HistoryFile string

	// KeepGoing makes the repl report evaluation errors and continue reading
	// input instead of returning the first error.
	KeepGoing bool

	// Trace prints the lisp call stack after each error.
	Trace bool
}

// LineReader reads lines of user input.  A *readline.Instance is a
// LineReader.
type LineReader interface {
	Readline() (string, error)
}

// RunRepl runs an interactive repl on the terminal using env.
func RunRepl(env *lisp.LEnv, cfg Config) error {
	prompt := cfg.Prompt
	if prompt == "" {
		prompt = DefaultPrompt
	}
	rl, err := readline.NewEx(&readline.Config{
		Prompt:          prompt,
		HistoryFile:     cfg.HistoryFile,
		InterruptPrompt: "^C",
		EOFPrompt:       "exit",
	})
	if err != nil {
		return err
	}
	defer rl.Close()
	return Loop(env, rl, rl.Stdout(), rl.Stderr(), cfg)
}

// Loop reads lines from lines until end of input.  Each line is passed to
// lisp.Rep and the result is written to out.  Errors are written to errw.
// Blank lines are ignored and an interrupt discards the current line.
func Loop(env *lisp.LEnv, lines LineReader, out io.Writer, errw io.Writer, cfg Config) error {
	for {
		line, err := lines.Readline()
		if errors.Is(err, readline.ErrInterrupt) {
			continue
		}
		if err == io.EOF {
			return nil
		}
		if err != nil {
			return err
		}
		if strings.TrimSpace(line) == "" {
			continue
		}
		result, err := lisp.Rep(env, line)
		if err != nil {
			errln(errw, err)
			if cfg.Trace {
				printTrace(errw, err)
			}
			if cfg.KeepGoing {
				continue
			}
			return err
		}
		fmt.Fprintln(out, result)
	}
}

func printTrace(w io.Writer, err error) {
	lerr, ok := lisp.GoError(err)
	if !ok || lerr.Stack == nil {
		return
	}
	lerr.Stack.DebugPrint(w)
}

func errln(w io.Writer, v ...interface{}) {
	fmt.Fprintln(w, v...)
}
