package cmd

import (
	"os"

	"github.com/bmatsuo/malish/repl"
	"github.com/spf13/cobra"
)

// replCmd represents the repl command
var replCmd = &cobra.Command{
	Use:   "repl",
	Short: "Start an interactive repl",
	Long: `Start an interactive read-eval-print loop.  Each line is read as one
expression and its value is printed.  Ctrl-C clears the line and Ctrl-D exits.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runRepl(cmd)
	},
}

func runRepl(cmd *cobra.Command) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	env, err := newEnv(cfg, os.Stdout, os.Stderr)
	if err != nil {
		return err
	}
	err = repl.RunRepl(env, repl.Config{
		Prompt:      cfg.Prompt,
		HistoryFile: cfg.HistoryFile,
		KeepGoing:   cfg.KeepGoing,
		Trace:       cfg.Trace,
	})
	if err != nil {
		// The repl has already written the error.
		return &reportedError{err}
	}
	return nil
}

func init() {
	rootCmd.AddCommand(replCmd)
}
