package cmd

import (
	"fmt"
	"io"

	"github.com/bmatsuo/malish/lisp"
	"github.com/spf13/cobra"
)

var (
	runExpression bool
	runPrint      bool
)

// runCmd represents the run command
var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Run lisp code",
	Long:  `Run lisp code provided supplied via the command line or a file.`,
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig(cmd)
		if err != nil {
			return err
		}
		stdout := cmd.OutOrStdout()
		stderr := cmd.ErrOrStderr()
		env, err := newEnv(cfg, stdout, stderr)
		if err != nil {
			return err
		}
		return runArgs(env, cfg, args, stdout, stderr)
	},
}

// runArgs evaluates each argument as an expression or as a file.  Evaluation
// stops at the first error unless cfg.KeepGoing is set.
func runArgs(env *lisp.LEnv, cfg *Config, args []string, stdout, stderr io.Writer) error {
	var failed error
	for _, arg := range args {
		var v *lisp.LVal
		var err error
		if runExpression {
			v, err = env.ReadEval("cmdline", arg)
		} else {
			v, err = loadFile(env, arg)
		}
		if err != nil {
			failed = reportError(stderr, err, cfg.Trace)
			if cfg.KeepGoing {
				continue
			}
			return failed
		}
		if runPrint {
			fmt.Fprintln(stdout, v)
		}
	}
	return failed
}

func init() {
	rootCmd.AddCommand(runCmd)

	// Here flags for the run command are defined
	runCmd.Flags().BoolVarP(&runExpression, "expression", "e", false,
		"Interpret arguments as lisp expressions")
	runCmd.Flags().BoolVarP(&runPrint, "print", "p", false,
		"Print expression values to stdout")
}
