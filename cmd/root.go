package cmd

import (
	"log"
	"os"

	"github.com/spf13/cobra"
)

var (
	rootConfigPath     string
	rootTrace          bool
	rootKeepGoing      bool
	rootMaxStackHeight int
)

var logger = log.New(os.Stderr, "malish: ", 0)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "malish",
	Short: "A small lisp interpreter",
	Long: `Malish is a small lisp with def!, let*, do, if, fn* and eval.

Without a subcommand malish starts an interactive repl.`,
	Args:          cobra.NoArgs,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runRepl(cmd)
	},
}

// Execute adds all child commands to the root command and sets flags
// appropriately.  This is called by main.main().  It only needs to happen
// once to the rootCmd.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		if !isReported(err) {
			logger.Print(err)
		}
		os.Exit(1)
	}
}

// loadConfig reads the configuration file and applies flags that were set
// on the command line.
func loadConfig(cmd *cobra.Command) (*Config, error) {
	path := rootConfigPath
	optional := false
	if path == "" {
		var err error
		path, err = DefaultConfigPath()
		if err != nil {
			path = ""
		}
		optional = true
	}
	cfg, err := LoadConfig(path, optional)
	if err != nil {
		return nil, err
	}
	flags := cmd.Flags()
	if flags.Changed("trace") {
		cfg.Trace = rootTrace
	}
	if flags.Changed("keep-going") {
		cfg.KeepGoing = rootKeepGoing
	}
	if flags.Changed("max-stack-height") {
		cfg.MaxStackHeight = rootMaxStackHeight
	}
	return cfg, nil
}

func init() {
	pflags := rootCmd.PersistentFlags()
	pflags.StringVar(&rootConfigPath, "config", "",
		"Configuration file (default $HOME/"+DefaultConfigName+")")
	pflags.BoolVar(&rootTrace, "trace", false,
		"Print a lisp stack trace with each error")
	pflags.BoolVar(&rootKeepGoing, "keep-going", false,
		"Report errors and continue instead of exiting")
	pflags.IntVar(&rootMaxStackHeight, "max-stack-height", DefaultMaxStackHeight,
		"Maximum lisp call stack height (0 for no limit)")
}
