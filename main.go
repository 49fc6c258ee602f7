// pathctl edits, filters, and prints colon-delimited path lists, the
// shape of the PATH environment variable.
package main

import (
	"fmt"
	"os"

	"github.com/mattn/go-isatty"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"pathctl/internal/config"
	"pathctl/internal/logging"
)

var (
	cfg config.Config

	envVar        string
	filterFlag    bool
	normalizeFlag bool
	prettyFlag    bool
	noColorFlag   bool
	verbosity     int

	rootCmd = &cobra.Command{
		Use:   "pathctl",
		Short: "Edit, filter, and print unix PATH-like strings",
		Long: `pathctl edits, filters, and prints colon-delimited path lists such as
the PATH environment variable. It can build a new path, add directories to
the front or back of the current one, drop entries that are not existing
directories, normalize entries to canonical form, and analyze the current
path for invalid entries, duplicates, and shadowed binaries.

The current path is read from an environment variable (PATH by default)
and the result is written to stdout, so it composes with the shell:

  export PATH=$(pathctl -f append ~/bin)`,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			logging.Setup(verbosity)
			log.Debug().Str("command", cmd.Name()).Msg("command started")
		},
		// Bare invocation behaves like the print command.
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runPrint(cmd)
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}
)

func init() {
	var err error
	cfg, err = config.Load()
	if err != nil {
		// A broken config file should not brick the tool; fall back to
		// defaults and say so.
		fmt.Fprintf(os.Stderr, "Warning: %v\n", err)
		cfg = config.Default()
	}

	setupFlags(rootCmd.PersistentFlags())

	rootCmd.AddCommand(printCmd)
	rootCmd.AddCommand(newCmd)
	rootCmd.AddCommand(addCmd)
	rootCmd.AddCommand(appendCmd)
	rootCmd.AddCommand(analyzeCmd)
	rootCmd.AddCommand(versionCmd)
}

// setupFlags defines the persistent flag surface. Config file values
// supply the defaults; explicit flags win.
func setupFlags(pf *pflag.FlagSet) {
	pf.StringVarP(&envVar, "env", "e", cfg.Env, "Name of path environment variable")
	pf.BoolVarP(&filterFlag, "filter", "f", false, "Filter non-directories from path")
	pf.BoolVarP(&prettyFlag, "pretty", "p", cfg.Pretty, "Print path one directory per line")
	pf.BoolVarP(&normalizeFlag, "normalize", "n", false, "Normalize directory names in path")
	pf.BoolVar(&noColorFlag, "no-color", false, "Disable styled output")
	pf.CountVarP(&verbosity, "verbose", "v", "Increase verbosity (-v INFO, -vv DEBUG, -vvv TRACE)")
}

// currentPathStr reads the selected environment variable. Absent is the
// same as empty; the core never touches the environment itself.
func currentPathStr() string {
	return os.Getenv(envVar)
}

// colorEnabled decides whether analyze output gets lipgloss styling.
func colorEnabled() bool {
	if noColorFlag || cfg.Color == "never" {
		return false
	}
	if cfg.Color == "always" {
		return true
	}
	return isatty.IsTerminal(os.Stdout.Fd())
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
