// =============================================================================
// CFmask Dispatcher - Root Command
// =============================================================================
//
// This file defines the only command of the dispatcher. It has no flags and
// no subcommands of its own: flag parsing is disabled so the complete command
// line reaches the dispatcher untouched and, from there, the selected CFmask
// executable. Help requests are forwarded the same way.
//
// EXIT STATUS:
//   0  the executable succeeded
//   1  the platform could not be classified, or the executable failed
//   2  --xml is missing (usage error, nothing is logged)
//
// =============================================================================

package cmd

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/lsrd/cfmask-dispatcher/internal/config"
	"github.com/lsrd/cfmask-dispatcher/internal/dispatch"
	"github.com/lsrd/cfmask-dispatcher/internal/logging"
	"github.com/lsrd/cfmask-dispatcher/internal/runner"
	"github.com/lsrd/cfmask-dispatcher/internal/xmlarg"
)

// Exit codes returned by Execute.
const (
	exitOK      = 0
	exitFailure = 1
	exitUsage   = 2
)

// cobraReserved lists first arguments cobra answers itself even with flag
// parsing disabled. Command lines starting with one of them bypass cobra.
var cobraReserved = map[string]bool{
	cobra.ShellCompRequestCmd:       true,
	cobra.ShellCompNoDescRequestCmd: true,
	"completion":                    true,
	"help":                          true,
}

// newRunner creates the runner used to execute CFmask. Tests replace it.
var newRunner = func() runner.Runner {
	return runner.ExecRunner{}
}

// =============================================================================
// ROOT COMMAND DEFINITION
// =============================================================================

// rootCmd represents the dispatcher.
var rootCmd = &cobra.Command{
	Use:   "cfmask --xml FILE [options]",
	Short: "Run the CFmask build matching the scene's Landsat platform",
	Long: `cfmask reads the satellite code from the --xml metadata filename and runs
l8cfmask for Landsat 8 (LC8, LO8) or cfmask for Landsats 4-7 (LT4, LT5, LE7).
All arguments are passed through unchanged.`,

	// Every argument belongs to the downstream executable.
	DisableFlagParsing: true,
	Args:               cobra.ArbitraryArgs,
	SilenceErrors:      true,
	SilenceUsage:       true,
	CompletionOptions: cobra.CompletionOptions{
		DisableDefaultCmd: true,
	},

	RunE: func(cmd *cobra.Command, args []string) error {
		return runDispatch(cmd.ErrOrStderr(), args)
	},
}

// =============================================================================
// EXECUTE FUNCTION
// =============================================================================

// Execute runs the dispatcher on os.Args and exits with its status.
// This is called by main.main().
func Execute() {
	os.Exit(execute(os.Args[1:], os.Stderr))
}

// execute runs the root command on args and returns the exit status.
func execute(args []string, stderr io.Writer) int {
	// cobra falls back to os.Args when given nil.
	if args == nil {
		args = []string{}
	}
	if len(args) > 0 && cobraReserved[args[0]] {
		return exitCode(runDispatch(stderr, args))
	}
	rootCmd.SetArgs(args)
	rootCmd.SetErr(stderr)
	return exitCode(rootCmd.Execute())
}

// exitCode maps a dispatch error to the process exit status.
func exitCode(err error) int {
	if err == nil {
		return exitOK
	}
	var uerr *xmlarg.UsageError
	if errors.As(err, &uerr) {
		return exitUsage
	}
	return exitFailure
}

// runDispatch checks the command line, loads the configuration, builds the
// logger and dispatches args.
func runDispatch(stderr io.Writer, args []string) error {
	// A missing --xml is reported before anything is logged.
	if _, err := xmlarg.Parse(args); err != nil {
		fmt.Fprintln(stderr, xmlarg.Usage)
		fmt.Fprintf(stderr, "%s: error: %v\n", dispatch.ProgramName, err)
		return err
	}

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(stderr, "%s: %v\n", dispatch.ProgramName, err)
		return err
	}

	logger, closeLog, err := logging.Open(stderr, cfg.LogLevel, cfg.LogFile)
	if err != nil {
		fmt.Fprintf(stderr, "%s: %v\n", dispatch.ProgramName, err)
		return err
	}
	defer closeLog()

	logger.Debug("starting", "version", Version, "built", BuildDate)

	d := dispatch.New(logger, newRunner(), cfg.Executables())
	return d.Run(args)
}
