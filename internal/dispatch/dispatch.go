// =============================================================================
// CFmask Dispatcher - Dispatch
// =============================================================================
//
// PIPELINE:
//   1. Parse     : read --xml from the command line, ignoring everything else
//   2. Classify  : map the filename's satellite code to a target
//   3. Select    : pick the executable for the target
//   4. Execute   : run [executable] + original arguments
//   5. Report    : log the output on success, log and return the error on
//                  failure
//
// Nothing is retried. Every failure ends the run.
//
// =============================================================================

package dispatch

import (
	"errors"
	"fmt"

	"github.com/lsrd/cfmask-dispatcher/internal/platform"
	"github.com/lsrd/cfmask-dispatcher/internal/runner"
	"github.com/lsrd/cfmask-dispatcher/internal/xmlarg"
)

// ProgramName is how the dispatcher refers to itself in log messages.
const ProgramName = "cfmask"

// Logger is the subset of *log.Logger the dispatcher writes to.
type Logger interface {
	Debug(msg interface{}, keyvals ...interface{})
	Info(msg interface{}, keyvals ...interface{})
	Error(msg interface{}, keyvals ...interface{})
}

// Dispatcher routes a CFmask command line to the executable for its platform.
type Dispatcher struct {
	logger      Logger
	runner      runner.Runner
	executables platform.Executables
}

// New returns a Dispatcher.
func New(logger Logger, r runner.Runner, executables platform.Executables) *Dispatcher {
	return &Dispatcher{
		logger:      logger,
		runner:      r,
		executables: executables,
	}
}

// Command builds the command that Run would execute for args, without
// running it.
func (d *Dispatcher) Command(args []string) (runner.Command, error) {
	_, cmd, err := d.resolve(args)
	return cmd, err
}

// resolve classifies args and builds the command for the selected target.
func (d *Dispatcher) resolve(args []string) (platform.Target, runner.Command, error) {
	xmlFilename, err := xmlarg.Parse(args)
	if err != nil {
		return 0, runner.Command{}, err
	}

	target, err := platform.Classify(xmlFilename)
	if err != nil {
		return 0, runner.Command{}, err
	}

	return target, runner.NewCommand(d.executables.For(target), args), nil
}

// Run dispatches args and waits for the executable to finish.
//
// A *xmlarg.UsageError is returned without logging. Classification and
// execution failures are logged before being returned.
func (d *Dispatcher) Run(args []string) error {
	target, cmd, err := d.resolve(args)
	if err != nil {
		var cerr *platform.ClassificationError
		if errors.As(err, &cerr) {
			d.logger.Error("Unable to select executable. Processing will terminate.",
				"err", err)
		}
		return err
	}

	d.logger.Debug("selected executable", "target", target.String(), "executable", cmd.Name())
	d.logger.Info(">>" + cmd.String())

	output, err := d.runner.Run(cmd)
	if err != nil {
		d.logger.Error(fmt.Sprintf("Error running %s. Processing will terminate.", ProgramName),
			"err", err)
		return err
	}

	if len(output) > 0 {
		d.logger.Info("\n" + output)
	}

	return nil
}
