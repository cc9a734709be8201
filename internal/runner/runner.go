// =============================================================================
// CFmask Dispatcher - Command Runner
// =============================================================================
//
// The runner executes a Command as a child process and waits for it. The
// argument vector is handed straight to the operating system; no shell is
// involved, so filenames containing spaces or shell metacharacters reach the
// executable unchanged.
//
// SUCCESS:
//   A run succeeds only when the child was not killed by a signal, completed,
//   and reported exit code 0. Anything else yields an *ExecuteError carrying
//   the command, the reason and the captured output.
//
// The call blocks until the child exits. There is no timeout.
//
// =============================================================================

package runner

import (
	"errors"
	"os"
	"os/exec"
	"strings"
	"syscall"
)

// Runner executes commands.
type Runner interface {
	// Run executes cmd and returns its combined stdout and stderr.
	Run(cmd Command) (string, error)
}

// ExecRunner runs commands as local processes, resolving the executable name
// on PATH. The child inherits the dispatcher's environment.
type ExecRunner struct {
	// Dir is the working directory of the child. Empty means the current
	// directory.
	Dir string
}

// Run implements Runner.
func (r ExecRunner) Run(c Command) (string, error) {
	cmd := exec.Command(c.Name(), c.Args()...)
	cmd.Dir = r.Dir

	out, err := cmd.CombinedOutput()
	output := strings.TrimSuffix(string(out), "\n")

	if err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			return output, stateError(c, exitErr.ProcessState, output, err)
		}
		return output, &ExecuteError{
			Command:  c.String(),
			Kind:     FailedToStart,
			ExitCode: -1,
			Output:   output,
			Err:      err,
		}
	}

	if err := stateError(c, cmd.ProcessState, output, nil); err != nil {
		return output, err
	}

	return output, nil
}

// stateError checks the finished process against the success conditions.
func stateError(c Command, state *os.ProcessState, output string, cause error) error {
	if state == nil {
		return &ExecuteError{
			Command:  c.String(),
			Kind:     FailedToStart,
			ExitCode: -1,
			Output:   output,
			Err:      cause,
		}
	}

	if ws, ok := state.Sys().(syscall.WaitStatus); ok && ws.Signaled() {
		return &ExecuteError{
			Command:  c.String(),
			Kind:     Signaled,
			ExitCode: state.ExitCode(),
			Signal:   ws.Signal(),
			Output:   output,
			Err:      cause,
		}
	}

	if !state.Exited() || state.ExitCode() != 0 {
		return &ExecuteError{
			Command:  c.String(),
			Kind:     NonZeroExit,
			ExitCode: state.ExitCode(),
			Output:   output,
			Err:      cause,
		}
	}

	return nil
}
