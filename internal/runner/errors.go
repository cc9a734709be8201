package runner

import (
	"fmt"
	"os"
)

// FailureKind classifies why a command did not succeed.
type FailureKind int

const (
	// FailedToStart means the process could not be run at all, for
	// example because the executable is not on PATH.
	FailedToStart FailureKind = iota + 1

	// Signaled means the process was terminated by a signal.
	Signaled

	// NonZeroExit means the process exited with a non-zero code.
	NonZeroExit
)

// ExecuteError is returned when a command does not complete successfully.
type ExecuteError struct {
	// Command is the space-joined argument vector.
	Command string

	// Kind says which success condition was violated.
	Kind FailureKind

	// ExitCode is the child's exit code, or -1 when it has none.
	ExitCode int

	// Signal is set when Kind is Signaled.
	Signal os.Signal

	// Output is whatever the child wrote to stdout and stderr.
	Output string

	// Err is the underlying error from os/exec.
	Err error
}

// Cause returns a human readable description of the failure.
func (e *ExecuteError) Cause() string {
	switch e.Kind {
	case Signaled:
		return fmt.Sprintf("Application terminated by signal [%s]", e.Command)
	case NonZeroExit:
		return fmt.Sprintf("Application [%s] returned error code [%d]", e.Command, e.ExitCode)
	default:
		return fmt.Sprintf("Application failed to execute [%s]", e.Command)
	}
}

// Error implements the error interface.
func (e *ExecuteError) Error() string {
	msg := e.Cause()
	if e.Output != "" {
		msg += " Stdout/Stderr is: " + e.Output
	}
	return msg
}

// Unwrap returns the underlying os/exec error.
func (e *ExecuteError) Unwrap() error {
	return e.Err
}
