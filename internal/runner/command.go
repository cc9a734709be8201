package runner

import "strings"

// Command is an executable name followed by its arguments. It is built once
// and never modified; accessors hand out copies.
type Command struct {
	argv []string
}

// NewCommand returns the command [executable] + args.
func NewCommand(executable string, args []string) Command {
	argv := make([]string, 0, len(args)+1)
	argv = append(argv, executable)
	argv = append(argv, args...)
	return Command{argv: argv}
}

// Name returns the executable name.
func (c Command) Name() string {
	if len(c.argv) == 0 {
		return ""
	}
	return c.argv[0]
}

// Args returns the arguments following the executable name.
func (c Command) Args() []string {
	if len(c.argv) == 0 {
		return nil
	}
	return append([]string(nil), c.argv[1:]...)
}

// Argv returns the full argument vector.
func (c Command) Argv() []string {
	return append([]string(nil), c.argv...)
}

// String joins the argument vector with spaces. It is meant for logs and
// error messages only; commands are never run through a shell.
func (c Command) String() string {
	return strings.Join(c.argv, " ")
}
