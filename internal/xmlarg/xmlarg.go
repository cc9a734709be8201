// Package xmlarg pulls the --xml metadata filename out of a command line that
// otherwise belongs to the downstream CFmask executable.
//
// Only --xml is understood. Every other option is skipped without complaint,
// and -h/--help are deliberately swallowed so that the help text comes from
// the executable the arguments are forwarded to.
package xmlarg

import (
	"fmt"
	"io"

	"github.com/spf13/pflag"
)

// FlagName is the long option carrying the XML metadata filename.
const FlagName = "xml"

// Usage is the one-line usage shown when --xml is missing.
const Usage = "usage: cfmask --xml FILE"

// UsageError reports a command line the dispatcher cannot route.
type UsageError struct {
	Msg string
}

// Error implements the error interface.
func (e *UsageError) Error() string {
	return e.Msg
}

// Parse returns the value of --xml from args.
func Parse(args []string) (string, error) {
	fs := pflag.NewFlagSet("cfmask", pflag.ContinueOnError)
	fs.SetOutput(io.Discard)
	fs.Usage = func() {}
	fs.ParseErrorsWhitelist.UnknownFlags = true
	fs.SetInterspersed(true)

	xml := fs.String(FlagName, "", "Input XML metadata file")
	// Registered so pflag does not answer -h/--help itself.
	fs.BoolP("help", "h", false, "")

	if err := fs.Parse(args); err != nil {
		return "", &UsageError{Msg: err.Error()}
	}

	if !fs.Changed(FlagName) || *xml == "" {
		return "", &UsageError{
			Msg: fmt.Sprintf("the following arguments are required: --%s", FlagName),
		}
	}

	return *xml, nil
}
