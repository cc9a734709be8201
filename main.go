// =============================================================================
// CFmask Dispatcher - Main Entry Point
// =============================================================================
//
// USAGE:
//   cfmask --xml LE70010022000001EDC00.xml [cfmask options]
//   cfmask --xml LC80010022013001LGN00.xml [l8cfmask options]
//
// ARCHITECTURE:
//   - cmd/                : the cobra root command and exit status handling
//   - internal/xmlarg     : pulls --xml out of the forwarded command line
//   - internal/platform   : satellite code classification, executable names
//   - internal/runner     : argv process execution and failure reporting
//   - internal/dispatch   : ties the steps together and logs the outcome
//   - internal/config     : defaults, YAML file and environment settings
//   - internal/logging    : logger construction
//
// =============================================================================

package main

import (
	"github.com/lsrd/cfmask-dispatcher/cmd"
)

func main() {
	cmd.Execute()
}
