// =============================================================================
// CFmask Dispatcher - Version Information
// =============================================================================
//
// The dispatcher has no version command (any argument it received would be
// forwarded to CFmask), so the build information is written to the debug log
// at startup instead.
//
// =============================================================================

package cmd

// These variables are set at build time using ldflags.
// Example build command:
//   go build -ldflags "-X 'github.com/lsrd/cfmask-dispatcher/cmd.Version=1.0.0' -X 'github.com/lsrd/cfmask-dispatcher/cmd.BuildDate=2026-10-19'"

// Version is the application version.
var Version = "dev"

// BuildDate is the date the application was built.
var BuildDate = "unknown"
