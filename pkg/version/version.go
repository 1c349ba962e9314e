// Package version holds build-time identification for the intervaltree
// demo CLI, overridden at link time via -ldflags.
package version

// Version, Commit and Date are set via -ldflags at build time; they retain
// these placeholders in a `go run`/unlinked build.
var (
	Version = "dev"
	Commit  = "none"
	Date    = "unknown"
)

// String renders the three fields as a single line for display.
func String() string {
	return Version + " (commit: " + Commit + ", built: " + Date + ")"
}
