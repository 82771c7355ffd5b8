// Package buildinfo carries version metadata stamped at build time via
// -ldflags.
package buildinfo

var (
	// Version is the release tag, or "dev" for local builds.
	Version = "dev"

	// Commit is the short git revision.
	Commit = "unknown"
)

// Short returns a compact identifier for window titles and logs.
func Short() string {
	if Version != "" && Version != "dev" {
		return Version
	}
	if Commit != "" && Commit != "unknown" {
		return Commit
	}
	return "dev"
}
