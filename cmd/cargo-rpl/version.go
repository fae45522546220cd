package main

import "fmt"

var (
	// Version is the semantic version (set via -ldflags).
	Version = "dev"
	// Commit is the git commit hash (set via -ldflags).
	Commit = "unknown"
	// BuildDate is the build timestamp (set via -ldflags).
	BuildDate = "unknown"
)

// versionString returns the line printed for -V / --version.
func versionString() string {
	if Version == "dev" {
		return "cargo-rpl dev (built from source)"
	}
	return fmt.Sprintf("cargo-rpl %s (%s %s)", Version, Commit, BuildDate)
}
