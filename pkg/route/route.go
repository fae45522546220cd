// Package route classifies a raw command-line token stream before any
// partitioning happens. A small set of global flags short-circuits the
// normal invocation flow wherever they appear; everything else falls through
// to the invocation builder untouched.
package route

import "strings"

// Action identifies the short-circuit requested by the argument list, if any.
type Action int

const (
	// ActionRun means no global flag matched; build and run the
	// orchestrator invocation.
	ActionRun Action = iota
	// ActionHelp prints the help text and terminates successfully.
	ActionHelp
	// ActionVersion prints version information and terminates successfully.
	ActionVersion
	// ActionExplain resolves a single normalized lint name and terminates
	// successfully.
	ActionExplain
	// ActionDoctor diagnoses the surrounding toolchain and terminates.
	ActionDoctor
)

// Decision is the outcome of scanning an argument list.
type Decision struct {
	Action Action
	// Lint is the lowercased lint name accompanying ActionExplain.
	Lint string
}

// Decide scans args (program name excluded) for the global flags. They win
// over everything else no matter where they appear, even after a --
// separator: the scan runs on the raw list before any partitioning, so the
// separator has no meaning yet.
//
// Help outranks version, version outranks explain, explain outranks doctor.
// A --explain with no following token degrades to ActionHelp.
func Decide(args []string) Decision {
	for _, a := range args {
		if a == "-h" || a == "--help" {
			return Decision{Action: ActionHelp}
		}
	}
	for _, a := range args {
		if a == "-V" || a == "--version" {
			return Decision{Action: ActionVersion}
		}
	}
	for i, a := range args {
		if a != "--explain" {
			continue
		}
		if i+1 < len(args) {
			return Decision{Action: ActionExplain, Lint: strings.ToLower(args[i+1])}
		}
		return Decision{Action: ActionHelp}
	}
	for _, a := range args {
		if a == "--doctor" {
			return Decision{Action: ActionDoctor}
		}
	}
	return Decision{Action: ActionRun}
}
