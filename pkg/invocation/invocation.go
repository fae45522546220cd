// Package invocation partitions a cargo-rpl argument list and turns the
// result into a runnable build-orchestrator command.
//
// Partitioning is a single left-to-right scan. Tokens the wrapper recognizes
// (--fix, --no-deps) are consumed or redirected, a bare -- ends the scan and
// routes everything after it to rpl-driver, and all other tokens pass
// through to cargo in their original order.
package invocation

import "slices"

// Subcommand selects the cargo workflow the wrapper drives.
type Subcommand string

const (
	// SubcommandCheck is the default dry-run workflow.
	SubcommandCheck Subcommand = "check"
	// SubcommandFix applies lint suggestions to the working tree.
	SubcommandFix Subcommand = "fix"
)

const (
	fixFlag    = "--fix"
	noDepsFlag = "--no-deps"
	separator  = "--"
)

// Invocation is one fully partitioned cargo-rpl run.
type Invocation struct {
	Subcommand Subcommand
	CargoArgs  []string // forwarded to cargo verbatim, original order
	DriverArgs []string // delivered to rpl-driver through the environment
}

// Parse partitions tokens into an Invocation. The caller has already
// stripped the program name and the subcommand token cargo inserts.
//
// --fix switches the subcommand and is forwarded nowhere. --no-deps moves to
// the driver list. -- stops interpretation: the remainder belongs to the
// driver list untouched, even tokens spelled like the flags above. Everything
// else is cargo's. When --fix is selected and no --no-deps reached the driver
// list from either side of the separator, one is appended so a fix run never
// rewrites dependencies.
//
// Parse cannot fail: any token sequence, including the empty one, yields a
// usable Invocation, and no token is dropped.
func Parse(tokens []string) Invocation {
	inv := Invocation{Subcommand: SubcommandCheck}

scan:
	for i, tok := range tokens {
		switch tok {
		case fixFlag:
			inv.Subcommand = SubcommandFix
		case noDepsFlag:
			inv.DriverArgs = append(inv.DriverArgs, noDepsFlag)
		case separator:
			inv.DriverArgs = append(inv.DriverArgs, tokens[i+1:]...)
			break scan
		default:
			inv.CargoArgs = append(inv.CargoArgs, tok)
		}
	}

	// The flag may arrive explicitly before or after the separator, or be
	// implied by --fix; appending in a post-pass keeps it single either way.
	if inv.Subcommand == SubcommandFix && !slices.Contains(inv.DriverArgs, noDepsFlag) {
		inv.DriverArgs = append(inv.DriverArgs, noDepsFlag)
	}

	return inv
}
