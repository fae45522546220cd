package main

import (
	"strings"

	"github.com/rpl-project/cargo-rpl/pkg/output"
)

// helpMessage renders the help page in the style of cargo's own subcommand
// help: green section headers, cyan flags, descriptions aligned by hand.
func helpMessage() string {
	var b strings.Builder

	b.WriteString("Checks a package to catch common mistakes and improve your Rust code.\n\n")

	b.WriteString(output.Green("Usage") + ":\n")
	b.WriteString("    " + output.Cyan("cargo rpl") + " [OPTIONS] [--] [<ARGS>...]\n\n")

	b.WriteString(output.Green("Common options:") + "\n")
	b.WriteString("    " + output.Cyan("--no-deps") + "                Run RPL only on the given crate, without linting the dependencies\n")
	b.WriteString("    " + output.Cyan("--fix") + "                    Automatically apply lint suggestions. This flag implies " + output.Cyan("--no-deps") + " and " + output.Cyan("--all-targets") + "\n")
	b.WriteString("    " + output.Cyan("-h") + ", " + output.Cyan("--help") + "               Print this message\n")
	b.WriteString("    " + output.Cyan("-V") + ", " + output.Cyan("--version") + "            Print version info and exit\n")
	b.WriteString("    " + output.Cyan("--explain") + " [LINT]         Print the documentation for a given lint\n")
	b.WriteString("    " + output.Cyan("--doctor") + "                 Report whether cargo, the driver and the workspace are ready\n\n")

	b.WriteString("See all options with " + output.Cyan("cargo check --help") + ".\n\n")

	b.WriteString(output.Green("Allowing / Denying lints") + "\n\n")
	b.WriteString("To allow or deny a lint from the command line you can use " + output.Cyan("cargo rpl --") + " with:\n\n")
	b.WriteString("    " + output.Cyan("-W") + " / " + output.Cyan("--warn") + " [LINT]       Set lint warnings\n")
	b.WriteString("    " + output.Cyan("-A") + " / " + output.Cyan("--allow") + " [LINT]      Set lint allowed\n")
	b.WriteString("    " + output.Cyan("-D") + " / " + output.Cyan("--deny") + " [LINT]       Set lint denied\n")
	b.WriteString("    " + output.Cyan("-F") + " / " + output.Cyan("--forbid") + " [LINT]     Set lint forbidden\n\n")

	b.WriteString(output.Green("Manifest Options:") + "\n")
	b.WriteString("    " + output.Cyan("--manifest-path") + " <PATH>  Path to Cargo.toml\n")
	b.WriteString("    " + output.Cyan("--frozen") + "                Require Cargo.lock and cache are up to date\n")
	b.WriteString("    " + output.Cyan("--locked") + "                Require Cargo.lock is up to date\n")
	b.WriteString("    " + output.Cyan("--offline") + "               Run without accessing the network\n")

	return b.String()
}
