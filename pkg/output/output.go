// Package output renders the wrapper's user-facing text: doctor results and
// the colored spans of the help message. ANSI codes are dropped when stdout
// is not a color-capable terminal.
package output

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/jwalton/go-supportscolor"

	"github.com/rpl-project/cargo-rpl/pkg/doctor"
)

var (
	green = "\033[1;32m"
	cyan  = "\033[1;36m"
	red   = "\033[31m"
	dim   = "\033[2m"
	reset = "\033[0m"
)

func init() {
	if !supportscolor.Stdout().SupportsColor {
		green, cyan, red, dim, reset = "", "", "", "", ""
	}
}

// Green wraps s in bold green when stdout supports color.
func Green(s string) string {
	return green + s + reset
}

// Cyan wraps s in bold cyan when stdout supports color.
func Cyan(s string) string {
	return cyan + s + reset
}

// PrintResult outputs a doctor result with colored status to stdout.
func PrintResult(r doctor.Result) {
	FprintResult(os.Stdout, r)
}

// FprintResult outputs a doctor result with colored status. Details are
// indented to line up under the check name.
func FprintResult(w io.Writer, r doctor.Result) {
	indent := "     " // aligns under "[OK] "
	if r.OK() {
		fmt.Fprintf(w, "%s[OK]%s %s\n", green, reset, r.Name)
	} else {
		fmt.Fprintf(w, "%s[FAIL]%s %s\n", red, reset, r.Name)
		indent = "       " // aligns under "[FAIL] "
	}
	for _, d := range r.Details {
		fmt.Fprintf(w, "%s%s\n", indent, formatLabel(d))
	}
}

// formatLabel dims the leading "label:" of a detail line when one is present.
func formatLabel(s string) string {
	label, rest, found := strings.Cut(s, ": ")
	if !found {
		return s
	}
	return dim + label + ":" + reset + " " + rest
}
