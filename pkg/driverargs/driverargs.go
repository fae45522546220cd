// Package driverargs implements the environment channel that carries the
// analysis argument list through the build orchestrator into rpl-driver.
//
// The list is flattened into a single RPL_ARGS value with a private separator
// after each entry so the driver can reconstruct the exact ordered list on
// the other side of the orchestrator. The separator is chosen to be unlikely
// in real argument values, not impossible: a value that itself contains the
// separator will not survive the round trip.
package driverargs

import "strings"

// EnvVar is the environment variable the orchestrator forwards to rpl-driver.
const EnvVar = "RPL_ARGS"

// Separator delimits entries inside EnvVar. Every entry is followed by one
// separator, including the last.
const Separator = "__RPL_HACKERY__"

// Join flattens args into the single-string form carried by EnvVar.
// An empty list yields an empty string.
func Join(args []string) string {
	var b strings.Builder
	for _, arg := range args {
		b.WriteString(arg)
		b.WriteString(Separator)
	}
	return b.String()
}

// Split reverses Join, recovering the ordered argument list.
// An empty string yields nil.
func Split(s string) []string {
	if s == "" {
		return nil
	}
	parts := strings.Split(s, Separator)
	// Join emits a trailing separator, so a well-formed value splits into
	// the entries plus one final empty part.
	if parts[len(parts)-1] == "" {
		parts = parts[:len(parts)-1]
	}
	return parts
}
