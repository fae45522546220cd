package main

import (
	"github.com/spf13/cobra"

	"github.com/rpl-project/cargo-rpl/pkg/doctor"
	"github.com/rpl-project/cargo-rpl/pkg/output"
)

// runDoctor reports on every collaborator a lint run depends on, so a broken
// setup can be diagnosed without reading cargo's errors. Any failing check
// turns into exit code 1.
func runDoctor(cmd *cobra.Command) error {
	checks := []doctor.Checker{
		&doctor.OrchestratorCheck{Runner: &doctor.RealRunner{}},
		&doctor.DriverCheck{},
		&doctor.WorkspaceCheck{Runner: &doctor.RealRunner{}},
	}

	failed := false
	for _, c := range checks {
		result := c.Run()
		output.FprintResult(cmd.OutOrStdout(), result)
		if !result.OK() {
			failed = true
		}
	}

	if failed {
		return &ExitError{Code: 1}
	}
	return nil
}
