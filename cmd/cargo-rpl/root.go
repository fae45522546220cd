package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/rpl-project/cargo-rpl/pkg/route"
)

var rootCmd = &cobra.Command{
	Use:   "cargo-rpl",
	Short: "Cargo subcommand that checks a package with the RPL lints",
	// Every token must reach cargo untouched, so flag parsing is disabled
	// and the handful of wrapper-owned flags are recognized by scanning.
	DisableFlagParsing: true,
	SilenceUsage:       true,
	SilenceErrors:      true,
	RunE:               runRoot,
}

func runRoot(cmd *cobra.Command, args []string) error {
	logger := newLogger(cmd.ErrOrStderr())

	switch decision := route.Decide(args); decision.Action {
	case route.ActionHelp:
		fmt.Fprint(cmd.OutOrStdout(), helpMessage())
		return nil
	case route.ActionVersion:
		fmt.Fprintln(cmd.OutOrStdout(), versionString())
		return nil
	case route.ActionExplain:
		// Lint docs are not bundled; the normalized name is surfaced at
		// debug level only.
		logger.Debug("explain requested", "lint", decision.Lint)
		return nil
	case route.ActionDoctor:
		return runDoctor(cmd)
	}

	return runLint(cmd, logger, args)
}
