package main

import (
	"errors"
	"fmt"
	"os/exec"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/rpl-project/cargo-rpl/pkg/driverpath"
	"github.com/rpl-project/cargo-rpl/pkg/invocation"
)

// runLint translates the wrapper invocation into an orchestrator run and
// propagates its exit code unchanged.
func runLint(cmd *cobra.Command, logger *log.Logger, args []string) error {
	// cargo invokes the wrapper as `cargo-rpl rpl <args>`; drop the
	// subcommand token it inserts.
	if len(args) > 0 {
		args = args[1:]
	}

	inv := invocation.Parse(args)

	driver, err := (&driverpath.Sibling{}).Locate()
	if err != nil {
		return err
	}

	child := inv.Command(driver, nil)
	child.Stdin = cmd.InOrStdin()
	child.Stdout = cmd.OutOrStdout()
	child.Stderr = cmd.ErrOrStderr()

	logger.Debug("dispatching to orchestrator",
		"argv", child.Args,
		"driver", driver,
		"driverArgs", inv.DriverArgs)

	if err := child.Run(); err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			// ExitCode is -1 for a signal-terminated child; pass that
			// through as well.
			return &ExitError{Code: exitErr.ExitCode()}
		}
		return fmt.Errorf("could not run %s: %w", child.Args[0], err)
	}
	return nil
}
