package invocation

import (
	"os"
	"os/exec"

	"github.com/rpl-project/cargo-rpl/pkg/driverargs"
)

// WrapperEnvVar tells cargo to route workspace compilations through
// rpl-driver instead of invoking the compiler directly.
const WrapperEnvVar = "RUSTC_WORKSPACE_WRAPPER"

// OrchestratorEnvVar names the cargo executable to run. Cargo exports it to
// the subcommand processes it spawns, so a wrapper started by a non-default
// cargo drives that same cargo.
const OrchestratorEnvVar = "CARGO"

const defaultOrchestrator = "cargo"

// Orchestrator resolves the cargo executable to run: the CARGO override when
// set and non-empty, the well-known name otherwise. getenv may be nil, in
// which case os.Getenv is used.
func Orchestrator(getenv func(string) string) string {
	if getenv == nil {
		getenv = os.Getenv
	}
	if name := getenv(OrchestratorEnvVar); name != "" {
		return name
	}
	return defaultOrchestrator
}

// Command builds the orchestrator command for this invocation: argv is the
// resolved cargo followed by the subcommand and the pass-through args, and
// the environment inherits the parent's plus the wrapper redirection and the
// serialized driver arguments. getenv may be nil, in which case os.Getenv
// resolves the orchestrator override.
//
// The command is not started; the caller wires stdio and runs it.
func (inv Invocation) Command(driverPath string, getenv func(string) string) *exec.Cmd {
	name := Orchestrator(getenv)

	cmd := exec.Command(name, append([]string{string(inv.Subcommand)}, inv.CargoArgs...)...)
	cmd.Env = append(cmd.Environ(),
		WrapperEnvVar+"="+driverPath,
		driverargs.EnvVar+"="+driverargs.Join(inv.DriverArgs),
	)
	return cmd
}
