// Package doctor inspects the wrapper's collaborators: the cargo
// orchestrator it would launch, the rpl-driver executable it would redirect
// compilation through, and the workspace the lint run would cover. Each
// check reports a Result; nothing here mutates the environment.
package doctor

import (
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/pelletier/go-toml/v2"
	"github.com/tidwall/gjson"

	"github.com/rpl-project/cargo-rpl/pkg/driverpath"
	"github.com/rpl-project/cargo-rpl/pkg/invocation"
	"github.com/rpl-project/cargo-rpl/pkg/version"
)

// DefaultTimeout bounds each orchestrator probe.
const DefaultTimeout = 30 * time.Second

// MinOrchestratorVersion is the oldest cargo that honors
// RUSTC_WORKSPACE_WRAPPER; older releases would silently compile without the
// driver.
var MinOrchestratorVersion = version.Version{Major: 1, Minor: 52}

// OrchestratorCheck verifies that cargo (or the CARGO override) is on PATH
// and recent enough to honor the workspace wrapper.
type OrchestratorCheck struct {
	Getenv  func(string) string // injected for testing; nil means os.Getenv
	Timeout time.Duration       // timeout for the version probe (default: 30s)
	Runner  Runner              // injected for testing
}

// Run executes the orchestrator check.
func (c *OrchestratorCheck) Run() Result {
	name := invocation.Orchestrator(c.Getenv)
	result := Result{
		Name: fmt.Sprintf("orchestrator: %s", name),
	}

	path, err := c.Runner.LookPath(name)
	if err != nil {
		return result.Failf("not found in PATH: %v", err)
	}

	result.AddDetailf("path: %s", path)

	timeout := c.Timeout
	if timeout == 0 {
		timeout = DefaultTimeout
	}
	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	stdout, stderr, err := c.Runner.RunCommand(ctx, name, "--version")
	if err != nil {
		if ctx.Err() == context.DeadlineExceeded {
			return result.Failf("version probe timed out after %s", timeout)
		}
		result.AddDetailf("version probe failed: %v", err)
		if stderr != "" {
			result.AddDetailf("stderr: %s", strings.TrimSpace(stderr))
		}
		result.Status = StatusFail
		result.Err = err
		return result
	}

	versionOutput := stdout
	if versionOutput == "" {
		versionOutput = stderr
	}

	v, err := version.Extract(versionOutput)
	if err != nil {
		return result.Failf("could not parse version from %q: %v", strings.TrimSpace(versionOutput), err)
	}

	result.AddDetailf("version: %s", v)

	if !v.AtLeast(MinOrchestratorVersion) {
		return result.Failf("version %s predates workspace wrapper support (need %s or newer)", v, MinOrchestratorVersion)
	}

	result.Status = StatusOK
	return result
}

// DriverCheck verifies that rpl-driver sits next to the wrapper executable,
// where the redirected compiler invocations will look for it.
type DriverCheck struct {
	Locator driverpath.Locator                // injected for testing; nil means the sibling locator
	Stat    func(string) (os.FileInfo, error) // injected for testing; nil means os.Stat
}

// Run executes the driver check.
func (c *DriverCheck) Run() Result {
	result := Result{Name: "driver"}

	locator := c.Locator
	if locator == nil {
		locator = &driverpath.Sibling{}
	}
	stat := c.Stat
	if stat == nil {
		stat = os.Stat
	}

	path, err := locator.Locate()
	if err != nil {
		return result.Failf("could not resolve driver path: %v", err)
	}

	result.AddDetailf("path: %s", path)

	info, err := stat(path)
	if err != nil {
		return result.Failf("not installed next to the wrapper: %v", err)
	}
	if info.IsDir() {
		return result.Failf("driver path is a directory")
	}

	result.Status = StatusOK
	return result
}

// manifest mirrors the slice of Cargo.toml the workspace check reports on.
type manifest struct {
	Package struct {
		Name    string `toml:"name"`
		Edition string `toml:"edition"`
	} `toml:"package"`
	Workspace struct {
		Members []string `toml:"members"`
	} `toml:"workspace"`
}

// WorkspaceCheck verifies that the working directory belongs to a cargo
// project and summarizes what a lint run would cover.
type WorkspaceCheck struct {
	Getenv   func(string) string          // injected for testing; nil means os.Getenv
	Timeout  time.Duration                // timeout for locate-project (default: 30s)
	Runner   Runner                       // injected for testing
	ReadFile func(string) ([]byte, error) // injected for testing; nil means os.ReadFile
}

// Run executes the workspace check.
func (c *WorkspaceCheck) Run() Result {
	result := Result{Name: "workspace"}

	name := invocation.Orchestrator(c.Getenv)
	readFile := c.ReadFile
	if readFile == nil {
		readFile = os.ReadFile
	}

	timeout := c.Timeout
	if timeout == 0 {
		timeout = DefaultTimeout
	}
	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	stdout, stderr, err := c.Runner.RunCommand(ctx, name, "locate-project", "--workspace")
	if err != nil {
		if ctx.Err() == context.DeadlineExceeded {
			return result.Failf("locate-project timed out after %s", timeout)
		}
		result.AddDetailf("not inside a cargo project: %v", err)
		if stderr != "" {
			result.AddDetailf("stderr: %s", strings.TrimSpace(stderr))
		}
		result.Status = StatusFail
		result.Err = err
		return result
	}

	root := gjson.Get(stdout, "root").String()
	if root == "" {
		return result.Failf("unexpected locate-project output: %q", strings.TrimSpace(stdout))
	}

	result.AddDetailf("root: %s", root)

	data, err := readFile(root)
	if err != nil {
		return result.Failf("could not read manifest: %v", err)
	}

	var m manifest
	if err := toml.Unmarshal(data, &m); err != nil {
		return result.Failf("could not parse manifest: %v", err)
	}

	switch {
	case len(m.Workspace.Members) > 0:
		result.AddDetailf("workspace with %d members", len(m.Workspace.Members))
	case m.Package.Name != "" && m.Package.Edition != "":
		result.AddDetailf("package: %s (edition %s)", m.Package.Name, m.Package.Edition)
	case m.Package.Name != "":
		result.AddDetailf("package: %s", m.Package.Name)
	}

	result.Status = StatusOK
	return result
}
