package doctor

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/rpl-project/cargo-rpl/pkg/invocation"
)

// noEnv resolves every lookup to unset.
func noEnv(string) string { return "" }

// fixedLocator resolves the driver to a fixed path.
type fixedLocator struct {
	path string
	err  error
}

func (l fixedLocator) Locate() (string, error) { return l.path, l.err }

func TestOrchestratorCheck_NotFound(t *testing.T) {
	runner := &MockRunner{
		LookPathFunc: func(file string) (string, error) {
			return "", errors.New("executable file not found in $PATH")
		},
	}

	c := &OrchestratorCheck{Getenv: noEnv, Runner: runner}
	result := c.Run()

	if result.Status != StatusFail {
		t.Errorf("Status = %v, want %v", result.Status, StatusFail)
	}
	if result.Name != "orchestrator: cargo" {
		t.Errorf("Name = %q, want %q", result.Name, "orchestrator: cargo")
	}
}

func TestOrchestratorCheck_OK(t *testing.T) {
	runner := &MockRunner{
		LookPathFunc: func(file string) (string, error) {
			return "/usr/bin/cargo", nil
		},
		RunCommandFunc: func(name string, args ...string) (string, string, error) {
			return "cargo 1.75.0 (1d8b05cdd 2023-11-20)\n", "", nil
		},
	}

	c := &OrchestratorCheck{Getenv: noEnv, Runner: runner}
	result := c.Run()

	if result.Status != StatusOK {
		t.Errorf("Status = %v, want %v", result.Status, StatusOK)
	}
	if len(result.Details) != 2 {
		t.Fatalf("Details = %v, want path and version", result.Details)
	}
	if result.Details[0] != "path: /usr/bin/cargo" {
		t.Errorf("Details[0] = %q, want %q", result.Details[0], "path: /usr/bin/cargo")
	}
	if result.Details[1] != "version: 1.75.0" {
		t.Errorf("Details[1] = %q, want %q", result.Details[1], "version: 1.75.0")
	}
}

func TestOrchestratorCheck_TooOld(t *testing.T) {
	runner := &MockRunner{
		LookPathFunc: func(file string) (string, error) {
			return "/usr/bin/cargo", nil
		},
		RunCommandFunc: func(name string, args ...string) (string, string, error) {
			return "cargo 1.48.0 (65cbdd2dc 2020-10-14)\n", "", nil
		},
	}

	c := &OrchestratorCheck{Getenv: noEnv, Runner: runner}
	result := c.Run()

	if result.Status != StatusFail {
		t.Errorf("Status = %v, want %v for cargo 1.48", result.Status, StatusFail)
	}
}

func TestOrchestratorCheck_Override(t *testing.T) {
	var looked string
	runner := &MockRunner{
		LookPathFunc: func(file string) (string, error) {
			looked = file
			return "/opt/bin/cargo-nightly", nil
		},
		RunCommandFunc: func(name string, args ...string) (string, string, error) {
			return "cargo 1.82.0-nightly (8f40fc59f 2024-08-02)\n", "", nil
		},
	}

	getenv := func(key string) string {
		if key == invocation.OrchestratorEnvVar {
			return "cargo-nightly"
		}
		return ""
	}

	c := &OrchestratorCheck{Getenv: getenv, Runner: runner}
	result := c.Run()

	if looked != "cargo-nightly" {
		t.Errorf("LookPath received %q, want the CARGO override", looked)
	}
	if result.Name != "orchestrator: cargo-nightly" {
		t.Errorf("Name = %q, want %q", result.Name, "orchestrator: cargo-nightly")
	}
	if result.Status != StatusOK {
		t.Errorf("Status = %v, want %v", result.Status, StatusOK)
	}
}

func TestOrchestratorCheck_ProbeFails(t *testing.T) {
	runner := &MockRunner{
		LookPathFunc: func(file string) (string, error) {
			return "/usr/bin/cargo", nil
		},
		RunCommandFunc: func(name string, args ...string) (string, string, error) {
			return "", "cargo: broken installation\n", errors.New("exit status 1")
		},
	}

	c := &OrchestratorCheck{Getenv: noEnv, Runner: runner}
	result := c.Run()

	if result.Status != StatusFail {
		t.Errorf("Status = %v, want %v", result.Status, StatusFail)
	}
	if result.Err == nil {
		t.Error("Err = nil, want the probe error")
	}
}

func TestOrchestratorCheck_VersionOnStderr(t *testing.T) {
	runner := &MockRunner{
		LookPathFunc: func(file string) (string, error) {
			return "/usr/bin/cargo", nil
		},
		RunCommandFunc: func(name string, args ...string) (string, string, error) {
			return "", "cargo 1.61.0 (a028ae42f 2022-04-29)\n", nil
		},
	}

	c := &OrchestratorCheck{Getenv: noEnv, Runner: runner}
	result := c.Run()

	if result.Status != StatusOK {
		t.Errorf("Status = %v, want %v when version appears on stderr", result.Status, StatusOK)
	}
}

func TestDriverCheck_OK(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "rpl-driver")
	if err := os.WriteFile(path, []byte("#!/bin/sh\n"), 0o755); err != nil {
		t.Fatalf("WriteFile failed: %v", err)
	}

	c := &DriverCheck{Locator: fixedLocator{path: path}}
	result := c.Run()

	if result.Status != StatusOK {
		t.Errorf("Status = %v, want %v", result.Status, StatusOK)
	}
	if len(result.Details) != 1 || result.Details[0] != "path: "+path {
		t.Errorf("Details = %v, want [path: %s]", result.Details, path)
	}
}

func TestDriverCheck_Missing(t *testing.T) {
	path := filepath.Join(t.TempDir(), "rpl-driver")

	c := &DriverCheck{Locator: fixedLocator{path: path}}
	result := c.Run()

	if result.Status != StatusFail {
		t.Errorf("Status = %v, want %v for a missing driver", result.Status, StatusFail)
	}
}

func TestDriverCheck_Directory(t *testing.T) {
	c := &DriverCheck{Locator: fixedLocator{path: t.TempDir()}}
	result := c.Run()

	if result.Status != StatusFail {
		t.Errorf("Status = %v, want %v when the driver path is a directory", result.Status, StatusFail)
	}
}

func TestDriverCheck_LocateError(t *testing.T) {
	c := &DriverCheck{Locator: fixedLocator{err: errors.New("no executable path")}}
	result := c.Run()

	if result.Status != StatusFail {
		t.Errorf("Status = %v, want %v", result.Status, StatusFail)
	}
}

func TestWorkspaceCheck_Package(t *testing.T) {
	var gotArgs []string
	runner := &MockRunner{
		RunCommandFunc: func(name string, args ...string) (string, string, error) {
			gotArgs = args
			return `{"root":"/work/demo/Cargo.toml"}`, "", nil
		},
	}
	readFile := func(path string) ([]byte, error) {
		if path != "/work/demo/Cargo.toml" {
			t.Errorf("ReadFile path = %q, want the located root", path)
		}
		return []byte("[package]\nname = \"demo\"\nedition = \"2021\"\n"), nil
	}

	c := &WorkspaceCheck{Getenv: noEnv, Runner: runner, ReadFile: readFile}
	result := c.Run()

	if len(gotArgs) != 2 || gotArgs[0] != "locate-project" || gotArgs[1] != "--workspace" {
		t.Errorf("RunCommand args = %v, want [locate-project --workspace]", gotArgs)
	}
	if result.Status != StatusOK {
		t.Fatalf("Status = %v, want %v (details: %v)", result.Status, StatusOK, result.Details)
	}
	if result.Details[0] != "root: /work/demo/Cargo.toml" {
		t.Errorf("Details[0] = %q, want the root path", result.Details[0])
	}
	if result.Details[1] != "package: demo (edition 2021)" {
		t.Errorf("Details[1] = %q, want %q", result.Details[1], "package: demo (edition 2021)")
	}
}

func TestWorkspaceCheck_Workspace(t *testing.T) {
	runner := &MockRunner{
		RunCommandFunc: func(name string, args ...string) (string, string, error) {
			return `{"root":"/work/ws/Cargo.toml"}`, "", nil
		},
	}
	readFile := func(string) ([]byte, error) {
		return []byte("[workspace]\nmembers = [\"crates/a\", \"crates/b\"]\n"), nil
	}

	c := &WorkspaceCheck{Getenv: noEnv, Runner: runner, ReadFile: readFile}
	result := c.Run()

	if result.Status != StatusOK {
		t.Fatalf("Status = %v, want %v (details: %v)", result.Status, StatusOK, result.Details)
	}
	if result.Details[1] != "workspace with 2 members" {
		t.Errorf("Details[1] = %q, want %q", result.Details[1], "workspace with 2 members")
	}
}

func TestWorkspaceCheck_NotAProject(t *testing.T) {
	runner := &MockRunner{
		RunCommandFunc: func(name string, args ...string) (string, string, error) {
			return "", "error: could not find `Cargo.toml` in `/tmp` or any parent directory\n", errors.New("exit status 101")
		},
	}

	c := &WorkspaceCheck{Getenv: noEnv, Runner: runner}
	result := c.Run()

	if result.Status != StatusFail {
		t.Errorf("Status = %v, want %v outside a project", result.Status, StatusFail)
	}
	if result.Err == nil {
		t.Error("Err = nil, want the locate-project error")
	}
}

func TestWorkspaceCheck_UnexpectedOutput(t *testing.T) {
	runner := &MockRunner{
		RunCommandFunc: func(name string, args ...string) (string, string, error) {
			return "not json\n", "", nil
		},
	}

	c := &WorkspaceCheck{Getenv: noEnv, Runner: runner}
	result := c.Run()

	if result.Status != StatusFail {
		t.Errorf("Status = %v, want %v for unparseable output", result.Status, StatusFail)
	}
}

func TestWorkspaceCheck_BadManifest(t *testing.T) {
	runner := &MockRunner{
		RunCommandFunc: func(name string, args ...string) (string, string, error) {
			return `{"root":"/work/demo/Cargo.toml"}`, "", nil
		},
	}
	readFile := func(string) ([]byte, error) {
		return []byte("[package\nname ="), nil
	}

	c := &WorkspaceCheck{Getenv: noEnv, Runner: runner, ReadFile: readFile}
	result := c.Run()

	if result.Status != StatusFail {
		t.Errorf("Status = %v, want %v for a manifest that does not parse", result.Status, StatusFail)
	}
}
