// Package driverpath locates the rpl-driver executable that performs the
// actual analysis work.
//
// The driver ships next to the wrapper binary, so the production locator
// derives its path from the running executable. The Locator interface keeps
// that platform-coupled lookup swappable in tests.
package driverpath

import (
	"fmt"
	"os"
	"path/filepath"
)

// Locator resolves the path of the analysis driver.
type Locator interface {
	Locate() (string, error)
}

// Sibling locates the driver in the directory of the currently running
// executable.
type Sibling struct {
	// ExecutablePath reports the running binary's path. When nil,
	// os.Executable is used.
	ExecutablePath func() (string, error)
}

// Locate joins the running executable's directory with the platform's
// driver file name.
func (s *Sibling) Locate() (string, error) {
	executablePath := s.ExecutablePath
	if executablePath == nil {
		executablePath = os.Executable
	}

	exe, err := executablePath()
	if err != nil {
		return "", fmt.Errorf("resolve own executable path: %w", err)
	}

	return filepath.Join(filepath.Dir(exe), driverFileName), nil
}
