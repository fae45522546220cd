package main

import "fmt"

// ExitError carries a process exit code from a command handler to main,
// which exits with it without printing anything further. A finished
// orchestrator run maps to its own exit code unchanged.
type ExitError struct {
	Code int
}

func (e *ExitError) Error() string {
	return fmt.Sprintf("exit status %d", e.Code)
}
