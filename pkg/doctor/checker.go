package doctor

// Checker is implemented by all check types.
// Each check inspects one collaborator of the wrapper and returns a Result.
//
// Implementations:
//   - OrchestratorCheck: cargo presence and version
//   - DriverCheck: rpl-driver next to the wrapper
//   - WorkspaceCheck: the cargo project the run would lint
type Checker interface {
	Run() Result
}
