package usecase

import "fmt"

// GenerationError reports a failed generation call for one task. It aborts the
// remaining sequence; retrying is the capability's concern, not ours.
type GenerationError struct {
	TaskID  string
	AgentID string
	Err     error
}

func (e *GenerationError) Error() string {
	return fmt.Sprintf("task %q: agent %q generation failed: %v", e.TaskID, e.AgentID, e.Err)
}

func (e *GenerationError) Unwrap() error { return e.Err }

// ArtifactWriteError reports a failed artifact write. The in-memory TaskResult
// stays valid: the generated content exists even when persistence failed.
type ArtifactWriteError struct {
	TaskID string
	Path   string
	Err    error
}

func (e *ArtifactWriteError) Error() string {
	return fmt.Sprintf("task %q: write artifact %q: %v", e.TaskID, e.Path, e.Err)
}

func (e *ArtifactWriteError) Unwrap() error { return e.Err }

// UnknownAgentError means a task references an agent missing from the
// registry. Config validation makes this unreachable in practice, so hitting
// it indicates a programming error, not a user error.
type UnknownAgentError struct {
	TaskID  string
	AgentID string
}

func (e *UnknownAgentError) Error() string {
	return fmt.Sprintf("task %q references unknown agent %q", e.TaskID, e.AgentID)
}
