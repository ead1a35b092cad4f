package entity

// TaskSpec is one pipeline stage bound to an agent. Description and
// ExpectedOutput may contain {placeholder} tokens resolved from RuntimeInputs
// before execution. OutputFile, when set, is where the raw output is persisted.
type TaskSpec struct {
	ID             string
	Description    string
	ExpectedOutput string
	AgentID        string
	OutputFile     string
}
