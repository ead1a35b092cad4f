package entity

// TaskResult is the completed output of one task. Results are created once and
// never mutated.
type TaskResult struct {
	TaskID       string
	AgentID      string
	Description  string
	Output       string
	ArtifactPath string
}

// ExecutionContext accumulates the results of completed tasks in execution
// order. Only the orchestrator appends; tasks read it when composing prompts.
type ExecutionContext struct {
	results []TaskResult
}

func (c *ExecutionContext) Append(r TaskResult) {
	c.results = append(c.results, r)
}

// Results returns a copy so callers cannot mutate the accumulated history.
func (c *ExecutionContext) Results() []TaskResult {
	out := make([]TaskResult, len(c.results))
	copy(out, c.results)
	return out
}

func (c *ExecutionContext) Len() int {
	return len(c.results)
}
