package usecase

import (
	"context"
	"fmt"

	"debate-crew/internal/application/port/output"
	"debate-crew/internal/application/service"
	"debate-crew/internal/domain/entity"
)

// boundTask is a TaskSpec whose templates are already resolved against the
// runtime inputs.
type boundTask struct {
	spec           entity.TaskSpec
	description    string
	expectedOutput string
}

// PromptComposer builds the user prompt for a task from its resolved templates
// and the accumulated prior results. Like FramingFunc, the exact layout is a
// formatting strategy and is injected rather than imported.
type PromptComposer func(description, expectedOutput string, execCtx *entity.ExecutionContext) (string, error)

// TaskRunner executes a single bound task against its agent.
type TaskRunner struct {
	compose   PromptComposer
	artifacts output.ArtifactStorePort
	logger    output.LoggerPort
}

func NewTaskRunner(compose PromptComposer, artifacts output.ArtifactStorePort, logger output.LoggerPort) *TaskRunner {
	return &TaskRunner{
		compose:   compose,
		artifacts: artifacts,
		logger:    logger,
	}
}

// Execute composes the prompt from the resolved templates and the accumulated
// context, invokes the agent, and persists the output when the task declares
// an output file. On artifact failure the completed result is returned
// alongside the error.
func (r *TaskRunner) Execute(ctx context.Context, task boundTask, agent *service.Agent, execCtx *entity.ExecutionContext) (*entity.TaskResult, error) {
	prompt, err := r.compose(task.description, task.expectedOutput, execCtx)
	if err != nil {
		return nil, fmt.Errorf("task %q: compose prompt: %w", task.spec.ID, err)
	}

	r.logger.Info("Executing task", "task", task.spec.ID, "agent", agent.ID(), "contextTasks", execCtx.Len())

	answer, err := agent.Respond(ctx, prompt)
	if err != nil {
		return nil, &GenerationError{TaskID: task.spec.ID, AgentID: agent.ID(), Err: err}
	}

	result := &entity.TaskResult{
		TaskID:      task.spec.ID,
		AgentID:     agent.ID(),
		Description: task.description,
		Output:      answer,
	}

	if task.spec.OutputFile != "" {
		path, err := r.artifacts.Write(task.spec.OutputFile, answer)
		if err != nil {
			return result, &ArtifactWriteError{TaskID: task.spec.ID, Path: task.spec.OutputFile, Err: err}
		}
		result.ArtifactPath = path
		r.logger.Info("Artifact written", "task", task.spec.ID, "path", path)
	}

	return result, nil
}
