package usecase

import (
	"context"
	"fmt"

	"debate-crew/internal/application/port/input"
	"debate-crew/internal/application/port/output"
	"debate-crew/internal/application/service"
	"debate-crew/internal/domain/entity"
)

var _ input.CrewRunner = (*RunCrewUseCase)(nil)

// RunCrewUseCase drives the task pipeline strictly sequentially: task N+1
// never starts before task N completes and always observes its result.
type RunCrewUseCase struct {
	tasks     []entity.TaskSpec
	agents    *service.AgentRegistry
	runner    *TaskRunner
	logger    output.LoggerPort
	presenter output.PresenterPort
}

func NewRunCrewUseCase(
	tasks []entity.TaskSpec,
	agents *service.AgentRegistry,
	runner *TaskRunner,
	logger output.LoggerPort,
	presenter output.PresenterPort,
) *RunCrewUseCase {
	return &RunCrewUseCase{
		tasks:     tasks,
		agents:    agents,
		runner:    runner,
		logger:    logger,
		presenter: presenter,
	}
}

// Run executes every task in declared order, threading prior results forward
// as context. All templates are bound before the first generation call, so an
// unresolvable placeholder never wastes a model call. On failure the results
// completed so far are returned alongside the error.
func (uc *RunCrewUseCase) Run(ctx context.Context, inputs entity.RuntimeInputs) ([]entity.TaskResult, error) {
	bound, err := uc.bindAll(inputs)
	if err != nil {
		return nil, err
	}

	uc.presenter.ShowRunStart(inputs["motion"], len(bound))
	uc.logger.Info("Run started", "tasks", len(bound), "motion", inputs["motion"])

	results := make([]entity.TaskResult, 0, len(bound))
	execCtx := &entity.ExecutionContext{}

	for i, task := range bound {
		agent, ok := uc.agents.Get(task.spec.AgentID)
		if !ok {
			return results, &UnknownAgentError{TaskID: task.spec.ID, AgentID: task.spec.AgentID}
		}

		uc.presenter.ShowTaskStart(i+1, len(bound), task.spec.ID, agent.ID(), task.description)

		result, err := uc.runner.Execute(ctx, task, agent, execCtx)
		if result != nil {
			results = append(results, *result)
			execCtx.Append(*result)
		}
		if err != nil {
			uc.logger.Error("Task failed", "task", task.spec.ID, "error", err)
			uc.presenter.ShowTaskError(task.spec.ID, err)
			return results, fmt.Errorf("run aborted: %w", err)
		}

		uc.presenter.ShowTaskResult(*result)
		uc.logger.Info("Task completed", "task", task.spec.ID, "outputLen", len(result.Output))
	}

	uc.presenter.ShowRunComplete(results)
	uc.logger.Info("Run completed", "tasks", len(results))

	return results, nil
}

func (uc *RunCrewUseCase) bindAll(inputs entity.RuntimeInputs) ([]boundTask, error) {
	bound := make([]boundTask, 0, len(uc.tasks))
	for _, spec := range uc.tasks {
		description, err := service.Bind(spec.Description, inputs)
		if err != nil {
			return nil, fmt.Errorf("task %q description: %w", spec.ID, err)
		}
		expectedOutput, err := service.Bind(spec.ExpectedOutput, inputs)
		if err != nil {
			return nil, fmt.Errorf("task %q expected_output: %w", spec.ID, err)
		}
		bound = append(bound, boundTask{
			spec:           spec,
			description:    description,
			expectedOutput: expectedOutput,
		})
	}
	return bound, nil
}
