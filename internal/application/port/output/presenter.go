package output

import "debate-crew/internal/domain/entity"

// PresenterPort renders run progress for a human watching the console.
type PresenterPort interface {
	ShowRunStart(motion string, taskCount int)
	ShowTaskStart(index, total int, taskID, agentID, description string)
	ShowTaskResult(result entity.TaskResult)
	ShowTaskError(taskID string, err error)
	ShowRunComplete(results []entity.TaskResult)
}
