package input

import (
	"context"

	"debate-crew/internal/domain/entity"
)

// CrewRunner drives an ordered task pipeline over the configured agents.
// On failure the results completed so far are returned alongside the error.
type CrewRunner interface {
	Run(ctx context.Context, inputs entity.RuntimeInputs) ([]entity.TaskResult, error)
}
