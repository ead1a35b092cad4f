package service

import (
	"context"
	"fmt"

	"debate-crew/internal/application/port/output"
	"debate-crew/internal/domain/entity"
)

// FramingFunc turns an agent spec into the static system prompt framing its
// persona. The exact format is a formatting strategy, not part of the
// orchestration contract, so it is injected.
type FramingFunc func(spec entity.AgentSpec) (string, error)

// Agent is a configured persona bound to the generation capability.
// Construction is total: spec validation already happened at config load.
type Agent struct {
	spec    entity.AgentSpec
	llm     output.LLMPort
	framing FramingFunc
	logger  output.LoggerPort
}

func NewAgent(spec entity.AgentSpec, llm output.LLMPort, framing FramingFunc, logger output.LoggerPort) *Agent {
	return &Agent{
		spec:    spec,
		llm:     llm,
		framing: framing,
		logger:  logger,
	}
}

func (a *Agent) ID() string {
	return a.spec.ID
}

func (a *Agent) Spec() entity.AgentSpec {
	return a.spec
}

// Respond issues a single generation call with the agent's persona composed
// into the system prompt.
func (a *Agent) Respond(ctx context.Context, prompt string) (string, error) {
	system, err := a.framing(a.spec)
	if err != nil {
		return "", fmt.Errorf("compose system prompt: %w", err)
	}

	a.logger.Debug("Agent responding", "agent", a.spec.ID, "model", a.spec.Model, "promptLen", len(prompt))

	result, err := a.llm.Generate(ctx, output.GenerateRequest{
		System: system,
		Prompt: prompt,
		Model:  a.spec.Model,
	})
	if err != nil {
		return "", fmt.Errorf("generate: %w", err)
	}

	return result, nil
}
