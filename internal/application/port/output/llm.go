package output

import "context"

// LLMPort is the opaque text generation capability. Each task issues exactly
// one Generate call; retry policy belongs to the adapter behind this port.
type LLMPort interface {
	Generate(ctx context.Context, req GenerateRequest) (string, error)
}

type GenerateRequest struct {
	System      string
	Prompt      string
	Model       string
	Temperature float32
}
