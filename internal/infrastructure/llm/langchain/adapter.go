package langchain

import (
	"context"
	"fmt"

	"github.com/tmc/langchaingo/llms"
	lcopenai "github.com/tmc/langchaingo/llms/openai"
	"github.com/tmc/langchaingo/schema"

	"debate-crew/internal/application/port/output"
)

var _ output.LLMPort = (*Adapter)(nil)

// Adapter serves the generation capability through langchaingo, for running
// against OpenAI or any OpenAI-compatible endpoint directly instead of
// OpenRouter. Selected with LLM_PROVIDER=openai.
type Adapter struct {
	model  llms.Model
	logger output.LoggerPort
}

type Config struct {
	APIKey  string
	Model   string
	BaseURL string // empty means the provider default
	Logger  output.LoggerPort
}

func New(cfg Config) (*Adapter, error) {
	opts := []lcopenai.Option{lcopenai.WithToken(cfg.APIKey)}
	if cfg.Model != "" {
		opts = append(opts, lcopenai.WithModel(cfg.Model))
	}
	if cfg.BaseURL != "" {
		opts = append(opts, lcopenai.WithBaseURL(cfg.BaseURL))
	}

	model, err := lcopenai.New(opts...)
	if err != nil {
		return nil, fmt.Errorf("init langchaingo client: %w", err)
	}

	return &Adapter{model: model, logger: cfg.Logger}, nil
}

func (a *Adapter) Generate(ctx context.Context, req output.GenerateRequest) (string, error) {
	content := make([]llms.MessageContent, 0, 2)
	if req.System != "" {
		content = append(content, llms.TextParts(schema.ChatMessageTypeSystem, req.System))
	}
	content = append(content, llms.TextParts(schema.ChatMessageTypeHuman, req.Prompt))

	opts := []llms.CallOption{llms.WithTemperature(float64(req.Temperature))}
	if req.Model != "" {
		opts = append(opts, llms.WithModel(req.Model))
	}

	if a.logger != nil {
		a.logger.Debug("Generating content", "model", req.Model, "promptLen", len(req.Prompt))
	}

	resp, err := a.model.GenerateContent(ctx, content, opts...)
	if err != nil {
		return "", fmt.Errorf("generate content: %w", err)
	}

	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("no choices in response")
	}

	return resp.Choices[0].Content, nil
}
