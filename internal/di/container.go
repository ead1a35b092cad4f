package di

import (
	"fmt"

	"github.com/google/uuid"

	"debate-crew/internal/application/port/input"
	"debate-crew/internal/application/port/output"
	"debate-crew/internal/application/service"
	"debate-crew/internal/application/usecase"
	"debate-crew/internal/domain/entity"
	"debate-crew/internal/infrastructure/artifact"
	"debate-crew/internal/infrastructure/config"
	"debate-crew/internal/infrastructure/llm/langchain"
	"debate-crew/internal/infrastructure/llm/openrouter"
	"debate-crew/internal/infrastructure/logger"
	"debate-crew/internal/infrastructure/prompts"
	"debate-crew/internal/infrastructure/userinteraction"
)

const (
	ProviderOpenRouter = "openrouter"
	ProviderOpenAI     = "openai"
)

type Container struct {
	RunID  string
	Logger output.LoggerPort
	LLM    output.LLMPort
	Agents []entity.AgentSpec
	Tasks  []entity.TaskSpec
	Crew   input.CrewRunner
}

type Config struct {
	Provider string
	APIKey   string
	Model    string
	BaseURL  string

	// AgentsPath/TasksPath empty means the embedded debate configuration.
	AgentsPath string
	TasksPath  string
	OutputDir  string
	Verbose    bool
}

func NewContainer(cfg Config) (*Container, error) {
	runID := uuid.NewString()

	zapLog, err := logger.NewZapAdapter(runID[:8], cfg.Verbose)
	if err != nil {
		return nil, fmt.Errorf("failed to create logger: %w", err)
	}
	log := zapLog.WithField("run_id", runID)

	llm, err := newLLM(cfg, log)
	if err != nil {
		log.Close()
		return nil, err
	}

	agents, tasks, err := loadSpecs(cfg)
	if err != nil {
		log.Close()
		return nil, err
	}

	registry := service.NewAgentRegistry()
	for _, spec := range agents {
		registry.Register(service.NewAgent(spec, llm, prompts.AgentSystemPrompt, log))
	}

	artifacts := artifact.NewFileStore(cfg.OutputDir)
	presenter := userinteraction.NewConsolePresenter(cfg.Verbose)
	runner := usecase.NewTaskRunner(prompts.TaskPrompt, artifacts, log)
	crew := usecase.NewRunCrewUseCase(tasks, registry, runner, log, presenter)

	return &Container{
		RunID:  runID,
		Logger: log,
		LLM:    llm,
		Agents: agents,
		Tasks:  tasks,
		Crew:   crew,
	}, nil
}

func (c *Container) Close() {
	if c.Logger != nil {
		c.Logger.Close()
	}
}

func newLLM(cfg Config, log output.LoggerPort) (output.LLMPort, error) {
	switch cfg.Provider {
	case ProviderOpenRouter, "":
		llmCfg := openrouter.DefaultConfig(cfg.APIKey, cfg.Model)
		if cfg.BaseURL != "" {
			llmCfg.BaseURL = cfg.BaseURL
		}
		llmCfg.Logger = log
		return openrouter.New(llmCfg), nil
	case ProviderOpenAI:
		return langchain.New(langchain.Config{
			APIKey:  cfg.APIKey,
			Model:   cfg.Model,
			BaseURL: cfg.BaseURL,
			Logger:  log,
		})
	default:
		return nil, fmt.Errorf("unknown LLM provider %q", cfg.Provider)
	}
}

func loadSpecs(cfg Config) ([]entity.AgentSpec, []entity.TaskSpec, error) {
	switch {
	case cfg.AgentsPath == "" && cfg.TasksPath == "":
		return config.LoadDefaults()
	case cfg.AgentsPath != "" && cfg.TasksPath != "":
		return config.Load(cfg.AgentsPath, cfg.TasksPath)
	default:
		return nil, nil, fmt.Errorf("agents and tasks config paths must be set together")
	}
}
