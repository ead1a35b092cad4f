package main

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"debate-crew/internal/di"
	"debate-crew/internal/domain/entity"
	"debate-crew/internal/infrastructure/env"
)

const defaultMotion = "AI LLMs will significantly improve human productivity"

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Run the debate crew on a motion",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runDebate(cmd)
	},
}

func defaultInputs() entity.RuntimeInputs {
	return entity.RuntimeInputs{
		"motion":       defaultMotion,
		"current_year": strconv.Itoa(time.Now().Year()),
	}
}

func runDebate(cmd *cobra.Command) error {
	inputs := defaultInputs()
	if motion := strings.TrimSpace(motionFlag); motion != "" {
		inputs["motion"] = motion
	}

	envService := env.NewEnvService()
	verbose := verboseFlag || envService.GetBool("DEBATE_VERBOSE", false)

	cfg := di.Config{
		Provider:   envService.GetWithDefault("LLM_PROVIDER", di.ProviderOpenRouter),
		AgentsPath: agentsConfigFlag,
		TasksPath:  tasksConfigFlag,
		OutputDir:  outputDirFlag,
		Verbose:    verbose,
	}

	switch cfg.Provider {
	case di.ProviderOpenRouter:
		cfg.APIKey = envService.MustGet("OPENROUTER_API_KEY")
		cfg.Model = envService.GetWithDefault("OPENROUTER_MODEL_NAME", "openai/gpt-4o-mini")
		cfg.BaseURL = envService.Get("OPENROUTER_BASE_URL")
	case di.ProviderOpenAI:
		cfg.APIKey = envService.MustGet("OPENAI_API_KEY")
		cfg.Model = envService.GetWithDefault("OPENAI_MODEL_NAME", "gpt-4o-mini")
		cfg.BaseURL = envService.Get("OPENAI_BASE_URL")
	default:
		return fmt.Errorf("unknown LLM_PROVIDER %q", cfg.Provider)
	}

	container, err := di.NewContainer(cfg)
	if err != nil {
		return fmt.Errorf("initialization failed: %w", err)
	}
	defer container.Close()

	container.Logger.Info("Debate started",
		"motion", inputs["motion"],
		"tasks", len(container.Tasks),
		"agents", len(container.Agents),
	)

	results, err := container.Crew.Run(cmd.Context(), inputs)
	if err != nil {
		container.Logger.Error("Debate failed", "completed", len(results), "error", err)
		if len(results) > 0 {
			fmt.Fprintf(os.Stderr, "completed %d of %d tasks before failure\n", len(results), len(container.Tasks))
			for _, r := range results {
				fmt.Fprintf(os.Stderr, "  - %s (agent: %s)\n", r.TaskID, r.AgentID)
			}
		}
		return err
	}

	container.Logger.Info("Debate completed", "tasks", len(results))

	if verdict, ok := finalVerdict(verbose, results); ok {
		fmt.Println(verdict)
	}

	return nil
}

// finalVerdict returns the text to print on stdout after a successful run.
// When verbose the presenter already showed the verdict, so printing it again
// here would duplicate it.
func finalVerdict(verbose bool, results []entity.TaskResult) (string, bool) {
	if verbose || len(results) == 0 {
		return "", false
	}
	return results[len(results)-1].Output, true
}
