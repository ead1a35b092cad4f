package userinteraction

import (
	"fmt"

	"github.com/fatih/color"

	"debate-crew/internal/application/port/output"
	"debate-crew/internal/domain/entity"
)

var _ output.PresenterPort = (*ConsolePresenter)(nil)

// ConsolePresenter prints run progress to stdout. When disabled it stays
// silent, so the orchestrator never has to care whether a human is watching.
type ConsolePresenter struct {
	enabled bool
}

func NewConsolePresenter(enabled bool) *ConsolePresenter {
	return &ConsolePresenter{enabled: enabled}
}

func (p *ConsolePresenter) ShowRunStart(motion string, taskCount int) {
	if !p.enabled {
		return
	}
	cyan := color.New(color.FgCyan, color.Bold)
	cyan.Printf("\n━━━ Debate: %s ━━━\n", motion)
	fmt.Printf("%d tasks queued\n", taskCount)
}

func (p *ConsolePresenter) ShowTaskStart(index, total int, taskID, agentID, description string) {
	if !p.enabled {
		return
	}
	yellow := color.New(color.FgYellow, color.Bold)
	yellow.Printf("\n[%d/%d] %s (agent: %s)\n", index, total, taskID, agentID)

	dim := color.New(color.Faint)
	dim.Printf("   %s\n", truncate(description, 200))
}

func (p *ConsolePresenter) ShowTaskResult(result entity.TaskResult) {
	if !p.enabled {
		return
	}
	green := color.New(color.FgGreen)
	green.Printf("✔ %s completed\n", result.TaskID)

	dim := color.New(color.Faint)
	dim.Println(truncate(result.Output, 300))
	if result.ArtifactPath != "" {
		dim.Printf("→ %s\n", result.ArtifactPath)
	}
}

func (p *ConsolePresenter) ShowTaskError(taskID string, err error) {
	if !p.enabled {
		return
	}
	red := color.New(color.FgRed)
	red.Printf("❌ %s failed: %v\n", taskID, err)
}

func (p *ConsolePresenter) ShowRunComplete(results []entity.TaskResult) {
	if !p.enabled || len(results) == 0 {
		return
	}
	green := color.New(color.FgGreen, color.Bold)
	green.Printf("\n━━━ Debate complete ━━━\n")

	final := results[len(results)-1]
	fmt.Println(final.Output)
}

func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	return s[:max] + "..."
}
