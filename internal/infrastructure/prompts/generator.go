package prompts

import (
	"bytes"
	"fmt"
	"strings"
	"text/template"

	"debate-crew/internal/domain/entity"
)

type agentPromptData struct {
	Role      string
	Goal      string
	Backstory string
}

type taskPromptData struct {
	Description    string
	ExpectedOutput string
	Context        string
}

// AgentSystemPrompt frames an agent's persona as the static system prompt.
func AgentSystemPrompt(spec entity.AgentSpec) (string, error) {
	return render("system", SystemPromptTemplate, agentPromptData{
		Role:      spec.Role,
		Goal:      spec.Goal,
		Backstory: spec.Backstory,
	})
}

// TaskPrompt composes the user prompt for one task: the resolved description,
// the expected-output hint, and the verbatim outputs of all prior tasks.
func TaskPrompt(description, expectedOutput string, execCtx *entity.ExecutionContext) (string, error) {
	var context string
	if execCtx != nil && execCtx.Len() > 0 {
		context = RenderContext(execCtx.Results())
	}

	return render("task", TaskPromptTemplate, taskPromptData{
		Description:    description,
		ExpectedOutput: expectedOutput,
		Context:        context,
	})
}

// RenderContext lays out prior task results so a later task can reference each
// earlier output in full.
func RenderContext(results []entity.TaskResult) string {
	var b strings.Builder
	for i, r := range results {
		if i > 0 {
			b.WriteString("\n\n")
		}
		fmt.Fprintf(&b, "--- Output of task %q (agent: %s) ---\n", r.TaskID, r.AgentID)
		b.WriteString(r.Output)
	}
	return b.String()
}

func render(name, baseTemplate string, data any) (string, error) {
	tmpl, err := template.New(name).Parse(baseTemplate)
	if err != nil {
		return "", err
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return "", err
	}

	return buf.String(), nil
}
