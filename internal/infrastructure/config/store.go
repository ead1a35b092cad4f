package config

import (
	_ "embed"
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"debate-crew/internal/domain/entity"
)

//go:embed agents.yaml
var defaultAgentsYAML []byte

//go:embed tasks.yaml
var defaultTasksYAML []byte

// ConfigError collects every definition problem found during load, so a first
// run reports all of them at once instead of failing on the first.
type ConfigError struct {
	Problems []string
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("invalid configuration:\n  - %s", strings.Join(e.Problems, "\n  - "))
}

type agentConfig struct {
	Role      string `yaml:"role"`
	Goal      string `yaml:"goal"`
	Backstory string `yaml:"backstory"`
	Model     string `yaml:"llm"`
}

type taskConfig struct {
	Description    string `yaml:"description"`
	ExpectedOutput string `yaml:"expected_output"`
	Agent          string `yaml:"agent"`
	OutputFile     string `yaml:"output_file"`
}

// Load reads agent and task definitions from the given YAML files.
func Load(agentsPath, tasksPath string) ([]entity.AgentSpec, []entity.TaskSpec, error) {
	agentsRaw, err := os.ReadFile(agentsPath)
	if err != nil {
		return nil, nil, fmt.Errorf("read agents config: %w", err)
	}
	tasksRaw, err := os.ReadFile(tasksPath)
	if err != nil {
		return nil, nil, fmt.Errorf("read tasks config: %w", err)
	}
	return Parse(agentsRaw, tasksRaw)
}

// LoadDefaults builds the embedded debate configuration.
func LoadDefaults() ([]entity.AgentSpec, []entity.TaskSpec, error) {
	return Parse(defaultAgentsYAML, defaultTasksYAML)
}

// Parse decodes both documents and validates them as a unit. Task definition
// order is execution order, so decoding goes through yaml.Node: a plain Go map
// would lose the declaration order of the mapping keys.
func Parse(agentsRaw, tasksRaw []byte) ([]entity.AgentSpec, []entity.TaskSpec, error) {
	agents, err := parseAgents(agentsRaw)
	if err != nil {
		return nil, nil, fmt.Errorf("decode agents: %w", err)
	}
	tasks, err := parseTasks(tasksRaw)
	if err != nil {
		return nil, nil, fmt.Errorf("decode tasks: %w", err)
	}

	if problems := validate(agents, tasks); len(problems) > 0 {
		return nil, nil, &ConfigError{Problems: problems}
	}
	return agents, tasks, nil
}

func parseAgents(raw []byte) ([]entity.AgentSpec, error) {
	keys, nodes, err := mappingEntries(raw)
	if err != nil {
		return nil, err
	}

	specs := make([]entity.AgentSpec, 0, len(keys))
	for i, key := range keys {
		var cfg agentConfig
		if err := nodes[i].Decode(&cfg); err != nil {
			return nil, fmt.Errorf("agent %q: %w", key, err)
		}
		specs = append(specs, entity.AgentSpec{
			ID:        key,
			Role:      cfg.Role,
			Goal:      cfg.Goal,
			Backstory: cfg.Backstory,
			Model:     cfg.Model,
		})
	}
	return specs, nil
}

func parseTasks(raw []byte) ([]entity.TaskSpec, error) {
	keys, nodes, err := mappingEntries(raw)
	if err != nil {
		return nil, err
	}

	specs := make([]entity.TaskSpec, 0, len(keys))
	for i, key := range keys {
		var cfg taskConfig
		if err := nodes[i].Decode(&cfg); err != nil {
			return nil, fmt.Errorf("task %q: %w", key, err)
		}
		specs = append(specs, entity.TaskSpec{
			ID:             key,
			Description:    cfg.Description,
			ExpectedOutput: cfg.ExpectedOutput,
			AgentID:        cfg.Agent,
			OutputFile:     cfg.OutputFile,
		})
	}
	return specs, nil
}

// mappingEntries returns the top-level mapping of a YAML document in
// declaration order.
func mappingEntries(raw []byte) ([]string, []*yaml.Node, error) {
	var doc yaml.Node
	if err := yaml.Unmarshal(raw, &doc); err != nil {
		return nil, nil, err
	}
	if len(doc.Content) == 0 {
		return nil, nil, nil
	}

	root := doc.Content[0]
	if root.Kind != yaml.MappingNode {
		return nil, nil, fmt.Errorf("top-level node must be a mapping, got %v", root.Kind)
	}

	var keys []string
	var values []*yaml.Node
	for i := 0; i+1 < len(root.Content); i += 2 {
		keys = append(keys, root.Content[i].Value)
		values = append(values, root.Content[i+1])
	}
	return keys, values, nil
}

func validate(agents []entity.AgentSpec, tasks []entity.TaskSpec) []string {
	var problems []string

	if len(agents) == 0 {
		problems = append(problems, "no agents defined")
	}
	if len(tasks) == 0 {
		problems = append(problems, "no tasks defined")
	}

	byID := make(map[string]bool, len(agents))
	for _, a := range agents {
		byID[a.ID] = true
		if a.Role == "" {
			problems = append(problems, fmt.Sprintf("agent %q: role is empty", a.ID))
		}
		if a.Goal == "" {
			problems = append(problems, fmt.Sprintf("agent %q: goal is empty", a.ID))
		}
		if a.Backstory == "" {
			problems = append(problems, fmt.Sprintf("agent %q: backstory is empty", a.ID))
		}
		if a.Model == "" {
			problems = append(problems, fmt.Sprintf("agent %q: llm is empty", a.ID))
		}
	}

	for _, t := range tasks {
		if t.Description == "" {
			problems = append(problems, fmt.Sprintf("task %q: description is empty", t.ID))
		}
		if t.ExpectedOutput == "" {
			problems = append(problems, fmt.Sprintf("task %q: expected_output is empty", t.ID))
		}
		switch {
		case t.AgentID == "":
			problems = append(problems, fmt.Sprintf("task %q: agent is empty", t.ID))
		case !byID[t.AgentID]:
			problems = append(problems, fmt.Sprintf("task %q references unknown agent %q", t.ID, t.AgentID))
		}
	}

	return problems
}
