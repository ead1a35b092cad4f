package service

// AgentRegistry resolves agent identifiers to constructed agents. Registration
// order is preserved so List is deterministic.
type AgentRegistry struct {
	agents map[string]*Agent
	order  []string
}

func NewAgentRegistry() *AgentRegistry {
	return &AgentRegistry{
		agents: make(map[string]*Agent),
	}
}

func (r *AgentRegistry) Register(agent *Agent) {
	if _, exists := r.agents[agent.ID()]; !exists {
		r.order = append(r.order, agent.ID())
	}
	r.agents[agent.ID()] = agent
}

func (r *AgentRegistry) Get(id string) (*Agent, bool) {
	agent, ok := r.agents[id]
	return agent, ok
}

func (r *AgentRegistry) List() []string {
	result := make([]string, len(r.order))
	copy(result, r.order)
	return result
}
