package entity

// AgentSpec is a declarative agent definition loaded from configuration.
// Specs are immutable once loaded; validation happens at load time.
type AgentSpec struct {
	ID        string
	Role      string
	Goal      string
	Backstory string
	Model     string
}
