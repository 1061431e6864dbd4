package domain

// AgentOutput is one named sub-analysis inside a multi-agent response.
type AgentOutput struct {
	AgentName string
	Role      string
	Result    string
}

// MultiAgentResult is either a synthesized answer with per-agent detail or an
// error-shaped variant (Failed set, Message carrying the server's reason).
type MultiAgentResult struct {
	FinalAnswer      string
	Agents           map[string]AgentOutput
	ModelsUsed       []string
	CreditsRemaining string

	Failed  bool
	Message string
}
