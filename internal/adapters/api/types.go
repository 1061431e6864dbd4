package api

// Wire shapes for the platform's JSON envelopes. These stay inside the
// adapter; typed domain values cross the port boundary.

type wireUser struct {
	Email         string `json:"email"`
	Name          string `json:"name"`
	Authenticated bool   `json:"authenticated"`
}

type authStateResponse struct {
	User          *wireUser `json:"user"`
	Authenticated bool      `json:"authenticated"`
	Credits       string    `json:"credits"`
}

type chatRequest struct {
	Query string `json:"query"`
}

type chatResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	Data    *struct {
		Response string `json:"response"`
	} `json:"data"`
	CreditsRemaining string `json:"credits_remaining"`
}

type wireChatRecord struct {
	Question  string `json:"question"`
	Answer    string `json:"answer"`
	CreatedAt string `json:"created_at"`
}

type chatHistoryResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	Data    *struct {
		History []wireChatRecord `json:"history"`
		Total   int              `json:"total"`
	} `json:"data"`
}

type multiAgentRequest struct {
	Task          string `json:"task"`
	UseMultiAgent bool   `json:"use_multi_agent"`
}

type wireAgentOutput struct {
	AgentName string `json:"agent"`
	Role      string `json:"role"`
	Result    string `json:"result"`
}

type multiAgentResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	Data    *struct {
		FinalAnswer       string                     `json:"final_answer"`
		MultiAgentResults map[string]wireAgentOutput `json:"multi_agent_results"`
		ModelsUsed        []string                   `json:"models_used"`
	} `json:"data"`
	CreditsRemaining string `json:"credits_remaining"`
}

type imageRequest struct {
	Prompt string `json:"prompt"`
}

type imageResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	Data    *struct {
		Image  string `json:"image"`
		Prompt string `json:"prompt"`
	} `json:"data"`
	CreditsRemaining string `json:"credits_remaining"`
}

type creditsResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	Data    *struct {
		Credits string `json:"credits"`
		UserID  string `json:"user_id"`
	} `json:"data"`
}

type simOrderRequest struct {
	Service  string `json:"service"`
	Operator string `json:"operator"`
}
