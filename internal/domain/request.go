package domain

// StartRequest is the body for POST /api/{call,chat}/start.
type StartRequest struct {
	Topic    string `json:"topic,omitempty"`
	Scenario string `json:"scenario,omitempty"`
	UserRole Role   `json:"user_role,omitempty"`
	Rounds   int    `json:"rounds,omitempty"`
}

// StartResponse is the response for a started session.
type StartResponse struct {
	SessionID string `json:"session_id"`
	Opening   string `json:"opening"`
	AIRole    Role   `json:"ai_role"`
}

// SendRequest is the body for POST /api/{call,chat}/send.
type SendRequest struct {
	SessionID string `json:"session_id"`
	Text      string `json:"text"`
}

// SendResponse is the response for a submitted turn. Reply is omitted on
// the terminating round.
type SendResponse struct {
	Reply  string `json:"reply,omitempty"`
	Rounds int    `json:"rounds"`
	Ended  bool   `json:"ended"`
}

// SendResult is what the orchestrator returns for an accepted turn.
type SendResult struct {
	Reply  string
	Rounds int
	Ended  bool
}

// KeyRequest is the body for POST /api/key.
type KeyRequest struct {
	APIKey string `json:"api_key"`
}

// Feedback is the outcome of post-hoc transcript evaluation.
type Feedback struct {
	Text  string `json:"feedback"`
	Score int    `json:"score"`
}

// ProviderStatus describes current collaborator availability.
type ProviderStatus struct {
	OK        bool   `json:"ok"`
	Provider  string `json:"provider,omitempty"`
	Model     string `json:"model,omitempty"`
	GeminiSet bool   `json:"gemini_set"`
}

// TTSRequest is the body for POST /api/tts.
type TTSRequest struct {
	Text string `json:"text"`
}
