package domain

import "sync"

// Turn is a single utterance in a session transcript.
type Turn struct {
	Role Speaker `json:"role"`
	Text string  `json:"text"`
}

// Slots holds the facts the rule engine has elicited so far.
// Each field is present only once extracted; set fields are never cleared.
type Slots struct {
	Product     *string `json:"product,omitempty"`
	OrderNumber *string `json:"order_number,omitempty"`
	Issue       *string `json:"issue,omitempty"`
	SizeDir     *string `json:"size_dir,omitempty"`
	Unopened    *bool   `json:"unopened,omitempty"`
}

// Session is one in-progress or completed simulated dialogue. All mutation
// happens under Mu; the orchestrator serializes submits per session so round
// counting and the ended flag never race.
type Session struct {
	Mu sync.Mutex `json:"-"`

	SessionID string   `json:"session_id"`
	Topic     string   `json:"topic"`
	Scenario  string   `json:"scenario"`
	UserRole  Role     `json:"user_role"`
	AIRole    Role     `json:"ai_role"`
	Modality  Modality `json:"mode"`
	Messages  []Turn   `json:"messages"`
	Rounds    int      `json:"rounds"`
	MaxRounds int      `json:"max_rounds"`
	Ended     bool     `json:"ended"`
	Slots     Slots    `json:"slots"`
	TurnCount int      `json:"turn"`
}

// ArchiveEntry is an immutable snapshot of a completed session.
type ArchiveEntry struct {
	ID        int64    `json:"id"` // capture time in unix millis
	SessionID string   `json:"session_id"`
	Topic     string   `json:"topic"`
	Messages  []Turn   `json:"messages"`
	Rounds    int      `json:"rounds"`
	Modality  Modality `json:"mode"`
}
