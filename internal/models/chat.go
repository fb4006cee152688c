package models

const (
	RoleUser      = "user"
	RoleAssistant = "assistant"
)

// Assistant states.
const (
	AssistantIdle     = "idle"
	AssistantAwaiting = "awaiting"
)

// ChatMessage represents a single message in a conversation.
type ChatMessage struct {
	Role    string `json:"role"` // "user" or "assistant"
	Content string `json:"content"`
}

// ChatRequest is the payload sent to the assistant endpoint.
type ChatRequest struct {
	Message string `json:"message"`
}

// TranscriptResponse is the assistant's current state and full transcript.
type TranscriptResponse struct {
	State    string        `json:"state"`
	Messages []ChatMessage `json:"messages"`
}

// SubmitResponse reports whether a chat submission was taken.
type SubmitResponse struct {
	Accepted bool   `json:"accepted"`
	Reason   string `json:"reason,omitempty"` // "empty" | "awaiting"
	TranscriptResponse
}
