package models

// WebSocket message types
const (
	EventCartUpdated      = "cart_updated"
	EventQuickViewChanged = "quick_view_changed"
	EventAssistantReply   = "assistant_reply"
)

type WSMessage struct {
	Type    string      `json:"type"`
	Payload interface{} `json:"payload"`
}

// API Error response
type APIError struct {
	Code      string            `json:"code"`
	Message   string            `json:"message"`
	Fields    map[string]string `json:"fields,omitempty"`
	RequestID string            `json:"request_id"`
}

type ErrorResponse struct {
	Error APIError `json:"error"`
}
