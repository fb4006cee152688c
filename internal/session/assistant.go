package session

import (
	"context"
	"errors"
	"strings"
	"sync"

	"lumina-storefront/internal/models"
)

const Greeting = "Hello! I'm Lumina, your personal shopping concierge. How can I help you find the perfect item today?"

var (
	ErrEmptyMessage = errors.New("message is empty")
	ErrAwaiting     = errors.New("a reply is still pending")
)

// Advisor turns one user message into one reply. It never fails: errors are
// mapped to a user-visible apology by the implementation.
type Advisor interface {
	Advise(ctx context.Context, userText string) string
}

// Assistant is the chat transcript plus the Idle/Awaiting state machine.
// At most one request is outstanding; the transcript is append-only.
type Assistant struct {
	mu       sync.Mutex
	advisor  Advisor
	messages []models.ChatMessage
	awaiting bool
	onReply  func(models.ChatMessage)
}

// NewAssistant seeds the transcript with the greeting. onReply, if set, is
// called after each reply is appended, outside the lock.
func NewAssistant(advisor Advisor, onReply func(models.ChatMessage)) *Assistant {
	return &Assistant{
		advisor:  advisor,
		messages: []models.ChatMessage{{Role: models.RoleAssistant, Content: Greeting}},
		onReply:  onReply,
	}
}

// Submit appends the user message and asks the advisor in the background.
// The returned channel is closed once the reply has been appended. ctx must
// outlive the call; the request always runs to completion.
func (a *Assistant) Submit(ctx context.Context, text string) (<-chan struct{}, error) {
	msg := strings.TrimSpace(text)
	if msg == "" {
		return nil, ErrEmptyMessage
	}

	a.mu.Lock()
	if a.awaiting {
		a.mu.Unlock()
		return nil, ErrAwaiting
	}
	a.awaiting = true
	a.messages = append(a.messages, models.ChatMessage{Role: models.RoleUser, Content: msg})
	a.mu.Unlock()

	done := make(chan struct{})
	go func() {
		defer close(done)
		a.resolve(a.advisor.Advise(ctx, msg))
	}()
	return done, nil
}

func (a *Assistant) resolve(reply string) {
	m := models.ChatMessage{Role: models.RoleAssistant, Content: reply}

	a.mu.Lock()
	a.messages = append(a.messages, m)
	a.awaiting = false
	a.mu.Unlock()

	if a.onReply != nil {
		a.onReply(m)
	}
}

func (a *Assistant) Awaiting() bool {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.awaiting
}

func (a *Assistant) Transcript() models.TranscriptResponse {
	a.mu.Lock()
	defer a.mu.Unlock()

	msgs := make([]models.ChatMessage, len(a.messages))
	copy(msgs, a.messages)
	state := models.AssistantIdle
	if a.awaiting {
		state = models.AssistantAwaiting
	}
	return models.TranscriptResponse{State: state, Messages: msgs}
}
