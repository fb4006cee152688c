package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"lumina-storefront/internal/models"
	"lumina-storefront/internal/session"
)

type AssistantHandler struct {
	sessions sessionStore
}

func NewAssistantHandler(sessions sessionStore) *AssistantHandler {
	return &AssistantHandler{sessions: sessions}
}

func (h *AssistantHandler) Get(w http.ResponseWriter, r *http.Request) {
	s, ok := loadSession(w, r, h.sessions)
	if !ok {
		return
	}
	writeJSON(w, http.StatusOK, s.Assistant().Transcript())
}

// Submit appends the user's message and returns straight away; the reply is
// appended in the background and pushed as an assistant_reply event. Empty
// messages and messages sent while a reply is pending are dropped.
func (h *AssistantHandler) Submit(w http.ResponseWriter, r *http.Request) {
	s, ok := loadSession(w, r, h.sessions)
	if !ok {
		return
	}

	var req models.ChatRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResp("VALIDATION_ERROR", "Invalid request body", r))
		return
	}

	// The reply outlives this request.
	_, err := s.Assistant().Submit(context.WithoutCancel(r.Context()), req.Message)

	resp := models.SubmitResponse{Accepted: err == nil}
	switch {
	case errors.Is(err, session.ErrEmptyMessage):
		resp.Reason = "empty"
	case errors.Is(err, session.ErrAwaiting):
		resp.Reason = "awaiting"
	}
	resp.TranscriptResponse = s.Assistant().Transcript()

	status := http.StatusOK
	if resp.Accepted {
		status = http.StatusAccepted
	}
	writeJSON(w, status, resp)
}
