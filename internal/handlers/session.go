package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"lumina-storefront/internal/middleware"
	"lumina-storefront/internal/models"
	"lumina-storefront/internal/session"
)

type tokenIssuer interface {
	IssueToken(sessionID uuid.UUID) (string, error)
}

type SessionHandler struct {
	sessions  sessionStore
	catalog   session.Catalog
	advisor   session.Advisor
	publisher session.Publisher
	tokens    tokenIssuer
	logger    *zap.Logger
}

func NewSessionHandler(
	sessions sessionStore,
	catalog session.Catalog,
	advisor session.Advisor,
	publisher session.Publisher,
	tokens tokenIssuer,
	logger *zap.Logger,
) *SessionHandler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &SessionHandler{
		sessions:  sessions,
		catalog:   catalog,
		advisor:   advisor,
		publisher: publisher,
		tokens:    tokens,
		logger:    logger,
	}
}

// Create starts an empty storefront session and returns its token.
func (h *SessionHandler) Create(w http.ResponseWriter, r *http.Request) {
	s := session.New(uuid.New(), h.catalog, h.advisor, h.publisher)

	token, err := h.tokens.IssueToken(s.ID)
	if err != nil {
		h.logger.Error("Failed to issue session token", zap.Error(err))
		writeJSON(w, http.StatusInternalServerError, errorResp("INTERNAL_ERROR", "Failed to start session", r))
		return
	}
	h.sessions.Add(s)

	writeJSON(w, http.StatusCreated, models.CreateSessionResponse{
		Token:   token,
		Session: s.Snapshot(),
	})
}

func (h *SessionHandler) Get(w http.ResponseWriter, r *http.Request) {
	s, ok := loadSession(w, r, h.sessions)
	if !ok {
		return
	}
	writeJSON(w, http.StatusOK, s.Snapshot())
}

func (h *SessionHandler) Delete(w http.ResponseWriter, r *http.Request) {
	h.sessions.Delete(middleware.GetSessionID(r.Context()))
	writeJSON(w, http.StatusOK, map[string]string{"message": "Session ended"})
}

func (h *SessionHandler) SelectCategory(w http.ResponseWriter, r *http.Request) {
	s, ok := loadSession(w, r, h.sessions)
	if !ok {
		return
	}

	var req models.SelectCategoryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResp("VALIDATION_ERROR", "Invalid request body", r))
		return
	}

	products, err := s.SelectCategory(req.Category)
	if errors.Is(err, session.ErrUnknownCategory) {
		writeJSON(w, http.StatusBadRequest, validationResp("Unknown category", map[string]string{"category": "unknown"}, r))
		return
	}

	writeJSON(w, http.StatusOK, models.CategoryResponse{
		Category: req.Category,
		Products: products,
	})
}
