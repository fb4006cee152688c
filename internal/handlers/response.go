package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/google/uuid"

	"lumina-storefront/internal/middleware"
	"lumina-storefront/internal/models"
	"lumina-storefront/internal/repository"
	"lumina-storefront/internal/session"
)

// sessionStore is the subset of the session repository handlers need.
type sessionStore interface {
	Add(s *session.Session)
	Get(id uuid.UUID) (*session.Session, error)
	Delete(id uuid.UUID)
}

func writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

func errorResp(code, message string, r *http.Request) models.ErrorResponse {
	return models.ErrorResponse{
		Error: models.APIError{
			Code:      code,
			Message:   message,
			RequestID: r.Header.Get("X-Request-ID"),
		},
	}
}

// validationResp is a VALIDATION_ERROR naming the offending fields.
func validationResp(message string, fields map[string]string, r *http.Request) models.ErrorResponse {
	resp := errorResp("VALIDATION_ERROR", message, r)
	resp.Error.Fields = fields
	return resp
}

// loadSession resolves the session named by the request's token, writing a
// 404 when it has expired or never existed.
func loadSession(w http.ResponseWriter, r *http.Request, sessions sessionStore) (*session.Session, bool) {
	s, err := sessions.Get(middleware.GetSessionID(r.Context()))
	if err != nil {
		writeJSON(w, http.StatusNotFound, errorResp("SESSION_NOT_FOUND", "Session not found or expired", r))
		return nil, false
	}
	return s, true
}

func writeProductLookupError(w http.ResponseWriter, r *http.Request, err error) {
	if errors.Is(err, repository.ErrProductNotFound) {
		writeJSON(w, http.StatusNotFound, errorResp("NOT_FOUND", "Product not found", r))
		return
	}
	writeJSON(w, http.StatusInternalServerError, errorResp("INTERNAL_ERROR", "Failed to load product", r))
}
