package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/roomvote/api/internal/core/domain"
	"go.uber.org/zap"
)

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		http.Error(w, "failed to encode response", http.StatusInternalServerError)
	}
}

type errorResponse struct {
	Error string `json:"error"`
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, errorResponse{Error: message})
}

// writeDomainError maps domain sentinel errors to HTTP statuses. Anything
// unrecognized is a store or programming failure: it is logged and surfaced
// as a generic 500.
func writeDomainError(logger *zap.Logger, w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, domain.ErrInvalidRoomID),
		errors.Is(err, domain.ErrInvalidName),
		errors.Is(err, domain.ErrMissingSession),
		errors.Is(err, domain.ErrMissingSuggestion):
		writeError(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, domain.ErrRoomNotFound),
		errors.Is(err, domain.ErrSuggestionNotFound):
		writeError(w, http.StatusNotFound, err.Error())
	case errors.Is(err, domain.ErrRoomLocked):
		writeError(w, http.StatusForbidden, err.Error())
	case errors.Is(err, domain.ErrRoomExists),
		errors.Is(err, domain.ErrDuplicateVote):
		writeError(w, http.StatusConflict, err.Error())
	default:
		logger.Error("request failed",
			zap.String("method", r.Method),
			zap.String("path", r.URL.Path),
			zap.Error(err),
		)
		writeError(w, http.StatusInternalServerError, domain.ErrInternal.Error())
	}
}
