package http

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/roomvote/api/internal/core/domain"
	"github.com/roomvote/api/internal/core/ports"
	"go.uber.org/zap"
)

type SuggestionHandler struct {
	service ports.SuggestionService
	logger  *zap.Logger
}

func NewSuggestionHandler(service ports.SuggestionService, logger *zap.Logger) *SuggestionHandler {
	return &SuggestionHandler{
		service: service,
		logger:  logger,
	}
}

type addSuggestionRequest struct {
	Name        string `json:"name"`
	UserSession string `json:"userSession"`
}

func (h *SuggestionHandler) AddSuggestion(w http.ResponseWriter, r *http.Request) {
	roomID := chi.URLParam(r, "roomID")

	var req addSuggestionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	input := ports.AddSuggestionInput{
		RoomID:    roomID,
		Name:      req.Name,
		CreatedBy: req.UserSession,
	}

	suggestion, err := h.service.Add(r.Context(), input)
	if err != nil {
		writeDomainError(h.logger, w, r, err)
		return
	}

	h.logger.Info("suggestion added",
		zap.String("room_id", roomID),
		zap.String("suggestion_id", suggestion.ID.String()),
	)
	writeJSON(w, http.StatusCreated, suggestion)
}

func (h *SuggestionHandler) ListSuggestions(w http.ResponseWriter, r *http.Request) {
	roomID := chi.URLParam(r, "roomID")

	suggestions, err := h.service.List(r.Context(), roomID)
	if err != nil {
		writeDomainError(h.logger, w, r, err)
		return
	}

	if suggestions == nil {
		suggestions = []*domain.Suggestion{}
	}
	writeJSON(w, http.StatusOK, suggestions)
}
