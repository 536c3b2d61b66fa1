package http

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/roomvote/api/internal/core/ports"
	"go.uber.org/zap"
)

type VoteHandler struct {
	service ports.VoteService
	logger  *zap.Logger
}

func NewVoteHandler(service ports.VoteService, logger *zap.Logger) *VoteHandler {
	return &VoteHandler{
		service: service,
		logger:  logger,
	}
}

type castVoteRequest struct {
	SuggestionID uuid.UUID `json:"suggestionId"`
	UserSession  string    `json:"userSession"`
	UserName     string    `json:"userName"`
}

func (h *VoteHandler) CastVote(w http.ResponseWriter, r *http.Request) {
	roomID := chi.URLParam(r, "roomID")

	var req castVoteRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	input := ports.CastVoteInput{
		RoomID:       roomID,
		SuggestionID: req.SuggestionID,
		Session:      req.UserSession,
		VoterIP:      ClientIP(r),
		Name:         req.UserName,
	}

	vote, err := h.service.Cast(r.Context(), input)
	if err != nil {
		writeDomainError(h.logger, w, r, err)
		return
	}

	votesCastTotal.Inc()
	h.logger.Info("vote cast",
		zap.String("room_id", roomID),
		zap.String("suggestion_id", vote.SuggestionID.String()),
	)
	writeJSON(w, http.StatusCreated, vote)
}

type retractVoteRequest struct {
	SuggestionID uuid.UUID `json:"suggestionId"`
	UserSession  string    `json:"userSession"`
}

func (h *VoteHandler) RetractVote(w http.ResponseWriter, r *http.Request) {
	roomID := chi.URLParam(r, "roomID")

	var req retractVoteRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	input := ports.RetractVoteInput{
		RoomID:       roomID,
		SuggestionID: req.SuggestionID,
		Session:      req.UserSession,
		VoterIP:      ClientIP(r),
	}

	if err := h.service.Retract(r.Context(), input); err != nil {
		writeDomainError(h.logger, w, r, err)
		return
	}

	votesRetractedTotal.Inc()
	h.logger.Info("vote retracted",
		zap.String("room_id", roomID),
		zap.String("suggestion_id", req.SuggestionID.String()),
	)
	writeJSON(w, http.StatusOK, successResponse{Success: true})
}

func (h *VoteHandler) GetTally(w http.ResponseWriter, r *http.Request) {
	roomID := chi.URLParam(r, "roomID")

	tally, err := h.service.Tally(r.Context(), roomID)
	if err != nil {
		writeDomainError(h.logger, w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, tally)
}

func (h *VoteHandler) GetLeader(w http.ResponseWriter, r *http.Request) {
	roomID := chi.URLParam(r, "roomID")

	leader, err := h.service.Leader(r.Context(), roomID)
	if err != nil {
		writeDomainError(h.logger, w, r, err)
		return
	}

	if leader == nil {
		// No suggestion has any votes yet.
		writeJSON(w, http.StatusOK, struct{}{})
		return
	}
	writeJSON(w, http.StatusOK, leader)
}
