package http

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/roomvote/api/internal/core/ports"
	"go.uber.org/zap"
)

type RoomHandler struct {
	service ports.RoomService
	logger  *zap.Logger
}

func NewRoomHandler(service ports.RoomService, logger *zap.Logger) *RoomHandler {
	return &RoomHandler{
		service: service,
		logger:  logger,
	}
}

type createRoomRequest struct {
	RoomID    string `json:"roomId"`
	CreatedBy string `json:"createdBy"`
}

func (h *RoomHandler) CreateRoom(w http.ResponseWriter, r *http.Request) {
	var req createRoomRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	input := ports.CreateRoomInput{
		RoomID:    req.RoomID,
		CreatedBy: req.CreatedBy,
	}

	room, err := h.service.Create(r.Context(), input)
	if err != nil {
		writeDomainError(h.logger, w, r, err)
		return
	}

	h.logger.Info("room created", zap.String("room_id", room.ID))
	writeJSON(w, http.StatusCreated, room)
}

func (h *RoomHandler) GetRoom(w http.ResponseWriter, r *http.Request) {
	roomID := r.URL.Query().Get("roomId")
	if roomID == "" {
		writeError(w, http.StatusBadRequest, "roomId is required")
		return
	}

	room, err := h.service.Get(r.Context(), roomID)
	if err != nil {
		writeDomainError(h.logger, w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, room)
}

type setLockRequest struct {
	IsLocked bool `json:"isLocked"`
}

func (h *RoomHandler) SetLock(w http.ResponseWriter, r *http.Request) {
	roomID := chi.URLParam(r, "roomID")

	var req setLockRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	room, err := h.service.SetLock(r.Context(), roomID, req.IsLocked)
	if err != nil {
		writeDomainError(h.logger, w, r, err)
		return
	}

	h.logger.Info("room lock updated",
		zap.String("room_id", room.ID),
		zap.Bool("is_locked", room.IsLocked),
	)
	writeJSON(w, http.StatusOK, room)
}

type successResponse struct {
	Success bool `json:"success"`
}

func (h *RoomHandler) ResetRoom(w http.ResponseWriter, r *http.Request) {
	roomID := chi.URLParam(r, "roomID")

	if err := h.service.Reset(r.Context(), roomID); err != nil {
		writeDomainError(h.logger, w, r, err)
		return
	}

	h.logger.Info("room reset", zap.String("room_id", roomID))
	writeJSON(w, http.StatusOK, successResponse{Success: true})
}
