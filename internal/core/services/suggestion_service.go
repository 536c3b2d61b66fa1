package services

import (
	"context"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"
	"github.com/roomvote/api/internal/core/domain"
	"github.com/roomvote/api/internal/core/ports"
)

type suggestionService struct {
	roomRepo ports.RoomRepository
	repo     ports.SuggestionRepository
}

func NewSuggestionService(roomRepo ports.RoomRepository, repo ports.SuggestionRepository) ports.SuggestionService {
	return &suggestionService{
		roomRepo: roomRepo,
		repo:     repo,
	}
}

func (s *suggestionService) Add(ctx context.Context, input ports.AddSuggestionInput) (*domain.Suggestion, error) {
	name := strings.TrimSpace(input.Name)
	// Length bound counts characters, not bytes: a multibyte name within
	// the limit is valid.
	if name == "" || utf8.RuneCountInString(name) > domain.MaxSuggestionNameLen {
		return nil, domain.ErrInvalidName
	}
	if input.CreatedBy == "" {
		return nil, domain.ErrMissingSession
	}

	room, err := s.roomRepo.GetByID(ctx, domain.NormalizeRoomCode(input.RoomID))
	if err != nil {
		return nil, err
	}
	if room.IsLocked {
		return nil, domain.ErrRoomLocked
	}

	suggestion := &domain.Suggestion{
		ID:        uuid.New(),
		RoomID:    room.ID,
		Name:      name,
		CreatedAt: time.Now(),
		CreatedBy: input.CreatedBy,
	}

	if err := s.repo.Save(ctx, suggestion); err != nil {
		return nil, err
	}

	return suggestion, nil
}

func (s *suggestionService) List(ctx context.Context, roomID string) ([]*domain.Suggestion, error) {
	return s.repo.ListByRoom(ctx, domain.NormalizeRoomCode(roomID))
}
