package services

import (
	"context"
	"errors"
	"regexp"
	"time"

	"github.com/roomvote/api/internal/core/domain"
	"github.com/roomvote/api/internal/core/ports"
)

var roomCodePattern = regexp.MustCompile(`^[A-Z0-9]{4,10}$`)

// generated codes rarely collide, but the retry keeps creation reliable
// even on a busy instance
const maxCodeAttempts = 5

type roomService struct {
	repo ports.RoomRepository
}

func NewRoomService(repo ports.RoomRepository) ports.RoomService {
	return &roomService{
		repo: repo,
	}
}

func (s *roomService) Create(ctx context.Context, input ports.CreateRoomInput) (*domain.Room, error) {
	createdBy := input.CreatedBy
	if createdBy == "" {
		createdBy = "anonymous"
	}

	roomID := domain.NormalizeRoomCode(input.RoomID)
	if roomID != "" {
		if !roomCodePattern.MatchString(roomID) {
			return nil, domain.ErrInvalidRoomID
		}
		room := &domain.Room{
			ID:        roomID,
			CreatedAt: time.Now(),
			IsLocked:  false,
			CreatedBy: createdBy,
		}
		if err := s.repo.Save(ctx, room); err != nil {
			return nil, err
		}
		return room, nil
	}

	for range maxCodeAttempts {
		room := &domain.Room{
			ID:        domain.NewRoomCode(),
			CreatedAt: time.Now(),
			IsLocked:  false,
			CreatedBy: createdBy,
		}
		err := s.repo.Save(ctx, room)
		if errors.Is(err, domain.ErrRoomExists) {
			continue
		}
		if err != nil {
			return nil, err
		}
		return room, nil
	}
	return nil, domain.ErrRoomExists
}

func (s *roomService) Get(ctx context.Context, roomID string) (*domain.Room, error) {
	roomID = domain.NormalizeRoomCode(roomID)
	if roomID == "" {
		return nil, domain.ErrInvalidRoomID
	}
	return s.repo.GetByID(ctx, roomID)
}

func (s *roomService) SetLock(ctx context.Context, roomID string, locked bool) (*domain.Room, error) {
	roomID = domain.NormalizeRoomCode(roomID)
	if roomID == "" {
		return nil, domain.ErrInvalidRoomID
	}
	return s.repo.SetLock(ctx, roomID, locked)
}

func (s *roomService) Reset(ctx context.Context, roomID string) error {
	roomID = domain.NormalizeRoomCode(roomID)
	if roomID == "" {
		return domain.ErrInvalidRoomID
	}
	return s.repo.Reset(ctx, roomID)
}
