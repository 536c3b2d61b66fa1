package ports

import (
	"context"

	"github.com/roomvote/api/internal/core/domain"
)

type RoomRepository interface {
	Save(ctx context.Context, room *domain.Room) error
	GetByID(ctx context.Context, id string) (*domain.Room, error)
	SetLock(ctx context.Context, id string, locked bool) (*domain.Room, error)
	// Reset deletes every vote and suggestion belonging to the room in a
	// single transaction. The room row itself is untouched.
	Reset(ctx context.Context, id string) error
}

type CreateRoomInput struct {
	RoomID    string
	CreatedBy string
}

type RoomService interface {
	Create(ctx context.Context, input CreateRoomInput) (*domain.Room, error)
	Get(ctx context.Context, roomID string) (*domain.Room, error)
	SetLock(ctx context.Context, roomID string, locked bool) (*domain.Room, error)
	Reset(ctx context.Context, roomID string) error
}
