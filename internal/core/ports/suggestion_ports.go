package ports

import (
	"context"

	"github.com/google/uuid"
	"github.com/roomvote/api/internal/core/domain"
)

type SuggestionRepository interface {
	Save(ctx context.Context, suggestion *domain.Suggestion) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Suggestion, error)
	ListByRoom(ctx context.Context, roomID string) ([]*domain.Suggestion, error)
}

type AddSuggestionInput struct {
	RoomID    string
	Name      string
	CreatedBy string
}

type SuggestionService interface {
	Add(ctx context.Context, input AddSuggestionInput) (*domain.Suggestion, error)
	List(ctx context.Context, roomID string) ([]*domain.Suggestion, error)
}
