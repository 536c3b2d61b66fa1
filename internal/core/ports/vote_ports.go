package ports

import (
	"context"

	"github.com/google/uuid"
	"github.com/roomvote/api/internal/core/domain"
)

type VoteRepository interface {
	// Save inserts the vote. Returns domain.ErrDuplicateVote when a row for
	// the same (room, suggestion, voter key) already exists.
	Save(ctx context.Context, vote *domain.Vote) error
	HasVoted(ctx context.Context, roomID string, suggestionID uuid.UUID, voterKey string) (bool, error)
	// Delete removes any matching vote; deleting nothing is not an error.
	Delete(ctx context.Context, roomID string, suggestionID uuid.UUID, voterKey string) error
	TallyByRoom(ctx context.Context, roomID string) (domain.Tally, error)
}

type CastVoteInput struct {
	RoomID       string
	SuggestionID uuid.UUID
	Session      string
	VoterIP      string
	Name         string
}

type RetractVoteInput struct {
	RoomID       string
	SuggestionID uuid.UUID
	Session      string
	VoterIP      string
}

type VoteService interface {
	Cast(ctx context.Context, input CastVoteInput) (*domain.Vote, error)
	Retract(ctx context.Context, input RetractVoteInput) error
	Tally(ctx context.Context, roomID string) (domain.Tally, error)
	Leader(ctx context.Context, roomID string) (*domain.Leader, error)
}
