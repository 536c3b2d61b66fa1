package services

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/roomvote/api/internal/core/domain"
	"github.com/roomvote/api/internal/core/ports"
)

type voteService struct {
	suggestionRepo ports.SuggestionRepository
	voteRepo       ports.VoteRepository
	identity       domain.IdentityMode
}

func NewVoteService(suggestionRepo ports.SuggestionRepository, voteRepo ports.VoteRepository, identity domain.IdentityMode) ports.VoteService {
	return &voteService{
		suggestionRepo: suggestionRepo,
		voteRepo:       voteRepo,
		identity:       identity,
	}
}

func (s *voteService) Cast(ctx context.Context, input ports.CastVoteInput) (*domain.Vote, error) {
	if input.Session == "" {
		return nil, domain.ErrMissingSession
	}
	if input.SuggestionID == uuid.Nil {
		return nil, domain.ErrMissingSuggestion
	}

	roomID := domain.NormalizeRoomCode(input.RoomID)
	suggestion, err := s.suggestionRepo.GetByID(ctx, input.SuggestionID)
	if err != nil {
		return nil, err
	}
	if suggestion.RoomID != roomID {
		return nil, domain.ErrSuggestionNotFound
	}

	voterKey := s.identity.VoterKey(input.Session, input.VoterIP)

	hasVoted, err := s.voteRepo.HasVoted(ctx, roomID, input.SuggestionID, voterKey)
	if err != nil {
		return nil, err
	}
	if hasVoted {
		return nil, domain.ErrDuplicateVote
	}

	name := input.Name
	if name == "" {
		name = domain.AnonymousVoterName
	}

	vote := &domain.Vote{
		ID:           uuid.New(),
		RoomID:       roomID,
		SuggestionID: input.SuggestionID,
		UserSession:  input.Session,
		UserIP:       input.VoterIP,
		UserName:     name,
		VoterKey:     voterKey,
		CreatedAt:    time.Now(),
	}

	// The unique index on (room, suggestion, voter key) backstops the
	// HasVoted check when two casts race past it.
	if err := s.voteRepo.Save(ctx, vote); err != nil {
		return nil, err
	}

	return vote, nil
}

func (s *voteService) Retract(ctx context.Context, input ports.RetractVoteInput) error {
	if input.Session == "" {
		return domain.ErrMissingSession
	}
	if input.SuggestionID == uuid.Nil {
		return domain.ErrMissingSuggestion
	}

	voterKey := s.identity.VoterKey(input.Session, input.VoterIP)

	// Deliberately not guarded by an existence check: clients flip a vote
	// off by retracting right after a DuplicateVote response.
	return s.voteRepo.Delete(ctx, domain.NormalizeRoomCode(input.RoomID), input.SuggestionID, voterKey)
}

func (s *voteService) Tally(ctx context.Context, roomID string) (domain.Tally, error) {
	return s.voteRepo.TallyByRoom(ctx, domain.NormalizeRoomCode(roomID))
}

func (s *voteService) Leader(ctx context.Context, roomID string) (*domain.Leader, error) {
	roomID = domain.NormalizeRoomCode(roomID)
	suggestions, err := s.suggestionRepo.ListByRoom(ctx, roomID)
	if err != nil {
		return nil, err
	}

	tally, err := s.voteRepo.TallyByRoom(ctx, roomID)
	if err != nil {
		return nil, err
	}

	// Scanning in creation order makes the tie-break deterministic: the
	// earliest suggestion keeps the lead unless strictly beaten.
	var leader *domain.Leader
	for _, suggestion := range suggestions {
		count := tally[suggestion.ID]
		if count == 0 {
			continue
		}
		if leader == nil || count > leader.Votes {
			leader = &domain.Leader{SuggestionID: suggestion.ID, Votes: count}
		}
	}

	return leader, nil
}
