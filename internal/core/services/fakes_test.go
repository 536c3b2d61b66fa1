package services

import (
	"context"
	"fmt"
	"sort"

	"github.com/google/uuid"
	"github.com/roomvote/api/internal/core/domain"
)

type fakeRoomRepo struct {
	rooms      map[string]*domain.Room
	resetCalls []string
	saveErr    error
}

func newFakeRoomRepo() *fakeRoomRepo {
	return &fakeRoomRepo{rooms: make(map[string]*domain.Room)}
}

func (f *fakeRoomRepo) Save(_ context.Context, room *domain.Room) error {
	if f.saveErr != nil {
		return f.saveErr
	}
	if _, ok := f.rooms[room.ID]; ok {
		return domain.ErrRoomExists
	}
	clone := *room
	f.rooms[room.ID] = &clone
	return nil
}

func (f *fakeRoomRepo) GetByID(_ context.Context, id string) (*domain.Room, error) {
	room, ok := f.rooms[id]
	if !ok {
		return nil, domain.ErrRoomNotFound
	}
	clone := *room
	return &clone, nil
}

func (f *fakeRoomRepo) SetLock(_ context.Context, id string, locked bool) (*domain.Room, error) {
	room, ok := f.rooms[id]
	if !ok {
		return nil, domain.ErrRoomNotFound
	}
	room.IsLocked = locked
	clone := *room
	return &clone, nil
}

func (f *fakeRoomRepo) Reset(_ context.Context, id string) error {
	f.resetCalls = append(f.resetCalls, id)
	return nil
}

type fakeSuggestionRepo struct {
	suggestions map[uuid.UUID]*domain.Suggestion
}

func newFakeSuggestionRepo() *fakeSuggestionRepo {
	return &fakeSuggestionRepo{suggestions: make(map[uuid.UUID]*domain.Suggestion)}
}

func (f *fakeSuggestionRepo) Save(_ context.Context, suggestion *domain.Suggestion) error {
	clone := *suggestion
	f.suggestions[suggestion.ID] = &clone
	return nil
}

func (f *fakeSuggestionRepo) GetByID(_ context.Context, id uuid.UUID) (*domain.Suggestion, error) {
	suggestion, ok := f.suggestions[id]
	if !ok {
		return nil, domain.ErrSuggestionNotFound
	}
	clone := *suggestion
	return &clone, nil
}

func (f *fakeSuggestionRepo) ListByRoom(_ context.Context, roomID string) ([]*domain.Suggestion, error) {
	var out []*domain.Suggestion
	for _, s := range f.suggestions {
		if s.RoomID == roomID {
			clone := *s
			out = append(out, &clone)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.Before(out[j].CreatedAt) })
	return out, nil
}

type fakeVoteRepo struct {
	votes map[string]*domain.Vote
}

func newFakeVoteRepo() *fakeVoteRepo {
	return &fakeVoteRepo{votes: make(map[string]*domain.Vote)}
}

func voteKey(roomID string, suggestionID uuid.UUID, voterKey string) string {
	return fmt.Sprintf("%s/%s/%s", roomID, suggestionID, voterKey)
}

func (f *fakeVoteRepo) Save(_ context.Context, vote *domain.Vote) error {
	key := voteKey(vote.RoomID, vote.SuggestionID, vote.VoterKey)
	if _, ok := f.votes[key]; ok {
		return domain.ErrDuplicateVote
	}
	clone := *vote
	f.votes[key] = &clone
	return nil
}

func (f *fakeVoteRepo) HasVoted(_ context.Context, roomID string, suggestionID uuid.UUID, voterKey string) (bool, error) {
	_, ok := f.votes[voteKey(roomID, suggestionID, voterKey)]
	return ok, nil
}

func (f *fakeVoteRepo) Delete(_ context.Context, roomID string, suggestionID uuid.UUID, voterKey string) error {
	delete(f.votes, voteKey(roomID, suggestionID, voterKey))
	return nil
}

func (f *fakeVoteRepo) TallyByRoom(_ context.Context, roomID string) (domain.Tally, error) {
	tally := make(domain.Tally)
	for _, v := range f.votes {
		if v.RoomID == roomID {
			tally[v.SuggestionID]++
		}
	}
	return tally, nil
}
