package domain

import "errors"

var (
	ErrRoomNotFound       = errors.New("room not found")
	ErrRoomExists         = errors.New("room already exists")
	ErrRoomLocked         = errors.New("room is locked")
	ErrInvalidRoomID      = errors.New("invalid room id")
	ErrInvalidName        = errors.New("invalid suggestion name")
	ErrMissingSession     = errors.New("user session is required")
	ErrMissingSuggestion  = errors.New("suggestion id is required")
	ErrSuggestionNotFound = errors.New("suggestion not found")
	ErrDuplicateVote      = errors.New("already voted for this suggestion")
	ErrInternal           = errors.New("internal server error")
)
