package domain

import (
	"time"

	"github.com/google/uuid"
)

const AnonymousVoterName = "Anonymous"

type Vote struct {
	ID           uuid.UUID `json:"id"`
	RoomID       string    `json:"room_id"`
	SuggestionID uuid.UUID `json:"suggestion_id"`
	UserSession  string    `json:"user_session"`
	UserIP       string    `json:"user_ip"`
	UserName     string    `json:"user_name"`
	VoterKey     string    `json:"-"`
	CreatedAt    time.Time `json:"created_at"`
}

// Tally maps suggestion ids to their current vote count. Suggestions with
// zero votes are absent; readers must default to zero.
type Tally map[uuid.UUID]int64

// Leader is the suggestion currently holding the strictly highest tally.
type Leader struct {
	SuggestionID uuid.UUID `json:"suggestion_id"`
	Votes        int64     `json:"votes"`
}

// IdentityMode selects which field identifies a voter for the
// one-vote-per-suggestion rule. By-address tolerates lost sessions but
// collides every client behind a shared address; by-session is precise
// but trivially reset by clearing browser storage.
type IdentityMode string

const (
	IdentityByAddress IdentityMode = "address"
	IdentityBySession IdentityMode = "session"
)

func (m IdentityMode) VoterKey(session, ip string) string {
	if m == IdentityBySession {
		return session
	}
	return ip
}

// ParseIdentityMode returns the mode named by s, defaulting to by-address
// for empty or unrecognized values.
func ParseIdentityMode(s string) IdentityMode {
	if IdentityMode(s) == IdentityBySession {
		return IdentityBySession
	}
	return IdentityByAddress
}
