package domain

import (
	"time"

	"github.com/google/uuid"
)

const MaxSuggestionNameLen = 50

type Suggestion struct {
	ID        uuid.UUID `json:"id"`
	RoomID    string    `json:"room_id"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"created_at"`
	CreatedBy string    `json:"created_by"`
}
