package domain

import (
	"crypto/rand"
	"strings"
	"time"
)

type Room struct {
	ID        string    `json:"id"`
	CreatedAt time.Time `json:"created_at"`
	IsLocked  bool      `json:"is_locked"`
	CreatedBy string    `json:"created_by"`
}

const RoomCodeLength = 6

// Excludes 0/O and 1/I so codes stay readable when shared out loud.
const roomCodeAlphabet = "ABCDEFGHJKLMNPQRSTUVWXYZ23456789"

// NormalizeRoomCode canonicalizes a user-supplied room code. Codes are
// stored and compared in this form, so every entry point must apply it.
func NormalizeRoomCode(code string) string {
	return strings.ToUpper(strings.TrimSpace(code))
}

// NewRoomCode generates a random room code of RoomCodeLength characters.
func NewRoomCode() string {
	buf := make([]byte, RoomCodeLength)
	if _, err := rand.Read(buf); err != nil {
		panic(err) // crypto/rand does not fail on supported platforms
	}
	for i, b := range buf {
		buf[i] = roomCodeAlphabet[int(b)%len(roomCodeAlphabet)]
	}
	return string(buf)
}
