package domain

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewRoomCode(t *testing.T) {
	seen := make(map[string]bool)
	for range 100 {
		code := NewRoomCode()
		assert.Len(t, code, RoomCodeLength)
		for _, c := range code {
			assert.True(t, strings.ContainsRune(roomCodeAlphabet, c), "unexpected character %q", c)
		}
		seen[code] = true
	}
	assert.Greater(t, len(seen), 90, "codes should be close to unique")
}

func TestParseIdentityMode(t *testing.T) {
	assert.Equal(t, IdentityByAddress, ParseIdentityMode(""))
	assert.Equal(t, IdentityByAddress, ParseIdentityMode("bogus"))
	assert.Equal(t, IdentityBySession, ParseIdentityMode("session"))
	assert.Equal(t, IdentityByAddress, ParseIdentityMode("address"))
}

func TestVoterKey(t *testing.T) {
	assert.Equal(t, "1.2.3.4", IdentityByAddress.VoterKey("sess", "1.2.3.4"))
	assert.Equal(t, "sess", IdentityBySession.VoterKey("sess", "1.2.3.4"))
}
