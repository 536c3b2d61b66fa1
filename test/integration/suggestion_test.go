package integration

import (
	"fmt"
	"net/http"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/roomvote/api/internal/core/domain"
)

func addSuggestion(t *testing.T, app *TestApp, roomID, name string) domain.Suggestion {
	t.Helper()
	resp := postJSON(t, app, fmt.Sprintf("/api/rooms/%s/suggestions", roomID), map[string]any{
		"name":        name,
		"userSession": "test-session",
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	return decodeBody[domain.Suggestion](t, resp)
}

func listSuggestions(t *testing.T, app *TestApp, roomID string) []domain.Suggestion {
	t.Helper()
	resp, err := app.Client.Get(fmt.Sprintf("%s/api/rooms/%s/suggestions", app.Server.URL, roomID))
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	return decodeBody[[]domain.Suggestion](t, resp)
}

func TestSuggestionFlow(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test")
	}

	app := setupTestApp(t)
	defer app.Teardown(t)

	room := createRoom(t, app, "AB12CD")

	eagle := addSuggestion(t, app, room.ID, "  Eagle  ")
	assert.Equal(t, "Eagle", eagle.Name, "names are trimmed")
	falcon := addSuggestion(t, app, room.ID, "Falcon")

	listed := listSuggestions(t, app, room.ID)
	require.Len(t, listed, 2)
	assert.Equal(t, eagle.ID, listed[0].ID, "oldest first")
	assert.Equal(t, falcon.ID, listed[1].ID)

	// An empty room lists as an empty array, not null.
	empty := createRoom(t, app, "EMPTY1")
	assert.Empty(t, listSuggestions(t, app, empty.ID))
}

func TestSuggestionValidation(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test")
	}

	app := setupTestApp(t)
	defer app.Teardown(t)

	room := createRoom(t, app, "AB12CD")

	post := func(payload map[string]any) int {
		resp := postJSON(t, app, fmt.Sprintf("/api/rooms/%s/suggestions", room.ID), payload)
		resp.Body.Close()
		return resp.StatusCode
	}

	assert.Equal(t, http.StatusBadRequest, post(map[string]any{"name": "   ", "userSession": "s"}))
	assert.Equal(t, http.StatusBadRequest, post(map[string]any{"name": strings.Repeat("x", 51), "userSession": "s"}))
	assert.Equal(t, http.StatusBadRequest, post(map[string]any{"name": "Eagle"}))

	// Unknown room.
	resp := postJSON(t, app, "/api/rooms/NOPE42/suggestions", map[string]any{"name": "Eagle", "userSession": "s"})
	resp.Body.Close()
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestMixedCaseRoomPaths(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test")
	}

	app := setupTestApp(t)
	defer app.Teardown(t)

	createRoom(t, app, "AB12CD")

	// Clients share codes verbally and type them back in any case; every
	// route accepts the lowercase form of a stored room.
	eagle := addSuggestion(t, app, "ab12cd", "Eagle")
	assert.Equal(t, "AB12CD", eagle.RoomID)

	listed := listSuggestions(t, app, "ab12cd")
	require.Len(t, listed, 1)

	castVote(t, app, "ab12cd", eagle.ID.String(), "sess-1", "1.2.3.4")

	tally := getTally(t, app, "ab12cd")
	assert.Equal(t, map[string]int64{eagle.ID.String(): 1}, tally)

	resp, err := app.Client.Get(fmt.Sprintf("%s/api/rooms/%s/leader", app.Server.URL, "ab12cd"))
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	leader := decodeBody[domain.Leader](t, resp)
	assert.Equal(t, eagle.ID, leader.SuggestionID)
}

func TestSuggestionLockGate(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test")
	}

	app := setupTestApp(t)
	defer app.Teardown(t)

	room := createRoom(t, app, "AB12CD")

	resp := postJSON(t, app, fmt.Sprintf("/api/rooms/%s/lock", room.ID), map[string]any{"isLocked": true})
	resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	resp = postJSON(t, app, fmt.Sprintf("/api/rooms/%s/suggestions", room.ID), map[string]any{
		"name":        "Eagle",
		"userSession": "s",
	})
	resp.Body.Close()
	assert.Equal(t, http.StatusForbidden, resp.StatusCode, "locked rooms refuse suggestions")

	resp = postJSON(t, app, fmt.Sprintf("/api/rooms/%s/lock", room.ID), map[string]any{"isLocked": false})
	resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	addSuggestion(t, app, room.ID, "Eagle")
}
