package controller

import (
	"fmt"
	"net/http"
	"net/url"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func eventBody(title, assignTo string) string {
	if assignTo != "" {
		return fmt.Sprintf(`{"title":%q,"start":"2024-07-12T10:00:00.000Z","end":"2024-07-12T11:00:00.000Z","assign_to":%q}`, title, assignTo)
	}
	return fmt.Sprintf(`{"title":%q,"start":"2024-07-12T10:00:00.000Z","end":"2024-07-12T11:00:00.000Z"}`, title)
}

func TestCreateEventEndpoint(t *testing.T) {
	e := newTestServer(t)

	rec, body := doJSON(t, e, http.MethodPost, "/api/events", eventBody("Team sync", ""))
	require.Equal(t, http.StatusCreated, rec.Code)

	assert.Equal(t, false, body["error"])
	data := body["data"].(map[string]any)
	assert.NotEmpty(t, data["id"])
	assert.Equal(t, "Team sync", data["title"])
}

func TestCreateEventEndpoint_RejectsLooseTimestamps(t *testing.T) {
	e := newTestServer(t)

	payload := `{"title":"Team sync","start":"2024-07-12T10:00:00Z","end":"2024-07-12 11:00:00"}`
	rec, body := doJSON(t, e, http.MethodPost, "/api/events", payload)
	require.Equal(t, http.StatusBadRequest, rec.Code)

	errs := body["errors"].([]any)
	require.Len(t, errs, 2)
	assert.Equal(t, "start", errs[0].(map[string]any)["field"])
	assert.Equal(t, "end", errs[1].(map[string]any)["field"])
}

func TestListEventsEndpoint_Filters(t *testing.T) {
	e := newTestServer(t)

	rec, body := doJSON(t, e, http.MethodPost, "/api/users", johnBody)
	require.Equal(t, http.StatusCreated, rec.Code)
	johnID := body["data"].(map[string]any)["id"].(string)

	rec, _ = doJSON(t, e, http.MethodPost, "/api/events", eventBody("Team sync", johnID))
	require.Equal(t, http.StatusCreated, rec.Code)
	rec, _ = doJSON(t, e, http.MethodPost, "/api/events", eventBody("Retrospective", ""))
	require.Equal(t, http.StatusCreated, rec.Code)

	rec, body = doJSON(t, e, http.MethodGet, "/api/events?search=Team", "")
	require.Equal(t, http.StatusOK, rec.Code)
	events := body["data"].([]any)
	require.Len(t, events, 1)

	event := events[0].(map[string]any)
	assert.Equal(t, "Team sync", event["title"])
	user := event["user"].(map[string]any)
	assert.Equal(t, johnID, user["id"])
	assert.Equal(t, "John Doe", user["name"])

	query := url.Values{"assign_to": []string{johnID, uuid.NewString()}}
	rec, body = doJSON(t, e, http.MethodGet, "/api/events?"+query.Encode(), "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Len(t, body["data"].([]any), 1)
}

func TestUpdateEventEndpoint(t *testing.T) {
	e := newTestServer(t)

	rec, body := doJSON(t, e, http.MethodPost, "/api/events", eventBody("Team sync", ""))
	require.Equal(t, http.StatusCreated, rec.Code)
	id := body["data"].(map[string]any)["id"].(string)

	rec, body = doJSON(t, e, http.MethodPut, "/api/events/"+id, eventBody("Team sync moved", ""))
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Team sync moved", body["data"].(map[string]any)["title"])

	rec, body = doJSON(t, e, http.MethodPut, "/api/events/"+uuid.NewString(), eventBody("Team sync", ""))
	require.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "Event not found", body["error"])
}

func TestDeleteEventEndpoint(t *testing.T) {
	e := newTestServer(t)

	rec, body := doJSON(t, e, http.MethodPost, "/api/events", eventBody("Team sync", ""))
	require.Equal(t, http.StatusCreated, rec.Code)
	id := body["data"].(map[string]any)["id"].(string)

	rec, body = doJSON(t, e, http.MethodDelete, "/api/events/"+id, "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Success deleted event", body["data"].(map[string]any)["message"])

	rec, body = doJSON(t, e, http.MethodDelete, "/api/events/"+id, "")
	require.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "Event not found", body["error"])
}
