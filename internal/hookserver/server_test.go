package hookserver

import (
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/go-trello/trello/internal/hookstore"
)

func newTestServer(t *testing.T) (*Server, *hookstore.Store) {
	t.Helper()
	store, err := hookstore.Open(filepath.Join(t.TempDir(), "deliveries.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = store.Close() })
	return New(store, zap.NewNop()), store
}

func TestVerificationRequestsAreAcked(t *testing.T) {
	srv, _ := newTestServer(t)

	for _, method := range []string{http.MethodHead, http.MethodGet} {
		req := httptest.NewRequest(method, "/trello-webhook", nil)
		rec := httptest.NewRecorder()
		srv.Handler().ServeHTTP(rec, req)
		assert.Equal(t, http.StatusOK, rec.Code, "%s must be acknowledged", method)
	}
}

func TestEmptyPostIsAcked(t *testing.T) {
	srv, store := newTestServer(t)

	req := httptest.NewRequest(http.MethodPost, "/trello-webhook", nil)
	rec := httptest.NewRecorder()
	srv.Handler().ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	recent, err := store.Recent(1)
	require.NoError(t, err)
	assert.Empty(t, recent, "verification posts are not journaled")
}

func TestDeliveryIsJournaled(t *testing.T) {
	srv, store := newTestServer(t)

	payload := `{
		"action": {
			"id": "act1",
			"type": "updateCard",
			"date": "2024-03-01T10:30:00.000Z",
			"data": {
				"card": {"id": "c1", "name": "Task", "due": "", "shortLink": "sl", "closed": false},
				"board": {"id": "b1", "name": "Project"}
			}
		},
		"model": {"id": "b1"}
	}`
	req := httptest.NewRequest(http.MethodPost, "/trello-webhook", strings.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	srv.Handler().ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	recent, err := store.Recent(1)
	require.NoError(t, err)
	require.Len(t, recent, 1)
	d := recent[0]
	assert.Equal(t, "act1", d.ActionID)
	assert.Equal(t, "updateCard", d.ActionType)
	assert.Equal(t, "b1", d.ModelID)
	assert.Equal(t, "c1", d.CardID)
	assert.Equal(t, "Task", d.CardName)
	assert.Equal(t, "Project", d.BoardName)
	assert.JSONEq(t, payload, d.Payload)
}

func TestMalformedPayloadRejected(t *testing.T) {
	srv, store := newTestServer(t)

	req := httptest.NewRequest(http.MethodPost, "/trello-webhook", strings.NewReader("{not json"))
	rec := httptest.NewRecorder()
	srv.Handler().ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	recent, err := store.Recent(1)
	require.NoError(t, err)
	assert.Empty(t, recent)
}
