package hookstore

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	store, err := Open(filepath.Join(t.TempDir(), "deliveries.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = store.Close() })
	return store
}

func TestRecordAndRecent(t *testing.T) {
	store := openTestStore(t)

	first := &Delivery{
		ActionID:   "act1",
		ActionType: "updateCard",
		ModelID:    "b1",
		CardID:     "c1",
		CardName:   "Task",
		BoardID:    "b1",
		BoardName:  "Project",
		Payload:    `{"action":{}}`,
		ReceivedAt: time.Now().Add(-time.Minute),
	}
	require.NoError(t, store.Record(first))
	require.NoError(t, store.Record(&Delivery{ActionID: "act2", ActionType: "createCard"}))

	recent, err := store.Recent(10)
	require.NoError(t, err)
	require.Len(t, recent, 2)
	assert.Equal(t, "act2", recent[0].ActionID, "newest first")
	assert.Equal(t, "act1", recent[1].ActionID)
	assert.Equal(t, "Task", recent[1].CardName)
}

func TestRecordDefaultsReceivedAt(t *testing.T) {
	store := openTestStore(t)

	d := &Delivery{ActionID: "act1"}
	require.NoError(t, store.Record(d))
	assert.False(t, d.ReceivedAt.IsZero())
}

func TestRecentLimit(t *testing.T) {
	store := openTestStore(t)

	for i := 0; i < 5; i++ {
		require.NoError(t, store.Record(&Delivery{ActionType: "updateCard"}))
	}
	recent, err := store.Recent(3)
	require.NoError(t, err)
	assert.Len(t, recent, 3)
}
