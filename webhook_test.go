package trello

import (
	"context"
	"io"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestListHooksWithoutToken(t *testing.T) {
	client := NewClient(Config{Key: "k"})

	_, err := client.ListHooks(context.Background(), "")

	var tokenErr *TokenError
	require.ErrorAs(t, err, &tokenErr)
}

func TestListHooksFallsBackToClientToken(t *testing.T) {
	var gotPath string
	srvHandler := func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		_, _ = w.Write([]byte(`[
			{"id":"h1","description":"first","idModel":"b1","callbackURL":"https://cb.example/1","active":true},
			{"id":"h2","description":"second","idModel":"b2","callbackURL":"https://cb.example/2","active":false}
		]`))
	}
	_, client := newTestClientWithConfig(t, Config{Token: "tok"}, srvHandler)

	hooks, err := client.ListHooks(context.Background(), "")
	require.NoError(t, err)

	assert.Equal(t, "/tokens/tok/webhooks", gotPath)
	require.Len(t, hooks, 2)
	assert.Equal(t, "h1", hooks[0].ID)
	assert.Equal(t, "tok", hooks[0].Token)
	assert.True(t, hooks[0].Active)
	assert.Equal(t, "h2", hooks[1].ID)
	assert.False(t, hooks[1].Active)
}

func TestCreateHook(t *testing.T) {
	var gotMethod, gotPath string
	var gotBody []byte
	srvHandler := func(w http.ResponseWriter, r *http.Request) {
		gotMethod = r.Method
		gotPath = r.URL.Path
		gotBody, _ = io.ReadAll(r.Body)
		_, _ = w.Write([]byte(`{"id":"abc"}`))
	}
	_, client := newTestClientWithConfig(t, Config{Token: "tok"}, srvHandler)

	hook, err := client.CreateHook(context.Background(), "https://cb.example/hook", "b1", "journal", "")
	require.NoError(t, err)

	assert.Equal(t, http.MethodPost, gotMethod)
	assert.Equal(t, "/tokens/tok/webhooks/", gotPath)
	assert.JSONEq(t, `{"callbackURL":"https://cb.example/hook","idModel":"b1","description":"journal"}`, string(gotBody))

	assert.Equal(t, "abc", hook.ID)
	assert.Equal(t, "https://cb.example/hook", hook.CallbackURL)
	assert.Equal(t, "b1", hook.ModelID)
	assert.True(t, hook.Active)
	assert.Equal(t, "tok", hook.Token)
}

func TestCreateHookWithoutToken(t *testing.T) {
	client := NewClient(Config{Key: "k"})

	_, err := client.CreateHook(context.Background(), "https://cb.example/hook", "b1", "", "")

	var tokenErr *TokenError
	require.ErrorAs(t, err, &tokenErr)
}

func TestCreateHookFailureIsTyped(t *testing.T) {
	srvHandler := func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		_, _ = w.Write([]byte("callback URL not reachable"))
	}
	_, client := newTestClientWithConfig(t, Config{Token: "tok"}, srvHandler)

	hook, err := client.CreateHook(context.Background(), "https://cb.example/hook", "b1", "", "")

	assert.Nil(t, hook)
	var unavailable *ResourceUnavailableError
	require.ErrorAs(t, err, &unavailable)
	assert.Equal(t, "callback URL not reachable", unavailable.Body)
}

func TestWebHookDelete(t *testing.T) {
	var gotMethod, gotPath string
	srvHandler := func(w http.ResponseWriter, r *http.Request) {
		gotMethod = r.Method
		gotPath = r.URL.Path
		_, _ = w.Write([]byte(`{}`))
	}
	_, client := newTestClientWithConfig(t, Config{Token: "tok"}, srvHandler)

	hook := &WebHook{ID: "h1", client: client}
	require.NoError(t, hook.Delete(context.Background()))

	assert.Equal(t, http.MethodDelete, gotMethod)
	assert.Equal(t, "/webhooks/h1", gotPath)
}
