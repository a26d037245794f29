package trello

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
)

// WebHook is a registered Trello webhook. Trello delivers a callback to
// CallbackURL for every action on the watched model. A webhook belongs to
// the token it was created with.
type WebHook struct {
	ID          string `json:"id"`
	Description string `json:"description"`
	ModelID     string `json:"idModel"`
	CallbackURL string `json:"callbackURL"`
	Active      bool   `json:"active"`

	Token  string `json:"-"`
	client *Client
}

// WebHookFromJSON builds a WebHook from a raw API payload, owned by the
// given client and token.
func WebHookFromJSON(c *Client, token string, raw json.RawMessage) (*WebHook, error) {
	var h WebHook
	if err := json.Unmarshal(raw, &h); err != nil {
		return nil, fmt.Errorf("decode webhook: %w", err)
	}
	h.Token = token
	h.client = c
	return &h, nil
}

// WebHooksFromJSON builds one WebHook per element of a raw JSON array,
// preserving input order.
func WebHooksFromJSON(c *Client, token string, raw json.RawMessage) ([]*WebHook, error) {
	var items []json.RawMessage
	if err := json.Unmarshal(raw, &items); err != nil {
		return nil, fmt.Errorf("decode webhook list: %w", err)
	}
	hooks := make([]*WebHook, 0, len(items))
	for _, item := range items {
		h, err := WebHookFromJSON(c, token, item)
		if err != nil {
			return nil, err
		}
		hooks = append(hooks, h)
	}
	return hooks, nil
}

// Delete unregisters the webhook.
func (h *WebHook) Delete(ctx context.Context) error {
	return h.client.fetchJSON(ctx, http.MethodDelete, "webhooks/"+h.ID, nil, nil, nil, nil, nil)
}

// ListHooks returns all webhooks registered for the given token. An empty
// token falls back to the client's own; if neither exists a *TokenError
// is returned.
func (c *Client) ListHooks(ctx context.Context, token string) ([]*WebHook, error) {
	if token == "" {
		token = c.cfg.Token
	}
	if token == "" {
		return nil, &TokenError{Msg: "an auth token is required to list hooks"}
	}
	var raw json.RawMessage
	if err := c.fetchJSON(ctx, http.MethodGet, "tokens/"+token+"/webhooks", nil, nil, nil, nil, &raw); err != nil {
		return nil, err
	}
	return WebHooksFromJSON(c, token, raw)
}

// CreateHook registers a new webhook watching modelID and returns it. An
// empty token falls back to the client's own; if neither exists a
// *TokenError is returned. Unlike the historical Trello bindings that
// returned a false-ish sentinel here, a failed registration surfaces the
// same typed errors as every other operation.
func (c *Client) CreateHook(ctx context.Context, callbackURL, modelID, description, token string) (*WebHook, error) {
	if token == "" {
		token = c.cfg.Token
	}
	if token == "" {
		return nil, &TokenError{Msg: "an auth token is required to create a hook"}
	}
	body := map[string]any{
		"callbackURL": callbackURL,
		"idModel":     modelID,
	}
	if description != "" {
		body["description"] = description
	}
	var created struct {
		ID string `json:"id"`
	}
	if err := c.fetchJSON(ctx, http.MethodPost, "tokens/"+token+"/webhooks/", nil, nil, body, nil, &created); err != nil {
		return nil, err
	}
	return &WebHook{
		ID:          created.ID,
		Description: description,
		ModelID:     modelID,
		CallbackURL: callbackURL,
		Active:      true,
		Token:       token,
		client:      c,
	}, nil
}
