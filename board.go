package trello

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
)

// Board is a Trello board. Desc may be absent from some API responses.
type Board struct {
	ID     string  `json:"id"`
	Name   string  `json:"name"`
	Desc   *string `json:"desc,omitempty"`
	Closed bool    `json:"closed"`
	URL    string  `json:"url"`

	client *Client
}

// BoardFromJSON builds a Board from a raw API payload. Fields mirror the
// payload verbatim; the object is not refreshed afterwards.
func BoardFromJSON(c *Client, raw json.RawMessage) (*Board, error) {
	var b Board
	if err := json.Unmarshal(raw, &b); err != nil {
		return nil, fmt.Errorf("decode board: %w", err)
	}
	b.client = c
	return &b, nil
}

// BoardsFromJSON builds one Board per element of a raw JSON array,
// preserving input order.
func BoardsFromJSON(c *Client, raw json.RawMessage) ([]*Board, error) {
	var items []json.RawMessage
	if err := json.Unmarshal(raw, &items); err != nil {
		return nil, fmt.Errorf("decode board list: %w", err)
	}
	boards := make([]*Board, 0, len(items))
	for _, item := range items {
		b, err := BoardFromJSON(c, item)
		if err != nil {
			return nil, err
		}
		boards = append(boards, b)
	}
	return boards, nil
}

// Lists returns the board's lists.
func (b *Board) Lists(ctx context.Context) ([]*List, error) {
	var raw json.RawMessage
	if err := b.client.fetchJSON(ctx, http.MethodGet, "boards/"+b.ID+"/lists", nil, nil, nil, nil, &raw); err != nil {
		return nil, err
	}
	return ListsFromJSON(b, raw)
}

// Cards returns every card on the board. The cards carry a board
// back-reference but no list; use List.Cards for list-scoped fetches.
func (b *Board) Cards(ctx context.Context) ([]*Card, error) {
	var items []json.RawMessage
	if err := b.client.fetchJSON(ctx, http.MethodGet, "boards/"+b.ID+"/cards", nil, nil, nil, nil, &items); err != nil {
		return nil, err
	}
	cards := make([]*Card, 0, len(items))
	for _, item := range items {
		c, err := cardFromJSON(b.client, b, nil, item)
		if err != nil {
			return nil, err
		}
		cards = append(cards, c)
	}
	return cards, nil
}
