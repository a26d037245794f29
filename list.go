package trello

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
)

// List is a column on a board.
type List struct {
	ID     string  `json:"id"`
	Name   string  `json:"name"`
	Closed bool    `json:"closed"`
	Pos    float64 `json:"pos"`

	Board  *Board `json:"-"`
	client *Client
}

// ListFromJSON builds a List from a raw API payload, owned by board.
func ListFromJSON(board *Board, raw json.RawMessage) (*List, error) {
	var l List
	if err := json.Unmarshal(raw, &l); err != nil {
		return nil, fmt.Errorf("decode list: %w", err)
	}
	l.Board = board
	if board != nil {
		l.client = board.client
	}
	return &l, nil
}

// ListsFromJSON builds one List per element of a raw JSON array,
// preserving input order.
func ListsFromJSON(board *Board, raw json.RawMessage) ([]*List, error) {
	var items []json.RawMessage
	if err := json.Unmarshal(raw, &items); err != nil {
		return nil, fmt.Errorf("decode list array: %w", err)
	}
	lists := make([]*List, 0, len(items))
	for _, item := range items {
		l, err := ListFromJSON(board, item)
		if err != nil {
			return nil, err
		}
		lists = append(lists, l)
	}
	return lists, nil
}

// Cards returns the cards in this list.
func (l *List) Cards(ctx context.Context) ([]*Card, error) {
	var raw json.RawMessage
	if err := l.client.fetchJSON(ctx, http.MethodGet, "lists/"+l.ID+"/cards", nil, nil, nil, nil, &raw); err != nil {
		return nil, err
	}
	return CardsFromJSON(l, raw)
}
