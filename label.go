package trello

import (
	"encoding/json"
	"fmt"
)

// Label is a colored tag scoped to a board.
type Label struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Color   string `json:"color"`
	BoardID string `json:"idBoard"`

	Board  *Board `json:"-"`
	client *Client
}

// LabelFromJSON builds a Label from a raw API payload, owned by board.
func LabelFromJSON(board *Board, raw json.RawMessage) (*Label, error) {
	var l Label
	if err := json.Unmarshal(raw, &l); err != nil {
		return nil, fmt.Errorf("decode label: %w", err)
	}
	l.Board = board
	if board != nil {
		l.client = board.client
	}
	return &l, nil
}

// LabelsFromJSON builds one Label per element of a raw JSON array,
// preserving input order.
func LabelsFromJSON(board *Board, raw json.RawMessage) ([]*Label, error) {
	var items []json.RawMessage
	if err := json.Unmarshal(raw, &items); err != nil {
		return nil, fmt.Errorf("decode label list: %w", err)
	}
	labels := make([]*Label, 0, len(items))
	for _, item := range items {
		l, err := LabelFromJSON(board, item)
		if err != nil {
			return nil, err
		}
		labels = append(labels, l)
	}
	return labels, nil
}
