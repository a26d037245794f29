package trello

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
)

// Card is a Trello card. Desc may be absent from some API responses. Due
// and LastActivity keep the raw timestamp strings the API returned; a
// parsed value, when available, sits next to them.
type Card struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Desc        *string  `json:"desc,omitempty"`
	Closed      bool     `json:"closed"`
	URL         string   `json:"url"`
	ShortLink   string   `json:"shortLink"`
	ListID      string   `json:"idList"`
	BoardID     string   `json:"idBoard"`
	MemberIDs   []string `json:"idMembers"`
	Labels      []Label  `json:"labels"`
	Due         string   `json:"due"`
	DueComplete bool     `json:"dueComplete"`

	List   *List  `json:"-"`
	Board  *Board `json:"-"`
	client *Client
}

// CardFromJSON builds a Card from a raw API payload, owned by list.
func CardFromJSON(list *List, raw json.RawMessage) (*Card, error) {
	var board *Board
	var client *Client
	if list != nil {
		board = list.Board
		client = list.client
	}
	c, err := cardFromJSON(client, board, list, raw)
	if err != nil {
		return nil, err
	}
	return c, nil
}

// CardsFromJSON builds one Card per element of a raw JSON array,
// preserving input order.
func CardsFromJSON(list *List, raw json.RawMessage) ([]*Card, error) {
	var items []json.RawMessage
	if err := json.Unmarshal(raw, &items); err != nil {
		return nil, fmt.Errorf("decode card list: %w", err)
	}
	cards := make([]*Card, 0, len(items))
	for _, item := range items {
		c, err := CardFromJSON(list, item)
		if err != nil {
			return nil, err
		}
		cards = append(cards, c)
	}
	return cards, nil
}

func cardFromJSON(client *Client, board *Board, list *List, raw json.RawMessage) (*Card, error) {
	var c Card
	if err := json.Unmarshal(raw, &c); err != nil {
		return nil, fmt.Errorf("decode card: %w", err)
	}
	c.List = list
	c.Board = board
	c.client = client
	return &c, nil
}

// Attachments returns the card's attachments.
func (c *Card) Attachments(ctx context.Context) ([]*Attachment, error) {
	var raw json.RawMessage
	if err := c.client.fetchJSON(ctx, http.MethodGet, "cards/"+c.ID+"/attachments", nil, nil, nil, nil, &raw); err != nil {
		return nil, err
	}
	return AttachmentsFromJSON(c, raw)
}

// AttachFile uploads r as a new attachment named name. The request is sent
// as multipart form data, not JSON.
func (c *Card) AttachFile(ctx context.Context, name string, r io.Reader) (*Attachment, error) {
	files := []Upload{{Field: "file", FileName: name, Reader: r}}
	var raw json.RawMessage
	if err := c.client.fetchJSON(ctx, http.MethodPost, "cards/"+c.ID+"/attachments", nil, nil, nil, files, &raw); err != nil {
		return nil, err
	}
	return AttachmentFromJSON(c, raw)
}
