package trello

import (
	"context"
	"encoding/json"
	"fmt"
)

// Member is a Trello user.
type Member struct {
	ID         string `json:"id"`
	Username   string `json:"username"`
	FullName   string `json:"fullName"`
	Initials   string `json:"initials"`
	AvatarHash string `json:"avatarHash"`
	URL        string `json:"url"`

	client *Client
}

// MemberFromJSON builds a Member from a raw API payload.
func MemberFromJSON(c *Client, raw json.RawMessage) (*Member, error) {
	var m Member
	if err := json.Unmarshal(raw, &m); err != nil {
		return nil, fmt.Errorf("decode member: %w", err)
	}
	m.client = c
	return &m, nil
}

// MembersFromJSON builds one Member per element of a raw JSON array,
// preserving input order.
func MembersFromJSON(c *Client, raw json.RawMessage) ([]*Member, error) {
	var items []json.RawMessage
	if err := json.Unmarshal(raw, &items); err != nil {
		return nil, fmt.Errorf("decode member list: %w", err)
	}
	members := make([]*Member, 0, len(items))
	for _, item := range items {
		m, err := MemberFromJSON(c, item)
		if err != nil {
			return nil, err
		}
		members = append(members, m)
	}
	return members, nil
}

// Fetch re-reads the member from the API and returns a fresh object. The
// receiver is left untouched; stale objects are replaced, not mutated.
func (m *Member) Fetch(ctx context.Context) (*Member, error) {
	return m.client.GetMember(ctx, m.ID)
}
