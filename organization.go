package trello

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
)

// Organization is a Trello workspace. Desc may be absent from some API
// responses.
type Organization struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	DisplayName string  `json:"displayName"`
	Desc        *string `json:"desc,omitempty"`
	URL         string  `json:"url"`

	client *Client
}

// OrganizationFromJSON builds an Organization from a raw API payload.
func OrganizationFromJSON(c *Client, raw json.RawMessage) (*Organization, error) {
	var o Organization
	if err := json.Unmarshal(raw, &o); err != nil {
		return nil, fmt.Errorf("decode organization: %w", err)
	}
	o.client = c
	return &o, nil
}

// OrganizationsFromJSON builds one Organization per element of a raw JSON
// array, preserving input order.
func OrganizationsFromJSON(c *Client, raw json.RawMessage) ([]*Organization, error) {
	var items []json.RawMessage
	if err := json.Unmarshal(raw, &items); err != nil {
		return nil, fmt.Errorf("decode organization list: %w", err)
	}
	orgs := make([]*Organization, 0, len(items))
	for _, item := range items {
		o, err := OrganizationFromJSON(c, item)
		if err != nil {
			return nil, err
		}
		orgs = append(orgs, o)
	}
	return orgs, nil
}

// Boards returns the boards belonging to the organization.
func (o *Organization) Boards(ctx context.Context) ([]*Board, error) {
	var raw json.RawMessage
	if err := o.client.fetchJSON(ctx, http.MethodGet, "organizations/"+o.ID+"/boards", nil, nil, nil, nil, &raw); err != nil {
		return nil, err
	}
	return BoardsFromJSON(o.client, raw)
}
