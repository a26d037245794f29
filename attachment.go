package trello

import (
	"encoding/json"
	"fmt"
	"time"
)

// Attachment is a file or link attached to a card. RawDate always holds
// the date string exactly as the API returned it; Date is the parsed form
// and is nil when the string does not parse. A malformed date never fails
// construction.
type Attachment struct {
	ID        string              `json:"id"`
	Name      string              `json:"name"`
	Bytes     int64               `json:"bytes"`
	EdgeColor string              `json:"edgeColor"`
	MemberID  string              `json:"idMember"`
	IsUpload  bool                `json:"isUpload"`
	MimeType  string              `json:"mimeType"`
	URL       string              `json:"url"`
	RawDate   string              `json:"date"`
	Previews  []AttachmentPreview `json:"previews"`

	Date *time.Time `json:"-"`
	Card *Card      `json:"-"`
}

// AttachmentPreview is a scaled rendering of an attachment.
type AttachmentPreview struct {
	ID     string `json:"_id"`
	Bytes  int64  `json:"bytes"`
	Scaled bool   `json:"scaled"`
	URL    string `json:"url"`
	Height int    `json:"height"`
	Width  int    `json:"width"`
}

// AttachmentFromJSON builds an Attachment from a raw API payload, owned by
// card, including its previews.
func AttachmentFromJSON(card *Card, raw json.RawMessage) (*Attachment, error) {
	var a Attachment
	if err := json.Unmarshal(raw, &a); err != nil {
		return nil, fmt.Errorf("decode attachment: %w", err)
	}
	a.Date = parseDate(a.RawDate)
	a.Card = card
	return &a, nil
}

// AttachmentsFromJSON builds one Attachment per element of a raw JSON
// array, preserving input order.
func AttachmentsFromJSON(card *Card, raw json.RawMessage) ([]*Attachment, error) {
	var items []json.RawMessage
	if err := json.Unmarshal(raw, &items); err != nil {
		return nil, fmt.Errorf("decode attachment list: %w", err)
	}
	attachments := make([]*Attachment, 0, len(items))
	for _, item := range items {
		a, err := AttachmentFromJSON(card, item)
		if err != nil {
			return nil, err
		}
		attachments = append(attachments, a)
	}
	return attachments, nil
}
