// Package trello is a typed client for the Trello REST API. It covers
// boards, lists, cards, organizations, members, labels, attachments and
// webhooks, and signs requests with OAuth1 when credentials are supplied.
package trello

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/url"
	"strings"

	"github.com/dghubble/oauth1"
	"go.uber.org/zap"
)

// DefaultBaseURL is the Trello API endpoint every request is issued against.
const DefaultBaseURL = "https://api.trello.com/1/"

// Config holds the credentials used to sign requests. All fields are
// optional; with no Token the client operates in public-only mode and can
// reach only publicly visible resources. Config is copied at construction
// and never mutated afterwards, so a Client is safe for reuse across calls.
type Config struct {
	Key         string
	Secret      string
	Token       string
	TokenSecret string
}

// Client issues authenticated requests against the Trello API. Each
// operation performs one or more sequential HTTP round trips and blocks
// until completion; there is no retrying, caching or batching.
type Client struct {
	cfg     Config
	baseURL string
	http    *http.Client
	log     *zap.Logger
}

// Option customises a Client at construction.
type Option func(*Client)

// WithHTTPClient sets the underlying HTTP client. When credentials are
// present it is used as the base transport for OAuth1 signing.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.http = hc }
}

// WithBaseURL overrides the API endpoint. Mainly useful for tests.
func WithBaseURL(u string) Option {
	return func(c *Client) {
		if !strings.HasSuffix(u, "/") {
			u += "/"
		}
		c.baseURL = u
	}
}

// WithLogger sets the logger used for request-level debug logging.
func WithLogger(l *zap.Logger) Option {
	return func(c *Client) { c.log = l }
}

// NewClient builds a Client from the given credentials. If either an API
// key or a token is present, every request is OAuth1-signed; otherwise
// requests go out unsigned and only public endpoints will succeed.
func NewClient(cfg Config, opts ...Option) *Client {
	c := &Client{
		cfg:     cfg,
		baseURL: DefaultBaseURL,
		log:     zap.NewNop(),
	}
	for _, opt := range opts {
		opt(c)
	}
	if cfg.Key != "" || cfg.Token != "" {
		oc := oauth1.NewConfig(cfg.Key, cfg.Secret)
		tok := oauth1.NewToken(cfg.Token, cfg.TokenSecret)
		ctx := context.Background()
		if c.http != nil {
			ctx = context.WithValue(ctx, oauth1.HTTPClient, c.http)
		}
		c.http = oc.Client(ctx, tok)
	} else if c.http == nil {
		c.http = &http.Client{}
	}
	return c
}

// PublicOnly reports whether the client operates without a user token.
func (c *Client) PublicOnly() bool {
	return c.cfg.Token == ""
}

// Token returns the access token the client was constructed with.
func (c *Client) Token() string {
	return c.cfg.Token
}

// Upload names a file to be sent as a multipart form part.
type Upload struct {
	Field    string
	FileName string
	Reader   io.Reader
}

// fetchJSON performs a single round trip against the API and decodes the
// JSON response into out (which may be nil to discard the body). body is
// serialized as JSON unless files are given, in which case the request is
// sent as multipart form data with no JSON body. Caller headers are applied
// first; Accept and Content-Type are always controlled by the client. A 401
// response yields *UnauthorizedError, any other non-200 yields
// *ResourceUnavailableError.
func (c *Client) fetchJSON(ctx context.Context, method, path string, headers http.Header, query url.Values, body map[string]any, files []Upload, out any) error {
	full := c.baseURL + strings.TrimPrefix(path, "/")

	var reqBody io.Reader
	contentType := ""
	if len(files) > 0 {
		buf := &bytes.Buffer{}
		mw := multipart.NewWriter(buf)
		for k, v := range body {
			if err := mw.WriteField(k, fmt.Sprint(v)); err != nil {
				return fmt.Errorf("write form field %q: %w", k, err)
			}
		}
		for _, f := range files {
			part, err := mw.CreateFormFile(f.Field, f.FileName)
			if err != nil {
				return fmt.Errorf("create form file %q: %w", f.FileName, err)
			}
			if _, err := io.Copy(part, f.Reader); err != nil {
				return fmt.Errorf("copy form file %q: %w", f.FileName, err)
			}
		}
		if err := mw.Close(); err != nil {
			return fmt.Errorf("finalize multipart body: %w", err)
		}
		reqBody = buf
		contentType = mw.FormDataContentType()
	} else if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("marshal request body: %w", err)
		}
		reqBody = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, full, reqBody)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	if len(query) > 0 {
		req.URL.RawQuery = query.Encode()
	}
	for k, vs := range headers {
		for _, v := range vs {
			req.Header.Add(k, v)
		}
	}
	req.Header.Set("Accept", "application/json")
	switch method {
	case http.MethodPost, http.MethodPut, http.MethodDelete:
		if contentType == "" {
			req.Header.Set("Content-Type", "application/json; charset=utf-8")
		}
	}
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("%s %s: %w", method, full, err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("read response: %w", err)
	}

	c.log.Debug("trello api call",
		zap.String("method", method),
		zap.String("url", full),
		zap.Int("status", resp.StatusCode))

	if resp.StatusCode == http.StatusUnauthorized {
		return &UnauthorizedError{
			Status:   resp.StatusCode,
			Body:     string(data),
			URL:      full,
			Response: resp,
		}
	}
	if resp.StatusCode != http.StatusOK {
		return &ResourceUnavailableError{
			Status:   resp.StatusCode,
			Body:     string(data),
			URL:      full,
			Response: resp,
		}
	}
	if out == nil {
		return nil
	}
	if err := json.Unmarshal(data, out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}

// ListBoards returns the current user's boards matching the given filter
// keyword. An empty filter means "all".
func (c *Client) ListBoards(ctx context.Context, filter string) ([]*Board, error) {
	if filter == "" {
		filter = "all"
	}
	var raw json.RawMessage
	query := url.Values{"filter": {filter}}
	if err := c.fetchJSON(ctx, http.MethodGet, "members/me/boards", nil, query, nil, nil, &raw); err != nil {
		return nil, err
	}
	return BoardsFromJSON(c, raw)
}

// ListOrganizations returns the current user's organizations.
func (c *Client) ListOrganizations(ctx context.Context) ([]*Organization, error) {
	var raw json.RawMessage
	if err := c.fetchJSON(ctx, http.MethodGet, "members/me/organizations", nil, nil, nil, nil, &raw); err != nil {
		return nil, err
	}
	return OrganizationsFromJSON(c, raw)
}

// InfoForAllBoards fetches raw info for all the user's boards in one call.
// In public-only mode there is nothing to fetch and it returns nil, nil.
func (c *Client) InfoForAllBoards(ctx context.Context, actions string) (json.RawMessage, error) {
	if c.PublicOnly() {
		return nil, nil
	}
	var raw json.RawMessage
	query := url.Values{"actions": {actions}}
	if err := c.fetchJSON(ctx, http.MethodGet, "members/me/boards/all", nil, query, nil, nil, &raw); err != nil {
		return nil, err
	}
	return raw, nil
}

// GetOrganization fetches a single organization by id.
func (c *Client) GetOrganization(ctx context.Context, organizationID string) (*Organization, error) {
	var raw json.RawMessage
	if err := c.fetchJSON(ctx, http.MethodGet, "organizations/"+organizationID, nil, nil, nil, nil, &raw); err != nil {
		return nil, err
	}
	return OrganizationFromJSON(c, raw)
}

// GetBoard fetches a single board by id.
func (c *Client) GetBoard(ctx context.Context, boardID string) (*Board, error) {
	var raw json.RawMessage
	if err := c.fetchJSON(ctx, http.MethodGet, "boards/"+boardID, nil, nil, nil, nil, &raw); err != nil {
		return nil, err
	}
	return BoardFromJSON(c, raw)
}

// AddBoard creates a new board, optionally cloning the given source board.
func (c *Client) AddBoard(ctx context.Context, name string, source *Board) (*Board, error) {
	body := map[string]any{"name": name}
	if source != nil {
		body["idBoardSource"] = source.ID
	}
	var raw json.RawMessage
	if err := c.fetchJSON(ctx, http.MethodPost, "boards", nil, nil, body, nil, &raw); err != nil {
		return nil, err
	}
	return BoardFromJSON(c, raw)
}

// GetMember fetches a single member by id.
func (c *Client) GetMember(ctx context.Context, memberID string) (*Member, error) {
	var raw json.RawMessage
	if err := c.fetchJSON(ctx, http.MethodGet, "members/"+memberID, nil, nil, nil, nil, &raw); err != nil {
		return nil, err
	}
	return MemberFromJSON(c, raw)
}

// GetCard fetches a card and reconstructs its full ownership chain. This
// issues three dependent round trips: the card itself, then the list it
// belongs to, then that list's board.
func (c *Client) GetCard(ctx context.Context, cardID string) (*Card, error) {
	var cardRaw json.RawMessage
	if err := c.fetchJSON(ctx, http.MethodGet, "cards/"+cardID, nil, nil, nil, nil, &cardRaw); err != nil {
		return nil, err
	}
	var owners struct {
		ListID  string `json:"idList"`
		BoardID string `json:"idBoard"`
	}
	if err := json.Unmarshal(cardRaw, &owners); err != nil {
		return nil, fmt.Errorf("decode card owners: %w", err)
	}
	var listRaw json.RawMessage
	if err := c.fetchJSON(ctx, http.MethodGet, "lists/"+owners.ListID, nil, nil, nil, nil, &listRaw); err != nil {
		return nil, err
	}
	board, err := c.GetBoard(ctx, owners.BoardID)
	if err != nil {
		return nil, err
	}
	list, err := ListFromJSON(board, listRaw)
	if err != nil {
		return nil, err
	}
	return CardFromJSON(list, cardRaw)
}

// GetLabel fetches a label by id. Labels are only addressable through
// their owning board, so the board id is required as well.
func (c *Client) GetLabel(ctx context.Context, labelID, boardID string) (*Label, error) {
	board, err := c.GetBoard(ctx, boardID)
	if err != nil {
		return nil, err
	}
	var raw json.RawMessage
	if err := c.fetchJSON(ctx, http.MethodGet, "labels/"+labelID, nil, nil, nil, nil, &raw); err != nil {
		return nil, err
	}
	return LabelFromJSON(board, raw)
}

// Logout is not supported by the Trello API token model and always
// returns ErrNotImplemented.
func (c *Client) Logout(ctx context.Context) error {
	return ErrNotImplemented
}
