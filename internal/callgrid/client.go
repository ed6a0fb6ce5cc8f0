// Package callgrid implements an authenticated client for the Callgrid
// call-intelligence REST API (v2). Every request carries a freshly computed
// timestamp and HMAC signature; nothing is cached, retried, or shared
// between calls beyond the immutable credentials.
package callgrid

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/sirupsen/logrus"
)

// DefaultBaseURL is the production Callgrid API endpoint.
const DefaultBaseURL = "https://api.callgrid.io/v2"

const (
	headerAccessKey = "X-Callgrid-AccessKey"
	headerTimestamp = "X-Callgrid-Timestamp"
	headerSignature = "X-Callgrid-Signature"
)

// ErrNoFilter is returned by RetrieveCallDetails when no selective filter
// field is set. The API refuses unscoped extensive queries, so the client
// rejects them before any network call is made.
var ErrNoFilter = errors.New("At least one filter parameter is required")

// Client issues signed requests against the Callgrid v2 API.
// Credentials are fixed at construction and never logged.
type Client struct {
	baseURL    string
	accessKey  string
	basicAuth  string
	signer     *Signer
	httpClient *http.Client
	log        *logrus.Logger
	now        func() time.Time
}

// Option customizes a Client.
type Option func(*Client)

// WithBaseURL overrides the API base URL (no trailing slash is kept).
func WithBaseURL(u string) Option {
	return func(c *Client) { c.baseURL = strings.TrimRight(u, "/") }
}

// WithHTTPClient replaces the underlying HTTP client, e.g. to set a
// different timeout.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.httpClient = hc }
}

// WithLogger replaces the default standard logger.
func WithLogger(log *logrus.Logger) Option {
	return func(c *Client) { c.log = log }
}

// withClock overrides the timestamp source. Test seam.
func withClock(now func() time.Time) Option {
	return func(c *Client) { c.now = now }
}

// NewClient creates a Client for the given credentials. Both the access key
// and the access secret must be non-empty.
func NewClient(accessKey, accessSecret string, opts ...Option) (*Client, error) {
	if accessKey == "" || accessSecret == "" {
		return nil, errors.New("callgrid: access key and access secret are required")
	}
	c := &Client{
		baseURL:    DefaultBaseURL,
		accessKey:  accessKey,
		basicAuth:  base64.StdEncoding.EncodeToString([]byte(accessKey + ":" + accessSecret)),
		signer:     NewSigner(accessSecret),
		httpClient: &http.Client{Timeout: 30 * time.Second},
		log:        logrus.StandardLogger(),
		now:        time.Now,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c, nil
}

// ListCalls returns calls in the given date range via GET /calls.
func (c *Client) ListCalls(ctx context.Context, q ListCallsQuery) (json.RawMessage, error) {
	params := map[string]string{}
	if q.FromDateTime != "" {
		params["fromDateTime"] = q.FromDateTime
	}
	if q.ToDateTime != "" {
		params["toDateTime"] = q.ToDateTime
	}
	if q.Cursor != "" {
		params["cursor"] = q.Cursor
	}
	return c.request(ctx, http.MethodGet, "/calls", params, nil)
}

// RetrieveTranscripts fetches transcripts for the given call IDs via
// POST /calls/transcript.
func (c *Client) RetrieveTranscripts(ctx context.Context, callIDs []string) (json.RawMessage, error) {
	body := transcriptRequest{Filter: Filter{CallIDs: callIDs}}
	return c.request(ctx, http.MethodPost, "/calls/transcript", nil, body)
}

// RetrieveCallDetails fetches extensive call data via POST /calls/extensive.
// The query must carry at least one selective filter field (ErrNoFilter
// otherwise); a cursor on its own only continues an already-scoped query.
// When no context level is given the richest one, Extended, is requested so
// that CRM linkage fields are present in the response.
func (c *Client) RetrieveCallDetails(ctx context.Context, q CallDetailsQuery) (json.RawMessage, error) {
	if len(q.CallIDs) == 0 && q.FromDateTime == "" && q.ToDateTime == "" && len(q.PrimaryUserIDs) == 0 {
		return nil, ErrNoFilter
	}
	sel := ContentSelector{Context: q.Context}
	if sel.Context == "" {
		sel.Context = ContextExtended
	}
	body := extensiveRequest{
		Filter: Filter{
			CallIDs:        q.CallIDs,
			FromDateTime:   q.FromDateTime,
			ToDateTime:     q.ToDateTime,
			PrimaryUserIDs: q.PrimaryUserIDs,
			Cursor:         q.Cursor,
		},
		ContentSelector: sel,
	}
	return c.request(ctx, http.MethodPost, "/calls/extensive", nil, body)
}

// ListUsers returns workspace users via GET /users.
func (c *Client) ListUsers(ctx context.Context, cursor string) (json.RawMessage, error) {
	params := map[string]string{}
	if cursor != "" {
		params["cursor"] = cursor
	}
	return c.request(ctx, http.MethodGet, "/users", params, nil)
}

// request signs and issues one API call. The signature covers exactly what
// goes on the wire: the JSON body when present, else the JSON form of the
// query parameters, else nothing. The timestamp is taken at call time, so
// every request is signed fresh.
func (c *Client) request(ctx context.Context, method, path string, params map[string]string, body any) (json.RawMessage, error) {
	var payload []byte
	var bodyReader io.Reader
	switch {
	case body != nil:
		data, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("encode request body: %w", err)
		}
		payload = data
		bodyReader = bytes.NewReader(data)
	case len(params) > 0:
		// Go sorts map keys when marshaling, so this form is deterministic.
		data, err := json.Marshal(params)
		if err != nil {
			return nil, fmt.Errorf("encode query params: %w", err)
		}
		payload = data
	}

	timestamp := c.now().UTC().Format(time.RFC3339)
	signature := c.signer.Sign(method, path, timestamp, payload)

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, bodyReader)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	if len(params) > 0 {
		q := req.URL.Query()
		for k, v := range params {
			q.Set(k, v)
		}
		req.URL.RawQuery = q.Encode()
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Basic "+c.basicAuth)
	req.Header.Set(headerAccessKey, c.accessKey)
	req.Header.Set(headerTimestamp, timestamp)
	req.Header.Set(headerSignature, signature)

	c.log.WithFields(logrus.Fields{"method": method, "path": path}).Debug("callgrid request")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%s %s: %w", method, path, err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("%s %s: read response: %w", method, path, err)
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("%s %s: %s: %s", method, path, resp.Status, strings.TrimSpace(string(data)))
	}
	if !json.Valid(data) {
		return nil, fmt.Errorf("%s %s: response is not valid JSON", method, path)
	}
	return json.RawMessage(data), nil
}
