// Package gateway holds the typed REST clients of the hotel API, one per
// resource. Every call is a plain pass-through: no retries, no caching.
package gateway

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"golang.org/x/oauth2"
)

const maxErrorBody = 1 << 20

type Client struct {
	baseURL *url.URL
	http    *http.Client
	log     *logrus.Entry
}

type Option func(*Client)

func WithHTTPClient(httpClient *http.Client) Option {
	return func(c *Client) { c.http = httpClient }
}

func WithLogger(entry *logrus.Entry) Option {
	return func(c *Client) { c.log = entry }
}

// AuthorizedHTTPClient returns a client that sends the tokens of ts as
// bearer tokens, on top of base (http.DefaultClient when nil).
func AuthorizedHTTPClient(base *http.Client, ts oauth2.TokenSource) *http.Client {
	ctx := context.Background()
	if base != nil {
		ctx = context.WithValue(ctx, oauth2.HTTPClient, base)
	}
	return oauth2.NewClient(ctx, ts)
}

// NewClient targets the API rooted at baseURL, e.g. "http://host:8080/api/".
func NewClient(baseURL string, opts ...Option) (*Client, error) {
	if !strings.HasSuffix(baseURL, "/") {
		baseURL += "/"
	}
	u, err := url.Parse(baseURL)
	if err != nil {
		return nil, fmt.Errorf("invalid API URL %q: %w", baseURL, err)
	}
	if u.Scheme == "" || u.Host == "" {
		return nil, fmt.Errorf("invalid API URL %q: scheme and host are required", baseURL)
	}

	c := &Client{
		baseURL: u,
		http:    http.DefaultClient,
		log:     logrus.NewEntry(logrus.StandardLogger()),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c, nil
}

func (c *Client) Rooms() *RoomGateway { return &RoomGateway{c: c} }

func (c *Client) Guests() *GuestGateway { return &GuestGateway{c: c} }

func (c *Client) Reservations() *ReservationGateway { return &ReservationGateway{c: c} }

func (c *Client) Users() *UserGateway { return &UserGateway{c: c} }

func (c *Client) Auth() *AuthGateway { return &AuthGateway{c: c} }

// do sends in as JSON to ref (relative to the base URL) and decodes a
// successful response into out. Either may be nil.
func (c *Client) do(ctx context.Context, method, ref string, in, out any) error {
	target := c.baseURL.ResolveReference(&url.URL{Path: ref})

	var body io.Reader
	if in != nil {
		buf, err := json.Marshal(in)
		if err != nil {
			return fmt.Errorf("failed to encode request: %w", err)
		}
		body = bytes.NewReader(buf)
	}

	req, err := http.NewRequestWithContext(ctx, method, target.String(), body)
	if err != nil {
		return fmt.Errorf("failed to build request: %w", err)
	}
	requestID := uuid.NewString()
	req.Header.Set("Accept", "application/json")
	req.Header.Set("X-Request-ID", requestID)
	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	log := c.log.WithFields(logrus.Fields{
		"method":     method,
		"url":        target.String(),
		"request_id": requestID,
	})

	start := time.Now()
	res, err := c.http.Do(req)
	if err != nil {
		log.WithError(err).Debug("request failed")
		return fmt.Errorf("%w: %s %s: %w", ErrTransport, method, target.Path, err)
	}
	defer res.Body.Close()

	log.WithFields(logrus.Fields{
		"status":   res.StatusCode,
		"duration": time.Since(start),
	}).Debug("response received")

	if res.StatusCode < 200 || res.StatusCode > 299 {
		return newAPIError(method, target.Path, res)
	}

	if out == nil || res.StatusCode == http.StatusNoContent {
		return nil
	}
	if err := json.NewDecoder(res.Body).Decode(out); err != nil {
		return fmt.Errorf("failed to decode %s %s response: %w", method, target.Path, err)
	}
	return nil
}

func newAPIError(method, path string, res *http.Response) *APIError {
	apiErr := &APIError{Status: res.StatusCode, Method: method, Path: path}

	raw, err := io.ReadAll(io.LimitReader(res.Body, maxErrorBody))
	if err == nil && len(raw) > 0 {
		// Bodies without the expected fields leave them empty.
		_ = json.Unmarshal(raw, &apiErr.ErrorBody)
	}
	return apiErr
}
