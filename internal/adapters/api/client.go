package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/cookiejar"
	"net/url"

	"github.com/kugyai/kugy-cli/internal/domain"
)

// DefaultBaseURL is used when no base address is configured.
const DefaultBaseURL = "http://localhost:5000"

const maxResponseBytes = 10 << 20

// Hooks are explicit signals for response-status side effects, so the hosting
// shell decides how to react instead of the transport layer reaching for
// browser-style globals. AuthLost fires once per 401 response, before the
// error is returned to the caller.
type Hooks struct {
	AuthLost func()
}

// Client wraps outbound HTTP calls with a fixed base address, cookie-carried
// session credentials and JSON encoding. Response-status taxonomy (auth loss,
// quota, rate limit) is centralised here; everything else propagates to the
// caller unmodified.
//
// No request timeout is set: a hung connection leaves the operation pending
// until the caller's context cancels it. That mirrors the upstream contract
// rather than papering over it.
type Client struct {
	base       *url.URL
	httpClient *http.Client
	jar        http.CookieJar
	hooks      Hooks
}

type Option func(*Client)

func WithHooks(hooks Hooks) Option {
	return func(c *Client) {
		c.hooks = hooks
	}
}

func NewClient(baseURL string, opts ...Option) (*Client, error) {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}

	base, err := url.Parse(baseURL)
	if err != nil {
		return nil, fmt.Errorf("parse base url: %w", err)
	}
	if base.Scheme != "http" && base.Scheme != "https" {
		return nil, fmt.Errorf("base url %q must use http or https", baseURL)
	}

	jar, err := cookiejar.New(nil)
	if err != nil {
		return nil, fmt.Errorf("create cookie jar: %w", err)
	}

	client := &Client{
		base:       base,
		jar:        jar,
		httpClient: &http.Client{Jar: jar},
	}
	for _, opt := range opts {
		opt(client)
	}

	return client, nil
}

func (c *Client) BaseURL() string {
	return c.base.String()
}

// Cookies returns the session cookies currently held for the base address.
func (c *Client) Cookies() []*http.Cookie {
	return c.jar.Cookies(c.base)
}

// SetCookies seeds the jar with previously persisted session cookies.
func (c *Client) SetCookies(cookies []*http.Cookie) {
	c.jar.SetCookies(c.base, cookies)
}

// ClearCookies expires every cookie held for the base address. Callers drop
// credentials locally on logout and auth loss rather than trusting the server
// to send a deletion Set-Cookie.
func (c *Client) ClearCookies() {
	expired := make([]*http.Cookie, 0)
	for _, cookie := range c.jar.Cookies(c.base) {
		expired = append(expired, &http.Cookie{Name: cookie.Name, Value: "", MaxAge: -1})
	}
	c.jar.SetCookies(c.base, expired)
}

// Do issues one JSON request and decodes the response into out (skipped when
// out is nil). 401 fires the AuthLost hook and returns ErrSessionExpired; 402
// and 429 map to their sentinel errors; other non-2xx statuses become an
// *domain.APIError carrying the envelope message.
func (c *Client) Do(ctx context.Context, method, path string, body, out any) error {
	var reqBody io.Reader
	if body != nil {
		encoded, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encode request body: %w", err)
		}
		reqBody = bytes.NewReader(encoded)
	}

	ref, err := url.Parse(path)
	if err != nil {
		return fmt.Errorf("parse request path %q: %w", path, err)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.base.ResolveReference(ref).String(), reqBody)
	if err != nil {
		return fmt.Errorf("build %s %s request: %w", method, path, err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%s %s: %w", method, path, err)
	}
	defer func() { _ = resp.Body.Close() }()

	data, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
	if err != nil {
		return fmt.Errorf("%s %s: read response body: %w", method, path, err)
	}

	switch resp.StatusCode {
	case http.StatusUnauthorized:
		if c.hooks.AuthLost != nil {
			c.hooks.AuthLost()
		}
		return fmt.Errorf("%s %s: %w", method, path, domain.ErrSessionExpired)
	case http.StatusPaymentRequired:
		return fmt.Errorf("%s %s: %w", method, path, domain.ErrInsufficientCredits)
	case http.StatusTooManyRequests:
		return fmt.Errorf("%s %s: %w", method, path, domain.ErrRateLimited)
	}

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return &domain.APIError{
			StatusCode: resp.StatusCode,
			Message:    envelopeMessage(data),
		}
	}

	if out == nil || len(data) == 0 {
		return nil
	}
	if err := json.Unmarshal(data, out); err != nil {
		return fmt.Errorf("%s %s: decode response: %w", method, path, err)
	}

	return nil
}

// envelopeMessage pulls the server's message out of an error body, tolerating
// both {"message": ...} and {"error": ...} shapes.
func envelopeMessage(data []byte) string {
	var body struct {
		Message string `json:"message"`
		Error   string `json:"error"`
	}
	if err := json.Unmarshal(data, &body); err != nil {
		return ""
	}
	if body.Message != "" {
		return body.Message
	}
	return body.Error
}
