// Package client implements the authenticated request pipeline shared by
// every remote operation: one HTTP client with an outbound stage that
// injects the current bearer token and an inbound stage that converts
// failures into the error taxonomy and tears the session down on 401.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"mime/multipart"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/rs/zerolog"
)

// DefaultTimeout bounds every request issued through the pipeline.
const DefaultTimeout = 10 * time.Second

// TokenSource yields the bearer token to attach to outbound requests.
// An empty string means the call goes out anonymous. The token is read
// synchronously at dispatch time, so requests issued after a logout carry
// no credential while requests already in flight keep theirs.
type TokenSource interface {
	Token() string
}

// Options configures a Client.
type Options struct {
	// BaseURL is the fixed prefix for every request, e.g.
	// "http://localhost:8080/api".
	BaseURL string

	// Tokens supplies the credential for the outbound stage. Optional;
	// without it every call is anonymous.
	Tokens TokenSource

	// OnUnauthorized runs synchronously, at most once per failing
	// response, when the inbound stage sees a 401. It is expected to
	// tear the session down and navigate to the login view, and must
	// not perform network calls of its own. The original
	// AuthorizationError is still returned to the caller afterwards.
	OnUnauthorized func()

	// HTTPClient overrides the underlying client, mainly for tests.
	// When nil a client with DefaultTimeout is used.
	HTTPClient *http.Client

	Logger zerolog.Logger
}

// Client is the single shared pipeline instance. It holds no session
// state of its own; the credential store owns that.
type Client struct {
	base           string
	http           *http.Client
	tokens         TokenSource
	onUnauthorized func()
	log            zerolog.Logger
}

// New validates the base URL and builds the pipeline.
func New(opts Options) (*Client, error) {
	base := strings.TrimRight(opts.BaseURL, "/")
	if base == "" {
		return nil, errors.New("client.New: base URL required")
	}
	if _, err := url.Parse(base); err != nil {
		return nil, errors.Wrap(err, "client.New parse base URL")
	}
	httpClient := opts.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{Timeout: DefaultTimeout}
	}
	return &Client{
		base:           base,
		http:           httpClient,
		tokens:         opts.Tokens,
		onUnauthorized: opts.OnUnauthorized,
		log:            opts.Logger,
	}, nil
}

// Get issues a GET with optional query parameters, decoding the JSON
// response into out when out is non-nil.
func (c *Client) Get(ctx context.Context, path string, query url.Values, out any) error {
	return c.do(ctx, http.MethodGet, path, query, "", nil, out)
}

// Post issues a POST with an optional JSON body.
func (c *Client) Post(ctx context.Context, path string, body, out any) error {
	rd, err := encodeBody(body)
	if err != nil {
		return err
	}
	return c.do(ctx, http.MethodPost, path, nil, "application/json", rd, out)
}

// Put issues a PUT with an optional JSON body.
func (c *Client) Put(ctx context.Context, path string, body, out any) error {
	rd, err := encodeBody(body)
	if err != nil {
		return err
	}
	return c.do(ctx, http.MethodPut, path, nil, "application/json", rd, out)
}

// Delete issues a DELETE.
func (c *Client) Delete(ctx context.Context, path string, out any) error {
	return c.do(ctx, http.MethodDelete, path, nil, "", nil, out)
}

// PostMultipart issues a POST with a multipart form body assembled by
// build. Used by the bulk-import endpoint.
func (c *Client) PostMultipart(ctx context.Context, path string, build func(*multipart.Writer) error, out any) error {
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	if err := build(w); err != nil {
		return errors.Wrap(err, "Client.PostMultipart build form")
	}
	if err := w.Close(); err != nil {
		return errors.Wrap(err, "Client.PostMultipart close form")
	}
	return c.do(ctx, http.MethodPost, path, nil, w.FormDataContentType(), &buf, out)
}

func encodeBody(body any) (io.Reader, error) {
	if body == nil {
		return nil, nil
	}
	raw, err := json.Marshal(body)
	if err != nil {
		return nil, errors.Wrap(err, "client encode request body")
	}
	return bytes.NewReader(raw), nil
}

// do runs both pipeline stages around a single transmission.
func (c *Client) do(ctx context.Context, method, path string, query url.Values, contentType string, body io.Reader, out any) error {
	target := c.base + path
	if len(query) > 0 {
		target += "?" + query.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, method, target, body)
	if err != nil {
		return errors.Wrap(err, "Client.do build request")
	}
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	req.Header.Set("X-Request-ID", uuid.NewString())

	// Outbound stage: credential injection, no per-endpoint exceptions.
	if c.tokens != nil {
		if token := c.tokens.Token(); token != "" {
			req.Header.Set("Authorization", "Bearer "+token)
		}
	}

	c.log.Debug().Str("method", method).Str("path", path).Msg("dispatching request")

	resp, err := c.http.Do(req)
	if err != nil {
		return &TransportError{Op: method + " " + path, Err: err}
	}
	defer resp.Body.Close()

	// Inbound stage: success passes through, 401 tears the session down
	// exactly once, everything else surfaces as a domain failure.
	if resp.StatusCode >= 200 && resp.StatusCode < 300 {
		if out == nil {
			_, _ = io.Copy(io.Discard, resp.Body)
			return nil
		}
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			return errors.Wrapf(err, "Client.do decode response for %s %s", method, path)
		}
		return nil
	}

	detail := decodeErrorDetail(resp.Body)
	if resp.StatusCode == http.StatusUnauthorized {
		c.log.Debug().Str("path", path).Msg("authorization rejected, tearing down session")
		if c.onUnauthorized != nil {
			c.onUnauthorized()
		}
		return &AuthorizationError{Detail: detail}
	}
	return &DomainError{Status: resp.StatusCode, Detail: detail}
}

// decodeErrorDetail extracts the service's {"error": "..."} body, falling
// back to the raw text when the body is not in that shape.
func decodeErrorDetail(r io.Reader) string {
	raw, err := io.ReadAll(io.LimitReader(r, 4096))
	if err != nil {
		return ""
	}
	var payload struct {
		Error string `json:"error"`
	}
	if err := json.Unmarshal(raw, &payload); err == nil && payload.Error != "" {
		return payload.Error
	}
	return strings.TrimSpace(string(raw))
}
