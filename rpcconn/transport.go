package rpcconn

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"time"
)

// DefaultMaxBodySize bounds how much of a response body is read unless
// HTTPConfig.MaxBodySize overrides it.
const DefaultMaxBodySize = 32 << 20

// Transport performs one HTTP exchange carrying an encoded envelope.
type Transport interface {
	RoundTrip(ctx context.Context, body []byte) ([]byte, error)
}

// HTTPConfig holds the connection parameters for a daemon's JSON-RPC port.
type HTTPConfig struct {
	URL      string
	User     string
	Password string
	// Client overrides the default pooled HTTP client.
	Client *http.Client
	// MaxBodySize caps the response body in bytes. Zero means
	// DefaultMaxBodySize.
	MaxBodySize int64
}

// HTTPTransport posts envelopes to the daemon with HTTP Basic Auth.
type HTTPTransport struct {
	url     string
	user    string
	pass    string
	client  *http.Client
	maxBody int64
}

// Compile-time interface check.
var _ Transport = (*HTTPTransport)(nil)

// NewHTTPTransport creates a transport with a pooled client and a 30s
// request timeout unless cfg.Client is set.
func NewHTTPTransport(cfg HTTPConfig) *HTTPTransport {
	client := cfg.Client
	if client == nil {
		client = &http.Client{
			Timeout: 30 * time.Second,
			Transport: &http.Transport{
				MaxIdleConns:        10,
				IdleConnTimeout:     90 * time.Second,
				MaxIdleConnsPerHost: 10,
			},
		}
	}
	maxBody := cfg.MaxBodySize
	if maxBody <= 0 {
		maxBody = DefaultMaxBodySize
	}
	return &HTTPTransport{
		url:     cfg.URL,
		user:    cfg.User,
		pass:    cfg.Password,
		client:  client,
		maxBody: maxBody,
	}
}

// URL returns the endpoint the transport posts to.
func (t *HTTPTransport) URL() string { return t.url }

// RoundTrip posts body and returns the raw response body.
//
// The daemon answers RPC-level failures with HTTP 500 and a JSON envelope,
// so a non-2xx status whose body looks like a JSON object is handed back to
// the caller for decoding. Other non-2xx responses fail with
// ErrConnectionFailed, or ErrAuthFailed for 401/403.
func (t *HTTPTransport) RoundTrip(ctx context.Context, body []byte) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, t.url, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("rpcconn: create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.SetBasicAuth(t.user, t.pass)

	resp, err := t.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrConnectionFailed, err)
	}
	defer func() { _ = resp.Body.Close() }()

	respBody, err := io.ReadAll(io.LimitReader(resp.Body, t.maxBody+1))
	if err != nil {
		return nil, fmt.Errorf("%w: read body: %w", ErrConnectionFailed, err)
	}
	if int64(len(respBody)) > t.maxBody {
		return nil, fmt.Errorf("%w: more than %d bytes (HTTP %d)", ErrResponseTooLarge, t.maxBody, resp.StatusCode)
	}

	if resp.StatusCode >= 200 && resp.StatusCode < 300 {
		return respBody, nil
	}
	if resp.StatusCode == http.StatusUnauthorized || resp.StatusCode == http.StatusForbidden {
		return nil, fmt.Errorf("%w: HTTP %d", ErrAuthFailed, resp.StatusCode)
	}
	if looksLikeObject(respBody) {
		return respBody, nil
	}
	return nil, fmt.Errorf("%w: HTTP %d: %s", ErrConnectionFailed, resp.StatusCode, truncate(respBody, 1024))
}

func looksLikeObject(b []byte) bool {
	b = bytes.TrimSpace(b)
	return len(b) > 0 && b[0] == '{'
}

func truncate(b []byte, n int) string {
	if len(b) > n {
		b = b[:n]
	}
	return string(b)
}
