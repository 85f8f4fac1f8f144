package api

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/charmbracelet/log"
	"golang.org/x/oauth2"

	"github.com/binarakost/kostctl/internal/shared"
	"github.com/binarakost/kostctl/internal/state"
)

const defaultBaseURL = "http://localhost:8000"

// Response represents a normalized backend response.
type Response struct {
	StatusCode int
	Headers    http.Header
	Body       []byte
	NoContent  bool
	IsJSON     bool
	JSONData   any
}

// Text returns the raw body as a string.
func (r *Response) Text() string { return string(r.Body) }

// Decode unmarshals the response body into result. NoContent responses leave
// result untouched.
func (r *Response) Decode(result any) error {
	if r.NoContent || result == nil {
		return nil
	}
	if err := json.Unmarshal(r.Body, result); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}
	return nil
}

// storeSource adapts the session store to [oauth2.TokenSource]. It reads the
// store on every request so a login or logout mid-process takes effect
// immediately; no caching wrapper is layered on top.
type storeSource struct {
	store state.Store
}

func (s storeSource) Token() (*oauth2.Token, error) {
	token := s.store.Token()
	if token == "" {
		return nil, shared.ErrUnauthenticated
	}
	return &oauth2.Token{AccessToken: token}, nil
}

// Gateway is the single authenticated request path for admin calls.
//
// Every invocation makes at most one network call; there are no retries.
// A 401 clears the session store as a side effect, so the caller observing
// [shared.ErrUnauthorized] can route straight to re-authentication.
type Gateway struct {
	baseURL    string
	store      state.Store
	httpClient *http.Client
	logger     *log.Logger
}

// NewGateway creates a Gateway over the given session store. The bearer
// header is injected by an [oauth2.Transport] wrapping base (defaulting to
// [http.DefaultTransport]).
func NewGateway(baseURL string, store state.Store, base http.RoundTripper, logger *log.Logger) *Gateway {
	if baseURL == "" {
		baseURL = defaultBaseURL
	}
	if base == nil {
		base = http.DefaultTransport
	}
	if logger == nil {
		logger = shared.NewLogger(nil)
	}

	return &Gateway{
		baseURL: baseURL,
		store:   store,
		httpClient: &http.Client{
			Transport: &oauth2.Transport{Source: storeSource{store}, Base: base},
		},
		logger: logger,
	}
}

// Store exposes the session store backing this gateway.
func (g *Gateway) Store() state.Store { return g.store }

// BaseURL returns the backend base URL.
func (g *Gateway) BaseURL() string { return g.baseURL }

// Call performs one authenticated request. A nil body sends no payload; any
// other body is JSON-encoded with a Content-Type header.
//
// Without a token the call short-circuits with [shared.ErrUnauthenticated]
// before touching the network.
func (g *Gateway) Call(ctx context.Context, method, path string, body any) (*Response, error) {
	if g.store.Token() == "" {
		return nil, shared.ErrUnauthenticated
	}

	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("failed to encode request body: %w", err)
		}
		reader = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, g.baseURL+path, reader)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := g.httpClient.Do(req)
	if err != nil {
		// The token source can race a logout; classify that as a missing
		// session rather than a transport failure.
		if errors.Is(err, shared.ErrUnauthenticated) {
			return nil, shared.ErrUnauthenticated
		}
		return nil, fmt.Errorf("%w: %v", shared.ErrAPIRequest, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusUnauthorized {
		g.logger.Warn("session rejected by backend, clearing token", "path", path)
		g.store.Clear()
		io.Copy(io.Discard, resp.Body)
		return nil, shared.ErrUnauthorized
	}

	if resp.StatusCode == http.StatusNoContent {
		return &Response{StatusCode: resp.StatusCode, Headers: resp.Header, NoContent: true}, nil
	}

	// Best-effort read: an unreadable body degrades to empty, it does not
	// mask the status code.
	data, err := io.ReadAll(resp.Body)
	if err != nil {
		data = nil
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, shared.NewStatusError(resp.StatusCode, string(data))
	}

	out := &Response{StatusCode: resp.StatusCode, Headers: resp.Header, Body: data}
	if strings.Contains(resp.Header.Get("Content-Type"), "application/json") {
		var parsed any
		if err := json.Unmarshal(data, &parsed); err == nil {
			out.IsJSON = true
			out.JSONData = parsed
		}
	}

	return out, nil
}

// CallJSON performs Call and decodes a JSON response into result.
func (g *Gateway) CallJSON(ctx context.Context, method, path string, body, result any) error {
	resp, err := g.Call(ctx, method, path, body)
	if err != nil {
		return err
	}
	return resp.Decode(result)
}
