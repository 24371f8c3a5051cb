package gateway

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"sync"
	"time"

	"github.com/rs/zerolog"
)

// REST talks to a hosted PostgREST-style backend: auth endpoints under
// /auth/v1 and one CRUD route per table under /rest/v1. It also owns the
// cached session and the auth-state subscription list, firing callbacks
// locally on sign-in, sign-up and sign-out.
type REST struct {
	baseURL string
	http    *http.Client
	log     zerolog.Logger
	now     func() time.Time

	mu      sync.Mutex
	session *Session
	subs    map[int]AuthStateFn
	nextSub int
}

var _ Gateway = (*REST)(nil)

// Option configures a REST gateway during construction in NewREST.
type Option func(*REST) error

// WithHTTPTimeout sets the underlying http.Client timeout. The value must be
// greater than zero.
func WithHTTPTimeout(d time.Duration) Option {
	return func(g *REST) error {
		if d <= 0 {
			return fmt.Errorf("http timeout must be > 0")
		}
		g.http.Timeout = d
		return nil
	}
}

// WithLogger replaces the gateway logger.
func WithLogger(l zerolog.Logger) Option {
	return func(g *REST) error {
		g.log = l
		return nil
	}
}

// WithDebugLogging wraps the transport so each request/response is dumped to
// the log when enabled is true.
func WithDebugLogging(enabled bool) Option {
	return func(g *REST) error {
		if enabled {
			g.http.Transport = &debugTransport{base: g.http.Transport}
		}
		return nil
	}
}

// WithClock overrides the time source used for session expiry checks.
func WithClock(now func() time.Time) Option {
	return func(g *REST) error {
		g.now = now
		return nil
	}
}

// NewREST constructs a REST gateway for the given base URL and api key.
func NewREST(baseURL, apiKey string, opts ...Option) *REST {
	if baseURL == "" {
		panic("baseURL cannot be empty")
	}
	if apiKey == "" {
		panic("apiKey cannot be empty")
	}

	g := &REST{
		baseURL: baseURL,
		http:    &http.Client{Timeout: 30 * time.Second},
		log:     zerolog.Nop(),
		now:     time.Now,
		subs:    map[int]AuthStateFn{},
	}

	// Auto-enable debug via env variable without changing code.
	if debugLoggingRequested() {
		opts = append(opts, WithDebugLogging(true))
	}

	for _, opt := range opts {
		if err := opt(g); err != nil {
			panic(err)
		}
	}

	base := g.http.Transport
	if base == nil {
		base = http.DefaultTransport
	}
	g.http.Transport = &apiKeyTransport{base: base, apiKey: apiKey}

	return g
}

// apiKeyTransport adds the api key headers to every request. The bearer
// token defaults to the api key itself and is overridden per request once a
// session token is attached.
type apiKeyTransport struct {
	base   http.RoundTripper
	apiKey string
}

func (t *apiKeyTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	cloned := req.Clone(req.Context())
	cloned.Header.Set("apikey", t.apiKey)
	if cloned.Header.Get("Authorization") == "" {
		cloned.Header.Set("Authorization", "Bearer "+t.apiKey)
	}
	return t.base.RoundTrip(cloned)
}

// ------------------------------
// Request plumbing
// ------------------------------

func (g *REST) newRequest(ctx context.Context, method, path string, q url.Values, body any) (*http.Request, error) {
	u := g.baseURL + path
	if len(q) > 0 {
		u += "?" + q.Encode()
	}
	var buf *bytes.Buffer
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			return nil, err
		}
		buf = bytes.NewBuffer(b)
	} else {
		buf = &bytes.Buffer{}
	}
	req, err := http.NewRequestWithContext(ctx, method, u, buf)
	if err != nil {
		return nil, err
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	g.mu.Lock()
	if g.session != nil {
		req.Header.Set("Authorization", "Bearer "+g.session.AccessToken)
	}
	g.mu.Unlock()
	return req, nil
}

// insertRows POSTs payload to a table and decodes the representation the
// backend returns (an array of inserted rows) into out when out is non-nil.
func (g *REST) insertRows(ctx context.Context, table string, payload, out any) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	req, err := g.newRequest(ctx, http.MethodPost, "/rest/v1/"+table, nil, payload)
	if err != nil {
		return err
	}
	if out != nil {
		req.Header.Set("Prefer", "return=representation")
	} else {
		req.Header.Set("Prefer", "return=minimal")
	}

	resp, err := g.http.Do(req)
	if err != nil {
		return err
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusCreated {
		return statusError("insert "+table, resp.StatusCode)
	}
	if out != nil {
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			return err
		}
	}
	return nil
}

// updateRows PATCHes every row matching the eq filters.
func (g *REST) updateRows(ctx context.Context, table string, filters url.Values, patch map[string]any) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	req, err := g.newRequest(ctx, http.MethodPatch, "/rest/v1/"+table, filters, patch)
	if err != nil {
		return err
	}
	req.Header.Set("Prefer", "return=minimal")

	resp, err := g.http.Do(req)
	if err != nil {
		return err
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusNoContent && resp.StatusCode != http.StatusOK {
		return statusError("update "+table, resp.StatusCode)
	}
	return nil
}

// deleteRows removes every row matching the eq filters.
func (g *REST) deleteRows(ctx context.Context, table string, filters url.Values) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	req, err := g.newRequest(ctx, http.MethodDelete, "/rest/v1/"+table, filters, nil)
	if err != nil {
		return err
	}

	resp, err := g.http.Do(req)
	if err != nil {
		return err
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusNoContent && resp.StatusCode != http.StatusOK {
		return statusError("delete "+table, resp.StatusCode)
	}
	return nil
}

// selectRows GETs rows matching the eq filters into out (a pointer to a
// slice of row structs).
func (g *REST) selectRows(ctx context.Context, table string, filters url.Values, out any) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	req, err := g.newRequest(ctx, http.MethodGet, "/rest/v1/"+table, filters, nil)
	if err != nil {
		return err
	}

	resp, err := g.http.Do(req)
	if err != nil {
		return err
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return statusError("select "+table, resp.StatusCode)
	}
	return json.NewDecoder(resp.Body).Decode(out)
}

func eq(pairs ...string) url.Values {
	v := url.Values{}
	for i := 0; i+1 < len(pairs); i += 2 {
		v.Set(pairs[i], "eq."+pairs[i+1])
	}
	return v
}
