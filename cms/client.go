package cms

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

// DefaultTimeout bounds a single request when no timeout option is given.
const DefaultTimeout = 10 * time.Second

const maxBodyBytes = 16 << 20

// Event describes one completed client call. Err is set when the call
// failed. Skipped counts records left out because they could not be
// decoded; SkipErr joins their errors.
type Event struct {
	Op       string
	URL      string
	Status   int
	Count    int
	Skipped  int
	Duration time.Duration
	Err      error
	SkipErr  error
}

// Observer receives an Event after every call. It must not block.
type Observer func(Event)

// StatusError is returned for non-2xx responses.
type StatusError struct {
	Code int
	Body string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("cms: unexpected status %d: %s", e.Code, e.Body)
}

type Client struct {
	baseURL  string
	http     *http.Client
	timeout  time.Duration
	observer Observer
}

type Option func(*Client)

func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.http = hc }
}

func WithTimeout(d time.Duration) Option {
	return func(c *Client) {
		if d > 0 {
			c.timeout = d
		}
	}
}

func WithObserver(o Observer) Option {
	return func(c *Client) { c.observer = o }
}

// NewClient returns a client for the CMS API rooted at baseURL
// (for example https://cms.example.com/api).
func NewClient(baseURL string, opts ...Option) *Client {
	c := &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		timeout: DefaultTimeout,
	}
	for _, opt := range opts {
		opt(c)
	}
	if c.http == nil {
		c.http = &http.Client{Timeout: c.timeout}
	}
	return c
}

func (c *Client) BaseURL() string { return c.baseURL }

// AssetOrigin is the base URL without its /api suffix; CMS upload paths
// are relative to it.
func (c *Client) AssetOrigin() string {
	return strings.TrimSuffix(c.baseURL, "/api")
}

func (c *Client) observe(ev Event) {
	if c.observer != nil {
		c.observer(ev)
	}
}

// get performs one GET and normalizes the body. The returned Event has
// URL and Status filled in.
func (c *Client) get(ctx context.Context, endpoint string, q *Query) (Payload, Event, error) {
	u := c.baseURL + "/" + strings.TrimLeft(endpoint, "/")
	if enc := q.Encode(); enc != "" {
		u += "?" + enc
	}
	ev := Event{URL: u}

	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return Payload{}, ev, fmt.Errorf("cms: build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return Payload{}, ev, fmt.Errorf("cms: request %s: %w", endpoint, err)
	}
	defer resp.Body.Close()
	ev.Status = resp.StatusCode

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
	if err != nil {
		return Payload{}, ev, fmt.Errorf("cms: read body: %w", err)
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		snippet := string(body)
		if len(snippet) > 256 {
			snippet = snippet[:256]
		}
		return Payload{}, ev, &StatusError{Code: resp.StatusCode, Body: snippet}
	}
	p, err := Normalize(body)
	if err != nil {
		return Payload{}, ev, err
	}
	return p, ev, nil
}

// fetch runs a GET, decodes every record into T and reports one Event.
func fetch[T any](ctx context.Context, c *Client, op, endpoint string, q *Query) ([]T, Payload, error) {
	start := time.Now()
	p, ev, err := c.get(ctx, endpoint, q)
	var items []T
	if err == nil {
		var skipped []error
		items, skipped = decodeRecords[T](p.Records())
		ev.Skipped = len(skipped)
		ev.SkipErr = errors.Join(skipped...)
	}
	ev.Op = op
	ev.Duration = time.Since(start)
	ev.Count = len(items)
	ev.Err = err
	c.observe(ev)
	return items, p, err
}

// listResult fetches a collection. keep, when non-nil, re-validates the
// CMS filter locally.
func listResult[T any](ctx context.Context, c *Client, op, endpoint string, q *Query, failMsg string, keep func(T) bool) Result[[]T] {
	items, _, err := fetch[T](ctx, c, op, endpoint, q)
	if err != nil {
		return Fail(make([]T, 0), failMsg)
	}
	if keep != nil {
		items = revalidate(items, keep)
	}
	return OK(items)
}

// slugResult fetches by slug. The CMS filter is not trusted to return a
// singleton: an exact slug match wins, otherwise the first record.
func slugResult[T any](ctx context.Context, c *Client, op, endpoint, slug string, failMsg, notFoundMsg string, slugOf func(T) string) Result[*T] {
	if strings.TrimSpace(slug) == "" {
		return Fail[*T](nil, notFoundMsg)
	}
	q := NewQuery().Eq(slug, "slug").Populate()
	items, p, err := fetch[T](ctx, c, op, endpoint, q)
	if err != nil {
		return Fail[*T](nil, failMsg)
	}
	if len(items) == 0 {
		if len(p.Records()) > 0 {
			// matched, but nothing decodable
			return Fail[*T](nil, failMsg)
		}
		return Fail[*T](nil, notFoundMsg)
	}
	for i := range items {
		if slugOf(items[i]) == slug {
			return OK(&items[i])
		}
	}
	return OK(&items[0])
}

// revalidate keeps records that pass keep.
func revalidate[T any](items []T, keep func(T) bool) []T {
	out := make([]T, 0, len(items))
	for _, it := range items {
		if keep(it) {
			out = append(out, it)
		}
	}
	return out
}
