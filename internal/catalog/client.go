// Package catalog fetches anime entries from the AniList GraphQL API.
package catalog

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"regexp"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/charmbracelet/log"
	"golang.org/x/time/rate"

	"github.com/mydehq/ryu/internal/types"
)

const (
	// DefaultEndpoint is the public AniList GraphQL endpoint
	DefaultEndpoint = "https://graphql.anilist.co"

	serviceName = "AniList"
	maxBodySize = 8 << 20
)

// urlPattern matches AniList anime URLs
var urlPattern = regexp.MustCompile(`anilist\.co/anime/(\d+)`)

// Client queries the catalog. Every Fetch issues a network request; nothing is cached.
type Client struct {
	endpoint string
	client   *http.Client
	limiter  *rate.Limiter
	logger   *log.Logger
}

// ClientOption customizes a Client
type ClientOption func(*Client)

// WithHTTPClient replaces the underlying HTTP client
func WithHTTPClient(hc *http.Client) ClientOption {
	return func(c *Client) {
		c.client = hc
	}
}

// WithLogger sets the logger used for request tracing
func WithLogger(l *log.Logger) ClientOption {
	return func(c *Client) {
		c.logger = l
	}
}

// NewClient creates a catalog client from cfg
func NewClient(cfg types.CatalogConfig, opts ...ClientOption) *Client {
	timeout := 30 * time.Second
	rps := 1.0
	endpoint := DefaultEndpoint

	if cfg.Timeout > 0 {
		timeout = time.Duration(cfg.Timeout) * time.Second
	}
	if cfg.RateLimit > 0 {
		rps = cfg.RateLimit
	}
	if cfg.Endpoint != "" {
		endpoint = cfg.Endpoint
	}

	c := &Client{
		endpoint: endpoint,
		client:   &http.Client{Timeout: timeout},
		limiter:  rate.NewLimiter(rate.Limit(rps), 1),
		logger:   log.Default(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Fetch retrieves and parses the media entry with the given id
func (c *Client) Fetch(ctx context.Context, mediaID int) (*types.Media, error) {
	body, err := c.FetchRaw(ctx, mediaID)
	if err != nil {
		return nil, err
	}

	media, err := Parse(body)
	if err != nil {
		var fe types.ErrFetch
		if errors.As(err, &fe) {
			fe.MediaID = mediaID
			return nil, fe
		}
		return nil, err
	}
	return media, nil
}

// FetchRaw posts the query for mediaID and returns the raw response body
func (c *Client) FetchRaw(ctx context.Context, mediaID int) ([]byte, error) {
	transportErr := func(err error) error {
		return types.ErrFetch{Kind: types.FetchTransport, MediaID: mediaID, Err: err}
	}

	if err := c.limiter.Wait(ctx); err != nil {
		return nil, transportErr(err)
	}

	payload, err := json.Marshal(map[string]string{"query": BuildQuery(mediaID)})
	if err != nil {
		return nil, transportErr(err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(payload))
	if err != nil {
		return nil, transportErr(err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	c.logger.Debug("Fetching media", "id", mediaID, "endpoint", c.endpoint)

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, transportErr(err)
	}
	defer func() { _ = resp.Body.Close() }()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodySize))
	if err != nil {
		return nil, transportErr(fmt.Errorf("failed to read response: %w", err))
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		msg := firstError(body)
		if msg == "" {
			msg = fmt.Sprintf("failed to fetch media %d", mediaID)
		}
		return nil, transportErr(types.ErrAPIError{
			Service:    serviceName,
			StatusCode: resp.StatusCode,
			Message:    msg,
		})
	}

	if len(bytes.TrimSpace(body)) == 0 {
		return nil, types.ErrFetch{Kind: types.FetchEmptyResponse, MediaID: mediaID}
	}
	return body, nil
}

// Request is a handle on a fetch started with Start
type Request struct {
	cancel context.CancelFunc
	mu     sync.Mutex
	closed bool
}

// Cancel aborts the request. If delivery has not started yet it never will.
func (r *Request) Cancel() {
	r.mu.Lock()
	r.closed = true
	r.mu.Unlock()
	r.cancel()
}

// Start fetches mediaID in the background and calls deliver exactly once
// with the outcome, unless the request is cancelled first.
func (c *Client) Start(ctx context.Context, mediaID int, deliver func(*types.Media, error)) *Request {
	ctx, cancel := context.WithCancel(ctx)
	r := &Request{cancel: cancel}

	go func() {
		defer cancel()
		media, err := c.Fetch(ctx, mediaID)

		r.mu.Lock()
		cancelled := r.closed
		r.closed = true
		r.mu.Unlock()

		if cancelled {
			c.logger.Debug("Dropping result of cancelled fetch", "id", mediaID)
			return
		}
		deliver(media, err)
	}()

	return r
}

// ExtractID accepts a bare numeric id or an AniList anime URL
func ExtractID(s string) (int, error) {
	s = strings.TrimSpace(s)
	if id, err := strconv.Atoi(s); err == nil && id > 0 {
		return id, nil
	}

	matches := urlPattern.FindStringSubmatch(s)
	if len(matches) > 1 {
		if id, err := strconv.Atoi(matches[1]); err == nil && id > 0 {
			return id, nil
		}
	}
	return 0, fmt.Errorf("could not extract AniList ID from: %s", s)
}
