package wordpress

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

	"golang.org/x/time/rate"
)

// Client is the HTTP wrapper for the WordPress REST API, authenticated with
// an application password over HTTP Basic Auth.
type Client struct {
	postsURL      string
	categoriesURL string
	username      string
	appPassword   string
	httpClient    HTTPDoer
	limiter       *rate.Limiter
}

// Option customises a Client.
type Option func(*Client)

// WithHTTPClient replaces the underlying HTTP client.
func WithHTTPClient(d HTTPDoer) Option {
	return func(c *Client) {
		c.httpClient = d
	}
}

// WithTimeout sets a per-request timeout on the default HTTP client.
// A zero duration keeps the client without a timeout.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) {
		if hc, ok := c.httpClient.(*http.Client); ok {
			hc.Timeout = d
		}
	}
}

// WithRateLimit paces outgoing requests. rps <= 0 disables pacing.
func WithRateLimit(rps float64, burst int) Option {
	return func(c *Client) {
		if rps <= 0 {
			c.limiter = nil
			return
		}
		if burst < 1 {
			burst = 1
		}
		c.limiter = rate.NewLimiter(rate.Limit(rps), burst)
	}
}

// NewClient creates a new WordPress client. postsURL is the full posts
// collection endpoint, e.g. https://example.com/wp-json/wp/v2/posts.
func NewClient(postsURL, username, appPassword string, opts ...Option) *Client {
	c := &Client{
		postsURL:      postsURL,
		categoriesURL: CategoriesURL(postsURL),
		username:      username,
		appPassword:   appPassword,
		httpClient:    &http.Client{},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// CategoriesURL derives the categories endpoint by replacing every "/posts"
// in postsURL with "/categories". A URL without "/posts" is returned unchanged.
func CategoriesURL(postsURL string) string {
	return strings.ReplaceAll(postsURL, postsSegment, categoriesSegment)
}

// PostsURL returns the configured posts endpoint.
func (c *Client) PostsURL() string {
	return c.postsURL
}

// CategoriesURL returns the derived categories endpoint.
func (c *Client) CategoriesURL() string {
	return c.categoriesURL
}

// SearchCategories lists categories via GET {categories}?search=<name>.
// Any status other than 200 is returned as *APIError.
func (c *Client) SearchCategories(ctx context.Context, name string) ([]Category, error) {
	endpoint, err := withQuery(c.categoriesURL, "search", name)
	if err != nil {
		return nil, fmt.Errorf("failed to build categories search URL: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build search categories request: %w", err)
	}

	resp, err := c.do(ctx, httpReq)
	if err != nil {
		return nil, fmt.Errorf("failed to call wordpress categories search API: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, newAPIError(OpSearchCategories, resp)
	}

	var categories []Category
	if err := json.NewDecoder(resp.Body).Decode(&categories); err != nil {
		return nil, fmt.Errorf("failed to decode categories search response: %w", err)
	}
	return categories, nil
}

// CreateCategory creates a category via POST {categories}. Only 201 Created is success.
func (c *Client) CreateCategory(ctx context.Context, req CreateCategoryRequest) (*Category, error) {
	var category Category
	if err := c.create(ctx, OpCreateCategory, c.categoriesURL, req, &category); err != nil {
		return nil, err
	}
	return &category, nil
}

// CreatePost creates a post via POST {posts}. Only 201 Created is success.
func (c *Client) CreatePost(ctx context.Context, req CreatePostRequest) (*Post, error) {
	var post Post
	if err := c.create(ctx, OpCreatePost, c.postsURL, req, &post); err != nil {
		return nil, err
	}
	return &post, nil
}

func (c *Client) create(ctx context.Context, op, endpoint string, payload, out any) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to marshal %s request: %w", op, err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewBuffer(body))
	if err != nil {
		return fmt.Errorf("failed to build %s request: %w", op, err)
	}
	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := c.do(ctx, httpReq)
	if err != nil {
		return fmt.Errorf("failed to call wordpress %s API: %w", op, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusCreated {
		return newAPIError(op, resp)
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("failed to decode %s response: %w", op, err)
	}
	return nil
}

func (c *Client) do(ctx context.Context, req *http.Request) (*http.Response, error) {
	if c.limiter != nil {
		if err := c.limiter.Wait(ctx); err != nil {
			return nil, err
		}
	}
	req.SetBasicAuth(c.username, c.appPassword)
	req.Header.Set("Accept", "application/json")
	return c.httpClient.Do(req)
}

func newAPIError(op string, resp *http.Response) *APIError {
	raw, _ := io.ReadAll(resp.Body)
	return &APIError{Op: op, StatusCode: resp.StatusCode, Body: string(raw)}
}

// withQuery sets key=value on rawURL, keeping any query already present
// (e.g. ?rest_route=/wp/v2/categories on sites without pretty permalinks).
func withQuery(rawURL, key, value string) (string, error) {
	u, err := url.Parse(rawURL)
	if err != nil {
		return "", err
	}
	q := u.Query()
	q.Set(key, value)
	u.RawQuery = q.Encode()
	return u.String(), nil
}
