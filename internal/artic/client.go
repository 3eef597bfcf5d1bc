package artic

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"
)

// Fetcher defines the interface for fetching artwork pages.
// This interface is implemented by *Client and can be used for testing.
type Fetcher interface {
	FetchPage(ctx context.Context, page int) (Page, error)
	FetchPageIDs(ctx context.Context, page int) ([]int, error)
}

// Ensure Client implements Fetcher at compile time.
var _ Fetcher = (*Client)(nil)

// Client talks to the Art Institute of Chicago artworks API.
type Client struct {
	baseURL   *url.URL
	http      *http.Client
	userAgent string
	limit     int
}

const (
	defaultBaseURL   = "https://api.artic.edu"
	defaultUserAgent = "easel/0.1"
	defaultLimit     = 25
	maxLimit         = 100
	requestTimeout   = 10 * time.Second
	artworksPath     = "/api/v1/artworks"
)

// displayFields is the field list requested for table pages. The API returns
// only what is asked for, which keeps page payloads small.
var displayFields = strings.Join([]string{
	"id",
	"title",
	"artist_display",
	"date_display",
	"medium_display",
	"dimensions",
	"place_of_origin",
	"department_title",
}, ",")

// NewClient builds a Client for the given API base URL. An empty baseURL uses
// the public endpoint; a limit outside 1..100 uses the default page size.
func NewClient(baseURL string, limit int) (*Client, error) {
	base, err := parseBaseURL(baseURL)
	if err != nil {
		return nil, err
	}
	if limit < 1 || limit > maxLimit {
		limit = defaultLimit
	}
	return &Client{
		baseURL: base,
		http: &http.Client{
			Timeout: requestTimeout,
		},
		userAgent: defaultUserAgent,
		limit:     limit,
	}, nil
}

// Limit returns the page size the client requests.
func (c *Client) Limit() int {
	if c == nil {
		return defaultLimit
	}
	return c.limit
}

// FetchPage retrieves one page of artworks with display fields.
func (c *Client) FetchPage(ctx context.Context, page int) (Page, error) {
	if c == nil {
		return Page{}, fmt.Errorf("client is nil")
	}
	if page < 1 {
		return Page{}, fmt.Errorf("page %d out of range", page)
	}
	payload, err := c.fetchArtworks(ctx, page, displayFields)
	if err != nil {
		return Page{}, err
	}
	return Page{Number: page, Artworks: payload.Data, Pagination: payload.Pagination}, nil
}

// FetchPageIDs retrieves only the row identifiers for a page, in server
// order. This is the page-fetch collaborator for bulk selection; an empty
// result means the resource has no more data.
func (c *Client) FetchPageIDs(ctx context.Context, page int) ([]int, error) {
	if c == nil {
		return nil, fmt.Errorf("client is nil")
	}
	if page < 1 {
		return nil, fmt.Errorf("page %d out of range", page)
	}
	payload, err := c.fetchArtworks(ctx, page, "id")
	if err != nil {
		return nil, err
	}
	ids := make([]int, 0, len(payload.Data))
	for _, a := range payload.Data {
		ids = append(ids, a.ID)
	}
	return ids, nil
}

func (c *Client) fetchArtworks(ctx context.Context, page int, fields string) (ArtworksResponse, error) {
	values := url.Values{}
	values.Set("page", strconv.Itoa(page))
	values.Set("limit", strconv.Itoa(c.limit))
	values.Set("fields", fields)
	rel := &url.URL{Path: artworksPath, RawQuery: values.Encode()}

	var payload ArtworksResponse
	if err := c.doURL(ctx, http.MethodGet, rel, &payload); err != nil {
		return ArtworksResponse{}, err
	}
	return payload, nil
}

func (c *Client) doURL(ctx context.Context, method string, rel *url.URL, dest any) error {
	reqURL := c.baseURL.ResolveReference(rel)
	req, err := http.NewRequestWithContext(ctx, method, reqURL.String(), nil)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", c.userAgent)

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("execute request: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode >= 400 {
		return fmt.Errorf("api %s returned status %d", rel.Path, resp.StatusCode)
	}
	if dest == nil {
		return nil
	}
	decoder := json.NewDecoder(resp.Body)
	if err := decoder.Decode(dest); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}

func parseBaseURL(raw string) (*url.URL, error) {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		trimmed = defaultBaseURL
	}
	if !strings.Contains(trimmed, "://") {
		trimmed = "https://" + trimmed
	}
	u, err := url.Parse(trimmed)
	if err != nil {
		return nil, fmt.Errorf("parse api url %q: %w", raw, err)
	}
	u.Path = ""
	u.RawQuery = ""
	u.Fragment = ""
	return u, nil
}
