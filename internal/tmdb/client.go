package tmdb

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"
)

var (
	// ErrNotFound indicates TMDB has no record for the requested identifier.
	ErrNotFound = errors.New("tmdb: not found")
	// ErrMalformedResponse indicates TMDB returned a payload that failed to decode.
	ErrMalformedResponse = errors.New("tmdb: malformed response")
)

// Catalog defines the read-only TMDB operations Marquee consumes.
type Catalog interface {
	PopularMovies(ctx context.Context, page int) (*Page, error)
	PopularTV(ctx context.Context, page int) (*Page, error)
	SearchMovies(ctx context.Context, query string, page int) (*Page, error)
	SearchTV(ctx context.Context, query string, page int) (*Page, error)
	MovieDetails(ctx context.Context, movieID int64) (*MovieDetails, error)
	TVDetails(ctx context.Context, showID int64) (*TVDetails, error)
	MovieVideos(ctx context.Context, movieID int64) ([]Video, error)
	TVVideos(ctx context.Context, showID int64) ([]Video, error)
}

// Client provides access to the TMDB API.
type Client struct {
	apiKey     string
	baseURL    string
	language   string
	httpClient *http.Client
}

var _ Catalog = (*Client)(nil)

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient overrides the default HTTP client.
func WithHTTPClient(client *http.Client) Option {
	return func(c *Client) {
		if client != nil {
			c.httpClient = client
		}
	}
}

// WithTimeout overrides the request timeout on the default HTTP client.
func WithTimeout(timeout time.Duration) Option {
	return func(c *Client) {
		if timeout > 0 {
			c.httpClient.Timeout = timeout
		}
	}
}

// New creates a TMDB client.
func New(apiKey, baseURL, language string, opts ...Option) (*Client, error) {
	apiKey = strings.TrimSpace(apiKey)
	if apiKey == "" {
		return nil, errors.New("tmdb api key required")
	}
	baseURL = strings.TrimSpace(baseURL)
	if baseURL == "" {
		return nil, errors.New("tmdb base url required")
	}
	language = strings.TrimSpace(language)
	client := &Client{
		apiKey:     apiKey,
		baseURL:    strings.TrimRight(baseURL, "/"),
		language:   language,
		httpClient: &http.Client{Timeout: 5 * time.Second},
	}
	for _, opt := range opts {
		opt(client)
	}
	return client, nil
}

// PopularMovies fetches one page of the popular-movies listing.
func (c *Client) PopularMovies(ctx context.Context, page int) (*Page, error) {
	payload := new(Page)
	if err := c.get(ctx, "/movie/popular", pageParams(page), payload); err != nil {
		return nil, err
	}
	tagMediaType(payload, "movie")
	return payload, nil
}

// PopularTV fetches one page of the popular-TV listing.
func (c *Client) PopularTV(ctx context.Context, page int) (*Page, error) {
	payload := new(Page)
	if err := c.get(ctx, "/tv/popular", pageParams(page), payload); err != nil {
		return nil, err
	}
	tagMediaType(payload, "tv")
	return payload, nil
}

// SearchMovies performs a TMDB movie search for the supplied title.
func (c *Client) SearchMovies(ctx context.Context, query string, page int) (*Page, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return nil, errors.New("query must not be empty")
	}
	params := pageParams(page)
	params.Set("query", query)
	payload := new(Page)
	if err := c.get(ctx, "/search/movie", params, payload); err != nil {
		return nil, err
	}
	tagMediaType(payload, "movie")
	return payload, nil
}

// SearchTV performs a TMDB TV search for the supplied title.
func (c *Client) SearchTV(ctx context.Context, query string, page int) (*Page, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return nil, errors.New("query must not be empty")
	}
	params := pageParams(page)
	params.Set("query", query)
	payload := new(Page)
	if err := c.get(ctx, "/search/tv", params, payload); err != nil {
		return nil, err
	}
	tagMediaType(payload, "tv")
	return payload, nil
}

// MovieDetails fetches movie details by TMDB ID.
func (c *Client) MovieDetails(ctx context.Context, movieID int64) (*MovieDetails, error) {
	if movieID <= 0 {
		return nil, errors.New("movie id must be positive")
	}
	payload := new(MovieDetails)
	if err := c.get(ctx, fmt.Sprintf("/movie/%d", movieID), url.Values{}, payload); err != nil {
		return nil, err
	}
	return payload, nil
}

// TVDetails fetches TV show details by TMDB ID.
func (c *Client) TVDetails(ctx context.Context, showID int64) (*TVDetails, error) {
	if showID <= 0 {
		return nil, errors.New("show id must be positive")
	}
	payload := new(TVDetails)
	if err := c.get(ctx, fmt.Sprintf("/tv/%d", showID), url.Values{}, payload); err != nil {
		return nil, err
	}
	return payload, nil
}

// MovieVideos fetches trailer/teaser references for a movie.
func (c *Client) MovieVideos(ctx context.Context, movieID int64) ([]Video, error) {
	if movieID <= 0 {
		return nil, errors.New("movie id must be positive")
	}
	payload := new(videoList)
	if err := c.get(ctx, fmt.Sprintf("/movie/%d/videos", movieID), url.Values{}, payload); err != nil {
		return nil, err
	}
	return payload.Results, nil
}

// TVVideos fetches trailer/teaser references for a TV show.
func (c *Client) TVVideos(ctx context.Context, showID int64) ([]Video, error) {
	if showID <= 0 {
		return nil, errors.New("show id must be positive")
	}
	payload := new(videoList)
	if err := c.get(ctx, fmt.Sprintf("/tv/%d/videos", showID), url.Values{}, payload); err != nil {
		return nil, err
	}
	return payload.Results, nil
}

func (c *Client) get(ctx context.Context, path string, params url.Values, dst any) error {
	endpoint, err := url.Parse(c.baseURL + path)
	if err != nil {
		return fmt.Errorf("parse tmdb url: %w", err)
	}
	params.Set("api_key", c.apiKey)
	if c.language != "" {
		params.Set("language", c.language)
	}
	endpoint.RawQuery = params.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint.String(), nil)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}

	requestStart := time.Now()
	resp, err := c.httpClient.Do(req)
	latency := time.Since(requestStart)
	if err != nil {
		return fmt.Errorf("execute request (latency=%v): %w", latency, err)
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusNotFound:
		return fmt.Errorf("%w: %s", ErrNotFound, path)
	case resp.StatusCode != http.StatusOK:
		return fmt.Errorf("tmdb %s returned %d (latency=%v)", path, resp.StatusCode, latency)
	}

	if err := json.NewDecoder(resp.Body).Decode(dst); err != nil {
		return fmt.Errorf("%w: decode %s: %v", ErrMalformedResponse, path, err)
	}
	return nil
}

func pageParams(page int) url.Values {
	params := url.Values{}
	if page < 1 {
		page = 1
	}
	params.Set("page", strconv.Itoa(page))
	return params
}

func tagMediaType(page *Page, mediaType string) {
	for i := range page.Results {
		page.Results[i].MediaType = mediaType
	}
}
