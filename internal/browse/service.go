package browse

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"marquee/internal/logging"
	"marquee/internal/posters"
	"marquee/internal/tmdb"
)

// MediaKind selects between the two catalog branches.
type MediaKind string

const (
	KindMovie MediaKind = "movie"
	KindTV    MediaKind = "tv"
)

// ParseMediaKind maps CLI spellings ("movie", "movies", "tv", "shows") to a
// MediaKind.
func ParseMediaKind(value string) (MediaKind, error) {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "movie", "movies":
		return KindMovie, nil
	case "tv", "show", "shows":
		return KindTV, nil
	default:
		return "", fmt.Errorf("unknown media kind %q (expected movies or tv)", value)
	}
}

// ErrNoTrailer indicates the title has no usable trailer on YouTube.
var ErrNoTrailer = errors.New("no trailer available")

// Service exposes session-gated catalog operations to the CLI.
type Service struct {
	catalog      tmdb.Catalog
	images       tmdb.Images
	cache        *posters.Cache
	posterSize   string
	backdropSize string
	logger       *slog.Logger
}

// Option configures a Service.
type Option func(*Service)

// WithLogger attaches a logger.
func WithLogger(logger *slog.Logger) Option {
	return func(s *Service) {
		if logger != nil {
			s.logger = logger.With(slog.String(logging.FieldComponent, "browse"))
		}
	}
}

// New creates a Service. The poster cache may be nil when artwork retrieval
// is not needed (e.g. pure listing commands).
func New(catalog tmdb.Catalog, images tmdb.Images, cache *posters.Cache, posterSize, backdropSize string, opts ...Option) *Service {
	s := &Service{
		catalog:      catalog,
		images:       images,
		cache:        cache,
		posterSize:   posterSize,
		backdropSize: backdropSize,
		logger:       logging.NewNop(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Row is a single listing line ready for rendering.
type Row struct {
	ID        int64  `json:"id"`
	Title     string `json:"title"`
	Year      string `json:"year"`
	Rating    string `json:"rating"`
	MediaType string `json:"media_type"`
	Overview  string `json:"overview"`
	PosterURL string `json:"poster_url,omitempty"`
}

// Listing is a rendered page of catalog results.
type Listing struct {
	Rows         []Row `json:"rows"`
	Page         int   `json:"page"`
	TotalPages   int   `json:"total_pages"`
	TotalResults int   `json:"total_results"`
}

// Popular returns one page of the popular listing for the media kind.
func (s *Service) Popular(ctx context.Context, kind MediaKind, page int) (*Listing, error) {
	var (
		result *tmdb.Page
		err    error
	)
	switch kind {
	case KindMovie:
		result, err = s.catalog.PopularMovies(ctx, page)
	case KindTV:
		result, err = s.catalog.PopularTV(ctx, page)
	default:
		return nil, fmt.Errorf("unknown media kind %q", kind)
	}
	if err != nil {
		return nil, fmt.Errorf("fetch popular %s: %w", kind, err)
	}
	return s.listing(result), nil
}

// Search returns one page of search results for the media kind.
func (s *Service) Search(ctx context.Context, kind MediaKind, query string, page int) (*Listing, error) {
	var (
		result *tmdb.Page
		err    error
	)
	switch kind {
	case KindMovie:
		result, err = s.catalog.SearchMovies(ctx, query, page)
	case KindTV:
		result, err = s.catalog.SearchTV(ctx, query, page)
	default:
		return nil, fmt.Errorf("unknown media kind %q", kind)
	}
	if err != nil {
		return nil, fmt.Errorf("search %s: %w", kind, err)
	}
	return s.listing(result), nil
}

func (s *Service) listing(page *tmdb.Page) *Listing {
	listing := &Listing{
		Rows:         make([]Row, 0, len(page.Results)),
		Page:         page.Page,
		TotalPages:   page.TotalPages,
		TotalResults: page.TotalResults,
	}
	for _, entry := range page.Results {
		listing.Rows = append(listing.Rows, Row{
			ID:        entry.ID,
			Title:     entry.DisplayTitle(),
			Year:      formatYear(entry.FirstRelease()),
			Rating:    formatRating(entry.VoteAverage, entry.VoteCount),
			MediaType: mediaLabel(entry.MediaType),
			Overview:  truncate(entry.Overview, overviewLimit),
			PosterURL: s.images.PosterURL(entry.PosterPath, s.posterSize),
		})
	}
	return listing
}

// MovieView is a formatted movie detail view.
type MovieView struct {
	ID          int64  `json:"id"`
	Title       string `json:"title"`
	Tagline     string `json:"tagline,omitempty"`
	Year        string `json:"year"`
	Runtime     string `json:"runtime,omitempty"`
	Genres      string `json:"genres,omitempty"`
	Rating      string `json:"rating"`
	Status      string `json:"status,omitempty"`
	Budget      string `json:"budget,omitempty"`
	Revenue     string `json:"revenue,omitempty"`
	Overview    string `json:"overview"`
	PosterURL   string `json:"poster_url,omitempty"`
	BackdropURL string `json:"backdrop_url,omitempty"`
}

// Movie fetches and formats details for a movie.
func (s *Service) Movie(ctx context.Context, id int64) (*MovieView, error) {
	details, err := s.catalog.MovieDetails(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("movie details: %w", err)
	}
	return &MovieView{
		ID:          details.ID,
		Title:       details.Title,
		Tagline:     details.Tagline,
		Year:        formatYear(details.ReleaseDate),
		Runtime:     formatRuntime(details.Runtime),
		Genres:      joinGenres(details.Genres),
		Rating:      formatRating(details.VoteAverage, details.VoteCount),
		Status:      details.Status,
		Budget:      formatMoney(details.Budget),
		Revenue:     formatMoney(details.Revenue),
		Overview:    details.Overview,
		PosterURL:   s.images.PosterURL(details.PosterPath, s.posterSize),
		BackdropURL: s.images.BackdropURL(details.BackdropPath, s.backdropSize),
	}, nil
}

// SeasonView is a formatted season line inside a TV detail view.
type SeasonView struct {
	Number   int    `json:"number"`
	Name     string `json:"name"`
	Episodes int    `json:"episodes"`
	AirDate  string `json:"air_date,omitempty"`
}

// TVView is a formatted TV show detail view.
type TVView struct {
	ID          int64        `json:"id"`
	Title       string       `json:"title"`
	Tagline     string       `json:"tagline,omitempty"`
	Years       string       `json:"years"`
	EpisodeTime string       `json:"episode_time,omitempty"`
	Genres      string       `json:"genres,omitempty"`
	Rating      string       `json:"rating"`
	Status      string       `json:"status,omitempty"`
	Seasons     []SeasonView `json:"seasons,omitempty"`
	Overview    string       `json:"overview"`
	PosterURL   string       `json:"poster_url,omitempty"`
	BackdropURL string       `json:"backdrop_url,omitempty"`
}

// TV fetches and formats details for a TV show.
func (s *Service) TV(ctx context.Context, id int64) (*TVView, error) {
	details, err := s.catalog.TVDetails(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("tv details: %w", err)
	}
	view := &TVView{
		ID:          details.ID,
		Title:       details.Name,
		Tagline:     details.Tagline,
		Years:       formatYearRange(details.FirstAirDate, details.LastAirDate, details.Status),
		EpisodeTime: formatEpisodeRuntime(details.EpisodeRunTime),
		Genres:      joinGenres(details.Genres),
		Rating:      formatRating(details.VoteAverage, details.VoteCount),
		Status:      details.Status,
		Overview:    details.Overview,
		PosterURL:   s.images.PosterURL(details.PosterPath, s.posterSize),
		BackdropURL: s.images.BackdropURL(details.BackdropPath, s.backdropSize),
	}
	for _, season := range details.Seasons {
		if season.SeasonNumber == 0 {
			// TMDB files specials under season zero; skip them in the summary.
			continue
		}
		view.Seasons = append(view.Seasons, SeasonView{
			Number:   season.SeasonNumber,
			Name:     season.Name,
			Episodes: season.EpisodeCount,
			AirDate:  season.AirDate,
		})
	}
	return view, nil
}

// TrailerURL resolves the best YouTube trailer for a title.
func (s *Service) TrailerURL(ctx context.Context, kind MediaKind, id int64) (string, error) {
	var (
		videos []tmdb.Video
		err    error
	)
	switch kind {
	case KindMovie:
		videos, err = s.catalog.MovieVideos(ctx, id)
	case KindTV:
		videos, err = s.catalog.TVVideos(ctx, id)
	default:
		return "", fmt.Errorf("unknown media kind %q", kind)
	}
	if err != nil {
		return "", fmt.Errorf("fetch videos: %w", err)
	}
	trailer := tmdb.BestTrailer(videos)
	if trailer == nil {
		return "", ErrNoTrailer
	}
	return tmdb.YouTubeURL(trailer.Key), nil
}

// FetchPoster downloads the title's poster into the cache and returns the
// local path. Size may be empty to use the configured default.
func (s *Service) FetchPoster(ctx context.Context, kind MediaKind, id int64, size string) (string, error) {
	if s.cache == nil {
		return "", errors.New("poster cache not configured")
	}
	if size == "" {
		size = s.posterSize
	}

	var posterPath string
	switch kind {
	case KindMovie:
		details, err := s.catalog.MovieDetails(ctx, id)
		if err != nil {
			return "", fmt.Errorf("movie details: %w", err)
		}
		posterPath = details.PosterPath
	case KindTV:
		details, err := s.catalog.TVDetails(ctx, id)
		if err != nil {
			return "", fmt.Errorf("tv details: %w", err)
		}
		posterPath = details.PosterPath
	default:
		return "", fmt.Errorf("unknown media kind %q", kind)
	}

	posterURL := s.images.PosterURL(posterPath, size)
	if posterURL == "" {
		return "", fmt.Errorf("%s %d has no poster", kind, id)
	}
	local, err := s.cache.Fetch(ctx, posterURL)
	if err != nil {
		return "", fmt.Errorf("fetch poster: %w", err)
	}
	s.logger.Debug("poster resolved", slog.String("kind", string(kind)), slog.Int64("id", id), slog.String("path", local))
	return local, nil
}
