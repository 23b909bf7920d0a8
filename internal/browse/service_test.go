package browse_test

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"marquee/internal/browse"
	"marquee/internal/posters"
	"marquee/internal/tmdb"
)

type fakeCatalog struct {
	popularMovies *tmdb.Page
	popularTV     *tmdb.Page
	movie         *tmdb.MovieDetails
	tv            *tmdb.TVDetails
	movieVideos   []tmdb.Video
	tvVideos      []tmdb.Video
	err           error
}

func (f *fakeCatalog) PopularMovies(ctx context.Context, page int) (*tmdb.Page, error) {
	return f.popularMovies, f.err
}

func (f *fakeCatalog) PopularTV(ctx context.Context, page int) (*tmdb.Page, error) {
	return f.popularTV, f.err
}

func (f *fakeCatalog) SearchMovies(ctx context.Context, query string, page int) (*tmdb.Page, error) {
	return f.popularMovies, f.err
}

func (f *fakeCatalog) SearchTV(ctx context.Context, query string, page int) (*tmdb.Page, error) {
	return f.popularTV, f.err
}

func (f *fakeCatalog) MovieDetails(ctx context.Context, movieID int64) (*tmdb.MovieDetails, error) {
	return f.movie, f.err
}

func (f *fakeCatalog) TVDetails(ctx context.Context, showID int64) (*tmdb.TVDetails, error) {
	return f.tv, f.err
}

func (f *fakeCatalog) MovieVideos(ctx context.Context, movieID int64) ([]tmdb.Video, error) {
	return f.movieVideos, f.err
}

func (f *fakeCatalog) TVVideos(ctx context.Context, showID int64) ([]tmdb.Video, error) {
	return f.tvVideos, f.err
}

func newService(catalog tmdb.Catalog, cache *posters.Cache, imageBase string) *browse.Service {
	return browse.New(catalog, tmdb.NewImages(imageBase), cache, "w500", "w1280")
}

func TestParseMediaKind(t *testing.T) {
	for value, want := range map[string]browse.MediaKind{
		"movies": browse.KindMovie,
		"Movie":  browse.KindMovie,
		"tv":     browse.KindTV,
		"shows":  browse.KindTV,
	} {
		got, err := browse.ParseMediaKind(value)
		if err != nil || got != want {
			t.Fatalf("ParseMediaKind(%q) = %q, %v", value, got, err)
		}
	}
	if _, err := browse.ParseMediaKind("music"); err == nil {
		t.Fatal("expected error for unknown kind")
	}
}

func TestPopularBuildsListing(t *testing.T) {
	catalog := &fakeCatalog{
		popularMovies: &tmdb.Page{
			Page:         1,
			TotalPages:   40,
			TotalResults: 800,
			Results: []tmdb.ListEntry{
				{
					ID:          603,
					Title:       "The Matrix",
					ReleaseDate: "1999-03-31",
					VoteAverage: 8.2,
					VoteCount:   26000,
					PosterPath:  "/matrix.jpg",
					MediaType:   "movie",
					Overview:    "A computer hacker learns the truth.",
				},
			},
		},
	}
	svc := newService(catalog, nil, "https://image.test/t/p")

	listing, err := svc.Popular(context.Background(), browse.KindMovie, 1)
	if err != nil {
		t.Fatalf("Popular failed: %v", err)
	}
	if listing.TotalResults != 800 || len(listing.Rows) != 1 {
		t.Fatalf("unexpected listing: %#v", listing)
	}
	row := listing.Rows[0]
	if row.Title != "The Matrix" || row.Year != "1999" || row.Rating != "8.2" {
		t.Fatalf("unexpected row: %#v", row)
	}
	if row.MediaType != "Movie" {
		t.Fatalf("unexpected media label: %q", row.MediaType)
	}
	if row.PosterURL != "https://image.test/t/p/w500/matrix.jpg" {
		t.Fatalf("unexpected poster url: %q", row.PosterURL)
	}
}

func TestPopularPropagatesCatalogError(t *testing.T) {
	catalog := &fakeCatalog{err: tmdb.ErrMalformedResponse}
	svc := newService(catalog, nil, "https://image.test")

	_, err := svc.Popular(context.Background(), browse.KindTV, 1)
	if !errors.Is(err, tmdb.ErrMalformedResponse) {
		t.Fatalf("expected wrapped catalog error, got %v", err)
	}
}

func TestMovieViewFormatsDetails(t *testing.T) {
	catalog := &fakeCatalog{
		movie: &tmdb.MovieDetails{
			ID:          603,
			Title:       "The Matrix",
			ReleaseDate: "1999-03-31",
			Runtime:     136,
			Budget:      63000000,
			Revenue:     463517383,
			Genres:      []tmdb.Genre{{Name: "Action"}, {Name: "Science Fiction"}},
			VoteAverage: 8.2,
			VoteCount:   26000,
		},
	}
	svc := newService(catalog, nil, "https://image.test")

	view, err := svc.Movie(context.Background(), 603)
	if err != nil {
		t.Fatalf("Movie failed: %v", err)
	}
	if view.Runtime != "2h16m" {
		t.Fatalf("unexpected runtime: %q", view.Runtime)
	}
	if view.Budget != "$63,000,000" || view.Revenue != "$463,517,383" {
		t.Fatalf("unexpected financials: %q / %q", view.Budget, view.Revenue)
	}
	if view.Genres != "Action, Science Fiction" {
		t.Fatalf("unexpected genres: %q", view.Genres)
	}
}

func TestTVViewSkipsSpecialsSeason(t *testing.T) {
	catalog := &fakeCatalog{
		tv: &tmdb.TVDetails{
			ID:           95396,
			Name:         "Severance",
			FirstAirDate: "2022-02-17",
			LastAirDate:  "2025-03-20",
			Status:       "Returning Series",
			Seasons: []tmdb.Season{
				{SeasonNumber: 0, Name: "Specials", EpisodeCount: 2},
				{SeasonNumber: 1, Name: "Season 1", EpisodeCount: 9},
				{SeasonNumber: 2, Name: "Season 2", EpisodeCount: 10},
			},
		},
	}
	svc := newService(catalog, nil, "https://image.test")

	view, err := svc.TV(context.Background(), 95396)
	if err != nil {
		t.Fatalf("TV failed: %v", err)
	}
	if len(view.Seasons) != 2 {
		t.Fatalf("expected specials skipped, got %#v", view.Seasons)
	}
	if view.Years != "2022-" {
		t.Fatalf("unexpected year range: %q", view.Years)
	}
}

func TestTrailerURL(t *testing.T) {
	catalog := &fakeCatalog{
		movieVideos: []tmdb.Video{
			{Key: "official", Site: "YouTube", Type: "Trailer", Official: true},
		},
	}
	svc := newService(catalog, nil, "https://image.test")

	url, err := svc.TrailerURL(context.Background(), browse.KindMovie, 603)
	if err != nil {
		t.Fatalf("TrailerURL failed: %v", err)
	}
	if url != "https://www.youtube.com/watch?v=official" {
		t.Fatalf("unexpected trailer url: %q", url)
	}
}

func TestTrailerURLNoTrailer(t *testing.T) {
	catalog := &fakeCatalog{tvVideos: []tmdb.Video{{Key: "clip", Site: "YouTube", Type: "Clip"}}}
	svc := newService(catalog, nil, "https://image.test")

	_, err := svc.TrailerURL(context.Background(), browse.KindTV, 1)
	if !errors.Is(err, browse.ErrNoTrailer) {
		t.Fatalf("expected ErrNoTrailer, got %v", err)
	}
}

func TestFetchPosterDownloadsViaCache(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/w342/matrix.jpg" {
			t.Fatalf("unexpected artwork path %q", r.URL.Path)
		}
		_, _ = w.Write([]byte("jpeg"))
	}))
	t.Cleanup(server.Close)

	cache, err := posters.New(t.TempDir())
	if err != nil {
		t.Fatalf("posters.New failed: %v", err)
	}
	catalog := &fakeCatalog{movie: &tmdb.MovieDetails{ID: 603, Title: "The Matrix", PosterPath: "/matrix.jpg"}}
	svc := newService(catalog, cache, server.URL)

	local, err := svc.FetchPoster(context.Background(), browse.KindMovie, 603, "w342")
	if err != nil {
		t.Fatalf("FetchPoster failed: %v", err)
	}
	if local == "" {
		t.Fatal("expected local path")
	}
}

func TestFetchPosterNoArtwork(t *testing.T) {
	cache, err := posters.New(t.TempDir())
	if err != nil {
		t.Fatalf("posters.New failed: %v", err)
	}
	catalog := &fakeCatalog{movie: &tmdb.MovieDetails{ID: 42, Title: "Obscure"}}
	svc := newService(catalog, cache, "https://image.test")

	if _, err := svc.FetchPoster(context.Background(), browse.KindMovie, 42, ""); err == nil {
		t.Fatal("expected error when title has no poster")
	}
}
