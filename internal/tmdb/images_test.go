package tmdb_test

import (
	"testing"

	"marquee/internal/tmdb"
)

func TestPosterURL(t *testing.T) {
	images := tmdb.NewImages("https://image.tmdb.org/t/p/")

	got := images.PosterURL("/abc123.jpg", "w500")
	want := "https://image.tmdb.org/t/p/w500/abc123.jpg"
	if got != want {
		t.Fatalf("PosterURL = %q, want %q", got, want)
	}

	if images.PosterURL("", "w500") != "" {
		t.Fatal("expected empty URL for empty poster path")
	}
	if images.PosterURL("abc123.jpg", "") != "https://image.tmdb.org/t/p/original/abc123.jpg" {
		t.Fatalf("unexpected defaulted URL: %q", images.PosterURL("abc123.jpg", ""))
	}
}

func TestBackdropURL(t *testing.T) {
	images := tmdb.NewImages("https://image.tmdb.org/t/p")
	got := images.BackdropURL("/bd.jpg", "w1280")
	if got != "https://image.tmdb.org/t/p/w1280/bd.jpg" {
		t.Fatalf("unexpected backdrop URL: %q", got)
	}
}

func TestYouTubeURL(t *testing.T) {
	if got := tmdb.YouTubeURL("vKQi3bBA1y8"); got != "https://www.youtube.com/watch?v=vKQi3bBA1y8" {
		t.Fatalf("unexpected YouTube URL: %q", got)
	}
	if tmdb.YouTubeURL(" ") != "" {
		t.Fatal("expected empty URL for blank key")
	}
}

func TestBestTrailerPrefersOfficialYouTubeTrailer(t *testing.T) {
	videos := []tmdb.Video{
		{ID: "1", Key: "teaser", Site: "YouTube", Type: "Teaser"},
		{ID: "2", Key: "fan", Site: "YouTube", Type: "Trailer", Official: false},
		{ID: "3", Key: "vimeo", Site: "Vimeo", Type: "Trailer", Official: true},
		{ID: "4", Key: "official", Site: "YouTube", Type: "Trailer", Official: true},
	}
	best := tmdb.BestTrailer(videos)
	if best == nil || best.Key != "official" {
		t.Fatalf("unexpected best trailer: %#v", best)
	}
}

func TestBestTrailerFallsBackToTeaser(t *testing.T) {
	videos := []tmdb.Video{
		{ID: "1", Key: "clip", Site: "YouTube", Type: "Clip"},
		{ID: "2", Key: "teaser", Site: "YouTube", Type: "Teaser"},
	}
	best := tmdb.BestTrailer(videos)
	if best == nil || best.Key != "teaser" {
		t.Fatalf("unexpected fallback: %#v", best)
	}
	if tmdb.BestTrailer(nil) != nil {
		t.Fatal("expected nil for empty list")
	}
}
