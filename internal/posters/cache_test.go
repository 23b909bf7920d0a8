package posters_test

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"sync/atomic"
	"testing"

	"marquee/internal/posters"
)

func TestFetchDownloadsOnceAndReusesCache(t *testing.T) {
	var hits atomic.Int64
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits.Add(1)
		w.Header().Set("Content-Type", "image/jpeg")
		_, _ = w.Write([]byte("jpeg-bytes"))
	}))
	t.Cleanup(server.Close)

	cache, err := posters.New(t.TempDir())
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}

	ctx := context.Background()
	first, err := cache.Fetch(ctx, server.URL+"/w500/poster.jpg")
	if err != nil {
		t.Fatalf("Fetch failed: %v", err)
	}
	data, err := os.ReadFile(first)
	if err != nil {
		t.Fatalf("read cached file: %v", err)
	}
	if string(data) != "jpeg-bytes" {
		t.Fatalf("unexpected cached content: %q", data)
	}
	if filepath.Ext(first) != ".jpg" {
		t.Fatalf("expected .jpg extension, got %q", first)
	}

	second, err := cache.Fetch(ctx, server.URL+"/w500/poster.jpg")
	if err != nil {
		t.Fatalf("second Fetch failed: %v", err)
	}
	if second != first {
		t.Fatalf("expected identical cache path, got %q and %q", first, second)
	}
	if hits.Load() != 1 {
		t.Fatalf("expected exactly one download, got %d", hits.Load())
	}
}

func TestFetchDistinguishesURLs(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(r.URL.Path))
	}))
	t.Cleanup(server.Close)

	cache, err := posters.New(t.TempDir())
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}

	ctx := context.Background()
	one, err := cache.Fetch(ctx, server.URL+"/a.jpg")
	if err != nil {
		t.Fatalf("Fetch a failed: %v", err)
	}
	two, err := cache.Fetch(ctx, server.URL+"/b.jpg")
	if err != nil {
		t.Fatalf("Fetch b failed: %v", err)
	}
	if one == two {
		t.Fatal("different URLs must map to different cache files")
	}
}

func TestFetchNotFound(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	t.Cleanup(server.Close)

	cache, err := posters.New(t.TempDir())
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}

	_, err = cache.Fetch(context.Background(), server.URL+"/missing.jpg")
	if !errors.Is(err, posters.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestFetchLeavesNoPartialFileOnServerError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	t.Cleanup(server.Close)

	dir := t.TempDir()
	cache, err := posters.New(dir)
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}

	if _, err := cache.Fetch(context.Background(), server.URL+"/broken.jpg"); err == nil {
		t.Fatal("expected error for server failure")
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatalf("read cache dir: %v", err)
	}
	for _, entry := range entries {
		t.Fatalf("expected empty cache dir, found %q", entry.Name())
	}
}

func TestFetchRejectsEmptyURL(t *testing.T) {
	cache, err := posters.New(t.TempDir())
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	if _, err := cache.Fetch(context.Background(), "  "); err == nil {
		t.Fatal("expected error for empty url")
	}
}
