package posters

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"os"
	"path"
	"path/filepath"
	"strings"
	"time"

	"github.com/gofrs/flock"

	"marquee/internal/logging"
)

// ErrNotFound indicates the image host has no file at the requested URL.
var ErrNotFound = errors.New("posters: image not found")

const lockRetryDelay = 50 * time.Millisecond

// Cache downloads images into a directory, skipping anything already present.
type Cache struct {
	dir        string
	httpClient *http.Client
	logger     *slog.Logger
}

// Option configures a Cache.
type Option func(*Cache)

// WithHTTPClient overrides the default HTTP client.
func WithHTTPClient(client *http.Client) Option {
	return func(c *Cache) {
		if client != nil {
			c.httpClient = client
		}
	}
}

// WithTimeout overrides the download timeout on the default HTTP client.
func WithTimeout(timeout time.Duration) Option {
	return func(c *Cache) {
		if timeout > 0 {
			c.httpClient.Timeout = timeout
		}
	}
}

// WithLogger attaches a logger.
func WithLogger(logger *slog.Logger) Option {
	return func(c *Cache) {
		if logger != nil {
			c.logger = logger.With(slog.String(logging.FieldComponent, "posters"))
		}
	}
}

// New creates a Cache rooted at dir, creating the directory if needed.
func New(dir string, opts ...Option) (*Cache, error) {
	dir = strings.TrimSpace(dir)
	if dir == "" {
		return nil, errors.New("poster cache dir required")
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create poster cache dir: %w", err)
	}
	cache := &Cache{
		dir:        dir,
		httpClient: &http.Client{Timeout: 3 * time.Second},
		logger:     logging.NewNop(),
	}
	for _, opt := range opts {
		opt(cache)
	}
	return cache, nil
}

// Dir returns the cache root.
func (c *Cache) Dir() string {
	return c.dir
}

// Fetch downloads the image at imageURL unless it is already cached, and
// returns the local file path either way.
func (c *Cache) Fetch(ctx context.Context, imageURL string) (string, error) {
	imageURL = strings.TrimSpace(imageURL)
	if imageURL == "" {
		return "", errors.New("image url required")
	}

	target := filepath.Join(c.dir, cacheFileName(imageURL))
	if _, err := os.Stat(target); err == nil {
		c.logger.Debug("poster cache hit", slog.String("path", target))
		return target, nil
	} else if !errors.Is(err, os.ErrNotExist) {
		return "", fmt.Errorf("stat cached image: %w", err)
	}

	// Serialize concurrent downloads of the same image across processes.
	lock := flock.New(target + ".lock")
	locked, err := lock.TryLockContext(ctx, lockRetryDelay)
	if err != nil {
		return "", fmt.Errorf("acquire download lock: %w", err)
	}
	if !locked {
		return "", errors.New("acquire download lock: not acquired")
	}
	defer func() {
		_ = lock.Unlock()
		_ = os.Remove(lock.Path())
	}()

	// Another process may have finished the download while we waited.
	if _, err := os.Stat(target); err == nil {
		return target, nil
	}

	if err := c.download(ctx, imageURL, target); err != nil {
		return "", err
	}
	c.logger.Info("poster downloaded", slog.String("url", imageURL), slog.String("path", target))
	return target, nil
}

func (c *Cache) download(ctx context.Context, imageURL, target string) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, imageURL, nil)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("download image: %w", err)
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusNotFound:
		return fmt.Errorf("%w: %s", ErrNotFound, imageURL)
	case resp.StatusCode != http.StatusOK:
		return fmt.Errorf("image host returned %d for %s", resp.StatusCode, imageURL)
	}

	tmp, err := os.CreateTemp(c.dir, ".download-*")
	if err != nil {
		return fmt.Errorf("create temp file: %w", err)
	}
	defer func() {
		tmp.Close()
		_ = os.Remove(tmp.Name())
	}()

	if _, err := io.Copy(tmp, resp.Body); err != nil {
		return fmt.Errorf("write image: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("close temp file: %w", err)
	}
	if err := os.Rename(tmp.Name(), target); err != nil {
		return fmt.Errorf("finalize image: %w", err)
	}
	return nil
}

// cacheFileName derives a stable file name from the image URL: a digest plus
// the original extension so cached files stay recognizable to image viewers.
func cacheFileName(imageURL string) string {
	sum := sha256.Sum256([]byte(imageURL))
	ext := ".jpg"
	if parsed, err := url.Parse(imageURL); err == nil {
		if e := path.Ext(parsed.Path); e != "" {
			ext = e
		}
	}
	return hex.EncodeToString(sum[:8]) + ext
}
