package tmdb

import "strings"

// Images builds full artwork URLs from the relative paths TMDB returns.
type Images struct {
	baseURL string
}

// NewImages creates an artwork URL builder rooted at the image base URL
// (typically https://image.tmdb.org/t/p).
func NewImages(baseURL string) Images {
	return Images{baseURL: strings.TrimRight(strings.TrimSpace(baseURL), "/")}
}

// PosterURL returns the full poster URL for a poster path and size
// (w92, w154, w185, w342, w500, w780, original). Empty paths yield "".
func (i Images) PosterURL(posterPath, size string) string {
	return i.build(posterPath, size)
}

// BackdropURL returns the full backdrop URL for a backdrop path and size
// (w300, w780, w1280, original). Empty paths yield "".
func (i Images) BackdropURL(backdropPath, size string) string {
	return i.build(backdropPath, size)
}

func (i Images) build(path, size string) string {
	path = strings.TrimSpace(path)
	if path == "" || i.baseURL == "" {
		return ""
	}
	if !strings.HasPrefix(path, "/") {
		path = "/" + path
	}
	size = strings.TrimSpace(size)
	if size == "" {
		size = "original"
	}
	return i.baseURL + "/" + size + path
}

// YouTubeURL builds the watch URL for a TMDB video key hosted on YouTube.
func YouTubeURL(videoKey string) string {
	videoKey = strings.TrimSpace(videoKey)
	if videoKey == "" {
		return ""
	}
	return "https://www.youtube.com/watch?v=" + videoKey
}
