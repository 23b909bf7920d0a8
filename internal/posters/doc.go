// Package posters caches poster and backdrop artwork on disk.
//
// An image is downloaded at most once: the cache key is a digest of the full
// image URL, and a file lock serializes concurrent fetches of the same image
// so parallel commands do not duplicate work.
package posters
