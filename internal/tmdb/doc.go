// Package tmdb provides a typed client for The Movie Database API.
//
// It covers the read-only surface Marquee browses: popular listings, title
// search, movie/TV details, and trailer lookups, plus URL builders for poster
// and backdrop artwork. Decode failures are reported as ErrMalformedResponse
// so callers can distinguish a broken payload from a transport failure or a
// missing title.
package tmdb
