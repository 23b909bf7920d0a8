// Package browse is the catalog facade the CLI consumes.
//
// It wraps the TMDB client and the poster cache behind view-oriented
// operations: paginated listings, title search, detail views with formatted
// runtimes and financials, trailer resolution, and poster retrieval. Keeping
// the formatting here means command code only renders rows.
package browse
