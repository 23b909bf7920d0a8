// Command marquee is a terminal movie and TV browser. It keeps a local
// account database, gates catalog access behind a login session, and pulls
// listings, details, trailers, and poster artwork from The Movie Database.
package main
