// Package users persists credential records and login sessions in SQLite.
//
// The Store manages the database connection, schema migrations, and the keyed
// reads and writes the auth package builds on. Credentials are stored as an
// opaque "<salt>:<hash>" string; this package never sees plaintext passwords
// and applies no hashing of its own.
//
// Multiple concurrent readers are safe: the database is opened in WAL mode
// with a busy timeout, and login verification is a single keyed SELECT.
package users
