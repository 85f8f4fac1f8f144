// Package state persists the small amount of client-local state that must
// survive restarts: the admin bearer token and the chat session id.
//
// The backing store is a SQLite database under the user's home directory.
// When the database cannot be opened the CLI falls back to [Memory], which
// keeps the same contract in-process only; callers never fail just because
// persistence is unavailable.
package state
