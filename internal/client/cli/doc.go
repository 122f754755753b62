// Package cli provides the interactive DevFeed command-line client.
//
// It wires configuration, the local session store, the REST client and the
// services into a REPL that stands in for the web front-end: read the feed,
// open posts and profiles, like, bookmark, comment, follow, search, browse
// snippets and manage notifications.
//
// Likes, bookmarks and follows are applied optimistically through package
// feed, so the printed counters reflect the server's answer only after the
// command returns. A 401 from the server ends the session; the REPL keeps
// running and asks the user to login again.
//
// The REPL is started via App.Run(ctx), which blocks until the user exits.
// See App and runREPL for details.
package cli
