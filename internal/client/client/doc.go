// Package client contains the DevFeed API client and local database bootstrap.
//
// # Overview
//
// The package provides:
//  1. The Client interface: auth, users, posts, comments, snippets and
//     notifications.
//  2. RESTClient, a JSON-over-HTTP implementation that attaches the session's
//     bearer token, tags each request with an X-Request-ID, runs it in an
//     OpenTelemetry span and maps responses to typed errors.
//  3. InitDatabase and RunMigrations, which open the CLI's SQLite file and
//     apply the embedded goose migrations.
//
// # Error Handling
//
// Transport failures wrap ErrUnavailable. A 401 clears the session and
// returns ErrAuthExpired. Bodies that are not JSON produce an
// *InvalidResponseError (errors.Is ErrInvalidResponse). Other non-2xx
// responses produce an *APIError carrying the server's message.
//
// # Concurrency & Contexts
//
// RESTClient is safe for concurrent use. Cancelling the context aborts the
// in-flight request. There are no retries.
package client
