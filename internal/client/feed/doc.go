// Package feed keeps client-side view state for lists of posts, single posts
// and user profiles, and applies likes, bookmarks and follows optimistically.
//
// A toggle flips the flag and its counter at once, then calls the server. If
// the call fails the exact previous pair is restored and the error returned.
// Only one toggle per item may be in flight; a second one gets ErrInFlight.
package feed
