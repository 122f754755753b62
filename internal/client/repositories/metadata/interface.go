// Package metadata is the client's persistent key/value store. The session
// keeps its credential pair here so it survives restarts.
package metadata

import (
	"context"
)

// Repository is a string-keyed blob store. Get returns (nil, nil) for an
// absent key.
type Repository interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
	Delete(ctx context.Context, keys ...string) error
	List(ctx context.Context) (map[string][]byte, error)
	Clear(ctx context.Context) error
}
