// Package metadata is the client-side key/value store. It backs every piece of
// state the client keeps between runs.
package metadata

import (
	"context"
)

// Repository is a durable string-keyed byte store. Get returns (nil, nil)
// for a missing key; Delete of a missing key is not an error.
type Repository interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
	Delete(ctx context.Context, key string) error
	List(ctx context.Context) (map[string][]byte, error)
	Clear(ctx context.Context) error
}
