// Package kvstore provides the durable per-device key-value store all client
// state persists through.
package kvstore

import (
	"context"
)

// Repository is a string-keyed store of opaque values.
//
// Get returns (nil, nil) when the key is absent; any non-nil error is a
// storage failure, not a miss.
type Repository interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
	Delete(ctx context.Context, key string) error
	List(ctx context.Context) (map[string][]byte, error)
	Clear(ctx context.Context) error
}
