package cart

import (
	"context"
	"errors"
)

// ErrKeyNotFound reports that no value is stored under the requested key.
var ErrKeyNotFound = errors.New("cart: key not found")

// Storage is the durable key-value store behind a Store. Swapping the backend
// (memory for tests, a file for single-node deploys, redis for shared deploys)
// must not change cart semantics.
type Storage interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
	Delete(ctx context.Context, key string) error
}
