// Package kvstore provides the durable key-value primitive backing the
// credential store. Values are opaque byte slices; individual reads and
// writes are atomic but no cross-key transaction exists.
package kvstore

import (
	"context"

	appErrors "github.com/noah-isme/sma-mobile-sdk/pkg/errors"
)

// Store abstracts durable local key-value storage.
type Store interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
	Delete(ctx context.Context, key string) error
}

// IsNotFound reports whether err means the key was absent.
func IsNotFound(err error) bool {
	return appErrors.HasCode(err, appErrors.ErrNotFound)
}
