package localstore

import (
	"context"
)

// Repository is durable device-local key/value storage. Values never expire;
// Set overwrites.
type Repository interface {
	Get(ctx context.Context, key string) (string, bool, error)
	Set(ctx context.Context, key string, value string) error
	Delete(ctx context.Context, key string) error
}
