package ports

import "context"

// KeyValueStore is the durable backing for non-secret session state.
type KeyValueStore interface {
	Get(ctx context.Context, key string) (value string, ok bool, err error)
	Set(ctx context.Context, key string, value string) error
	Remove(ctx context.Context, key string) error
	Clear(ctx context.Context) error
}
