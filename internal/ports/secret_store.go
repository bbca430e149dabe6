package ports

import "context"

// SecretStore holds credentials outside the plain state file. Get returns
// domain.ErrSecretNotFound when the key has never been written.
type SecretStore interface {
	Get(ctx context.Context, key string) (string, error)
	Put(ctx context.Context, key string, value string) error
	Delete(ctx context.Context, key string) error
}
