package ports

import "context"

// KeyValueStore is the opaque string-keyed on-device store. It holds the
// bearer token and, in the local CRUD variant, the serialized user list.
//
// Get returns ("", nil) for an absent key — absence is not an error, matching
// the semantics the controllers rely on.
type KeyValueStore interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key, value string) error
	Remove(ctx context.Context, key string) error
	Clear(ctx context.Context) error
}
