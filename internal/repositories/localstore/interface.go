// Package localstore is a small string-keyed blob store, the local
// equivalent of the browser storage the original application kept its state
// in. Higher layers store JSON payloads under well-known keys.
package localstore

import "context"

// Repository describes key-value operations over the local store.
type Repository interface {
	// Get returns the value stored under key, or (nil, nil) when absent.
	Get(ctx context.Context, key string) ([]byte, error)

	// Set stores value under key, replacing any previous value.
	Set(ctx context.Context, key string, value []byte) error

	// Delete removes key. Deleting an absent key is not an error.
	Delete(ctx context.Context, key string) error

	// Clear removes every key.
	Clear(ctx context.Context) error

	// List returns all key-value pairs.
	List(ctx context.Context) (map[string][]byte, error)
}
