// Package storage provides abstractions for persistent snapshot storage.
package storage

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
)

// Keys for the persisted collections. Each collection is written whole
// (replace-on-write, no deltas). There is no migration logic: a schema
// change requires a new key, and data under the old key is orphaned.
const (
	KeyProducts = "pos_products_v1"
	KeyCart     = "pos_cart_v1"
	KeySettings = "pos_settings_v1"
)

// ErrNotFound is returned by KV.Get when no value exists for the key.
var ErrNotFound = errors.New("storage: key not found")

// KV defines the interface for raw snapshot storage.
// This abstraction allows swapping storage backends (SQLite, in-memory, etc.)
// without changing the register.
type KV interface {
	// Get returns the value stored under key, or ErrNotFound.
	Get(ctx context.Context, key string) ([]byte, error)

	// Set stores value under key, overwriting any prior content.
	Set(ctx context.Context, key string, value []byte) error

	// Close releases any resources held by the store.
	Close() error
}

// Load reads and decodes the snapshot stored under key. A missing key, a
// read failure, or a corrupt snapshot all yield the fallback: persisted
// state is best-effort and corruption is recovered silently, never surfaced
// to the caller.
func Load[T any](ctx context.Context, kv KV, key string, fallback T) T {
	raw, err := kv.Get(ctx, key)
	if err != nil {
		if !errors.Is(err, ErrNotFound) {
			slog.Warn("snapshot read failed, using fallback", "key", key, "error", err)
		}
		return fallback
	}

	var v T
	if err := json.Unmarshal(raw, &v); err != nil {
		slog.Warn("snapshot corrupt, using fallback", "key", key, "error", err)
		return fallback
	}
	return v
}

// Save encodes v and stores it under key, replacing the previous snapshot.
func Save[T any](ctx context.Context, kv KV, key string, v T) error {
	raw, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("failed to encode snapshot %s: %w", key, err)
	}
	if err := kv.Set(ctx, key, raw); err != nil {
		return fmt.Errorf("failed to persist snapshot %s: %w", key, err)
	}
	return nil
}
