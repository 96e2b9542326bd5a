package repository

import (
	"context"
	"errors"
)

var (
	// ErrNotFound is returned by Get for a key that was never written or was deleted.
	ErrNotFound = errors.New("key not found")
	// ErrQuotaExceeded is returned by Set when the write would exceed capacity.
	ErrQuotaExceeded = errors.New("storage quota exceeded")
)

// Store is a small key-value store holding raw JSON documents.
type Store interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
	Delete(ctx context.Context, key string) error
}
