package interfaces

import (
	"context"
	"errors"
	"time"
)

// ErrCacheMiss is returned when no cached conversion exists for a key.
var ErrCacheMiss = errors.New("conversion cache: entry not found")

// ConversionCacheEntry is a cached Marp conversion, keyed by a digest of the
// document body and conversion parameters.
type ConversionCacheEntry struct {
	Key        string    `badgerhold:"key"`
	Markdown   string    `json:"markdown"`
	Provider   string    `json:"provider"`
	Model      string    `json:"model"`
	SlideCount int       `json:"slide_count"`
	CreatedAt  time.Time `json:"created_at"`
}

// ConversionCache stores generated Marp output so repeated runs over the same
// input skip the provider call.
type ConversionCache interface {
	// Get returns the cached entry for key, or ErrCacheMiss.
	Get(ctx context.Context, key string) (*ConversionCacheEntry, error)

	// Put inserts or replaces the entry for entry.Key.
	Put(ctx context.Context, entry *ConversionCacheEntry) error

	// Close releases the underlying store.
	Close() error
}
