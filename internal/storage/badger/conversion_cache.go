package badger

import (
	"context"
	"fmt"

	"github.com/ternarybob/arbor"
	"github.com/timshannon/badgerhold/v4"

	"github.com/ternarybob/doceo/internal/interfaces"
)

// ConversionCacheStorage implements the ConversionCache interface for Badger
type ConversionCacheStorage struct {
	db     *BadgerDB
	logger arbor.ILogger
}

// Compile-time interface assertion
var _ interfaces.ConversionCache = (*ConversionCacheStorage)(nil)

// NewConversionCacheStorage creates a new ConversionCacheStorage instance
func NewConversionCacheStorage(db *BadgerDB, logger arbor.ILogger) *ConversionCacheStorage {
	return &ConversionCacheStorage{
		db:     db,
		logger: logger,
	}
}

// Get retrieves a cached conversion by key
func (s *ConversionCacheStorage) Get(ctx context.Context, key string) (*interfaces.ConversionCacheEntry, error) {
	var entry interfaces.ConversionCacheEntry
	err := s.db.Store().Get(key, &entry)
	if err == badgerhold.ErrNotFound {
		return nil, interfaces.ErrCacheMiss
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get cached conversion: %w", err)
	}

	return &entry, nil
}

// Put inserts or replaces a cached conversion
func (s *ConversionCacheStorage) Put(ctx context.Context, entry *interfaces.ConversionCacheEntry) error {
	if entry == nil || entry.Key == "" {
		return fmt.Errorf("cache entry requires a key")
	}

	if err := s.db.Store().Upsert(entry.Key, entry); err != nil {
		return fmt.Errorf("failed to store cached conversion: %w", err)
	}

	s.logger.Debug().
		Str("key", entry.Key).
		Int("slide_count", entry.SlideCount).
		Msg("Cached conversion result")

	return nil
}

// Close closes the underlying database
func (s *ConversionCacheStorage) Close() error {
	return s.db.Close()
}
