// Package portfolio holds the external portfolio document: where it is fetched from, the
// in-memory cache that memoizes it, and the defaulted view commands read from.
package portfolio

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"sync/atomic"

	"github.com/tidwall/gjson"
	"golang.org/x/sync/singleflight"

	"folioshell/internal/logger"
)

// Reload status messages.
const (
	ReloadOK         = "Portfolio data reloaded."
	ReloadFailed     = "Could not load portfolio data; using built-in content."
	ReloadNoSource   = "No portfolio data source configured; using built-in content."
	ReloadInProgress = "A reload is already in progress."
)

// ErrInvalidDocument is returned when the fetched data is not a JSON object.
var ErrInvalidDocument = errors.New("portfolio document is not a JSON object")

// Store memoizes the portfolio document. Loading is best effort: failures are logged and leave
// the previous cache in place.
type Store struct {
	source Source

	mu   sync.RWMutex
	data []byte

	group     singleflight.Group
	reloading atomic.Bool
}

// NewStore creates a store backed by source. A nil source means no document is ever loaded.
func NewStore(source Source) *Store {
	return &Store{source: source}
}

// Source returns the configured source, or nil.
func (s *Store) Source() Source {
	return s.source
}

// Load fetches the document once and replaces the cache wholesale on success. Concurrent calls
// share a single fetch. It reports whether a document was loaded.
func (s *Store) Load(ctx context.Context) bool {
	if s.source == nil {
		return false
	}

	result, err, _ := s.group.Do("load", func() (interface{}, error) {
		data, err := s.source.Fetch(ctx)
		if err != nil {
			return nil, err
		}
		if !gjson.ValidBytes(data) || !gjson.ParseBytes(data).IsObject() {
			return nil, ErrInvalidDocument
		}
		return data, nil
	})
	if err != nil {
		logger.Debug("Portfolio load failed", "source", s.source.String(), "error", err)
		return false
	}

	s.mu.Lock()
	s.data = result.([]byte)
	s.mu.Unlock()
	logger.Debug("Portfolio loaded", "source", s.source.String())
	return true
}

// Loaded reports whether a document is cached.
func (s *Store) Loaded() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.data != nil
}

// Reload clears the cache and loads again, returning a status line for the user. On success
// the line is ReloadOK followed by the number of top-level sections.
// A reload requested while another is running is dropped.
func (s *Store) Reload(ctx context.Context) string {
	if !s.reloading.CompareAndSwap(false, true) {
		return ReloadInProgress
	}
	defer s.reloading.Store(false)

	if s.source == nil {
		return ReloadNoSource
	}

	s.mu.Lock()
	s.data = nil
	s.mu.Unlock()

	if !s.Load(ctx) {
		logger.Warn("Portfolio reload failed", "source", s.source.String())
		return ReloadFailed
	}
	return fmt.Sprintf("%s Loaded %d sections.", ReloadOK, len(s.View().Sections()))
}

// View returns a defaulted view over the current cache.
func (s *Store) View() View {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.data == nil {
		return View{}
	}
	return NewView(s.data)
}

// Summary describes the cache state, used by diagnostics.
func (s *Store) Summary() string {
	if s.source == nil {
		return "built-in"
	}
	if s.Loaded() {
		return fmt.Sprintf("loaded from %s", s.source)
	}
	return fmt.Sprintf("built-in (%s unavailable)", s.source)
}
