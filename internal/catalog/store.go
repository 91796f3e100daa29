// ABOUTME: Process-wide pump catalog holder with load-once semantics
// ABOUTME: Coalesces concurrent loads and only re-reads the file on explicit Reload

package catalog

import (
	"context"
	"log/slog"
	"sync"

	"golang.org/x/sync/singleflight"
)

const loadKey = "catalog"

// Store holds the catalog read from a single source file. The first Get
// loads the file; later calls return the same immutable catalog until
// Reload is called.
type Store struct {
	path  string
	load  func(string) (*Catalog, error)
	group singleflight.Group

	mu      sync.RWMutex
	current *Catalog
}

// NewStore creates a store for the catalog at path. Nothing is read yet.
func NewStore(path string) *Store {
	return &Store{
		path: path,
		load: Load,
	}
}

// Path returns the catalog source path.
func (s *Store) Path() string {
	return s.path
}

// Loaded reports whether a catalog is cached.
func (s *Store) Loaded() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.current != nil
}

// Get returns the cached catalog, loading it on first use.
func (s *Store) Get(ctx context.Context) (*Catalog, error) {
	s.mu.RLock()
	cat := s.current
	s.mu.RUnlock()
	if cat != nil {
		slog.Debug("Catalog cache hit", "source", s.path)
		return cat, nil
	}

	slog.Debug("Catalog cache miss", "source", s.path)
	return s.fetch(ctx)
}

// Reload re-reads the source file. On failure the previously cached
// catalog, if any, stays in place.
func (s *Store) Reload(ctx context.Context) (*Catalog, error) {
	slog.Info("Reloading pump catalog", "source", s.path)
	return s.fetch(ctx)
}

func (s *Store) fetch(ctx context.Context) (*Catalog, error) {
	ch := s.group.DoChan(loadKey, func() (interface{}, error) {
		cat, err := s.load(s.path)
		if err != nil {
			return nil, err
		}
		s.mu.Lock()
		s.current = cat
		s.mu.Unlock()
		return cat, nil
	})

	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	case res := <-ch:
		if res.Err != nil {
			return nil, res.Err
		}
		return res.Val.(*Catalog), nil
	}
}
