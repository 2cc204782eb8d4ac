// Package presence mirrors the online registry into a shared store so
// out-of-process consumers (web roster, support tools) can read who is
// online and at what level without touching the game database.
package presence

import (
	"context"
	"sync"
)

// Store is the presence mirror. Implementations must be safe for
// concurrent use.
type Store interface {
	Set(ctx context.Context, name string, level int) error
	Remove(ctx context.Context, name string) error
	Get(ctx context.Context, name string) (level int, online bool, err error)
}

// Config selects the backing store. An empty Addr yields the in-process
// store, which is what a single-shard deployment and all tests use.
type Config struct {
	Addr     string
	Password string
	DB       int
}

// New returns a Redis-backed Store if cfg.Addr is set, otherwise an
// in-process one.
func New(cfg Config) (Store, error) {
	if cfg.Addr != "" {
		return newRedisStore(cfg)
	}
	return NewLocalStore(), nil
}

// LocalStore is the in-process presence map.
type LocalStore struct {
	mu     sync.RWMutex
	levels map[string]int
}

func NewLocalStore() *LocalStore {
	return &LocalStore{levels: make(map[string]int)}
}

func (s *LocalStore) Set(_ context.Context, name string, level int) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.levels[name] = level
	return nil
}

func (s *LocalStore) Remove(_ context.Context, name string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.levels, name)
	return nil
}

func (s *LocalStore) Get(_ context.Context, name string) (int, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	level, ok := s.levels[name]
	return level, ok, nil
}
