package repository

import (
	"context"
	"sync"
	"time"

	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/oncall-override/pkg/domain/interfaces"
	"github.com/secmon-lab/oncall-override/pkg/domain/model"
)

// Memory implements CacheStore in process memory
type Memory struct {
	mu      sync.RWMutex
	entries map[string]*model.CacheEntry
	now     func() time.Time
}

var _ interfaces.CacheStore = (*Memory)(nil)

// MemoryOption configures a Memory store
type MemoryOption func(*Memory)

// WithMemoryClock replaces the clock used to judge freshness
func WithMemoryClock(now func() time.Time) MemoryOption {
	return func(m *Memory) {
		m.now = now
	}
}

// NewMemory creates a new in-memory cache store
func NewMemory(opts ...MemoryOption) *Memory {
	m := &Memory{
		entries: make(map[string]*model.CacheEntry),
		now:     time.Now,
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// Get returns the entry stored under key, or nil when there is none
func (m *Memory) Get(ctx context.Context, key string) (*model.CacheEntry, bool, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	entry, ok := m.entries[key]
	if !ok {
		return nil, false, nil
	}

	copied := copyEntry(entry)
	return copied, copied.IsFresh(m.now()), nil
}

// Put stores entry under key until ttl has passed since it was fetched
func (m *Memory) Put(ctx context.Context, key string, entry *model.CacheEntry, ttl time.Duration) error {
	if entry == nil {
		return goerr.New("cache entry is nil", goerr.V("key", key))
	}

	stored := copyEntry(entry)
	stored.ExpiresAt = stored.FetchedAt.Add(ttl)

	m.mu.Lock()
	defer m.mu.Unlock()
	m.entries[key] = stored

	return nil
}

// Close is a no-op for the memory store
func (m *Memory) Close() error {
	return nil
}

func copyEntry(entry *model.CacheEntry) *model.CacheEntry {
	users := make([]*model.DirectoryUser, len(entry.Users))
	for i, u := range entry.Users {
		userCopy := *u
		users[i] = &userCopy
	}
	return &model.CacheEntry{
		Users:     users,
		FetchedAt: entry.FetchedAt,
		ExpiresAt: entry.ExpiresAt,
	}
}
