package repository_test

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"testing"
	"time"

	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/gt"
	"github.com/secmon-lab/oncall-override/pkg/domain/interfaces"
	"github.com/secmon-lab/oncall-override/pkg/domain/model"
	"github.com/secmon-lab/oncall-override/pkg/repository"
)

func newEntry(fetchedAt time.Time) *model.CacheEntry {
	return &model.CacheEntry{
		Users: []*model.DirectoryUser{
			{ID: "1", Name: "Alice", Email: "alice@example.com"},
			{ID: "2", Name: "Bob", Email: "bob@example.com"},
		},
		FetchedAt: fetchedAt,
	}
}

func testCacheStore(t *testing.T, newStore func(t *testing.T) interfaces.CacheStore) {
	t.Run("Missing key", func(t *testing.T) {
		store := newStore(t)
		defer store.Close()

		key := fmt.Sprintf("missing-%d", time.Now().UnixNano())
		entry, fresh, err := store.Get(context.Background(), key)
		gt.NoError(t, err)
		gt.Nil(t, entry)
		gt.False(t, fresh)
	})

	t.Run("Put then Get", func(t *testing.T) {
		store := newStore(t)
		defer store.Close()

		ctx := context.Background()
		key := fmt.Sprintf("users-%d", time.Now().UnixNano())
		gt.NoError(t, store.Put(ctx, key, newEntry(time.Now()), time.Minute))

		entry, fresh, err := store.Get(ctx, key)
		gt.NoError(t, err).Required()
		gt.NotNil(t, entry)
		gt.True(t, fresh)
		gt.Equal(t, 2, len(entry.Users))
		gt.Equal(t, "Alice", entry.Users[0].Name)
		gt.Equal(t, "bob@example.com", entry.Users[1].Email)
	})

	t.Run("Expired entry is returned as stale", func(t *testing.T) {
		store := newStore(t)
		defer store.Close()

		ctx := context.Background()
		key := fmt.Sprintf("stale-%d", time.Now().UnixNano())
		gt.NoError(t, store.Put(ctx, key, newEntry(time.Now().Add(-time.Hour)), time.Minute))

		entry, fresh, err := store.Get(ctx, key)
		gt.NoError(t, err).Required()
		gt.NotNil(t, entry)
		gt.False(t, fresh)
	})
}

func TestMemoryCacheStore(t *testing.T) {
	testCacheStore(t, func(t *testing.T) interfaces.CacheStore {
		return repository.NewMemory()
	})
}

func TestMemoryCacheStoreClock(t *testing.T) {
	now := time.Date(2024, 3, 1, 9, 0, 0, 0, time.UTC)
	store := repository.NewMemory(repository.WithMemoryClock(func() time.Time { return now }))
	ctx := context.Background()

	gt.NoError(t, store.Put(ctx, "k", newEntry(now), 5*time.Minute))

	_, fresh, err := store.Get(ctx, "k")
	gt.NoError(t, err)
	gt.True(t, fresh)

	now = now.Add(5 * time.Minute)
	entry, fresh, err := store.Get(ctx, "k")
	gt.NoError(t, err)
	gt.False(t, fresh)
	gt.NotNil(t, entry)
}

func TestMemoryCacheStoreIsolation(t *testing.T) {
	store := repository.NewMemory()
	ctx := context.Background()

	stored := newEntry(time.Now())
	gt.NoError(t, store.Put(ctx, "k", stored, time.Minute))
	stored.Users[0].Name = "Mutated"

	entry, _, err := store.Get(ctx, "k")
	gt.NoError(t, err).Required()
	gt.Equal(t, "Alice", entry.Users[0].Name)
}

func TestFirestoreCacheStore(t *testing.T) {
	projectID := os.Getenv("OVERRIDE_TEST_FIRESTORE_PROJECT")
	databaseID := os.Getenv("OVERRIDE_TEST_FIRESTORE_DATABASE")

	if projectID == "" {
		t.Skip("Skipping Firestore test: OVERRIDE_TEST_FIRESTORE_PROJECT must be set")
	}
	if databaseID == "" {
		databaseID = "(default)"
	}

	testCacheStore(t, func(t *testing.T) interfaces.CacheStore {
		ctx := context.Background()
		logger := slog.New(slog.NewTextHandler(os.Stdout, nil))
		ctx = ctxlog.With(ctx, logger)

		store, err := repository.NewFirestore(ctx, projectID, databaseID)
		gt.NoError(t, err).Required()
		return store
	})
}
